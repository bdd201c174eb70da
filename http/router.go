package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"carbon-predictor/metrics"
)

type RouterDeps struct {
	Prediction  *PredictionHandler
	Model       *ModelHandler
	Form        *FormHandler
	RateLimiter *RateLimiter // nil disables rate limiting
	Metrics     *metrics.Metrics
	Gatherer    prometheus.Gatherer
	Logger      zerolog.Logger

	// TrustProxyHeaders keys the limiter on X-Forwarded-For instead of the peer.
	TrustProxyHeaders bool
}

func NewRouter(d RouterDeps) http.Handler {
	limit := func(h http.HandlerFunc) http.Handler {
		if d.RateLimiter == nil {
			return h
		}
		return RateLimitMiddleware(d.RateLimiter, d.TrustProxyHeaders, h)
	}

	mux := http.NewServeMux()
	mux.Handle("/", limit(d.Form.Index))
	mux.Handle("/api/predict", limit(d.Prediction.Predict))
	mux.HandleFunc("/api/model", d.Model.Describe)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	if d.Gatherer != nil {
		mux.Handle("/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))
	}

	return AccessLogMiddleware(d.Logger, d.Metrics, mux)
}
