package http

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
)

// RateLimitMiddleware keys clients on the peer address. X-Forwarded-For is
// only honoured when trustProxy is set, i.e. behind a proxy that rewrites it.
func RateLimitMiddleware(
	limiter *RateLimiter,
	trustProxy bool,
	next http.Handler,
) http.Handler {

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		ok, wait := limiter.Allow(clientIP(r, trustProxy))
		if !ok {
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
			first, _, _ := strings.Cut(fwd, ",")
			if ip := strings.TrimSpace(first); ip != "" {
				return ip
			}
		}
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
