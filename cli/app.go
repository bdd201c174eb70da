package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"

	"carbon-predictor/config"
	"carbon-predictor/domain"
	"carbon-predictor/metrics"
	"carbon-predictor/model"
	"carbon-predictor/repository"
	"carbon-predictor/service"
)

const redisPingTimeout = 5 * time.Second

// app owns everything built once at startup. The model is loaded here and
// handed to the services; nothing else holds it.
type app struct {
	cfg         config.Config
	logger      zerolog.Logger
	model       *model.Model
	cache       repository.CacheRepository
	registry    *prometheus.Registry
	metrics     *metrics.Metrics
	predictions *service.PredictionService
	info        *service.ModelInfoService
	closers     []io.Closer
}

func newApp(ctx context.Context, opts *rootOptions, logOut io.Writer) (*app, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}

	a := &app{
		cfg:      cfg,
		logger:   config.NewLogger(cfg.Log, logOut),
		registry: prometheus.NewRegistry(),
	}
	a.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	a.metrics = metrics.New(a.registry)

	a.model, err = model.Load(cfg.Model.Paths, domain.FeatureNames(), a.logger)
	if err != nil {
		return nil, err
	}

	if err := a.openCache(ctx); err != nil {
		return nil, err
	}

	a.predictions = service.NewPredictionService(a.model, a.cache, a.metrics, a.logger)
	a.info = service.NewModelInfoService(cfg.Model.ComparisonPath, cfg.Model.InfoPaths, a.logger)
	return a, nil
}

func (a *app) openCache(ctx context.Context) error {
	switch a.cfg.Cache.Backend {
	case config.CacheBackendNone:
		a.cache = repository.NopCache{}
	case config.CacheBackendMemory:
		a.cache = repository.NewMemoryCache(a.cfg.Cache.MaxEntries, a.cfg.Cache.TTL)
	case config.CacheBackendRedis:
		rc := repository.NewRedisCache(repository.RedisOptions{
			Addr:     a.cfg.Cache.RedisAddr,
			Password: a.cfg.Cache.RedisPassword,
			DB:       a.cfg.Cache.RedisDB,
			TTL:      a.cfg.Cache.TTL,
		})
		pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
		defer cancel()
		if err := rc.Ping(pingCtx); err != nil {
			_ = rc.Close()
			return fmt.Errorf("connecting to redis at %s: %w", a.cfg.Cache.RedisAddr, err)
		}
		a.cache = rc
		a.closers = append(a.closers, rc)
	default:
		return fmt.Errorf("unknown cache backend %q", a.cfg.Cache.Backend)
	}

	a.logger.Info().Str("backend", a.cfg.Cache.Backend).Msg("prediction cache ready")
	return nil
}

func (a *app) Close() {
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			a.logger.Warn().Err(err).Msg("closing resource")
		}
	}
}
