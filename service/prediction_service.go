package service

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"carbon-predictor/domain"
	"carbon-predictor/metrics"
	"carbon-predictor/repository"
)

const cacheKeyPrefix = "carbon:prediction:"

// Predictor is the loaded regression model.
type Predictor interface {
	Predict(features []float64) (float64, error)
	Fingerprint() string
}

type PredictionService struct {
	model   Predictor
	cache   repository.CacheRepository
	metrics *metrics.Metrics
	logger  zerolog.Logger
}

// NewPredictionService wires the model and cache. A nil cache disables caching.
func NewPredictionService(
	model Predictor,
	cache repository.CacheRepository,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *PredictionService {
	if cache == nil {
		cache = repository.NopCache{}
	}
	return &PredictionService{model: model, cache: cache, metrics: m, logger: logger}
}

// Assess runs one submitted form through the model and the rule engines.
func (s *PredictionService) Assess(
	ctx context.Context,
	input domain.LifestyleInput,
) (domain.Assessment, error) {

	in, adjustments := ClampInput(input)
	if len(adjustments) > 0 {
		s.logger.Debug().Interface("adjustments", adjustments).Msg("input clamped")
	}

	emission, err := s.predict(ctx, AssembleFeatures(in))
	if err != nil {
		return domain.Assessment{}, err
	}

	bucket := Classify(emission)
	breakdown := EstimateBreakdown(in)

	s.metrics.ObservePrediction(string(bucket))

	return domain.Assessment{
		Input:           in,
		Adjustments:     adjustments,
		Prediction:      NewPredictionResult(emission),
		Bucket:          bucket,
		Summary:         Summary(bucket),
		Breakdown:       breakdown,
		Shares:          Shares(breakdown),
		Recommendations: Recommend(in),
		Gauge:           NewGauge(emission),
		Comparison:      Compare(emission),
	}, nil
}

func (s *PredictionService) predict(ctx context.Context, features []float64) (float64, error) {
	key := cacheKey(s.model.Fingerprint(), features)

	cached, ok, err := s.cache.Get(ctx, key)
	switch {
	case err != nil:
		s.metrics.ObserveCache("error")
		s.logger.Warn().Err(err).Str("key", key).Msg("prediction cache lookup failed")
	case ok:
		if v, perr := strconv.ParseFloat(cached, 64); perr == nil {
			s.metrics.ObserveCache("hit")
			return v, nil
		}
		s.metrics.ObserveCache("error")
		s.logger.Warn().Str("key", key).Str("value", cached).Msg("discarding unparsable cached prediction")
	default:
		s.metrics.ObserveCache("miss")
	}

	raw, err := s.model.Predict(features)
	if err != nil {
		return 0, fmt.Errorf("predicting emission: %w", err)
	}
	if math.IsNaN(raw) || math.IsInf(raw, 0) || raw > MaxEmission {
		return 0, fmt.Errorf("%w: %v", ErrInvalidPrediction, raw)
	}
	if raw < 0 {
		s.logger.Warn().Float64("prediction", raw).Msg("negative prediction clamped to zero")
		raw = 0
	}

	// Cache failures only cost a recomputation next time.
	if err := s.cache.Set(ctx, key, strconv.FormatFloat(raw, 'g', -1, 64)); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("prediction cache store failed")
	}

	return raw, nil
}

func cacheKey(fingerprint string, features []float64) string {
	parts := make([]string, len(features))
	for i, f := range features {
		parts[i] = strconv.FormatFloat(f, 'f', -1, 64)
	}
	return cacheKeyPrefix + fingerprint + ":" + strings.Join(parts, ",")
}

// NewPredictionResult derives the headline figures from a prediction.
func NewPredictionResult(emission float64) domain.PredictionResult {
	return domain.PredictionResult{
		Emission:              emission,
		YearlyProjection:      emission * MonthsPerYear,
		TreesToOffset:         int(math.Floor(emission / EmissionPerTree)),
		DeltaVsNationalAvgPct: roundTo2Decimals((emission/NationalAverage - 1) * 100),
	}
}

// NewGauge places the prediction on a dial whose zones follow Classify.
func NewGauge(emission float64) domain.Gauge {
	return domain.Gauge{
		Min:   0,
		Max:   GaugeMax,
		Value: emission,
		Zones: []domain.GaugeZone{
			{From: 0, To: LowThreshold, Color: "#4caf50"},
			{From: LowThreshold, To: HighThreshold, Color: "#ffc107"},
			{From: HighThreshold, To: GaugeMax, Color: "#f44336"},
		},
	}
}

// Compare lines the prediction up against the reference emissions.
func Compare(emission float64) []domain.ComparisonBar {
	return []domain.ComparisonBar{
		{Label: "You", Emission: emission},
		{Label: "National Avg", Emission: NationalAverage},
		{Label: "Global Avg", Emission: GlobalAverage},
		{Label: "Target", Emission: TargetEmission},
	}
}
