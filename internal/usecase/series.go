package usecase

import (
	"context"
	"fmt"
	"time"

	"TrendMatrix/internal/domain/models"
	"TrendMatrix/internal/domain/repository"
	"TrendMatrix/internal/services/aggregate"
	"TrendMatrix/pkg/cache"
	"TrendMatrix/pkg/logger"
)

// SeriesUsecase serves aggregated daily series with display deltas, cached
// for a configurable duration to absorb dashboard refresh storms.
type SeriesUsecase struct {
	source   repository.MetricSource
	cache    cache.Service
	metrics  repository.Metrics
	log      *logger.Logger
	cacheTTL time.Duration
	srcName  string
}

// NewSeriesUsecase wires the series read path.
func NewSeriesUsecase(
	source repository.MetricSource,
	c cache.Service,
	metrics repository.Metrics,
	log *logger.Logger,
	cacheTTL time.Duration,
	srcName string,
) *SeriesUsecase {
	if cacheTTL <= 0 {
		cacheTTL = 30 * time.Second
	}
	return &SeriesUsecase{
		source:   source,
		cache:    c,
		metrics:  metrics,
		log:      log,
		cacheTTL: cacheTTL,
		srcName:  srcName,
	}
}

// Trend returns a dense daily series of windowDays buckets, oldest first,
// with per-bucket percentage deltas filled in.
func (u *SeriesUsecase) Trend(ctx context.Context, kind repository.SeriesKind, windowDays int) ([]models.TimePoint, error) {
	if windowDays <= 0 {
		return nil, models.NewValidationError("days", "must be positive, got %d", windowDays)
	}
	windowDays = repository.ClampWindow(windowDays)

	key := fmt.Sprintf("series:%s:%d", kind, windowDays)
	start := time.Now()

	points, err := cache.GetOrLoad(ctx, u.cache, key, u.cacheTTL, func(ctx context.Context) ([]models.TimePoint, error) {
		raw, err := u.source.FetchSeries(ctx, kind, windowDays)
		if err != nil {
			return nil, err
		}
		return aggregate.WithDeltas(raw), nil
	})
	if err != nil {
		u.metrics.RecordError("series_fetch")
		u.log.Warn("series fetch failed",
			logger.String("kind", string(kind)),
			logger.Int("days", windowDays),
			logger.Error(err),
		)
		return nil, err
	}

	u.metrics.RecordFetch(u.srcName, string(kind))
	u.metrics.RecordLatency("series_trend", time.Since(start).Seconds())
	return points, nil
}
