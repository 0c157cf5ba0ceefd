package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TrendMatrix/internal/domain/models"
	"TrendMatrix/internal/domain/repository"
	"TrendMatrix/pkg/cache"
)

func newTestSeries(t *testing.T, src *fakeSource, ttl time.Duration) *SeriesUsecase {
	t.Helper()
	return NewSeriesUsecase(src, cache.NewMemoryCache(), nopMetrics{}, testLogger(t), ttl, "fake")
}

func TestTrend_FillsDeltas(t *testing.T) {
	src := &fakeSource{}
	u := newTestSeries(t, src, time.Minute)

	points, err := u.Trend(context.Background(), repository.KindSignals, 3)
	require.NoError(t, err)
	require.Len(t, points, 3)

	assert.Zero(t, points[0].Delta, "the first bucket has no predecessor")
	assert.Equal(t, 50.0, points[1].Delta, "150 vs 100")
	assert.Equal(t, 33.3, points[2].Delta, "200 vs 150, rounded for display")
}

func TestTrend_CachesWithinTTL(t *testing.T) {
	src := &fakeSource{}
	u := newTestSeries(t, src, time.Minute)
	ctx := context.Background()

	first, err := u.Trend(ctx, repository.KindSignals, 7)
	require.NoError(t, err)
	second, err := u.Trend(ctx, repository.KindSignals, 7)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, src.fetches, "the second call is served from cache")

	_, err = u.Trend(ctx, repository.KindSignals, 14)
	require.NoError(t, err)
	assert.Equal(t, 2, src.fetches, "a different window is a different cache entry")

	_, err = u.Trend(ctx, repository.KindActivity, 7)
	require.NoError(t, err)
	assert.Equal(t, 3, src.fetches, "a different kind is a different cache entry")
}

func TestTrend_RejectsNonPositiveWindow(t *testing.T) {
	src := &fakeSource{}
	u := newTestSeries(t, src, time.Minute)

	_, err := u.Trend(context.Background(), repository.KindSignals, -1)
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "days", verr.Field)
	assert.Zero(t, src.fetches, "validation happens before any fetch")
}

func TestTrend_ClampsOversizedWindow(t *testing.T) {
	src := &fakeSource{}
	u := newTestSeries(t, src, time.Minute)

	points, err := u.Trend(context.Background(), repository.KindSignals, 100_000)
	require.NoError(t, err)
	assert.Len(t, points, repository.MaxWindowDays)
}

func TestTrend_PropagatesFetchErrors(t *testing.T) {
	src := &fakeSource{failSeries: true}
	u := newTestSeries(t, src, time.Minute)

	_, err := u.Trend(context.Background(), repository.KindSignals, 7)
	var ferr *models.FetchError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, "fake", ferr.Source)
}
