package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TrendMatrix/internal/domain/models"
	"TrendMatrix/internal/domain/repository"
	"TrendMatrix/pkg/cache"
)

func TestChartUsecase_RenderProducesSVG(t *testing.T) {
	src := &fakeSource{}
	series := newTestSeries(t, src, time.Minute)
	u := NewChartUsecase(series, nopMetrics{}, testLogger(t))

	req := &models.ChartRequest{Days: 7, Width: 800, Height: 320, Chart: "bar"}
	svg, err := u.Render(context.Background(), repository.KindSignals, req)
	require.NoError(t, err)

	out := string(svg)
	assert.True(t, strings.HasPrefix(out, "<svg"))
	assert.Contains(t, out, `width="800"`)
	assert.Contains(t, out, `height="320"`)
	assert.Equal(t, 7, strings.Count(out, "<rect"), "one bar per bucket")
}

func TestChartUsecase_RedrawResizesWithoutRefetch(t *testing.T) {
	src := &fakeSource{}
	series := NewSeriesUsecase(src, cache.NewMemoryCache(), nopMetrics{}, testLogger(t), time.Minute, "fake")
	u := NewChartUsecase(series, nopMetrics{}, testLogger(t))
	ctx := context.Background()

	wideReq := &models.ChartRequest{Days: 7, Width: 800, Height: 320, Chart: "bar"}
	_, err := u.Render(ctx, repository.KindSignals, wideReq)
	require.NoError(t, err)
	require.Equal(t, 1, src.fetches)

	points, err := series.Trend(ctx, repository.KindSignals, 7)
	require.NoError(t, err)

	narrowReq := &models.ChartRequest{Days: 7, Width: 400, Height: 320, Chart: "line"}
	svg, err := u.Redraw(points, narrowReq, repository.KindSignals)
	require.NoError(t, err)

	assert.Equal(t, 1, src.fetches, "resizing redraws from held points, never re-fetches")
	out := string(svg)
	assert.Contains(t, out, `width="400"`)
	assert.Equal(t, 1, strings.Count(out, "<path"))
	assert.Equal(t, 7, strings.Count(out, "<circle"))
}
