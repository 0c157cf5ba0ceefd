package usecase

import (
	"bytes"
	"context"
	"time"

	"TrendMatrix/internal/domain/models"
	"TrendMatrix/internal/domain/repository"
	"TrendMatrix/internal/services/chart"
	"TrendMatrix/pkg/logger"
)

// ChartUsecase renders aggregated series as SVG documents. Every render is a
// full clear-and-rebuild on a fresh surface, so output depends only on the
// series and the requested geometry.
type ChartUsecase struct {
	series   *SeriesUsecase
	renderer *chart.Renderer
	metrics  repository.Metrics
	log      *logger.Logger
}

// NewChartUsecase wires the chart render path.
func NewChartUsecase(series *SeriesUsecase, metrics repository.Metrics, log *logger.Logger) *ChartUsecase {
	return &ChartUsecase{
		series:   series,
		renderer: chart.NewRenderer(chart.DefaultMargin()),
		metrics:  metrics,
		log:      log,
	}
}

// Render fetches the series and draws it at the requested size.
func (u *ChartUsecase) Render(ctx context.Context, seriesKind repository.SeriesKind, req *models.ChartRequest) ([]byte, error) {
	points, err := u.series.Trend(ctx, seriesKind, req.Days)
	if err != nil {
		return nil, err
	}
	return u.draw(points, req, seriesKind)
}

// Redraw renders already-fetched points at a new size. Resizing never
// re-fetches data.
func (u *ChartUsecase) Redraw(points []models.TimePoint, req *models.ChartRequest, seriesKind repository.SeriesKind) ([]byte, error) {
	return u.draw(points, req, seriesKind)
}

func (u *ChartUsecase) draw(points []models.TimePoint, req *models.ChartRequest, seriesKind repository.SeriesKind) ([]byte, error) {
	start := time.Now()

	surface := chart.NewSurface(float64(req.Width), float64(req.Height))
	u.renderer.Render(surface, points, chart.Kind(req.Chart))

	var buf bytes.Buffer
	if err := chart.WriteSVG(&buf, surface); err != nil {
		u.metrics.RecordError("chart_render")
		return nil, err
	}

	u.metrics.RecordRenderedChart(req.Chart)
	u.metrics.RecordLatency("chart_render", time.Since(start).Seconds())
	u.log.Debug("chart rendered",
		logger.String("kind", string(seriesKind)),
		logger.String("chart", req.Chart),
		logger.Int("points", len(points)),
	)
	return buf.Bytes(), nil
}
