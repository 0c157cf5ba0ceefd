package api

import (
	"net/http"

	models "TrendMatrix/internal/domain/models"
	domrepo "TrendMatrix/internal/domain/repository"
	"TrendMatrix/internal/usecase"
	xhttp "TrendMatrix/pkg/http"
	xlogger "TrendMatrix/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ChartsHandler serves rendered SVG charts of the aggregated series.
type ChartsHandler struct {
	logger *xlogger.Logger
	charts *usecase.ChartUsecase
}

func NewChartsHandler(logger *xlogger.Logger, charts *usecase.ChartUsecase) *ChartsHandler {
	return &ChartsHandler{logger: logger, charts: charts}
}

func (h *ChartsHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/charts/:kind", h.Render)
}

// Render draws the requested series as an SVG. The :kind path param selects
// the series (signals, activity, price, volume); chart style and geometry
// come from query params.
func (h *ChartsHandler) Render(c echo.Context) error {
	kind := domrepo.SeriesKind(c.Param("kind"))
	if !domrepo.IsValidSeriesKind(kind) {
		return xhttp.AppErrorResponse(c, xhttp.BadRequestErrorf("unknown series kind '%s'", kind))
	}

	req := &models.ChartRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	svg, err := h.charts.Render(c.Request().Context(), kind, req)
	if err != nil {
		h.logger.Error("chart render error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, domainError(err))
	}

	return c.Blob(http.StatusOK, "image/svg+xml", svg)
}
