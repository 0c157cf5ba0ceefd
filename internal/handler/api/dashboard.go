package api

import (
	models "TrendMatrix/internal/domain/models"
	domrepo "TrendMatrix/internal/domain/repository"
	"TrendMatrix/internal/usecase"
	xhttp "TrendMatrix/pkg/http"
	xlogger "TrendMatrix/pkg/logger"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the headline dashboard endpoints.
type DashboardHandler struct {
	logger *xlogger.Logger
	view   *usecase.DashboardView
	series *usecase.SeriesUsecase
}

func NewDashboardHandler(logger *xlogger.Logger, view *usecase.DashboardView, series *usecase.SeriesUsecase) *DashboardHandler {
	return &DashboardHandler{logger: logger, view: view, series: series}
}

func (h *DashboardHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/dashboard")
	g.GET("/metrics", h.Metrics)
	g.GET("/signal-trend", h.SignalTrend)
	g.GET("/activity-trend", h.ActivityTrend)
}

// Metrics returns the full dashboard snapshot. When a refresh fails but an
// earlier snapshot exists, that snapshot is served so the dashboard keeps
// showing its last good data.
func (h *DashboardHandler) Metrics(c echo.Context) error {
	snap, err := h.view.Load(c.Request().Context())
	if err != nil {
		if prev, ok := h.view.Snapshot(); ok {
			h.logger.Warn("serving stale dashboard snapshot", xlogger.Error(err))
			return xhttp.SuccessResponse(c, prev)
		}
		h.logger.Error("dashboard load error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, domainError(err))
	}
	return xhttp.SuccessResponse(c, snap)
}

func (h *DashboardHandler) SignalTrend(c echo.Context) error {
	return h.trend(c, domrepo.KindSignals)
}

func (h *DashboardHandler) ActivityTrend(c echo.Context) error {
	return h.trend(c, domrepo.KindActivity)
}

func (h *DashboardHandler) trend(c echo.Context, kind domrepo.SeriesKind) error {
	req := &models.TrendRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	points, err := h.series.Trend(c.Request().Context(), kind, req.Days)
	if err != nil {
		h.logger.Error("trend usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, domainError(err))
	}
	return xhttp.SuccessResponse(c, models.Series{Kind: string(kind), Points: points})
}
