package api

import (
	models "TrendMatrix/internal/domain/models"
	"TrendMatrix/internal/usecase"
	xhttp "TrendMatrix/pkg/http"
	xlogger "TrendMatrix/pkg/logger"

	"github.com/labstack/echo/v4"
)

// SignalsHandler serves signal listing with text/category/status/time filters.
type SignalsHandler struct {
	logger *xlogger.Logger
	query  *usecase.SignalQuery
}

func NewSignalsHandler(logger *xlogger.Logger, query *usecase.SignalQuery) *SignalsHandler {
	return &SignalsHandler{logger: logger, query: query}
}

func (h *SignalsHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/signals", h.List)
}

func (h *SignalsHandler) List(c echo.Context) error {
	req := &models.SignalsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	signals, err := h.query.List(c.Request().Context(), req)
	if err != nil {
		h.logger.Error("signals usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, domainError(err))
	}
	return xhttp.ListResponse(c, signals, int64(len(signals)))
}
