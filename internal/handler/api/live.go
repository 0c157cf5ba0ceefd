package api

import (
	"TrendMatrix/internal/ws"

	"github.com/labstack/echo/v4"
)

// LiveHandler exposes the WebSocket endpoint for live dashboard updates.
type LiveHandler struct {
	hub *ws.Hub
}

func NewLiveHandler(hub *ws.Hub) *LiveHandler {
	return &LiveHandler{hub: hub}
}

func (h *LiveHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/ws", h.hub.Handle)
}
