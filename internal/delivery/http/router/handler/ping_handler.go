package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// PingHandler answers the health probe.
type PingHandler struct{}

// NewPingHandler is the constructor for PingHandler, injected by Fx.
func NewPingHandler() *PingHandler {
	return &PingHandler{}
}

// Ping replies with a static payload so load balancers can probe liveness.
func (h *PingHandler) Ping(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "ping",
	})
}
