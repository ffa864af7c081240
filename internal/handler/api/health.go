package api

import (
	"context"
	"net/http"
	"time"

	domrepo "PriceFeed/internal/domain/repository"

	"github.com/labstack/echo/v4"
)

type HealthHandler struct {
	store   domrepo.TickStore
	timeout time.Duration
}

func NewHealthHandler(store domrepo.TickStore) *HealthHandler {
	return &HealthHandler{store: store, timeout: 2 * time.Second}
}

func (h *HealthHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.Health)
}

// Health reports ok when the time-series store answers a ping.
func (h *HealthHandler) Health(c echo.Context) error {
	if h.store == nil {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "store": "disabled"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.store.Health(ctx); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "degraded", "error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
