package api

import (
	"context"
	"net/http"

	"PriceFeed/internal/domain/models"
	"PriceFeed/pkg/http/middleware"
	applogger "PriceFeed/pkg/logger"

	"github.com/labstack/echo/v4"
)

// HeaderUserID carries the caller identity resolved by the auth gateway.
const HeaderUserID = "X-User-ID"

type sessionController interface {
	Reset(ctx context.Context, userID string) (*models.SessionResult, error)
	Restart(ctx context.Context, userID string) (*models.SessionResult, error)
}

type sessionResponse struct {
	OK             bool     `json:"ok"`
	Error          string   `json:"error,omitempty"`
	UserID         string   `json:"userId,omitempty"`
	Reset          bool     `json:"reset,omitempty"`
	EquityBaseline *float64 `json:"equityBaseline,omitempty"`
	Message        string   `json:"message,omitempty"`
}

type SessionHandler struct {
	uc sessionController
	l  *applogger.Logger
}

func NewSessionHandler(uc sessionController, l *applogger.Logger) *SessionHandler {
	if l == nil {
		l = applogger.Nop()
	}
	return &SessionHandler{uc: uc, l: l}
}

func (h *SessionHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/session",
		middleware.RecoverWithBody(h.l, sessionResponse{Error: "Internal server error"}),
		requireIdentity,
	)
	g.POST("/reset", h.Reset)
	g.POST("/restart", h.Restart)
}

func requireIdentity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
			return c.JSON(http.StatusUnauthorized, sessionResponse{Error: "No authorization header"})
		}
		if c.Request().Header.Get(HeaderUserID) == "" {
			return c.JSON(http.StatusUnauthorized, sessionResponse{Error: "Unauthorized"})
		}
		return next(c)
	}
}

func (h *SessionHandler) Reset(c echo.Context) error {
	userID := c.Request().Header.Get(HeaderUserID)

	if _, err := h.uc.Reset(c.Request().Context(), userID); err != nil {
		h.l.Error("session reset failed", applogger.String("user_id", userID), applogger.Error(err))
		return c.JSON(http.StatusInternalServerError, sessionResponse{Error: "Failed to reset config"})
	}
	return c.JSON(http.StatusOK, sessionResponse{OK: true, Reset: true})
}

func (h *SessionHandler) Restart(c echo.Context) error {
	userID := c.Request().Header.Get(HeaderUserID)

	res, err := h.uc.Restart(c.Request().Context(), userID)
	if err != nil {
		h.l.Error("session restart failed", applogger.String("user_id", userID), applogger.Error(err))
		return c.JSON(http.StatusInternalServerError, sessionResponse{Error: "Failed to reset config"})
	}
	equity := res.EquityBaseline
	return c.JSON(http.StatusOK, sessionResponse{
		OK:             true,
		UserID:         res.UserID,
		Reset:          res.Reset,
		EquityBaseline: &equity,
		Message:        res.Message,
	})
}
