package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"PriceFeed/internal/domain/models"
	"PriceFeed/internal/service/ratelimit"
	"PriceFeed/internal/usecase"
	xhttp "PriceFeed/pkg/http"
	"PriceFeed/pkg/http/middleware"
	applogger "PriceFeed/pkg/logger"
	"PriceFeed/pkg/util"

	"github.com/labstack/echo/v4"
)

const maxBodyBytes = 64 << 10

type priceFeedRunner interface {
	Run(ctx context.Context, requested []string) (*models.BatchResult, error)
}

// priceFeedResponse is the wire contract consumed by the trading simulator.
type priceFeedResponse struct {
	Ticks              map[string]models.Tick `json:"ticks"`
	Timestamp          string                 `json:"timestamp"`
	Source             string                 `json:"source,omitempty"`
	Error              string                 `json:"error,omitempty"`
	Errors             map[string]string      `json:"errors,omitempty"`
	ShouldPauseTrading bool                   `json:"shouldPauseTrading"`
}

type priceFeedFailure struct {
	Error              string      `json:"error"`
	Details            interface{} `json:"details,omitempty"`
	ShouldPauseTrading bool        `json:"shouldPauseTrading"`
}

var panicBody = priceFeedFailure{Error: "Internal server error", ShouldPauseTrading: true}

type PriceFeedHandler struct {
	uc priceFeedRunner
	rl *ratelimit.Limiter
	l  *applogger.Logger
}

// NewPriceFeedHandler wires the price-feed trigger. rl may be nil to disable
// inbound limiting.
func NewPriceFeedHandler(uc priceFeedRunner, rl *ratelimit.Limiter, l *applogger.Logger) *PriceFeedHandler {
	if l == nil {
		l = applogger.Nop()
	}
	return &PriceFeedHandler{uc: uc, rl: rl, l: l}
}

func (h *PriceFeedHandler) RegisterRoutes(e *echo.Echo) {
	guard := middleware.RecoverWithBody(h.l, panicBody)
	e.POST("/api/price-feed", h.PriceFeed, guard)
	e.GET("/api/price-feed", h.PriceFeed, guard)
	e.POST("/price-feed", h.PriceFeed, guard)
}

// PriceFeed runs one batch. A missing or malformed body falls back to the
// default universe.
func (h *PriceFeedHandler) PriceFeed(c echo.Context) error {
	if !h.rl.Allow(c.RealIP() + ":price-feed") {
		h.l.Warn("price feed rate limited", applogger.String("remote", c.RealIP()))
		return c.JSON(http.StatusTooManyRequests, priceFeedFailure{Error: "Too many requests", ShouldPauseTrading: true})
	}

	req := h.readRequest(c)
	if verr := xhttp.ValidateRequest(c.Request().Context(), req); verr != nil {
		return c.JSON(http.StatusBadRequest, priceFeedFailure{
			Error:              "Invalid request",
			Details:            verr,
			ShouldPauseTrading: true,
		})
	}

	res, err := h.uc.Run(c.Request().Context(), req.Symbols)
	switch {
	case errors.Is(err, usecase.ErrAPIKeyMissing), errors.Is(err, usecase.ErrStoreMissing):
		h.l.Error("price feed misconfigured", applogger.Error(err))
		return c.JSON(http.StatusInternalServerError, priceFeedFailure{Error: err.Error(), ShouldPauseTrading: true})
	case err != nil:
		h.l.Error("price feed run failed", applogger.Error(err))
		return c.JSON(http.StatusInternalServerError, panicBody)
	}

	ts := res.Timestamp.UTC().Format(time.RFC3339Nano)
	if res.PauseTrading {
		return c.JSON(http.StatusServiceUnavailable, priceFeedResponse{
			Ticks:              map[string]models.Tick{},
			Timestamp:          ts,
			Source:             models.SourceNoData,
			Error:              "Failed to fetch any quotes",
			Errors:             res.Errors,
			ShouldPauseTrading: true,
		})
	}

	out := priceFeedResponse{
		Ticks:     res.Ticks,
		Timestamp: ts,
		Source:    res.Source,
	}
	if len(res.Errors) > 0 {
		out.Errors = res.Errors
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PriceFeedHandler) readRequest(c echo.Context) *models.PriceFeedRequest {
	req := &models.PriceFeedRequest{}
	if c.Request().Method == http.MethodGet {
		req.Symbols = util.SplitCSV(c.QueryParam("symbols"))
		return req
	}

	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxBodyBytes))
	if err != nil || len(body) == 0 {
		return req
	}
	if err := json.Unmarshal(body, req); err != nil {
		h.l.Debug("ignoring malformed price feed body", applogger.Error(err))
		return &models.PriceFeedRequest{}
	}
	return req
}
