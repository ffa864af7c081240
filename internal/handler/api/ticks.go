package api

import (
	"time"

	"PriceFeed/internal/domain/models"
	domrepo "PriceFeed/internal/domain/repository"
	xhttp "PriceFeed/pkg/http"
	applogger "PriceFeed/pkg/logger"
	"PriceFeed/pkg/util"

	"github.com/labstack/echo/v4"
)

const defaultHistoryWindow = 24 * time.Hour

type symbolNormalizer interface {
	Normalize(symbol string) string
}

// TicksHandler serves the read side: cached latest ticks and stored history.
// Ticks are stored under normalized symbols, so lookups normalize first.
type TicksHandler struct {
	store domrepo.TickStore
	cache domrepo.TickCache
	norm  symbolNormalizer
	now   func() time.Time
	l     *applogger.Logger
}

// NewTicksHandler wires the read endpoints. norm may be nil when callers
// already send normalized symbols.
func NewTicksHandler(store domrepo.TickStore, cache domrepo.TickCache, norm symbolNormalizer, l *applogger.Logger) *TicksHandler {
	if l == nil {
		l = applogger.Nop()
	}
	return &TicksHandler{store: store, cache: cache, norm: norm, now: time.Now, l: l}
}

func (h *TicksHandler) normalize(symbol string) string {
	if h.norm == nil {
		return symbol
	}
	return h.norm.Normalize(symbol)
}

func (h *TicksHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/ticks")
	g.GET("/latest", h.Latest)
	g.GET("/history", h.History)
}

func (h *TicksHandler) Latest(c echo.Context) error {
	req := &models.LatestTicksRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	if h.cache == nil {
		return xhttp.AppErrorResponse(c, xhttp.ServiceUnavailableError("tick cache is not enabled"))
	}

	symbols := util.SplitCSV(req.Symbols)
	for i, s := range symbols {
		symbols[i] = h.normalize(s)
	}
	if len(symbols) == 0 {
		return xhttp.AppErrorResponse(c, xhttp.BadRequestErrorf("symbols", "symbols must list at least one symbol"))
	}

	ticks, err := h.cache.Latest(c.Request().Context(), symbols)
	if err != nil {
		h.l.Error("latest ticks lookup failed", applogger.Strings("symbols", symbols), applogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalError("latest ticks lookup failed").WithError(err))
	}
	return xhttp.SuccessResponse(c, ticks)
}

func (h *TicksHandler) History(c echo.Context) error {
	req := &models.TickHistoryRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	if h.store == nil {
		return xhttp.AppErrorResponse(c, xhttp.ServiceUnavailableError("tick store is not configured"))
	}

	to := xhttp.ParseTimeDefault(req.To, h.now().UTC())
	from := xhttp.ParseTimeDefault(req.From, to.Add(-defaultHistoryWindow))
	if from.After(to) {
		return xhttp.AppErrorResponse(c, xhttp.BadRequestErrorf("from", "from must not be after to").
			WithParam("from", from.Format(time.RFC3339)).
			WithParam("to", to.Format(time.RFC3339)))
	}

	symbol := h.normalize(req.Symbol)
	ticks, err := h.store.History(c.Request().Context(), symbol, from, to, req.Limit)
	if err != nil {
		h.l.Error("tick history lookup failed", applogger.String("symbol", symbol), applogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalError("tick history lookup failed").WithError(err))
	}
	return xhttp.ListResponse(c, ticks, int64(len(ticks)))
}
