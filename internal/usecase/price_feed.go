package usecase

import (
	"context"
	"errors"
	"time"

	"PriceFeed/internal/domain/models"
	drepo "PriceFeed/internal/domain/repository"
	domsvc "PriceFeed/internal/domain/service"
	"PriceFeed/internal/service/finnhub"
	applogger "PriceFeed/pkg/logger"
)

var (
	ErrAPIKeyMissing = errors.New("API key not configured")
	ErrStoreMissing  = errors.New("tick store not configured")
)

// Per-symbol failure reasons reported to the caller.
const (
	ReasonUnknownSymbol = "Unknown symbol"
	ReasonFetchFailed   = "Failed to fetch quote"
)

// DefaultPaceInterval keeps the sequential fetch loop under the provider's rate limit.
const DefaultPaceInterval = 100 * time.Millisecond

// Pacer blocks between two consecutive provider calls.
type Pacer func(ctx context.Context)

// TimerPacer waits d or until ctx is done.
func TimerPacer(d time.Duration) Pacer {
	return func(ctx context.Context) {
		if d <= 0 {
			return
		}
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-ctx.Done():
		case <-t.C:
		}
	}
}

// PriceFeedUseCase runs one batch: resolve, fetch, derive, persist.
type PriceFeedUseCase struct {
	resolver domsvc.SymbolResolver
	quotes   drepo.QuoteSource
	deriver  domsvc.TickDeriver
	sink     *TickSink
	metrics  drepo.Metrics
	pace     Pacer
	now      func() time.Time
	l        *applogger.Logger
}

// PriceFeedOption configures PriceFeedUseCase.
type PriceFeedOption func(*PriceFeedUseCase)

func WithPacer(p Pacer) PriceFeedOption {
	return func(uc *PriceFeedUseCase) {
		if p != nil {
			uc.pace = p
		}
	}
}

func WithClock(now func() time.Time) PriceFeedOption {
	return func(uc *PriceFeedUseCase) {
		if now != nil {
			uc.now = now
		}
	}
}

func WithLogger(l *applogger.Logger) PriceFeedOption {
	return func(uc *PriceFeedUseCase) {
		if l != nil {
			uc.l = l
		}
	}
}

func NewPriceFeedUseCase(
	resolver domsvc.SymbolResolver,
	quotes drepo.QuoteSource,
	deriver domsvc.TickDeriver,
	sink *TickSink,
	metrics drepo.Metrics,
	opts ...PriceFeedOption,
) *PriceFeedUseCase {
	uc := &PriceFeedUseCase{
		resolver: resolver,
		quotes:   quotes,
		deriver:  deriver,
		sink:     sink,
		metrics:  metrics,
		pace:     TimerPacer(DefaultPaceInterval),
		now:      time.Now,
		l:        applogger.Nop(),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Run processes the requested symbols (or the default universe) strictly in
// order. A single symbol failure never aborts the batch. Only configuration
// problems return an error, and they do so before any provider call.
func (uc *PriceFeedUseCase) Run(ctx context.Context, requested []string) (*models.BatchResult, error) {
	if uc.quotes == nil || !uc.quotes.Configured() {
		return nil, ErrAPIKeyMissing
	}
	if !uc.sink.Ready() {
		return nil, ErrStoreMissing
	}

	start := time.Now()
	universe := uc.resolver.Universe(ctx, requested)
	result := models.NewBatchResult()
	ticks := make([]models.Tick, 0, len(universe))

	for i, symbol := range universe {
		if i > 0 {
			uc.pace(ctx)
		}

		providerSymbol, ok := uc.resolver.Resolve(symbol)
		if !ok {
			result.Errors[symbol] = ReasonUnknownSymbol
			uc.metrics.RecordFetch(symbol, "unknown_symbol")
			uc.l.Warn("no provider mapping", applogger.String("symbol", symbol))
			continue
		}

		q, err := uc.quotes.Quote(ctx, providerSymbol)
		if err != nil {
			result.Errors[symbol] = ReasonFetchFailed
			uc.metrics.RecordFetch(symbol, fetchResult(err))
			continue
		}

		tick := uc.deriver.Derive(uc.resolver.Normalize(symbol), *q)
		result.Ticks[tick.Symbol] = tick
		ticks = append(ticks, tick)
		uc.metrics.RecordFetch(symbol, "ok")
		uc.metrics.RecordTick(tick)
	}

	uc.sink.Persist(ctx, ticks)

	result.PauseTrading = len(result.Ticks) == 0
	result.Source = models.SourceFinnhub
	if result.PauseTrading {
		result.Source = models.SourceNoData
	}
	result.Timestamp = uc.now().UTC()

	uc.metrics.RecordLatency("price_feed_run", time.Since(start).Seconds())
	uc.l.Info("price feed batch complete",
		applogger.Int("requested", len(universe)),
		applogger.Int("ticks", len(result.Ticks)),
		applogger.Int("errors", len(result.Errors)),
		applogger.Bool("pause_trading", result.PauseTrading),
		applogger.Duration("duration_ms", time.Since(start)),
	)

	return result, nil
}

func fetchResult(err error) string {
	if kind := finnhub.KindOf(err); kind != "" {
		return string(kind)
	}
	return "error"
}
