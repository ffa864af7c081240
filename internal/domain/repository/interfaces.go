package repository

import (
	"context"
	"time"

	"PriceFeed/internal/domain/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// QuoteSource fetches one point-in-time quote for a provider symbol.
type QuoteSource interface {
	Quote(ctx context.Context, providerSymbol string) (*models.Quote, error)
	// Configured is false when the source has no credentials.
	Configured() bool
}

// TickStore is the append-only time-series store for derived ticks.
type TickStore interface {
	StoreBatch(ctx context.Context, ticks []models.Tick) error
	History(ctx context.Context, symbol string, from, to time.Time, limit int) ([]models.Tick, error)
	Health(ctx context.Context) error
}

// TickPublisher fans ticks out to downstream consumers.
type TickPublisher interface {
	PublishBatch(ctx context.Context, ticks []models.Tick) error
	Close() error
}

// TickCache keeps the most recent tick per symbol.
type TickCache interface {
	PutLatest(ctx context.Context, ticks []models.Tick) error
	Latest(ctx context.Context, symbols []string) (map[string]models.Tick, error)
}

// SymbolRegistry lists the active internal symbols of an asset class.
type SymbolRegistry interface {
	ActiveSymbols(ctx context.Context, assetType string) ([]string, error)
}

// SessionStore mutates session-control state for a user.
type SessionStore interface {
	ResetSessionState(ctx context.Context, userID string, now time.Time) error
	// ArchiveTrades moves trades dated sessionDate to archiveDate and returns how many moved.
	ArchiveTrades(ctx context.Context, userID string, sessionDate, archiveDate time.Time) (int64, error)
	AccountEquity(ctx context.Context, userID string) (float64, bool, error)
	UpsertDailyStats(ctx context.Context, stats models.DailyStats) error
	AppendAudit(ctx context.Context, entry models.AuditEntry) error
}

type Metrics interface {
	RecordFetch(symbol, result string)
	RecordError(kind string)
	RecordTick(tick models.Tick)
	RecordPersisted(backend string, n int)
	RecordLatency(op string, seconds float64)
}
