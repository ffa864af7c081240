package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	domrepo "PriceFeed/internal/domain/repository"
	"PriceFeed/pkg/cache"
	applogger "PriceFeed/pkg/logger"

	"github.com/jackc/pgx/v5"
)

type rowsQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PGSymbolRegistry reads the active instrument list from the symbols table.
type PGSymbolRegistry struct {
	db rowsQuerier
}

func NewPGSymbolRegistry(db rowsQuerier) *PGSymbolRegistry {
	return &PGSymbolRegistry{db: db}
}

func (r *PGSymbolRegistry) ActiveSymbols(ctx context.Context, assetType string) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT symbol FROM symbols WHERE is_active = true AND type = $1`, assetType)
	if err != nil {
		return nil, fmt.Errorf("query active symbols: %w", err)
	}

	symbols, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scan active symbols: %w", err)
	}
	return symbols, nil
}

// CachedSymbolRegistry memoizes registry reads per asset class for ttl.
type CachedSymbolRegistry struct {
	next  domrepo.SymbolRegistry
	cache cache.Service
	ttl   time.Duration
	l     *applogger.Logger
}

func NewCachedSymbolRegistry(next domrepo.SymbolRegistry, c cache.Service, ttl time.Duration, l *applogger.Logger) *CachedSymbolRegistry {
	if l == nil {
		l = applogger.Nop()
	}
	return &CachedSymbolRegistry{next: next, cache: c, ttl: ttl, l: l}
}

func (r *CachedSymbolRegistry) ActiveSymbols(ctx context.Context, assetType string) ([]string, error) {
	key := "symbols:active:" + assetType

	var symbols []string
	err := r.cache.Get(ctx, key, &symbols)
	if err == nil {
		return symbols, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		r.l.Warn("symbol registry cache read failed", applogger.String("key", key), applogger.Error(err))
	}

	symbols, err = r.next.ActiveSymbols(ctx, assetType)
	if err != nil {
		return nil, err
	}
	// an empty registry is not cached so a freshly seeded table shows up at once
	if len(symbols) > 0 {
		if err := r.cache.Set(ctx, key, symbols, r.ttl); err != nil {
			r.l.Warn("symbol registry cache write failed", applogger.String("key", key), applogger.Error(err))
		}
	}
	return symbols, nil
}

var (
	_ domrepo.SymbolRegistry = (*PGSymbolRegistry)(nil)
	_ domrepo.SymbolRegistry = (*CachedSymbolRegistry)(nil)
)
