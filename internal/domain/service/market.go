package service

import (
	"context"

	"PriceFeed/internal/domain/models"
)

// SymbolResolver maps internal identifiers to provider symbols and supplies
// the symbol universe when the caller requests none.
type SymbolResolver interface {
	Resolve(symbol string) (providerSymbol string, ok bool)
	Normalize(symbol string) string
	Universe(ctx context.Context, requested []string) []string
}

// TickDeriver turns a valid quote into a tick. It cannot fail.
type TickDeriver interface {
	Derive(symbol string, q models.Quote) models.Tick
}
