package symbols

import (
	"context"
	"strings"

	drepo "PriceFeed/internal/domain/repository"
	domsvc "PriceFeed/internal/domain/service"
	applogger "PriceFeed/pkg/logger"
)

// Separator splits base and quote asset in identifiers such as "BTC/USD".
const Separator = "/"

// DefaultSymbolMap is the built-in internal → Finnhub mapping.
func DefaultSymbolMap() map[string]string {
	return map[string]string{
		"BTCUSD":  "BINANCE:BTCUSDT",
		"BTC/USD": "BINANCE:BTCUSDT",
		"ETHUSD":  "BINANCE:ETHUSDT",
		"ETH/USD": "BINANCE:ETHUSDT",
	}
}

// DefaultUniverse is used when neither the caller nor the registry supplies symbols.
func DefaultUniverse() []string { return []string{"BTCUSD", "ETHUSD"} }

// Resolver is an immutable lookup table plus the default-universe fallback chain.
type Resolver struct {
	mapping   map[string]string
	defaults  []string
	assetType string
	registry  drepo.SymbolRegistry
	l         *applogger.Logger
}

// Option configures Resolver.
type Option func(*Resolver)

// WithMapping merges extra entries over the built-in mapping.
func WithMapping(m map[string]string) Option {
	return func(r *Resolver) {
		for k, v := range m {
			if k != "" && v != "" {
				r.mapping[k] = v
			}
		}
	}
}

// WithDefaults replaces the built-in default universe.
func WithDefaults(symbols []string) Option {
	return func(r *Resolver) {
		if len(symbols) > 0 {
			r.defaults = append([]string(nil), symbols...)
		}
	}
}

// WithRegistry sets the active-symbol registry consulted for empty requests.
func WithRegistry(reg drepo.SymbolRegistry, assetType string) Option {
	return func(r *Resolver) {
		r.registry = reg
		if assetType != "" {
			r.assetType = assetType
		}
	}
}

// WithLogger injects a structured logger.
func WithLogger(l *applogger.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.l = l
		}
	}
}

func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		mapping:   DefaultSymbolMap(),
		defaults:  DefaultUniverse(),
		assetType: "crypto",
		l:         applogger.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Normalize strips the base/quote separator.
func (r *Resolver) Normalize(symbol string) string {
	return strings.ReplaceAll(strings.TrimSpace(symbol), Separator, "")
}

// Resolve prefers the normalized form and falls back to the symbol as given.
func (r *Resolver) Resolve(symbol string) (string, bool) {
	if ps, ok := r.mapping[r.Normalize(symbol)]; ok {
		return ps, true
	}
	ps, ok := r.mapping[symbol]
	return ps, ok
}

// Universe returns requested when non-empty, else the registry's active symbols
// for the configured asset class, else the built-in defaults.
func (r *Resolver) Universe(ctx context.Context, requested []string) []string {
	if len(requested) > 0 {
		return requested
	}

	if r.registry != nil {
		active, err := r.registry.ActiveSymbols(ctx, r.assetType)
		if err != nil {
			r.l.Warn("symbol registry lookup failed, using defaults",
				applogger.String("asset_type", r.assetType),
				applogger.Error(err),
			)
		} else if len(active) > 0 {
			return active
		}
	}

	return append([]string(nil), r.defaults...)
}

var _ domsvc.SymbolResolver = (*Resolver)(nil)
