package analytics

import (
	"math/rand"
	"time"

	"PriceFeed/internal/domain/models"
	drepo "PriceFeed/internal/domain/repository"
	domsvc "PriceFeed/internal/domain/service"
)

const (
	DefaultSpreadMinPct = 0.0002
	DefaultSpreadMaxPct = 0.0010
)

// Deriver turns a quote into a tick with a synthetic spread. The spread draw is
// random on purpose: it stands in for execution cost without an order book.
type Deriver struct {
	minPct float64
	maxPct float64
	rnd    func() float64
	now    func() time.Time
}

// Option configures Deriver.
type Option func(*Deriver)

// WithSpreadRange sets the spread percentage range as fractions of mid.
// Invalid ranges are ignored.
func WithSpreadRange(minPct, maxPct float64) Option {
	return func(d *Deriver) {
		if minPct > 0 && maxPct >= minPct {
			d.minPct = minPct
			d.maxPct = maxPct
		}
	}
}

// WithRandom replaces the uniform [0,1) source used for the spread draw.
func WithRandom(rnd func() float64) Option {
	return func(d *Deriver) {
		if rnd != nil {
			d.rnd = rnd
		}
	}
}

// WithClock replaces time.Now for the tick timestamp.
func WithClock(now func() time.Time) Option {
	return func(d *Deriver) {
		if now != nil {
			d.now = now
		}
	}
}

func NewDeriver(opts ...Option) *Deriver {
	d := &Deriver{
		minPct: DefaultSpreadMinPct,
		maxPct: DefaultSpreadMaxPct,
		rnd:    rand.Float64,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Derive builds the tick for symbol. q must carry data (q.HasData()).
func (d *Deriver) Derive(symbol string, q models.Quote) models.Tick {
	mid := q.Current

	spreadPct := d.minPct + d.rnd()*(d.maxPct-d.minPct)
	half := mid * spreadPct / 2

	vol := Volatility(q.High, q.Low, mid)

	return models.Tick{
		Symbol:     symbol,
		Bid:        mid - half,
		Ask:        mid + half,
		Mid:        mid,
		Volatility: vol,
		Regime:     DetectRegime(q.PercentChange, vol),
		Timestamp:  d.now().UTC(),
		Timeframe:  string(drepo.DefaultTimeframe()),
		Source:     models.SourceFinnhub,
	}
}

var _ domsvc.TickDeriver = (*Deriver)(nil)
