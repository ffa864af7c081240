package models

import "time"

// Regime is a coarse label for current market behaviour.
type Regime string

const (
	RegimeTrend    Regime = "trend"
	RegimeRange    Regime = "range"
	RegimeHighVol  Regime = "high_vol"
	RegimeLowVol   Regime = "low_vol"
	RegimeNewsRisk Regime = "news_risk" // part of the label set, never derived from a quote
)

// Valid reports whether r belongs to the closed label set.
func (r Regime) Valid() bool {
	switch r {
	case RegimeTrend, RegimeRange, RegimeHighVol, RegimeLowVol, RegimeNewsRisk:
		return true
	default:
		return false
	}
}

// Tick is one derived market observation. Values are immutable once created.
type Tick struct {
	Symbol     string    `json:"symbol"`
	Bid        float64   `json:"bid"`
	Ask        float64   `json:"ask"`
	Mid        float64   `json:"mid"`
	Volatility float64   `json:"volatility"`
	Regime     Regime    `json:"regime"`
	Timestamp  time.Time `json:"timestamp"`
	Timeframe  string    `json:"timeframe"`
	Source     string    `json:"source"`
}

// Spread returns ask minus bid.
func (t Tick) Spread() float64 { return t.Ask - t.Bid }

const (
	SourceFinnhub = "finnhub"
	SourceNoData  = "NO_DATA"
)

// BatchResult is the outcome of one price-feed run.
type BatchResult struct {
	Ticks        map[string]Tick   // keyed by normalized internal symbol
	Errors       map[string]string // keyed by the symbol as requested
	PauseTrading bool
	Source       string
	Timestamp    time.Time
}

// NewBatchResult returns an empty result ready to accumulate.
func NewBatchResult() *BatchResult {
	return &BatchResult{
		Ticks:  make(map[string]Tick),
		Errors: make(map[string]string),
	}
}
