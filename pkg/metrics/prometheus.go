package metrics

import (
	"PriceFeed/internal/domain/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements repository.Metrics using Prometheus.
type Recorder struct {
	fetches   *prometheus.CounterVec
	errors    *prometheus.CounterVec
	persisted *prometheus.CounterVec
	lastMid   *prometheus.GaugeVec
	lastVol   *prometheus.GaugeVec
	regime    *prometheus.GaugeVec
	latency   *prometheus.HistogramVec
}

// New registers the collectors on the default registry.
func New() *Recorder {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer registers the collectors on reg. Tests pass a fresh registry.
func NewWithRegisterer(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		fetches: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pricefeed_quote_fetches_total",
				Help: "Quote fetches by symbol and result",
			},
			[]string{"symbol", "result"},
		),
		errors: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pricefeed_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		persisted: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pricefeed_ticks_persisted_total",
				Help: "Ticks handed to each sink backend",
			},
			[]string{"backend"},
		),
		lastMid: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "pricefeed_last_mid",
				Help: "Last derived mid price for a symbol",
			},
			[]string{"symbol"},
		),
		lastVol: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "pricefeed_last_volatility",
				Help: "Last derived volatility score for a symbol",
			},
			[]string{"symbol"},
		),
		regime: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "pricefeed_regime",
				Help: "1 for the current regime of a symbol, 0 otherwise",
			},
			[]string{"symbol", "regime"},
		),
		latency: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pricefeed_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordFetch counts one quote fetch. result is ok, unknown_symbol or a fetch error kind.
func (r *Recorder) RecordFetch(symbol, result string) {
	r.fetches.WithLabelValues(symbol, result).Inc()
}

func (r *Recorder) RecordError(kind string) {
	r.errors.WithLabelValues(kind).Inc()
}

// RecordTick exports the last mid, volatility and a one-hot regime gauge.
func (r *Recorder) RecordTick(t models.Tick) {
	r.lastMid.WithLabelValues(t.Symbol).Set(t.Mid)
	r.lastVol.WithLabelValues(t.Symbol).Set(t.Volatility)
	for _, reg := range []models.Regime{
		models.RegimeTrend, models.RegimeRange, models.RegimeHighVol,
		models.RegimeLowVol, models.RegimeNewsRisk,
	} {
		v := 0.0
		if reg == t.Regime {
			v = 1
		}
		r.regime.WithLabelValues(t.Symbol, string(reg)).Set(v)
	}
}

func (r *Recorder) RecordPersisted(backend string, n int) {
	r.persisted.WithLabelValues(backend).Add(float64(n))
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}

// Nop discards everything.
type Nop struct{}

func (Nop) RecordFetch(string, string)    {}
func (Nop) RecordError(string)            {}
func (Nop) RecordTick(models.Tick)        {}
func (Nop) RecordPersisted(string, int)   {}
func (Nop) RecordLatency(string, float64) {}
