package analytics

import (
	"math/rand/v2"
	"testing"
	"time"

	"PriceFeed/internal/domain/models"

	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 6, 2, 14, 30, 0, 0, time.UTC)

func fixed(v float64) func() float64 { return func() float64 { return v } }

func TestDeriveScenarioHighVolBeatsTrend(t *testing.T) {
	d := NewDeriver(WithRandom(fixed(0.5)), WithClock(func() time.Time { return fixedNow }))

	tick := d.Derive("BTCUSD", models.Quote{Current: 50000, High: 51000, Low: 49000, Open: 49500, PercentChange: 2.0})

	require.Equal(t, "BTCUSD", tick.Symbol)
	require.Equal(t, 50000.0, tick.Mid)
	require.InDelta(t, 4.0, tick.Volatility, 1e-9)
	require.Equal(t, models.RegimeHighVol, tick.Regime)
	require.Equal(t, fixedNow, tick.Timestamp)
	require.Equal(t, "1m", tick.Timeframe)
	require.Equal(t, models.SourceFinnhub, tick.Source)

	// 0.0002 + 0.5*0.0008 = 0.0006 of mid, split evenly
	require.InDelta(t, 49985.0, tick.Bid, 1e-6)
	require.InDelta(t, 50015.0, tick.Ask, 1e-6)
}

func TestDeriveSpreadBounds(t *testing.T) {
	q := models.Quote{Current: 1000}

	lo := NewDeriver(WithRandom(fixed(0))).Derive("X", q)
	require.InDelta(t, 1000*DefaultSpreadMinPct, lo.Spread(), 1e-9)

	hi := NewDeriver(WithRandom(fixed(0.999999))).Derive("X", q)
	require.Less(t, hi.Spread(), 1000*DefaultSpreadMaxPct)
	require.Greater(t, hi.Spread(), lo.Spread())
}

func TestDeriveCustomSpreadRange(t *testing.T) {
	d := NewDeriver(WithSpreadRange(0.01, 0.01), WithRandom(fixed(0.3)))
	tick := d.Derive("X", models.Quote{Current: 200})
	require.InDelta(t, 199.0, tick.Bid, 1e-9)
	require.InDelta(t, 201.0, tick.Ask, 1e-9)

	// inverted range is ignored
	d = NewDeriver(WithSpreadRange(0.01, 0.001), WithRandom(fixed(0)))
	require.InDelta(t, 200*DefaultSpreadMinPct, d.Derive("X", models.Quote{Current: 200}).Spread(), 1e-9)
}

func TestDeriveProperties(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	d := NewDeriver(WithRandom(r.Float64))

	for i := 0; i < 5000; i++ {
		mid := 0.0001 + r.Float64()*100000
		q := models.Quote{
			Current:       mid,
			PercentChange: (r.Float64() - 0.5) * 40,
		}
		if r.IntN(4) > 0 {
			q.High = mid * (1 + r.Float64()*0.5)
			q.Low = mid * (1 - r.Float64()*0.5)
		}

		tick := d.Derive("SYM", q)

		require.Less(t, tick.Bid, tick.Mid, "quote %+v", q)
		require.Less(t, tick.Mid, tick.Ask, "quote %+v", q)
		require.Greater(t, tick.Spread(), 0.0)
		require.GreaterOrEqual(t, tick.Volatility, MinVolatility)
		require.LessOrEqual(t, tick.Volatility, MaxVolatility)
		require.Contains(t, []models.Regime{
			models.RegimeTrend, models.RegimeRange, models.RegimeHighVol, models.RegimeLowVol,
		}, tick.Regime)
		if tick.Volatility > HighVolThreshold {
			require.Equal(t, models.RegimeHighVol, tick.Regime)
		}
		if tick.Volatility < LowVolThreshold {
			require.Equal(t, models.RegimeLowVol, tick.Regime)
		}
	}
}

func TestVolatility(t *testing.T) {
	tests := []struct {
		name           string
		high, low, mid float64
		want           float64
	}{
		{"range as percent of mid", 101, 99, 100, 2},
		{"clamped high", 200, 50, 100, MaxVolatility},
		{"clamped low", 100.01, 100, 100, MinVolatility},
		{"no high", 0, 99, 100, DefaultVolatility},
		{"no low", 101, 0, 100, DefaultVolatility},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.want, Volatility(tt.high, tt.low, tt.mid), 1e-9)
		})
	}
}

func TestDetectRegime(t *testing.T) {
	tests := []struct {
		name string
		dp   float64
		vol  float64
		want models.Regime
	}{
		{"quiet range", 0.2, 1.0, models.RegimeRange},
		{"up trend", 1.6, 1.0, models.RegimeTrend},
		{"down trend", -1.6, 1.0, models.RegimeTrend},
		{"threshold is exclusive", 1.5, 1.0, models.RegimeRange},
		{"high vol overrides trend", 3, 2.5, models.RegimeHighVol},
		{"low vol overrides trend", -3, 0.2, models.RegimeLowVol},
		{"default volatility stays range", 0, DefaultVolatility, models.RegimeRange},
		{"vol at upper band is not high", 0, 2.0, models.RegimeRange},
		{"vol at lower band is not low", 0, 0.3, models.RegimeRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, DetectRegime(tt.dp, tt.vol))
		})
	}
}
