package analytics

import (
	"math"

	"PriceFeed/internal/domain/models"
)

const (
	// MinVolatility and MaxVolatility bound the volatility score.
	MinVolatility = 0.1
	MaxVolatility = 10.0
	// DefaultVolatility is used when the quote carries no daily range.
	DefaultVolatility = 0.5

	// TrendThreshold is the absolute daily percent change above which a move is a trend.
	TrendThreshold   = 1.5
	HighVolThreshold = 2.0
	LowVolThreshold  = 0.3
)

// Volatility scores the daily high/low range as a percentage of mid, clamped to
// [MinVolatility, MaxVolatility]. Without a positive high and low it returns
// DefaultVolatility.
func Volatility(high, low, mid float64) float64 {
	if high <= 0 || low <= 0 || mid <= 0 {
		return DefaultVolatility
	}
	v := (high - low) / mid * 100
	return math.Min(math.Max(v, MinVolatility), MaxVolatility)
}

// DetectRegime starts from range, promotes to trend on a large daily move in
// either direction, then lets the volatility bands overwrite the result.
func DetectRegime(percentChange, volatility float64) models.Regime {
	regime := models.RegimeRange
	if math.Abs(percentChange) > TrendThreshold {
		regime = models.RegimeTrend
	}

	if volatility > HighVolThreshold {
		regime = models.RegimeHighVol
	} else if volatility < LowVolThreshold {
		regime = models.RegimeLowVol
	}
	return regime
}
