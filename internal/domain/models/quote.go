package models

// Quote is a provider-native point-in-time quote. It is consumed once by the
// deriver and never persisted in this shape.
type Quote struct {
	Current       float64 `json:"c"`
	Change        float64 `json:"d"`
	PercentChange float64 `json:"dp"`
	High          float64 `json:"h"`
	Low           float64 `json:"l"`
	Open          float64 `json:"o"`
	PrevClose     float64 `json:"pc"`
	Timestamp     int64   `json:"t"` // unix seconds, provider clock
}

// HasData reports whether the provider actually returned a price.
// Finnhub answers unknown or closed instruments with an all-zero body.
func (q Quote) HasData() bool {
	return q.Current > 0
}
