package models

import "time"

// Session control state mutated by the reset and restart endpoints.

type SessionStatus string

const (
	SessionIdle         SessionStatus = "idle"
	SessionScanning     SessionStatus = "scanning"
	SessionInTrade      SessionStatus = "in_trade"
	SessionBurstRunning SessionStatus = "burst_running"
	SessionRiskPaused   SessionStatus = "risk_paused"
	SessionError        SessionStatus = "error"
)

// DailyStats is the per-day statistics record seeded from account equity.
type DailyStats struct {
	UserID      string
	TradeDate   time.Time
	EquityStart float64
	EquityEnd   float64
	PnL         float64
	WinRate     float64
	TradesCount int
	MaxDrawdown float64
}

// AuditEntry is appended to the system log on every session mutation.
type AuditEntry struct {
	UserID  string
	Level   string
	Source  string
	Message string
	Meta    map[string]interface{}
}

// SessionResult is returned to the caller of reset/restart.
type SessionResult struct {
	UserID         string
	Reset          bool
	EquityBaseline float64
	Message        string
}
