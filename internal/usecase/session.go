package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"PriceFeed/internal/domain/models"
	drepo "PriceFeed/internal/domain/repository"
	applogger "PriceFeed/pkg/logger"
	"PriceFeed/pkg/util"
)

// DefaultEquity seeds the daily stats when the user has no paper account.
const DefaultEquity = 10000.0

const (
	auditSource     = "execution"
	restartMessage  = "Session reset complete. Press Start to begin trading."
	resetAuditMsg   = "SESSION: Reset - clean slate for new trading session"
	restartAuditMsg = "SYSTEM: Restart/Unlock executed"
)

var ErrSessionStoreMissing = errors.New("session store not configured")

// SessionUseCase resets the paper-trading session state of a user.
type SessionUseCase struct {
	store drepo.SessionStore
	now   func() time.Time
	l     *applogger.Logger
}

func NewSessionUseCase(store drepo.SessionStore, l *applogger.Logger) *SessionUseCase {
	if l == nil {
		l = applogger.Nop()
	}
	return &SessionUseCase{store: store, now: time.Now, l: l}
}

// SetClock overrides time.Now. Dates are taken in UTC.
func (uc *SessionUseCase) SetClock(now func() time.Time) { uc.now = now }

// Reset idles the session and moves today's trades to yesterday so they no
// longer count towards today's locks and stats.
func (uc *SessionUseCase) Reset(ctx context.Context, userID string) (*models.SessionResult, error) {
	if uc.store == nil {
		return nil, ErrSessionStoreMissing
	}
	now := uc.now().UTC()

	if err := uc.store.ResetSessionState(ctx, userID, now); err != nil {
		return nil, fmt.Errorf("reset session state: %w", err)
	}

	today := util.StartOfDay(now)
	moved, err := uc.store.ArchiveTrades(ctx, userID, today, today.AddDate(0, 0, -1))
	if err != nil {
		uc.l.Warn("archive trades failed", applogger.String("user_id", userID), applogger.Error(err))
	}

	uc.audit(ctx, models.AuditEntry{
		UserID:  userID,
		Level:   "info",
		Source:  auditSource,
		Message: resetAuditMsg,
	})

	uc.l.Info("session reset",
		applogger.String("user_id", userID),
		applogger.Int64("archived_trades", moved),
	)
	return &models.SessionResult{UserID: userID, Reset: true}, nil
}

// Restart idles the session and re-seeds today's stats from the account equity.
func (uc *SessionUseCase) Restart(ctx context.Context, userID string) (*models.SessionResult, error) {
	if uc.store == nil {
		return nil, ErrSessionStoreMissing
	}
	now := uc.now().UTC()

	equity, found, err := uc.store.AccountEquity(ctx, userID)
	if err != nil {
		uc.l.Warn("account equity lookup failed", applogger.String("user_id", userID), applogger.Error(err))
	}
	if err != nil || !found || equity == 0 {
		equity = DefaultEquity
	}

	if err := uc.store.ResetSessionState(ctx, userID, now); err != nil {
		return nil, fmt.Errorf("reset session state: %w", err)
	}

	stats := models.DailyStats{
		UserID:      userID,
		TradeDate:   util.StartOfDay(now),
		EquityStart: equity,
		EquityEnd:   equity,
	}
	if err := uc.store.UpsertDailyStats(ctx, stats); err != nil {
		uc.l.Warn("daily stats reset failed", applogger.String("user_id", userID), applogger.Error(err))
	}

	uc.audit(ctx, models.AuditEntry{
		UserID:  userID,
		Level:   "info",
		Source:  auditSource,
		Message: restartAuditMsg,
		Meta: map[string]interface{}{
			"action":          "restart",
			"equity_baseline": equity,
			"timestamp":       now.Format(time.RFC3339Nano),
		},
	})

	uc.l.Info("session restarted",
		applogger.String("user_id", userID),
		applogger.Float64("equity_baseline", equity),
	)
	return &models.SessionResult{
		UserID:         userID,
		Reset:          true,
		EquityBaseline: equity,
		Message:        restartMessage,
	}, nil
}

func (uc *SessionUseCase) audit(ctx context.Context, entry models.AuditEntry) {
	if err := uc.store.AppendAudit(ctx, entry); err != nil {
		uc.l.Warn("audit log append failed", applogger.String("user_id", entry.UserID), applogger.Error(err))
	}
}
