package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"PriceFeed/internal/domain/models"
	domrepo "PriceFeed/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const sqlDate = "2006-01-02"

// pgExecutor is the subset of *pgxpool.Pool the session store needs.
type pgExecutor interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PGSessionStore mutates paper-trading session tables in Postgres.
type PGSessionStore struct {
	db    pgExecutor
	newID func() string
}

func NewPGSessionStore(db pgExecutor) *PGSessionStore {
	return &PGSessionStore{db: db, newID: func() string { return uuid.NewString() }}
}

func (s *PGSessionStore) ResetSessionState(ctx context.Context, userID string, now time.Time) error {
	_, err := s.db.Exec(ctx, `
		UPDATE paper_config
		SET is_running = false,
			session_status = $2,
			burst_requested = false,
			session_started_at = NULL,
			updated_at = $3
		WHERE user_id = $1`,
		userID, string(models.SessionIdle), now.UTC())
	if err != nil {
		return fmt.Errorf("update paper_config: %w", err)
	}
	return nil
}

func (s *PGSessionStore) ArchiveTrades(ctx context.Context, userID string, sessionDate, archiveDate time.Time) (int64, error) {
	tag, err := s.db.Exec(ctx, `
		UPDATE paper_trades
		SET session_date = $3
		WHERE user_id = $1 AND session_date = $2`,
		userID, sessionDate.UTC().Format(sqlDate), archiveDate.UTC().Format(sqlDate))
	if err != nil {
		return 0, fmt.Errorf("archive paper_trades: %w", err)
	}
	return tag.RowsAffected(), nil
}

// AccountEquity returns the equity of the user's paper account. found is false
// when the user has no paper account.
func (s *PGSessionStore) AccountEquity(ctx context.Context, userID string) (float64, bool, error) {
	var equity *float64
	err := s.db.QueryRow(ctx, `
		SELECT equity FROM accounts
		WHERE user_id = $1 AND type = 'paper'
		LIMIT 1`, userID).Scan(&equity)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("select account equity: %w", err)
	}
	if equity == nil {
		return 0, false, nil
	}
	return *equity, true, nil
}

func (s *PGSessionStore) UpsertDailyStats(ctx context.Context, st models.DailyStats) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO paper_stats_daily
			(user_id, trade_date, equity_start, equity_end, pnl, win_rate, trades_count, max_drawdown)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id, trade_date) DO UPDATE SET
			equity_start = EXCLUDED.equity_start,
			equity_end = EXCLUDED.equity_end,
			pnl = EXCLUDED.pnl,
			win_rate = EXCLUDED.win_rate,
			trades_count = EXCLUDED.trades_count,
			max_drawdown = EXCLUDED.max_drawdown`,
		st.UserID, st.TradeDate.UTC().Format(sqlDate), st.EquityStart, st.EquityEnd,
		st.PnL, st.WinRate, st.TradesCount, st.MaxDrawdown)
	if err != nil {
		return fmt.Errorf("upsert paper_stats_daily: %w", err)
	}
	return nil
}

func (s *PGSessionStore) AppendAudit(ctx context.Context, e models.AuditEntry) error {
	var meta []byte
	if e.Meta != nil {
		b, err := json.Marshal(e.Meta)
		if err != nil {
			return fmt.Errorf("marshal audit meta: %w", err)
		}
		meta = b
	}

	_, err := s.db.Exec(ctx, `
		INSERT INTO system_logs (id, user_id, level, source, message, meta)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		s.newID(), e.UserID, e.Level, e.Source, e.Message, meta)
	if err != nil {
		return fmt.Errorf("insert system_logs: %w", err)
	}
	return nil
}

var _ domrepo.SessionStore = (*PGSessionStore)(nil)
