package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"PriceFeed/internal/domain/models"
	domrepo "PriceFeed/internal/domain/repository"
	applogger "PriceFeed/pkg/logger"
)

// insertChunkSize caps rows per multi-row INSERT.
const insertChunkSize = 2000

const tickColumns = "symbol, bid, ask, mid, volatility, regime, ts, timeframe, source"

// TickSchema returns the idempotent DDL for the tick table.
func TickSchema(table string) []string {
	return []string{fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			symbol     LowCardinality(String),
			bid        Float64,
			ask        Float64,
			mid        Float64,
			volatility Float64,
			regime     LowCardinality(String),
			ts         DateTime64(3, 'UTC'),
			timeframe  LowCardinality(String),
			source     LowCardinality(String)
		)
		ENGINE = MergeTree
		PARTITION BY toYYYYMM(ts)
		ORDER BY (symbol, ts)`, table)}
}

// CHTickStore is the append-only ClickHouse tick table.
type CHTickStore struct {
	db    *sql.DB
	table string
	l     *applogger.Logger
}

func NewCHTickStore(db *sql.DB, table string, l *applogger.Logger) *CHTickStore {
	if l == nil {
		l = applogger.Nop()
	}
	return &CHTickStore{db: db, table: table, l: l}
}

// StoreBatch inserts ticks with multi-row VALUES statements.
func (s *CHTickStore) StoreBatch(ctx context.Context, ticks []models.Tick) error {
	for start := 0; start < len(ticks); start += insertChunkSize {
		end := min(start+insertChunkSize, len(ticks))

		q, args := buildTickInsert(s.table, ticks[start:end])
		if len(args) == 0 {
			continue
		}
		if _, err := s.db.ExecContext(ctx, q, args...); err != nil {
			return fmt.Errorf("insert ticks: %w", err)
		}
	}
	return nil
}

// History returns ticks for symbol in [from, to], newest first.
func (s *CHTickStore) History(ctx context.Context, symbol string, from, to time.Time, limit int) ([]models.Tick, error) {
	q := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE symbol = ? AND ts >= ? AND ts <= ?
		ORDER BY ts DESC
		LIMIT ?`, tickColumns, s.table)

	rows, err := s.db.QueryContext(ctx, q, symbol, from, to, limit)
	if err != nil {
		s.l.Error("clickhouse tick history query error",
			applogger.String("table", s.table),
			applogger.String("symbol", symbol),
			applogger.Error(err),
		)
		return nil, fmt.Errorf("tick history: %w", err)
	}
	defer rows.Close()

	out := make([]models.Tick, 0, limit)
	for rows.Next() {
		var t models.Tick
		var regime string
		if err := rows.Scan(&t.Symbol, &t.Bid, &t.Ask, &t.Mid, &t.Volatility, &regime, &t.Timestamp, &t.Timeframe, &t.Source); err != nil {
			return nil, fmt.Errorf("scan tick: %w", err)
		}
		t.Regime = models.Regime(regime)
		t.Timestamp = t.Timestamp.UTC()
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *CHTickStore) Health(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func buildTickInsert(table string, ticks []models.Tick) (string, []interface{}) {
	values := make([]string, 0, len(ticks))
	args := make([]interface{}, 0, len(ticks)*9)
	for _, t := range ticks {
		if t.Symbol == "" || t.Timestamp.IsZero() || !domrepo.IsValidTimeframe(domrepo.Timeframe(t.Timeframe)) {
			continue
		}
		values = append(values, "(?, ?, ?, ?, ?, ?, ?, ?, ?)")
		args = append(args,
			t.Symbol,
			t.Bid,
			t.Ask,
			t.Mid,
			t.Volatility,
			string(t.Regime),
			t.Timestamp.UTC(),
			t.Timeframe,
			t.Source,
		)
	}
	q := fmt.Sprintf("INSERT INTO %s (%s) VALUES %s", table, tickColumns, strings.Join(values, ","))
	return q, args
}

var _ domrepo.TickStore = (*CHTickStore)(nil)
