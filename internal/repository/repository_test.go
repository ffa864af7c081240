package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"PriceFeed/internal/domain/models"
	"PriceFeed/internal/domain/repository/mocks"
	"PriceFeed/pkg/cache"
	pkgkafka "PriceFeed/pkg/kafka"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var ts = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func tick(symbol string, mid float64) models.Tick {
	return models.Tick{
		Symbol:     symbol,
		Bid:        mid - 1,
		Ask:        mid + 1,
		Mid:        mid,
		Volatility: 0.5,
		Regime:     models.RegimeRange,
		Timestamp:  ts,
		Timeframe:  "1m",
		Source:     models.SourceFinnhub,
	}
}

func TestBuildTickInsert(t *testing.T) {
	q, args := buildTickInsert("price_history", []models.Tick{
		tick("BTCUSD", 50000),
		{Symbol: "", Timestamp: ts},
		tick("ETHUSD", 3000),
	})

	require.True(t, strings.HasPrefix(q, "INSERT INTO price_history (symbol, bid, ask, mid, volatility, regime, ts, timeframe, source) VALUES"))
	require.Equal(t, 2, strings.Count(q, "(?, ?, ?, ?, ?, ?, ?, ?, ?)"))
	require.Len(t, args, 18)
	require.Equal(t, "BTCUSD", args[0])
	require.Equal(t, "range", args[5])
	require.Equal(t, "ETHUSD", args[9])
}

func TestTickSchemaNamesTable(t *testing.T) {
	ddl := TickSchema("ticks_test")
	require.Len(t, ddl, 1)
	require.Contains(t, ddl[0], "CREATE TABLE IF NOT EXISTS ticks_test")
	require.Contains(t, ddl[0], "ORDER BY (symbol, ts)")
}

type fakeProducer struct {
	topic string
	msgs  []pkgkafka.Message
	err   error
}

func (p *fakeProducer) PublishBatch(_ context.Context, topic string, msgs []pkgkafka.Message) error {
	p.topic = topic
	p.msgs = msgs
	return p.err
}

func (p *fakeProducer) Close() error { return nil }

func TestKafkaTickPublisherKeysBySymbol(t *testing.T) {
	fp := &fakeProducer{}
	pub := &KafkaTickPublisher{producer: fp, topic: "price.ticks"}

	require.NoError(t, pub.PublishBatch(context.Background(), []models.Tick{tick("BTCUSD", 50000), tick("ETHUSD", 3000)}))
	require.Equal(t, "price.ticks", fp.topic)
	require.Len(t, fp.msgs, 2)
	require.Equal(t, []byte("BTCUSD"), fp.msgs[0].Key)

	msg, ok := fp.msgs[1].Value.(tickMessage)
	require.True(t, ok)
	require.Equal(t, "ETHUSD", msg.Symbol)
	require.Equal(t, "2025-03-14T09:30:00Z", msg.Timestamp)

	fp.err = errors.New("broker down")
	require.Error(t, pub.PublishBatch(context.Background(), []models.Tick{tick("BTCUSD", 1)}))
}

func TestKafkaTickPublisherEmptyBatch(t *testing.T) {
	fp := &fakeProducer{}
	pub := &KafkaTickPublisher{producer: fp, topic: "price.ticks"}
	require.NoError(t, pub.PublishBatch(context.Background(), nil))
	require.Empty(t, fp.topic)
}

func TestCachedLatestTicks(t *testing.T) {
	mc := cache.NewMemoryCache()
	defer mc.Close()
	ctx := context.Background()
	lt := NewCachedLatestTicks(mc, time.Minute)

	require.NoError(t, lt.PutLatest(ctx, []models.Tick{tick("BTCUSD", 50000), tick("ETHUSD", 3000)}))
	require.NoError(t, lt.PutLatest(ctx, []models.Tick{tick("BTCUSD", 51000)}))

	got, err := lt.Latest(ctx, []string{"BTCUSD", "ETHUSD", "SOLUSD"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, 51000.0, got["BTCUSD"].Mid)
	require.Equal(t, models.RegimeRange, got["ETHUSD"].Regime)
	require.True(t, got["ETHUSD"].Timestamp.Equal(ts))
}

func TestCachedSymbolRegistry(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mocks.NewMockSymbolRegistry(ctrl)
	mc := cache.NewMemoryCache()
	defer mc.Close()
	ctx := context.Background()

	reg := NewCachedSymbolRegistry(next, mc, time.Minute, nil)

	next.EXPECT().ActiveSymbols(gomock.Any(), "crypto").Return([]string{"BTCUSD", "SOLUSD"}, nil).Times(1)

	for i := 0; i < 3; i++ {
		got, err := reg.ActiveSymbols(ctx, "crypto")
		require.NoError(t, err)
		require.Equal(t, []string{"BTCUSD", "SOLUSD"}, got)
	}
}

func TestCachedSymbolRegistryDoesNotCacheEmptyOrErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mocks.NewMockSymbolRegistry(ctrl)
	mc := cache.NewMemoryCache()
	defer mc.Close()
	ctx := context.Background()

	reg := NewCachedSymbolRegistry(next, mc, time.Minute, nil)

	gomock.InOrder(
		next.EXPECT().ActiveSymbols(gomock.Any(), "crypto").Return(nil, errors.New("db down")),
		next.EXPECT().ActiveSymbols(gomock.Any(), "crypto").Return([]string{}, nil),
		next.EXPECT().ActiveSymbols(gomock.Any(), "crypto").Return([]string{"ETHUSD"}, nil),
	)

	_, err := reg.ActiveSymbols(ctx, "crypto")
	require.Error(t, err)

	got, err := reg.ActiveSymbols(ctx, "crypto")
	require.NoError(t, err)
	require.Empty(t, got)

	got, err = reg.ActiveSymbols(ctx, "crypto")
	require.NoError(t, err)
	require.Equal(t, []string{"ETHUSD"}, got)
}

type failingQuerier struct{ err error }

func (q failingQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, q.err
}

func TestPGSymbolRegistryWrapsQueryError(t *testing.T) {
	boom := errors.New("connection refused")
	_, err := NewPGSymbolRegistry(failingQuerier{err: boom}).ActiveSymbols(context.Background(), "crypto")
	require.ErrorIs(t, err, boom)
}

type execCall struct {
	sql  string
	args []any
}

type fakeRow struct {
	scan func(dest ...any) error
}

func (r fakeRow) Scan(dest ...any) error { return r.scan(dest...) }

type fakeDB struct {
	calls   []execCall
	tag     string
	execErr error
	row     fakeRow
}

func (db *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	db.calls = append(db.calls, execCall{sql: sql, args: args})
	return pgconn.NewCommandTag(db.tag), db.execErr
}

func (db *fakeDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	db.calls = append(db.calls, execCall{sql: sql, args: args})
	return db.row
}

func TestPGSessionStoreResetAndArchive(t *testing.T) {
	db := &fakeDB{tag: "UPDATE 3"}
	s := NewPGSessionStore(db)
	ctx := context.Background()

	require.NoError(t, s.ResetSessionState(ctx, "u1", ts))
	require.Contains(t, db.calls[0].sql, "UPDATE paper_config")
	require.Equal(t, []any{"u1", "idle", ts}, db.calls[0].args)

	moved, err := s.ArchiveTrades(ctx, "u1", ts, ts.AddDate(0, 0, -1))
	require.NoError(t, err)
	require.Equal(t, int64(3), moved)
	require.Equal(t, []any{"u1", "2025-03-14", "2025-03-13"}, db.calls[1].args)

	db.execErr = errors.New("timeout")
	require.Error(t, s.ResetSessionState(ctx, "u1", ts))
}

func TestPGSessionStoreAccountEquity(t *testing.T) {
	ctx := context.Background()

	db := &fakeDB{row: fakeRow{scan: func(dest ...any) error {
		v := 2500.5
		*(dest[0].(**float64)) = &v
		return nil
	}}}
	eq, found, err := NewPGSessionStore(db).AccountEquity(ctx, "u1")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, 2500.5, eq)

	db.row = fakeRow{scan: func(...any) error { return pgx.ErrNoRows }}
	_, found, err = NewPGSessionStore(db).AccountEquity(ctx, "u1")
	require.NoError(t, err)
	require.False(t, found)

	db.row = fakeRow{scan: func(...any) error { return errors.New("bad conn") }}
	_, _, err = NewPGSessionStore(db).AccountEquity(ctx, "u1")
	require.Error(t, err)
}

func TestPGSessionStoreAuditAndStats(t *testing.T) {
	db := &fakeDB{}
	s := NewPGSessionStore(db)
	s.newID = func() string { return "id-1" }
	ctx := context.Background()

	require.NoError(t, s.AppendAudit(ctx, models.AuditEntry{
		UserID:  "u1",
		Level:   "info",
		Source:  "execution",
		Message: "SYSTEM: Restart/Unlock executed",
		Meta:    map[string]interface{}{"action": "restart"},
	}))
	args := db.calls[0].args
	require.Equal(t, "id-1", args[0])
	require.JSONEq(t, `{"action":"restart"}`, string(args[5].([]byte)))

	require.NoError(t, s.UpsertDailyStats(ctx, models.DailyStats{UserID: "u1", TradeDate: ts, EquityStart: 10000, EquityEnd: 10000}))
	require.Contains(t, db.calls[1].sql, "ON CONFLICT (user_id, trade_date)")
	require.Equal(t, "2025-03-14", db.calls[1].args[1])
}
