package server

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"PriceFeed/internal/domain/models"
	"PriceFeed/internal/domain/repository/mocks"
	"PriceFeed/internal/usecase"
	"PriceFeed/pkg/config"
	xhttp "PriceFeed/pkg/http"
	applogger "PriceFeed/pkg/logger"
	"PriceFeed/pkg/metrics"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type countingFeed struct {
	calls atomic.Int32
	err   error
}

func (f *countingFeed) Run(_ context.Context, requested []string) (*models.BatchResult, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	res := models.NewBatchResult()
	res.PauseTrading = requested == nil
	return res, nil
}

func TestPollRunsUntilCancelled(t *testing.T) {
	for _, feed := range []*countingFeed{{}, {err: errors.New("API key not configured")}} {
		a := &App{feed: feed, l: applogger.Nop()}
		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan struct{})
		go func() {
			a.poll(ctx, 5*time.Millisecond)
			close(done)
		}()

		require.Eventually(t, func() bool { return feed.calls.Load() >= 3 }, time.Second, time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("poller did not stop")
		}
	}
}

// eventPublisher records publish and close calls in order.
type eventPublisher struct {
	mu     sync.Mutex
	closed bool
	events []string
}

func (p *eventPublisher) PublishBatch(context.Context, []models.Tick) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		p.events = append(p.events, "publish-after-close")
		return errors.New("publisher closed")
	}
	p.events = append(p.events, "publish")
	return nil
}

func (p *eventPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	p.events = append(p.events, "close")
	return nil
}

func (p *eventPublisher) snapshot() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.events...)
}

// slowFeed persists its batch only after a delay, like a batch that is still
// fetching when shutdown starts.
type slowFeed struct {
	sink    *usecase.TickSink
	delay   time.Duration
	once    sync.Once
	started chan struct{}
}

func (f *slowFeed) Run(ctx context.Context, _ []string) (*models.BatchResult, error) {
	f.once.Do(func() { close(f.started) })
	time.Sleep(f.delay)
	f.sink.Persist(ctx, []models.Tick{{Symbol: "BTCUSD", Mid: 50000, Timeframe: "1m"}})
	return models.NewBatchResult(), nil
}

func TestShutdownWaitsForScheduledBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockTickStore(ctrl)
	store.EXPECT().StoreBatch(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	pub := &eventPublisher{}
	sink := usecase.NewTickSink(store, pub, nil, metrics.Nop{}, time.Second, nil)
	feed := &slowFeed{sink: sink, delay: 100 * time.Millisecond, started: make(chan struct{})}

	cfg := &config.Config{}
	cfg.Feed.PollInterval = 5 * time.Millisecond

	a := &App{
		cfg:        cfg,
		httpServer: xhttp.NewServer(nil, xhttp.WithMetrics(false)),
		feed:       feed,
		sink:       sink,
		l:          applogger.Nop(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	a.startBackground(ctx)

	select {
	case <-feed.started:
	case <-time.After(time.Second):
		t.Fatal("poller never ran")
	}
	cancel()

	require.NoError(t, a.shutdown())
	events := pub.snapshot()
	require.NotEmpty(t, events)
	require.Equal(t, "publish", events[0])
	require.Equal(t, "close", events[len(events)-1])
	require.NotContains(t, events, "publish-after-close")
}
