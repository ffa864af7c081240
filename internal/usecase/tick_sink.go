package usecase

import (
	"context"
	"time"

	"PriceFeed/internal/domain/models"
	drepo "PriceFeed/internal/domain/repository"
	applogger "PriceFeed/pkg/logger"
)

// TickSink persists a batch of ticks and fans it out. Every failure is logged
// and counted; none is reported to the caller.
type TickSink struct {
	store   drepo.TickStore
	pub     drepo.TickPublisher
	cache   drepo.TickCache
	metrics drepo.Metrics
	timeout time.Duration
	l       *applogger.Logger
}

// NewTickSink creates a sink. pub and cache are optional.
func NewTickSink(
	store drepo.TickStore,
	pub drepo.TickPublisher,
	cache drepo.TickCache,
	metrics drepo.Metrics,
	timeout time.Duration,
	l *applogger.Logger,
) *TickSink {
	if l == nil {
		l = applogger.Nop()
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &TickSink{
		store:   store,
		pub:     pub,
		cache:   cache,
		metrics: metrics,
		timeout: timeout,
		l:       l,
	}
}

// Ready reports whether the time-series store is wired.
func (s *TickSink) Ready() bool {
	return s != nil && s.store != nil
}

// Persist performs one bulk insert, then publishes and caches the batch.
// It is detached from ctx cancellation so an aborted request still persists.
func (s *TickSink) Persist(ctx context.Context, ticks []models.Tick) {
	if len(ticks) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	start := time.Now()
	if err := s.store.StoreBatch(ctx, ticks); err != nil {
		s.metrics.RecordError("store_batch")
		s.l.Error("tick bulk insert failed",
			applogger.Int("count", len(ticks)),
			applogger.Error(err),
		)
	} else {
		s.metrics.RecordPersisted("clickhouse", len(ticks))
		s.metrics.RecordLatency("store_batch", time.Since(start).Seconds())
	}

	if s.pub != nil {
		if err := s.pub.PublishBatch(ctx, ticks); err != nil {
			s.metrics.RecordError("publish_batch")
			s.l.Warn("tick publish failed", applogger.Error(err))
		} else {
			s.metrics.RecordPersisted("kafka", len(ticks))
		}
	}

	if s.cache != nil {
		if err := s.cache.PutLatest(ctx, ticks); err != nil {
			s.metrics.RecordError("cache_latest")
			s.l.Warn("latest tick cache update failed", applogger.Error(err))
		} else {
			s.metrics.RecordPersisted("cache", len(ticks))
		}
	}
}

// Close releases the publisher.
func (s *TickSink) Close() {
	if s.pub != nil {
		if err := s.pub.Close(); err != nil {
			s.l.Warn("tick publisher close failed", applogger.Error(err))
		}
	}
}
