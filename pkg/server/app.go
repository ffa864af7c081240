package server

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"PriceFeed/internal/domain/models"
	"PriceFeed/internal/service/ratelimit"
	"PriceFeed/internal/usecase"
	"PriceFeed/pkg/config"
	xhttp "PriceFeed/pkg/http"
	applogger "PriceFeed/pkg/logger"
)

const limiterPruneInterval = time.Minute

type feedRunner interface {
	Run(ctx context.Context, requested []string) (*models.BatchResult, error)
}

// App encapsulates the entire application lifecycle.
type App struct {
	cfg        *config.Config
	httpServer *xhttp.Server
	feed       feedRunner
	sink       *usecase.TickSink
	limiter    *ratelimit.Limiter
	l          *applogger.Logger

	// background tracks the poller and the limiter pruner.
	background sync.WaitGroup
}

// New creates a new App instance with all dependencies.
func New(
	cfg *config.Config,
	httpServer *xhttp.Server,
	feed *usecase.PriceFeedUseCase,
	sink *usecase.TickSink,
	limiter *ratelimit.Limiter,
	l *applogger.Logger,
) *App {
	if l == nil {
		l = applogger.Nop()
	}
	return &App{
		cfg:        cfg,
		httpServer: httpServer,
		feed:       feed,
		sink:       sink,
		limiter:    limiter,
		l:          l,
	}
}

// Run starts the HTTP server and the optional poller, then blocks until
// interrupted or the server fails.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.httpServer.Start(); err != nil {
		a.l.Error("http server start error", applogger.Error(err))
		return err
	}
	a.l.Info("http server started", applogger.Int("port", a.cfg.Server.Port))

	a.startBackground(ctx)

	var runErr error
	select {
	case <-ctx.Done():
		a.l.Info("shutdown signal received")
	case err := <-a.httpServer.Errors():
		a.l.Error("http server error", applogger.Error(err))
		runErr = err
	}
	stop()

	return errors.Join(runErr, a.shutdown())
}

// startBackground launches the poller (when enabled) and the limiter pruner.
// Both stop when ctx is done; shutdown waits for them.
func (a *App) startBackground(ctx context.Context) {
	if a.cfg.Feed.PollInterval > 0 {
		a.background.Add(1)
		go func() {
			defer a.background.Done()
			a.poll(ctx, a.cfg.Feed.PollInterval)
		}()
		a.l.Info("price feed poller started", applogger.Duration("interval_ms", a.cfg.Feed.PollInterval))
	}

	a.background.Add(1)
	go func() {
		defer a.background.Done()
		a.pruneLimiter(ctx)
	}()
}

// poll triggers a batch over the default universe every interval. Runs are
// sequential within the poller; HTTP triggers may overlap with them.
func (a *App) poll(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if ctx.Err() != nil {
				return
			}
			res, err := a.feed.Run(ctx, nil)
			if err != nil {
				a.l.Error("scheduled price feed failed", applogger.Error(err))
				continue
			}
			if res.PauseTrading {
				a.l.Warn("scheduled price feed returned no ticks", applogger.Int("errors", len(res.Errors)))
			}
		}
	}
}

func (a *App) pruneLimiter(ctx context.Context) {
	if a.limiter == nil {
		return
	}
	ticker := time.NewTicker(limiterPruneInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.limiter.Prune()
		}
	}
}

// shutdown stops the server and waits for background batches before the sinks
// close. The background context must already be cancelled.
func (a *App) shutdown() error {
	a.l.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.httpServer.ShutdownTimeout())
	defer cancel()

	var err error
	if err = a.httpServer.Stop(shutdownCtx); err != nil {
		a.l.Error("http shutdown error", applogger.Error(err))
	}

	done := make(chan struct{})
	go func() {
		a.background.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-shutdownCtx.Done():
		a.l.Warn("background batch still running at shutdown deadline")
		<-done
	}

	// the collector publishes through the tick sink's producer
	a.l.RemoveCollector()
	if a.sink != nil {
		a.sink.Close()
	}

	a.l.Info("shutdown complete")
	return err
}
