package enforce

import (
	"context"
	"log/slog"
	"time"

	"github.com/mnemom/smoltbot/pkg/services"
)

// SweepInterval is how often undelivered nudges are checked for expiry. The
// nudge TTL is four hours, so a ten minute cadence keeps expiry reasonably
// prompt without load.
const SweepInterval = 10 * time.Minute

// Sweeper periodically expires stale pending nudges. Idempotent and safe to
// run from multiple instances.
type Sweeper struct {
	nudges   *services.NudgeService
	interval time.Duration
	logger   *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewSweeper creates a nudge expiry sweeper.
func NewSweeper(nudges *services.NudgeService, logger *slog.Logger) *Sweeper {
	if nudges == nil {
		panic("NewSweeper: nudges must not be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Sweeper{
		nudges:   nudges,
		interval: SweepInterval,
		logger:   logger.With("component", "nudge_sweeper"),
	}
}

// Start launches the background sweep loop.
func (s *Sweeper) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	s.logger.Info("nudge sweeper started", "interval", s.interval)
}

// Stop signals the sweep loop to exit and waits for it to finish.
func (s *Sweeper) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.logger.Info("nudge sweeper stopped")
}

func (s *Sweeper) run(ctx context.Context) {
	defer close(s.done)

	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	count, err := s.nudges.ExpireStale(ctx)
	if err != nil {
		s.logger.Error("nudge expiry sweep failed", "error", err)
		return
	}
	if count > 0 {
		s.logger.Info("expired stale nudges", "count", count)
	}
}
