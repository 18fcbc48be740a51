package insights

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Susmita-Codes/Pravartak-AI/internal/logger"
)

// Scheduler periodically refreshes stale insights until stopped.
type Scheduler struct {
	refresher *Refresher
	interval  time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewScheduler(r *Refresher, interval time.Duration) *Scheduler {
	return &Scheduler{refresher: r, interval: interval}
}

// Start launches the loop. It runs one pass immediately. Calling Start twice is a no-op.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.run(ctx, s.done)
	logger.L().Info("insight scheduler started", zap.Duration("check_interval", s.interval))
}

// Stop cancels the loop and waits for an in-flight pass to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	logger.L().Info("insight scheduler stopped")
}

func (s *Scheduler) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		if _, err := s.refresher.RefreshStale(ctx); err != nil && ctx.Err() == nil {
			logger.L().Error("insight refresh failed", zap.Error(err))
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
