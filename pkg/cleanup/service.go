// Package cleanup enforces in-memory retention: builder dialogues that go
// quiet are dropped so the session map stays bounded.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/merxlab/merx/pkg/builder"
)

// Service periodically expires abandoned builder sessions. Interrupted
// dialogues are restarted by the merchant, not resumed, so dropping them
// loses nothing durable.
type Service struct {
	sessions *builder.Manager
	interval time.Duration
	maxIdle  time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates the retention service.
func NewService(sessions *builder.Manager, interval, maxIdle time.Duration) *Service {
	return &Service{
		sessions: sessions,
		interval: interval,
		maxIdle:  maxIdle,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"interval", s.interval,
		"session_max_idle", s.maxIdle)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.expireSessions()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.expireSessions()
		}
	}
}

func (s *Service) expireSessions() {
	if count := s.sessions.DeleteStale(s.maxIdle); count > 0 {
		slog.Info("Retention: expired idle builder sessions", "count", count)
	}
}
