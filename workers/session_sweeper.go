package workers

import (
	"context"
	"time"

	"testdesk/db"

	"go.uber.org/zap"
)

// ConsumedToastRetention is how long drained toasts are kept before purge.
const ConsumedToastRetention = 24 * time.Hour

// Forgetter drops in-memory page state for closed sessions.
type Forgetter interface {
	Forget(ids ...int64)
}

// SessionSweeper periodically deletes expired sessions, their page views and
// old consumed toasts.
type SessionSweeper struct {
	Sessions *db.SessionStore
	Toasts   *db.ToastStore
	Views    Forgetter
	Interval time.Duration
	Logger   *zap.Logger
	Now      func() time.Time
}

// Start runs the sweep loop until ctx is done. The returned channel closes
// when the loop has exited.
func (s *SessionSweeper) Start(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	interval := s.Interval
	if interval <= 0 {
		interval = time.Minute
	}
	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Sweep()
			}
		}
	}()
	return done
}

// Sweep runs one pass. Failures are logged and retried on the next tick.
func (s *SessionSweeper) Sweep() {
	logger := s.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}

	ids, err := s.Sessions.DeleteExpired(now)
	if err != nil {
		logger.Error("sweeper: delete expired sessions", zap.Error(err))
	}
	if len(ids) > 0 {
		if s.Views != nil {
			s.Views.Forget(ids...)
		}
		logger.Info("sweeper: expired sessions removed", zap.Int("count", len(ids)))
	}

	n, err := s.Toasts.PurgeConsumed(now.Add(-ConsumedToastRetention))
	if err != nil {
		logger.Error("sweeper: purge toasts", zap.Error(err))
		return
	}
	if n > 0 {
		logger.Debug("sweeper: consumed toasts purged", zap.Int64("count", n))
	}
}
