package impl

import (
	"context"
	"log/slog"
	"time"

	"neabi/internal/domain/repository"

	"go.uber.org/fx"
)

const sweepInterval = time.Hour

// SessionSweeper periodically removes expired rows from the session ledger.
// Expired tokens are already rejected by verification; the sweep only keeps
// the ledger from growing without bound.
type SessionSweeper struct {
	sessionRepo repository.SessionRepository
	logger      *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// SessionSweeperParams holds dependencies for SessionSweeper, injected by Fx.
type SessionSweeperParams struct {
	fx.In
	fx.Lifecycle

	SessionRepo repository.SessionRepository
	Logger      *slog.Logger
}

// NewSessionSweeper builds the sweeper and hooks it into the fx lifecycle.
// The first sweep runs immediately on start, then hourly.
func NewSessionSweeper(params SessionSweeperParams) *SessionSweeper {
	sweeper := &SessionSweeper{
		sessionRepo: params.SessionRepo,
		logger:      params.Logger,
		done:        make(chan struct{}),
	}

	params.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			ctx, cancel := context.WithCancel(context.Background())
			sweeper.cancel = cancel
			go sweeper.run(ctx)

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			sweeper.cancel()
			select {
			case <-sweeper.done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})

	return sweeper
}

func (s *SessionSweeper) run(ctx context.Context) {
	defer close(s.done)

	s.Sweep(ctx)

	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep removes all expired ledger rows once.
func (s *SessionSweeper) Sweep(ctx context.Context) {
	swept, err := s.sessionRepo.DeleteExpired(ctx, time.Now())
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		s.logger.Error("Failed to sweep expired sessions", slog.Any("error", err))

		return
	}

	if swept > 0 {
		s.logger.Info("Swept expired sessions", slog.Int64("count", swept))
	}
}
