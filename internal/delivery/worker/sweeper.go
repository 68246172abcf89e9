// Package worker contains background deliveries that run alongside the
// HTTP server.
package worker

import (
	"context"
	"log/slog"
	"time"

	"passport/config"
	"passport/internal/delivery"
	"passport/internal/usecase"

	"go.uber.org/fx"
)

// SweeperParams holds dependencies for the session sweeper.
type SweeperParams struct {
	fx.In
	fx.Lifecycle

	Config         *config.Config
	Logger         *slog.Logger
	SessionUsecase usecase.SessionUsecase
}

// sessionSweeper periodically deletes sessions past their expiry. Expired
// sessions are already rejected at authentication time, so the sweeper only
// reclaims storage.
type sessionSweeper struct {
	interval       time.Duration
	logger         *slog.Logger
	sessionUsecase usecase.SessionUsecase
	stop           chan struct{}
	done           chan struct{}
}

// NewSweeper creates the session sweeper delivery.
func NewSweeper(params SweeperParams) (delivery.Delivery, error) {
	sweeper := &sessionSweeper{
		interval:       params.Config.Auth.SweepInterval,
		logger:         params.Logger,
		sessionUsecase: params.SessionUsecase,
		stop:           make(chan struct{}),
		done:           make(chan struct{}),
	}

	params.Append(fx.Hook{
		OnStop: sweeper.shutdown,
	})

	return sweeper, nil
}

// Serve runs the sweep loop until the delivery is stopped.
func (s *sessionSweeper) Serve(ctx context.Context) error {
	defer close(s.done)

	s.logger.Info("Starting session sweeper", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep(ctx)
		case <-s.stop:
			return nil
		case <-ctx.Done():
			return nil
		}
	}
}

func (s *sessionSweeper) sweep(ctx context.Context) {
	deleted, err := s.sessionUsecase.CleanupExpiredSessions(ctx)
	if err != nil {
		// The next tick retries, so a failed sweep is not fatal.
		s.logger.Error("Session sweep failed", "error", err)

		return
	}

	s.logger.Debug("Session sweep completed", slog.Int64("deleted", deleted))
}

func (s *sessionSweeper) shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down session sweeper")
	close(s.stop)

	select {
	case <-s.done:
	case <-ctx.Done():
	}

	return nil
}
