package worker

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	mockUsecase "passport/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSessionSweeper_SweepsOnTick(t *testing.T) {
	uc := new(mockUsecase.MockSessionUsecase)
	swept := make(chan struct{}, 8)
	uc.On("CleanupExpiredSessions", mock.Anything).Return(int64(2), nil).Run(func(mock.Arguments) {
		select {
		case swept <- struct{}{}:
		default:
		}
	})

	sweeper := &sessionSweeper{
		interval:       5 * time.Millisecond,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		sessionUsecase: uc,
		stop:           make(chan struct{}),
		done:           make(chan struct{}),
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- sweeper.Serve(context.Background())
	}()

	select {
	case <-swept:
	case <-time.After(time.Second):
		t.Fatal("sweeper never ran a sweep")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, sweeper.shutdown(ctx))
	require.NoError(t, <-serveErr)
}

func TestSessionSweeper_StopsOnContextCancel(t *testing.T) {
	uc := new(mockUsecase.MockSessionUsecase)

	sweeper := &sessionSweeper{
		interval:       time.Hour,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		sessionUsecase: uc,
		stop:           make(chan struct{}),
		done:           make(chan struct{}),
	}

	ctx, cancel := context.WithCancel(context.Background())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- sweeper.Serve(ctx)
	}()

	cancel()

	select {
	case err := <-serveErr:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop on context cancellation")
	}
	uc.AssertNotCalled(t, "CleanupExpiredSessions", mock.Anything)
}
