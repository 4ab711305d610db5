package worker

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	mockUsecase "peterparts/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSweepWorker_SweepsUntilStopped(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)

	var calls atomic.Int32
	authUC.EXPECT().SweepExpiredCodes(mock.Anything).
		RunAndReturn(func(context.Context) (int64, error) {
			if calls.Add(1) == 1 {
				return 0, errors.New("database is restarting")
			}

			return 3, nil
		})

	w := newSweepWorker(authUC, 5*time.Millisecond, newDiscardLogger())

	served := make(chan error, 1)
	go func() { served <- w.Serve(context.Background()) }()

	require.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, time.Millisecond,
		"a failed sweep does not stop the worker")

	require.NoError(t, w.stop(context.Background()))
	require.NoError(t, <-served)
	require.NoError(t, w.stop(context.Background()), "stop is idempotent")
}

func TestSweepWorker_Disabled(t *testing.T) {
	w := newSweepWorker(mockUsecase.NewMockAuthUsecase(t), 0, newDiscardLogger())

	assert.NoError(t, w.Serve(context.Background()))
	assert.NoError(t, w.stop(context.Background()))
}

func TestSweepWorker_StopsOnContextCancel(t *testing.T) {
	w := newSweepWorker(mockUsecase.NewMockAuthUsecase(t), time.Hour, newDiscardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	served := make(chan error, 1)
	go func() { served <- w.Serve(ctx) }()

	cancel()
	assert.NoError(t, <-served)
}
