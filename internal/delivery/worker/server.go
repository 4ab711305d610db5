// Package worker runs background maintenance next to the API server.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"peterparts/config"
	"peterparts/internal/delivery"
	deliverycontext "peterparts/internal/delivery/context"
	"peterparts/internal/domain/lifecycle"
	"peterparts/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sweepWorker periodically deletes expired verification codes.
type sweepWorker struct {
	authUC   usecase.AuthUsecase
	interval time.Duration
	logger   *slog.Logger

	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// ServerParams holds dependencies for the worker
type ServerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Cfg    *config.Config
	Logger *slog.Logger
	AuthUC usecase.AuthUsecase
}

// NewServer creates the sweep worker.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	var interval time.Duration
	if params.Cfg.OTP != nil {
		interval = params.Cfg.OTP.SweepInterval
	}

	w := newSweepWorker(params.AuthUC, interval, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: w.stop,
	})

	return w, nil
}

func newSweepWorker(authUC usecase.AuthUsecase, interval time.Duration, logger *slog.Logger) *sweepWorker {
	return &sweepWorker{
		authUC:   authUC,
		interval: interval,
		logger:   logger,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Serve blocks until the worker is stopped or ctx is cancelled.
func (w *sweepWorker) Serve(ctx context.Context) error {
	defer close(w.doneCh)

	if w.interval <= 0 {
		w.logger.Info("Verification code sweep disabled")

		return nil
	}

	w.logger.Info("Starting verification code sweep", slog.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-w.stopCh:
			return nil
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *sweepWorker) sweep(ctx context.Context) {
	runID := uuid.New().String()
	logger := w.logger.With(slog.String("run_id", runID))
	ctx = deliverycontext.WithLogger(deliverycontext.WithRequestID(ctx, runID), logger)

	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	if _, err := w.authUC.SweepExpiredCodes(ctx); err != nil {
		logger.Error("Verification code sweep failed", slog.Any("error", err))
	}
}

// stop signals Serve and waits for an in-flight sweep to finish.
func (w *sweepWorker) stop(ctx context.Context) error {
	w.stopOnce.Do(func() { close(w.stopCh) })

	w.logger.Info("Shutting down verification code sweep")

	select {
	case <-w.doneCh:
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}
