package worker

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/selivandex/newspulse/pkg/logger"
)

// Worker is one unit of periodic work
type Worker interface {
	// Name identifies the worker in logs
	Name() string
	// Run executes one iteration
	Run(ctx context.Context) error
}

// Periodic runs a Worker on a fixed interval with graceful shutdown.
// The first iteration fires immediately on Start.
type Periodic struct {
	worker   Worker
	interval time.Duration
	wg       sync.WaitGroup
}

// NewPeriodic wraps a worker with periodic execution
func NewPeriodic(worker Worker, interval time.Duration) *Periodic {
	return &Periodic{worker: worker, interval: interval}
}

// Start launches the worker loop in the background
func (p *Periodic) Start(ctx context.Context) {
	p.wg.Add(1)
	go p.loop(ctx)
}

// Wait blocks until the loop has exited, up to the given timeout
func (p *Periodic) Wait(timeout time.Duration) {
	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		logger.Info("worker stopped", zap.String("worker", p.worker.Name()))
	case <-time.After(timeout):
		logger.Warn("worker stop timeout", zap.String("worker", p.worker.Name()))
	}
}

func (p *Periodic) loop(ctx context.Context) {
	defer p.wg.Done()

	logger.Info("worker started",
		zap.String("worker", p.worker.Name()),
		zap.Duration("interval", p.interval),
	)

	p.runOnce(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("worker stopping", zap.String("worker", p.worker.Name()))
			return
		case <-ticker.C:
			p.runOnce(ctx)
		}
	}
}

// runOnce executes one iteration; errors are logged, never fatal to the loop
func (p *Periodic) runOnce(ctx context.Context) {
	if err := p.worker.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("worker iteration failed",
			zap.String("worker", p.worker.Name()),
			zap.Error(err),
		)
	}
}
