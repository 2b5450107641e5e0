package detect

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

// Stepper produces one detection cycle per call.
type Stepper interface {
	Run(ctx context.Context, interval time.Duration, sink Sink) error
}

// Runner drives a detector on its own goroutine and feeds a Processor.
// Start and Stop are idempotent; Stop ends the stream with Processor.Done.
type Runner struct {
	src      Stepper
	proc     *Processor
	interval time.Duration
	logger   *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewRunner(src Stepper, proc *Processor, interval time.Duration, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{src: src, proc: proc, interval: interval, logger: logger}
}

// Start launches the detector loop if it is not already running.
func (r *Runner) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	r.cancel, r.done = cancel, done
	go func() {
		defer close(done)
		err := r.src.Run(ctx, r.interval, r.proc.Process)
		if err != nil && !errors.Is(err, context.Canceled) {
			r.logger.Error("detector loop ended", "error", err)
		}
	}()
	r.logger.Info("detector started", "interval", r.interval)
}

// Stop cancels the loop, waits for it and removes every tracked overlay.
func (r *Runner) Stop() {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.cancel, r.done = nil, nil
	r.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
	r.proc.Done()
	r.logger.Info("detector stopped")
}

// Running reports whether Start has been called without a matching Stop.
func (r *Runner) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cancel != nil
}
