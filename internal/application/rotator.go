package application

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/luxura/luxura/internal/domain"
	"go.uber.org/zap"
)

// FrameFunc receives each rotation angle in degrees. It runs on the
// rotator goroutine.
type FrameFunc func(angle float64)

// Rotator drives one full turn of the vehicle. Each tick advances the angle
// by the configured step; after 360 it emits a final 0 and stops itself.
type Rotator struct {
	step     int
	interval time.Duration
	onFrame  FrameFunc
	logger   *zap.Logger

	running atomic.Bool

	mu       sync.Mutex
	stopCh   chan struct{}
	stopOnce *sync.Once
	done     chan struct{}
}

// NewRotator creates an idle rotator.
func NewRotator(cfg domain.RotationConfig, onFrame FrameFunc, logger *zap.Logger) *Rotator {
	if logger == nil {
		logger = zap.NewNop()
	}
	done := make(chan struct{})
	close(done)
	return &Rotator{
		step:     cfg.StepDegrees,
		interval: cfg.Interval,
		onFrame:  onFrame,
		logger:   logger,
		done:     done,
	}
}

// Start begins a turn. It returns false without side effects if a turn is
// already running.
func (r *Rotator) Start(ctx context.Context) bool {
	if !r.running.CompareAndSwap(false, true) {
		return false
	}

	r.mu.Lock()
	r.stopCh = make(chan struct{})
	r.stopOnce = &sync.Once{}
	r.done = make(chan struct{})
	stop, done := r.stopCh, r.done
	r.mu.Unlock()

	r.logger.Debug("rotation started", zap.Int("step_degrees", r.step), zap.Duration("interval", r.interval))
	go r.run(ctx, stop, done)
	return true
}

func (r *Rotator) run(ctx context.Context, stop, done chan struct{}) {
	defer close(done)
	defer r.running.Store(false)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	angle := 0
	for {
		select {
		case <-ctx.Done():
			r.logger.Debug("rotation cancelled", zap.Int("angle", angle))
			return
		case <-stop:
			r.logger.Debug("rotation stopped", zap.Int("angle", angle))
			return
		case <-ticker.C:
			angle += r.step
			if angle >= 360 {
				r.onFrame(360)
				r.onFrame(0)
				r.logger.Debug("rotation finished")
				return
			}
			r.onFrame(float64(angle))
		}
	}
}

// Stop ends the current turn early. Safe to call repeatedly or when idle.
func (r *Rotator) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopOnce != nil {
		r.stopOnce.Do(func() { close(r.stopCh) })
	}
}

// Running reports whether a turn is in progress.
func (r *Rotator) Running() bool {
	return r.running.Load()
}

// Done is closed when the current turn ends. It is already closed when no
// turn has been started.
func (r *Rotator) Done() <-chan struct{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.done
}
