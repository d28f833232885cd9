package worker

import (
	"context"
	"iter"
	"sync"

	"saftz/internal/domain/entity"
)

type ArrivalSource interface {
	Arrivals(ctx context.Context, n int) iter.Seq[entity.Arrival]
}

// SequenceHandler receives the events of one run. ctx is the run context: it
// is cancelled as soon as the run is superseded or cancelled, and handlers
// must drop events whose ctx is already done.
type SequenceHandler interface {
	HandleArrival(ctx context.Context, arrival entity.Arrival)
	HandleComplete(ctx context.Context)
}

// SequenceRunner drives one arrival sequence at a time in its own goroutine.
type SequenceRunner struct {
	source ArrivalSource

	mu         sync.Mutex
	cancelFunc context.CancelFunc
	runID      uint64
	isRunning  bool
	wg         sync.WaitGroup
}

func NewSequenceRunner(source ArrivalSource) *SequenceRunner {
	return &SequenceRunner{
		source: source,
	}
}

// Start launches a run of n arrivals. A run that is still active is cancelled
// first. Start does not wait for the old goroutine; Wait does.
func (r *SequenceRunner) Start(ctx context.Context, n int, h SequenceHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cancelFunc != nil {
		r.cancelFunc()
	}

	runCtx, cancel := context.WithCancel(ctx)
	r.runID++
	runID := r.runID
	r.cancelFunc = cancel
	r.isRunning = true

	r.wg.Add(1)

	go func() {
		defer r.wg.Done()
		defer func() {
			cancel()

			r.mu.Lock()
			if r.runID == runID {
				r.isRunning = false
				r.cancelFunc = nil
			}
			r.mu.Unlock()
		}()

		for arrival := range r.source.Arrivals(runCtx, n) {
			h.HandleArrival(runCtx, arrival)
		}

		if runCtx.Err() == nil {
			h.HandleComplete(runCtx)
		}
	}()
}

// Cancel stops the active run without blocking.
func (r *SequenceRunner) Cancel() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cancelFunc != nil {
		r.cancelFunc()
		r.cancelFunc = nil
	}

	r.isRunning = false
}

// Wait blocks until every goroutine started by the runner has returned. Do not
// call it while holding a lock the handler needs.
func (r *SequenceRunner) Wait() {
	r.wg.Wait()
}

// IsRunning возвращает текущий статус
func (r *SequenceRunner) IsRunning() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.isRunning
}
