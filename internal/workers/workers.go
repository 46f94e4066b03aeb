package workers

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Workers runs several workers as a unit.
type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Add appends workers. It must not be called while Run is in progress.
func (w *Workers) Add(workers ...Worker) {
	w.workers = append(w.workers, workers...)
}

// Run starts every worker and waits for all of them. The first failure
// cancels the others and is returned.
func (w *Workers) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.Run(ctx)
		})
	}
	return g.Wait()
}

// Handle controls a worker started with [Start].
type Handle struct {
	cancel context.CancelFunc
	done   chan struct{}

	once sync.Once
	err  error
}

// Start runs w in a new goroutine under a child of ctx.
func Start(ctx context.Context, w Worker) *Handle {
	ctx, cancel := context.WithCancel(ctx)
	h := &Handle{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(h.done)
		h.err = w.Run(ctx)
	}()

	return h
}

// Stop cancels the worker and waits for it to return. It is safe to call
// more than once and on a nil Handle.
func (h *Handle) Stop() error {
	if h == nil {
		return nil
	}
	h.once.Do(h.cancel)
	<-h.done
	return h.err
}

// Done is closed when the worker has returned.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}
