package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-fin-sync/internal/logger"
)

// Operation is a unit of deferred work, typically a local mutation made
// while offline.
type Operation func(ctx context.Context) error

// operationQueue runs operations strictly in FIFO order, one at a time. A
// failing or panicking operation is logged and skipped.
type operationQueue struct {
	mu       sync.Mutex
	items    []Operation
	draining bool

	log *logger.Logger
}

func newOperationQueue(log *logger.Logger) *operationQueue {
	return &operationQueue{log: log}
}

// push appends op and returns the new queue length.
func (q *operationQueue) push(op Operation) int {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, op)
	return len(q.items)
}

func (q *operationQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// drain runs queued operations until the queue is empty. It returns false
// without doing anything when another drain is already running; that drain
// also picks up operations pushed meanwhile.
func (q *operationQueue) drain(ctx context.Context) bool {
	q.mu.Lock()
	if q.draining {
		q.mu.Unlock()
		return false
	}
	q.draining = true
	q.mu.Unlock()

	for {
		q.mu.Lock()
		if len(q.items) == 0 {
			q.draining = false
			q.mu.Unlock()
			return true
		}
		op := q.items[0]
		q.items[0] = nil
		q.items = q.items[1:]
		q.mu.Unlock()

		if err := q.run(ctx, op); err != nil {
			q.log.Err(err).Msg("queued operation failed")
		}
	}
}

func (q *operationQueue) run(ctx context.Context, op Operation) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("queued operation panicked: %v", r)
		}
	}()
	return op(ctx)
}
