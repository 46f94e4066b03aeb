// Package workers runs the client's background loops: the auto-sync
// scheduler and the network monitor.
//
// A [Worker] blocks until its context is cancelled. [Workers] runs a set of
// them concurrently, and [Start] runs one in the background with a [Handle]
// that stops it.
package workers

import "context"

// Worker is a long-running background task. Run blocks until ctx is
// cancelled or the worker fails, and returns nil on cancellation.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// Func adapts a plain function to [Worker].
type Func func(ctx context.Context) error

func (f Func) Run(ctx context.Context) error {
	return f(ctx)
}
