package service

import (
	"slices"
	"sync"

	"github.com/MKhiriev/go-fin-sync/internal/logger"
	"github.com/MKhiriev/go-fin-sync/models"
)

// StatusListener receives a snapshot of the sync status after every change.
type StatusListener func(models.SyncStatus)

type listenerEntry struct {
	id int
	fn StatusListener
}

// statusBroadcaster fans status snapshots out to listeners in subscription
// order. Listeners run on the publishing goroutine, outside any lock.
type statusBroadcaster struct {
	mu        sync.Mutex
	nextID    int
	listeners []listenerEntry

	log *logger.Logger
}

func newStatusBroadcaster(log *logger.Logger) *statusBroadcaster {
	return &statusBroadcaster{log: log}
}

// add registers fn. The returned function unsubscribes it and may be called
// any number of times.
func (b *statusBroadcaster) add(fn StatusListener) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.listeners = append(b.listeners, listenerEntry{id: id, fn: fn})
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			b.listeners = slices.DeleteFunc(b.listeners, func(e listenerEntry) bool {
				return e.id == id
			})
			b.mu.Unlock()
		})
	}
}

// subscribe is the channel form of add. Snapshots that do not fit into the
// buffer are dropped. cancel unsubscribes and closes the channel.
func (b *statusBroadcaster) subscribe(buf int) (<-chan models.SyncStatus, func()) {
	if buf < 1 {
		buf = 1
	}

	var (
		mu     sync.Mutex
		closed bool
		ch     = make(chan models.SyncStatus, buf)
	)

	unsubscribe := b.add(func(s models.SyncStatus) {
		mu.Lock()
		defer mu.Unlock()
		if closed {
			return
		}
		select {
		case ch <- s:
		default:
			b.log.Debug().Msg("status subscriber is slow, snapshot dropped")
		}
	})

	return ch, func() {
		unsubscribe()
		mu.Lock()
		defer mu.Unlock()
		if !closed {
			closed = true
			close(ch)
		}
	}
}

func (b *statusBroadcaster) publish(status models.SyncStatus) {
	b.mu.Lock()
	listeners := slices.Clone(b.listeners)
	b.mu.Unlock()

	for _, l := range listeners {
		b.call(l.fn, status.Clone())
	}
}

func (b *statusBroadcaster) call(fn StatusListener, status models.SyncStatus) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error().Interface("panic", r).Msg("status listener error")
		}
	}()
	fn(status)
}

func (b *statusBroadcaster) len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.listeners)
}
