package storage

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/skustore/skustore/internal/core/domain"
)

// watcher is a single watch subscription. Mutations publish into a
// one-slot mailbox under the shard lock; a dedicated goroutine drains
// the mailbox into the subscriber channel. A slow subscriber therefore
// never blocks writers: intermediate events for the same SKU coalesce
// and only the latest state is kept, except a deleted event, which is
// final and never overwritten.
type watcher struct {
	id  string
	sku string
	sh  *shard

	mu      sync.Mutex
	pending *domain.WatchEvent
	closed  bool

	signal chan struct{}
	out    chan domain.WatchEvent
	done   chan struct{}
	once   sync.Once

	logger zerolog.Logger
}

func newWatcher(sku string, sh *shard, buffer int, logger zerolog.Logger) *watcher {
	return &watcher{
		id:     uuid.NewString(),
		sku:    sku,
		sh:     sh,
		signal: make(chan struct{}, 1),
		out:    make(chan domain.WatchEvent, buffer),
		done:   make(chan struct{}),
		logger: logger,
	}
}

// publish stores ev as the pending event and wakes the run loop.
// Callers hold the shard write lock.
func (w *watcher) publish(ev domain.WatchEvent) {
	w.mu.Lock()
	if w.closed || (w.pending != nil && w.pending.Deleted) {
		w.mu.Unlock()
		return
	}
	w.pending = &ev
	w.mu.Unlock()

	select {
	case w.signal <- struct{}{}:
	default:
	}
}

func (w *watcher) take() (domain.WatchEvent, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.pending == nil {
		return domain.WatchEvent{}, false
	}
	ev := *w.pending
	w.pending = nil
	return ev, true
}

func (w *watcher) run(ctx context.Context) {
	defer close(w.out)
	defer w.detach()

	for {
		select {
		case <-w.done:
			return
		case <-ctx.Done():
			return
		case <-w.signal:
			for {
				ev, ok := w.take()
				if !ok {
					break
				}
				select {
				case w.out <- ev:
				case <-w.done:
					return
				case <-ctx.Done():
					return
				}
				if ev.Deleted {
					w.logger.Debug().Str("sku", w.sku).Str("watcher", w.id).Msg("watched item removed, ending subscription")
					return
				}
			}
		}
	}
}

func (w *watcher) Events() <-chan domain.WatchEvent {
	return w.out
}

func (w *watcher) Close() {
	w.once.Do(func() {
		close(w.done)
	})
}

// detach removes the watcher from the shard registry and stops any
// further publishes into its mailbox.
func (w *watcher) detach() {
	w.sh.mu.Lock()
	list := w.sh.watchers[w.sku]
	for i, other := range list {
		if other == w {
			list[i] = list[len(list)-1]
			w.sh.watchers[w.sku] = list[:len(list)-1]
			break
		}
	}
	if len(w.sh.watchers[w.sku]) == 0 {
		delete(w.sh.watchers, w.sku)
	}
	w.sh.mu.Unlock()

	w.mu.Lock()
	w.closed = true
	w.pending = nil
	w.mu.Unlock()
}
