package store

import (
	"context"
	"sync"

	"github.com/fespace-studio/fespace/logger"
)

// watcher is the change-notification hub behind reactive queries. Every
// mutation reports the tables it touched; every live subscription listens for
// its table and re-runs its query when the table changes.
type watcher struct {
	mu     sync.Mutex
	nextID int
	subs   map[string]map[int]chan struct{}
}

func newWatcher() *watcher {
	return &watcher{
		subs: make(map[string]map[int]chan struct{}),
	}
}

// subscribe registers interest in a table. The returned channel carries a
// coalesced change signal; multiple writes between reads collapse into one.
func (w *watcher) subscribe(table string) (int, chan struct{}) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.nextID++
	id := w.nextID
	ch := make(chan struct{}, 1)
	if w.subs[table] == nil {
		w.subs[table] = make(map[int]chan struct{})
	}
	w.subs[table][id] = ch
	return id, ch
}

func (w *watcher) unsubscribe(table string, id int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.subs[table], id)
}

// notify signals every subscription watching any of the given tables.
func (w *watcher) notify(tables ...string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, table := range tables {
		for _, ch := range w.subs[table] {
			select {
			case ch <- struct{}{}:
			default:
				// a change signal is already pending
			}
		}
	}
}

// watchQuery turns a point-in-time query into a live subscription: the current
// result is emitted immediately, then re-queried and re-emitted on every
// change to the table. The channel closes when ctx is cancelled, which is how
// a state holder tears the subscription down with its screen.
func watchQuery[T any](ctx context.Context, w *watcher, table string, run func() (T, error)) <-chan T {
	out := make(chan T, 1)
	id, signal := w.subscribe(table)

	go func() {
		defer close(out)
		defer w.unsubscribe(table, id)

		for {
			value, err := run()
			if err != nil {
				logger.Log.Error().Err(err).Str("table", table).Msg("live query failed")
			} else {
				select {
				case out <- value:
				case <-ctx.Done():
					return
				}
			}

			select {
			case <-signal:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}
