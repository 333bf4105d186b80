package viewstate

import (
	"sync"
)

// Live mirrors a subscription channel into an always-current snapshot. The
// subscription starts lazily on the first read and stays open until the
// owning state holder's context is cancelled, which closes the channel and
// ends the mirror goroutine.
type Live[T any] struct {
	once      sync.Once
	subscribe func() <-chan T

	mu    sync.RWMutex
	value T
}

func newLive[T any](initial T, subscribe func() <-chan T) *Live[T] {
	return &Live[T]{value: initial, subscribe: subscribe}
}

// Get returns the current snapshot. The first call blocks until the initial
// query result arrives so the UI never renders stale zero-values.
func (l *Live[T]) Get() T {
	l.once.Do(func() {
		ch := l.subscribe()
		if v, ok := <-ch; ok {
			l.set(v)
		}
		go func() {
			for v := range ch {
				l.set(v)
			}
		}()
	})

	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.value
}

func (l *Live[T]) set(v T) {
	l.mu.Lock()
	l.value = v
	l.mu.Unlock()
}
