// Package notify provides an in-process listener list for change events.
package notify

import (
	"sync"
)

// Listeners holds the subscribers for a single event type. The zero value is ready to use.
type Listeners[T any] struct {
	mu        sync.Mutex
	nextID    uint64
	listeners map[uint64]func(T)
	order     []uint64
}

// Subscribe registers fn and returns a function that removes it again.
// The returned function may be called any number of times.
func (l *Listeners[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.listeners == nil {
		l.listeners = make(map[uint64]func(T))
	}
	id := l.nextID
	l.nextID++
	l.listeners[id] = fn
	l.order = append(l.order, id)

	var once sync.Once
	return func() {
		once.Do(func() { l.remove(id) })
	}
}

// Notify calls every subscribed listener synchronously, in subscription order.
// Listeners subscribed or removed while Notify is running do not affect the current delivery.
func (l *Listeners[T]) Notify(event T) {
	for _, fn := range l.snapshot() {
		fn(event)
	}
}

// Len returns the number of active subscriptions.
func (l *Listeners[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.listeners)
}

func (l *Listeners[T]) snapshot() []func(T) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fns := make([]func(T), 0, len(l.order))
	for _, id := range l.order {
		fns = append(fns, l.listeners[id])
	}
	return fns
}

func (l *Listeners[T]) remove(id uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.listeners, id)
	for i, current := range l.order {
		if current == id {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
}
