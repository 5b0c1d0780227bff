// Package observable holds process-wide values that interested parties can
// watch. Subscribers register when they start caring (a UI mounting, a
// session opening) and call the returned func when they stop.
package observable

import "sync"

type subscriber[T any] struct {
	id int
	fn func(T)
}

// Value is a concurrency-safe holder that notifies subscribers on every Set.
// Notifications are synchronous and delivered in subscription order.
type Value[T any] struct {
	mu     sync.RWMutex
	value  T
	nextID int
	subs   []subscriber[T]
}

func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{value: initial}
}

func (v *Value[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.value
}

// Set stores val and notifies all subscribers with it.
func (v *Value[T]) Set(val T) {
	v.mu.Lock()
	v.value = val
	subs := make([]subscriber[T], len(v.subs))
	copy(subs, v.subs)
	v.mu.Unlock()

	// called outside the lock so subscribers may Get/Set/unsubscribe
	for _, s := range subs {
		s.fn(val)
	}
}

// Subscribe registers fn and returns the func that removes it again.
// Calling the returned func more than once is a no-op.
func (v *Value[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	v.mu.Lock()
	id := v.nextID
	v.nextID++
	v.subs = append(v.subs, subscriber[T]{id: id, fn: fn})
	v.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			v.mu.Lock()
			defer v.mu.Unlock()
			for i, s := range v.subs {
				if s.id == id {
					v.subs = append(v.subs[:i], v.subs[i+1:]...)
					return
				}
			}
		})
	}
}

// Subscribers returns the number of active subscriptions.
func (v *Value[T]) Subscribers() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.subs)
}
