// Package singleton provides a lazily constructed, process-wide shared value
// whose construction runs at most once, even when the first accesses race.
package singleton

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
)

// ErrNilInstance is returned when a constructor reports success but yields nil.
var ErrNilInstance = errors.New("singleton: constructor returned nil")

// Lazy holds one slot. The zero value is ready to use and must not be copied
// after first use.
//
// Get uses double-checked initialization: the slot is read with an atomic load
// and only an empty slot takes the mutex. The pointer is published with an
// atomic store after the constructor returns, so a non-nil load always sees a
// fully constructed value.
type Lazy[T any] struct {
	mu   sync.Mutex
	slot atomic.Pointer[T]
}

// Get returns the shared value, calling construct if the slot is empty.
// construct runs under the accessor's lock and at most one call succeeds for
// the lifetime of the slot. A construct error (or panic) is returned to the
// caller that triggered it and leaves the slot empty, so a later Get retries.
func (l *Lazy[T]) Get(construct func() (*T, error)) (*T, error) {
	if v := l.slot.Load(); v != nil {
		return v, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if v := l.slot.Load(); v != nil {
		return v, nil
	}
	v, err := construct()
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, ErrNilInstance
	}
	l.slot.Store(v)
	return v, nil
}

// MustGet is like Get but panics if construction fails.
func (l *Lazy[T]) MustGet(construct func() (*T, error)) *T {
	v, err := l.Get(construct)
	if err != nil {
		panic(fmt.Sprintf("singleton: construction failed: %s", err))
	}
	return v
}

// Loaded reports whether the slot holds a value. It never takes the lock.
func (l *Lazy[T]) Loaded() bool {
	return l.slot.Load() != nil
}

// Reset empties the slot so the next Get constructs again. Intended for tests.
func (l *Lazy[T]) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.slot.Store(nil)
}
