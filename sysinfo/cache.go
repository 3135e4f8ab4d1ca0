package sysinfo

import (
	"sync"
	"sync/atomic"
)

// Lazy computes a value on first use and keeps it for the life of the probe.
//
// The first Get runs init while holding the lock; concurrent callers wait on
// the same lock and then read what it stored. init runs at most once. When it
// reports failure, the failure is stored too, so every caller gets the same
// absent answer instead of retrying. Once filled, Get reads without locking.
type Lazy[T any] struct {
	done atomic.Bool
	mu   sync.Mutex
	ok   bool
	val  T
	init func() (T, bool)
}

// NewLazy returns a cell that fills itself with init.
func NewLazy[T any](init func() (T, bool)) *Lazy[T] {
	return &Lazy[T]{init: init}
}

// Get returns the cached value, computing it on the first call.
func (l *Lazy[T]) Get() (T, bool) {
	if l.done.Load() {
		return l.val, l.ok
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.done.Load() {
		l.val, l.ok = l.safeInit()
		// val and ok are published by this store.
		l.done.Store(true)
	}
	return l.val, l.ok
}

// safeInit converts a panicking init into a stored failure, so the cell is
// never left half-initialised.
func (l *Lazy[T]) safeInit() (val T, ok bool) {
	defer func() {
		if recover() != nil {
			var zero T
			val, ok = zero, false
		}
	}()
	if l.init == nil {
		return val, false
	}
	return l.init()
}
