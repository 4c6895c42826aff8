package core

import (
	"context"
	"sync/atomic"
)

var defaultDispatcher atomic.Pointer[Dispatcher]

func init() {
	defaultDispatcher.Store(NewDispatcher())
}

// Default returns the process-wide dispatcher.
func Default() *Dispatcher { return defaultDispatcher.Load() }

// SetDefault replaces the process-wide dispatcher and returns the previous
// one, so tests can restore it.
func SetDefault(d *Dispatcher) *Dispatcher {
	if d == nil {
		d = NewDispatcher()
	}
	return defaultDispatcher.Swap(d)
}

// Register adds top-level types to scheme on the default dispatcher.
func Register(scheme string, types ...Type) { Default().Register(scheme, types...) }

// Route dispatches through the default dispatcher.
func Route(ctx context.Context, raw string, p Parameter, done Completion) error {
	return Default().Route(ctx, raw, p, done)
}

// Fetch dispatches through the default dispatcher.
func Fetch(ctx context.Context, raw string, p Parameter, done Completion) (any, error) {
	return Default().Fetch(ctx, raw, p, done)
}
