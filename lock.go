package memocell

import (
	"context"
	"sync/atomic"
)

// lockGuard is a non-reentrant, non-queueing mutual-exclusion flag. A second
// concurrent caller is rejected rather than queued; callers retry. The flag
// gates access to the cell's value, not its state transitions.
type lockGuard struct {
	flag atomic.Bool
}

func (g *lockGuard) locked() bool  { return g.flag.Load() }
func (g *lockGuard) acquire() bool { return g.flag.CompareAndSwap(false, true) }
func (g *lockGuard) release()      { g.flag.Store(false) }

// Locked reports whether an exclusive region is currently active.
func (c *Cell[V]) Locked() bool { return c.lock.locked() }

// Use runs fn with exclusive, callback-scoped access to the cell's current
// state. If an exclusive region is already active it fails immediately with
// ErrLocked - a rejection, not a wait. The lock is released on every exit
// path (return, error, or panic) before Use returns or propagates; an error
// from fn reaches the caller after release.
func (c *Cell[V]) Use(ctx context.Context, fn func(ctx context.Context, cur State[V]) error) error {
	if !c.lock.acquire() {
		return ErrLocked
	}
	defer c.lock.release()
	return fn(ctx, c.State())
}

// Use runs fn under cell's exclusive lock and returns its result. It is the
// generic form of (*Cell).Use for callbacks that produce a value.
func Use[V, R any](ctx context.Context, c *Cell[V], fn func(ctx context.Context, cur State[V]) (R, error)) (R, error) {
	var out R
	err := c.Use(ctx, func(ctx context.Context, cur State[V]) error {
		var err error
		out, err = fn(ctx, cur)
		return err
	})
	return out, err
}
