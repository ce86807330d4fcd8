// Package asyncevents moves event delivery off the cell's hot path.
//
// usage:
//
//	raw := slogevents.New(slog.Default(), slogevents.Options{})
//	ev := asyncevents.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer ev.Close()
//
//	cell, _ := memocell.New[User](memocell.Options[User]{
//	    Producer: loadUser,
//	    Events:   ev, // or `raw` if synchronous delivery is fine
//	})
//
// Events are dropped when the queue is full; delivery order is preserved only
// with a single worker.
package asyncevents

import (
	"sync"

	"github.com/unkn0wn-root/memocell"
)

type Events struct {
	inner memocell.Events
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ memocell.Events = (*Events)(nil)

func New(inner memocell.Events, workers, qlen int) *Events {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	e := &Events{inner: inner, q: make(chan func(), qlen)}
	e.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer e.wg.Done()
			for f := range e.q {
				f()
			}
		}()
	}
	return e
}

// Close drains the queue and stops the workers. Idempotent.
func (e *Events) Close() {
	e.once.Do(func() {
		close(e.q)
		e.wg.Wait()
	})
}

func (e *Events) try(f func()) {
	select {
	case e.q <- f:
	default: // drop
	}
}

func (e *Events) Computing()       { e.try(func() { e.inner.Computing() }) }
func (e *Events) Computed(ok bool) { e.try(func() { e.inner.Computed(ok) }) }
func (e *Events) Invalidated()     { e.try(func() { e.inner.Invalidated() }) }
func (e *Events) Error(err error)  { e.try(func() { e.inner.Error(err) }) }
func (e *Events) Disposed()        { e.try(func() { e.inner.Disposed() }) }
