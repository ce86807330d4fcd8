package asyncevents

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/unkn0wn-root/memocell"
)

type recorder struct {
	mu  sync.Mutex
	seq []string
}

var _ memocell.Events = (*recorder)(nil)

func (r *recorder) add(s string) {
	r.mu.Lock()
	r.seq = append(r.seq, s)
	r.mu.Unlock()
}

func (r *recorder) Computing()    { r.add("computing") }
func (r *recorder) Computed(bool) { r.add("computed") }
func (r *recorder) Invalidated()  { r.add("invalidated") }
func (r *recorder) Error(error)   { r.add("error") }
func (r *recorder) Disposed()     { r.add("disposed") }

func (r *recorder) sequence() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.seq))
	copy(out, r.seq)
	return out
}

// A single worker drains the queue in order; Close waits for delivery and is
// idempotent.
func TestAsyncDeliversInOrder(t *testing.T) {
	rec := &recorder{}
	ev := New(rec, 1, 16)

	ev.Computing()
	ev.Error(errors.New("x"))
	ev.Computed(false)
	ev.Invalidated()
	ev.Disposed()
	ev.Close()
	ev.Close()

	require.Equal(t, []string{"computing", "error", "computed", "invalidated", "disposed"}, rec.sequence())
}

func TestAsyncDropsWhenFull(t *testing.T) {
	rec := &recorder{}
	gate := gateEvents{
		recorder: rec,
		entered:  make(chan struct{}),
		block:    make(chan struct{}),
	}
	ev := New(&gate, 1, 1)

	ev.Computing() // taken by the worker, blocks in delivery
	<-gate.entered
	ev.Computing() // sits in the queue
	ev.Computing() // dropped
	close(gate.block)
	ev.Close()

	require.Len(t, rec.sequence(), 2)
}

type gateEvents struct {
	*recorder
	entered chan struct{}
	block   chan struct{}
	once    sync.Once
}

func (g *gateEvents) Computing() {
	g.once.Do(func() {
		close(g.entered)
		<-g.block
	})
	g.recorder.Computing()
}
