// Package memocell implements a single-value, lazily computed cache cell with
// TTL expiry, placeholder fallback, lifecycle events and a non-queueing
// exclusive-access lock. Each Cell memoizes the result of one expensive
// computation; reads never block on the producer.
//
// Components:
//   - Producer: caller-supplied function computing the value. An absent
//     result (ok=false) is a valid success outcome distinct from failure.
//   - State[V]: tagged snapshot of what the cell currently holds
//     (empty, computing, value, null result, errored, disposed).
//   - TTL: duration value object. A successful install arms an invalidation
//     timer; expiry empties the cell so the next access recomputes.
//   - Events: lightweight lifecycle callbacks (computing, computed,
//     invalidated, error, disposed). See events/async and slogevents.
//   - Runner: schedules detached producer runs. Defaults to plain goroutines.
//
// Read pattern:
//
//	cell, _ := memocell.New[Config](memocell.Options[Config]{
//	    Producer:    loadConfig,
//	    Placeholder: func() Config { return defaults },
//	    TTL:         memocell.Minutes(5),
//	})
//
//	cfg, err := cell.Value() // placeholder while the first compute is in flight
//
// Concurrency: a Cell owns its state behind a single mutex; transitions are
// atomic from any reader's perspective. Only one producer invocation is in
// flight at a time; concurrent computes while computing are redirected to the
// placeholder or rejected with ErrBusy, never queued. A result that completes
// after Dispose is discarded, never written into a disposed cell.
package memocell
