package memocell

// Events receives lifecycle callbacks at defined transition points.
// Implementations MUST be cheap and non-blocking; the cell calls them
// synchronously on hot paths (wrap with events/async otherwise).
//
// Per compute attempt the order is fixed: Computing fires on the transition
// into the computing state, Error fires after a failed result is installed,
// and Computed fires last regardless of outcome.
type Events interface {
	// The cell transitioned to computing; the producer is about to run.
	Computing()

	// A compute attempt finished and its outcome was installed.
	// installed is true only when a non-null value was stored.
	Computed(installed bool)

	// The cell was emptied by Invalidate or by TTL expiry.
	Invalidated()

	// The producer failed; err is a *ProducerError.
	Error(err error)

	// The cell was disposed. Fires exactly once.
	Disposed()
}

// NopEvents is the default no-op sink.
type NopEvents struct{}

func (NopEvents) Computing()    {}
func (NopEvents) Computed(bool) {}
func (NopEvents) Invalidated()  {}
func (NopEvents) Error(error)   {}
func (NopEvents) Disposed()     {}
