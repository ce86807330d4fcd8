package memocell

// Runner schedules a detached unit of work: the caller never waits on its
// completion. The default spawns a goroutine per dispatch; tests substitute a
// synchronous or manually pumped runner to make detached runs deterministic.
type Runner interface {
	Go(fn func())
}

// RunnerFunc adapts a plain function to Runner.
type RunnerFunc func(fn func())

func (r RunnerFunc) Go(fn func()) { r(fn) }

type goroutineRunner struct{}

func (goroutineRunner) Go(fn func()) { go fn() }
