// Package slogevents is a memocell.Events implementation backed by log/slog.
// Compute traffic can be sampled to avoid floods on hot cells; invalidations,
// failures and disposal are always logged.
package slogevents

import (
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/memocell"
)

type Options struct {
	// Sampling for the per-attempt Computing/Computed pair; 0/1 = log all.
	ComputeEvery uint64
}

type Events struct {
	l    *slog.Logger
	opts Options

	computingCtr atomic.Uint64
	computedCtr  atomic.Uint64
}

var _ memocell.Events = (*Events)(nil)

func New(l *slog.Logger, opts Options) *Events {
	return &Events{l: l, opts: opts}
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (e *Events) Computing() {
	if e.l == nil || !sample(e.opts.ComputeEvery, &e.computingCtr) {
		return
	}
	e.l.Debug("memocell.computing")
}

func (e *Events) Computed(installed bool) {
	if e.l == nil || !sample(e.opts.ComputeEvery, &e.computedCtr) {
		return
	}
	e.l.Debug("memocell.computed",
		"installed", installed)
}

func (e *Events) Invalidated() {
	if e.l == nil {
		return
	}
	e.l.Info("memocell.invalidated")
}

func (e *Events) Error(err error) {
	if e.l == nil {
		return
	}
	e.l.Error("memocell.producer_error",
		"err", err)
}

func (e *Events) Disposed() {
	if e.l == nil {
		return
	}
	e.l.Info("memocell.disposed")
}
