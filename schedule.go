package memocell

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// schedule is the single pending TTL expiry: an Idle <-> Armed state machine
// over the clock's AfterFunc. Re-arming cancels the previous timer first, so
// at most one timer is ever pending. Each arm gets a sequence number; a timer
// whose sequence is no longer current fires into the void, so a timer armed
// for an old value can never invalidate a later one.
type schedule struct {
	mu       sync.Mutex
	clk      clock.Clock
	timer    *clock.Timer
	seq      uint64
	deadline time.Time
}

func newSchedule(clk clock.Clock) *schedule {
	return &schedule{clk: clk}
}

// arm schedules fire after d, cancelling any pending timer.
func (s *schedule) arm(d time.Duration, fire func()) {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.seq++
	seq := s.seq
	s.deadline = s.clk.Now().Add(d)
	s.timer = s.clk.AfterFunc(d, func() {
		if !s.claim(seq) {
			return
		}
		fire()
	})
	s.mu.Unlock()
}

// claim transitions Armed -> Idle for the firing timer. False means the arm
// was superseded or disarmed since.
func (s *schedule) claim(seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq || s.timer == nil {
		return false
	}
	s.timer = nil
	s.deadline = time.Time{}
	return true
}

// disarm cancels any pending timer. Safe to call when idle.
func (s *schedule) disarm() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
		s.deadline = time.Time{}
	}
	s.seq++
	s.mu.Unlock()
}

// armed reports whether an expiry is pending.
func (s *schedule) armed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer != nil
}
