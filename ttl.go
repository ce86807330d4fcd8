package memocell

import "time"

// TTL is an immutable time-to-live for a computed value. The zero value means
// no expiry. Construct with the unit helpers or NewTTL.
type TTL struct {
	d time.Duration
}

// NewTTL wraps an arbitrary duration. Non-positive durations disable expiry.
func NewTTL(d time.Duration) TTL {
	if d <= 0 {
		return TTL{}
	}
	return TTL{d: d}
}

func Seconds(n int) TTL { return NewTTL(time.Duration(n) * time.Second) }
func Minutes(n int) TTL { return NewTTL(time.Duration(n) * time.Minute) }
func Hours(n int) TTL   { return NewTTL(time.Duration(n) * time.Hour) }
func Days(n int) TTL    { return NewTTL(time.Duration(n) * 24 * time.Hour) }
func Weeks(n int) TTL   { return NewTTL(time.Duration(n) * 7 * 24 * time.Hour) }

// Months builds a TTL of n months, approximated as 30 days each.
func Months(n int) TTL { return NewTTL(time.Duration(n) * 30 * 24 * time.Hour) }

// Years builds a TTL of n years, approximated as 365 days each.
func Years(n int) TTL { return NewTTL(time.Duration(n) * 365 * 24 * time.Hour) }

// Duration returns the wrapped duration; 0 when expiry is disabled.
func (t TTL) Duration() time.Duration { return t.d }

// Enabled reports whether values expire at all.
func (t TTL) Enabled() bool { return t.d > 0 }

func (t TTL) String() string {
	if !t.Enabled() {
		return "none"
	}
	return t.d.String()
}
