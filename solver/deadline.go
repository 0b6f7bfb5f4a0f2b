package solver

import "time"

// Deadline is a cooperative cancellation point checked every 100,000
// recursive expand calls (see expand in engine.go). The zero Deadline never
// expires.
type Deadline struct {
	at      time.Time
	enabled bool
}

// NoDeadline returns a Deadline that never expires.
func NoDeadline() Deadline {
	return Deadline{}
}

// After returns a Deadline expiring d from now. d <= 0 never expires.
func After(d time.Duration) Deadline {
	if d <= 0 {
		return NoDeadline()
	}

	return Deadline{at: time.Now().Add(d), enabled: true}
}

// Exceeded reports whether the deadline has passed.
func (d Deadline) Exceeded() bool {
	return d.enabled && time.Now().After(d.at)
}
