// Package testutil provides deterministic helpers for trace sequencing
// and property-test generators shared by the test suites.
package testutil

import "sync"

// TurnClock provides a thread-safe monotonic sequence for trace events.
//
// Every trace event in a scenario run carries a seq from one TurnClock,
// so replaying the same scenario always yields an identical trace. The
// clock can be reset for scenario reuse.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type TurnClock struct {
	mu  sync.Mutex
	seq int64
}

// NewTurnClock creates a new clock starting at 0.
//
// The first call to Next() returns 1.
func NewTurnClock() *TurnClock {
	return &TurnClock{seq: 0}
}

// Next increments and returns the next sequence number.
//
// Monotonic: always returns seq+1, never decreases.
func (c *TurnClock) Next() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	return c.seq
}

// Current returns the current sequence number without incrementing.
func (c *TurnClock) Current() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seq
}

// Reset resets the clock to 0.
//
// Used for scenario reuse. After Reset(), the next call to Next() returns 1.
func (c *TurnClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq = 0
}
