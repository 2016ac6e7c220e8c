// File: sched/signals.go
// Package sched: cooperative signal flags checked by the wait loop.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package sched

import "sync/atomic"

// Signal is a pending-signal bit.
type Signal uint32

const (
	// SigHalt aborts a wait; the wait is not resumable afterwards.
	SigHalt Signal = 1 << iota
	// SigInterrupt offers the debugger-resume hook inside a wait.
	SigInterrupt
)

// Signals is the pending-signal word. Raising may happen from any
// goroutine; the wait loop consumes with test-and-clear.
type Signals struct {
	bits uint32
}

// Raise marks sig pending.
func (s *Signals) Raise(sig Signal) {
	for {
		old := atomic.LoadUint32(&s.bits)
		if atomic.CompareAndSwapUint32(&s.bits, old, old|uint32(sig)) {
			return
		}
	}
}

// Take clears sig and reports whether it was pending.
func (s *Signals) Take(sig Signal) bool {
	for {
		old := atomic.LoadUint32(&s.bits)
		if old&uint32(sig) == 0 {
			return false
		}
		if atomic.CompareAndSwapUint32(&s.bits, old, old&^uint32(sig)) {
			return true
		}
	}
}
