// File: sched/scheduler.go
// Package sched implements the cooperative event-wait scheduler: a
// single-threaded polling loop with doubling backoff, bounded by
// signals and an optional millisecond deadline.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package sched

import (
	"time"

	"github.com/momentics/portio/api"
	"github.com/momentics/portio/control"
	"github.com/momentics/portio/internal/hostwait"
	"github.com/momentics/portio/port"
)

// PollResult is the outcome of one scheduler pass.
type PollResult uint8

const (
	// NoSystemPort: the system port is malformed or its wake
	// predicate is missing or not callable.
	NoSystemPort PollResult = iota
	// NothingPending: both the pending and waked sets are empty; the
	// wake predicate was not invoked.
	NothingPending
	// NotSatisfied: the wake predicate ran and did not satisfy the wait.
	NotSatisfied
	// Satisfied: the wake predicate returned a truthy logic result.
	Satisfied
)

// Forever is the all-bits-set timeout sentinel: wait indefinitely,
// bounded only by signals.
const Forever = ^uint32(0)

// DefaultMaxBackoffMS caps the doubling poll interval.
const DefaultMaxBackoffMS = 64

// Scheduler drives waits over the system port's pending and waked
// sets. It is single-threaded and cooperative: the only suspension
// point is the host sleep between polls.
type Scheduler struct {
	Eval api.Evaluator
	Sys  *port.Port
	Sig  *Signals

	// MaxBackoffMS caps the poll interval; zero means the default.
	MaxBackoffMS uint32

	// Metrics, when non-nil, receives poll/sleep/wake counters.
	Metrics *control.MetricsRegistry

	// Sleep and Now exist for tests; nil selects the host primitives.
	Sleep func(ms uint32)
	Now   func() time.Time
}

// New creates a scheduler over the given evaluator and system port.
func New(ev api.Evaluator, sys *port.Port, sig *Signals) *Scheduler {
	return &Scheduler{Eval: ev, Sys: sys, Sig: sig}
}

// PollOnce performs one scheduler pass. With both system queues empty
// it returns NothingPending without invoking any callback; otherwise
// the wake predicate is applied to (pending-or-none, only) and a
// truthy logic result satisfies the wait. A thrown outcome from the
// predicate is returned as err alongside NotSatisfied.
func (s *Scheduler) PollOnce(pending api.Block, only bool) (PollResult, error) {
	if !s.Sys.Valid() {
		return NoSystemPort, nil
	}
	pq := s.Sys.PendingQueue()
	wq := s.Sys.WakedQueue()
	if (pq == nil || pq.Length() == 0) && (wq == nil || wq.Length() == 0) {
		return NothingPending, nil
	}
	awake, ok := s.Sys.Awake.(*api.Function)
	if !ok || awake.Body == nil {
		return NoSystemPort, nil
	}

	var portsArg api.Value = api.None{}
	if pending != nil {
		portsArg = pending
	}
	s.count("sched.polls")
	out, _ := s.Eval.ApplyLiteral(awake, []api.Value{portsArg, api.Logic(only)})
	if out.IsThrown() {
		return NotSatisfied, out.Err()
	}
	if l, ok := out.Val.(api.Logic); ok && bool(l) {
		s.count("sched.wakes")
		return Satisfied, nil
	}
	return NotSatisfied, nil
}

// Wait polls until the wake predicate is satisfied or the millisecond
// budget runs out. Forever waits indefinitely. A pending halt signal
// is cleared and aborts the wait with ErrHalted; a pending interrupt
// signal is cleared and offers the breakpoint hook, whose thrown
// outcome propagates and whose resume-with-value request escalates to
// ErrResumeValue. The poll interval starts at one unit, doubles on
// NotSatisfied and NothingPending up to the cap, resets to one
// otherwise, and each sleep is clamped so the deadline is never
// overrun. A zero timeout performs exactly one poll and never sleeps.
func (s *Scheduler) Wait(pending api.Block, timeoutMS uint32, only bool) (bool, error) {
	maxBackoff := s.MaxBackoffMS
	if maxBackoff == 0 {
		maxBackoff = DefaultMaxBackoffMS
	}
	now := s.Now
	if now == nil {
		now = time.Now
	}
	sleep := s.Sleep
	if sleep == nil {
		sleep = hostwait.SleepMS
	}

	start := now()
	interval := uint32(1)
	for {
		if s.Sig != nil {
			if s.Sig.Take(SigHalt) {
				return false, api.ErrHalted
			}
			if s.Sig.Take(SigInterrupt) {
				out := s.Eval.Breakpoint()
				switch out.Kind {
				case api.OutThrown:
					return false, out.Err()
				case api.OutValue:
					return false, api.ErrResumeValue
				}
			}
		}

		res, err := s.PollOnce(pending, only)
		if err != nil {
			return false, err
		}
		if res == Satisfied {
			return true, nil
		}

		next := interval
		if timeoutMS != Forever {
			elapsed := now().Sub(start)
			elapsedMS := uint64(elapsed / time.Millisecond)
			if elapsedMS >= uint64(timeoutMS) {
				return false, nil
			}
			if remain := uint32(uint64(timeoutMS) - elapsedMS); next > remain {
				next = remain
			}
		}
		s.count("sched.sleeps")
		sleep(next)

		// backoff for the following pass: double while idle, reset on
		// any other outcome
		switch res {
		case NotSatisfied, NothingPending:
			interval *= 2
			if interval > maxBackoff {
				interval = maxBackoff
			}
		default:
			interval = 1
		}
	}
}

// Sieve removes from pending every port present in the system port's
// waked set, then clears the waked set as a unit. This is the only
// consumer of the waked set; survivors keep their order. With an empty
// waked set the pending list is returned unchanged.
func (s *Scheduler) Sieve(pending api.Block) api.Block {
	wq := s.Sys.WakedQueue()
	if wq == nil || wq.Length() == 0 {
		return pending
	}
	woken := make([]api.Value, 0, wq.Length())
	for wq.Length() > 0 {
		woken = append(woken, wq.Remove())
	}
	keep := make(api.Block, 0, len(pending))
	for _, v := range pending {
		dropped := false
		for _, w := range woken {
			if v == w {
				dropped = true
				break
			}
		}
		if !dropped {
			keep = append(keep, v)
		}
	}
	return keep
}

func (s *Scheduler) count(key string) {
	if s.Metrics != nil {
		s.Metrics.Inc(key)
	}
}
