// File: fake/fake.go
// Package fake provides shared test doubles for the port runtime:
// a manual clock, a sleep recorder and scripted wake predicates.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package fake

import (
	"time"

	"github.com/momentics/portio/api"
)

// Clock is a manually-advanced clock.
type Clock struct {
	now time.Time
}

// NewClock starts a clock at an arbitrary fixed instant.
func NewClock() *Clock {
	return &Clock{now: time.Unix(1000, 0)}
}

// Now returns the current fake time.
func (c *Clock) Now() time.Time { return c.now }

// AdvanceMS moves the clock forward.
func (c *Clock) AdvanceMS(ms uint32) {
	c.now = c.now.Add(time.Duration(ms) * time.Millisecond)
}

// SleepRecorder records every requested sleep without blocking and
// advances an attached clock instead.
type SleepRecorder struct {
	Clock  *Clock
	Sleeps []uint32
}

// Sleep records ms and advances the clock.
func (s *SleepRecorder) Sleep(ms uint32) {
	s.Sleeps = append(s.Sleeps, ms)
	if s.Clock != nil {
		s.Clock.AdvanceMS(ms)
	}
}

// Awake builds a wake predicate function value whose body runs fn with
// the scheduler-supplied (ports, only) pair.
func Awake(fn func(ports api.Value, only bool) api.Outcome) *api.Function {
	return &api.Function{
		Name: "fake-awake",
		Params: []api.Param{
			{Name: "ports", Class: api.ParamNormal},
			{Name: "only", Class: api.ParamNormal},
		},
		Body: func(f *api.Frame) api.Outcome {
			return fn(f.Arg("ports"), api.Truthy(f.Arg("only")))
		},
	}
}

// ConstAwake builds a wake predicate always returning result, counting
// its calls through calls.
func ConstAwake(result bool, calls *int) *api.Function {
	return Awake(func(api.Value, bool) api.Outcome {
		if calls != nil {
			*calls++
		}
		return api.ValueOf(api.Logic(result))
	})
}
