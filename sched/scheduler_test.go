package sched_test

import (
	"testing"

	"github.com/momentics/portio/api"
	"github.com/momentics/portio/eval"
	"github.com/momentics/portio/fake"
	"github.com/momentics/portio/port"
	"github.com/momentics/portio/sched"
)

type fixture struct {
	sys   *port.Port
	s     *sched.Scheduler
	ev    *eval.Evaluator
	sig   *sched.Signals
	clock *fake.Clock
	rec   *fake.SleepRecorder
}

func newFixture() *fixture {
	fx := &fixture{
		sys:   port.NewSystemPort(nil),
		ev:    eval.New(),
		sig:   &sched.Signals{},
		clock: fake.NewClock(),
	}
	fx.rec = &fake.SleepRecorder{Clock: fx.clock}
	fx.s = sched.New(fx.ev, fx.sys, fx.sig)
	fx.s.Sleep = fx.rec.Sleep
	fx.s.Now = fx.clock.Now
	return fx
}

// Scenario: empty pending and waked sets yield NothingPending without
// invoking the wake predicate.
func TestPollOnceNothingPending(t *testing.T) {
	fx := newFixture()
	calls := 0
	fx.sys.Awake = fake.ConstAwake(true, &calls)

	res, err := fx.s.PollOnce(nil, false)
	if err != nil || res != sched.NothingPending {
		t.Fatalf("res=%v err=%v", res, err)
	}
	if calls != 0 {
		t.Error("awake invoked with nothing pending")
	}
}

func TestPollOnceNoSystemPort(t *testing.T) {
	fx := newFixture()
	fx.sys.PendingQueue().Add(port.New(nil))
	// Awake left nil: not callable
	if res, _ := fx.s.PollOnce(nil, false); res != sched.NoSystemPort {
		t.Errorf("res=%v, want NoSystemPort", res)
	}

	bad := sched.New(fx.ev, &port.Port{}, fx.sig)
	if res, _ := bad.PollOnce(nil, false); res != sched.NoSystemPort {
		t.Errorf("malformed system port: res=%v", res)
	}
}

// Scenario: one pending port, truthy awake: satisfied on the first
// iteration with no sleeping.
func TestWaitSatisfiedFirstPass(t *testing.T) {
	fx := newFixture()
	calls := 0
	fx.sys.Awake = fake.ConstAwake(true, &calls)
	fx.sys.PendingQueue().Add(port.New(nil))

	ok, err := fx.s.Wait(nil, 1000, false)
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if calls != 1 {
		t.Errorf("awake called %d times", calls)
	}
	if len(fx.rec.Sleeps) != 0 {
		t.Errorf("wait slept: %v", fx.rec.Sleeps)
	}
}

// A zero timeout performs exactly one poll and never blocks.
func TestWaitZeroTimeoutSinglePoll(t *testing.T) {
	fx := newFixture()
	calls := 0
	fx.sys.Awake = fake.ConstAwake(false, &calls)
	fx.sys.PendingQueue().Add(port.New(nil))

	ok, err := fx.s.Wait(nil, 0, false)
	if err != nil || ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if calls != 1 {
		t.Errorf("awake called %d times, want 1", calls)
	}
	if len(fx.rec.Sleeps) != 0 {
		t.Errorf("wait slept: %v", fx.rec.Sleeps)
	}
}

// Scenario: awake always false with a 50ms budget. Sleeps double from
// one unit and the deadline is never overrun.
func TestWaitBackoffAndDeadline(t *testing.T) {
	fx := newFixture()
	fx.sys.Awake = fake.ConstAwake(false, nil)
	fx.sys.PendingQueue().Add(port.New(nil))

	ok, err := fx.s.Wait(nil, 50, false)
	if err != nil || ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}

	want := []uint32{1, 2, 4, 8, 16, 19}
	if len(fx.rec.Sleeps) != len(want) {
		t.Fatalf("sleeps = %v", fx.rec.Sleeps)
	}
	var total uint32
	for i, ms := range fx.rec.Sleeps {
		if ms != want[i] {
			t.Errorf("sleep[%d] = %d, want %d", i, ms, want[i])
		}
		total += ms
	}
	if total > 50 {
		t.Errorf("slept %dms past the deadline", total)
	}
}

// The doubling interval caps at 64 units.
func TestWaitBackoffCap(t *testing.T) {
	fx := newFixture()
	fx.sys.Awake = fake.ConstAwake(false, nil)
	fx.sys.PendingQueue().Add(port.New(nil))

	_, _ = fx.s.Wait(nil, 1000, false)
	for _, ms := range fx.rec.Sleeps {
		if ms > 64 {
			t.Fatalf("sleep %dms exceeds cap", ms)
		}
	}
	last := fx.rec.Sleeps[len(fx.rec.Sleeps)-2]
	if last != 64 {
		t.Errorf("steady-state interval %d, want 64", last)
	}
}

func TestWaitHaltAbortsImmediately(t *testing.T) {
	fx := newFixture()
	calls := 0
	fx.sys.Awake = fake.ConstAwake(true, &calls)
	fx.sys.PendingQueue().Add(port.New(nil))
	fx.sig.Raise(sched.SigHalt)

	ok, err := fx.s.Wait(nil, sched.Forever, false)
	if ok || err != api.ErrHalted {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if calls != 0 {
		t.Error("polled after halt")
	}
	if fx.sig.Take(sched.SigHalt) {
		t.Error("halt signal not cleared")
	}
}

func TestWaitInterruptThrownPropagates(t *testing.T) {
	fx := newFixture()
	fx.sys.Awake = fake.ConstAwake(true, nil)
	fx.sys.PendingQueue().Add(port.New(nil))
	fx.ev.BreakpointHook = func() api.Outcome { return api.Thrown("quit", api.None{}) }
	fx.sig.Raise(sched.SigInterrupt)

	_, err := fx.s.Wait(nil, sched.Forever, false)
	te, ok := err.(*api.ThrownError)
	if !ok || te.Name != "quit" {
		t.Errorf("want thrown quit, got %v", err)
	}
}

func TestWaitInterruptResumeValueEscalates(t *testing.T) {
	fx := newFixture()
	fx.sys.Awake = fake.ConstAwake(true, nil)
	fx.sys.PendingQueue().Add(port.New(nil))
	fx.ev.BreakpointHook = func() api.Outcome { return api.ValueOf(42) }
	fx.sig.Raise(sched.SigInterrupt)

	_, err := fx.s.Wait(nil, sched.Forever, false)
	if err != api.ErrResumeValue {
		t.Errorf("want ErrResumeValue, got %v", err)
	}
}

func TestWaitInterruptResumeContinues(t *testing.T) {
	fx := newFixture()
	fx.sys.Awake = fake.ConstAwake(true, nil)
	fx.sys.PendingQueue().Add(port.New(nil))
	fx.sig.Raise(sched.SigInterrupt)

	ok, err := fx.s.Wait(nil, 1000, false)
	if err != nil || !ok {
		t.Errorf("ok=%v err=%v", ok, err)
	}
}

func TestWaitAwakeThrownSurfaces(t *testing.T) {
	fx := newFixture()
	fx.sys.Awake = fake.Awake(func(api.Value, bool) api.Outcome {
		return api.Thrown("broken", api.None{})
	})
	fx.sys.PendingQueue().Add(port.New(nil))

	_, err := fx.s.Wait(nil, 1000, false)
	te, ok := err.(*api.ThrownError)
	if !ok || te.Name != "broken" {
		t.Errorf("want thrown broken, got %v", err)
	}
}

func TestSieveRemovesWokenAndClears(t *testing.T) {
	fx := newFixture()
	a, b := port.New(nil), port.New(nil)
	fx.sys.WakedQueue().Add(a)

	pending := api.Block{a, b}
	pending = fx.s.Sieve(pending)
	if len(pending) != 1 || pending[0] != b {
		t.Fatalf("sieve kept %v", pending)
	}
	if fx.sys.WakedQueue().Length() != 0 {
		t.Error("waked set not cleared as a unit")
	}

	// idempotent once the waked set is empty
	again := fx.s.Sieve(pending)
	if len(again) != 1 || again[0] != b {
		t.Errorf("second sieve changed pending: %v", again)
	}
}

func TestSieveEmptyWakedIsNoop(t *testing.T) {
	fx := newFixture()
	a := port.New(nil)
	pending := api.Block{a}
	if got := fx.s.Sieve(pending); len(got) != 1 || got[0] != a {
		t.Errorf("sieve altered pending with empty waked set: %v", got)
	}
}
