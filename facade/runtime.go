// File: facade/runtime.go
// Unified facade layer for the portio runtime.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// This file defines the Runtime struct, which aggregates all core
// components of the port runtime behind a single facade. It initializes
// the scheme registry, the built-in backends, the security gate, the
// system port with its default wake predicate, the event scheduler, and
// the control interfaces based on immutable configuration. The facade
// exposes methods to open ports, dispatch actions, wait on pending
// ports, raise signals, and retrieve runtime services.

package facade

import (
	"fmt"

	"github.com/momentics/portio/api"
	"github.com/momentics/portio/control"
	"github.com/momentics/portio/dispatch"
	"github.com/momentics/portio/eval"
	"github.com/momentics/portio/port"
	"github.com/momentics/portio/sched"
	"github.com/momentics/portio/scheme"
	"github.com/momentics/portio/schemes"
	"github.com/momentics/portio/security"
)

// Config holds parameters immutable per run.
type Config struct {
	MaxBackoffMS     uint32 // Cap on the scheduler's doubling poll interval
	DefaultTimeoutMS uint32 // Millisecond budget used by WaitDefault; sched.Forever waits indefinitely
	PolicyPath       string // YAML security policy file; empty allows all
	EnableMetrics    bool   // Whether to collect scheduler/dispatcher counters
	EnableDebug      bool   // Whether to expose debug probes
}

// DefaultConfig returns default configuration values.
func DefaultConfig() *Config {
	return &Config{
		MaxBackoffMS:     sched.DefaultMaxBackoffMS, // 64ms backoff ceiling
		DefaultTimeoutMS: sched.Forever,             // wait indefinitely by default
		PolicyPath:       "",                        // no policy file: allow all
		EnableMetrics:    true,                      // enable built-in counters
		EnableDebug:      true,                      // enable debug probes
	}
}

// Runtime is the main facade type.
type Runtime struct {
	eval     *eval.Evaluator
	sys      *port.Port
	sched    *sched.Scheduler
	sig      *sched.Signals
	gate     *security.Gate
	backends *schemes.Backends
	config   *control.ConfigStore
	metrics  *control.MetricsRegistry
	probes   *control.DebugProbes
}

// New initializes the runtime: registry, built-in schemes, security
// gate, system port and scheduler. Initialization is single-threaded;
// the registry is read-only once New returns.
func New(cfg *Config) (*Runtime, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	var table security.PolicyTable = security.AllowAll{}
	if cfg.PolicyPath != "" {
		fp, err := security.LoadPolicy(cfg.PolicyPath)
		if err != nil {
			return nil, fmt.Errorf("facade: %w", err)
		}
		table = fp
	}
	gate := security.NewGate(table)

	scheme.Init()
	backends := schemes.NewBackends(gate)
	backends.RegisterAll()

	r := &Runtime{
		eval:     eval.New(),
		sig:      &sched.Signals{},
		gate:     gate,
		backends: backends,
		config:   control.NewConfigStore(),
	}
	r.sys = port.NewSystemPort(nil)
	r.sys.Awake = r.defaultAwake()

	r.sched = sched.New(r.eval, r.sys, r.sig)
	r.sched.MaxBackoffMS = cfg.MaxBackoffMS

	r.config.SetConfig(map[string]any{
		control.KeyMaxBackoffMS:     cfg.MaxBackoffMS,
		control.KeyDefaultTimeoutMS: cfg.DefaultTimeoutMS,
		control.KeyPolicyPath:       cfg.PolicyPath,
	})
	r.config.OnReload(r.applyConfig)

	if cfg.EnableMetrics {
		r.metrics = control.NewMetricsRegistry()
		r.sched.Metrics = r.metrics
	}
	if cfg.EnableDebug {
		r.probes = control.NewDebugProbes()
		r.probes.Register("sched.pending", func() any {
			if q := r.sys.PendingQueue(); q != nil {
				return q.Length()
			}
			return 0
		})
		r.probes.Register("scheme.count", func() any { return scheme.Count() })
	}
	return r, nil
}

// Close tears the runtime down and releases the scheme registry.
func (r *Runtime) Close() {
	scheme.Shutdown()
}

// OpenPort constructs a port from spec, resolves its actor and
// dispatches open on it.
func (r *Runtime) OpenPort(spec *api.Object) (*port.Port, error) {
	p := port.New(spec)
	p.Actor = scheme.ActorFor(spec)
	out := r.Dispatch(openFrame(), p, api.ActionOpen)
	if err := out.Err(); err != nil {
		return nil, err
	}
	return p, nil
}

// SetScheme is the set-scheme surface operation: bind a scheme
// description's actor slot to its registered native entry point.
// False reports the no-op case (no registry match).
func (r *Runtime) SetScheme(desc *api.Object) bool {
	return scheme.Install(desc)
}

// Dispatch sends an action to a port through the generic dispatcher.
func (r *Runtime) Dispatch(f *api.Frame, p *port.Port, action api.Word) api.Outcome {
	out := dispatch.Dispatch(r.eval, f, p, action)
	if r.metrics != nil {
		r.metrics.Inc("dispatch.calls")
		if _, redirected := p.Actor.(port.ObjectActor); redirected &&
			!(out.IsThrown() && out.Name == api.ThrownNoPortAction) {
			r.metrics.Inc("dispatch.redirects")
		}
	}
	return out
}

// Watch adds a port to the system port's pending set before a wait.
func (r *Runtime) Watch(p *port.Port) { r.sys.Watch(p) }

// Unwatch removes a port from the pending set.
func (r *Runtime) Unwatch(p *port.Port) { r.sys.Unwatch(p) }

// Wait blocks until one of the pending ports wakes or the millisecond
// budget runs out; sched.Forever waits indefinitely.
func (r *Runtime) Wait(pending api.Block, timeoutMS uint32, only bool) (bool, error) {
	return r.sched.Wait(pending, timeoutMS, only)
}

// WaitDefault waits with the configured default millisecond budget
// (control.KeyDefaultTimeoutMS), so callers need not carry a timeout.
func (r *Runtime) WaitDefault(pending api.Block, only bool) (bool, error) {
	timeout := sched.Forever
	if v, ok := r.config.Get(control.KeyDefaultTimeoutMS); ok {
		switch n := v.(type) {
		case uint32:
			timeout = n
		case int:
			if n >= 0 {
				timeout = uint32(n)
			}
		}
	}
	return r.sched.Wait(pending, timeout, only)
}

// Sieve drops freshly-woken ports from pending and clears the waked
// set; it returns the surviving pending ports.
func (r *Runtime) Sieve(pending api.Block) api.Block {
	return r.sched.Sieve(pending)
}

// Halt raises the halt signal: the current wait aborts and is not
// retried.
func (r *Runtime) Halt() { r.sig.Raise(sched.SigHalt) }

// Interrupt raises the interrupt signal: the current wait offers the
// breakpoint hook.
func (r *Runtime) Interrupt() { r.sig.Raise(sched.SigInterrupt) }

// Evaluator exposes the runtime's evaluator.
func (r *Runtime) Evaluator() *eval.Evaluator { return r.eval }

// SystemPort exposes the distinguished system port.
func (r *Runtime) SystemPort() *port.Port { return r.sys }

// Scheduler exposes the event scheduler.
func (r *Runtime) Scheduler() *sched.Scheduler { return r.sched }

// Control exposes the dynamic configuration store.
func (r *Runtime) Control() *control.ConfigStore { return r.config }

// Metrics exposes the metrics registry; nil when disabled.
func (r *Runtime) Metrics() *control.MetricsRegistry { return r.metrics }

// Probes exposes the debug probe set; nil when disabled.
func (r *Runtime) Probes() *control.DebugProbes { return r.probes }

// applyConfig pushes reloaded tunables into the scheduler.
func (r *Runtime) applyConfig() {
	if v, ok := r.config.Get(control.KeyMaxBackoffMS); ok {
		switch n := v.(type) {
		case uint32:
			r.sched.MaxBackoffMS = n
		case int:
			if n > 0 {
				r.sched.MaxBackoffMS = uint32(n)
			}
		}
	}
}

// openFrame builds the frame for an internally-issued open action.
func openFrame() *api.Frame {
	fn := &api.Function{
		Name: "open",
		Params: []api.Param{
			{Name: "port", Class: api.ParamNormal},
		},
	}
	return &api.Frame{Fn: fn, Args: []api.Value{api.None{}}}
}
