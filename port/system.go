// File: port/system.go
// Package port: the distinguished system port, the scheduler's
// rendezvous point.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package port

import (
	"github.com/eapache/queue"

	"github.com/momentics/portio/api"
)

// NewSystemPort creates the singleton system port. Its State holds the
// pending set (ports currently being waited on) and Data the waked set
// (ports the wake predicate found ready since the last sieve). Both
// are FIFO queues; the waked set is consumed only as a whole by the
// scheduler's sieve.
func NewSystemPort(awake api.Value) *Port {
	spec := api.NewObject().Set("scheme", api.Word("system"))
	return &Port{
		Spec:  spec,
		State: queue.New(),
		Awake: awake,
		Data:  queue.New(),
	}
}

// PendingQueue returns the system port's pending set, or nil when the
// port does not carry one.
func (p *Port) PendingQueue() *queue.Queue {
	if p == nil {
		return nil
	}
	q, _ := p.State.(*queue.Queue)
	return q
}

// WakedQueue returns the system port's waked set, or nil when the port
// does not carry one.
func (p *Port) WakedQueue() *queue.Queue {
	if p == nil {
		return nil
	}
	q, _ := p.Data.(*queue.Queue)
	return q
}

// Watch adds a port to the system port's pending set. Callers add
// ports before entering a wait; only the scheduler consumes the set.
func (p *Port) Watch(target *Port) {
	if q := p.PendingQueue(); q != nil {
		for i := 0; i < q.Length(); i++ {
			if q.Get(i) == target {
				return
			}
		}
		q.Add(target)
	}
}

// Unwatch removes a port from the system port's pending set.
func (p *Port) Unwatch(target *Port) {
	q := p.PendingQueue()
	if q == nil {
		return
	}
	n := q.Length()
	for i := 0; i < n; i++ {
		v := q.Remove()
		if v != target {
			q.Add(v)
		}
	}
}
