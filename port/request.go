// File: port/request.go
// Package port: the device request record bridging a port to OS-level
// asynchronous I/O bookkeeping.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package port

// ReqFlags are the device request status bits. The device layer
// signals completion by toggling ReqOpen/ReqPending; the core never
// interprets device payload beyond these flags.
type ReqFlags uint32

const (
	ReqAllocated ReqFlags = 1 << iota
	ReqOpen
	ReqPending
)

// DeviceKind identifies the device family a request is sized for.
type DeviceKind uint8

const (
	DevNone DeviceKind = iota
	DevConsole
	DevMemory
	DevTimer
	DevFile
	DevNet
	DevDNS
)

// DeviceRequest is owned exclusively by one port. It is created lazily
// on first use, reused across calls, and never aliased between ports.
// Its lifetime ends when the owning port's State is replaced or the
// port is collected.
type DeviceRequest struct {
	Flags    ReqFlags
	Kind     DeviceKind
	DeviceID int32
	Port     *Port // back-reference to the owning port

	// Payload is the kind-sized device buffer.
	Payload []byte

	// Deadline is a monotonic-nanosecond completion time for timer
	// devices; zero otherwise.
	Deadline int64
}

// EnsureRequest returns the port's device request, creating it on
// first use sized to the device kind. A request of a different kind in
// State is replaced, ending the old request's lifetime.
func EnsureRequest(p *Port, kind DeviceKind, size int) *DeviceRequest {
	if req, ok := p.State.(*DeviceRequest); ok && req.Kind == kind {
		return req
	}
	req := &DeviceRequest{
		Flags: ReqAllocated,
		Kind:  kind,
		Port:  p,
	}
	if size > 0 {
		req.Payload = make([]byte, 0, size)
	}
	p.State = req
	return req
}

// Request returns the port's device request without creating one.
func Request(p *Port) (*DeviceRequest, bool) {
	req, ok := p.State.(*DeviceRequest)
	return req, ok
}

// Complete marks the request's pending operation done. Called by the
// device layer; the wake predicate observes the cleared bit.
func (r *DeviceRequest) Complete() {
	r.Flags &^= ReqPending
}

// Ready reports whether the request is open with no operation pending.
func (r *DeviceRequest) Ready() bool {
	return r.Flags&ReqOpen != 0 && r.Flags&ReqPending == 0
}
