package port_test

import (
	"testing"

	"github.com/momentics/portio/api"
	"github.com/momentics/portio/port"
)

func TestValidRequiresSpec(t *testing.T) {
	if (&port.Port{}).Valid() {
		t.Error("port without spec must be malformed")
	}
	var nilPort *port.Port
	if nilPort.Valid() {
		t.Error("nil port must be malformed")
	}
	if !port.New(nil).Valid() {
		t.Error("constructed port must be well-formed")
	}
}

func TestEnsureRequestLazyAndReused(t *testing.T) {
	p := port.New(nil)
	if _, ok := port.Request(p); ok {
		t.Fatal("request must not exist before first use")
	}

	req := port.EnsureRequest(p, port.DevMemory, 64)
	if req.Flags&port.ReqAllocated == 0 {
		t.Error("allocated flag not set")
	}
	if req.Port != p {
		t.Error("back-reference missing")
	}
	if again := port.EnsureRequest(p, port.DevMemory, 64); again != req {
		t.Error("same-kind ensure must reuse the request")
	}
}

func TestEnsureRequestReplacesOnKindChange(t *testing.T) {
	p := port.New(nil)
	old := port.EnsureRequest(p, port.DevMemory, 0)
	repl := port.EnsureRequest(p, port.DevTimer, 0)
	if repl == old {
		t.Error("kind change must replace the request")
	}
	if got, _ := port.Request(p); got != repl {
		t.Error("state must hold the replacement")
	}
}

func TestRequestReadyAndComplete(t *testing.T) {
	p := port.New(nil)
	req := port.EnsureRequest(p, port.DevTimer, 0)
	req.Flags |= port.ReqOpen | port.ReqPending
	if req.Ready() {
		t.Error("pending request must not be ready")
	}
	req.Complete()
	if !req.Ready() {
		t.Error("completed open request must be ready")
	}
}

func TestSystemPortQueues(t *testing.T) {
	sys := port.NewSystemPort(nil)
	if !sys.Valid() {
		t.Fatal("system port must be well-formed")
	}
	if sys.PendingQueue() == nil || sys.WakedQueue() == nil {
		t.Fatal("system port must carry both queues")
	}
	if sys.SchemeName() != api.Word("system") {
		t.Errorf("scheme = %q", sys.SchemeName())
	}

	// an ordinary port carries neither queue
	p := port.New(nil)
	if p.PendingQueue() != nil || p.WakedQueue() != nil {
		t.Error("ordinary port must not expose scheduler queues")
	}
}

func TestWatchDedupAndUnwatch(t *testing.T) {
	sys := port.NewSystemPort(nil)
	a, b := port.New(nil), port.New(nil)

	sys.Watch(a)
	sys.Watch(a)
	sys.Watch(b)
	if n := sys.PendingQueue().Length(); n != 2 {
		t.Fatalf("pending length = %d, want 2", n)
	}

	sys.Unwatch(a)
	q := sys.PendingQueue()
	if q.Length() != 1 || q.Peek() != b {
		t.Error("unwatch must remove only the target")
	}
}
