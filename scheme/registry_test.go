package scheme_test

import (
	"fmt"
	"testing"

	"github.com/momentics/portio/api"
	"github.com/momentics/portio/port"
	"github.com/momentics/portio/scheme"
)

func nopEntry(*api.Frame, *port.Port, api.Word) api.Outcome {
	return api.ValueOf(api.None{})
}

func TestRegisterAndFind(t *testing.T) {
	scheme.Init()
	defer scheme.Shutdown()

	scheme.Register("file", nopEntry)
	if _, ok := scheme.Find("file"); !ok {
		t.Error("registered scheme not found")
	}
	if _, ok := scheme.Find("tcp"); ok {
		t.Error("unregistered scheme found")
	}
	if scheme.Count() != 1 {
		t.Errorf("count = %d", scheme.Count())
	}
}

// Exceeding the fixed capacity is a startup-time programmer error.
func TestRegisterCapacityAssertion(t *testing.T) {
	scheme.Init()
	defer scheme.Shutdown()

	for i := 0; i < scheme.Capacity; i++ {
		scheme.Register(api.Word(fmt.Sprintf("s%d", i)), nopEntry)
	}
	defer func() {
		if recover() == nil {
			t.Error("expected capacity assertion")
		}
	}()
	scheme.Register("overflow", nopEntry)
}

func TestInstallBindsActorSlot(t *testing.T) {
	scheme.Init()
	defer scheme.Shutdown()
	scheme.Register("file", nopEntry)

	desc := api.NewObject().Set("name", api.Word("file"))
	if !scheme.Install(desc) {
		t.Fatal("install must succeed for a registered scheme")
	}
	av, _ := desc.Get("actor")
	na, ok := av.(port.NativeActor)
	if !ok || na.Name != "file" || na.Entry == nil {
		t.Errorf("actor slot = %#v", av)
	}
}

func TestInstallNoMatchIsNoop(t *testing.T) {
	scheme.Init()
	defer scheme.Shutdown()

	desc := api.NewObject().Set("name", api.Word("gopher"))
	if scheme.Install(desc) {
		t.Error("install must be a no-op without a registry match")
	}
	if _, ok := desc.Get("actor"); ok {
		t.Error("no-op install must not touch the actor slot")
	}
	if scheme.Install(api.NewObject()) {
		t.Error("description without a name must be a no-op")
	}
}

func TestActorForResolution(t *testing.T) {
	scheme.Init()
	defer scheme.Shutdown()
	scheme.Register("file", nopEntry)

	native := scheme.ActorFor(api.NewObject().Set("scheme", api.Word("file")))
	if na, ok := native.(port.NativeActor); !ok || na.Name != "file" {
		t.Errorf("want native actor, got %#v", native)
	}

	handlers := api.NewObject()
	object := scheme.ActorFor(api.NewObject().Set("actor", handlers))
	if oa, ok := object.(port.ObjectActor); !ok || oa.Handlers != handlers {
		t.Errorf("want object actor, got %#v", object)
	}

	if scheme.ActorFor(api.NewObject()) != nil {
		t.Error("bare spec must resolve to no actor")
	}
}
