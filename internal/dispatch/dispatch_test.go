package dispatch

import (
	"testing"

	"rubycore/internal/ic"
	"rubycore/internal/registry"
	"rubycore/internal/value"
)

func newTestEngine() (*Engine, *registry.Registry) {
	reg := registry.New()
	registry.InstallClassHierarchy(reg)
	reg.Register("Integer", "double", func(recv value.Value, _ ...value.Value) (value.Value, error) {
		i := recv.(value.Integer)
		return value.AddInt(i, i), nil
	})
	return New(reg, nil), reg
}

func TestDispatchResolvesThroughRegistry(t *testing.T) {
	e, _ := newTestEngine()
	out, err := e.Dispatch("site1", value.IntFromInt64(21), "double")
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if !out.RubyEqual(value.IntFromInt64(42)) {
		t.Errorf("double(21) = %v, want 42", out.Inspect())
	}
}

func TestDispatchRaisesNoMethodError(t *testing.T) {
	e, _ := newTestEngine()
	_, err := e.Dispatch("site1", value.IntFromInt64(1), "nope")
	if err == nil {
		t.Fatal("expected NoMethodError")
	}
}

func TestDispatchFillsCacheAfterMiss(t *testing.T) {
	e, _ := newTestEngine()
	e.Dispatch("site1", value.IntFromInt64(1), "double")
	cache := e.CacheFor("site1")
	if cache == nil {
		t.Fatal("expected a cache to exist for site1 after dispatch")
	}
	if cache.Stats().Type != ic.Monomorphic {
		t.Errorf("cache state = %s, want Monomorphic", cache.Stats().Type)
	}
}

func TestDispatchSecondCallIsACacheHit(t *testing.T) {
	e, _ := newTestEngine()
	e.Dispatch("site1", value.IntFromInt64(1), "double")
	e.Dispatch("site1", value.IntFromInt64(2), "double")
	stats := e.CacheFor("site1").Stats()
	if stats.Hits != 1 {
		t.Errorf("hits = %d, want 1 after a second same-class call", stats.Hits)
	}
}

func TestDispatchObservesTransitionsAndDispatches(t *testing.T) {
	var transitions, dispatches int
	obs := fakeObserver{
		onTransition: func(string, string, ic.StateType, ic.StateType) { transitions++ },
		onDispatch:   func(string, string, string, bool) { dispatches++ },
	}
	reg := registry.New()
	registry.InstallClassHierarchy(reg)
	reg.Register("Integer", "noop", func(recv value.Value, _ ...value.Value) (value.Value, error) { return recv, nil })
	e := New(reg, obs)

	e.Dispatch("site1", value.IntFromInt64(1), "noop")
	e.Dispatch("site1", value.IntFromInt64(2), "noop")

	if transitions == 0 {
		t.Error("expected at least one OnTransition call (Empty->Monomorphic)")
	}
	if dispatches != 2 {
		t.Errorf("OnDispatch called %d times, want 2", dispatches)
	}
}

func TestDispatchInvalidatesCacheAfterRedefinition(t *testing.T) {
	e, reg := newTestEngine()
	e.Dispatch("site1", value.IntFromInt64(10), "double")

	reg.Register("Integer", "double", func(recv value.Value, _ ...value.Value) (value.Value, error) {
		i := recv.(value.Integer)
		return value.MulInt(i, value.IntFromInt64(3)), nil
	})

	out, err := e.Dispatch("site1", value.IntFromInt64(10), "double")
	if err != nil {
		t.Fatalf("Dispatch after redefinition: %v", err)
	}
	if !out.RubyEqual(value.IntFromInt64(30)) {
		t.Errorf("double(10) after redefinition = %v, want 30 (cache should have invalidated)", out.Inspect())
	}
}

type fakeObserver struct {
	onTransition func(siteID, method string, from, to ic.StateType)
	onDispatch   func(siteID, method, class string, hit bool)
}

func (f fakeObserver) OnTransition(siteID, method string, from, to ic.StateType) {
	if f.onTransition != nil {
		f.onTransition(siteID, method, from, to)
	}
}

func (f fakeObserver) OnDispatch(siteID, method, class string, hit bool) {
	if f.onDispatch != nil {
		f.onDispatch(siteID, method, class, hit)
	}
}
