// Package dispatch implements the single method-dispatch entry point:
// consult the call-site's inline cache, fall back to the method registry's
// MRO walk on a miss, install the new cache entry, and raise NoMethodError
// when nothing resolves.
package dispatch

import (
	"sync"

	"rubycore/internal/ic"
	"rubycore/internal/rberror"
	"rubycore/internal/registry"
	"rubycore/internal/value"
)

// Observer receives IC transition and dispatch events for the telemetry
// layer (internal/telemetry) to persist/stream; nil is a valid no-op
// observer.
type Observer interface {
	OnTransition(siteID, method string, from, to ic.StateType)
	OnDispatch(siteID, method, class string, hit bool)
}

// Engine is the dispatch surface: one Engine owns one registry and one IC
// table. The embedder is expected to drive evaluation from a single
// goroutine; the internal mutex here only protects the cache table itself,
// not Ruby-level concurrent execution.
type Engine struct {
	reg *registry.Registry

	mu     sync.Mutex
	caches map[string]*ic.Cache

	observer Observer
}

// New builds a dispatch engine over reg. observer may be nil.
func New(reg *registry.Registry, observer Observer) *Engine {
	return &Engine{reg: reg, caches: make(map[string]*ic.Cache), observer: observer}
}

func (e *Engine) getOrCreate(siteID, method string) *ic.Cache {
	e.mu.Lock()
	defer e.mu.Unlock()
	if c, ok := e.caches[siteID]; ok {
		return c
	}
	c := ic.New(siteID, method, e.onTransition)
	e.caches[siteID] = c
	return c
}

func (e *Engine) onTransition(siteID, method string, from, to ic.StateType) {
	if e.observer != nil {
		e.observer.OnTransition(siteID, method, from, to)
	}
}

// Dispatch resolves and invokes method on receiver for the given call site,
// consulting and updating that site's inline cache along the way.
func (e *Engine) Dispatch(siteID string, receiver value.Value, method string, args ...value.Value) (value.Value, error) {
	className := receiver.ClassName()
	cache := e.getOrCreate(siteID, method)
	epoch := e.reg.Epoch(method)

	if hit, impl := cache.Lookup(className, epoch); hit {
		if e.observer != nil {
			e.observer.OnDispatch(siteID, method, className, true)
		}
		return impl(receiver, args...)
	}

	impl := e.reg.Lookup(receiver, method)
	if e.observer != nil {
		e.observer.OnDispatch(siteID, method, className, false)
	}
	if impl == nil {
		return nil, rberror.NewNoMethodError(className, method, len(args))
	}
	cache.Update(className, impl, epoch)
	return impl(receiver, args...)
}

// CacheFor exposes a call-site's cache for observability (harness/CLI debug
// output); it does not create one, returning nil if the site has never
// dispatched.
func (e *Engine) CacheFor(siteID string) *ic.Cache {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.caches[siteID]
}

// AllCaches returns every known call site's cache, for a summary report.
func (e *Engine) AllCaches() map[string]*ic.Cache {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make(map[string]*ic.Cache, len(e.caches))
	for k, v := range e.caches {
		out[k] = v
	}
	return out
}

// Registry exposes the underlying registry, e.g. for builtins installation
// or harness-level kind_of?/respond_to? checks.
func (e *Engine) Registry() *registry.Registry { return e.reg }
