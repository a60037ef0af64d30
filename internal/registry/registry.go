// Package registry implements the process-wide method registry and the
// method-resolution-order (MRO) walk used to resolve a (class, method)
// pair against its ancestor chain.
package registry

import (
	"sync"

	"rubycore/internal/rberror"
	"rubycore/internal/value"
)

// MethodImpl is a registered built-in or user-defined method body.
type MethodImpl func(receiver value.Value, args ...value.Value) (value.Value, error)

// ClassInfo is a registered class or module's place in the hierarchy.
type ClassInfo struct {
	Name       string
	Superclass string   // empty for BasicObject and for modules
	Modules    []string // included modules, in inclusion order
	IsModule   bool
}

type methodKey struct {
	class  string
	method string
}

// Registry is the process-wide (class-name, method-name) → impl mapping
// plus the class hierarchy table ancestor chains are computed from. The
// zero value is not usable; use New.
type Registry struct {
	mu sync.RWMutex

	methods map[methodKey]MethodImpl
	classes map[string]*ClassInfo

	// methodEpoch backs per-method-name cache invalidation: bumped whenever
	// Register replaces an existing (class, method) entry. internal/ic and
	// internal/dispatch compare a call-site's cached epoch against this to
	// decide whether a Monomorphic/Polymorphic hit is still valid.
	methodEpoch map[string]uint64

	internMu sync.Mutex
	interned map[string]string
}

// New builds an empty registry. Built-in classes and methods are installed
// separately by internal/builtins.Install.
func New() *Registry {
	return &Registry{
		methods:     make(map[methodKey]MethodImpl),
		classes:     make(map[string]*ClassInfo),
		methodEpoch: make(map[string]uint64),
		interned:    make(map[string]string),
	}
}

// Intern canonicalizes a method name to a single backing string so that
// operator methods stored under alternate key forms (bare string vs a
// would-be symbol form) collapse onto one registration. All Register/
// Lookup calls intern their name first.
func (r *Registry) Intern(name string) string {
	r.internMu.Lock()
	defer r.internMu.Unlock()
	if canon, ok := r.interned[name]; ok {
		return canon
	}
	r.interned[name] = name
	return name
}

// DefineClass registers a class or module's place in the hierarchy. Calling
// it again for the same name replaces the ClassInfo; AncestorChain results
// are never cached across this, so redefinition is safe but unusual (open
// classes extend methods, not superclass/module lists, in normal use).
func (r *Registry) DefineClass(info ClassInfo) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := info
	r.classes[info.Name] = &c
}

// Register inserts or replaces a (class, method) implementation. Replacing
// an existing entry bumps that method name's epoch so every inline cache
// that ever resolved through it re-validates on next use.
func (r *Registry) Register(class, method string, impl MethodImpl) {
	method = r.Intern(method)
	r.mu.Lock()
	defer r.mu.Unlock()
	key := methodKey{class: class, method: method}
	if _, exists := r.methods[key]; exists {
		r.methodEpoch[method]++
	}
	r.methods[key] = impl
}

// Epoch returns the current invalidation epoch for a method name.
func (r *Registry) Epoch(method string) uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.methodEpoch[method]
}

// AncestorChain computes a class's MRO: [C, M1..Mk, P-chain...] with
// BasicObject always last and Kernel mixed into Object.
func (r *Registry) AncestorChain(class string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ancestorChainLocked(class, make(map[string]bool))
}

func (r *Registry) ancestorChainLocked(class string, seen map[string]bool) []string {
	if class == "" || seen[class] {
		return nil
	}
	seen[class] = true
	chain := []string{class}
	info, ok := r.classes[class]
	if !ok {
		return chain
	}
	for _, mod := range info.Modules {
		if seen[mod] {
			continue
		}
		chain = append(chain, mod)
		seen[mod] = true
	}
	if info.Superclass != "" {
		chain = append(chain, r.ancestorChainLocked(info.Superclass, seen)...)
	}
	return chain
}

// LookupByClass walks class's ancestor chain for method.
func (r *Registry) LookupByClass(class, method string) MethodImpl {
	method = r.Intern(method)
	for _, c := range r.AncestorChain(class) {
		r.mu.RLock()
		impl, ok := r.methods[methodKey{class: c, method: method}]
		r.mu.RUnlock()
		if ok {
			return impl
		}
	}
	return nil
}

// Lookup resolves a method for a receiver value.
func (r *Registry) Lookup(receiver value.Value, method string) MethodImpl {
	return r.LookupByClass(receiver.ClassName(), method)
}

// Call resolves and invokes a method, raising NoMethodError when the MRO
// yields nothing.
func (r *Registry) Call(receiver value.Value, method string, args ...value.Value) (value.Value, error) {
	impl := r.Lookup(receiver, method)
	if impl == nil {
		return nil, rberror.NewNoMethodError(receiver.ClassName(), method, len(args))
	}
	return impl(receiver, args...)
}

// IsA reports whether class appears in v's ancestor chain (kind_of?/is_a?).
func (r *Registry) IsA(v value.Value, class string) bool {
	for _, c := range r.AncestorChain(v.ClassName()) {
		if c == class {
			return true
		}
	}
	return false
}

// InstanceOf tests exact class match (instance_of?).
func (r *Registry) InstanceOf(v value.Value, class string) bool {
	return v.ClassName() == class
}

// RespondTo reports whether the registry has an implementation reachable
// from v's MRO. A value's own respond_to? may be stricter than this
// (declaring only its intended public surface); built-in packs that need
// that narrower behavior override it per-method rather than here.
func (r *Registry) RespondTo(v value.Value, method string) bool {
	return r.Lookup(v, method) != nil
}
