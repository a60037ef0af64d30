// Package ic implements the per-call-site inline cache state machine:
// {Empty, Monomorphic, Polymorphic (fewer than 4 classes), Megamorphic},
// monotone transitions,
// hit/miss counters, and invalidation.
package ic

import (
	"fmt"
	"sync"

	"rubycore/internal/registry"
)

// MaxPolymorphic is the Megamorphic threshold: the MaxPolymorphic-th
// distinct class seen at a call site turns its cache Megamorphic, so a
// Polymorphic cache holds at most MaxPolymorphic-1 classes.
const MaxPolymorphic = 4

// StateType names the four states a call-site cache passes through as it
// sees more receiver classes.
type StateType int

const (
	Empty StateType = iota
	Monomorphic
	Polymorphic
	Megamorphic
)

func (s StateType) String() string {
	switch s {
	case Empty:
		return "Empty"
	case Monomorphic:
		return "Monomorphic"
	case Polymorphic:
		return "Polymorphic"
	case Megamorphic:
		return "Megamorphic"
	default:
		return "Unknown"
	}
}

type classImpl struct {
	class string
	impl  registry.MethodImpl
}

// TransitionFunc is invoked whenever a Cache's state type changes.
type TransitionFunc func(siteID, method string, from, to StateType)

// Cache is one call-site's inline cache.
type Cache struct {
	mu sync.Mutex

	SiteID string
	Method string

	state StateType
	mono  classImpl
	poly  []classImpl // len in [0,MaxPolymorphic), no duplicate class names

	hits, misses uint64

	// epoch is the method-name invalidation epoch snapshot at the time the
	// cache was last filled. A mismatch against the registry's live epoch
	// means some Register() call replaced an impl this cache might be
	// holding; the cache lazily re-validates by dropping its cached data
	// back to Empty on the next lookup.
	epoch uint64

	onTransition TransitionFunc
}

// New creates an Empty cache for one call site and method name.
func New(siteID, method string, onTransition TransitionFunc) *Cache {
	return &Cache{SiteID: siteID, Method: method, onTransition: onTransition}
}

// Lookup answers a dispatch attempt for class. currentEpoch is the
// registry's live epoch for this cache's method name; a stale cache (epoch
// mismatch) invalidates to Empty before answering.
func (c *Cache) Lookup(class string, currentEpoch uint64) (hit bool, impl registry.MethodImpl) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != Empty && c.epoch != currentEpoch {
		c.invalidateLocked()
	}

	switch c.state {
	case Empty:
		return false, nil
	case Monomorphic:
		if c.mono.class == class {
			c.hits++
			return true, c.mono.impl
		}
		return false, nil
	case Polymorphic:
		for _, e := range c.poly {
			if e.class == class {
				c.hits++
				return true, e.impl
			}
		}
		return false, nil
	case Megamorphic:
		return false, nil
	}
	return false, nil
}

// invalidateLocked drops cached class/impl data back to Empty without
// resetting hit/miss counters, which count dispatch attempts that already
// happened and must survive invalidation.
func (c *Cache) invalidateLocked() {
	old := c.state
	c.state = Empty
	c.mono = classImpl{}
	c.poly = nil
	if old != Empty {
		c.transition(old, Empty)
	}
}

// Update fills in a cache entry after a miss, applying the monotone
// Empty→Monomorphic→Polymorphic→Megamorphic transition rules. epoch is
// stamped as the cache's new fill-time epoch.
func (c *Cache) Update(class string, impl registry.MethodImpl, epoch uint64) StateType {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.misses++
	old := c.state

	switch c.state {
	case Empty:
		c.state = Monomorphic
		c.mono = classImpl{class: class, impl: impl}
		c.epoch = epoch

	case Monomorphic:
		if c.mono.class == class {
			// redundant; same class re-filling after invalidation reset it.
			c.mono.impl = impl
			c.epoch = epoch
			break
		}
		c.state = Polymorphic
		c.poly = []classImpl{c.mono, {class: class, impl: impl}}
		c.mono = classImpl{}
		c.epoch = epoch

	case Polymorphic:
		found := false
		for _, e := range c.poly {
			if e.class == class {
				found = true
				break
			}
		}
		if found {
			c.epoch = epoch
			break
		}
		if len(c.poly)+1 >= MaxPolymorphic {
			c.state = Megamorphic
			c.poly = nil
		} else {
			c.poly = append(c.poly, classImpl{class: class, impl: impl})
			c.epoch = epoch
		}

	case Megamorphic:
		// no-op: terminal state.
	}

	if c.state != old {
		c.transition(old, c.state)
	}
	return c.state
}

func (c *Cache) transition(from, to StateType) {
	if c.onTransition != nil {
		c.onTransition(c.SiteID, c.Method, from, to)
	}
}

// RecordHit increments the hit counter under the cache's mutex. Lookup
// already counts its own hits; internal/dispatch does not call RecordHit.
func (c *Cache) RecordHit() {
	c.mu.Lock()
	c.hits++
	c.mu.Unlock()
}

// Stats is a point-in-time observability snapshot of a cache's state,
// hit/miss counters, and cached class(es).
type Stats struct {
	Type    StateType
	Hits    uint64
	Misses  uint64
	Classes []string // the cached class name(s), if any
}

func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := Stats{Type: c.state, Hits: c.hits, Misses: c.misses}
	switch c.state {
	case Monomorphic:
		s.Classes = []string{c.mono.class}
	case Polymorphic:
		for _, e := range c.poly {
			s.Classes = append(s.Classes, e.class)
		}
	}
	return s
}

// DebugString renders a one-line human-readable summary of a cache's
// current state, suitable for a debug dump of every known call site.
func (c *Cache) DebugString() string {
	s := c.Stats()
	cached := "none"
	if len(s.Classes) > 0 {
		cached = fmt.Sprintf("%v", s.Classes)
	}
	return fmt.Sprintf("IC [%s] method=%s state=%s hits=%d/%d (%.1f%%) | cached: %s",
		c.SiteID, c.Method, s.Type, s.Hits, s.Hits+s.Misses, s.HitRate()*100, cached)
}
