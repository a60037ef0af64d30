package value

import (
	"fmt"
	"sync/atomic"
)

// Instance is a user-defined Object: a named class ref plus an
// instance-attribute mapping.
type Instance struct {
	Class *string // pointer so renaming a class (not supported here) would be visible to all instances; in practice immutable after creation.
	IVars *map[string]Value
	id    int64
}

var instanceCounter int64

// NewInstance creates an instance of the named class with no set ivars.
func NewInstance(className string) Instance {
	iv := make(map[string]Value)
	return Instance{
		Class: &className,
		IVars: &iv,
		id:    atomic.AddInt64(&instanceCounter, 1),
	}
}

func (i Instance) ClassName() string { return *i.Class }
func (i Instance) ToS() string       { return i.Inspect() }
func (i Instance) Inspect() string   { return fmt.Sprintf("#<%s>", *i.Class) }

func (i Instance) RubyEqual(o Value) bool {
	oi, ok := o.(Instance)
	return ok && oi.id == i.id
}

// ObjectID returns a stable identity integer. Instances get a
// monotonically increasing id minted at creation; immediate values (nil,
// true, false, Integer, Symbol) get one derived from their content since
// Ruby treats those as interned/immediate.
func (i Instance) ObjectID() int64 { return i.id }

func (i Instance) GetIVar(name string) Value {
	if v, ok := (*i.IVars)[name]; ok {
		return v
	}
	return NIL
}

func (i Instance) SetIVar(name string, v Value) {
	(*i.IVars)[name] = v
}

// ObjectID computes a stable identity integer for any value. Instance,
// Array, Hash, and String get their Go pointer identity; immediate values
// get a content-derived id so equal literals share an id the way Ruby's
// immediates do.
func ObjectID(v Value) int64 {
	switch x := v.(type) {
	case Instance:
		return x.ObjectID()
	case Nil:
		return 8
	case Bool:
		if x {
			return 20
		}
		return 0
	case Integer:
		if x.Big().IsInt64() {
			return x.Big().Int64()*2 + 1
		}
		return int64(fnvString(x.Big().String()))
	case Symbol:
		return int64(fnvString(string(x)))
	case String:
		return int64(fnvString(fmt.Sprintf("%p", x.Runes)))
	case Array:
		return int64(fnvString(fmt.Sprintf("%p", x.Elements)))
	case Hash:
		return int64(fnvString(fmt.Sprintf("%p", x.entries)))
	default:
		return 0
	}
}
