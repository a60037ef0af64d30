// Package value implements the tagged sum of Ruby built-in values and the
// Object protocols each one answers: class name, to_s/inspect, Ruby
// equality, and <=> comparison. Ancestor-chain walking, respond_to?, and
// the kind_of?/is_a?/instance_of? family live one layer up in
// internal/registry, since those depend on the process-wide, dynamically
// extended class hierarchy rather than anything a single value carries.
package value

import "fmt"

// Value is the common interface every Ruby value answers.
type Value interface {
	// ClassName is the built-in or user-defined class name used as the MRO
	// lookup key.
	ClassName() string
	// ToS is Ruby's to_s.
	ToS() string
	// Inspect is Ruby's inspect.
	Inspect() string
	// RubyEqual is Ruby's ==.
	RubyEqual(other Value) bool
}

// Comparable is implemented by values whose class supports <=>. Compare
// returns (result, true) when the two values are comparable, or (0, false)
// when they are not.
type Comparable interface {
	Compare(other Value) (int, bool)
}

// IsNil reports whether v is Ruby nil. Defined standalone (not a Value
// method) because nil? must also work for types that never see it: for
// every other value nil? returns false.
func IsNil(v Value) bool {
	_, ok := v.(Nil)
	return ok
}

// Truthy implements Ruby truthiness: everything is truthy except nil and
// false.
func Truthy(v Value) bool {
	switch x := v.(type) {
	case Nil:
		return false
	case Bool:
		return bool(x)
	default:
		return true
	}
}

// Nil is Ruby's nil. A zero-size value type so nil-typed Values compare
// equal by Go equality too.
type Nil struct{}

func (Nil) ClassName() string      { return "NilClass" }
func (Nil) ToS() string            { return "" }
func (Nil) Inspect() string        { return "nil" }
func (Nil) RubyEqual(o Value) bool { _, ok := o.(Nil); return ok }

// NIL is the single nil value; every Nil{} is interchangeable but callers
// should prefer this shared instance for object_id stability.
var NIL Value = Nil{}

// Bool is Ruby's true/false. Each carries a distinct class per spec's Data
// Model table (TrueClass/FalseClass), not a shared BooleanClass.
type Bool bool

func (b Bool) ClassName() string {
	if b {
		return "TrueClass"
	}
	return "FalseClass"
}
func (b Bool) ToS() string     { return fmt.Sprintf("%t", bool(b)) }
func (b Bool) Inspect() string { return b.ToS() }
func (b Bool) RubyEqual(o Value) bool {
	ob, ok := o.(Bool)
	return ok && ob == b
}

var (
	TRUE  Value = Bool(true)
	FALSE Value = Bool(false)
)

// BoolOf converts a host bool into the matching singleton.
func BoolOf(b bool) Value {
	if b {
		return TRUE
	}
	return FALSE
}

// Symbol is an interned identifier. Equality and identity both reduce to
// string comparison since Ruby symbols with the same name are always the
// same object.
type Symbol string

func (s Symbol) ClassName() string { return "Symbol" }
func (s Symbol) ToS() string       { return string(s) }
func (s Symbol) Inspect() string   { return ":" + string(s) }
func (s Symbol) RubyEqual(o Value) bool {
	os, ok := o.(Symbol)
	return ok && os == s
}
