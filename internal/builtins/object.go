package builtins

import (
	"rubycore/internal/rberror"
	"rubycore/internal/registry"
	"rubycore/internal/value"
)

// installObject registers the universal Object protocol: class, ancestors,
// respond_to?, to_s, inspect, ==, <=>, nil?, object_id, equal?,
// kind_of?/is_a?, instance_of?. These live on Object (not BasicObject) so
// every built-in and user class inherits them.
func installObject(reg *registry.Registry) {
	reg.Register("Object", "class", func(recv value.Value, _ ...value.Value) (value.Value, error) {
		return value.Symbol(recv.ClassName()), nil
	})

	reg.Register("Object", "ancestors", func(recv value.Value, _ ...value.Value) (value.Value, error) {
		chain := reg.AncestorChain(recv.ClassName())
		out := make([]value.Value, len(chain))
		for i, c := range chain {
			out[i] = value.Symbol(c)
		}
		return value.NewArray(out), nil
	})

	reg.Register("Object", "respond_to?", func(recv value.Value, args ...value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, rberror.NewArgumentError("wrong number of arguments (given %d, expected 1)", len(args))
		}
		name := methodNameArg(args[0])
		return value.BoolOf(reg.RespondTo(recv, name)), nil
	})

	reg.Register("Object", "to_s", func(recv value.Value, _ ...value.Value) (value.Value, error) {
		return value.NewString(recv.ToS()), nil
	})

	reg.Register("Object", "inspect", func(recv value.Value, _ ...value.Value) (value.Value, error) {
		return value.NewString(recv.Inspect()), nil
	})

	reg.Register("Object", "==", func(recv value.Value, args ...value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, rberror.NewArgumentError("wrong number of arguments (given %d, expected 1)", len(args))
		}
		return value.BoolOf(recv.RubyEqual(args[0])), nil
	})

	reg.Register("Object", "<=>", func(recv value.Value, args ...value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, rberror.NewArgumentError("wrong number of arguments (given %d, expected 1)", len(args))
		}
		cmp, ok := recv.(value.Comparable)
		if !ok {
			return value.NIL, nil
		}
		c, ok := cmp.Compare(args[0])
		if !ok {
			return value.NIL, nil
		}
		return value.IntFromInt64(int64(c)), nil
	})

	reg.Register("Object", "nil?", func(recv value.Value, _ ...value.Value) (value.Value, error) {
		return value.BoolOf(value.IsNil(recv)), nil
	})

	reg.Register("Object", "object_id", func(recv value.Value, _ ...value.Value) (value.Value, error) {
		return value.IntFromInt64(value.ObjectID(recv)), nil
	})

	reg.Register("Object", "equal?", func(recv value.Value, args ...value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, rberror.NewArgumentError("wrong number of arguments (given %d, expected 1)", len(args))
		}
		return value.BoolOf(value.ObjectID(recv) == value.ObjectID(args[0])), nil
	})

	reg.Register("Object", "kind_of?", kindOf(reg))
	reg.Register("Object", "is_a?", kindOf(reg))

	reg.Register("Object", "instance_of?", func(recv value.Value, args ...value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, rberror.NewArgumentError("wrong number of arguments (given %d, expected 1)", len(args))
		}
		return value.BoolOf(reg.InstanceOf(recv, methodNameArg(args[0]))), nil
	})

	// freeze/frozen? are no-ops: this value model has no mutation-locking,
	// so freeze returns the receiver unchanged and frozen? always reports
	// false rather than pretending to track state it doesn't enforce.
	reg.Register("Object", "freeze", func(recv value.Value, _ ...value.Value) (value.Value, error) {
		return recv, nil
	})
	reg.Register("Object", "frozen?", func(_ value.Value, _ ...value.Value) (value.Value, error) {
		return value.FALSE, nil
	})
}

func kindOf(reg *registry.Registry) registry.MethodImpl {
	return func(recv value.Value, args ...value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, rberror.NewArgumentError("wrong number of arguments (given %d, expected 1)", len(args))
		}
		return value.BoolOf(reg.IsA(recv, methodNameArg(args[0]))), nil
	}
}

// methodNameArg accepts either a Symbol or String argument (both are
// idiomatic for naming a method/class in these contexts) and returns its
// text.
func methodNameArg(v value.Value) string {
	switch x := v.(type) {
	case value.Symbol:
		return string(x)
	case value.String:
		return x.Get()
	default:
		return v.ToS()
	}
}
