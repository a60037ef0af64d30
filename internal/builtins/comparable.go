package builtins

import (
	"rubycore/internal/rberror"
	"rubycore/internal/registry"
	"rubycore/internal/value"
)

// installComparable registers the Comparable module's relational operators:
// <, >, <=, >=, between?, all derived from a class's own <=>, the way
// Ruby's real Comparable module is implemented. clamp is not registered.
func installComparable(reg *registry.Registry) {
	reg.Register("Comparable", "<", comparableOp(func(c int) bool { return c < 0 }))
	reg.Register("Comparable", ">", comparableOp(func(c int) bool { return c > 0 }))
	reg.Register("Comparable", "<=", comparableOp(func(c int) bool { return c <= 0 }))
	reg.Register("Comparable", ">=", comparableOp(func(c int) bool { return c >= 0 }))

	reg.Register("Comparable", "between?", func(recv value.Value, args ...value.Value) (value.Value, error) {
		if len(args) != 2 {
			return nil, rberror.NewArgumentError("wrong number of arguments (given %d, expected 2)", len(args))
		}
		cmp, ok := recv.(value.Comparable)
		if !ok {
			return nil, rberror.NewTypeError("%s is not comparable", recv.ClassName())
		}
		lo, ok := cmp.Compare(args[0])
		if !ok {
			return nil, rberror.NewArgumentError("comparison of %s with %s failed", recv.ClassName(), args[0].ClassName())
		}
		hi, ok := cmp.Compare(args[1])
		if !ok {
			return nil, rberror.NewArgumentError("comparison of %s with %s failed", recv.ClassName(), args[1].ClassName())
		}
		return value.BoolOf(lo >= 0 && hi <= 0), nil
	})
}

func comparableOp(accept func(c int) bool) registry.MethodImpl {
	return func(recv value.Value, args ...value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, rberror.NewArgumentError("wrong number of arguments (given %d, expected 1)", len(args))
		}
		cmp, ok := recv.(value.Comparable)
		if !ok {
			return nil, rberror.NewTypeError("%s is not comparable", recv.ClassName())
		}
		c, ok := cmp.Compare(args[0])
		if !ok {
			return nil, rberror.NewArgumentError("comparison of %s with %s failed", recv.ClassName(), args[0].ClassName())
		}
		return value.BoolOf(accept(c)), nil
	}
}
