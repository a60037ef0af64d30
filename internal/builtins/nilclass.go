package builtins

import (
	"rubycore/internal/registry"
	"rubycore/internal/value"
)

func installNilClass(reg *registry.Registry) {
	reg.Register("NilClass", "to_a", func(_ value.Value, _ ...value.Value) (value.Value, error) {
		return value.NewArray(nil), nil
	})
	reg.Register("NilClass", "to_s", func(_ value.Value, _ ...value.Value) (value.Value, error) {
		return value.NewString(""), nil
	})
	reg.Register("NilClass", "to_i", func(_ value.Value, _ ...value.Value) (value.Value, error) {
		return value.IntFromInt64(0), nil
	})
}

func installBoolean(reg *registry.Registry) {
	for _, cls := range []string{"TrueClass", "FalseClass"} {
		reg.Register(cls, "&", boolOp(func(a, b bool) bool { return a && b }))
		reg.Register(cls, "|", boolOp(func(a, b bool) bool { return a || b }))
		reg.Register(cls, "^", boolOp(func(a, b bool) bool { return a != b }))
	}
}

func boolOp(f func(a, b bool) bool) registry.MethodImpl {
	return func(recv value.Value, args ...value.Value) (value.Value, error) {
		a := bool(recv.(value.Bool))
		b := value.Truthy(args[0])
		return value.BoolOf(f(a, b)), nil
	}
}
