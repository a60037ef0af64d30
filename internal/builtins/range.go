package builtins

import (
	"rubycore/internal/registry"
	"rubycore/internal/value"
)

func installRange(reg *registry.Registry) {
	reg.Register("Range", "size", wrapIntResult(func(r value.Range) (value.Integer, error) { return r.Size() }))
	reg.Register("Range", "count", wrapIntResult(func(r value.Range) (value.Integer, error) { return r.Size() }))
	reg.Register("Range", "to_a", func(recv value.Value, _ ...value.Value) (value.Value, error) {
		a, err := recv.(value.Range).ToA()
		if err != nil {
			return nil, err
		}
		return a, nil
	})
	reg.Register("Range", "include?", func(recv value.Value, args ...value.Value) (value.Value, error) {
		ok, err := recv.(value.Range).Include(args[0])
		if err != nil {
			return nil, err
		}
		return value.BoolOf(ok), nil
	})
	reg.Register("Range", "member?", func(recv value.Value, args ...value.Value) (value.Value, error) {
		ok, err := recv.(value.Range).Include(args[0])
		if err != nil {
			return nil, err
		}
		return value.BoolOf(ok), nil
	})
	reg.Register("Range", "first", func(recv value.Value, _ ...value.Value) (value.Value, error) {
		return recv.(value.Range).First(), nil
	})
	reg.Register("Range", "last", func(recv value.Value, _ ...value.Value) (value.Value, error) {
		return recv.(value.Range).Last()
	})
	reg.Register("Range", "min", func(recv value.Value, _ ...value.Value) (value.Value, error) {
		return recv.(value.Range).Min()
	})
	reg.Register("Range", "max", func(recv value.Value, _ ...value.Value) (value.Value, error) {
		return recv.(value.Range).Max()
	})
	reg.Register("Range", "exclude_end?", func(recv value.Value, _ ...value.Value) (value.Value, error) {
		return value.BoolOf(!recv.(value.Range).Inclusive), nil
	})
}

func wrapIntResult(f func(value.Range) (value.Integer, error)) registry.MethodImpl {
	return func(recv value.Value, _ ...value.Value) (value.Value, error) {
		n, err := f(recv.(value.Range))
		if err != nil {
			return nil, err
		}
		return n, nil
	}
}
