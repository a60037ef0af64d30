package builtins

import (
	"rubycore/internal/registry"
	"rubycore/internal/value"
)

func installHash(reg *registry.Registry) {
	reg.Register("Hash", "[]", func(recv value.Value, args ...value.Value) (value.Value, error) {
		v, ok, err := recv.(value.Hash).Get(args[0])
		if err != nil {
			return nil, err
		}
		if !ok {
			return value.NIL, nil
		}
		return v, nil
	})
	reg.Register("Hash", "[]=", func(recv value.Value, args ...value.Value) (value.Value, error) {
		if err := recv.(value.Hash).Set(args[0], args[1]); err != nil {
			return nil, err
		}
		return args[1], nil
	})
	reg.Register("Hash", "length", func(recv value.Value, _ ...value.Value) (value.Value, error) {
		return value.IntFromInt64(int64(recv.(value.Hash).Len())), nil
	})
	reg.Register("Hash", "size", func(recv value.Value, _ ...value.Value) (value.Value, error) {
		return value.IntFromInt64(int64(recv.(value.Hash).Len())), nil
	})
	reg.Register("Hash", "empty?", func(recv value.Value, _ ...value.Value) (value.Value, error) {
		return value.BoolOf(recv.(value.Hash).Len() == 0), nil
	})
	reg.Register("Hash", "key?", func(recv value.Value, args ...value.Value) (value.Value, error) {
		_, ok, err := recv.(value.Hash).Get(args[0])
		if err != nil {
			return nil, err
		}
		return value.BoolOf(ok), nil
	})
	reg.Register("Hash", "keys", func(recv value.Value, _ ...value.Value) (value.Value, error) {
		return value.NewArray(recv.(value.Hash).Keys()), nil
	})
	reg.Register("Hash", "values", func(recv value.Value, _ ...value.Value) (value.Value, error) {
		return value.NewArray(recv.(value.Hash).Values()), nil
	})
}
