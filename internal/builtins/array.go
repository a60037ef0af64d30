package builtins

import (
	"rubycore/internal/rberror"
	"rubycore/internal/registry"
	"rubycore/internal/value"
)

func installArray(reg *registry.Registry) {
	reg.Register("Array", "[]", func(recv value.Value, args ...value.Value) (value.Value, error) {
		idx, ok := args[0].(value.Integer)
		if !ok {
			return nil, rberror.NewTypeError("no implicit conversion of %s into Integer", args[0].ClassName())
		}
		v, ok := recv.(value.Array).Index(int(idx.Big().Int64()))
		if !ok {
			return value.NIL, nil
		}
		return v, nil
	})

	reg.Register("Array", "push", func(recv value.Value, args ...value.Value) (value.Value, error) {
		a := recv.(value.Array)
		for _, v := range args {
			a.Push(v)
		}
		return a, nil
	})
	reg.Register("Array", "<<", func(recv value.Value, args ...value.Value) (value.Value, error) {
		a := recv.(value.Array)
		a.Push(args[0])
		return a, nil
	})

	reg.Register("Array", "length", arrLen)
	reg.Register("Array", "size", arrLen)

	reg.Register("Array", "empty?", func(recv value.Value, _ ...value.Value) (value.Value, error) {
		return value.BoolOf(recv.(value.Array).Len() == 0), nil
	})

	reg.Register("Array", "include?", func(recv value.Value, args ...value.Value) (value.Value, error) {
		return value.BoolOf(recv.(value.Array).Includes(args[0])), nil
	})

	reg.Register("Array", "first", func(recv value.Value, _ ...value.Value) (value.Value, error) {
		v, ok := recv.(value.Array).Index(0)
		if !ok {
			return value.NIL, nil
		}
		return v, nil
	})
	reg.Register("Array", "last", func(recv value.Value, _ ...value.Value) (value.Value, error) {
		v, ok := recv.(value.Array).Index(-1)
		if !ok {
			return value.NIL, nil
		}
		return v, nil
	})

	reg.Register("Array", "reverse", func(recv value.Value, _ ...value.Value) (value.Value, error) {
		a := recv.(value.Array)
		n := a.Len()
		out := make([]value.Value, n)
		for i := 0; i < n; i++ {
			v, _ := a.Index(n - 1 - i)
			out[i] = v
		}
		return value.NewArray(out), nil
	})

	reg.Register("Array", "+", func(recv value.Value, args ...value.Value) (value.Value, error) {
		a := recv.(value.Array)
		b, ok := args[0].(value.Array)
		if !ok {
			return nil, rberror.NewTypeError("no implicit conversion of %s into Array", args[0].ClassName())
		}
		out := append([]value.Value{}, *a.Elements...)
		out = append(out, *b.Elements...)
		return value.NewArray(out), nil
	})

	reg.Register("Array", "join", func(recv value.Value, args ...value.Value) (value.Value, error) {
		sep := ""
		if len(args) > 0 {
			s, ok := args[0].(value.String)
			if !ok {
				return nil, rberror.NewTypeError("no implicit conversion of %s into String", args[0].ClassName())
			}
			sep = s.Get()
		}
		a := recv.(value.Array)
		out := ""
		for i, e := range *a.Elements {
			if i > 0 {
				out += sep
			}
			out += e.ToS()
		}
		return value.NewString(out), nil
	})
}

func arrLen(recv value.Value, _ ...value.Value) (value.Value, error) {
	return value.IntFromInt64(int64(recv.(value.Array).Len())), nil
}
