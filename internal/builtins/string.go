package builtins

import (
	"strings"

	"rubycore/internal/rberror"
	"rubycore/internal/registry"
	"rubycore/internal/value"
)

func installString(reg *registry.Registry) {
	reg.Register("String", "+", func(recv value.Value, args ...value.Value) (value.Value, error) {
		b, ok := args[0].(value.String)
		if !ok {
			return nil, rberror.NewTypeError("no implicit conversion of %s into String", args[0].ClassName())
		}
		return value.NewString(recv.(value.String).Get() + b.Get()), nil
	})

	reg.Register("String", "<<", func(recv value.Value, args ...value.Value) (value.Value, error) {
		s := recv.(value.String)
		b, ok := args[0].(value.String)
		if !ok {
			return nil, rberror.NewTypeError("no implicit conversion of %s into String", args[0].ClassName())
		}
		s.Append(b.Get())
		return s, nil
	})

	reg.Register("String", "*", func(recv value.Value, args ...value.Value) (value.Value, error) {
		n, ok := args[0].(value.Integer)
		if !ok {
			return nil, rberror.NewTypeError("no implicit conversion of %s into Integer", args[0].ClassName())
		}
		return value.NewString(strings.Repeat(recv.(value.String).Get(), int(n.Big().Int64()))), nil
	})

	reg.Register("String", "length", strLen)
	reg.Register("String", "size", strLen)
	reg.Register("String", "<=>", compareOp())

	reg.Register("String", "[]", func(recv value.Value, args ...value.Value) (value.Value, error) {
		s := recv.(value.String)
		idx, ok := args[0].(value.Integer)
		if !ok {
			return nil, rberror.NewTypeError("no implicit conversion of %s into Integer", args[0].ClassName())
		}
		r, ok := s.Index(int(idx.Big().Int64()))
		if !ok {
			return value.NIL, nil
		}
		return value.NewString(string(r)), nil
	})

	reg.Register("String", "upcase", func(recv value.Value, _ ...value.Value) (value.Value, error) {
		return value.NewString(strings.ToUpper(recv.(value.String).Get())), nil
	})
	reg.Register("String", "downcase", func(recv value.Value, _ ...value.Value) (value.Value, error) {
		return value.NewString(strings.ToLower(recv.(value.String).Get())), nil
	})
	reg.Register("String", "reverse", func(recv value.Value, _ ...value.Value) (value.Value, error) {
		r := []rune(recv.(value.String).Get())
		for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
			r[i], r[j] = r[j], r[i]
		}
		return value.NewString(string(r)), nil
	})
	reg.Register("String", "empty?", func(recv value.Value, _ ...value.Value) (value.Value, error) {
		return value.BoolOf(recv.(value.String).Len() == 0), nil
	})
	reg.Register("String", "to_s", func(recv value.Value, _ ...value.Value) (value.Value, error) {
		return recv, nil
	})
	reg.Register("String", "to_sym", func(recv value.Value, _ ...value.Value) (value.Value, error) {
		return value.Symbol(recv.(value.String).Get()), nil
	})
	reg.Register("String", "include?", func(recv value.Value, args ...value.Value) (value.Value, error) {
		sub, ok := args[0].(value.String)
		if !ok {
			return nil, rberror.NewTypeError("no implicit conversion of %s into String", args[0].ClassName())
		}
		return value.BoolOf(strings.Contains(recv.(value.String).Get(), sub.Get())), nil
	})
	reg.Register("String", "split", func(recv value.Value, args ...value.Value) (value.Value, error) {
		sep := " "
		if len(args) > 0 {
			s, ok := args[0].(value.String)
			if !ok {
				return nil, rberror.NewTypeError("no implicit conversion of %s into String", args[0].ClassName())
			}
			sep = s.Get()
		}
		parts := strings.Split(recv.(value.String).Get(), sep)
		out := make([]value.Value, len(parts))
		for i, p := range parts {
			out[i] = value.NewString(p)
		}
		return value.NewArray(out), nil
	})
}

func strLen(recv value.Value, _ ...value.Value) (value.Value, error) {
	return value.IntFromInt64(int64(recv.(value.String).Len())), nil
}

func installSymbol(reg *registry.Registry) {
	reg.Register("Symbol", "to_s", func(recv value.Value, _ ...value.Value) (value.Value, error) {
		return value.NewString(string(recv.(value.Symbol))), nil
	})
	reg.Register("Symbol", "to_sym", func(recv value.Value, _ ...value.Value) (value.Value, error) {
		return recv, nil
	})
	reg.Register("Symbol", "length", func(recv value.Value, _ ...value.Value) (value.Value, error) {
		return value.IntFromInt64(int64(len([]rune(string(recv.(value.Symbol)))))), nil
	})
}
