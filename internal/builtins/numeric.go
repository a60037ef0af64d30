package builtins

import (
	"math"
	"math/big"

	"rubycore/internal/rberror"
	"rubycore/internal/registry"
	"rubycore/internal/value"
)

// installInteger registers Integer's operators and coercions: Integer+Float
// promotes to Float; Integer/Integer is floor division; Rational() is used
// explicitly when an exact fraction is wanted.
func installInteger(reg *registry.Registry) {
	reg.Register("Integer", "+", intArith(value.AddInt, func(a float64, b float64) float64 { return a + b }))
	reg.Register("Integer", "-", intArith(value.SubInt, func(a float64, b float64) float64 { return a - b }))
	reg.Register("Integer", "*", intArith(value.MulInt, func(a float64, b float64) float64 { return a * b }))

	reg.Register("Integer", "/", func(recv value.Value, args ...value.Value) (value.Value, error) {
		a := recv.(value.Integer)
		switch b := args[0].(type) {
		case value.Integer:
			if b.IsZero() {
				return nil, rberror.NewZeroDivisionError("divided by 0")
			}
			q, _ := value.DivModFloor(a, b)
			return q, nil
		case value.Float:
			return value.Float(toFloat(a) / float64(b)), nil
		case value.Rational:
			if b.Numerator().Sign() == 0 {
				return nil, rberror.NewZeroDivisionError("divided by 0")
			}
			return value.QuoRational(value.NewRational(a.Big(), big.NewInt(1)), b), nil
		}
		return nil, rberror.NewTypeError("%s can't be coerced into Integer", args[0].ClassName())
	})

	reg.Register("Integer", "%", func(recv value.Value, args ...value.Value) (value.Value, error) {
		a := recv.(value.Integer)
		b, ok := args[0].(value.Integer)
		if !ok {
			return nil, rberror.NewTypeError("%s can't be coerced into Integer", args[0].ClassName())
		}
		if b.IsZero() {
			return nil, rberror.NewZeroDivisionError("divided by 0")
		}
		_, r := value.DivModFloor(a, b)
		return r, nil
	})

	reg.Register("Integer", "divmod", func(recv value.Value, args ...value.Value) (value.Value, error) {
		a := recv.(value.Integer)
		b, ok := args[0].(value.Integer)
		if !ok {
			return nil, rberror.NewTypeError("%s can't be coerced into Integer", args[0].ClassName())
		}
		if b.IsZero() {
			return nil, rberror.NewZeroDivisionError("divided by 0")
		}
		q, r := value.DivModFloor(a, b)
		return value.NewArray([]value.Value{q, r}), nil
	})

	reg.Register("Integer", "**", func(recv value.Value, args ...value.Value) (value.Value, error) {
		a := recv.(value.Integer)
		b, ok := args[0].(value.Integer)
		if !ok {
			return nil, rberror.NewTypeError("%s can't be coerced into Integer", args[0].ClassName())
		}
		if b.Sign() >= 0 {
			return value.NewInteger(new(big.Int).Exp(a.Big(), b.Big(), nil)), nil
		}
		if a.IsZero() {
			return nil, rberror.NewZeroDivisionError("divided by 0")
		}
		return value.NewRational(big.NewInt(1), new(big.Int).Exp(a.Big(), new(big.Int).Neg(b.Big()), nil)), nil
	})

	reg.Register("Integer", "<=>", compareOp())
	reg.Register("Integer", "-@", func(recv value.Value, _ ...value.Value) (value.Value, error) {
		return value.NegInt(recv.(value.Integer)), nil
	})
	reg.Register("Integer", "+@", func(recv value.Value, _ ...value.Value) (value.Value, error) {
		return recv, nil
	})
	reg.Register("Integer", "abs", func(recv value.Value, _ ...value.Value) (value.Value, error) {
		a := recv.(value.Integer)
		if a.Sign() < 0 {
			return value.NegInt(a), nil
		}
		return a, nil
	})
	reg.Register("Integer", "zero?", func(recv value.Value, _ ...value.Value) (value.Value, error) {
		return value.BoolOf(recv.(value.Integer).IsZero()), nil
	})
	reg.Register("Integer", "to_i", func(recv value.Value, _ ...value.Value) (value.Value, error) {
		return recv, nil
	})
	reg.Register("Integer", "to_f", func(recv value.Value, _ ...value.Value) (value.Value, error) {
		return value.Float(toFloat(recv.(value.Integer))), nil
	})
	reg.Register("Integer", "to_r", func(recv value.Value, _ ...value.Value) (value.Value, error) {
		return value.NewRational(recv.(value.Integer).Big(), big.NewInt(1)), nil
	})
}

func toFloat(i value.Integer) float64 {
	f := new(big.Float).SetInt(i.Big())
	out, _ := f.Float64()
	return out
}

func intArith(intOp func(a, b value.Integer) value.Integer, floatOp func(a, b float64) float64) registry.MethodImpl {
	return func(recv value.Value, args ...value.Value) (value.Value, error) {
		a := recv.(value.Integer)
		switch b := args[0].(type) {
		case value.Integer:
			return intOp(a, b), nil
		case value.Float:
			return value.Float(floatOp(toFloat(a), float64(b))), nil
		}
		return nil, rberror.NewTypeError("%s can't be coerced into Integer", args[0].ClassName())
	}
}

func compareOp() registry.MethodImpl {
	return func(recv value.Value, args ...value.Value) (value.Value, error) {
		cmp, ok := recv.(value.Comparable)
		if !ok {
			return value.NIL, nil
		}
		c, ok := cmp.Compare(args[0])
		if !ok {
			return value.NIL, nil
		}
		return value.IntFromInt64(int64(c)), nil
	}
}

// installFloat registers Float's operators; Float+Integer also promotes to
// Float, matching Integer's side of the same coercion rule.
func installFloat(reg *registry.Registry) {
	reg.Register("Float", "+", floatArith(func(a, b float64) float64 { return a + b }))
	reg.Register("Float", "-", floatArith(func(a, b float64) float64 { return a - b }))
	reg.Register("Float", "*", floatArith(func(a, b float64) float64 { return a * b }))
	reg.Register("Float", "/", func(recv value.Value, args ...value.Value) (value.Value, error) {
		a := float64(recv.(value.Float))
		b, err := coerceFloat(args[0])
		if err != nil {
			return nil, err
		}
		return value.Float(a / b), nil
	})
	reg.Register("Float", "<=>", compareOp())
	reg.Register("Float", "-@", func(recv value.Value, _ ...value.Value) (value.Value, error) {
		return -recv.(value.Float), nil
	})
	reg.Register("Float", "abs", func(recv value.Value, _ ...value.Value) (value.Value, error) {
		return value.Float(math.Abs(float64(recv.(value.Float)))), nil
	})
	reg.Register("Float", "zero?", func(recv value.Value, _ ...value.Value) (value.Value, error) {
		return value.BoolOf(float64(recv.(value.Float)) == 0), nil
	})
	reg.Register("Float", "to_i", func(recv value.Value, _ ...value.Value) (value.Value, error) {
		return value.NewInteger(big.NewInt(int64(math.Trunc(float64(recv.(value.Float)))))), nil
	})
	reg.Register("Float", "to_f", func(recv value.Value, _ ...value.Value) (value.Value, error) {
		return recv, nil
	})
}

func coerceFloat(v value.Value) (float64, error) {
	switch x := v.(type) {
	case value.Float:
		return float64(x), nil
	case value.Integer:
		return toFloat(x), nil
	default:
		return 0, rberror.NewTypeError("%s can't be coerced into Float", v.ClassName())
	}
}

func floatArith(op func(a, b float64) float64) registry.MethodImpl {
	return func(recv value.Value, args ...value.Value) (value.Value, error) {
		a := float64(recv.(value.Float))
		b, err := coerceFloat(args[0])
		if err != nil {
			return nil, err
		}
		return value.Float(op(a, b)), nil
	}
}
