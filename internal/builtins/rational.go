package builtins

import (
	"math/big"

	"rubycore/internal/rberror"
	"rubycore/internal/registry"
	"rubycore/internal/value"
)

// installRational registers Rational's arithmetic (cross-multiply then
// re-simplify) plus Kernel's Rational(a,b) constructor.
func installRational(reg *registry.Registry) {
	reg.Register("Kernel", "Rational", func(_ value.Value, args ...value.Value) (value.Value, error) {
		if len(args) != 2 {
			return nil, rberror.NewArgumentError("wrong number of arguments (given %d, expected 2)", len(args))
		}
		n, ok := args[0].(value.Integer)
		if !ok {
			return nil, rberror.NewTypeError("Rational numerator must be Integer, got %s", args[0].ClassName())
		}
		d, ok := args[1].(value.Integer)
		if !ok {
			return nil, rberror.NewTypeError("Rational denominator must be Integer, got %s", args[1].ClassName())
		}
		if d.IsZero() {
			return nil, rberror.NewZeroDivisionError("divided by 0")
		}
		return value.NewRational(n.Big(), d.Big()), nil
	})

	reg.Register("Rational", "+", ratArith(value.AddRational))
	reg.Register("Rational", "-", ratArith(value.SubRational))
	reg.Register("Rational", "*", ratArith(value.MulRational))
	reg.Register("Rational", "/", func(recv value.Value, args ...value.Value) (value.Value, error) {
		a := recv.(value.Rational)
		b, ok := args[0].(value.Rational)
		if !ok {
			return nil, rberror.NewTypeError("%s can't be coerced into Rational", args[0].ClassName())
		}
		if b.Numerator().Sign() == 0 {
			return nil, rberror.NewZeroDivisionError("divided by 0")
		}
		return value.QuoRational(a, b), nil
	})
	reg.Register("Rational", "<=>", compareOp())
	reg.Register("Rational", "-@", func(recv value.Value, _ ...value.Value) (value.Value, error) {
		r := recv.(value.Rational)
		return value.NewRational(new(big.Int).Neg(r.Numerator()), r.Denominator()), nil
	})
	reg.Register("Rational", "numerator", func(recv value.Value, _ ...value.Value) (value.Value, error) {
		return value.NewInteger(recv.(value.Rational).Numerator()), nil
	})
	reg.Register("Rational", "denominator", func(recv value.Value, _ ...value.Value) (value.Value, error) {
		return value.NewInteger(recv.(value.Rational).Denominator()), nil
	})
	reg.Register("Rational", "to_r", func(recv value.Value, _ ...value.Value) (value.Value, error) {
		return recv.(value.Rational).ToR(), nil
	})
	reg.Register("Rational", "to_f", func(recv value.Value, _ ...value.Value) (value.Value, error) {
		f, _ := recv.(value.Rational).ToFloatBig().Float64()
		return value.Float(f), nil
	})
}

func ratArith(op func(a, b value.Rational) value.Rational) registry.MethodImpl {
	return func(recv value.Value, args ...value.Value) (value.Value, error) {
		a := recv.(value.Rational)
		b, ok := args[0].(value.Rational)
		if !ok {
			return nil, rberror.NewTypeError("%s can't be coerced into Rational", args[0].ClassName())
		}
		return op(a, b), nil
	}
}
