package value

import "math/big"

// Rational is {numerator, denominator} with denominator > 0 and
// gcd(|numerator|, denominator) = 1, always maintained by the constructor.
type Rational struct {
	num *big.Int
	den *big.Int
}

// NewRational builds a Rational from an integer numerator/denominator,
// simplifying via Euclidean gcd on absolute values and normalizing sign so
// denominator is always positive. It returns no error and does not reject a
// zero den; callers check for zero first and raise ZeroDivisionError
// themselves.
func NewRational(n, d *big.Int) Rational {
	num, den := new(big.Int).Set(n), new(big.Int).Set(d)
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), new(big.Int).Abs(den))
	if g.Sign() != 0 && g.Cmp(big.NewInt(1)) != 0 {
		num.Quo(num, g)
		den.Quo(den, g)
	}
	return Rational{num: num, den: den}
}

func (r Rational) Numerator() *big.Int   { return r.num }
func (r Rational) Denominator() *big.Int { return r.den }

func (Rational) ClassName() string { return "Rational" }
func (r Rational) ToS() string     { return r.num.String() + "/" + r.den.String() }
func (r Rational) Inspect() string { return "(" + r.ToS() + ")" }

// ToR implements Rational#to_r: it returns the receiver unchanged, since a
// Rational is already its own to_r.
func (r Rational) ToR() Rational { return r }

func (r Rational) ToFloatBig() *big.Float {
	num := new(big.Float).SetInt(r.num)
	den := new(big.Float).SetInt(r.den)
	return num.Quo(num, den)
}

func (r Rational) RubyEqual(o Value) bool {
	switch ov := o.(type) {
	case Rational:
		return r.num.Cmp(ov.num) == 0 && r.den.Cmp(ov.den) == 0
	case Integer:
		return r.den.Cmp(big.NewInt(1)) == 0 && r.num.Cmp(ov.Big()) == 0
	case Float:
		return r.ToFloatBig().Cmp(big.NewFloat(float64(ov))) == 0
	}
	return false
}

func (r Rational) Compare(o Value) (int, bool) {
	switch ov := o.(type) {
	case Rational:
		lhs := new(big.Int).Mul(r.num, ov.den)
		rhs := new(big.Int).Mul(ov.num, r.den)
		return lhs.Cmp(rhs), true
	case Integer:
		lhs := r.num
		rhs := new(big.Int).Mul(ov.Big(), r.den)
		return lhs.Cmp(rhs), true
	case Float:
		return r.ToFloatBig().Cmp(big.NewFloat(float64(ov))), true
	}
	return 0, false
}

// AddRational, SubRational, MulRational, QuoRational implement cross-
// multiplication arithmetic, re-simplifying the result through NewRational.
func AddRational(a, b Rational) Rational {
	n := new(big.Int).Add(new(big.Int).Mul(a.num, b.den), new(big.Int).Mul(b.num, a.den))
	d := new(big.Int).Mul(a.den, b.den)
	return NewRational(n, d)
}

func SubRational(a, b Rational) Rational {
	n := new(big.Int).Sub(new(big.Int).Mul(a.num, b.den), new(big.Int).Mul(b.num, a.den))
	d := new(big.Int).Mul(a.den, b.den)
	return NewRational(n, d)
}

func MulRational(a, b Rational) Rational {
	n := new(big.Int).Mul(a.num, b.num)
	d := new(big.Int).Mul(a.den, b.den)
	return NewRational(n, d)
}

// QuoRational divides a by b; the caller must check b.num is non-zero
// first and raise ZeroDivisionError otherwise.
func QuoRational(a, b Rational) Rational {
	n := new(big.Int).Mul(a.num, b.den)
	d := new(big.Int).Mul(a.den, b.num)
	return NewRational(n, d)
}
