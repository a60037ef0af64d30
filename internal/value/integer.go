package value

import (
	"math/big"

	"github.com/remyoudompheng/bigfft"
)

// Integer is Ruby's arbitrary-precision Integer. It wraps math/big.Int
// rather than a machine int64 so values overflow the way Ruby's Bignum
// promotion does, silently and without wraparound.
type Integer struct {
	v *big.Int
}

// NewInteger wraps a copy of a big.Int, so later changes to the caller's
// big.Int do not reach the Integer — Integer values are immutable.
func NewInteger(v *big.Int) Integer { return Integer{v: new(big.Int).Set(v)} }

// IntFromInt64 builds an Integer from a machine integer.
func IntFromInt64(n int64) Integer { return Integer{v: big.NewInt(n)} }

// Big exposes the underlying big.Int for built-in method packs that need it.
func (i Integer) Big() *big.Int { return i.v }

func (Integer) ClassName() string { return "Integer" }
func (i Integer) ToS() string     { return i.v.String() }
func (i Integer) Inspect() string { return i.v.String() }
func (i Integer) RubyEqual(o Value) bool {
	switch ov := o.(type) {
	case Integer:
		return i.v.Cmp(ov.v) == 0
	case Float:
		f := new(big.Float).SetInt(i.v)
		return f.Cmp(big.NewFloat(float64(ov))) == 0
	case Rational:
		return ov.Denominator().Cmp(big.NewInt(1)) == 0 && ov.Numerator().Cmp(i.v) == 0
	}
	return false
}

func (i Integer) Compare(o Value) (int, bool) {
	switch ov := o.(type) {
	case Integer:
		return i.v.Cmp(ov.v), true
	case Float:
		f := new(big.Float).SetInt(i.v)
		return f.Cmp(big.NewFloat(float64(ov))), true
	case Rational:
		lhs := new(big.Int).Mul(i.v, ov.Denominator())
		rhs := ov.Numerator()
		return lhs.Cmp(rhs), true
	}
	return 0, false
}

// bigMulThreshold is the operand bit-length above which multiplication
// routes through bigfft's FFT-based multiply instead of math/big's default
// algorithm.
const bigMulThreshold = 1 << 12 // bits

// MulInt multiplies two Integers, using bigfft.Mul for operands large enough
// that FFT multiplication outperforms math/big's grade-school/Karatsuba mix.
func MulInt(a, b Integer) Integer {
	if a.v.BitLen() > bigMulThreshold && b.v.BitLen() > bigMulThreshold {
		return Integer{v: bigfft.Mul(a.v, b.v)}
	}
	return Integer{v: new(big.Int).Mul(a.v, b.v)}
}

// AddInt, SubInt: small helpers so built-in packs don't reach into Big()
// for the common cases.
func AddInt(a, b Integer) Integer { return Integer{v: new(big.Int).Add(a.v, b.v)} }
func SubInt(a, b Integer) Integer { return Integer{v: new(big.Int).Sub(a.v, b.v)} }
func NegInt(a Integer) Integer    { return Integer{v: new(big.Int).Neg(a.v)} }

// DivModFloor implements Ruby's Integer division: floor toward negative
// infinity for negative operands, unlike Go's math/big truncating Quo/Rem
// or Euclidean DivMod.
func DivModFloor(a, b Integer) (q, r Integer) {
	bq, br := new(big.Int), new(big.Int)
	bq.DivMod(a.v, b.v, br) // Euclidean: 0 <= br < |b|
	if b.v.Sign() < 0 && br.Sign() != 0 {
		bq.Sub(bq, big.NewInt(1))
		br.Add(br, b.v)
	}
	return Integer{v: bq}, Integer{v: br}
}

func (i Integer) IsZero() bool { return i.v.Sign() == 0 }
func (i Integer) Sign() int    { return i.v.Sign() }
