package value

import (
	"math/big"
	"strconv"
)

// Float is an IEEE-754 double.
type Float float64

func (Float) ClassName() string { return "Float" }
func (f Float) ToS() string     { return strconv.FormatFloat(float64(f), 'g', -1, 64) }
func (f Float) Inspect() string { return f.ToS() }

func (f Float) RubyEqual(o Value) bool {
	switch ov := o.(type) {
	case Float:
		return f == ov
	case Integer:
		return ov.RubyEqual(f)
	case Rational:
		return ov.RubyEqual(f)
	}
	return false
}

func (f Float) Compare(o Value) (int, bool) {
	switch ov := o.(type) {
	case Float:
		switch {
		case f < ov:
			return -1, true
		case f > ov:
			return 1, true
		default:
			return 0, true
		}
	case Integer:
		c, ok := ov.Compare(f)
		if !ok {
			return 0, false
		}
		return -c, true
	case Rational:
		lhs := big.NewFloat(float64(f))
		rhs := ov.ToFloatBig()
		return lhs.Cmp(rhs), true
	}
	return 0, false
}
