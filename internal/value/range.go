package value

import (
	"math/big"

	"rubycore/internal/rberror"
)

// Range is {start, end, inclusive?} with homogeneously comparable endpoints.
type Range struct {
	Start     Value
	End       Value
	Inclusive bool
}

func (Range) ClassName() string { return "Range" }

func (r Range) ToS() string {
	op := "..."
	if r.Inclusive {
		op = ".."
	}
	return r.Start.ToS() + op + r.End.ToS()
}

func (r Range) Inspect() string {
	op := "..."
	if r.Inclusive {
		op = ".."
	}
	return r.Start.Inspect() + op + r.End.Inspect()
}

func (r Range) RubyEqual(o Value) bool {
	or, ok := o.(Range)
	return ok && r.Inclusive == or.Inclusive && r.Start.RubyEqual(or.Start) && r.End.RubyEqual(or.End)
}

// endpointKind classifies Range endpoints: numeric (Integer), single-
// character String, or unsupported.
type endpointKind int

const (
	endpointUnsupported endpointKind = iota
	endpointInteger
	endpointChar
)

func (r Range) kind() endpointKind {
	switch r.Start.(type) {
	case Integer:
		if _, ok := r.End.(Integer); ok {
			return endpointInteger
		}
	case String:
		if s, ok := r.End.(String); ok {
			if se, ok2 := r.Start.(String); ok2 && se.Len() == 1 && s.Len() == 1 {
				return endpointChar
			}
		}
	}
	return endpointUnsupported
}

// Size implements Range#size/#count for numeric and single-char ranges.
func (r Range) Size() (Integer, error) {
	switch r.kind() {
	case endpointInteger:
		start := r.Start.(Integer).Big()
		end := r.End.(Integer).Big()
		diff := new(big.Int).Sub(end, start)
		if r.Inclusive {
			diff.Add(diff, big.NewInt(1))
		}
		if diff.Sign() < 0 {
			diff.SetInt64(0)
		}
		return NewInteger(diff), nil
	case endpointChar:
		start := []rune(r.Start.(String).Get())[0]
		end := []rune(r.End.(String).Get())[0]
		n := int64(end) - int64(start)
		if r.Inclusive {
			n++
		}
		if n < 0 {
			n = 0
		}
		return IntFromInt64(n), nil
	default:
		return Integer{}, rberror.NewTypeError("can't iterate from %s", r.Start.ClassName())
	}
}

// ToA implements Range#to_a for numeric and single-char ranges.
func (r Range) ToA() (Array, error) {
	switch r.kind() {
	case endpointInteger:
		start := r.Start.(Integer).Big()
		end := r.End.(Integer).Big()
		var out []Value
		cur := new(big.Int).Set(start)
		for {
			cmp := cur.Cmp(end)
			if r.Inclusive {
				if cmp > 0 {
					break
				}
			} else if cmp >= 0 {
				break
			}
			out = append(out, NewInteger(cur))
			cur = new(big.Int).Add(cur, big.NewInt(1))
		}
		return NewArray(out), nil
	case endpointChar:
		start := []rune(r.Start.(String).Get())[0]
		end := []rune(r.End.(String).Get())[0]
		var out []Value
		for c := start; r.Inclusive && c <= end || !r.Inclusive && c < end; c++ {
			out = append(out, NewString(string(c)))
		}
		return NewArray(out), nil
	default:
		return Array{}, rberror.NewTypeError("can't iterate from %s", r.Start.ClassName())
	}
}

// Include reports Range#include? membership: ordered comparison, exclusive
// upper bound uses < rather than <=.
func (r Range) Include(x Value) (bool, error) {
	cx, ok := r.Start.(Comparable)
	if !ok {
		return false, rberror.NewTypeError("%s is not comparable", r.Start.ClassName())
	}
	lo, ok := cx.Compare(x)
	if !ok {
		return false, nil
	}
	cend, ok := r.End.(Comparable)
	if !ok {
		return false, rberror.NewTypeError("%s is not comparable", r.End.ClassName())
	}
	hi, ok := cend.Compare(x)
	if !ok {
		return false, nil
	}
	if lo > 0 {
		return false, nil
	}
	if r.Inclusive {
		return hi <= 0, nil
	}
	return hi < 0, nil
}

func (r Range) First() Value { return r.Start }

// Last returns Range#last with no arguments: for an exclusive range over
// integer/char endpoints it is the predecessor of end.
func (r Range) Last() (Value, error) {
	if r.Inclusive {
		return r.End, nil
	}
	switch r.kind() {
	case endpointInteger:
		return NewInteger(new(big.Int).Sub(r.End.(Integer).Big(), big.NewInt(1))), nil
	case endpointChar:
		end := []rune(r.End.(String).Get())[0]
		return NewString(string(end - 1)), nil
	default:
		return nil, rberror.NewTypeError("can't determine predecessor of %s", r.End.ClassName())
	}
}

func (r Range) Min() (Value, error) {
	size, err := r.Size()
	if err != nil {
		return nil, err
	}
	if size.IsZero() {
		return NIL, nil
	}
	return r.Start, nil
}

func (r Range) Max() (Value, error) {
	size, err := r.Size()
	if err != nil {
		return nil, err
	}
	if size.IsZero() {
		return NIL, nil
	}
	return r.Last()
}
