package value

import (
	"math/big"
	"testing"
)

func TestTruthy(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want bool
	}{
		{"nil is falsy", NIL, false},
		{"false is falsy", FALSE, false},
		{"true is truthy", TRUE, true},
		{"zero integer is truthy", IntFromInt64(0), true},
		{"empty string is truthy", NewString(""), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truthy(tt.v); got != tt.want {
				t.Errorf("Truthy(%v) = %v, want %v", tt.v.Inspect(), got, tt.want)
			}
		})
	}
}

func TestIsNil(t *testing.T) {
	if !IsNil(NIL) {
		t.Error("IsNil(NIL) = false, want true")
	}
	if IsNil(IntFromInt64(0)) {
		t.Error("IsNil(0) = true, want false")
	}
}

func TestIntegerCrossTypeEquality(t *testing.T) {
	three := IntFromInt64(3)
	tests := []struct {
		name string
		o    Value
		want bool
	}{
		{"equal float", Float(3.0), true},
		{"unequal float", Float(3.5), false},
		{"equal rational", NewRational(big.NewInt(3), big.NewInt(1)), true},
		{"non-trivial rational", NewRational(big.NewInt(6), big.NewInt(2)), true},
		{"string never equal", NewString("3"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := three.RubyEqual(tt.o); got != tt.want {
				t.Errorf("3 == %v = %v, want %v", tt.o.Inspect(), got, tt.want)
			}
		})
	}
}

func TestIntegerCompareAcrossTypes(t *testing.T) {
	two := IntFromInt64(2)
	c, ok := two.Compare(Float(1.5))
	if !ok || c <= 0 {
		t.Errorf("2 <=> 1.5 = (%d, %v), want positive, true", c, ok)
	}
	c, ok = two.Compare(NewString("x"))
	if ok {
		t.Errorf("2 <=> \"x\" should be incomparable, got (%d, %v)", c, ok)
	}
}

func TestDivModFloor(t *testing.T) {
	tests := []struct {
		name string
		a, b int64
		q, r int64
	}{
		{"both positive", 7, 2, 3, 1},
		{"negative dividend floors down", -7, 2, -4, 1},
		{"negative divisor floors down", 7, -2, -4, -1},
		{"both negative", -7, -2, 3, -1},
		{"exact division", 6, 3, 2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, r := DivModFloor(IntFromInt64(tt.a), IntFromInt64(tt.b))
			if q.Big().Int64() != tt.q || r.Big().Int64() != tt.r {
				t.Errorf("DivModFloor(%d, %d) = (%d, %d), want (%d, %d)",
					tt.a, tt.b, q.Big().Int64(), r.Big().Int64(), tt.q, tt.r)
			}
		})
	}
}

func TestRationalSimplifiesOnConstruction(t *testing.T) {
	r := NewRational(big.NewInt(6), big.NewInt(4))
	if r.Numerator().Int64() != 3 || r.Denominator().Int64() != 2 {
		t.Errorf("NewRational(6,4) = %s, want 3/2", r.ToS())
	}
}

func TestRationalNormalizesNegativeDenominator(t *testing.T) {
	r := NewRational(big.NewInt(1), big.NewInt(-2))
	if r.Numerator().Int64() != -1 || r.Denominator().Int64() != 2 {
		t.Errorf("NewRational(1,-2) = %s, want -1/2", r.ToS())
	}
}

func TestRationalArithmeticResimplifies(t *testing.T) {
	half := NewRational(big.NewInt(1), big.NewInt(2))
	quarter := NewRational(big.NewInt(1), big.NewInt(4))
	sum := AddRational(half, quarter)
	if sum.Numerator().Int64() != 3 || sum.Denominator().Int64() != 4 {
		t.Errorf("1/2 + 1/4 = %s, want 3/4", sum.ToS())
	}
}

func TestArrayNegativeIndex(t *testing.T) {
	a := NewArray([]Value{IntFromInt64(1), IntFromInt64(2), IntFromInt64(3)})
	v, ok := a.Index(-1)
	if !ok || !v.RubyEqual(IntFromInt64(3)) {
		t.Errorf("a[-1] = (%v, %v), want (3, true)", v, ok)
	}
	_, ok = a.Index(-4)
	if ok {
		t.Error("a[-4] should be out of range")
	}
}

func TestHashPreservesInsertionOrder(t *testing.T) {
	h := NewHash()
	h.Set(Symbol("b"), IntFromInt64(2))
	h.Set(Symbol("a"), IntFromInt64(1))
	keys := h.Keys()
	if len(keys) != 2 || keys[0] != Symbol("b") || keys[1] != Symbol("a") {
		t.Errorf("Keys() = %v, want [b a] in insertion order", keys)
	}
}

func TestHashSetOverwritesWithoutReordering(t *testing.T) {
	h := NewHash()
	h.Set(Symbol("a"), IntFromInt64(1))
	h.Set(Symbol("b"), IntFromInt64(2))
	h.Set(Symbol("a"), IntFromInt64(99))
	if h.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", h.Len())
	}
	v, _, _ := h.Get(Symbol("a"))
	if !v.RubyEqual(IntFromInt64(99)) {
		t.Errorf("h[:a] = %v, want 99", v.Inspect())
	}
}

func TestHashAcceptsArrayKeyWithoutPanicking(t *testing.T) {
	h := NewHash()
	key := NewArray([]Value{IntFromInt64(1), IntFromInt64(2)})
	if err := h.Set(key, NewString("pair")); err != nil {
		t.Fatalf("Set with Array key: %v", err)
	}
	v, ok, err := h.Get(NewArray([]Value{IntFromInt64(1), IntFromInt64(2)}))
	if err != nil {
		t.Fatalf("Get with Array key: %v", err)
	}
	if !ok || v.ToS() != "pair" {
		t.Errorf("h[[1,2]] = (%v, %v), want (\"pair\", true)", v, ok)
	}
}

func TestHashAcceptsInstanceKeyByIdentity(t *testing.T) {
	h := NewHash()
	a := NewInstance("Point")
	b := NewInstance("Point")
	if err := h.Set(a, NewString("a")); err != nil {
		t.Fatalf("Set with Instance key: %v", err)
	}
	if err := h.Set(b, NewString("b")); err != nil {
		t.Fatalf("Set with Instance key: %v", err)
	}
	if h.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (distinct instances are distinct keys)", h.Len())
	}
	v, ok, err := h.Get(a)
	if err != nil || !ok || v.ToS() != "a" {
		t.Errorf("h[a] = (%v, %v, %v), want (\"a\", true, nil)", v, ok, err)
	}
}

func TestRangeIncludeExclusiveUpperBound(t *testing.T) {
	r := Range{Start: IntFromInt64(1), End: IntFromInt64(5), Inclusive: false}
	in, err := r.Include(IntFromInt64(5))
	if err != nil {
		t.Fatalf("Include: %v", err)
	}
	if in {
		t.Error("1...5 should not include 5")
	}
	in, _ = r.Include(IntFromInt64(4))
	if !in {
		t.Error("1...5 should include 4")
	}
}

func TestRangeSizeInclusiveVsExclusive(t *testing.T) {
	incl := Range{Start: IntFromInt64(1), End: IntFromInt64(5), Inclusive: true}
	excl := Range{Start: IntFromInt64(1), End: IntFromInt64(5), Inclusive: false}
	s, err := incl.Size()
	if err != nil || s.Big().Int64() != 5 {
		t.Errorf("(1..5).size = %v, want 5", s)
	}
	s, err = excl.Size()
	if err != nil || s.Big().Int64() != 4 {
		t.Errorf("(1...5).size = %v, want 4", s)
	}
}

func TestRangeToACharRange(t *testing.T) {
	r := Range{Start: NewString("a"), End: NewString("c"), Inclusive: true}
	arr, err := r.ToA()
	if err != nil {
		t.Fatalf("ToA: %v", err)
	}
	if arr.Len() != 3 {
		t.Fatalf("('a'..'c').to_a has %d elements, want 3", arr.Len())
	}
	got := []string{(*arr.Elements)[0].ToS(), (*arr.Elements)[1].ToS(), (*arr.Elements)[2].ToS()}
	want := []string{"a", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestStringAppendMutatesSharedValue(t *testing.T) {
	s := NewString("hi")
	alias := s
	s.Append("!")
	if alias.Get() != "hi!" {
		t.Errorf("alias.Get() = %q, want %q (String is a reference type)", alias.Get(), "hi!")
	}
}
