package builtins

import (
	"math/big"
	"testing"

	"rubycore/internal/registry"
	"rubycore/internal/value"
)

func newReg(t *testing.T) *registry.Registry {
	t.Helper()
	reg := registry.New()
	Install(reg)
	return reg
}

func call(t *testing.T, reg *registry.Registry, recv value.Value, method string, args ...value.Value) value.Value {
	t.Helper()
	out, err := reg.Call(recv, method, args...)
	if err != nil {
		t.Fatalf("%s#%s: %v", recv.ClassName(), method, err)
	}
	return out
}

func TestIntegerDivisionFloorsTowardNegativeInfinity(t *testing.T) {
	reg := newReg(t)
	out := call(t, reg, value.IntFromInt64(-7), "/", value.IntFromInt64(2))
	if !out.RubyEqual(value.IntFromInt64(-4)) {
		t.Errorf("-7 / 2 = %v, want -4", out.Inspect())
	}
}

func TestIntegerPlusFloatPromotesToFloat(t *testing.T) {
	reg := newReg(t)
	out := call(t, reg, value.IntFromInt64(2), "+", value.Float(0.5))
	f, ok := out.(value.Float)
	if !ok || f != 2.5 {
		t.Errorf("2 + 0.5 = %v, want Float 2.5", out.Inspect())
	}
}

func TestIntegerDivideByZeroRaises(t *testing.T) {
	reg := newReg(t)
	_, err := reg.Call(value.IntFromInt64(1), "/", value.IntFromInt64(0))
	if err == nil {
		t.Fatal("1 / 0 should raise ZeroDivisionError")
	}
}

func TestComparableDerivedOperators(t *testing.T) {
	reg := newReg(t)
	tests := []struct {
		method string
		a, b   int64
		want   bool
	}{
		{"<", 1, 2, true},
		{"<", 2, 1, false},
		{">", 2, 1, true},
		{"<=", 2, 2, true},
		{">=", 1, 2, false},
	}
	for _, tt := range tests {
		out := call(t, reg, value.IntFromInt64(tt.a), tt.method, value.IntFromInt64(tt.b))
		if out.RubyEqual(value.TRUE) != tt.want {
			t.Errorf("%d %s %d = %v, want %v", tt.a, tt.method, tt.b, out.Inspect(), tt.want)
		}
	}
}

func TestComparableBetween(t *testing.T) {
	reg := newReg(t)
	out := call(t, reg, value.IntFromInt64(5), "between?", value.IntFromInt64(1), value.IntFromInt64(10))
	if !out.RubyEqual(value.TRUE) {
		t.Errorf("5.between?(1, 10) = %v, want true", out.Inspect())
	}
	out = call(t, reg, value.IntFromInt64(15), "between?", value.IntFromInt64(1), value.IntFromInt64(10))
	if !out.RubyEqual(value.FALSE) {
		t.Errorf("15.between?(1, 10) = %v, want false", out.Inspect())
	}
}

func TestStringSpaceshipRegistered(t *testing.T) {
	reg := newReg(t)
	out := call(t, reg, value.NewString("a"), "<=>", value.NewString("b"))
	if !out.RubyEqual(value.IntFromInt64(-1)) {
		t.Errorf("\"a\" <=> \"b\" = %v, want -1", out.Inspect())
	}
}

func TestArrayPushAndIndexing(t *testing.T) {
	reg := newReg(t)
	a := value.NewArray([]value.Value{value.IntFromInt64(1)})
	call(t, reg, a, "push", value.IntFromInt64(2), value.IntFromInt64(3))
	if a.Len() != 3 {
		t.Fatalf("push should mutate in place, len = %d, want 3", a.Len())
	}
	last := call(t, reg, a, "last")
	if !last.RubyEqual(value.IntFromInt64(3)) {
		t.Errorf("a.last = %v, want 3", last.Inspect())
	}
}

func TestArrayJoinWithSeparator(t *testing.T) {
	reg := newReg(t)
	a := value.NewArray([]value.Value{value.IntFromInt64(1), value.IntFromInt64(2), value.IntFromInt64(3)})
	out := call(t, reg, a, "join", value.NewString(", "))
	if out.ToS() != "1, 2, 3" {
		t.Errorf("join(\", \") = %q, want %q", out.ToS(), "1, 2, 3")
	}
}

func TestHashSetAndLookupViaRegisteredMethods(t *testing.T) {
	reg := newReg(t)
	h := value.NewHash()
	call(t, reg, h, "[]=", value.Symbol("x"), value.IntFromInt64(1))
	out := call(t, reg, h, "[]", value.Symbol("x"))
	if !out.RubyEqual(value.IntFromInt64(1)) {
		t.Errorf("h[:x] = %v, want 1", out.Inspect())
	}
	missing := call(t, reg, h, "[]", value.Symbol("y"))
	if !value.IsNil(missing) {
		t.Errorf("h[:y] = %v, want nil", missing.Inspect())
	}
}

func TestRangeIncludeViaRegisteredMethod(t *testing.T) {
	reg := newReg(t)
	r := value.Range{Start: value.IntFromInt64(1), End: value.IntFromInt64(5), Inclusive: true}
	out := call(t, reg, r, "include?", value.IntFromInt64(5))
	if !out.RubyEqual(value.TRUE) {
		t.Errorf("(1..5).include?(5) = %v, want true", out.Inspect())
	}
}

func TestObjectFreezeIsANoOp(t *testing.T) {
	reg := newReg(t)
	i := value.IntFromInt64(1)
	frozen := call(t, reg, i, "freeze")
	if !frozen.RubyEqual(i) {
		t.Errorf("freeze should return the receiver unchanged")
	}
	isFrozen := call(t, reg, i, "frozen?")
	if !isFrozen.RubyEqual(value.FALSE) {
		t.Errorf("frozen? = %v, want false (no mutation-locking is implemented)", isFrozen.Inspect())
	}
}

func TestRationalAdditionViaRegisteredMethod(t *testing.T) {
	reg := newReg(t)
	half := value.NewRational(big.NewInt(1), big.NewInt(2))
	quarter := value.NewRational(big.NewInt(1), big.NewInt(4))
	out := call(t, reg, half, "+", quarter)
	want := value.NewRational(big.NewInt(3), big.NewInt(4))
	if !out.RubyEqual(want) {
		t.Errorf("1/2 + 1/4 = %v, want %v", out.Inspect(), want.Inspect())
	}
}
