package eval

import (
	"testing"

	"rubycore/internal/value"
)

func evalOK(t *testing.T, src string) value.Value {
	t.Helper()
	ev := New(nil)
	out, err := ev.Eval(src)
	if err != nil {
		t.Fatalf("Eval(%q): %v", src, err)
	}
	return out
}

func TestLiterals(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want value.Value
	}{
		{"integer", "42", value.IntFromInt64(42)},
		{"negative integer via unary", "-7", value.IntFromInt64(-7)},
		{"float", "3.5", value.Float(3.5)},
		{"string double-quoted", `"hi"`, value.NewString("hi")},
		{"string single-quoted", `'hi'`, value.NewString("hi")},
		{"symbol", ":foo", value.Symbol("foo")},
		{"true", "true", value.TRUE},
		{"false", "false", value.FALSE},
		{"nil", "nil", value.NIL},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := evalOK(t, tt.src)
			if !out.RubyEqual(tt.want) {
				t.Errorf("Eval(%q) = %v, want %v", tt.src, out.Inspect(), tt.want.Inspect())
			}
		})
	}
}

func TestArithmeticPrecedence(t *testing.T) {
	tests := []struct {
		src  string
		want int64
	}{
		{"2 + 3 * 4", 14},
		{"(2 + 3) * 4", 20},
		{"2 ** 3 ** 2", 512}, // right-associative: 2 ** (3 ** 2) == 2 ** 9
		{"10 % 3", 1},
		{"-2 + 3", 1},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			out := evalOK(t, tt.src)
			if !out.RubyEqual(value.IntFromInt64(tt.want)) {
				t.Errorf("Eval(%q) = %v, want %d", tt.src, out.Inspect(), tt.want)
			}
		})
	}
}

func TestComparisonAndEquality(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{"1 < 2", true},
		{"2 <= 2", true},
		{"3 > 4", false},
		{"1 == 1", true},
		{"1 != 2", true},
		{"1 != 1", false},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			out := evalOK(t, tt.src)
			if out.RubyEqual(value.TRUE) != tt.want {
				t.Errorf("Eval(%q) = %v, want %v", tt.src, out.Inspect(), tt.want)
			}
		})
	}
}

func TestLogicalShortCircuitReturnsDecidingOperand(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want value.Value
	}{
		{"nil or string yields the string", `nil || "x"`, value.NewString("x")},
		{"truthy and string yields the string", `1 && "y"`, value.NewString("y")},
		{"false and anything yields false", `false && "z"`, value.FALSE},
		{"true or anything yields true", `true || "z"`, value.TRUE},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := evalOK(t, tt.src)
			if !out.RubyEqual(tt.want) {
				t.Errorf("Eval(%q) = %v, want %v", tt.src, out.Inspect(), tt.want.Inspect())
			}
		})
	}
}

func TestLogicalShortCircuitDoesNotEvaluateRight(t *testing.T) {
	// nonexistent_method would raise NoMethodError if ever dispatched; the
	// left side deciding the result must keep it unevaluated.
	out := evalOK(t, "true || nonexistent_method")
	if !out.RubyEqual(value.TRUE) {
		t.Errorf("Eval = %v, want true", out.Inspect())
	}
	out = evalOK(t, "false && nonexistent_method")
	if !out.RubyEqual(value.FALSE) {
		t.Errorf("Eval = %v, want false", out.Inspect())
	}
}

func TestNotOperator(t *testing.T) {
	out := evalOK(t, "!true")
	if !out.RubyEqual(value.FALSE) {
		t.Errorf("!true = %v, want false", out.Inspect())
	}
	out = evalOK(t, "!nil")
	if !out.RubyEqual(value.TRUE) {
		t.Errorf("!nil = %v, want true", out.Inspect())
	}
}

func TestRangeLiteralInclusiveVsExclusive(t *testing.T) {
	out := evalOK(t, "(1..5)")
	r, ok := out.(value.Range)
	if !ok || !r.Inclusive {
		t.Fatalf("(1..5) = %v, want inclusive Range", out.Inspect())
	}
	out = evalOK(t, "(1...5)")
	r, ok = out.(value.Range)
	if !ok || r.Inclusive {
		t.Fatalf("(1...5) = %v, want exclusive Range", out.Inspect())
	}
}

func TestArrayLiteralAndIndexing(t *testing.T) {
	out := evalOK(t, "[1, 2, 3][1]")
	if !out.RubyEqual(value.IntFromInt64(2)) {
		t.Errorf("[1,2,3][1] = %v, want 2", out.Inspect())
	}
}

func TestHashLiteralSymbolShorthand(t *testing.T) {
	out := evalOK(t, "{a: 1, b: 2}[:b]")
	if !out.RubyEqual(value.IntFromInt64(2)) {
		t.Errorf("{a: 1, b: 2}[:b] = %v, want 2", out.Inspect())
	}
}

func TestHashLiteralArrowForm(t *testing.T) {
	out := evalOK(t, `{"x" => 10}["x"]`)
	if !out.RubyEqual(value.IntFromInt64(10)) {
		t.Errorf(`{"x" => 10}["x"] = %v, want 10`, out.Inspect())
	}
}

func TestMethodCallOnReceiver(t *testing.T) {
	out := evalOK(t, `"hello".upcase`)
	if out.ToS() != "HELLO" {
		t.Errorf(`"hello".upcase = %q, want "HELLO"`, out.ToS())
	}
}

func TestBarewordCommandCallWithoutParens(t *testing.T) {
	// `p 5` is Kernel#p called with a paren-less argument list (the
	// idiomatic Ruby `puts "hi"` shape); p returns its single argument.
	out := evalOK(t, "p 5")
	if !out.RubyEqual(value.IntFromInt64(5)) {
		t.Errorf("Eval(\"p 5\") = %v, want 5", out.Inspect())
	}
}

func TestShiftOperatorOnString(t *testing.T) {
	out := evalOK(t, `"ab" << "cd"`)
	if out.ToS() != "abcd" {
		t.Errorf(`"ab" << "cd" = %q, want "abcd"`, out.ToS())
	}
}

func TestNoMethodErrorPropagates(t *testing.T) {
	ev := New(nil)
	_, err := ev.Eval("1.nonexistent_method")
	if err == nil {
		t.Fatal("expected NoMethodError")
	}
}

func TestEvalUsesFreshRegistryPerEvaluator(t *testing.T) {
	a := New(nil)
	b := New(nil)
	a.Registry.Register("Integer", "triple", func(recv value.Value, _ ...value.Value) (value.Value, error) {
		i := recv.(value.Integer)
		return value.MulInt(i, value.IntFromInt64(3)), nil
	})
	if _, err := a.Eval("2.triple"); err != nil {
		t.Fatalf("a.Eval: %v", err)
	}
	if _, err := b.Eval("2.triple"); err == nil {
		t.Error("b should not see a's registered method: registries must be per-Evaluator")
	}
}
