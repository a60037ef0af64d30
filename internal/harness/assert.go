package harness

import (
	"regexp"
	"strings"

	"rubycore/internal/eval"
	"rubycore/internal/rberror"
	"rubycore/internal/value"
)

// Outcome is one example's result — pass/fail plus message — reported by
// cmd/rubyspec with a ✓/✗ prefix.
type Outcome struct {
	Example Example
	Passed  bool
	Message string
	Err     error
}

// should matches "<target>.should <matcher>" with the five matcher forms
// spec's harness section names: `== expr`, `be_nil`, `be_true`, `be_false`,
// `be_kind_of(Class)`.
var should = regexp.MustCompile(`(?s)^(.*)\.should\s+(==\s*.+|be_nil|be_true|be_false|be_kind_of\(\s*\w+\s*\))\s*$`)

// Run evaluates one example's body against ev and checks its trailing
// `.should` assertion, if present. A body with no `.should` clause is run
// for side effects only and passes as long as it doesn't raise.
func Run(ev *eval.Evaluator, ex Example) Outcome {
	body := strings.Join(splitNonBlank(ex.Body), " ")
	m := should.FindStringSubmatch(body)
	if m == nil {
		if _, err := ev.Eval(body); err != nil {
			return Outcome{Example: ex, Passed: false, Message: err.Error(), Err: err}
		}
		return Outcome{Example: ex, Passed: true}
	}

	target, matcher := strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	got, err := ev.Eval(target)
	if err != nil {
		return Outcome{Example: ex, Passed: false, Message: err.Error(), Err: err}
	}
	return checkMatcher(ev, ex, got, matcher)
}

func checkMatcher(ev *eval.Evaluator, ex Example, got value.Value, matcher string) Outcome {
	switch {
	case matcher == "be_nil":
		return boolOutcome(ex, value.IsNil(got), "expected %s to be nil", got.Inspect())
	case matcher == "be_true":
		return boolOutcome(ex, got.RubyEqual(value.TRUE), "expected %s to be true", got.Inspect())
	case matcher == "be_false":
		return boolOutcome(ex, got.RubyEqual(value.FALSE), "expected %s to be false", got.Inspect())
	case strings.HasPrefix(matcher, "be_kind_of("):
		class := strings.TrimSuffix(strings.TrimPrefix(matcher, "be_kind_of("), ")")
		class = strings.TrimSpace(class)
		return boolOutcome(ex, ev.Registry.IsA(got, class), "expected %s to be a kind of %s", got.Inspect(), class)
	case strings.HasPrefix(matcher, "=="):
		wantExpr := strings.TrimSpace(strings.TrimPrefix(matcher, "=="))
		want, err := ev.Eval(wantExpr)
		if err != nil {
			return Outcome{Example: ex, Passed: false, Message: err.Error(), Err: err}
		}
		return boolOutcome(ex, got.RubyEqual(want), "expected %s == %s", got.Inspect(), want.Inspect())
	}
	err := rberror.NewAssertionFailure("unrecognized matcher %q", matcher)
	return Outcome{Example: ex, Passed: false, Message: err.Error(), Err: err}
}

func boolOutcome(ex Example, ok bool, format string, args ...interface{}) Outcome {
	if ok {
		return Outcome{Example: ex, Passed: true}
	}
	err := rberror.NewAssertionFailure(format, args...)
	return Outcome{Example: ex, Passed: false, Message: err.Error(), Err: err}
}

func splitNonBlank(body string) []string {
	var out []string
	for _, line := range strings.Split(body, "\n") {
		t := strings.TrimSpace(line)
		if t == "" || strings.HasPrefix(t, "#") {
			continue
		}
		out = append(out, t)
	}
	return out
}
