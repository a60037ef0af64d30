// Package rberror defines the Ruby-level error taxonomy raised by the
// dispatch core and carried, uncaught, back up the evaluator's call stack
// for Ruby-level rescue to handle.
package rberror

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Kind is one of the error kinds the dispatch core and built-in method
// packs raise. Kinds are classes in Ruby terms, not exhaustive exception
// hierarchies — the evaluator is free to map a Kind onto a richer class
// chain (StandardError, etc.) if it wants one.
type Kind string

const (
	NoMethodError     Kind = "NoMethodError"
	TypeError         Kind = "TypeError"
	ZeroDivisionError Kind = "ZeroDivisionError"
	ArgumentError     Kind = "ArgumentError"
	RangeError        Kind = "RangeError"
	AssertionFailure  Kind = "AssertionFailure"
)

// RubyError is a raised Ruby-level error. It wraps an optional cause with
// github.com/pkg/errors so a built-in method pack several frames deep still
// leaves a stack a harness can print on a failed spec.
type RubyError struct {
	Kind    Kind
	Message string
	cause   error

	// Fields below are populated by specific raisers and are nil/zero
	// unless relevant.
	ReceiverClass string
	MethodName    string
	ArgsArity     int
}

func (e *RubyError) Error() string {
	var sb strings.Builder
	sb.WriteString(string(e.Kind))
	if e.Message != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Message)
	}
	if e.ReceiverClass != "" && e.MethodName != "" {
		fmt.Fprintf(&sb, " (%s#%s)", e.ReceiverClass, e.MethodName)
	}
	return sb.String()
}

// Unwrap exposes the wrapped cause, if any, to errors.Is/errors.As.
func (e *RubyError) Unwrap() error { return e.cause }

// Is lets errors.Is(err, rberror.Sentinel(rberror.NoMethodError)) match by
// Kind without callers needing a sentinel *RubyError value.
func (e *RubyError) Is(target error) bool {
	if k, ok := target.(kindSentinel); ok {
		return e.Kind == Kind(k)
	}
	return false
}

type kindSentinel Kind

// Sentinel returns a comparable value usable with errors.Is to test a
// RubyError's Kind, e.g. errors.Is(err, rberror.Sentinel(rberror.TypeError)).
func Sentinel(k Kind) error        { return kindSentinel(k) }
func (kindSentinel) Error() string { return "" }

func newf(kind Kind, format string, args ...interface{}) *RubyError {
	return &RubyError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NewNoMethodError reports that MRO yielded no implementation for
// (receiverClass, method).
func NewNoMethodError(receiverClass, method string, arity int) *RubyError {
	e := newf(NoMethodError, "undefined method '%s' for %s", method, receiverClass)
	e.ReceiverClass = receiverClass
	e.MethodName = method
	e.ArgsArity = arity
	return e
}

// NewTypeError reports an operand class rejected by a built-in method.
func NewTypeError(format string, args ...interface{}) *RubyError {
	return newf(TypeError, format, args...)
}

// NewZeroDivisionError reports division by zero (integer, float-to-rational
// coercion, or Rational construction with a zero denominator).
func NewZeroDivisionError(format string, args ...interface{}) *RubyError {
	return newf(ZeroDivisionError, format, args...)
}

// NewArgumentError reports wrong arity or a bad literal parse.
func NewArgumentError(format string, args ...interface{}) *RubyError {
	return newf(ArgumentError, format, args...)
}

// NewRangeError reports an undefined range-endpoint comparison.
func NewRangeError(format string, args ...interface{}) *RubyError {
	return newf(RangeError, format, args...)
}

// NewAssertionFailure reports a failed `.should` expectation in the spec
// harness; it is not raised by the dispatch core itself.
func NewAssertionFailure(format string, args ...interface{}) *RubyError {
	return newf(AssertionFailure, format, args...)
}

// Wrap attaches a lower-level cause (e.g. a parse error from an operand
// coercion) to a RubyError, preserving it for errors.Unwrap/errors.Is.
func (e *RubyError) Wrap(cause error) *RubyError {
	e.cause = errors.WithStack(cause)
	return e
}
