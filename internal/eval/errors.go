package eval

import "rubycore/internal/rberror"

func parseLiteralError(kind, text string) error {
	return rberror.NewArgumentError("invalid %s literal: %q", kind, text)
}

// wrapLiteralError is parseLiteralError with a concrete parse error
// (e.g. from strconv) attached as the cause, so a harness failure can
// print the underlying reason alongside the Ruby-level message.
func wrapLiteralError(kind, text string, cause error) error {
	return parseLiteralError(kind, text).(*rberror.RubyError).Wrap(cause)
}
