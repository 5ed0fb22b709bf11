package datemath

import (
	"errors"
	"fmt"
)

// ParseError reports a malformed shorthand string. It is never recovered
// from; the same input will always fail the same way.
type ParseError struct {
	input string
	pos   int
	msg   string
}

func newParseError(input string, pos int, format string, args ...any) *ParseError {
	return &ParseError{input: input, pos: pos, msg: fmt.Sprintf(format, args...)}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("datemath: cannot parse %q: %s (at offset %d)", e.input, e.msg, e.pos)
}

// Pos is the byte offset in the (whitespace-stripped) input where parsing
// stopped.
func (e *ParseError) Pos() int { return e.pos }

// IsParseError reports whether [err] is or wraps a [*ParseError].
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// EvaluationError reports that a well-formed expression could not be
// resolved to a timestamp, which given the closed unit set only happens on
// arithmetic overflow.
type EvaluationError struct {
	expr string
	msg  string
}

func newEvalError(expr string, format string, args ...any) *EvaluationError {
	return &EvaluationError{expr: expr, msg: fmt.Sprintf(format, args...)}
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("datemath: cannot evaluate %q: %s", e.expr, e.msg)
}

// IsEvaluationError reports whether [err] is or wraps a [*EvaluationError].
func IsEvaluationError(err error) bool {
	var ee *EvaluationError
	return errors.As(err, &ee)
}
