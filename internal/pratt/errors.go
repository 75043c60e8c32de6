package pratt

import (
	"errors"
	"fmt"
)

// Error is a failure detected by the engine itself.
//
// Failures reported by the grammar collaborators (unknown tokens, rejected
// reductions) are not wrapped in Error; they are returned to the caller
// unchanged so callers can match their own error types.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Pos is the index of the offending token in the stream, counting from
	// zero. For EMPTY_INPUT it is the number of tokens consumed so far.
	Pos int

	// Token is the offending token formatted with %v, empty at end of input.
	Token string
}

// ErrorCode categorizes engine errors.
type ErrorCode string

const (
	// ErrCodeEmptyInput indicates an expression was required but the stream
	// was exhausted.
	ErrCodeEmptyInput ErrorCode = "EMPTY_INPUT"

	// ErrCodeInvalidPosition indicates a token whose descriptor cannot be
	// dispatched where it was found, e.g. an interfix token starting an
	// expression.
	ErrCodeInvalidPosition ErrorCode = "INVALID_POSITION"

	// ErrCodeMissingReducer indicates the grammar does not implement the
	// reducer for an arity its operator table uses.
	ErrCodeMissingReducer ErrorCode = "MISSING_REDUCER"

	// ErrCodeTrailingInput indicates tokens were left after a whole-stream parse.
	ErrCodeTrailingInput ErrorCode = "TRAILING_INPUT"

	// ErrCodeMissingSeparator indicates an expected follow token was absent
	// under SeparatorStrict.
	ErrCodeMissingSeparator ErrorCode = "MISSING_SEPARATOR"

	// ErrCodeDepthExceeded indicates nesting beyond the configured limit.
	ErrCodeDepthExceeded ErrorCode = "DEPTH_EXCEEDED"
)

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("%s: %s (pos=%d, token=%s)", e.Code, e.Message, e.Pos, e.Token)
	}
	return fmt.Sprintf("%s: %s (pos=%d)", e.Code, e.Message, e.Pos)
}

// IsGrammarError reports whether err is an internal or grammar configuration
// failure. A total operator table makes these unreachable for any input
// except an empty one.
func IsGrammarError(err error) bool {
	switch CodeOf(err) {
	case ErrCodeEmptyInput, ErrCodeInvalidPosition, ErrCodeMissingReducer:
		return true
	}
	return false
}

// IsSyntaxError reports whether err is a malformed-input failure detected by
// the engine.
func IsSyntaxError(err error) bool {
	switch CodeOf(err) {
	case ErrCodeTrailingInput, ErrCodeMissingSeparator, ErrCodeDepthExceeded:
		return true
	}
	return false
}

// CodeOf returns the engine error code of err, or "" when err is not an
// engine error. Uses errors.As to handle wrapped errors.
func CodeOf(err error) ErrorCode {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Code
	}
	return ""
}

func newError(code ErrorCode, pos int, tok string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Pos:     pos,
		Token:   tok,
	}
}
