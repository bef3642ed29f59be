package langerr

import (
	"fmt"

	"github.com/dws-sandbox/basicscript/internal/token"
)

// RuntimeError is a single raised language error: a numeric code, a
// description, the name of the source unit ("" for the running script
// itself, as Err.Source documents), and the position of the offending
// statement.
type RuntimeError struct {
	Code        Code
	Description string
	Source      string
	Pos         token.Position

	// Resumable is false for Timeout and for parser/lexer (Syntax) errors:
	// both bypass On Error Resume Next and always propagate.
	Resumable bool
}

// Error implements the error interface.
func (e *RuntimeError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("run-time error '%d': %s", e.Code, e.Description)
	}
	return fmt.Sprintf("run-time error '%d': %s", e.Code, Description(e.Code))
}

// New constructs a resumable RuntimeError with the code's default
// description.
func New(code Code, pos token.Position) *RuntimeError {
	return &RuntimeError{Code: code, Description: Description(code), Pos: pos, Resumable: true}
}

// Newf constructs a resumable RuntimeError with a formatted description.
func Newf(code Code, pos token.Position, format string, args ...any) *RuntimeError {
	return &RuntimeError{Code: code, Description: fmt.Sprintf(format, args...), Pos: pos, Resumable: true}
}

// Raise constructs the error a script's own Err.Raise(n, source, description)
// call produces.
func Raise(code Code, source, description string, pos token.Position) *RuntimeError {
	if description == "" {
		description = Description(code)
	}
	return &RuntimeError{Code: code, Description: description, Source: source, Pos: pos, Resumable: true}
}

// NewTimeout constructs the non-resumable Timeout condition.
func NewTimeout(pos token.Position) *RuntimeError {
	return &RuntimeError{Code: Timeout, Description: Description(Timeout), Pos: pos, Resumable: false}
}

// NewSyntax constructs a non-resumable Syntax error for a lex/parse failure.
func NewSyntax(message string, pos token.Position) *RuntimeError {
	return &RuntimeError{Code: Syntax, Description: message, Pos: pos, Resumable: false}
}

// TypeMismatchf constructs a TypeMismatch error with a formatted
// description, the most common constructor the evaluator reaches for when
// a values.TypeMismatchError bubbles up from a coercion.
func TypeMismatchf(pos token.Position, format string, args ...any) *RuntimeError {
	return Newf(TypeMismatch, pos, format, args...)
}

// SubscriptOutOfRangef constructs a SubscriptOutOfRange error with a
// formatted description.
func SubscriptOutOfRangef(pos token.Position, format string, args ...any) *RuntimeError {
	return Newf(SubscriptOutOfRange, pos, format, args...)
}
