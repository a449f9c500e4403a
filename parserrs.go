package parsemath

import (
	"errors"
	"strconv"
)

var (
	// ErrDivisionByZero is wrapped by the error for a division by exact zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrNotANumber is wrapped by the error for an operation whose result is
	// NaN, e.g. a fractional power of a negative number.
	ErrNotANumber = errors.New("result is not a number")
)

// InvalidOperatorError is an error indicating a token that is not valid where
// it appears, or text that is not a valid token at all. It implements
// InputError.
type InvalidOperatorError struct {
	// Col is the position of the offending token.
	Col int
	// Desc describes the problem.
	Desc string
	// Err is the underlying *LexError when the input could not be tokenized.
	Err error
}

func (err *InvalidOperatorError) Error() string {
	return evalmsg(err.Col, err.Desc)
}

func (err *InvalidOperatorError) Unwrap() error {
	return err.Err
}

func (err *InvalidOperatorError) Pos() int {
	return err.Col
}

// UnableToParseError is an error indicating that otherwise valid tokens do not
// form an expression, e.g. unbalanced brackets or trailing tokens, or that the
// expression has no numeric value. It implements InputError.
type UnableToParseError struct {
	// Col is the position of the token where the problem was detected.
	Col int
	// Desc describes the problem.
	Desc string
	// Err is ErrDivisionByZero or ErrNotANumber for arithmetic failures.
	Err error
}

func (err *UnableToParseError) Error() string {
	return evalmsg(err.Col, err.Desc)
}

func (err *UnableToParseError) Unwrap() error {
	return err.Err
}

func (err *UnableToParseError) Pos() int {
	return err.Col
}

// evalmsg formats the message shared by InvalidOperatorError and
// UnableToParseError.
func evalmsg(pos int, msg string) string {
	return "Error in evaluating expression at column " + strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*InvalidOperatorError)(nil)
	_ InputError = (*UnableToParseError)(nil)
	_ InputError = (*LexError)(nil)
)
