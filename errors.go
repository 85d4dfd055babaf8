package calculator

import (
	"errors"
	"strconv"
)

// Reasons for failure. Every error from Parse or Eval unwraps to exactly one
// of these.
var (
	// Lexing. Errors wrapping these are *LexError.
	ErrUnexpectedChar = errors.New("unexpected character")
	ErrNumberFormat   = errors.New("invalid number format")

	// Conversion to postfix. Errors wrapping these are *SyntaxError.
	ErrMismatchedParens = errors.New("mismatched parentheses")
	ErrMisplacedComma   = errors.New("misplaced comma")
	ErrUnknownOperator  = errors.New("unknown operator")

	// Evaluation. Errors wrapping these are *EvalError.
	ErrInvalidExpression = errors.New("invalid expression")
	ErrUnknownFunction   = errors.New("unknown function")
	ErrFunctionArgs      = errors.New("invalid function arguments")
	ErrFactorial         = errors.New("factorial requires a non-negative integer")
)

// SyntaxError indicates mismatched brackets, a comma outside any bracket, or
// an operator the parser does not know. It implements InputError.
type SyntaxError struct {
	// Col is the position of the offending token.
	Col int
	// Text is the offending token.
	Text string
	// Err is one of ErrMismatchedParens, ErrMisplacedComma, or
	// ErrUnknownOperator.
	Err error
}

func (err *SyntaxError) Error() string {
	return errpos(err.Col, err.Err.Error()+" "+strconv.Quote(err.Text))
}

func (err *SyntaxError) Unwrap() error {
	return err.Err
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// EvalError indicates that a parsed expression could not be evaluated to a
// finite number.
type EvalError struct {
	// Col is the position of the operator or function that failed, or 0 if
	// the failure is in the final result.
	Col int
	// Name is the operator symbol or function name that failed, if any.
	// Negation is named "u-".
	Name string
	// Err is one of ErrInvalidExpression, ErrUnknownFunction,
	// ErrFunctionArgs, or ErrFactorial.
	Err error
}

func (err *EvalError) Error() string {
	if err.Name == "" {
		return err.Err.Error()
	}
	return errpos(err.Col, err.Err.Error()+": "+strconv.Quote(err.Name))
}

func (err *EvalError) Unwrap() error {
	return err.Err
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// text that cannot be parsed implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based rune column of the token that caused the
	// error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*SyntaxError)(nil)
)
