package qalqulator

import "strconv"

// SyntaxError is an error indicating input that does not match the grammar,
// e.g. an unknown character, a missing operand, or an unclosed bracket. It
// implements InputError.
type SyntaxError struct {
	// Col is the position of the offending token.
	Col int
	// Text is the offending input. It is empty at the end of input.
	Text string
	// Msg describes the problem.
	Msg string
}

func (err *SyntaxError) Error() string {
	return errpos(err.Col, err.Msg)
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// LiteralError is an error indicating a number literal whose value does not
// fit in a 128-bit signed integer, or which has too many fractional digits.
// It implements InputError.
type LiteralError struct {
	// Col is the position of the literal.
	Col int
	// Text is the literal as written.
	Text string
}

func (err *LiteralError) Error() string {
	return errpos(err.Col, "number literal out of range: "+err.Text)
}

func (err *LiteralError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating a line with no expression.
type EmptyExpressionError struct {
	// Col is the position where an expression was expected.
	Col int
}

func (err *EmptyExpressionError) Error() string {
	return errpos(err.Col, "no expression")
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
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
	_ InputError = (*SyntaxError)(nil)
	_ InputError = (*LiteralError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
)
