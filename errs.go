package infix

import (
	"math/big"
	"strconv"
)

// BracketError is an error indicating unbalanced parentheses in the input. It
// implements InputError.
type BracketError struct {
	// Col is the position of the offending parenthesis.
	Col int
	// Left is "(" when an open parenthesis was never closed.
	Left string
	// Right is ")" when a close parenthesis had no matching open parenthesis.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close parenthesis with no open parenthesis")
	}
	return errpos(err.Col, "open parenthesis is never closed")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// UnderflowError is an error indicating an operator that could not be reduced
// because fewer than two operands were available, e.g. two consecutive
// operators or a trailing operator. It implements InputError.
type UnderflowError struct {
	// Col is the position of the operator.
	Col int
	// Op is the operator that could not be reduced.
	Op string
}

func (err *UnderflowError) Error() string {
	return errpos(err.Col, "operator "+strconv.Quote(err.Op)+" is missing an operand")
}

func (err *UnderflowError) Pos() int {
	return err.Col
}

// DivideByZeroError is an error indicating a division whose right operand is
// zero. It implements InputError.
type DivideByZeroError struct {
	// Col is the position of the division operator.
	Col int
}

func (err *DivideByZeroError) Error() string {
	return errpos(err.Col, "division by zero")
}

func (err *DivideByZeroError) Pos() int {
	return err.Col
}

// TrailingValueError is an error indicating a value that follows a completed
// value with no operator between them, e.g. "3 4". It implements InputError.
type TrailingValueError struct {
	// Col is the position of the unexpected value.
	Col int
}

func (err *TrailingValueError) Error() string {
	return errpos(err.Col, "value with no operator before it")
}

func (err *TrailingValueError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an empty expression or
// subexpression. It implements InputError.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the expression.
	Col int
	// End is the token that ended the expression, or the empty string if the
	// expression ended at end of input.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// DomainError is an error returned when an operator is applied to operands
// outside its domain, e.g. exponentiation of a negative base.
type DomainError struct {
	// X is the out-of-domain operand.
	X *big.Float
	// Op is the operator.
	Op string
}

func (err *DomainError) Error() string {
	r := err.X.String() + " outside domain"
	if err.Op != "" {
		r += " of " + err.Op
	}
	return r
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input, other than DomainError, implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*UnderflowError)(nil)
	_ InputError = (*DivideByZeroError)(nil)
	_ InputError = (*TrailingValueError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
)
