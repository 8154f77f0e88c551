// Package infix evaluates infix arithmetic expressions with an
// arbitrary-precision result.
//
// Evaluation uses the classical dual-stack algorithm: operands accumulate on
// one stack and operators on another, and pending operators are reduced
// eagerly as soon as precedence allows. There is no intermediate syntax tree;
// each token is consumed exactly once, so evaluation is a single linear pass
// over the input.
//
// The expression language is deliberately small: decimal numbers, the binary
// operators + - * / ^, and parentheses. There are no variables, functions, or
// unary operators. Every failure is reported as a typed error carrying the
// rune column where it occurred.
package infix
