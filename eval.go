package infix

import (
	"io"
	"math/big"
	"strconv"
	"strings"

	"github.com/zephyrtronium/bigfloat"
)

// precedence assigns each operator its binding strength. An operator binds
// tighter than any operator of lower rank.
var precedence = map[string]int{
	"+": 1,
	"-": 1,
	"*": 2,
	"/": 2,
	"^": 3,
}

// rightAssoc marks operators which associate to the right. All other
// operators associate to the left, i.e. reduce on equal precedence.
var rightAssoc = map[string]bool{
	"^": true,
}

// binds reports whether the operator on top of the stack should be reduced
// before op is pushed.
func binds(top, op string) bool {
	if rightAssoc[op] {
		return precedence[top] > precedence[op]
	}
	return precedence[top] >= precedence[op]
}

// Option is an option used when evaluating an expression.
type Option interface {
	evalOption()
}

type precopt uint

func (precopt) evalOption() {}

// Prec sets the precision of calculations in bits. If no precision is given,
// the default is 64.
func Prec(prec uint) Option {
	return precopt(prec)
}

// machine is the reduction engine for a single evaluation. It owns both
// stacks for the duration of one evaluation and is discarded afterward; no
// state survives across evaluations.
type machine struct {
	// vals is the operand stack.
	vals []*big.Float
	// ops is the operator stack. It holds operators and open parentheses
	// only; numbers and close parentheses are never pushed.
	ops []lexToken
	// afterValue records whether the previous token completed a value, i.e.
	// was a number or a close parenthesis. A value may not directly follow
	// another value.
	afterValue bool
	prec       uint
}

func newMachine(opts ...Option) *machine {
	m := machine{prec: 64}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case precopt:
			m.prec = uint(opt)
		default:
			panic("infix: unknown option type")
		}
	}
	return &m
}

// step consumes one token, updating both stacks.
func (m *machine) step(tok lexToken) error {
	switch tok.kind {
	case tokenNum:
		if m.afterValue {
			return &TrailingValueError{Col: tok.pos}
		}
		m.vals = append(m.vals, m.num(tok.text))
		m.afterValue = true
	case tokenOp:
		for len(m.ops) > 0 {
			top := m.ops[len(m.ops)-1]
			if top.kind != tokenOp || !binds(top.text, tok.text) {
				break
			}
			if err := m.reduce(); err != nil {
				return err
			}
		}
		m.ops = append(m.ops, tok)
		m.afterValue = false
	case tokenOpen:
		if m.afterValue {
			return &TrailingValueError{Col: tok.pos}
		}
		m.ops = append(m.ops, tok)
	case tokenClose:
		for {
			if len(m.ops) == 0 {
				return &BracketError{Col: tok.pos, Right: ")"}
			}
			top := m.ops[len(m.ops)-1]
			if top.kind == tokenOpen {
				if !m.afterValue {
					return &EmptyExpressionError{Col: tok.pos, End: ")"}
				}
				m.ops = m.ops[:len(m.ops)-1]
				break
			}
			if err := m.reduce(); err != nil {
				return err
			}
		}
		m.afterValue = true
	default:
		panic("infix: invalid token " + tok.String())
	}
	return nil
}

// finish drains the operator stack and extracts the result. pos is the
// position of the end of the input.
func (m *machine) finish(pos int) (*big.Float, error) {
	for len(m.ops) > 0 {
		top := m.ops[len(m.ops)-1]
		if top.kind == tokenOpen {
			return nil, &BracketError{Col: top.pos, Left: "("}
		}
		if err := m.reduce(); err != nil {
			return nil, err
		}
	}
	switch len(m.vals) {
	case 0:
		return nil, &EmptyExpressionError{Col: pos}
	case 1:
		return m.vals[0], nil
	default:
		// step rejects a value directly following another value, so the
		// operand stack cannot hold two values once the operator stack is
		// drained.
		panic("infix: inconsistent operand stack: " + strconv.Itoa(len(m.vals)) + " values")
	}
}

// reduce pops one operator and two operands and pushes the operator applied
// to them. The left operand is reused to hold the result.
func (m *machine) reduce() (err error) {
	op := m.ops[len(m.ops)-1]
	m.ops = m.ops[:len(m.ops)-1]
	if len(m.vals) < 2 {
		return &UnderflowError{Col: op.pos, Op: op.text}
	}
	r := m.vals[len(m.vals)-1]
	m.vals = m.vals[:len(m.vals)-1]
	l := m.vals[len(m.vals)-1]
	// Operations on infinite operands, e.g. inf - inf, panic with big.ErrNaN.
	// Infinities arise only from literals too large to represent.
	defer func() {
		if p := recover(); p != nil {
			if _, ok := p.(big.ErrNaN); !ok {
				panic(p)
			}
			err = &DomainError{X: r, Op: op.text}
		}
	}()
	switch op.text {
	case "+":
		l.Add(l, r)
	case "-":
		l.Sub(l, r)
	case "*":
		l.Mul(l, r)
	case "/":
		if r.Sign() == 0 {
			return &DivideByZeroError{Col: op.pos}
		}
		l.Quo(l, r)
	case "^":
		switch {
		case l.Signbit():
			// Negative bases are outside the domain.
			return &DomainError{X: l, Op: "^"}
		case l.Sign() == 0:
			// 0^y is 0 for y > 0 and undefined otherwise.
			if r.Sign() <= 0 {
				return &DomainError{X: r, Op: "^"}
			}
		default:
			bigfloat.Pow(l, l, r)
		}
	default:
		panic("infix: unknown operator " + strconv.Quote(op.text))
	}
	return nil
}

// num converts a number token's text to a value.
func (m *machine) num(s string) *big.Float {
	r, _, err := new(big.Float).SetPrec(m.prec).Parse(s, 10)
	switch {
	case err == nil: // do nothing
	case err.Error() == "exponent overflow",
		strings.HasSuffix(err.Error(), ": value out of range"):
		// There isn't realistically any better way to detect this error.
		r = new(big.Float).SetInf(false)
	default:
		panic("infix: invalid number: " + s + " (" + err.Error() + ")")
	}
	return r
}

// Eval evaluates an infix expression read from src and returns its value.
// Errors from invalid input implement InputError. Eval is pure: each call
// owns its own pair of stacks, so concurrent calls with independent inputs
// are safe.
func Eval(src io.RuneScanner, opts ...Option) (*big.Float, error) {
	m := newMachine(opts...)
	l := lex(src)
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		if tok.kind == tokenEOF {
			return m.finish(tok.pos)
		}
		if err := m.step(tok); err != nil {
			return nil, err
		}
	}
}

// EvalString is a shortcut to evaluate a string expression.
func EvalString(src string, opts ...Option) (*big.Float, error) {
	return Eval(strings.NewReader(src), opts...)
}
