package infix_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kalkul/infix"
)

func TestEval(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    float64
	}{
		{"num", "1", 1},
		{"decimal", "2.5", 2.5},
		{"add", "3 + 4", 7},
		{"sub", "4 - 5 - 6", 4 - 5 - 6},
		{"mul", "4 * 5 * 6", 4 * 5 * 6},
		{"div", "7 / 2", 3.5},
		{"precedence", "3 + 4 * 2", 11},
		{"parens", "( 3 + 4 ) * 2", 14},
		{"left-assoc-sub", "6 - 2 - 1", 3},
		{"left-assoc-div", "2 * 3 / 6 * 2 * 3 / 6 * 2 * 3 / 1", 6},
		{"right-assoc-pow", "2 ^ 3 ^ 2", 512},
		{"pow-binds-tightest", "2 * 3 ^ 2", 18},
		{"nested-parens", "( ( 1 + 2 ) * ( 3 + 4 ) )", 21},
		{"no-spaces", "(3+4)*2", 14},
		{"mixed-spacing", "3+4 * 2", 11},
		{"exponent-literal", "1e3 + 1", 1001},
		{"leading-dot", ".5 * 4", 2},
		{"zero-pow", "0 ^ 2", 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := infix.EvalString(c.src)
			require.NoError(t, err)
			require.NotNil(t, r)
			f, _ := r.Float64()
			require.Equal(t, c.r, f, "evaluating %q", c.src)
		})
	}
}

func TestEvalErrors(t *testing.T) {
	t.Run("lex", func(t *testing.T) {
		_, err := infix.EvalString("3 # 4")
		var lerr *infix.LexError
		require.ErrorAs(t, err, &lerr)
		require.Equal(t, 4, lerr.Pos())
	})
	t.Run("div-zero", func(t *testing.T) {
		_, err := infix.EvalString("10 / 0")
		var derr *infix.DivideByZeroError
		require.ErrorAs(t, err, &derr)
		require.Equal(t, 4, derr.Pos())
	})
	t.Run("div-zero-expr", func(t *testing.T) {
		_, err := infix.EvalString("1 / ( 2 - 2 )")
		var derr *infix.DivideByZeroError
		require.ErrorAs(t, err, &derr)
	})
	t.Run("unclosed-paren", func(t *testing.T) {
		_, err := infix.EvalString("( 3 + 4")
		var berr *infix.BracketError
		require.ErrorAs(t, err, &berr)
		require.Equal(t, "(", berr.Left)
		require.Equal(t, 1, berr.Pos())
	})
	t.Run("unopened-paren", func(t *testing.T) {
		_, err := infix.EvalString("3 + 4 )")
		var berr *infix.BracketError
		require.ErrorAs(t, err, &berr)
		require.Equal(t, ")", berr.Right)
		require.Equal(t, 7, berr.Pos())
	})
	t.Run("trailing-value", func(t *testing.T) {
		_, err := infix.EvalString("3 4")
		var terr *infix.TrailingValueError
		require.ErrorAs(t, err, &terr)
		require.Equal(t, 3, terr.Pos())
	})
	t.Run("postfix", func(t *testing.T) {
		_, err := infix.EvalString("3 4 +")
		var terr *infix.TrailingValueError
		require.ErrorAs(t, err, &terr)
	})
	t.Run("value-before-paren", func(t *testing.T) {
		_, err := infix.EvalString("2 ( 3 + 4 )")
		var terr *infix.TrailingValueError
		require.ErrorAs(t, err, &terr)
	})
	t.Run("consecutive-ops", func(t *testing.T) {
		_, err := infix.EvalString("3 + + 4")
		var uerr *infix.UnderflowError
		require.ErrorAs(t, err, &uerr)
		require.Equal(t, "+", uerr.Op)
	})
	t.Run("trailing-op", func(t *testing.T) {
		_, err := infix.EvalString("3 +")
		var uerr *infix.UnderflowError
		require.ErrorAs(t, err, &uerr)
	})
	t.Run("leading-op", func(t *testing.T) {
		_, err := infix.EvalString("- 1")
		var uerr *infix.UnderflowError
		require.ErrorAs(t, err, &uerr)
	})
	t.Run("empty", func(t *testing.T) {
		_, err := infix.EvalString("")
		var eerr *infix.EmptyExpressionError
		require.ErrorAs(t, err, &eerr)
	})
	t.Run("empty-parens", func(t *testing.T) {
		_, err := infix.EvalString("( )")
		var eerr *infix.EmptyExpressionError
		require.ErrorAs(t, err, &eerr)
		require.Equal(t, ")", eerr.End)
	})
	t.Run("pow-negative-base", func(t *testing.T) {
		_, err := infix.EvalString("( 0 - 1 ) ^ 2")
		var xerr *infix.DomainError
		require.ErrorAs(t, err, &xerr)
		require.Equal(t, "^", xerr.Op)
	})
	t.Run("inf-minus-inf", func(t *testing.T) {
		_, err := infix.EvalString("0 - 1e999999999 + 1e999999999")
		var xerr *infix.DomainError
		require.ErrorAs(t, err, &xerr)
	})
}

// Every input error carries the rune column of the offending token.
func TestEvalErrorPositions(t *testing.T) {
	cases := []struct {
		src string
		pos int
	}{
		{"3 @ 4", 4},
		{"10 / 0", 4},
		{"( 1 + 2", 1},
		{"1 + 2 )", 7},
		{"1 2", 3},
		// The * reduces the two available operands first, so it is the +
		// that comes up short.
		{"1 + * 2", 3},
	}
	for _, c := range cases {
		_, err := infix.EvalString(c.src)
		require.Error(t, err, "evaluating %q", c.src)
		ierr, ok := err.(infix.InputError)
		require.True(t, ok, "error from %q is %#v, not InputError", c.src, err)
		require.Equal(t, c.pos, ierr.Pos(), "evaluating %q", c.src)
	}
}

func TestEvalIdempotent(t *testing.T) {
	const src = "( 3 + 4 ) * 2 ^ 3"
	a, err := infix.EvalString(src)
	require.NoError(t, err)
	b, err := infix.EvalString(src)
	require.NoError(t, err)
	require.Zero(t, a.Cmp(b))
}

func TestEvalPrec(t *testing.T) {
	r, err := infix.EvalString("1 / 3")
	require.NoError(t, err)
	require.Equal(t, uint(64), r.Prec())
	r, err = infix.EvalString("1 / 3", infix.Prec(128))
	require.NoError(t, err)
	require.Equal(t, uint(128), r.Prec())
}

func TestEvalReader(t *testing.T) {
	r, err := infix.Eval(strings.NewReader("6 / ( 1 + 2 )"))
	require.NoError(t, err)
	f, _ := r.Float64()
	require.Equal(t, 2.0, f)
}

func BenchmarkEval(b *testing.B) {
	b.Run("flat", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			infix.EvalString("2 + 3 * 4 - 5 / 6")
		}
	})
	b.Run("parens", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			infix.EvalString("( ( 2 + 3 ) * ( 4 - 5 ) ) / 6")
		}
	})
}
