package parsemath

import (
	"math"
	"strings"
)

// Expr is a compiled expression. It is immutable, so it is safe to evaluate
// concurrently.
type Expr struct {
	// n is the root node of the expression.
	n *node
	// p is the configuration the expression was parsed with. It decides how
	// evaluation treats division by zero.
	p parsectx
}

// Eval evaluates the expression. The result is the same as evaluating the
// source text with the package-level Eval.
func (e *Expr) Eval() (float64, error) {
	ev := evaluator{p: e.p}
	r := e.n.eval(&ev)
	if ev.err != nil {
		return 0, ev.err
	}
	return r, nil
}

// String creates a string representation of the parsed expression, with
// alternating round and square brackets grouping each term.
func (e *Expr) String() string {
	var b strings.Builder
	e.n.fmt(&b, false)
	return b.String()
}

// eval computes the node's value. Arithmetic errors are recorded in ev, so
// that the first error in evaluation order is the one reported, exactly as
// when evaluating during parsing.
func (n *node) eval(ev *evaluator) float64 {
	switch n.kind {
	case nodeNum:
		return ev.num(n.num)
	case nodeNeg:
		return ev.neg(n.left.eval(ev))
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow:
		l := n.left.eval(ev)
		r := n.right.eval(ev)
		return ev.binary(n.kind, l, r, n.col)
	default:
		panic("parsemath: invalid AST node " + n.kind.String())
	}
}

// evaluator computes values as the parser recognizes them. After an
// arithmetic error it stops computing and keeps the first error, leaving the
// parser to finish checking the syntax of the rest of the input.
type evaluator struct {
	p   parsectx
	err error
}

func (ev *evaluator) num(v float64) float64 {
	return v
}

func (ev *evaluator) neg(x float64) float64 {
	return -x
}

func (ev *evaluator) binary(kind nodeKind, l, r float64, col int) float64 {
	if ev.err != nil {
		return 0
	}
	v, err := ev.p.arith(kind, l, r, col)
	if err != nil {
		ev.err = err
		return 0
	}
	return v
}

// arith applies a binary operator. col is the position of the operator.
func (p parsectx) arith(kind nodeKind, l, r float64, col int) (float64, error) {
	var v float64
	switch kind {
	case nodeAdd:
		v = l + r
	case nodeSub:
		v = l - r
	case nodeMul:
		v = l * r
	case nodeDiv:
		if r == 0 && !p.ieee {
			return 0, &UnableToParseError{Col: col, Desc: ErrDivisionByZero.Error(), Err: ErrDivisionByZero}
		}
		v = l / r
	case nodePow:
		// 0^-n is a division by zero in disguise.
		if l == 0 && r < 0 && !p.ieee {
			return 0, &UnableToParseError{Col: col, Desc: ErrDivisionByZero.Error(), Err: ErrDivisionByZero}
		}
		v = math.Pow(l, r)
	default:
		panic("parsemath: invalid binary operator " + kind.String())
	}
	if math.IsNaN(v) && !p.ieee {
		return 0, &UnableToParseError{Col: col, Desc: ErrNotANumber.Error(), Err: ErrNotANumber}
	}
	return v, nil
}
