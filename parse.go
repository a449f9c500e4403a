package parsemath

import (
	"errors"
	"strconv"
)

// expression := term (('+' | '-') term)*
// term       := unary (('*' | '/') unary)*
// unary      := '-' unary | factor
// factor     := primary ('^' unary)?
// primary    := num | '(' expression ')'

// Parser parses and evaluates a single expression. It holds one token of
// lookahead. A Parser is not safe for concurrent use and can parse its input
// only once.
type Parser struct {
	scan *Tokenizer
	// cur is the most recently scanned token that the grammar has not yet
	// consumed.
	cur Token
	// col is the position of cur.
	col int
	p   parsectx
}

// NewParser creates a parser for expr and scans its first token. It returns an
// *InvalidOperatorError if expr is empty or begins with an invalid token.
func NewParser(expr string, opts ...ParseOption) (*Parser, error) {
	p := parseopts(opts)
	scan := NewTokenizer(expr)
	scan.implicit = p.implicit
	ps := &Parser{scan: scan, p: p}
	if err := ps.next(); err != nil {
		return nil, err
	}
	if ps.cur.Kind == TokenEOF {
		return nil, &InvalidOperatorError{Col: ps.col, Desc: "no expression"}
	}
	return ps, nil
}

// Eval parses and evaluates an expression.
func Eval(expr string, opts ...ParseOption) (float64, error) {
	ps, err := NewParser(expr, opts...)
	if err != nil {
		return 0, err
	}
	return ps.Parse()
}

// Compile parses an expression into a tree which can be evaluated later.
func Compile(expr string, opts ...ParseOption) (*Expr, error) {
	ps, err := NewParser(expr, opts...)
	if err != nil {
		return nil, err
	}
	return ps.Compile()
}

// Parse evaluates the expression while parsing it.
func (ps *Parser) Parse() (float64, error) {
	ev := evaluator{p: ps.p}
	r, err := parse[float64](ps, &ev)
	if err != nil {
		return 0, err
	}
	if ev.err != nil {
		return 0, ev.err
	}
	return r, nil
}

// Compile parses the expression into a tree.
func (ps *Parser) Compile() (*Expr, error) {
	n, err := parse[*node](ps, treebuilder{})
	if err != nil {
		return nil, err
	}
	return &Expr{n: n, p: ps.p}, nil
}

// next scans the next token into ps.cur. Any failure to produce a token is
// an *InvalidOperatorError.
func (ps *Parser) next() error {
	tok, err := ps.scan.Next()
	if err != nil {
		var le *LexError
		if errors.As(err, &le) {
			return &InvalidOperatorError{Col: le.Col, Desc: lexdesc(le), Err: le}
		}
		return &InvalidOperatorError{Col: ps.scan.Pos(), Desc: "no token after end of input", Err: err}
	}
	ps.cur, ps.col = tok, ps.scan.Pos()
	return nil
}

func lexdesc(err *LexError) string {
	if err.Kind == "" {
		return "invalid character " + strconv.Quote(err.Text)
	}
	s := "invalid " + err.Kind + " " + strconv.Quote(err.Text)
	if err.Err != nil {
		s += ": " + err.Err.Error()
	}
	return s
}

// builder creates the result of each grammar rule. Evaluating while parsing
// and compiling to a tree differ only in their builders.
type builder[T any] interface {
	num(v float64) T
	neg(x T) T
	// binary combines two operands. col is the position of the operator.
	binary(kind nodeKind, l, r T, col int) T
}

type treebuilder struct{}

func (treebuilder) num(v float64) *node {
	return &node{kind: nodeNum, num: v}
}

func (treebuilder) neg(x *node) *node {
	return &node{kind: nodeNeg, left: x}
}

func (treebuilder) binary(kind nodeKind, l, r *node, col int) *node {
	return &node{kind: kind, col: col, left: l, right: r}
}

var (
	_ builder[float64] = (*evaluator)(nil)
	_ builder[*node]   = treebuilder{}
)

// parse parses an entire input, which must end after one expression.
func parse[T any](ps *Parser, b builder[T]) (T, error) {
	r, err := expression(ps, b)
	if err != nil {
		return r, err
	}
	switch ps.cur.Kind {
	case TokenEOF:
		return r, nil
	case TokenRightParen:
		return r, &UnableToParseError{Col: ps.col, Desc: `close bracket ")" with no open bracket`}
	default:
		return r, &UnableToParseError{Col: ps.col, Desc: "unexpected " + ps.cur.text() + " after end of expression"}
	}
}

func expression[T any](ps *Parser, b builder[T]) (T, error) {
	l, err := term(ps, b)
	if err != nil {
		return l, err
	}
	for ps.cur.Kind == TokenAdd || ps.cur.Kind == TokenSubtract {
		op, col := ps.cur.Kind, ps.col
		if err := ps.next(); err != nil {
			return l, err
		}
		r, err := term(ps, b)
		if err != nil {
			return r, err
		}
		l = b.binary(binaryKinds[op], l, r, col)
	}
	return l, nil
}

func term[T any](ps *Parser, b builder[T]) (T, error) {
	l, err := unary(ps, b)
	if err != nil {
		return l, err
	}
	for {
		op, col := ps.cur.Kind, ps.col
		switch {
		case op == TokenMultiply, op == TokenDivide:
			if err := ps.next(); err != nil {
				return l, err
			}
		case op == TokenLeftParen && ps.p.implicit:
			// (parsed) (expr) -> (parsed) * (expr). The bracket starts the
			// right operand, so leave it for primary.
			op = TokenMultiply
		default:
			return l, nil
		}
		r, err := unary(ps, b)
		if err != nil {
			return r, err
		}
		l = b.binary(binaryKinds[op], l, r, col)
	}
}

// unary parses negation, which binds more loosely than exponentiation:
// -2^2 is -(2^2).
func unary[T any](ps *Parser, b builder[T]) (T, error) {
	if ps.cur.Kind != TokenSubtract {
		return factor(ps, b)
	}
	if err := ps.next(); err != nil {
		var zero T
		return zero, err
	}
	x, err := unary(ps, b)
	if err != nil {
		return x, err
	}
	return b.neg(x), nil
}

// factor parses exponentiation, which is right-associative. The exponent may
// be negated: x^-y^z is x^(-(y^z)).
func factor[T any](ps *Parser, b builder[T]) (T, error) {
	l, err := primary(ps, b)
	if err != nil {
		return l, err
	}
	if ps.cur.Kind != TokenCaret {
		return l, nil
	}
	col := ps.col
	if err := ps.next(); err != nil {
		return l, err
	}
	r, err := unary(ps, b)
	if err != nil {
		return r, err
	}
	return b.binary(nodePow, l, r, col), nil
}

func primary[T any](ps *Parser, b builder[T]) (T, error) {
	var zero T
	switch ps.cur.Kind {
	case TokenNum:
		r := b.num(ps.cur.Num)
		if err := ps.next(); err != nil {
			return zero, err
		}
		return r, nil
	case TokenLeftParen:
		open := ps.col
		if err := ps.next(); err != nil {
			return zero, err
		}
		r, err := expression(ps, b)
		if err != nil {
			return zero, err
		}
		if ps.cur.Kind != TokenRightParen {
			return zero, &UnableToParseError{
				Col:  ps.col,
				Desc: "open bracket at column " + strconv.Itoa(open) + " with no close bracket, found " + ps.cur.text(),
			}
		}
		if err := ps.next(); err != nil {
			return zero, err
		}
		return r, nil
	case TokenRightParen:
		return zero, &UnableToParseError{Col: ps.col, Desc: `no expression up to ")"`}
	case TokenEOF:
		return zero, &UnableToParseError{Col: ps.col, Desc: "no expression at end"}
	case TokenAdd, TokenMultiply, TokenDivide, TokenCaret:
		return zero, &InvalidOperatorError{Col: ps.col, Desc: "unexpected operator " + ps.cur.text() + " where a number was expected"}
	default:
		panic("parsemath: unknown token: " + ps.cur.String())
	}
}
