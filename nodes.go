package parsemath

import (
	"strconv"
	"strings"
)

// node is a node in the syntax tree of a compiled expression.
type node struct {
	kind nodeKind
	// num is the value of a nodeNum.
	num float64
	// col is the position of the operator token, used for errors found
	// during evaluation.
	col int

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum // literal

	nodeNeg // -left
	nodeAdd // left + right
	nodeSub // left - right
	nodeMul // left * right
	nodeDiv // left / right
	nodePow // left ^ right
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=nodeKind -trimprefix=node

// binaryKinds maps binary operator tokens to node kinds.
var binaryKinds = map[TokenKind]nodeKind{
	TokenAdd:      nodeAdd,
	TokenSubtract: nodeSub,
	TokenMultiply: nodeMul,
	TokenDivide:   nodeDiv,
	TokenCaret:    nodePow,
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

func (n *node) fmt(b *strings.Builder, square bool) {
	lb, rb := byte('('), byte(')')
	if square {
		lb, rb = '[', ']'
	}
	b.WriteByte(lb)
	defer b.WriteByte(rb)
	switch n.kind {
	case nodeNum:
		b.WriteString(strconv.FormatFloat(n.num, 'g', -1, 64))
	case nodeNeg:
		b.WriteByte('-')
		n.left.fmt(b, !square)
	case nodeAdd:
		n.binary(b, square, " + ")
	case nodeSub:
		n.binary(b, square, " - ")
	case nodeMul:
		n.binary(b, square, " * ")
	case nodeDiv:
		n.binary(b, square, " / ")
	case nodePow:
		n.binary(b, square, " ^ ")
	default:
		panic("parsemath: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

func (n *node) binary(b *strings.Builder, square bool, op string) {
	n.left.fmt(b, !square)
	b.WriteString(op)
	n.right.fmt(b, !square)
}
