package qalqulator

import (
	"math/big"
	"strings"
)

// node is a node in the abstract syntax tree of a line.
type node struct {
	kind nodeKind

	// name is the variable for nodeName and nodeBind.
	name string
	// num is the value of nodeNum.
	num Rational

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum  // num
	nodeName // lookup(name)
	nodeBind // evaluate left, store as name

	nodeNeg   // evaluate left, then negate
	nodeAdd   // evaluate left, add right
	nodeSub   // evaluate left, sub right
	nodeMul   // evaluate left, mul right
	nodeDiv   // evaluate left, div by right
	nodeMod   // evaluate left, rem by right
	nodePow   // evaluate left, exp by right
	nodeFloat // evaluate left, convert to float
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=nodeKind -trimprefix=node

// String formats the tree with every term in parentheses. A binding can only
// appear at the root, so its name is written outside them.
func (n *node) String() string {
	var b strings.Builder
	if n.kind == nodeBind {
		b.WriteString(n.name)
		b.WriteString(" = ")
		n = n.left
	}
	n.fmt(&b)
	return b.String()
}

var binsyms = [...]string{
	nodeAdd: " + ",
	nodeSub: " - ",
	nodeMul: " * ",
	nodeDiv: " / ",
	nodeMod: " % ",
	nodePow: " ^ ",
}

func (n *node) fmt(b *strings.Builder) {
	b.WriteByte('(')
	defer b.WriteByte(')')
	switch n.kind {
	case nodeNone:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
		if n.left != nil {
			n.left.fmt(b)
		}
		b.WriteByte('#')
		if n.right != nil {
			n.right.fmt(b)
		}
		b.WriteByte('$')
	case nodeNum:
		b.WriteString(decimal(n.num))
	case nodeName:
		b.WriteString(n.name)
	case nodeBind:
		b.WriteString(n.name)
		b.WriteString(" = ")
		n.left.fmt(b)
	case nodeNeg:
		b.WriteByte('-')
		n.left.fmt(b)
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodeMod, nodePow:
		n.left.fmt(b)
		b.WriteString(binsyms[n.kind])
		n.right.fmt(b)
	case nodeFloat:
		b.WriteString(FloatMarker)
		n.left.fmt(b)
	default:
		panic("qalqulator: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

// decimal formats r as a decimal literal if its denominator divides a power
// of ten that fits in a literal, or as n/d otherwise.
func decimal(r Rational) string {
	if r.IsInt() {
		return r.String()
	}
	d := r.d()
	p := big.NewInt(1)
	var m big.Int
	k := 0
	for {
		if k >= 38 {
			return r.String()
		}
		p.Mul(p, ten)
		k++
		if m.Rem(p, d).Sign() == 0 {
			break
		}
	}
	digits := new(big.Int).Mul(r.n(), p)
	digits.Quo(digits, d)
	neg := digits.Sign() < 0
	s := digits.Abs(digits).String()
	if len(s) <= k {
		s = strings.Repeat("0", k-len(s)+1) + s
	}
	s = s[:len(s)-k] + "." + s[len(s)-k:]
	if neg {
		s = "-" + s
	}
	return s
}
