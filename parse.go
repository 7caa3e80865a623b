package qalqulator

import (
	"math/big"
	"strings"
)

// Expr is a parsed line that can be evaluated with an environment.
type Expr struct {
	// n is the root node of the expression.
	n *node
	// names is the list of variable names used in the expression.
	names []string
}

// Parse parses a line so it can be evaluated with an environment. The error,
// if any, is an InputError.
func Parse(src string) (*Expr, error) {
	l, err := ParseLine(src)
	if err != nil {
		return nil, err
	}
	return Build(l)
}

// Build resolves the precedence of the operators in a parsed line and
// produces its expression tree. The error, if any, is an InputError.
func Build(l *Line) (*Expr, error) {
	b := builder{names: make(map[string]bool)}
	var n *node
	var err error
	switch {
	case l.Binding != nil:
		var v *node
		v, err = b.expr(l.Binding.Value)
		n = &node{kind: nodeBind, name: l.Binding.Name, left: v}
	case l.Expr != nil:
		n, err = b.expr(l.Expr)
	default:
		panic("qalqulator: empty line syntax")
	}
	if err != nil {
		return nil, err
	}
	ex := Expr{
		n:     n,
		names: make([]string, 0, len(b.names)),
	}
	for k := range b.names {
		ex.names = append(ex.names, k)
	}
	sortstrs(ex.names)
	return &ex, nil
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}

// builder holds data for building one expression tree.
type builder struct {
	// names is the set of variable names that have been seen this parse.
	names map[string]bool
}

// terms is a cursor over the tail of an Expression.
type terms struct {
	v []*Term
	k int
}

func (b *builder) expr(e *Expression) (*node, error) {
	lhs, err := b.unary(e.Head)
	if err != nil {
		return nil, err
	}
	return b.climb(&terms{v: e.Tail}, lhs, exprprec)
}

// climb folds terms into lhs for as long as their operators are more binding
// than until. Each operator's right operand takes every following term that
// binds more tightly than the operator itself.
func (b *builder) climb(ts *terms, lhs *node, until operator) (*node, error) {
	for ts.k < len(ts.v) {
		t := ts.v[ts.k]
		prec := binop(t.Op)
		if prec.op == nodeNone {
			panic("qalqulator: lexer produced unknown operator " + t.Op)
		}
		if !prec.moreBinding(until) {
			return lhs, nil
		}
		ts.k++
		rhs, err := b.unary(t.Operand)
		if err != nil {
			return nil, err
		}
		rhs, err = b.climb(ts, rhs, prec)
		if err != nil {
			return nil, err
		}
		lhs = &node{kind: prec.op, left: lhs, right: rhs}
	}
	return lhs, nil
}

func (b *builder) unary(u *Unary) (*node, error) {
	n, err := b.primary(u.Primary)
	if err != nil {
		return nil, err
	}
	if u.Neg {
		n = &node{kind: nodeNeg, left: n}
	}
	return n, nil
}

func (b *builder) primary(p *Primary) (*node, error) {
	switch {
	case p.Number != nil:
		r, err := parsenum(*p.Number)
		if err != nil {
			return nil, &LiteralError{Col: p.Pos.Column, Text: *p.Number}
		}
		return &node{kind: nodeNum, num: r}, nil
	case p.Ident != nil:
		b.names[*p.Ident] = true
		return &node{kind: nodeName, name: *p.Ident}, nil
	case p.Group != nil:
		return b.expr(p.Group)
	case p.Float != nil:
		n, err := b.expr(p.Float)
		if err != nil {
			return nil, err
		}
		return &node{kind: nodeFloat, left: n}, nil
	default:
		panic("qalqulator: empty primary syntax")
	}
}

// parsenum converts a number literal to an exact value. Underscores are
// ignored; a literal with k fractional digits is its digits over 10^k.
func parsenum(text string) (Rational, error) {
	digits := strings.ReplaceAll(text, "_", "")
	den := big.NewInt(1)
	if k := strings.IndexByte(digits, '.'); k >= 0 {
		den.Exp(ten, big.NewInt(int64(len(digits)-k-1)), nil)
		digits = digits[:k] + digits[k+1:]
	}
	num, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		panic("qalqulator: lexer produced invalid number " + text)
	}
	if !inRange(num) || !inRange(den) {
		return Rational{}, ErrOverflow
	}
	return reduce(num, den)
}

// Vars returns the variable names used when evaluating the expression. The
// name assigned by a binding is not included unless the value uses it.
func (e *Expr) Vars() []string {
	return append(([]string)(nil), e.names...)
}

// Binding returns the name the expression assigns, if it is a binding.
func (e *Expr) Binding() (string, bool) {
	if e.n.kind != nodeBind {
		return "", false
	}
	return e.n.name, true
}

// String creates a string representation of the parsed expression, with
// parentheses grouping each term. The result parses to the same tree.
func (e *Expr) String() string {
	return e.n.String()
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// op is the node kind to use when this operator is selected.
	op nodeKind
}

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets a binary operator for a token string. The empty string is
// implicit multiplication. If there is no such binary operator, then the
// result has an op of nodeNone.
func binop(text string) operator {
	switch text {
	case "+":
		return operator{1, false, nodeAdd}
	case "-":
		return operator{1, false, nodeSub}
	case "*", "":
		return operator{5, false, nodeMul}
	case "/":
		return operator{5, false, nodeDiv}
	case "%":
		return operator{5, false, nodeMod}
	case "^":
		return operator{15, true, nodePow}
	default:
		return operator{}
	}
}

// exprprec is the precedence required to parse an entire subexpression.
var exprprec = operator{-128, true, nodeNone}
