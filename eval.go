package qalqulator

import (
	"math"
	"strconv"

	"github.com/pkg/errors"
)

// Eval evaluates an expression and returns the result. If the expression is
// a binding, its value is stored in env, but only once the whole value has
// been evaluated; a line that fails leaves env unchanged.
func (env *Env) Eval(e *Expr) (Number, error) {
	return e.n.eval(env)
}

// eval computes the node's value.
func (n *node) eval(env *Env) (Number, error) {
	switch n.kind {
	case nodeNum:
		return Exact(n.num), nil
	case nodeName:
		v, ok := env.Lookup(n.name)
		if !ok {
			return Number{}, &NameError{Name: n.name}
		}
		return v, nil
	case nodeBind:
		v, err := n.left.eval(env)
		if err != nil {
			return Number{}, err
		}
		env.Set(n.name, v)
		return v, nil
	case nodeNeg:
		v, err := n.left.eval(env)
		if err != nil {
			return Number{}, err
		}
		r, err := v.neg()
		if err != nil {
			return Number{}, errors.Wrapf(err, "-%v", v)
		}
		return r, nil
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodeMod, nodePow:
		l, err := n.left.eval(env)
		if err != nil {
			return Number{}, err
		}
		r, err := n.right.eval(env)
		if err != nil {
			return Number{}, err
		}
		v, err := arith(n.kind, l, r)
		if err != nil {
			return Number{}, errors.Wrapf(err, "%v%s%v", l, binsyms[n.kind], r)
		}
		return v, nil
	case nodeFloat:
		v, err := n.left.eval(env)
		if err != nil {
			return Number{}, err
		}
		return Float(v.Float64()), nil
	default:
		panic("qalqulator: invalid AST node " + n.kind.String())
	}
}

// arith applies a binary operator. Two exact operands give an exact result,
// except that a fractional power is a float. Otherwise, exact operands are
// converted to float.
func arith(op nodeKind, l, r Number) (Number, error) {
	if l.kind == KindExact && r.kind == KindExact {
		var q Rational
		var err error
		switch op {
		case nodeAdd:
			q, err = l.r.Add(r.r)
		case nodeSub:
			q, err = l.r.Sub(r.r)
		case nodeMul:
			q, err = l.r.Mul(r.r)
		case nodeDiv:
			q, err = l.r.Quo(r.r)
		case nodeMod:
			q, err = l.r.Rem(r.r)
		case nodePow:
			return l.r.Pow(r.r)
		default:
			panic("qalqulator: invalid arithmetic node " + op.String())
		}
		if err != nil {
			return Number{}, err
		}
		return Exact(q), nil
	}
	x, y := l.Float64(), r.Float64()
	switch op {
	case nodeAdd:
		return Float(x + y), nil
	case nodeSub:
		return Float(x - y), nil
	case nodeMul:
		return Float(x * y), nil
	case nodeDiv:
		return Float(x / y), nil
	case nodeMod:
		return Float(math.Mod(x, y)), nil
	case nodePow:
		return Float(powFloat(x, y)), nil
	default:
		panic("qalqulator: invalid arithmetic node " + op.String())
	}
}

// Run parses and evaluates one line of input with env.
func Run(line string, env *Env) (Number, error) {
	e, err := Parse(line)
	if err != nil {
		return Number{}, err
	}
	return env.Eval(e)
}

// EvalString is a shortcut to evaluate a line in a new environment created
// with the given options.
func EvalString(src string, opts ...EnvOption) (Number, error) {
	return Run(src, NewEnv(opts...))
}

// NameError is an error from a lookup for a variable that is missing from the
// environment.
type NameError struct {
	// Name is the name that was missing.
	Name string
}

func (err *NameError) Error() string {
	return "undefined variable: " + strconv.Quote(err.Name)
}
