package qalqulator

import (
	"math"
	"math/big"
	"strconv"

	"github.com/zephyrtronium/bigfloat"
)

// Kind distinguishes exact numbers from approximate ones.
type Kind int8

const (
	// KindExact is a Rational.
	KindExact Kind = iota
	// KindFloat is a float64.
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindExact:
		return "exact"
	case KindFloat:
		return "float"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Number is the result of evaluating an expression: either an exact Rational
// or an approximate float64. Operations on two exact numbers stay exact where
// they can; anything involving a float is a float. The zero value is exact 0.
type Number struct {
	kind Kind
	r    Rational
	f    float64
}

// Exact wraps a Rational.
func Exact(r Rational) Number {
	return Number{kind: KindExact, r: r}
}

// Float wraps a float64.
func Float(f float64) Number {
	return Number{kind: KindFloat, f: f}
}

// Kind returns whether x is exact or a float.
func (x Number) Kind() Kind {
	return x.kind
}

// IsExact is shorthand for x.Kind() == KindExact.
func (x Number) IsExact() bool {
	return x.kind == KindExact
}

// Rational returns the exact value of x. The second result is false if x is
// a float.
func (x Number) Rational() (Rational, bool) {
	return x.r, x.kind == KindExact
}

// Float64 returns x as a float64, approximating it if it is exact.
func (x Number) Float64() float64 {
	switch x.kind {
	case KindExact:
		return x.r.Float64()
	case KindFloat:
		return x.f
	default:
		panic("qalqulator: invalid number kind " + x.kind.String())
	}
}

// String formats exact numbers as "n" or "n/d" and floats as their shortest
// decimal representation without an exponent.
func (x Number) String() string {
	switch x.kind {
	case KindExact:
		return x.r.String()
	case KindFloat:
		return formatFloat(x.f)
	default:
		panic("qalqulator: invalid number kind " + x.kind.String())
	}
}

func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "NaN"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// neg negates x, keeping its kind.
func (x Number) neg() (Number, error) {
	switch x.kind {
	case KindExact:
		r, err := x.r.Neg()
		if err != nil {
			return Number{}, err
		}
		return Exact(r), nil
	case KindFloat:
		return Float(-x.f), nil
	default:
		panic("qalqulator: invalid number kind " + x.kind.String())
	}
}

// powprec is the precision in bits for fractional powers before rounding to
// float64.
const powprec = 128

// powFloat computes x^y. Fractional powers of positive bases whose results
// are within float64 range are computed at extended precision and rounded
// once; everything else uses math.Pow.
func powFloat(x, y float64) float64 {
	switch {
	case math.IsNaN(x), math.IsNaN(y), math.IsInf(x, 0), math.IsInf(y, 0):
		return math.Pow(x, y)
	case x <= 0, y == math.Trunc(y):
		return math.Pow(x, y)
	case math.Abs(y*math.Log(x)) > 700:
		// Overflow and underflow are math.Pow's business.
		return math.Pow(x, y)
	}
	var bx, by big.Float
	bx.SetPrec(powprec).SetFloat64(x)
	by.SetPrec(powprec).SetFloat64(y)
	z := new(big.Float).SetPrec(powprec)
	bigfloat.Pow(z, &bx, &by)
	f, _ := z.Float64()
	return f
}
