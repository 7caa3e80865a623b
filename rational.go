package qalqulator

import (
	"math/big"

	"github.com/pkg/errors"
)

var (
	// ErrDivisionByZero is the cause of errors from dividing by, taking the
	// remainder modulo, or raising to a negative power the rational zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrOverflow is the cause of errors from exact results whose reduced
	// numerator or denominator does not fit in a 128-bit signed integer.
	ErrOverflow = errors.New("integer overflow")
)

var (
	one = big.NewInt(1)
	ten = big.NewInt(10)
	// maxInt and minInt bound numerators and denominators to a 128-bit
	// signed integer. The range is symmetric so that every value can be
	// negated and written back as a literal.
	maxInt = new(big.Int).Sub(new(big.Int).Lsh(one, 127), one)
	minInt = new(big.Int).Neg(maxInt)
)

func inRange(x *big.Int) bool {
	return x.Cmp(minInt) >= 0 && x.Cmp(maxInt) <= 0
}

// Rational is an exact fraction. It is always in lowest terms with a positive
// denominator, and both parts fit in 128 bits. Rationals are immutable; every
// operation returns a new value. The zero value is 0.
type Rational struct {
	num, den *big.Int
}

// Frac creates the rational num/den in lowest terms. Panics if den is zero.
func Frac(num, den int64) Rational {
	r, err := reduce(big.NewInt(num), big.NewInt(den))
	if err != nil {
		panic("qalqulator: Frac with zero denominator")
	}
	return r
}

// NewRational creates the rational num/den in lowest terms. The result is an
// error wrapping ErrDivisionByZero if den is zero, or ErrOverflow if the
// reduced fraction does not fit in 128 bits. num and den are not retained.
func NewRational(num, den *big.Int) (Rational, error) {
	return reduce(new(big.Int).Set(num), new(big.Int).Set(den))
}

// reduce brings num/den to lowest terms, taking ownership of both.
func reduce(num, den *big.Int) (Rational, error) {
	if den.Sign() == 0 {
		return Rational{}, ErrDivisionByZero
	}
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	var g big.Int
	g.GCD(nil, nil, new(big.Int).Abs(num), den)
	if g.Cmp(one) != 0 {
		num.Quo(num, &g)
		den.Quo(den, &g)
	}
	if !inRange(num) || !inRange(den) {
		return Rational{}, ErrOverflow
	}
	return Rational{num: num, den: den}, nil
}

// n and d return the numerator and denominator without copying, treating the
// zero value as 0/1. Callers must not modify the results.
func (r Rational) n() *big.Int {
	if r.num == nil {
		return new(big.Int)
	}
	return r.num
}

func (r Rational) d() *big.Int {
	if r.den == nil {
		return one
	}
	return r.den
}

// Num returns a copy of the numerator. Its sign is the sign of r.
func (r Rational) Num() *big.Int {
	return new(big.Int).Set(r.n())
}

// Denom returns a copy of the denominator, which is always positive.
func (r Rational) Denom() *big.Int {
	return new(big.Int).Set(r.d())
}

// IsInt returns whether the denominator of r is 1.
func (r Rational) IsInt() bool {
	return r.d().Cmp(one) == 0
}

// Sign returns -1, 0, or 1 according to the sign of r.
func (r Rational) Sign() int {
	return r.n().Sign()
}

// cross returns a*b.
func cross(a, b *big.Int) *big.Int {
	return new(big.Int).Mul(a, b)
}

// Add returns r + s.
func (r Rational) Add(s Rational) (Rational, error) {
	num := cross(r.n(), s.d())
	num.Add(num, cross(s.n(), r.d()))
	return reduce(num, cross(r.d(), s.d()))
}

// Sub returns r - s.
func (r Rational) Sub(s Rational) (Rational, error) {
	num := cross(r.n(), s.d())
	num.Sub(num, cross(s.n(), r.d()))
	return reduce(num, cross(r.d(), s.d()))
}

// Mul returns r * s.
func (r Rational) Mul(s Rational) (Rational, error) {
	return reduce(cross(r.n(), s.n()), cross(r.d(), s.d()))
}

// Quo returns r / s. The error wraps ErrDivisionByZero if s is zero.
func (r Rational) Quo(s Rational) (Rational, error) {
	return reduce(cross(r.n(), s.d()), cross(r.d(), s.n()))
}

// Rem returns the remainder of the cross-multiplied numerators over the
// common denominator, (r.num*s.den rem s.num*r.den) / (r.den*s.den). The
// remainder truncates, so the result has the sign of r.
func (r Rational) Rem(s Rational) (Rational, error) {
	if s.Sign() == 0 {
		return Rational{}, ErrDivisionByZero
	}
	num := cross(r.n(), s.d())
	num.Rem(num, cross(s.n(), r.d()))
	return reduce(num, cross(r.d(), s.d()))
}

// Neg returns -r. The range of Rational is symmetric, so the error is always
// nil.
func (r Rational) Neg() (Rational, error) {
	return reduce(new(big.Int).Neg(r.n()), new(big.Int).Set(r.d()))
}

// Cmp compares r and s, returning -1, 0, or 1.
func (r Rational) Cmp(s Rational) int {
	return cross(r.n(), s.d()).Cmp(cross(s.n(), r.d()))
}

// Float64 approximates r by dividing the float64 values nearest its
// numerator and denominator.
func (r Rational) Float64() float64 {
	n, _ := new(big.Float).SetInt(r.n()).Float64()
	d, _ := new(big.Float).SetInt(r.d()).Float64()
	return n / d
}

// Pow raises r to the power e. Integer exponents give an exact result;
// negative ones invert r first. Any other exponent gives a float computed
// from the approximations of r and e.
func (r Rational) Pow(e Rational) (Number, error) {
	if !e.IsInt() {
		return Float(powFloat(r.Float64(), e.Float64())), nil
	}
	num, den, k := r.n(), r.d(), e.n()
	if k.Sign() < 0 {
		num, den = den, num
		k = new(big.Int).Neg(k)
	}
	pn, err := ipow(num, k)
	if err != nil {
		return Number{}, err
	}
	pd, err := ipow(den, k)
	if err != nil {
		return Number{}, err
	}
	q, err := reduce(pn, pd)
	if err != nil {
		return Number{}, err
	}
	return Exact(q), nil
}

// ipow computes x^k for k >= 0 into a new integer.
func ipow(x, k *big.Int) (*big.Int, error) {
	switch {
	case k.Sign() == 0:
		return big.NewInt(1), nil
	case x.CmpAbs(one) <= 0:
		// 0, 1, and -1 stay within their own magnitude.
		z := new(big.Int).Set(x)
		if z.Sign() < 0 && k.Bit(0) == 0 {
			z.Neg(z)
		}
		return z, nil
	case !k.IsInt64() || k.Int64() >= 128:
		// |x| >= 2, so x^128 cannot fit.
		return nil, ErrOverflow
	}
	return new(big.Int).Exp(x, k, nil), nil
}

// String formats r as "n" if it is an integer or "n/d" otherwise.
func (r Rational) String() string {
	if r.IsInt() {
		return r.n().String()
	}
	return r.n().String() + "/" + r.d().String()
}
