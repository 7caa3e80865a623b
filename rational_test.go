package qalqulator

import (
	"errors"
	"math"
	"math/big"
	"testing"
)

func TestFracReduces(t *testing.T) {
	for n := int64(-12); n <= 12; n++ {
		for d := int64(-12); d <= 12; d++ {
			if d == 0 {
				continue
			}
			r := Frac(n, d)
			if r.d().Sign() <= 0 {
				t.Errorf("%d/%d has non-positive denominator %v", n, d, r.d())
			}
			var g big.Int
			g.GCD(nil, nil, new(big.Int).Abs(r.n()), r.d())
			if g.Cmp(one) != 0 {
				t.Errorf("%d/%d reduced to %v, which has gcd %v", n, d, r, &g)
			}
			if got, want := r.Float64(), float64(n)/float64(d); got != want {
				t.Errorf("%d/%d is %v but should be %v", n, d, got, want)
			}
		}
	}
}

func TestFracZeroDenominator(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Frac(1, 0) didn't panic")
		}
	}()
	Frac(1, 0)
}

func TestNewRational(t *testing.T) {
	r, err := NewRational(big.NewInt(6), big.NewInt(-4))
	if err != nil {
		t.Fatal(err)
	}
	if got := r.String(); got != "-3/2" {
		t.Errorf("6/-4 should be -3/2, got %s", got)
	}
	if _, err := NewRational(big.NewInt(1), big.NewInt(0)); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("1/0 should be division by zero, got %v", err)
	}
	big1 := new(big.Int).Lsh(one, 127)
	if _, err := NewRational(big1, big.NewInt(1)); !errors.Is(err, ErrOverflow) {
		t.Errorf("2^127 should overflow, got %v", err)
	}
	// Out-of-range parts are fine if they reduce into range.
	r, err = NewRational(big1, big.NewInt(2))
	if err != nil {
		t.Errorf("2^127/2 should be 2^126, got %v", err)
	}
	if r.Num().Cmp(new(big.Int).Lsh(one, 126)) != 0 || !r.IsInt() {
		t.Errorf("2^127/2 should be 2^126, got %v", r)
	}
}

func TestRationalZeroValue(t *testing.T) {
	var z Rational
	if z.String() != "0" || z.Sign() != 0 || !z.IsInt() || z.Float64() != 0 {
		t.Errorf("zero value is not 0: %v", z)
	}
	r, err := z.Add(Frac(1, 2))
	if err != nil {
		t.Fatal(err)
	}
	if r.Cmp(Frac(1, 2)) != 0 {
		t.Errorf("0 + 1/2 should be 1/2, got %v", r)
	}
}

func TestRationalArith(t *testing.T) {
	type op func(Rational, Rational) (Rational, error)
	var (
		add op = Rational.Add
		sub op = Rational.Sub
		mul op = Rational.Mul
		quo op = Rational.Quo
		rem op = Rational.Rem
	)
	cases := []struct {
		name string
		f    op
		a, b Rational
		want string
	}{
		{"add", add, Frac(1, 3), Frac(1, 6), "1/2"},
		{"add-int", add, Frac(2, 1), Frac(3, 1), "5"},
		{"add-neg", add, Frac(1, 3), Frac(-1, 3), "0"},
		{"sub", sub, Frac(1, 2), Frac(3, 4), "-1/4"},
		{"mul", mul, Frac(2, 3), Frac(9, 4), "3/2"},
		{"mul-neg", mul, Frac(-2, 3), Frac(-3, 2), "1"},
		{"quo", quo, Frac(1, 2), Frac(1, 4), "2"},
		{"quo-neg", quo, Frac(1, 2), Frac(-3, 1), "-1/6"},
		{"rem", rem, Frac(7, 1), Frac(3, 1), "1"},
		{"rem-frac", rem, Frac(7, 2), Frac(1, 1), "1/2"},
		{"rem-frac-divisor", rem, Frac(5, 1), Frac(3, 2), "1/2"},
		// The remainder truncates toward zero, so its sign follows the
		// dividend rather than landing in [0, divisor).
		{"rem-neg-dividend", rem, Frac(-7, 1), Frac(3, 1), "-1"},
		{"rem-neg-divisor", rem, Frac(7, 1), Frac(-3, 1), "1"},
		{"rem-neg-frac", rem, Frac(-7, 2), Frac(1, 1), "-1/2"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := c.f(c.a, c.b)
			if err != nil {
				t.Fatal(err)
			}
			if got := r.String(); got != c.want {
				t.Errorf("want %s, got %s", c.want, got)
			}
		})
	}
}

func TestRationalDivisionByZero(t *testing.T) {
	var zero Rational
	if _, err := Frac(1, 2).Quo(zero); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("1/2 / 0 should be division by zero, got %v", err)
	}
	if _, err := Frac(1, 2).Rem(zero); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("1/2 %% 0 should be division by zero, got %v", err)
	}
	if _, err := zero.Pow(Frac(-1, 1)); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("0^-1 should be division by zero, got %v", err)
	}
}

func TestRationalOverflow(t *testing.T) {
	hi, err := NewRational(maxInt, one)
	if err != nil {
		t.Fatal(err)
	}
	lo, err := NewRational(minInt, one)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := hi.Add(Frac(1, 1)); !errors.Is(err, ErrOverflow) {
		t.Errorf("hi+1 should overflow, got %v", err)
	}
	if _, err := lo.Sub(Frac(1, 1)); !errors.Is(err, ErrOverflow) {
		t.Errorf("lo-1 should overflow, got %v", err)
	}
	if r, err := lo.Neg(); err != nil || r.Cmp(hi) != 0 {
		t.Errorf("-lo should be hi, got %v, %v", r, err)
	}
	if _, err := hi.Mul(Frac(2, 1)); !errors.Is(err, ErrOverflow) {
		t.Errorf("hi*2 should overflow, got %v", err)
	}
	if _, err := hi.Quo(Frac(2, 1)); err != nil {
		t.Errorf("hi/2 is in range, got %v", err)
	}
	if _, err := Frac(1, 2).Quo(hi); !errors.Is(err, ErrOverflow) {
		t.Errorf("1/2 / hi should overflow, got %v", err)
	}
	r, err := hi.Sub(hi)
	if err != nil || r.Sign() != 0 {
		t.Errorf("hi-hi should be 0, got %v, %v", r, err)
	}
	r, err = hi.Neg()
	if err != nil {
		t.Fatal(err)
	}
	if r.Cmp(lo) != 0 {
		t.Errorf("-hi should be lo, got %v", r)
	}
	if _, err := r.Sub(Frac(1, 1)); !errors.Is(err, ErrOverflow) {
		t.Errorf("-hi-1 should overflow, got %v", err)
	}
}

func TestRationalCmp(t *testing.T) {
	vals := []Rational{Frac(-3, 1), Frac(-1, 2), Frac(-1, 3), {}, Frac(1, 3), Frac(1, 2), Frac(2, 3), Frac(7, 1)}
	for i, a := range vals {
		for j, b := range vals {
			want := 0
			switch {
			case i < j:
				want = -1
			case i > j:
				want = 1
			}
			if got := a.Cmp(b); got != want {
				t.Errorf("%v cmp %v: want %d, got %d", a, b, want, got)
			}
		}
	}
}

func TestRationalPow(t *testing.T) {
	cases := []struct {
		name string
		b, e Rational
		want string
	}{
		{"cube", Frac(1, 2), Frac(3, 1), "1/8"},
		{"zero", Frac(5, 7), Frac(0, 1), "1"},
		{"zero-zero", Frac(0, 1), Frac(0, 1), "1"},
		{"neg-exp", Frac(2, 1), Frac(-2, 1), "1/4"},
		{"neg-exp-frac", Frac(2, 3), Frac(-2, 1), "9/4"},
		{"neg-base-odd", Frac(-2, 1), Frac(3, 1), "-8"},
		{"neg-base-even", Frac(-2, 1), Frac(2, 1), "4"},
		{"neg-base-neg-exp", Frac(-2, 3), Frac(-3, 1), "-27/8"},
		{"one-huge", Frac(1, 1), Frac(math.MaxInt64, 1), "1"},
		{"minus-one-huge-odd", Frac(-1, 1), Frac(math.MaxInt64, 1), "-1"},
		{"minus-one-huge-even", Frac(-1, 1), Frac(math.MaxInt64-1, 1), "1"},
		{"126", Frac(2, 1), Frac(126, 1), "85070591730234615865843651857942052864"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := c.b.Pow(c.e)
			if err != nil {
				t.Fatal(err)
			}
			if !r.IsExact() {
				t.Errorf("integer power should be exact, got %v", r)
			}
			if got := r.String(); got != c.want {
				t.Errorf("want %s, got %s", c.want, got)
			}
		})
	}
}

func TestRationalPowOverflow(t *testing.T) {
	cases := []struct {
		name string
		b, e Rational
	}{
		{"127", Frac(2, 1), Frac(127, 1)},
		{"1000", Frac(2, 1), Frac(1000, 1)},
		{"den", Frac(1, 2), Frac(200, 1)},
		{"neg", Frac(3, 1), Frac(-100, 1)},
		{"huge", Frac(2, 1), Frac(math.MaxInt64, 1)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if r, err := c.b.Pow(c.e); !errors.Is(err, ErrOverflow) {
				t.Errorf("%v^%v should overflow, got %v, %v", c.b, c.e, r, err)
			}
		})
	}
}

func TestRationalPowFraction(t *testing.T) {
	r, err := Frac(2, 1).Pow(Frac(1, 2))
	if err != nil {
		t.Fatal(err)
	}
	if r.IsExact() {
		t.Fatalf("2^(1/2) should be a float, got exact %v", r)
	}
	if d := math.Abs(r.Float64() - math.Sqrt2); d > 1e-15 {
		t.Errorf("2^(1/2) should be about %v, got %v", math.Sqrt2, r)
	}
	r, err = Frac(-8, 1).Pow(Frac(1, 3))
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsNaN(r.Float64()) {
		t.Errorf("(-8)^(1/3) should be NaN, got %v", r)
	}
}

func TestRationalString(t *testing.T) {
	cases := []struct {
		r    Rational
		want string
	}{
		{Frac(0, 5), "0"},
		{Frac(10, 5), "2"},
		{Frac(-10, 4), "-5/2"},
		{Frac(3, -9), "-1/3"},
	}
	for _, c := range cases {
		if got := c.r.String(); got != c.want {
			t.Errorf("want %s, got %s", c.want, got)
		}
	}
}
