// Package qalqulator implements an exact rational calculator.
//
// Numbers are fractions in lowest terms until something forces them not to
// be: "0.1 + 0.2" is exactly 3/10, and "(1/2)^3" is exactly 1/8. A fractional
// power such as "2^(1/2)" has no exact answer and becomes a float, as does
// anything computed from a float afterward. "~(x)" converts x to a float
// explicitly.
//
// Operators are + and - below *, /, and %, below right-associative ^. A minus
// sign in front of an operand binds tightest of all, so "-2^2" is 4.
// Adjacent operands multiply: with x = 3, "2x" is 6.
//
// A line of the form "name = expr" evaluates expr and binds the result in
// the Env, so later lines can use it.
//
// Exact arithmetic is checked. Results whose numerator or denominator would
// not fit in a 128-bit signed integer are errors wrapping ErrOverflow.
package qalqulator
