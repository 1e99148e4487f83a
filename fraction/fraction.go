// Package fraction implements an exact rational number over int64 with two
// notions of equality.
//
// A Fraction keeps the symbolic form it was written in: 2/4 and 1/2 are
// different representations of the same value, as are 3/-4 and -3/4. Value
// comparisons (Equal, Less, ...) look at the number, SymbolicallyEqual looks
// at the pair.
//
// A zero denominator marks the value undefined. Undefined values are
// ordinary values: arithmetic on them never fails, but every value
// comparison involving one is false, including Equal(u, u).
package fraction

import (
	"math/big"

	"github.com/connorsmacd/Cbb/util"
)

type Fraction struct {
	num int64
	den int64
}

var (
	Zero      = Fraction{0, 1}
	One       = Fraction{1, 1}
	Undefined = Fraction{0, 0}
)

// maxPow2Exponent is the largest n with 2^n representable in an int64.
const maxPow2Exponent = 62

// New builds num/den exactly as written. No reduction or sign handling is
// performed.
func New(num, den int64) Fraction {
	return Fraction{num: num, den: den}
}

func FromInt(n int64) Fraction {
	return Fraction{num: n, den: 1}
}

// Pow2 returns 2^exp. Exponents beyond the int64 range give Undefined.
func Pow2(exp int) Fraction {
	if exp > maxPow2Exponent || exp < -maxPow2Exponent {
		return Undefined
	}
	if exp >= 0 {
		return Fraction{int64(1) << exp, 1}
	}
	return Fraction{1, int64(1) << -exp}
}

func (f Fraction) Num() int64 { return f.num }
func (f Fraction) Den() int64 { return f.den }

// Reduce divides both components by their gcd and removes a pair of
// negative signs. A single negative sign stays where it is, so 3/-6 reduces
// to 1/-2.
func (f Fraction) Reduce() Fraction {
	g := util.Gcd(f.num, f.den)
	if g == 0 {
		return f
	}
	res := Fraction{f.num / g, f.den / g}
	if res.num < 0 && res.den < 0 {
		res.num, res.den = -res.num, -res.den
	}
	return res
}

// Reciprocal swaps the components. The reciprocal of a zero is undefined.
func (f Fraction) Reciprocal() Fraction {
	return Fraction{f.den, f.num}
}

func (f Fraction) Neg() Fraction {
	return Fraction{-f.num, f.den}
}

// Add uses the lcm of the denominators. The result is not reduced.
func (f Fraction) Add(o Fraction) Fraction {
	lcm := util.Lcm(f.den, o.den)
	if lcm == 0 {
		return Fraction{f.num*o.den + o.num*f.den, 0}
	}
	return Fraction{f.num*(lcm/f.den) + o.num*(lcm/o.den), lcm}
}

func (f Fraction) Sub(o Fraction) Fraction {
	return f.Add(o.Neg())
}

func (f Fraction) Mul(o Fraction) Fraction {
	return Fraction{f.num * o.num, f.den * o.den}
}

func (f Fraction) Div(o Fraction) Fraction {
	return f.Mul(o.Reciprocal())
}

// Mod returns f - o*floor(f/o), so a non-zero result has the sign of o.
// It is undefined when either side is undefined or o is zero.
func (f Fraction) Mod(o Fraction) Fraction {
	if f.IsUndefined() || o.IsUndefined() || o.num == 0 {
		return Undefined
	}
	a, b := f.positiveDen(), o.positiveDen()
	// f/o = (a.num*b.den) / (a.den*b.num)
	n := a.num * b.den
	d := a.den * b.num
	q := n / d
	if (n%d != 0) && ((n < 0) != (d < 0)) {
		q--
	}
	return Fraction{n - q*d, a.den * b.den}.Reduce()
}

func (f Fraction) IsUndefined() bool { return f.den == 0 }
func (f Fraction) IsDefined() bool   { return f.den != 0 }
func (f Fraction) IsZero() bool      { return f.num == 0 && f.den != 0 }

// IsPositive looks at both signs: -1/-6 is positive.
func (f Fraction) IsPositive() bool {
	return (f.num > 0 && f.den > 0) || (f.num < 0 && f.den < 0)
}

func (f Fraction) IsNegative() bool {
	return (f.num < 0 && f.den > 0) || (f.num > 0 && f.den < 0)
}

func (f Fraction) IsInteger() bool {
	return f.den != 0 && f.num%f.den == 0
}

// IsUnitFraction reports whether the value is 1/n for some positive n.
func (f Fraction) IsUnitFraction() bool {
	r := f.Reduce()
	return r.IsPositive() && util.Abs(r.num) == 1
}

func (f Fraction) Float64() float64 {
	return float64(f.num) / float64(f.den)
}

func (f Fraction) Equal(o Fraction) bool {
	c, ok := compare(f, o)
	return ok && c == 0
}

func (f Fraction) NotEqual(o Fraction) bool {
	return !f.Equal(o)
}

func (f Fraction) Less(o Fraction) bool {
	c, ok := compare(f, o)
	return ok && c < 0
}

func (f Fraction) LessOrEqual(o Fraction) bool {
	c, ok := compare(f, o)
	return ok && c <= 0
}

func (f Fraction) Greater(o Fraction) bool {
	c, ok := compare(f, o)
	return ok && c > 0
}

func (f Fraction) GreaterOrEqual(o Fraction) bool {
	c, ok := compare(f, o)
	return ok && c >= 0
}

// SymbolicallyEqual compares the written pair, so 1/2 and 2/4 differ while
// two identical undefined values are equal.
func (f Fraction) SymbolicallyEqual(o Fraction) bool {
	return f.num == o.num && f.den == o.den
}

func (f Fraction) positiveDen() Fraction {
	if f.den < 0 {
		return Fraction{-f.num, -f.den}
	}
	return f
}

// compare cross-multiplies in big.Int so large components cannot overflow.
// ok is false when either side is undefined.
func compare(l, r Fraction) (int, bool) {
	if l.IsUndefined() || r.IsUndefined() {
		return 0, false
	}
	ln, ld := big.NewInt(l.num), big.NewInt(l.den)
	rn, rd := big.NewInt(r.num), big.NewInt(r.den)
	if ld.Sign() < 0 {
		ln.Neg(ln)
		ld.Neg(ld)
	}
	if rd.Sign() < 0 {
		rn.Neg(rn)
		rd.Neg(rd)
	}
	return new(big.Int).Mul(ln, rd).Cmp(new(big.Int).Mul(rn, ld)), true
}
