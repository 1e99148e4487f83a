// Package powerof2 restricts a fraction to exact powers of two.
//
// Multiplying or dividing two powers stays inside the type; every other
// combination degrades to a plain fraction.Fraction.
package powerof2

import (
	"errors"
	"fmt"

	"github.com/connorsmacd/Cbb/fraction"
	"github.com/connorsmacd/Cbb/util"
)

var ErrNotPowerOf2 = errors.New("powerof2: value must be a positive integer power of two or its reciprocal")

// PowerOf2 is 2^exponent. The zero value is 1.
type PowerOf2 struct {
	exponent int
}

func FromExponent(exponent int) PowerOf2 {
	return PowerOf2{exponent: exponent}
}

// FromFraction accepts any representation of 2^n, e.g. 8/1, 2/32 or -1/-4.
func FromFraction(f fraction.Fraction) (PowerOf2, error) {
	r := f.Reduce()
	if !r.IsPositive() {
		return PowerOf2{}, fmt.Errorf("%w: %v", ErrNotPowerOf2, f)
	}
	// a positive reduced fraction has both components positive
	switch {
	case r.Den() == 1 && util.IsPowerOf2(r.Num()):
		return PowerOf2{exponent: util.Log2(r.Num())}, nil
	case r.Num() == 1 && util.IsPowerOf2(r.Den()):
		return PowerOf2{exponent: -util.Log2(r.Den())}, nil
	}
	return PowerOf2{}, fmt.Errorf("%w: %v", ErrNotPowerOf2, f)
}

// MustFromFraction panics on invalid input. Meant for constants.
func MustFromFraction(f fraction.Fraction) PowerOf2 {
	p, err := FromFraction(f)
	if err != nil {
		panic(err)
	}
	return p
}

func (p PowerOf2) Exponent() int { return p.exponent }

func (p PowerOf2) Value() fraction.Fraction {
	return fraction.Pow2(p.exponent)
}

func (p PowerOf2) String() string {
	return p.Value().String()
}

func (p PowerOf2) Mul(o PowerOf2) PowerOf2 {
	return PowerOf2{exponent: p.exponent + o.exponent}
}

func (p PowerOf2) Div(o PowerOf2) PowerOf2 {
	return PowerOf2{exponent: p.exponent - o.exponent}
}

func (p PowerOf2) Neg() fraction.Fraction {
	return p.Value().Neg()
}

func (p PowerOf2) Add(o PowerOf2) fraction.Fraction {
	return p.Value().Add(o.Value())
}

func (p PowerOf2) Sub(o PowerOf2) fraction.Fraction {
	return p.Value().Sub(o.Value())
}

func (p PowerOf2) Mod(o PowerOf2) fraction.Fraction {
	return p.Value().Mod(o.Value())
}

func (p PowerOf2) AddFraction(f fraction.Fraction) fraction.Fraction {
	return p.Value().Add(f)
}

func (p PowerOf2) SubFraction(f fraction.Fraction) fraction.Fraction {
	return p.Value().Sub(f)
}

func (p PowerOf2) MulFraction(f fraction.Fraction) fraction.Fraction {
	return p.Value().Mul(f)
}

func (p PowerOf2) DivFraction(f fraction.Fraction) fraction.Fraction {
	return p.Value().Div(f)
}

func (p PowerOf2) ModFraction(f fraction.Fraction) fraction.Fraction {
	return p.Value().Mod(f)
}

func (p PowerOf2) Equal(o PowerOf2) bool          { return p.exponent == o.exponent }
func (p PowerOf2) Less(o PowerOf2) bool           { return p.exponent < o.exponent }
func (p PowerOf2) LessOrEqual(o PowerOf2) bool    { return p.exponent <= o.exponent }
func (p PowerOf2) Greater(o PowerOf2) bool        { return p.exponent > o.exponent }
func (p PowerOf2) GreaterOrEqual(o PowerOf2) bool { return p.exponent >= o.exponent }

// The *Fraction comparisons follow fraction semantics, so they are all false
// against an undefined fraction.
func (p PowerOf2) EqualFraction(f fraction.Fraction) bool {
	return p.Value().Equal(f)
}

func (p PowerOf2) LessFraction(f fraction.Fraction) bool {
	return p.Value().Less(f)
}

func (p PowerOf2) LessOrEqualFraction(f fraction.Fraction) bool {
	return p.Value().LessOrEqual(f)
}

func (p PowerOf2) GreaterFraction(f fraction.Fraction) bool {
	return p.Value().Greater(f)
}

func (p PowerOf2) GreaterOrEqualFraction(f fraction.Fraction) bool {
	return p.Value().GreaterOrEqual(f)
}
