package notevalue

import (
	"fmt"
	"math/bits"

	"github.com/connorsmacd/Cbb/fraction"
	"github.com/connorsmacd/Cbb/powerof2"
	"github.com/connorsmacd/Cbb/util"
)

// FromValue finds a single note value lasting v.
//
// The reduced v is written as 2^k * a/b with a and b odd. The numerator a
// must have the form 2^(d+1) - 1, which fixes d dots. The odd denominator
// b becomes the tuplet, so tuplets are always odd (triplets, quintuplets,
// ...) and an even tuplet such as a sextuplet is never chosen.
func FromValue(v fraction.Fraction) (NoteValue, error) {
	r := v.Reduce()
	if !r.IsPositive() {
		return NoteValue{}, fmt.Errorf("%w: %v", ErrNotRepresentable, v)
	}
	kn, a := util.SplitPowerOf2(r.Num())
	kd, b := util.SplitPowerOf2(r.Den())
	k := kn - kd

	if !util.IsPowerOf2(uint64(a) + 1) {
		return NoteValue{}, fmt.Errorf("%w: %v", ErrNotRepresentable, v)
	}
	dots := util.Log2(uint64(a)+1) - 1
	if dots > MaxDots {
		return NoteValue{}, fmt.Errorf("%w: %v", ErrNotRepresentable, v)
	}

	nv := NewDotted(powerof2.FromExponent(k+dots), uint(dots))
	if b != 1 {
		nv = NewTuplet(powerof2.FromExponent(k+dots-1), Tuplet(b), uint(dots))
	}
	if !nv.Value().Equal(r) {
		return NoteValue{}, fmt.Errorf("%w: %v", ErrNotRepresentable, v)
	}
	return nv, nil
}

// TiedFromValue decomposes v into tied note values.
//
// The odd part b of the reduced denominator is used as the tuplet of every
// note (duplet when b is 1). What remains, v*b/2, has a power-of-two
// denominator; its binary expansion is cut into maximal runs of adjacent
// set bits and each run becomes one dotted note. Notes come out longest
// first, e.g. 5/8 is a half tied to an eighth and 7/8 a double-dotted half.
func TiedFromValue(v fraction.Fraction) (Tied, error) {
	r := v.Reduce()
	if !r.IsPositive() {
		return Tied{}, fmt.Errorf("%w: %v", ErrNotRepresentable, v)
	}
	m, b := util.SplitPowerOf2(r.Den())
	tuplet := Duplet
	if b != 1 {
		tuplet = Tuplet(b)
		m++
	}

	num := uint64(r.Num())
	var values []NoteValue
	for num != 0 {
		high := bits.Len64(num) - 1
		run := 0
		for run <= high && num&(uint64(1)<<(high-run)) != 0 {
			num &^= uint64(1) << (high - run)
			run++
		}
		base := powerof2.FromExponent(high - m)
		values = append(values, NewTuplet(base, tuplet, uint(run-1)))
	}
	tied, err := TiedFrom(values)
	if err != nil {
		return Tied{}, err
	}
	if !tied.Value().Equal(r) {
		return Tied{}, fmt.Errorf("%w: %v", ErrNotRepresentable, v)
	}
	return tied, nil
}
