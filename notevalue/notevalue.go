// Package notevalue models note durations as a power-of-two base augmented
// by a tuplet and a number of dots, and tied sequences of them.
//
// Durations compare by relative value, where a whole note is 1. A quarter
// triplet and a half sextuplet both last 1/6, so Equal reports true for them
// while SymbolicallyEqual does not.
package notevalue

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/connorsmacd/Cbb/fraction"
	"github.com/connorsmacd/Cbb/powerof2"
	"github.com/connorsmacd/Cbb/util"
)

var (
	ErrNotRepresentable = errors.New("notevalue: value has no note value representation")
	ErrEmpty            = errors.New("notevalue: a tied note value cannot be empty")
	ErrIndexOutOfRange  = errors.New("notevalue: index out of range")
)

// Tuplet n fits n notes in the space of two of the next larger base.
type Tuplet int

const (
	Duplet Tuplet = iota + 2
	Triplet
	Quadruplet
	Quintuplet
	Sextuplet
	Septuplet
	Octuplet
	Nonuplet
	Decuplet
)

var tupletNames = map[Tuplet]string{
	Duplet:     "duplet",
	Triplet:    "triplet",
	Quadruplet: "quadruplet",
	Quintuplet: "quintuplet",
	Sextuplet:  "sextuplet",
	Septuplet:  "septuplet",
	Octuplet:   "octuplet",
	Nonuplet:   "nonuplet",
	Decuplet:   "decuplet",
}

func (t Tuplet) String() string {
	if name, ok := tupletNames[t]; ok {
		return name
	}
	return fmt.Sprintf("%d-tuplet", int(t))
}

// Factor is 2/t. Tuplets below 2 are undefined.
func (t Tuplet) Factor() fraction.Fraction {
	if t < Duplet {
		return fraction.Undefined
	}
	return fraction.New(2, int64(t))
}

// MaxDots is the number of value bits in the int64 accumulator minus one.
// Beyond it 2^dots no longer fits and the augmentation is undefined.
const MaxDots = 62

// DotAugmentation is 2 - 2^-dots, i.e. (2^(dots+1) - 1) / 2^dots.
func DotAugmentation(dots uint) fraction.Fraction {
	if dots > MaxDots {
		return fraction.Undefined
	}
	den := uint64(1) << dots
	return fraction.New(int64(den<<1-1), int64(den))
}

// NoteValue is a single notated duration. The zero value is an undotted
// whole note.
type NoteValue struct {
	base   powerof2.PowerOf2
	tuplet Tuplet
	dots   uint
}

func New(base powerof2.PowerOf2) NoteValue {
	return NoteValue{base: base, tuplet: Duplet}
}

func NewDotted(base powerof2.PowerOf2, dots uint) NoteValue {
	return NoteValue{base: base, tuplet: Duplet, dots: dots}
}

func NewTuplet(base powerof2.PowerOf2, tuplet Tuplet, dots uint) NoteValue {
	return NoteValue{base: base, tuplet: tuplet, dots: dots}
}

func (nv NoteValue) WithTuplet(t Tuplet) NoteValue {
	nv.tuplet = t
	return nv
}

func (nv NoteValue) WithDots(dots uint) NoteValue {
	nv.dots = dots
	return nv
}

func (nv NoteValue) Base() powerof2.PowerOf2 { return nv.base }
func (nv NoteValue) Dots() uint              { return nv.dots }

func (nv NoteValue) Tuplet() Tuplet {
	if nv.tuplet == 0 {
		return Duplet
	}
	return nv.tuplet
}

// Value is the duration relative to a whole note, base * 2/t * augmentation.
// It is built from its odd part (2^(dots+1) - 1)/t and a single power of two
// so that no intermediate product overflows. The result is reduced, and it
// is undefined only when the reduced value itself does not fit in int64.
func (nv NoteValue) Value() fraction.Fraction {
	t := nv.Tuplet()
	if t < Duplet || nv.dots > MaxDots {
		return fraction.Undefined
	}
	a := int64(uint64(1)<<(nv.dots+1) - 1)
	k, b := util.SplitPowerOf2(int64(t))
	g := util.Gcd(a, b)
	a, b = a/g, b/g

	p := nv.base.Exponent() + 1 - int(nv.dots) - k
	if p >= 0 {
		if p > 62 || a > math.MaxInt64>>p {
			return fraction.Undefined
		}
		return fraction.New(a<<p, b)
	}
	if -p > 62 || b > math.MaxInt64>>-p {
		return fraction.Undefined
	}
	return fraction.New(a, b<<-p)
}

func (nv NoteValue) IsDefined() bool {
	return nv.Value().IsDefined()
}

func (nv NoteValue) Equal(o NoteValue) bool          { return nv.Value().Equal(o.Value()) }
func (nv NoteValue) NotEqual(o NoteValue) bool       { return !nv.Equal(o) }
func (nv NoteValue) Less(o NoteValue) bool           { return nv.Value().Less(o.Value()) }
func (nv NoteValue) LessOrEqual(o NoteValue) bool    { return nv.Value().LessOrEqual(o.Value()) }
func (nv NoteValue) Greater(o NoteValue) bool        { return nv.Value().Greater(o.Value()) }
func (nv NoteValue) GreaterOrEqual(o NoteValue) bool { return nv.Value().GreaterOrEqual(o.Value()) }

// SymbolicallyEqual compares base, tuplet and dots.
func (nv NoteValue) SymbolicallyEqual(o NoteValue) bool {
	return nv.base.Equal(o.base) && nv.Tuplet() == o.Tuplet() && nv.dots == o.dots
}

// Ratio answers how many o fit in nv, e.g. a dotted half over an eighth
// triplet is 9.
func (nv NoteValue) Ratio(o NoteValue) fraction.Fraction {
	return nv.Value().Div(o.Value())
}

// Remainder is what is left of nv after the last whole o.
func (nv NoteValue) Remainder(o NoteValue) fraction.Fraction {
	return nv.Value().Mod(o.Value())
}

// Tie joins nv and others into a tied sequence.
func (nv NoteValue) Tie(others ...NoteValue) Tied {
	return NewTied(nv, others...)
}

// String renders base, tuplet and one '.' per dot, e.g. "1/8 triplet .".
func (nv NoteValue) String() string {
	var sb strings.Builder
	sb.WriteString(nv.base.String())
	if nv.Tuplet() != Duplet {
		sb.WriteString(" ")
		sb.WriteString(nv.Tuplet().String())
	}
	if nv.dots > 0 {
		sb.WriteString(" ")
		sb.WriteString(strings.Repeat(".", int(nv.dots)))
	}
	return sb.String()
}
