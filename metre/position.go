// Package metre places musical time on a grid of bars and tracks how time
// signatures and tempos change along it.
package metre

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/connorsmacd/Cbb/fraction"
)

var (
	ErrUndefinedOffset = errors.New("metre: offset is undefined")
	ErrNegativeOffset  = errors.New("metre: offset is negative")
	ErrPositionSyntax  = errors.New("metre: invalid position syntax")
)

// Position is a point in musical time: a bar number plus an offset into
// that bar measured in whole notes. The zero value is the origin.
type Position struct {
	bar    int64
	offset fraction.Fraction
}

// Origin is the start of bar 0.
var Origin = Position{}

// Bar is the start of bar n.
func Bar(n int64) Position {
	return Position{bar: n, offset: fraction.Zero}
}

func NewPosition(bar int64, offset fraction.Fraction) (Position, error) {
	if offset.IsUndefined() {
		return Position{}, fmt.Errorf("%w: bar %d", ErrUndefinedOffset, bar)
	}
	if offset.IsNegative() {
		return Position{}, fmt.Errorf("%w: %v in bar %d", ErrNegativeOffset, offset, bar)
	}
	return Position{bar: bar, offset: offset}, nil
}

func MustPosition(bar int64, offset fraction.Fraction) Position {
	pos, err := NewPosition(bar, offset)
	if err != nil {
		panic(err)
	}
	return pos
}

func (p Position) Bar() int64 { return p.bar }

func (p Position) Offset() fraction.Fraction {
	if p.offset.IsUndefined() {
		return fraction.Zero
	}
	return p.offset
}

// Compare orders by bar, then by offset value. It returns -1, 0 or 1.
func (p Position) Compare(o Position) int {
	switch {
	case p.bar < o.bar:
		return -1
	case p.bar > o.bar:
		return 1
	}
	po, oo := p.Offset(), o.Offset()
	switch {
	case po.Less(oo):
		return -1
	case po.Greater(oo):
		return 1
	}
	return 0
}

func (p Position) Equal(o Position) bool          { return p.Compare(o) == 0 }
func (p Position) Less(o Position) bool           { return p.Compare(o) < 0 }
func (p Position) LessOrEqual(o Position) bool    { return p.Compare(o) <= 0 }
func (p Position) Greater(o Position) bool        { return p.Compare(o) > 0 }
func (p Position) GreaterOrEqual(o Position) bool { return p.Compare(o) >= 0 }

// String renders "bar:offset", e.g. "12:3/8".
func (p Position) String() string {
	return fmt.Sprintf("%d:%v", p.bar, p.Offset())
}

// ParsePosition reads the String form "bar:offset". A bare bar number is the
// start of that bar.
func ParsePosition(s string) (Position, error) {
	barText, offsetText, found := strings.Cut(s, ":")
	bar, err := strconv.ParseInt(strings.TrimSpace(barText), 10, 64)
	if err != nil {
		return Position{}, fmt.Errorf("%w: %q", ErrPositionSyntax, s)
	}
	if !found {
		return Bar(bar), nil
	}
	offset, err := fraction.Parse(offsetText)
	if err != nil {
		return Position{}, fmt.Errorf("%w: %q", ErrPositionSyntax, s)
	}
	return NewPosition(bar, offset)
}
