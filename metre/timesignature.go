package metre

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/connorsmacd/Cbb/fraction"
	"github.com/connorsmacd/Cbb/notevalue"
	"github.com/connorsmacd/Cbb/powerof2"
)

var ErrInvalidTimeSignature = errors.New("metre: invalid time signature")

// TimeSignature is Top beats of the note value 1/Bottom per bar.
type TimeSignature struct {
	Top    int
	Bottom int
}

func ParseTimeSignature(s string) (TimeSignature, error) {
	topText, bottomText, found := strings.Cut(s, "/")
	if !found {
		return TimeSignature{}, fmt.Errorf("%w: %q", ErrInvalidTimeSignature, s)
	}
	top, err := strconv.Atoi(strings.TrimSpace(topText))
	if err != nil {
		return TimeSignature{}, fmt.Errorf("%w: %q", ErrInvalidTimeSignature, s)
	}
	bottom, err := strconv.Atoi(strings.TrimSpace(bottomText))
	if err != nil {
		return TimeSignature{}, fmt.Errorf("%w: %q", ErrInvalidTimeSignature, s)
	}
	ts := TimeSignature{Top: top, Bottom: bottom}
	if !ts.IsValid() {
		return TimeSignature{}, fmt.Errorf("%w: %q", ErrInvalidTimeSignature, s)
	}
	return ts, nil
}

// IsValid requires both numbers to be positive.
func (ts TimeSignature) IsValid() bool {
	return ts.Top > 0 && ts.Bottom > 0
}

// BeatUnit is the note value named by Bottom, which has to be a power of two.
func (ts TimeSignature) BeatUnit() (notevalue.NoteValue, error) {
	base, err := powerof2.FromFraction(fraction.New(1, int64(ts.Bottom)))
	if err != nil {
		return notevalue.NoteValue{}, fmt.Errorf("%w: %v has no beat unit", ErrInvalidTimeSignature, ts)
	}
	return notevalue.New(base), nil
}

// BarLength is the length of one bar in whole notes.
func (ts TimeSignature) BarLength() fraction.Fraction {
	return fraction.New(int64(ts.Top), int64(ts.Bottom))
}

func (ts TimeSignature) Equal(o TimeSignature) bool {
	return ts.Top == o.Top && ts.Bottom == o.Bottom
}

func (ts TimeSignature) String() string {
	return fmt.Sprintf("%d/%d", ts.Top, ts.Bottom)
}

func (ts TimeSignature) MarshalText() ([]byte, error) {
	return []byte(ts.String()), nil
}

func (ts *TimeSignature) UnmarshalText(text []byte) error {
	parsed, err := ParseTimeSignature(string(text))
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}
