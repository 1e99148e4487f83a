package notevalue

import (
	"fmt"
	"strings"

	"github.com/connorsmacd/Cbb/fraction"
	"golang.org/x/exp/slices"
)

// Tied is a non-empty sequence of note values whose durations add up. The
// zero value holds a single whole note.
type Tied struct {
	values []NoteValue
}

func NewTied(first NoteValue, rest ...NoteValue) Tied {
	values := make([]NoteValue, 0, len(rest)+1)
	values = append(values, first)
	values = append(values, rest...)
	return Tied{values: values}
}

// TiedFrom copies values. An empty slice is rejected with ErrEmpty.
func TiedFrom(values []NoteValue) (Tied, error) {
	if len(values) == 0 {
		return Tied{}, ErrEmpty
	}
	return Tied{values: slices.Clone(values)}, nil
}

func (t *Tied) items() []NoteValue {
	if len(t.values) == 0 {
		t.values = []NoteValue{{}}
	}
	return t.values
}

func (t *Tied) Append(values ...NoteValue) *Tied {
	t.values = append(t.items(), values...)
	return t
}

func (t *Tied) AppendTied(o Tied) *Tied {
	return t.Append(o.Values()...)
}

func (t *Tied) Prepend(values ...NoteValue) *Tied {
	t.values = slices.Insert(t.items(), 0, values...)
	return t
}

func (t *Tied) PrependTied(o Tied) *Tied {
	return t.Prepend(o.Values()...)
}

// At is the bounds-checked accessor.
func (t Tied) At(i int) (NoteValue, error) {
	items := t.items()
	if i < 0 || i >= len(items) {
		return NoteValue{}, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(items))
	}
	return items[i], nil
}

// Index skips the bounds check of At and panics like a slice index when i
// is out of range.
func (t Tied) Index(i int) NoteValue {
	return t.items()[i]
}

func (t Tied) Len() int       { return len(t.items()) }
func (t Tied) IsSingle() bool { return t.Len() == 1 }
func (t Tied) IsTied() bool   { return t.Len() > 1 }

// Values returns a copy of the sequence.
func (t Tied) Values() []NoteValue {
	return slices.Clone(t.items())
}

// Value is the sum of the constituent values.
func (t Tied) Value() fraction.Fraction {
	sum := fraction.Zero
	for _, nv := range t.items() {
		sum = sum.Add(nv.Value())
	}
	return sum
}

func (t Tied) Equal(o Tied) bool          { return t.Value().Equal(o.Value()) }
func (t Tied) NotEqual(o Tied) bool       { return !t.Equal(o) }
func (t Tied) Less(o Tied) bool           { return t.Value().Less(o.Value()) }
func (t Tied) LessOrEqual(o Tied) bool    { return t.Value().LessOrEqual(o.Value()) }
func (t Tied) Greater(o Tied) bool        { return t.Value().Greater(o.Value()) }
func (t Tied) GreaterOrEqual(o Tied) bool { return t.Value().GreaterOrEqual(o.Value()) }

func (t Tied) EqualNoteValue(nv NoteValue) bool {
	return t.Value().Equal(nv.Value())
}

func (t Tied) String() string {
	parts := make([]string, 0, t.Len())
	for _, nv := range t.items() {
		parts = append(parts, nv.String())
	}
	return strings.Join(parts, " + ")
}
