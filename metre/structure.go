package metre

import (
	"errors"
	"fmt"

	"github.com/connorsmacd/Cbb/fraction"
)

var ErrInvalidTempo = errors.New("metre: tempo must be a positive number of beats per minute")

// Tempo is a number of beats per minute.
type Tempo = fraction.Fraction

// Structure is the metric map of a piece: time signatures that change at
// bar starts and tempos that change anywhere.
type Structure struct {
	timeSignatures *Timeline[TimeSignature]
	tempos         *Timeline[Tempo]
}

// NewStructure starts a structure with ts and tempo at the origin. Both are
// held to the same rules as later changes.
func NewStructure(ts TimeSignature, tempo Tempo) (*Structure, error) {
	if !ts.IsValid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeSignature, ts)
	}
	if !tempo.IsPositive() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTempo, tempo)
	}
	return &Structure{
		timeSignatures: NewTimeline(ts),
		tempos:         NewTimeline(tempo),
	}, nil
}

func MustStructure(ts TimeSignature, tempo Tempo) *Structure {
	st, err := NewStructure(ts, tempo)
	if err != nil {
		panic(err)
	}
	return st
}

func (s *Structure) AddTimeSignatureChange(bar int64, ts TimeSignature) error {
	if !ts.IsValid() {
		return fmt.Errorf("%w: %v", ErrInvalidTimeSignature, ts)
	}
	return s.timeSignatures.Add(Bar(bar), ts)
}

func (s *Structure) AddTempoChange(pos Position, tempo Tempo) error {
	if !tempo.IsPositive() {
		return fmt.Errorf("%w: %v", ErrInvalidTempo, tempo)
	}
	return s.tempos.Add(pos, tempo)
}

func (s *Structure) EraseTimeSignatureChangeAt(bar int64) bool {
	return s.timeSignatures.Erase(Bar(bar))
}

func (s *Structure) EraseTempoChangeAt(pos Position) bool {
	return s.tempos.Erase(pos)
}

func (s *Structure) TimeSignatureChanges() []Change[TimeSignature] {
	return s.timeSignatures.Changes()
}

func (s *Structure) TempoChanges() []Change[Tempo] {
	return s.tempos.Changes()
}

// LatestTimeSignatureChange only looks at the bar of pos; time signatures
// always change at the start of a bar.
func (s *Structure) LatestTimeSignatureChange(pos Position) Change[TimeSignature] {
	return s.timeSignatures.LatestAt(Bar(pos.Bar()))
}

func (s *Structure) LatestTempoChange(pos Position) Change[Tempo] {
	return s.tempos.LatestAt(pos)
}
