package metre

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
)

var ErrBeforeOrigin = errors.New("metre: position is before the origin")

// Change is a value taking effect at a position.
type Change[T any] struct {
	Position Position
	Value    T
}

// Timeline keeps changes sorted by position. There is always an entry at
// the origin; the zero Timeline holds the zero T there.
//
// A Timeline is not safe for concurrent mutation.
type Timeline[T any] struct {
	changes []Change[T]
}

func NewTimeline[T any](origin T) *Timeline[T] {
	return &Timeline[T]{changes: []Change[T]{{Position: Origin, Value: origin}}}
}

func (tl *Timeline[T]) items() []Change[T] {
	if len(tl.changes) == 0 {
		tl.changes = []Change[T]{{Position: Origin}}
	}
	return tl.changes
}

func (tl *Timeline[T]) search(pos Position) (int, bool) {
	return slices.BinarySearchFunc(tl.items(), Change[T]{Position: pos}, func(a, b Change[T]) int {
		return a.Position.Compare(b.Position)
	})
}

// Add inserts v at pos, replacing any change already there. Adding at the
// origin replaces the initial value.
func (tl *Timeline[T]) Add(pos Position, v T) error {
	if pos.Less(Origin) {
		return fmt.Errorf("%w: %v", ErrBeforeOrigin, pos)
	}
	i, found := tl.search(pos)
	if found {
		tl.changes[i].Value = v
		return nil
	}
	tl.changes = slices.Insert(tl.changes, i, Change[T]{Position: pos, Value: v})
	return nil
}

// Erase removes the change at pos. It reports false, leaving the timeline
// untouched, for the origin and anything before it or when nothing is
// stored at pos.
func (tl *Timeline[T]) Erase(pos Position) bool {
	if pos.LessOrEqual(Origin) {
		return false
	}
	i, found := tl.search(pos)
	if !found {
		return false
	}
	tl.changes = slices.Delete(tl.changes, i, i+1)
	return true
}

// Changes returns every change in ascending position order.
func (tl *Timeline[T]) Changes() []Change[T] {
	return slices.Clone(tl.items())
}

// LatestAt finds the last change at or before pos. Positions before the
// origin resolve to the origin.
func (tl *Timeline[T]) LatestAt(pos Position) Change[T] {
	i, found := tl.search(pos)
	switch {
	case found:
		return tl.changes[i]
	case i == 0:
		return tl.changes[0]
	}
	return tl.changes[i-1]
}

func (tl *Timeline[T]) Len() int {
	return len(tl.items())
}
