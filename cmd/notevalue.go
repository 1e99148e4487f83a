package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/connorsmacd/Cbb/fraction"
	"github.com/connorsmacd/Cbb/model"
	"github.com/connorsmacd/Cbb/notevalue"
	"github.com/connorsmacd/Cbb/powerof2"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var tupletsByName = func() map[string]notevalue.Tuplet {
	res := make(map[string]notevalue.Tuplet)
	for t := notevalue.Duplet; t <= notevalue.Decuplet; t++ {
		res[t.String()] = t
	}
	return res
}()

func tupletNames() []string {
	names := maps.Keys(tupletsByName)
	slices.Sort(names)
	return names
}

// parseTuplet accepts a name such as "triplet" or a number of at least 2.
func parseTuplet(s string) (notevalue.Tuplet, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if t, ok := tupletsByName[s]; ok {
		return t, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < int(notevalue.Duplet) {
		return 0, fmt.Errorf("unknown tuplet %q, use a number from 2 up or one of %s", s, strings.Join(tupletNames(), ", "))
	}
	return notevalue.Tuplet(n), nil
}

func parseBase(s string) (powerof2.PowerOf2, error) {
	f, err := fraction.Parse(s)
	if err != nil {
		return powerof2.PowerOf2{}, err
	}
	return powerof2.FromFraction(f)
}

func parseNoteValue(base, tuplet string, dots uint) (notevalue.NoteValue, error) {
	b, err := parseBase(base)
	if err != nil {
		return notevalue.NoteValue{}, err
	}
	t, err := parseTuplet(tuplet)
	if err != nil {
		return notevalue.NoteValue{}, err
	}
	if dots > notevalue.MaxDots {
		return notevalue.NoteValue{}, fmt.Errorf("at most %d dots are supported", notevalue.MaxDots)
	}
	return notevalue.NewTuplet(b, t, dots), nil
}

func toModelNoteValue(nv notevalue.NoteValue) model.NoteValue {
	return model.NoteValue{
		Symbol: nv.String(),
		Base:   nv.Base().Value(),
		Tuplet: int(nv.Tuplet()),
		Dots:   nv.Dots(),
		Value:  nv.Value().Reduce(),
	}
}
