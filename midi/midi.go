// Package midi moves metric structures in and out of standard MIDI files.
//
// Tempos follow the SMF convention of quarter notes per minute.
package midi

import (
	"bytes"
	"os"

	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			s, e = &blank, errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return &blank, errors.Wrap(err, "error reading midi file")
	}

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return &blank, errors.Wrapf(err, "error parsing midi file %s", filepath)
	}

	return res, nil
}

func WriteMidiFile(s *smf.SMF, filepath string) error {
	f, err := os.Create(filepath)
	if err != nil {
		return errors.Wrap(err, "error creating midi file")
	}

	_, err = s.WriteTo(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return errors.Wrapf(err, "error writing midi file %s", filepath)
}
