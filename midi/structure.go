package midi

import (
	"math"

	"github.com/connorsmacd/Cbb/fraction"
	"github.com/connorsmacd/Cbb/metre"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
	"golang.org/x/exp/slices"
)

var (
	ErrUnsupportedTimeFormat = errors.New("midi: only metric tick time formats are supported")
	ErrUnsupportedMeter      = errors.New("midi: time signature cannot be stored in a midi file")
)

const microsecondsPerMinute = 60000000

type metaEvent struct {
	tick  uint64
	meter *metre.TimeSignature
	tempo *metre.Tempo
}

func sortMetaEvents(events []metaEvent) {
	// a meter at the same tick as a tempo is applied first so the tempo
	// lands in the bar the meter opens
	slices.SortStableFunc(events, func(a, b metaEvent) bool {
		if a.tick != b.tick {
			return a.tick < b.tick
		}
		return a.meter != nil && b.meter == nil
	})
}

// exactTempo recovers the whole number of microseconds per quarter stored in
// the file and returns the tempo as an exact fraction.
func exactTempo(bpm float64) (metre.Tempo, bool) {
	if bpm <= 0 || math.IsInf(bpm, 0) || math.IsNaN(bpm) {
		return fraction.Undefined, false
	}
	mpqn := int64(math.Round(microsecondsPerMinute / bpm))
	if mpqn <= 0 {
		return fraction.Undefined, false
	}
	return fraction.New(microsecondsPerMinute, mpqn).Reduce(), true
}

// ReadStructure collects the meter and tempo events of every track into a
// structure starting from the given defaults. A meter event inside a bar
// takes effect at the next bar line.
func ReadStructure(s *smf.SMF, ts metre.TimeSignature, tempo metre.Tempo) (*metre.Structure, error) {
	tpq, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok || tpq == 0 {
		return nil, errors.Wrapf(ErrUnsupportedTimeFormat, "got %v", s.TimeFormat)
	}

	var events []metaEvent
	for _, track := range s.Tracks {
		var absTicks uint64
		for _, evt := range track {
			absTicks += uint64(evt.Delta)

			var num, denom uint8
			var bpm float64
			switch {
			case evt.Message.GetMetaMeter(&num, &denom):
				meter := metre.TimeSignature{Top: int(num), Bottom: int(denom)}
				events = append(events, metaEvent{tick: absTicks, meter: &meter})
			case evt.Message.GetMetaTempo(&bpm):
				exact, ok := exactTempo(bpm)
				if !ok {
					return nil, errors.Wrapf(metre.ErrInvalidTempo, "tempo event at tick %d", absTicks)
				}
				events = append(events, metaEvent{tick: absTicks, tempo: &exact})
			}
		}
	}
	sortMetaEvents(events)

	st, err := metre.NewStructure(ts, tempo)
	if err != nil {
		return nil, errors.Wrap(err, "invalid default structure")
	}
	for _, evt := range events {
		pos := TicksToPosition(st, tpq, evt.tick)
		if evt.meter != nil {
			bar := pos.Bar()
			if !pos.Offset().IsZero() {
				bar++
			}
			if err := st.AddTimeSignatureChange(bar, *evt.meter); err != nil {
				return nil, errors.Wrapf(err, "meter event at tick %d", evt.tick)
			}
			continue
		}
		if err := st.AddTempoChange(pos, *evt.tempo); err != nil {
			return nil, errors.Wrapf(err, "tempo event at tick %d", evt.tick)
		}
	}
	return st, nil
}

func checkMeter(ts metre.TimeSignature) error {
	if _, err := ts.BeatUnit(); err != nil {
		return errors.Wrapf(ErrUnsupportedMeter, "%v", ts)
	}
	if ts.Top > math.MaxUint8 || ts.Bottom > math.MaxUint8 {
		return errors.Wrapf(ErrUnsupportedMeter, "%v does not fit in a byte", ts)
	}
	return nil
}

// WriteStructure builds a single track file holding the meter and tempo
// changes of st.
func WriteStructure(st *metre.Structure, ticksPerQuarter uint16) (*smf.SMF, error) {
	tpq := smf.MetricTicks(ticksPerQuarter)
	if tpq == 0 {
		return nil, errors.Wrap(ErrUnsupportedTimeFormat, "zero ticks per quarter")
	}

	var events []metaEvent
	for _, c := range st.TimeSignatureChanges() {
		meter := c.Value
		if err := checkMeter(meter); err != nil {
			return nil, err
		}
		tick, err := PositionToTicks(st, tpq, c.Position)
		if err != nil {
			return nil, err
		}
		events = append(events, metaEvent{tick: tick, meter: &meter})
	}
	for _, c := range st.TempoChanges() {
		tempo := c.Value
		tick, err := PositionToTicks(st, tpq, c.Position)
		if err != nil {
			return nil, err
		}
		events = append(events, metaEvent{tick: tick, tempo: &tempo})
	}
	sortMetaEvents(events)

	var track smf.Track
	var lastTick uint64
	for _, evt := range events {
		gap := evt.tick - lastTick
		if gap > math.MaxUint32 {
			return nil, errors.Wrapf(ErrUnrepresentablePosition, "%d ticks between events at tick %d", gap, evt.tick)
		}
		delta := uint32(gap)
		lastTick = evt.tick
		if evt.meter != nil {
			track = append(track, smf.Event{Delta: delta, Message: smf.MetaMeter(uint8(evt.meter.Top), uint8(evt.meter.Bottom))})
			continue
		}
		track = append(track, smf.Event{Delta: delta, Message: smf.MetaTempo(evt.tempo.Float64())})
	}
	track.Close(0)

	s := smf.New()
	s.TimeFormat = tpq
	if err := s.Add(track); err != nil {
		return nil, errors.Wrap(err, "error adding conductor track")
	}
	return s, nil
}
