package midi

import (
	"github.com/connorsmacd/Cbb/fraction"
	"github.com/connorsmacd/Cbb/metre"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

var ErrUnrepresentablePosition = errors.New("midi: position is not a whole number of ticks")

func ticksPerWhole(tpq smf.MetricTicks) int64 {
	return 4 * int64(tpq)
}

// wholesBefore is the number of whole notes from the origin to the start of
// bar under the time signatures of st.
func wholesBefore(st *metre.Structure, bar int64) fraction.Fraction {
	total := fraction.Zero
	changes := st.TimeSignatureChanges()
	for i, c := range changes {
		start := c.Position.Bar()
		if start >= bar {
			break
		}
		end := bar
		if i+1 < len(changes) && changes[i+1].Position.Bar() < bar {
			end = changes[i+1].Position.Bar()
		}
		total = total.Add(fraction.FromInt(end - start).Mul(c.Value.BarLength())).Reduce()
	}
	return total
}

// PositionToTicks converts pos into an absolute tick count.
func PositionToTicks(st *metre.Structure, tpq smf.MetricTicks, pos metre.Position) (uint64, error) {
	if pos.Bar() < 0 {
		return 0, errors.Wrapf(ErrUnrepresentablePosition, "%v is before the origin", pos)
	}
	wholes := wholesBefore(st, pos.Bar()).Add(pos.Offset())
	ticks := wholes.Mul(fraction.FromInt(ticksPerWhole(tpq))).Reduce()
	if !ticks.IsInteger() || ticks.IsNegative() {
		return 0, errors.Wrapf(ErrUnrepresentablePosition, "%v at %d ticks per quarter", pos, tpq)
	}
	return uint64(ticks.Num() / ticks.Den()), nil
}

// TicksToPosition is the inverse of PositionToTicks.
func TicksToPosition(st *metre.Structure, tpq smf.MetricTicks, tick uint64) metre.Position {
	wholes := fraction.New(int64(tick), ticksPerWhole(tpq)).Reduce()
	changes := st.TimeSignatureChanges()

	segmentStart := fraction.Zero
	for i, c := range changes {
		barLength := c.Value.BarLength()
		if i+1 < len(changes) {
			next := changes[i+1].Position.Bar()
			segmentEnd := segmentStart.Add(fraction.FromInt(next - c.Position.Bar()).Mul(barLength)).Reduce()
			if wholes.GreaterOrEqual(segmentEnd) {
				segmentStart = segmentEnd
				continue
			}
		}
		into := wholes.Sub(segmentStart).Reduce()
		offset := into.Mod(barLength)
		bars := into.Sub(offset).Div(barLength).Reduce()
		return metre.MustPosition(c.Position.Bar()+bars.Num()/bars.Den(), offset)
	}
	// unreachable: a structure always holds a time signature at the origin
	return metre.Origin
}
