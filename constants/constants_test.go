package constants

import (
	"testing"

	"github.com/connorsmacd/Cbb/fraction"
	"github.com/connorsmacd/Cbb/metre"
	"github.com/connorsmacd/Cbb/notevalue"
	"github.com/stretchr/testify/assert"
)

func TestPowersOfTwo(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(-8, OneTwoHundredFiftySixth.Exponent())
	assert.Equal(-2, OneQuarter.Exponent())
	assert.Equal(0, One.Exponent())
	assert.Equal(8, TwoHundredFiftySix.Exponent())
	assert.True(ThirtyTwo.Value().Equal(fraction.FromInt(32)))
}

func TestNoteValues(t *testing.T) {
	assert := assert.New(t)

	assert.True(EighthNote.Value().Equal(fraction.New(1, 8)))
	assert.True(TripletEighthNote.Value().Equal(fraction.New(1, 12)))
	assert.True(OctupleWholeNote.Value().Equal(fraction.FromInt(8)))
	assert.True(Crotchet.SymbolicallyEqual(QuarterNote))
	assert.True(Demisemihemidemisemiquaver.SymbolicallyEqual(TwoHundredFiftySixthNote))
	assert.Equal(notevalue.Triplet, TripletMinim.Tuplet())
	assert.True(TripletQuarterNote.Equal(HalfNote.WithTuplet(notevalue.Sextuplet)))
}

func TestEnvironment(t *testing.T) {
	assert := assert.New(t)

	t.Setenv("CBB_OUT_DIR", "")
	t.Setenv("CBB_PORT", "")
	t.Setenv("CBB_TICKS_PER_QUARTER", "")
	t.Setenv("CBB_DEFAULT_TEMPO", "")
	t.Setenv("CBB_DEFAULT_TIME_SIGNATURE", "")

	assert.Equal("./out", GetOutDir())
	assert.Equal("8080", GetPort())
	assert.Equal(uint16(960), GetTicksPerQuarter())
	assert.True(GetDefaultTempo().Equal(fraction.FromInt(120)))
	assert.Equal(metre.TimeSignature{Top: 4, Bottom: 4}, GetDefaultTimeSignature())

	t.Setenv("CBB_OUT_DIR", "/tmp/cbb")
	t.Setenv("CBB_PORT", "9000")
	t.Setenv("CBB_TICKS_PER_QUARTER", "480")
	t.Setenv("CBB_DEFAULT_TEMPO", "201/2")
	t.Setenv("CBB_DEFAULT_TIME_SIGNATURE", "6/8")

	assert.Equal("/tmp/cbb", GetOutDir())
	assert.Equal("9000", GetPort())
	assert.Equal(uint16(480), GetTicksPerQuarter())
	assert.True(GetDefaultTempo().SymbolicallyEqual(fraction.New(201, 2)))
	assert.Equal(metre.TimeSignature{Top: 6, Bottom: 8}, GetDefaultTimeSignature())

	t.Setenv("CBB_DEFAULT_TEMPO", "-3")
	assert.Panics(func() { GetDefaultTempo() })
	t.Setenv("CBB_TICKS_PER_QUARTER", "0")
	assert.Panics(func() { GetTicksPerQuarter() })
	t.Setenv("CBB_DEFAULT_TIME_SIGNATURE", "six/eight")
	assert.Panics(func() { GetDefaultTimeSignature() })
}
