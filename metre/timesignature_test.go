package metre

import (
	"encoding/json"
	"testing"

	"github.com/connorsmacd/Cbb/fraction"
	"github.com/connorsmacd/Cbb/notevalue"
	"github.com/connorsmacd/Cbb/powerof2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeatUnit(t *testing.T) {
	assert := assert.New(t)

	unit, err := TimeSignature{7, 8}.BeatUnit()
	assert.NoError(err)
	assert.True(unit.SymbolicallyEqual(notevalue.New(powerof2.FromExponent(-3))))

	unit, err = TimeSignature{3, 2}.BeatUnit()
	assert.NoError(err)
	assert.True(unit.Value().Equal(fraction.New(1, 2)))

	_, err = TimeSignature{2, 9}.BeatUnit()
	assert.ErrorIs(err, ErrInvalidTimeSignature)
	_, err = TimeSignature{}.BeatUnit()
	assert.ErrorIs(err, ErrInvalidTimeSignature)
}

func TestBarLength(t *testing.T) {
	assert.True(t, TimeSignature{6, 8}.BarLength().Equal(fraction.New(3, 4)))
	assert.True(t, TimeSignature{4, 4}.BarLength().Equal(fraction.One))
	assert.True(t, TimeSignature{}.BarLength().IsUndefined())
}

func TestTimeSignatureEqual(t *testing.T) {
	assert := assert.New(t)

	assert.True(TimeSignature{5, 4}.Equal(TimeSignature{5, 4}))
	assert.False(TimeSignature{5, 4}.Equal(TimeSignature{7, 9}))
	assert.False(TimeSignature{2, 4}.Equal(TimeSignature{4, 8}))
}

func TestParseTimeSignature(t *testing.T) {
	tests := []struct {
		input    string
		expected TimeSignature
		ok       bool
	}{
		{"4/4", TimeSignature{4, 4}, true},
		{" 7 / 8 ", TimeSignature{7, 8}, true},
		{"5/9", TimeSignature{5, 9}, true},
		{"4", TimeSignature{}, false},
		{"0/4", TimeSignature{}, false},
		{"3/-4", TimeSignature{}, false},
		{"a/4", TimeSignature{}, false},
		{"3/b", TimeSignature{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ts, err := ParseTimeSignature(tt.input)
			if !tt.ok {
				assert.ErrorIs(t, err, ErrInvalidTimeSignature)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, ts)
			assert.Equal(t, tt.expected.String(), ts.String())
		})
	}
}

func TestTimeSignatureJSON(t *testing.T) {
	data, err := json.Marshal(struct{ TS TimeSignature }{TimeSignature{3, 4}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"TS":"3/4"}`, string(data))

	var decoded struct{ TS TimeSignature }
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, TimeSignature{3, 4}, decoded.TS)
}
