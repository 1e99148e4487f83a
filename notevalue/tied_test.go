package notevalue

import (
	"testing"

	"github.com/connorsmacd/Cbb/fraction"
	"github.com/connorsmacd/Cbb/powerof2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var thirtySecond = powerof2.FromExponent(-5)

func TestTiedConstruction(t *testing.T) {
	assert := assert.New(t)

	var zero Tied
	assert.Equal(1, zero.Len())
	first, err := zero.At(0)
	assert.NoError(err)
	assert.True(first.SymbolicallyEqual(NoteValue{}))

	tied := NewTied(New(eighth), New(sixteenth))
	assert.Equal(2, tied.Len())
	assert.True(tied.Index(0).SymbolicallyEqual(New(eighth)))
	assert.True(tied.Index(1).SymbolicallyEqual(New(sixteenth)))

	single := NewTied(New(thirtySecond))
	assert.Equal(1, single.Len())

	_, err = TiedFrom(nil)
	assert.ErrorIs(err, ErrEmpty)

	values := []NoteValue{New(quarter), New(half)}
	fromSlice, err := TiedFrom(values)
	assert.NoError(err)
	values[0] = New(whole)
	assert.True(fromSlice.Index(0).SymbolicallyEqual(New(quarter)), "TiedFrom copies its input")
}

func TestTiedAccess(t *testing.T) {
	assert := assert.New(t)

	tied := NewTied(New(eighth), New(sixteenth))
	nv, err := tied.At(1)
	assert.NoError(err)
	assert.True(nv.SymbolicallyEqual(New(sixteenth)))

	_, err = tied.At(2)
	assert.ErrorIs(err, ErrIndexOutOfRange)
	_, err = tied.At(-1)
	assert.ErrorIs(err, ErrIndexOutOfRange)

	assert.Panics(func() { tied.Index(2) })
}

func TestTiedSingleAndTiedQueries(t *testing.T) {
	assert := assert.New(t)

	single := NewTied(New(quarter))
	assert.True(single.IsSingle())
	assert.False(single.IsTied())

	tied := NewTied(New(quarter), New(eighth))
	assert.False(tied.IsSingle())
	assert.True(tied.IsTied())
}

func TestTiedAppendPrepend(t *testing.T) {
	assert := assert.New(t)

	tied := NewTied(New(thirtySecond))
	tied.Append(New(eighth)).Append(New(sixteenth))
	assert.Equal(3, tied.Len())
	assert.True(tied.Index(0).SymbolicallyEqual(New(thirtySecond)))
	assert.True(tied.Index(1).SymbolicallyEqual(New(eighth)))
	assert.True(tied.Index(2).SymbolicallyEqual(New(sixteenth)))

	tied.Prepend(New(half)).PrependTied(NewTied(New(whole)))
	assert.Equal(5, tied.Len())
	assert.True(tied.Index(0).SymbolicallyEqual(New(whole)))
	assert.True(tied.Index(1).SymbolicallyEqual(New(half)))

	other := NewTied(New(quarter))
	other.AppendTied(NewTied(New(eighth), New(eighth)))
	assert.Equal(3, other.Len())
	assert.True(other.Value().Equal(fraction.New(1, 2)))

	var zero Tied
	zero.Append(New(half))
	assert.Equal(2, zero.Len())
	assert.True(zero.Value().Equal(fraction.New(3, 2)))
}

func TestTiedValue(t *testing.T) {
	assert := assert.New(t)

	assert.True(NewTied(New(eighth), New(half)).Value().Equal(fraction.New(5, 8)))
	assert.True(New(quarter).Tie(New(quarter)).Value().Equal(fraction.New(1, 2)))

	var zero Tied
	assert.True(zero.Value().Equal(fraction.One))
}

func TestTiedComparison(t *testing.T) {
	assert := assert.New(t)

	twoQuarters := NewTied(New(quarter), New(quarter))
	oneHalf := NewTied(New(half))
	assert.True(twoQuarters.Equal(oneHalf))
	assert.False(twoQuarters.NotEqual(oneHalf))
	assert.True(twoQuarters.EqualNoteValue(New(half)))

	longer := NewTied(New(half), New(sixteenth))
	assert.True(oneHalf.Less(longer))
	assert.True(oneHalf.LessOrEqual(twoQuarters))
	assert.True(longer.Greater(twoQuarters))
	assert.True(longer.GreaterOrEqual(longer))
}

func TestTiedValuesIsACopy(t *testing.T) {
	tied := NewTied(New(quarter), New(eighth))
	values := tied.Values()
	values[0] = New(whole)
	require.Equal(t, 2, tied.Len())
	assert.True(t, tied.Index(0).SymbolicallyEqual(New(quarter)))
}

func TestTiedString(t *testing.T) {
	assert.Equal(t, "1/2 + 1/8 triplet", NewTied(New(half), NewTuplet(eighth, Triplet, 0)).String())
}
