package powerof2

import (
	"testing"

	"github.com/connorsmacd/Cbb/fraction"
	"github.com/stretchr/testify/assert"
)

func TestConstruction(t *testing.T) {
	assert := assert.New(t)

	var zero PowerOf2
	assert.Equal(0, zero.Exponent())
	assert.Equal(-2, FromExponent(-2).Exponent())

	cases := map[string]int{
		"8":     3,
		"1":     0,
		"1/16":  -4,
		"2/32":  -4,
		"-1/-4": -2,
		"64/2":  5,
	}
	for in, want := range cases {
		p, err := FromFraction(fraction.MustParse(in))
		assert.NoError(err, in)
		assert.Equal(want, p.Exponent(), in)
	}
}

func TestConstructionRejectsNonPowers(t *testing.T) {
	for _, in := range []string{"3", "1/3", "3/8", "0", "-2", "1/-4", "1/0", "0/0"} {
		t.Run(in, func(t *testing.T) {
			_, err := FromFraction(fraction.MustParse(in))
			assert.ErrorIs(t, err, ErrNotPowerOf2)
		})
	}

	assert.Panics(t, func() { MustFromFraction(fraction.FromInt(6)) })
}

func TestValue(t *testing.T) {
	assert := assert.New(t)

	assert.True(FromExponent(-3).Value().Equal(fraction.New(1, 8)))
	assert.True(FromExponent(0).Value().Equal(fraction.One))
	assert.True(FromExponent(5).Value().Equal(fraction.FromInt(32)))
	assert.Equal("1/8", FromExponent(-3).String())
}

func TestClosedOperations(t *testing.T) {
	assert := assert.New(t)

	half, eighth := FromExponent(-1), FromExponent(-3)
	assert.Equal(-4, half.Mul(eighth).Exponent())
	assert.Equal(2, half.Div(eighth).Exponent())
}

func TestDegradingOperations(t *testing.T) {
	assert := assert.New(t)

	half, quarter := FromExponent(-1), FromExponent(-2)
	assert.True(half.Add(quarter).Equal(fraction.New(3, 4)))
	assert.True(half.Sub(quarter).Equal(fraction.New(1, 4)))
	assert.True(half.Mod(quarter).IsZero())
	assert.True(half.Neg().Equal(fraction.New(-1, 2)))

	third := fraction.New(1, 3)
	assert.True(half.AddFraction(third).Equal(fraction.New(5, 6)))
	assert.True(half.SubFraction(third).Equal(fraction.New(1, 6)))
	assert.True(half.MulFraction(third).Equal(fraction.New(1, 6)))
	assert.True(half.DivFraction(third).Equal(fraction.New(3, 2)))
	assert.True(half.ModFraction(third).Equal(fraction.New(1, 6)))
}

func TestComparison(t *testing.T) {
	assert := assert.New(t)

	sixteenth, eighth := FromExponent(-4), FromExponent(-3)

	assert.True(sixteenth.Equal(sixteenth))
	assert.True(sixteenth.Less(eighth))
	assert.True(sixteenth.LessOrEqual(sixteenth))
	assert.True(eighth.Greater(sixteenth))
	assert.False(sixteenth.GreaterOrEqual(eighth))

	assert.True(FromExponent(-1).EqualFraction(fraction.New(2, 4)))
	assert.False(FromExponent(-1).EqualFraction(fraction.New(1, 3)))
	assert.True(FromExponent(2).EqualFraction(fraction.FromInt(4)))
	assert.True(sixteenth.LessFraction(fraction.New(1, 15)))
	assert.True(eighth.GreaterFraction(fraction.New(1, 9)))
	assert.True(eighth.LessOrEqualFraction(fraction.New(1, 8)))
	assert.True(eighth.GreaterOrEqualFraction(fraction.New(1, 8)))
	assert.False(eighth.EqualFraction(fraction.Undefined))
}
