package constants

import (
	"github.com/connorsmacd/Cbb/fraction"
	"github.com/connorsmacd/Cbb/powerof2"
)

var (
	OneTwoHundredFiftySixth = powerof2.MustFromFraction(fraction.New(1, 256))
	OneHundredTwentyEighth  = powerof2.MustFromFraction(fraction.New(1, 128))
	OneSixtyFourth          = powerof2.MustFromFraction(fraction.New(1, 64))
	OneThirtySecond         = powerof2.MustFromFraction(fraction.New(1, 32))
	OneSixteenth            = powerof2.MustFromFraction(fraction.New(1, 16))
	OneEighth               = powerof2.MustFromFraction(fraction.New(1, 8))
	OneQuarter              = powerof2.MustFromFraction(fraction.New(1, 4))
	OneHalf                 = powerof2.MustFromFraction(fraction.New(1, 2))
	One                     = powerof2.MustFromFraction(fraction.FromInt(1))
	Two                     = powerof2.MustFromFraction(fraction.FromInt(2))
	Four                    = powerof2.MustFromFraction(fraction.FromInt(4))
	Eight                   = powerof2.MustFromFraction(fraction.FromInt(8))
	Sixteen                 = powerof2.MustFromFraction(fraction.FromInt(16))
	ThirtyTwo               = powerof2.MustFromFraction(fraction.FromInt(32))
	SixtyFour               = powerof2.MustFromFraction(fraction.FromInt(64))
	OneHundredTwentyEight   = powerof2.MustFromFraction(fraction.FromInt(128))
	TwoHundredFiftySix      = powerof2.MustFromFraction(fraction.FromInt(256))
)
