package constants

import "github.com/connorsmacd/Cbb/notevalue"

var (
	TwoHundredFiftySixthNote   = notevalue.New(OneTwoHundredFiftySixth)
	OneHundredTwentyEighthNote = notevalue.New(OneHundredTwentyEighth)
	SixtyFourthNote            = notevalue.New(OneSixtyFourth)
	ThirtySecondNote           = notevalue.New(OneThirtySecond)
	SixteenthNote              = notevalue.New(OneSixteenth)
	EighthNote                 = notevalue.New(OneEighth)
	QuarterNote                = notevalue.New(OneQuarter)
	HalfNote                   = notevalue.New(OneHalf)
	WholeNote                  = notevalue.New(One)
	DoubleWholeNote            = notevalue.New(Two)
	QuadrupleWholeNote         = notevalue.New(Four)
	OctupleWholeNote           = notevalue.New(Eight)
)

// British names.
var (
	Demisemihemidemisemiquaver = TwoHundredFiftySixthNote
	Semihemidemisemiquaver     = OneHundredTwentyEighthNote
	Hemidemisemiquaver         = SixtyFourthNote
	Demisemiquaver             = ThirtySecondNote
	Semiquaver                 = SixteenthNote
	Quaver                     = EighthNote
	Crotchet                   = QuarterNote
	Minim                      = HalfNote
	Semibreve                  = WholeNote
	Breve                      = DoubleWholeNote
	Longa                      = QuadrupleWholeNote
	Maxima                     = OctupleWholeNote
)

var (
	TripletTwoHundredFiftySixthNote   = TwoHundredFiftySixthNote.WithTuplet(notevalue.Triplet)
	TripletOneHundredTwentyEighthNote = OneHundredTwentyEighthNote.WithTuplet(notevalue.Triplet)
	TripletSixtyFourthNote            = SixtyFourthNote.WithTuplet(notevalue.Triplet)
	TripletThirtySecondNote           = ThirtySecondNote.WithTuplet(notevalue.Triplet)
	TripletSixteenthNote              = SixteenthNote.WithTuplet(notevalue.Triplet)
	TripletEighthNote                 = EighthNote.WithTuplet(notevalue.Triplet)
	TripletQuarterNote                = QuarterNote.WithTuplet(notevalue.Triplet)
	TripletHalfNote                   = HalfNote.WithTuplet(notevalue.Triplet)
	TripletWholeNote                  = WholeNote.WithTuplet(notevalue.Triplet)
	TripletDoubleWholeNote            = DoubleWholeNote.WithTuplet(notevalue.Triplet)
	TripletQuadrupleWholeNote         = QuadrupleWholeNote.WithTuplet(notevalue.Triplet)
	TripletOctupleWholeNote           = OctupleWholeNote.WithTuplet(notevalue.Triplet)

	TripletQuaver   = TripletEighthNote
	TripletCrotchet = TripletQuarterNote
	TripletMinim    = TripletHalfNote
)
