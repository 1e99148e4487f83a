package model

import (
	"github.com/connorsmacd/Cbb/fraction"
	"github.com/connorsmacd/Cbb/metre"
)

type NoteValueRequest struct {
	Base   fraction.Fraction `json:"base"`
	Tuplet int               `json:"tuplet"`
	Dots   uint              `json:"dots"`
}

type NoteValue struct {
	Symbol string            `json:"symbol"`
	Base   fraction.Fraction `json:"base"`
	Tuplet int               `json:"tuplet"`
	Dots   uint              `json:"dots"`
	Value  fraction.Fraction `json:"value"`
}

type DecomposeRequest struct {
	Value fraction.Fraction `json:"value"`
}

type DecomposeResponse struct {
	Value  fraction.Fraction `json:"value"`
	Single *NoteValue        `json:"single,omitempty"`
	Tied   []NoteValue       `json:"tied"`
}

type TimeSignatureChange struct {
	Position      string              `json:"position"`
	TimeSignature metre.TimeSignature `json:"time_signature"`
}

type TempoChange struct {
	Position string            `json:"position"`
	Tempo    fraction.Fraction `json:"tempo"`
}

type MetreResponse struct {
	TimeSignatures []TimeSignatureChange `json:"time_signatures"`
	Tempos         []TempoChange         `json:"tempos"`
}

type MetreAtResponse struct {
	Position      string              `json:"position"`
	TimeSignature TimeSignatureChange `json:"time_signature"`
	Tempo         TempoChange         `json:"tempo"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
