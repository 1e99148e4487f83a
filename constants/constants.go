package constants

import (
	"fmt"
	"os"
	"strconv"

	"github.com/connorsmacd/Cbb/fraction"
	"github.com/connorsmacd/Cbb/metre"
)

func GetOutDir() string {
	path := os.Getenv("CBB_OUT_DIR")
	if path != "" {
		return path
	}
	return "./out"
}

func GetPort() string {
	port := os.Getenv("CBB_PORT")
	if port != "" {
		return port
	}
	return "8080"
}

// GetTicksPerQuarter is the resolution of exported MIDI files.
func GetTicksPerQuarter() uint16 {
	raw := os.Getenv("CBB_TICKS_PER_QUARTER")
	if raw == "" {
		return 960
	}
	tpq, err := strconv.ParseUint(raw, 10, 15)
	if err != nil || tpq == 0 {
		panic(fmt.Sprintf("CBB_TICKS_PER_QUARTER must be between 1 and 32767, got %q", raw))
	}
	return uint16(tpq)
}

func GetDefaultTempo() metre.Tempo {
	raw := os.Getenv("CBB_DEFAULT_TEMPO")
	if raw == "" {
		return fraction.FromInt(120)
	}
	tempo, err := fraction.Parse(raw)
	if err != nil || !tempo.IsPositive() {
		panic(fmt.Sprintf("CBB_DEFAULT_TEMPO must be a positive fraction, got %q", raw))
	}
	return tempo
}

func GetDefaultTimeSignature() metre.TimeSignature {
	raw := os.Getenv("CBB_DEFAULT_TIME_SIGNATURE")
	if raw == "" {
		return metre.TimeSignature{Top: 4, Bottom: 4}
	}
	ts, err := metre.ParseTimeSignature(raw)
	if err != nil {
		panic(err)
	}
	return ts
}
