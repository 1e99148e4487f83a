package cmd

import (
	"fmt"
	"strconv"

	"github.com/connorsmacd/Cbb/constants"
	"github.com/connorsmacd/Cbb/fraction"
	"github.com/connorsmacd/Cbb/metre"
	"github.com/connorsmacd/Cbb/midi"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(metreCmd)
}

var metreCmd = &cobra.Command{
	Use:     "metre <file> [bar] [offset]",
	Aliases: []string{"inspect"},
	Short:   "Inspects the metric structure of a midi file",
	Long: `Lists the time signature and tempo changes of a midi file, or, given a
bar and an optional offset in whole notes, the ones in effect there.`,
	Args: cobra.RangeArgs(1, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := loadStructure(args[0])
		if err != nil {
			return err
		}
		if len(args) == 1 {
			printStructure(st)
			return nil
		}
		pos, err := positionFromArgs(args[1:])
		if err != nil {
			return err
		}
		ts := st.LatestTimeSignatureChange(pos)
		tempo := st.LatestTempoChange(pos)
		fmt.Printf("at %v\n", pos)
		fmt.Printf("time signature: %v (since %v)\n", ts.Value, ts.Position)
		fmt.Printf("tempo: %v (since %v)\n", tempo.Value, tempo.Position)
		return nil
	},
}

func loadStructure(path string) (*metre.Structure, error) {
	s, err := midi.ReadMidiFile(path)
	if err != nil {
		return nil, err
	}
	return midi.ReadStructure(s, constants.GetDefaultTimeSignature(), constants.GetDefaultTempo())
}

func positionFromArgs(args []string) (metre.Position, error) {
	bar, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return metre.Position{}, fmt.Errorf("invalid bar %q", args[0])
	}
	offset := fraction.Zero
	if len(args) > 1 {
		offset, err = fraction.Parse(args[1])
		if err != nil {
			return metre.Position{}, err
		}
	}
	return metre.NewPosition(bar, offset)
}

func printStructure(st *metre.Structure) {
	for _, c := range st.TimeSignatureChanges() {
		fmt.Printf("%v\ttime signature\t%v\n", c.Position, c.Value)
	}
	for _, c := range st.TempoChanges() {
		fmt.Printf("%v\ttempo\t%v\n", c.Position, c.Value)
	}
}
