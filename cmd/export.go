package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/connorsmacd/Cbb/constants"
	"github.com/connorsmacd/Cbb/fraction"
	"github.com/connorsmacd/Cbb/metre"
	"github.com/connorsmacd/Cbb/midi"
	"github.com/connorsmacd/Cbb/util"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	exportOut    string
	exportMeters []string
	exportTempos []string
)

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (defaults to a new file in the output directory)")
	exportCmd.Flags().StringArrayVarP(&exportMeters, "meter", "m", nil, "time signature change as bar=top/bottom, e.g. 12=3/4")
	exportCmd.Flags().StringArrayVar(&exportTempos, "tempo", nil, "tempo change as bar:offset=bpm, e.g. 12:3/8=301/2")
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Writes a conductor track",
	Long: `Writes a midi file holding only time signature and tempo changes. It
starts from the configured defaults and applies --meter and --tempo.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := buildStructure(exportMeters, exportTempos)
		if err != nil {
			return err
		}
		s, err := midi.WriteStructure(st, constants.GetTicksPerQuarter())
		if err != nil {
			return err
		}

		path := exportOut
		if path == "" {
			if err := util.EnsureOutputDir(constants.GetOutDir()); err != nil {
				return err
			}
			path = filepath.Join(constants.GetOutDir(), uuid.New().String()+".mid")
		}
		if err := midi.WriteMidiFile(s, path); err != nil {
			return err
		}
		fmt.Printf("Wrote %d track(s) to %s\n", len(s.Tracks), path)
		return nil
	},
}

func buildStructure(meters, tempos []string) (*metre.Structure, error) {
	st, err := metre.NewStructure(constants.GetDefaultTimeSignature(), constants.GetDefaultTempo())
	if err != nil {
		return nil, err
	}
	for _, m := range meters {
		barText, tsText, found := strings.Cut(m, "=")
		if !found {
			return nil, fmt.Errorf("meter %q is not bar=top/bottom", m)
		}
		pos, err := metre.ParsePosition(barText)
		if err != nil {
			return nil, err
		}
		ts, err := metre.ParseTimeSignature(tsText)
		if err != nil {
			return nil, err
		}
		if err := st.AddTimeSignatureChange(pos.Bar(), ts); err != nil {
			return nil, err
		}
	}
	for _, t := range tempos {
		posText, bpmText, found := strings.Cut(t, "=")
		if !found {
			return nil, fmt.Errorf("tempo %q is not bar:offset=bpm", t)
		}
		pos, err := metre.ParsePosition(posText)
		if err != nil {
			return nil, err
		}
		bpm, err := fraction.Parse(bpmText)
		if err != nil {
			return nil, err
		}
		if err := st.AddTempoChange(pos, bpm); err != nil {
			return nil, err
		}
	}
	return st, nil
}
