package cmd

import (
	"fmt"
	"strconv"

	"github.com/connorsmacd/Cbb/util"
	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report <dir> [max]",
	Short: "Creates a report",
	Long:  `Summarizes the time signatures and tempo changes of every midi file under a directory.`,
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var maxNum int
		if len(args) == 2 {
			arg1, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}
			maxNum = arg1
		}
		r, err := analyzeFiles(args[0], maxNum)
		if err != nil {
			return err
		}
		printReport(r)
		return nil
	},
}

type metreReport struct {
	numFiles       int
	numFailed      int
	timeSignatures map[string]int
	tempoChanges   []int
}

func analyzeFiles(dir string, maxNum int) (metreReport, error) {
	report := metreReport{timeSignatures: make(map[string]int)}

	paths, err := util.GatherAllMidiPaths(dir, maxNum)
	if err != nil {
		return report, err
	}

	for _, path := range paths {
		report.numFiles += 1
		st, err := loadStructure(path)
		if err != nil {
			fmt.Printf("Skipping %s: %v\n", path, err)
			report.numFailed += 1
			continue
		}
		for _, c := range st.TimeSignatureChanges() {
			report.timeSignatures[c.Value.String()] += 1
		}
		report.tempoChanges = append(report.tempoChanges, len(st.TempoChanges())-1)
	}
	return report, nil
}

func printReport(r metreReport) {
	fmt.Printf("numFiles: %v\n", r.numFiles)
	fmt.Printf("numFailed: %v\n", r.numFailed)

	names := maps.Keys(r.timeSignatures)
	slices.SortFunc(names, func(a, b string) bool {
		if r.timeSignatures[a] != r.timeSignatures[b] {
			return r.timeSignatures[a] > r.timeSignatures[b]
		}
		return a < b
	})
	for _, name := range names {
		fmt.Printf("time signature %v: %v\n", name, r.timeSignatures[name])
	}
	fmt.Printf("tempo changes after the first: %v\n", util.Sum(r.tempoChanges))
}
