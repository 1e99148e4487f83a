package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cbb",
	Short: "Note values and metric structure",
	Long: `cbb treats note values as exact fractions of a whole note and reads and
writes the time signature and tempo maps of standard MIDI files.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
