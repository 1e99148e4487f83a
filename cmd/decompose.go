package cmd

import (
	"fmt"

	"github.com/connorsmacd/Cbb/fraction"
	"github.com/connorsmacd/Cbb/notevalue"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(decomposeCmd)
}

var decomposeCmd = &cobra.Command{
	Use:   "decompose <fraction>",
	Short: "Writes a duration as note values",
	Long: `Writes a duration, given in whole notes, as a single note value when one
exists and as tied note values otherwise.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := fraction.Parse(args[0])
		if err != nil {
			return err
		}
		if nv, err := notevalue.FromValue(f); err == nil {
			fmt.Printf("%v: %v\n", f, nv)
			return nil
		}
		tied, err := notevalue.TiedFromValue(f)
		if err != nil {
			return err
		}
		fmt.Printf("%v: %v\n", f, tied)
		return nil
	},
}
