package cmd

import (
	"fmt"

	"github.com/connorsmacd/Cbb/fraction"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reduceCmd)
}

var reduceCmd = &cobra.Command{
	Use:   "reduce <fraction>",
	Short: "Reduces a fraction",
	Long:  `Reduces a fraction such as "-6 / -8" to lowest terms.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := fraction.Parse(args[0])
		if err != nil {
			return err
		}
		if f.IsUndefined() {
			fmt.Printf("%v is undefined\n", f)
			return nil
		}
		r := f.Reduce()
		fmt.Printf("%v = %v (%v)\n", f, r, r.Float64())
		return nil
	},
}
