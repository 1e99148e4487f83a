package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	valueTuplet string
	valueDots   uint
)

func init() {
	rootCmd.AddCommand(valueCmd)
	valueCmd.Flags().StringVarP(&valueTuplet, "tuplet", "t", "duplet", "tuplet name or number")
	valueCmd.Flags().UintVarP(&valueDots, "dots", "d", 0, "number of dots")
}

var valueCmd = &cobra.Command{
	Use:   "value <base>",
	Short: "Prints the value of a note",
	Long: `Prints the value of a note relative to a whole note. The base is a power
of two such as 1/8 or 2, e.g. "cbb value 1/8 --tuplet triplet --dots 1".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		nv, err := parseNoteValue(args[0], valueTuplet, valueDots)
		if err != nil {
			return err
		}
		value := nv.Value().Reduce()
		fmt.Printf("%v: %v (%v)\n", nv, value, value.Float64())
		return nil
	},
}
