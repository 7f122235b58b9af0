package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coregx/bytestr"
)

func newSplitCmd() *cobra.Command {
	var start int
	var limit int

	cmd := &cobra.Command{
		Use:   "split DELIM [FILE]",
		Short: "Cut the input at every occurrence of a delimiter",
		Long: `Split the input at every non-overlapping occurrence of DELIM and print
the pieces one per line. Reads FILE, or stdin when FILE is omitted.
A non-negative --limit caps the number of cuts; the remainder is
printed as the final piece.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(args, 1)
			if err != nil {
				return err
			}

			parts, err := bytestr.Split([]byte(args[0]), text, start, limit)
			if err != nil {
				return err
			}
			for _, p := range parts {
				fmt.Printf("%s\n", p)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&start, "start", 0, "offset to begin the search at")
	cmd.Flags().IntVar(&limit, "limit", -1, "maximum number of cuts, negative for no limit")

	return cmd
}
