package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coregx/bytestr"
)

func newFindAnyCmd() *cobra.Command {
	var file string
	var start int

	cmd := &cobra.Command{
		Use:   "findany NEEDLE [NEEDLE...]",
		Short: "Print occurrences of any of several needles",
		Long: `Search the input for every needle at once and print each
non-overlapping occurrence as "OFFSET END INDEX", leftmost first, where
INDEX is the position of the matched needle on the command line.

Reads the file named by --file, or stdin when the flag is omitted.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var text []byte
			var err error
			if file != "" {
				text, err = readInput([]string{file}, 0)
			} else {
				text, err = readInput(nil, 0)
			}
			if err != nil {
				return err
			}

			needles := make([][]byte, len(args))
			for i, a := range args {
				needles[i] = []byte(a)
			}

			occs, err := bytestr.FindAnyAll(needles, text, start)
			if err != nil {
				return err
			}
			for _, occ := range occs {
				fmt.Printf("%d %d %d\n", occ.Start, occ.End, occ.Pattern)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read input from this file instead of stdin")
	cmd.Flags().IntVar(&start, "start", 0, "offset to begin the search at")

	return cmd
}
