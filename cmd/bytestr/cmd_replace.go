package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/coregx/bytestr"
)

func newReplaceCmd() *cobra.Command {
	var start int
	var all bool

	cmd := &cobra.Command{
		Use:   "replace NEEDLE SUBST [FILE]",
		Short: "Substitute occurrences of a needle in the input",
		Long: `Replace the first occurrence of NEEDLE with SUBST and write the result
to stdout. With --all every non-overlapping occurrence is replaced.
Reads FILE, or stdin when FILE is omitted. When the needle does not
occur the input passes through unchanged.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(args, 2)
			if err != nil {
				return err
			}
			needle, subst := []byte(args[0]), []byte(args[1])

			var out []byte
			if all {
				out, err = bytestr.ReplaceAll(needle, subst, text, start)
			} else {
				out, err = bytestr.Replace(needle, subst, text, start)
			}
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(out)
			return err
		},
	}

	cmd.Flags().IntVar(&start, "start", 0, "offset to begin the search at")
	cmd.Flags().BoolVar(&all, "all", false, "replace every occurrence")

	return cmd
}
