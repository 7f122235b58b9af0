package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coregx/bytestr"
)

func newMatchCmd() *cobra.Command {
	var init int
	var positions bool

	cmd := &cobra.Command{
		Use:   "match PATTERN [FILE]",
		Short: "Run a pattern against the input and print its captures",
		Long: `Match PATTERN against the input and print each capture on its own
line. A pattern without explicit captures prints the whole match.
Reads FILE, or stdin when FILE is omitted.

--init gives the one-based offset matching starts at; negative values
count back from the end of the input. When the pattern does not match
nothing is printed and the exit status is zero. A malformed pattern is
an error.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(args, 1)
			if err != nil {
				return err
			}

			caps, err := bytestr.Match(text, []byte(args[0]), init)
			if err != nil {
				return err
			}
			for _, c := range caps {
				if positions {
					if c.IsPosition() {
						fmt.Printf("@%d\n", c.Position())
						continue
					}
					fmt.Printf("%d %s\n", c.Start(), c.String())
					continue
				}
				fmt.Println(c.String())
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&init, "init", 1, "one-based offset to start matching at")
	cmd.Flags().BoolVar(&positions, "positions", false, "prefix each capture with its offset")

	return cmd
}
