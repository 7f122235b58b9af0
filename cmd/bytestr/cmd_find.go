package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coregx/bytestr"
)

func newFindCmd() *cobra.Command {
	var start int
	var first bool

	cmd := &cobra.Command{
		Use:   "find NEEDLE [FILE]",
		Short: "Print the offsets of a needle in the input",
		Long: `Print the byte offset of every non-overlapping occurrence of NEEDLE,
one per line. Reads FILE, or stdin when FILE is omitted.

With --first only the leftmost occurrence is printed. When the needle
does not occur nothing is printed and the exit status is zero.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(args, 1)
			if err != nil {
				return err
			}
			needle := []byte(args[0])

			if first {
				off, err := bytestr.Find(needle, text, start)
				if err != nil {
					return err
				}
				if off >= 0 {
					fmt.Println(off)
				}
				return nil
			}

			offs, err := bytestr.FindAll(needle, text, start)
			if err != nil {
				return err
			}
			for _, off := range offs {
				fmt.Println(off)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&start, "start", 0, "offset to begin the search at")
	cmd.Flags().BoolVar(&first, "first", false, "print only the leftmost occurrence")

	return cmd
}
