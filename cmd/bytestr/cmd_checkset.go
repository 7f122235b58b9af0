package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coregx/bytestr"
)

func newCheckSetCmd() *cobra.Command {
	var complement bool

	cmd := &cobra.Command{
		Use:   "checkset SET [FILE]",
		Short: "Test whether every input byte belongs to a set",
		Long: `Print "true" when every byte of the input is a member of SET, and
"false" otherwise. With --complement the test is inverted per byte:
every input byte must be absent from SET. Reads FILE, or stdin when
FILE is omitted. A "false" result also sets a non-zero exit status.`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(args, 1)
			if err != nil {
				return err
			}

			ok := bytestr.CheckSet([]byte(args[0]), text, complement)
			fmt.Println(ok)
			if !ok {
				return fmt.Errorf("input contains bytes outside the set")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&complement, "complement", false, "require every byte to be absent from the set")

	return cmd
}
