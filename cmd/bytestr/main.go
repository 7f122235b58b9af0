package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("bytestr")

func main() {
	var verbose int

	rootCmd := &cobra.Command{
		Use:   "bytestr",
		Short: "Byte-string search, replace, split and pattern matching",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbose, nil)
		},
	}
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase log verbosity")

	rootCmd.AddCommand(newFindCmd())
	rootCmd.AddCommand(newFindAnyCmd())
	rootCmd.AddCommand(newReplaceCmd())
	rootCmd.AddCommand(newSplitCmd())
	rootCmd.AddCommand(newMatchCmd())
	rootCmd.AddCommand(newCheckSetCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// readInput returns the contents of args[pos] when present, otherwise stdin.
func readInput(args []string, pos int) ([]byte, error) {
	if len(args) > pos {
		log.Debugf("reading %s", args[pos])
		return os.ReadFile(args[pos])
	}
	return io.ReadAll(os.Stdin)
}
