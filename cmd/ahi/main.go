// Command ahi holds development tools for the minij grammar.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/minij/lang/grammar"
)

const version = "0.1.0"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "ahi",
		Short:   "Inspect and check the minij grammar",
		Long:    fmt.Sprintf("ahi checks EBNF grammars and prints derived sets.\nWithout a file argument it works on the embedded minij grammar (start production %s).", grammar.Start),
		Version: version,

		SilenceErrors: true,
	}
	root.AddCommand(newEbnfCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ahi:", err)
		os.Exit(1)
	}
}
