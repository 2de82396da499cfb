package main

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/dhamidi/minij/lang/grammar"
)

func newGrammarCmd(s *settings) *cobra.Command {
	var showSets bool

	cmd := &cobra.Command{
		Use:   "grammar",
		Short: "Print the language grammar in EBNF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := grammar.Load()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if !showSets {
				_, err := out.Write(grammar.Source())
				return err
			}

			table := tablewriter.NewWriter(out)
			table.SetHeader([]string{"Production", "First", "Follow"})
			table.SetAutoWrapText(false)
			for _, name := range g.Productions() {
				first, nullable := g.First(name)
				if nullable {
					first = append(first, "ε")
				}
				table.Append([]string{name, strings.Join(first, " "), strings.Join(g.Follow(name), " ")})
			}
			table.Render()
			fmt.Fprintf(out, "start production: %s\n", grammar.Start)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showSets, "sets", false, "print FIRST and FOLLOW sets instead of the grammar")

	return cmd
}
