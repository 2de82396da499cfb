package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/minij/lang/grammar"
)

func newEbnfCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "ebnf",
		Short:         "EBNF grammar tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newEbnfCheckCmd())
	cmd.AddCommand(newEbnfSetsCmd())
	cmd.AddCommand(newEbnfMatchCmd())

	return cmd
}

func newEbnfCheckCmd() *cobra.Command {
	var startProduction string

	cmd := &cobra.Command{
		Use:           "check [file]",
		Short:         "Parse and verify an EBNF grammar file (default: the minij grammar)",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := loadGrammar(args, startProduction)
			if err != nil {
				printErrors(cmd.OutOrStdout(), err)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", grammar.Start, "start production for verification (if empty, only checks syntax)")

	return cmd
}

func newEbnfSetsCmd() *cobra.Command {
	var startProduction string

	cmd := &cobra.Command{
		Use:           "sets [file]",
		Short:         "Print FIRST and FOLLOW sets of every production",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGrammar(args, startProduction)
			if err != nil {
				printErrors(cmd.OutOrStdout(), err)
				return err
			}

			out := cmd.OutOrStdout()
			for _, name := range g.Productions() {
				first, nullable := g.First(name)
				fmt.Fprintf(out, "%s\n  first:  %s", name, strings.Join(first, " "))
				if nullable {
					fmt.Fprint(out, " (nullable)")
				}
				fmt.Fprintf(out, "\n  follow: %s\n", strings.Join(g.Follow(name), " "))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", grammar.Start, "start production for verification (if empty, only checks syntax)")

	return cmd
}

func newEbnfMatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match <production> <text>...",
		Short: "Report how much of each text a lexical production derives",
		Long: `Run a lexical production of the minij grammar against each text argument
and print the matched prefix. The exit status is non-zero unless every text
is matched in full.`,
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := grammar.Load()
			if err != nil {
				return err
			}
			name := args[0]
			if !grammar.IsLexical(name) {
				return fmt.Errorf("%s is not a lexical production", name)
			}

			out := cmd.OutOrStdout()
			partial := 0
			for _, text := range args[1:] {
				n := g.Match(name, text)
				switch {
				case n == len(text):
					fmt.Fprintf(out, "%q: match\n", text)
				case n < 0:
					fmt.Fprintf(out, "%q: no match\n", text)
					partial++
				default:
					fmt.Fprintf(out, "%q: prefix %q\n", text, text[:n])
					partial++
				}
			}
			if partial > 0 {
				return fmt.Errorf("%d of %d text(s) not matched", partial, len(args)-1)
			}
			return nil
		},
	}
	return cmd
}

func loadGrammar(args []string, start string) (*grammar.Grammar, error) {
	if len(args) == 0 {
		if start == grammar.Start {
			return grammar.Load()
		}
		return grammar.Parse("minij.ebnf", strings.NewReader(string(grammar.Source())), start)
	}

	filename := args[0]
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return grammar.Parse(filename, f, start)
}

// printErrors prints one line per error when err wraps the error list
// returned by the ebnf package.
func printErrors(w io.Writer, err error) {
	inner := err
	if unwrapped := errors.Unwrap(err); unwrapped != nil {
		inner = unwrapped
	}
	v := reflect.ValueOf(inner)
	if v.Kind() == reflect.Slice {
		for i := 0; i < v.Len(); i++ {
			fmt.Fprintln(w, v.Index(i).Interface())
		}
	} else {
		fmt.Fprintln(w, err)
	}
}
