package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/minij/format"
	"github.com/dhamidi/minij/lang/parser"
	"github.com/dhamidi/minij/lang/tree"
)

func newParseCmd(s *settings) *cobra.Command {
	var outputFormat string
	var includePositions bool
	var entry string

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a source file and print its syntax tree",
		Long: `Parse a source file and print its syntax tree. Parts of the input that
do not parse show up as ERROR nodes; use "minij check" to see why.

Use - to read from standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				outputFormat = s.cfg.Output.Format
			}
			if !cmd.Flags().Changed("positions") {
				includePositions = s.cfg.Output.Positions
			}

			filename, src, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}

			p := parser.New(src, parser.WithFile(filename), parser.WithStartLine(s.cfg.Parser.StartLine))
			var node tree.Node
			switch entry {
			case "unit":
				node = p.ParseCompilationUnit()
			case "stmt":
				node = p.ParseStatement()
			case "expr":
				node = p.ParseExpression()
			default:
				return fmt.Errorf("unknown entry point %q, want unit, stmt or expr", entry)
			}

			out := cmd.OutOrStdout()
			var enc format.Encoder
			if outputFormat == "text" && includePositions {
				enc = format.NewTextEncoder(out).WithPositions()
			} else {
				enc, err = format.NewEncoder(outputFormat, out)
				if err != nil {
					return err
				}
			}
			if err := enc.Encode(node); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format ("+strings.Join(format.Names, ", ")+")")
	cmd.Flags().BoolVar(&includePositions, "positions", false, "include node spans in text output")
	cmd.Flags().StringVarP(&entry, "entry", "e", "unit", "grammar entry point (unit, stmt, expr)")

	return cmd
}

// readSource reads the named file, or standard input for "-".
func readSource(cmd *cobra.Command, name string) (string, []byte, error) {
	if name == "-" {
		src, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", nil, fmt.Errorf("read stdin: %w", err)
		}
		return "<stdin>", src, nil
	}
	src, err := os.ReadFile(name)
	if err != nil {
		return "", nil, fmt.Errorf("read source: %w", err)
	}
	return name, src, nil
}
