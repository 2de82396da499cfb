package main

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/dhamidi/minij/lang/scanner"
)

func newTokensCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the tokens of a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename, src, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}

			tokens := scanner.New(src, filename).WithStartLine(s.cfg.Parser.StartLine).All()

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Position", "Kind", "Literal"})
			table.SetBorder(false)
			table.SetAutoWrapText(false)
			illegal := 0
			for _, tok := range tokens {
				pos := fmt.Sprintf("%d:%d", tok.Span.Start.Line, tok.Span.Start.Column)
				table.Append([]string{pos, tok.Kind.String(), strconv.Quote(tok.Literal)})
				if tok.Kind == scanner.TokenIllegal {
					illegal++
				}
			}
			table.SetFooter([]string{"", "tokens", strconv.Itoa(len(tokens))})
			table.Render()

			if illegal > 0 {
				return fmt.Errorf("%s: %d malformed literal(s)", filename, illegal)
			}
			return nil
		},
	}
}
