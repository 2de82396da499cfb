package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/minij/format"
	"github.com/dhamidi/minij/lang/parser"
)

func newCheckCmd(s *settings) *cobra.Command {
	var colorMode string
	var maxErrors int

	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Report syntax errors in source files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("color") {
				colorMode = s.cfg.Output.Color
			}
			if !cmd.Flags().Changed("max-errors") {
				maxErrors = s.cfg.Output.MaxErrors
			}
			out := cmd.OutOrStdout()
			useColor := colorEnabled(colorMode, out)

			failed := 0
			for _, name := range args {
				filename, src, err := readSource(cmd, name)
				if err != nil {
					return err
				}

				p := parser.New(src, parser.WithFile(filename), parser.WithStartLine(s.cfg.Parser.StartLine))
				p.ParseCompilationUnit()
				diags := p.Diagnostics()

				shown := diags
				if maxErrors > 0 && len(shown) > maxErrors {
					shown = shown[:maxErrors]
				}
				printer := format.NewDiagnosticPrinter(out, filename, src).WithColor(useColor)
				if err := printer.Print(shown); err != nil {
					return fmt.Errorf("print diagnostics: %w", err)
				}
				if len(shown) < len(diags) {
					fmt.Fprintf(out, "%s: %d more diagnostic(s) not shown\n", filename, len(diags)-len(shown))
				}
				fmt.Fprintf(out, "%s: %s\n", filename, format.Summary(diags))

				for _, d := range diags {
					if d.Severity == parser.SeverityError {
						failed++
						break
					}
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d file(s) have syntax errors", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&colorMode, "color", "auto", "colorize output (auto, always, never)")
	cmd.Flags().IntVar(&maxErrors, "max-errors", 0, "diagnostics to print per file (0 prints all)")

	return cmd
}
