package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/dhamidi/minij/format"
	"github.com/dhamidi/minij/lang/parser"
	"github.com/dhamidi/minij/lang/scanner"
)

const (
	historyFile = ".minij_history"
	promptMain  = "minij> "
	promptCont  = "  ...> "
)

func newReplCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Parse statements interactively",
		Long: `Read statements one at a time and print their syntax trees and
diagnostics. A statement that ends early, such as an unclosed block,
continues on the next line.

Commands: :text, :json and :dump switch the output format, :quit exits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := &repl{
				out:    cmd.OutOrStdout(),
				format: s.cfg.Output.Format,
				color:  colorEnabled(s.cfg.Output.Color, cmd.OutOrStdout()),
			}

			in := cmd.InOrStdin()
			if f, ok := in.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
				return r.runInteractive()
			}
			return r.run(lineReader(in))
		},
	}
}

type repl struct {
	out    io.Writer
	format string
	color  bool
}

// promptFunc reads one line of input. It returns io.EOF when input ends.
type promptFunc func(prompt string) (string, error)

func lineReader(r io.Reader) promptFunc {
	sc := bufio.NewScanner(r)
	return func(string) (string, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}
		return sc.Text(), nil
	}
}

func (r *repl) runInteractive() error {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	return r.run(func(prompt string) (string, error) {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", io.EOF
		}
		if err == nil && strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}
		return line, err
	})
}

func (r *repl) run(prompt promptFunc) error {
	for {
		src, ok, err := readStatement(prompt)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		trimmed := strings.TrimSpace(src)
		if strings.HasPrefix(trimmed, ":") {
			if r.command(trimmed) {
				return nil
			}
			continue
		}
		if trimmed == "" {
			continue
		}

		if err := r.eval(src); err != nil {
			return err
		}
	}
}

// command runs a colon command and reports whether the REPL should exit.
func (r *repl) command(line string) bool {
	switch name := strings.TrimPrefix(line, ":"); name {
	case "quit", "q":
		return true
	case "text", "json", "dump":
		r.format = name
		fmt.Fprintf(r.out, "output format: %s\n", name)
	default:
		fmt.Fprintf(r.out, "unknown command %s. Type :quit to exit.\n", line)
	}
	return false
}

func (r *repl) eval(src string) error {
	p := parser.New([]byte(src), parser.WithFile("<repl>"))
	stmt := p.ParseStatement()

	enc, err := format.NewEncoder(r.format, r.out)
	if err != nil {
		return err
	}
	if err := enc.Encode(stmt); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return format.NewDiagnosticPrinter(r.out, "", []byte(src)).WithColor(r.color).Print(p.Diagnostics())
}

// readStatement collects lines until they form a statement that does not
// end early. The boolean is false once input is exhausted.
func readStatement(prompt promptFunc) (string, bool, error) {
	var b strings.Builder
	for {
		p := promptMain
		if b.Len() > 0 {
			p = promptCont
		}
		line, err := prompt(p)
		if errors.Is(err, io.EOF) {
			if b.Len() > 0 {
				return b.String(), true, nil
			}
			return "", false, nil
		}
		if err != nil {
			return "", false, err
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		if strings.HasPrefix(strings.TrimSpace(b.String()), ":") || !incomplete(b.String()) {
			return b.String(), true, nil
		}
	}
}

// incomplete reports whether src fails only because input ran out.
func incomplete(src string) bool {
	if strings.TrimSpace(src) == "" {
		return false
	}
	p := parser.New([]byte(src))
	p.ParseStatement()
	for _, d := range p.Diagnostics() {
		if d.Severity == parser.SeverityError && d.Found.Kind == scanner.TokenEOF {
			return true
		}
	}
	return false
}
