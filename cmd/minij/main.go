package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/minij/config"
)

const version = "0.1.0"

// settings is shared by all subcommands; it holds the configuration file
// merged with the global flags.
type settings struct {
	configFile string
	verbose    int
	cfg        config.Config
}

func newRootCmd() *cobra.Command {
	s := &settings{cfg: config.Defaults}

	rootCmd := &cobra.Command{
		Use:           "minij",
		Short:         "Error-resilient parser for a small Java-like language",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.load()
		},
	}

	rootCmd.PersistentFlags().StringVar(&s.configFile, "config", "", "TOML configuration file")
	rootCmd.PersistentFlags().CountVarP(&s.verbose, "verbose", "v", "increase log verbosity (repeatable)")

	rootCmd.AddCommand(newParseCmd(s))
	rootCmd.AddCommand(newCheckCmd(s))
	rootCmd.AddCommand(newTokensCmd(s))
	rootCmd.AddCommand(newGrammarCmd(s))
	rootCmd.AddCommand(newReplCmd(s))
	rootCmd.AddCommand(newLSPCmd(s))
	rootCmd.AddCommand(newConfigCmd(s))

	return rootCmd
}

func (s *settings) load() error {
	if s.configFile != "" {
		if err := config.Load(s.configFile, &s.cfg); err != nil {
			return err
		}
	}
	s.cfg.Log.Verbosity += s.verbose

	if s.cfg.Log.File != "" {
		commonlog.Configure(s.cfg.Log.Verbosity, &s.cfg.Log.File)
	} else {
		commonlog.Configure(s.cfg.Log.Verbosity, nil)
	}
	commonlog.GetLogger("minij.cli").Debugf("configuration loaded from %q", s.configFile)
	return nil
}

// colorEnabled resolves the auto/always/never color setting for w.
func colorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "minij: %s\n", err)
		os.Exit(1)
	}
}
