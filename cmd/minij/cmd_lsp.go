package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/minij/lsp"
)

func newLSPCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			server := lsp.NewServer(version)
			return server.RunStdio()
		},
	}
}
