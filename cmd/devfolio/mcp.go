package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/devfolio/internal/mcpserver"
)

func newMCPCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the portfolio to MCP clients over stdio",
		Long: `Run a Model Context Protocol server on stdin/stdout. Clients can read the
portfolio, list projects, leave a message and request copy suggestions.
Logs go to stderr.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			asst, err := a.newAssistant(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = asst.Close() }()

			s := mcpserver.New(mcpserver.Deps{
				Store:     a.loadStore(ctx),
				Assistant: asst,
				Logger:    a.logger.Named("mcp"),
				Version:   version,
			})
			return mcpserver.Serve(ctx, s, cmd.InOrStdin(), cmd.OutOrStdout(), a.logger.Named("mcp"))
		},
	}
}
