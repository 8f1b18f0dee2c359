// Package main provides the devfolio command line: the portfolio HTTP server,
// the MCP stdio server and maintenance commands for the stored document.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// rootOptions are the persistent flags shared by every command.
type rootOptions struct {
	configPath string
	devLogs    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "devfolio",
		Short:         "Developer portfolio server",
		Long:          "devfolio serves a single-owner developer portfolio with an admin area, a contact inbox and an optional AI writing assistant.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to a JSON or YAML config file")
	root.PersistentFlags().BoolVar(&opts.devLogs, "dev", false, "Use human-readable console logs")

	root.AddCommand(
		newServeCmd(opts),
		newMCPCmd(opts),
		newStatusCmd(opts),
		newExportCmd(opts),
		newImportCmd(opts),
		newResetCmd(opts),
		newOptimizeCmd(opts),
	)
	return root
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
