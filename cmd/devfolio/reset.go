package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/devfolio/internal/types"
)

func newResetCmd(opts *rootOptions) *cobra.Command {
	var confirmed bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Replace the stored document with the seed portfolio",
		Long:  `Overwrite the stored document with the seed portfolio, including the default admin password. Requires --yes.
Stop any running serve or mcp process first; it keeps its own copy of the
document and writes it back on the next change.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !confirmed {
				return fmt.Errorf("refusing to reset without --yes")
			}
			ctx := cmd.Context()

			a, err := openApp(ctx, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.adapter.SaveStrict(ctx, types.DefaultDocument()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Portfolio reset to defaults")
			return nil
		},
	}

	cmd.Flags().BoolVar(&confirmed, "yes", false, "Confirm overwriting the stored document")
	return cmd
}
