package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/devfolio/internal/observability"
)

func newStatusCmd(opts *rootOptions) *cobra.Command {
	var showMessages bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Print portfolio counters and the inbox",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			doc := a.loadDocument(ctx)
			printer := observability.NewPrinter(cmd.OutOrStdout())
			printer.PrintDashboard(doc.Profile.Name, doc.Stats())
			if showMessages {
				printer.PrintMessages(doc.Messages)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showMessages, "messages", true, "Also print the newest messages")
	return cmd
}
