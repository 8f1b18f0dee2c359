package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/devfolio/internal/schemas"
	"github.com/jonathan/devfolio/internal/storage"
)

func newImportCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the stored document with a JSON file",
		Long: `Validate a document JSON file against the document schema, fill absent
fields with defaults and store it, replacing the current document.

Stop any running serve or mcp process first; it keeps its own copy of the
document and writes it back on the next change.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}
			if err := schemas.ValidateDocument(data); err != nil {
				return fmt.Errorf("invalid document: %w", err)
			}
			doc, err := storage.Decode(data)
			if err != nil {
				return err
			}
			storage.Backfill(doc)

			a, err := openApp(ctx, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.adapter.SaveStrict(ctx, doc); err != nil {
				return err
			}
			a.logger.Info("document imported",
				zap.String("path", args[0]),
				zap.Int("projects", len(doc.Projects)),
				zap.Int("skills", len(doc.Skills)))
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %s\n", args[0])
			return nil
		},
	}
}
