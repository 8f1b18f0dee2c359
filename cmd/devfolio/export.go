package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newExportCmd(opts *rootOptions) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the stored document as JSON",
		Long:  `Write the whole stored document, credentials included, as indented JSON to stdout or to --out.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			data, err := json.MarshalIndent(a.loadDocument(ctx), "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal document: %w", err)
			}
			data = append(data, '\n')

			if outPath == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(outPath, data, 0600); err != nil {
				return fmt.Errorf("failed to write %s: %w", outPath, err)
			}
			a.logger.Info("document exported", zap.String("path", outPath))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default stdout)")
	return cmd
}
