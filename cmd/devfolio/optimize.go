package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/devfolio/internal/assistant"
	"github.com/jonathan/devfolio/internal/observability"
	"github.com/jonathan/devfolio/internal/types"
)

func newOptimizeCmd(opts *rootOptions) *cobra.Command {
	var applyBio bool

	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "Ask the AI assistant to review the portfolio",
		Long: `Send the profile and projects to the configured LLM and print an improved
bio, per-project suggestions and general feedback. With --apply-bio the
improved bio replaces the stored one.`,
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

			st := a.loadStore(ctx)
			var (
				profile  types.Profile
				projects []types.Project
			)
			st.Read(func(doc *types.Document) {
				profile = doc.Profile.Clone()
				projects = doc.ProjectList("").Projects
			})

			result, err := asst.Optimize(ctx, profile, projects)
			if err != nil {
				return fmt.Errorf("failed to optimize portfolio: %w", err)
			}

			observability.NewPrinter(cmd.OutOrStdout()).PrintOptimization(result, projects)

			if applyBio {
				st.Dispatch(ctx, assistant.ApplyBio(result))
				fmt.Fprintln(cmd.OutOrStdout(), "Improved bio applied")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&applyBio, "apply-bio", false, "Store the improved bio")
	return cmd
}
