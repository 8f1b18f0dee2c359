// Package assistant provides AI text suggestions and the portfolio review.
//
// Suggest is best effort and falls back to the caller's text on any failure.
// Optimize reports every failure so callers can tell a missing result from a
// ready one.
package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/devfolio/internal/llm"
	"github.com/jonathan/devfolio/internal/prompts"
	"github.com/jonathan/devfolio/internal/sanitize"
	"github.com/jonathan/devfolio/internal/schemas"
	"github.com/jonathan/devfolio/internal/store"
	"github.com/jonathan/devfolio/internal/types"
)

const promptFile = "assistant.json"

// ErrDisabled is returned by Optimize when no LLM client is configured.
var ErrDisabled = errors.New("AI assistant is disabled: no API key configured")

// Assistant wraps an LLM client. A nil client disables all calls.
type Assistant struct {
	client llm.Client
	logger *zap.Logger
}

// New creates an assistant. client may be nil.
func New(client llm.Client, logger *zap.Logger) *Assistant {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Assistant{client: client, logger: logger}
}

// Enabled reports whether an LLM client is configured.
func (a *Assistant) Enabled() bool {
	return a != nil && a.client != nil
}

// Close releases the underlying client.
func (a *Assistant) Close() error {
	if !a.Enabled() {
		return nil
	}
	return a.client.Close()
}

// Suggest asks the model for a polished version of current for the named field.
// Any failure returns current unchanged.
func (a *Assistant) Suggest(ctx context.Context, field, current string) string {
	if !a.Enabled() {
		return current
	}

	prompt, err := prompts.Render(promptFile, "suggest", map[string]string{
		"Field":   field,
		"Context": current,
	})
	if err != nil {
		a.logger.Error("failed to build suggestion prompt", zap.Error(err))
		return current
	}

	text, err := a.client.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		a.logger.Warn("suggestion request failed", zap.String("field", field), zap.Error(err))
		return current
	}

	text = sanitize.PlainText(text)
	if text == "" {
		return current
	}
	return text
}

// Optimize asks the model to review the bio and projects.
func (a *Assistant) Optimize(ctx context.Context, profile types.Profile, projects []types.Project) (*types.OptimizationResult, error) {
	if !a.Enabled() {
		return nil, ErrDisabled
	}

	prompt, err := BuildOptimizePrompt(profile, projects)
	if err != nil {
		return nil, err
	}

	raw, err := a.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		a.logger.Warn("optimization request failed", zap.Error(err))
		return nil, fmt.Errorf("failed to generate optimization: %w", err)
	}
	raw = llm.CleanJSONBlock(raw)
	if raw == "" {
		return nil, fmt.Errorf("no response from AI")
	}

	if err := schemas.ValidateOptimization(raw); err != nil {
		a.logger.Warn("optimization response rejected", zap.Error(err))
		return nil, fmt.Errorf("invalid optimization response: %w", err)
	}

	var result types.OptimizationResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("failed to parse optimization response: %w", err)
	}
	if result.ProjectSuggestions == nil {
		result.ProjectSuggestions = []types.ProjectSuggestion{}
	}
	return &result, nil
}

// BuildOptimizePrompt renders the review prompt. Projects are listed as
// ID/Title/Description blocks separated by "---" lines.
func BuildOptimizePrompt(profile types.Profile, projects []types.Project) (string, error) {
	intro, err := prompts.Get(promptFile, "optimize")
	if err != nil {
		return "", err
	}

	entries := make([]string, 0, len(projects))
	for _, p := range projects {
		entry, err := prompts.Render(promptFile, "project-entry", map[string]string{
			"ID":          p.ID,
			"Title":       p.Title,
			"Description": p.Description,
		})
		if err != nil {
			return "", err
		}
		entries = append(entries, entry)
	}

	input, err := prompts.Render(promptFile, "optimize-input", map[string]string{
		"Bio":      profile.Bio,
		"Projects": strings.Join(entries, "\n---\n"),
	})
	if err != nil {
		return "", err
	}

	return llm.BuildExtractionPrompt(llm.OptimizationSchema(intro), input), nil
}

// ApplyBio returns the action that adopts the improved bio.
func ApplyBio(result *types.OptimizationResult) store.Action {
	bio := result.ImprovedBio
	return store.UpdateProfile(types.ProfilePatch{Bio: &bio})
}

// ApplyProjectSuggestion returns the action that replaces the project's
// description with the suggestion. ok is false when the project no longer exists.
func ApplyProjectSuggestion(doc *types.Document, suggestion types.ProjectSuggestion) (store.Action, bool) {
	project, ok := doc.FindProject(suggestion.ProjectID)
	if !ok {
		return store.Action{}, false
	}
	project.Description = suggestion.Suggestion
	return store.UpdateProject(project), true
}
