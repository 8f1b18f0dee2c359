// Package llm - extractor.go builds prompts that ask for structured JSON output.
package llm

import (
	"fmt"
	"strings"
)

// ExtractionSchema describes a JSON reply the model should produce.
type ExtractionSchema struct {
	Name        string        // Schema name (e.g., "PortfolioOptimization")
	Description string        // Task description placed before the output structure
	Fields      []SchemaField // Expected output fields
	Rules       []string      // Extra instructions listed under IMPORTANT
}

// SchemaField defines a single field in the extraction output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint shown to the model, e.g. "string" or `[{"projectId": "string"}]`
	Description string // Description for the LLM
	Required    bool   // Whether this field is required
}

// BuildExtractionPrompt constructs the LLM prompt from schema and input text.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	sb.WriteString(strings.TrimSpace(schema.Description))
	sb.WriteString("\n\n")

	if strings.TrimSpace(inputText) != "" {
		sb.WriteString(inputText)
		sb.WriteString("\n\n")
	}

	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = `"string"`
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  \"%s\": %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	sb.WriteString("IMPORTANT:\n")
	for _, rule := range schema.Rules {
		sb.WriteString("- ")
		sb.WriteString(rule)
		sb.WriteString("\n")
	}
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n")

	return sb.String()
}

// OptimizationSchema describes the portfolio review reply.
// description is the reviewer instruction text placed at the top of the prompt.
func OptimizationSchema(description string) ExtractionSchema {
	return ExtractionSchema{
		Name:        "PortfolioOptimization",
		Description: description,
		Fields: []SchemaField{
			{
				Name:        "improvedBio",
				Type:        `"string"`,
				Description: "A rewritten version of the bio that is more impactful, professional, and uses strong action verbs.",
				Required:    true,
			},
			{
				Name:        "projectSuggestions",
				Type:        `[{"projectId": "string", "suggestion": "string"}]`,
				Description: "One entry per project; projectId must be copied from the input. suggestion is a rewritten, punchy description focusing on tech stack and outcome.",
				Required:    true,
			},
			{
				Name:        "generalFeedback",
				Type:        `"string"`,
				Description: "A short paragraph on overall portfolio strength and missing keywords.",
				Required:    true,
			},
		},
		Rules: []string{
			"Use only project IDs that appear in the input.",
			"Keep every suggestion factual; do not invent metrics that are not in the input.",
		},
	}
}
