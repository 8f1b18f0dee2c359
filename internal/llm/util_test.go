package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "json code block",
			input:    "```json\n{\"improvedBio\": \"x\"}\n```",
			expected: `{"improvedBio": "x"}`,
		},
		{
			name:     "generic code block",
			input:    "```\n{\"improvedBio\": \"x\"}\n```",
			expected: `{"improvedBio": "x"}`,
		},
		{
			name:     "code block with language",
			input:    "```javascript\n{\"improvedBio\": \"x\"}\n```",
			expected: `{"improvedBio": "x"}`,
		},
		{
			name:     "plain JSON",
			input:    `{"improvedBio": "x"}`,
			expected: `{"improvedBio": "x"}`,
		},
		{
			name:     "preamble before object",
			input:    "Sure! Here is the review:\n{\"generalFeedback\": \"solid\"}",
			expected: `{"generalFeedback": "solid"}`,
		},
		{
			name:     "preamble before array",
			input:    "Suggestions:\n[\"a\", \"b\"]",
			expected: `["a", "b"]`,
		},
		{
			name:     "trailing chatter",
			input:    "{\"generalFeedback\": \"solid\"}\n\nLet me know if you want more!",
			expected: `{"generalFeedback": "solid"}`,
		},
		{
			name:     "escaped quotes",
			input:    "Result: {\"improvedBio\": \"I \\\"love\\\" data\"}",
			expected: `{"improvedBio": "I \"love\" data"}`,
		},
		{
			name:     "nested",
			input:    `Output: {"projectSuggestions": [{"projectId": "1", "suggestion": "s"}]}`,
			expected: `{"projectSuggestions": [{"projectId": "1", "suggestion": "s"}]}`,
		},
		{
			name:     "no JSON",
			input:    "  just words  ",
			expected: "just words",
		},
		{
			name:     "unbalanced",
			input:    `{"improvedBio": "x"`,
			expected: `{"improvedBio": "x"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "simple", input: `{"k": "v"}`, expected: `{"k": "v"}`},
		{name: "braces in string", input: `{"t": "Hello {name}!"}`, expected: `{"t": "Hello {name}!"}`},
		{name: "trailing text", input: `{"k": 1} more`, expected: `{"k": 1}`},
		{name: "empty", input: "", expected: ""},
		{name: "not an object", input: "nope", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractJSONObject(tt.input))
		})
	}
}

func TestExtractJSONArray(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "nested", input: `[[1, 2], [3]]`, expected: `[[1, 2], [3]]`},
		{name: "objects", input: `[{"id": 1}, {"id": 2}] tail`, expected: `[{"id": 1}, {"id": 2}]`},
		{name: "bracket in string", input: `["a]b"]`, expected: `["a]b"]`},
		{name: "not an array", input: "{}", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractJSONArray(tt.input))
		})
	}
}

func TestBuildExtractionPrompt(t *testing.T) {
	schema := OptimizationSchema("You are an expert technical recruiter.")
	prompt := BuildExtractionPrompt(schema, "Current Bio: \"hi\"")

	assert.True(t, strings.HasPrefix(prompt, "You are an expert technical recruiter."))
	assert.Contains(t, prompt, `Current Bio: "hi"`)
	assert.Contains(t, prompt, `"improvedBio": "string" (required)`)
	assert.Contains(t, prompt, `"projectSuggestions": [{"projectId": "string", "suggestion": "string"}] (required)`)
	assert.Contains(t, prompt, "- Use only project IDs that appear in the input.")
	assert.Contains(t, prompt, "no markdown")

	// Fields are comma separated except the last one
	assert.Contains(t, prompt, "missing keywords.\n}")
}
