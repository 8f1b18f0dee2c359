package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ValidPrompt(t *testing.T) {
	ClearCache()

	prompt, err := Get("assistant.json", "suggest")
	require.NoError(t, err)
	assert.Contains(t, prompt, "You are a helpful portfolio assistant.")
	assert.Contains(t, prompt, "{{.Field}}")
}

func TestGet_InvalidFile(t *testing.T) {
	ClearCache()

	_, err := Get("nonexistent.json", "some-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read prompt file")
}

func TestGet_InvalidKey(t *testing.T) {
	ClearCache()

	_, err := Get("assistant.json", "nonexistent-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMustGet(t *testing.T) {
	ClearCache()

	assert.Panics(t, func() {
		MustGet("nonexistent.json", "some-key")
	})
	assert.NotPanics(t, func() {
		assert.NotEmpty(t, MustGet("assistant.json", "optimize"))
	})
}

func TestRender(t *testing.T) {
	ClearCache()

	got, err := Render("assistant.json", "suggest", map[string]string{
		"Field":   "Project Description",
		"Context": "Built a dashboard",
	})
	require.NoError(t, err)
	assert.Contains(t, got, `The user is writing content for their "Project Description".`)
	assert.Contains(t, got, `Context/Existing Content: "Built a dashboard"`)
	assert.NotContains(t, got, "{{.")

	_, err = Render("assistant.json", "missing", nil)
	assert.Error(t, err)
}

func TestRender_ProjectEntry(t *testing.T) {
	got, err := Render("assistant.json", "project-entry", map[string]string{
		"ID": "1", "Title": "Churn", "Description": "Model",
	})
	require.NoError(t, err)
	assert.Equal(t, "ID: 1\nTitle: Churn\nDescription: Model", got)
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		template string
		data     map[string]string
		want     string
	}{
		{
			name:     "replaces all",
			template: "Hello {{.Name}}, see {{.Name}} at {{.Place}}",
			data:     map[string]string{"Name": "Alex", "Place": "NYC"},
			want:     "Hello Alex, see Alex at NYC",
		},
		{
			name:     "no placeholders",
			template: "plain",
			data:     map[string]string{"Key": "Value"},
			want:     "plain",
		},
		{
			name:     "missing data leaves placeholder",
			template: "Hello {{.Name}}",
			data:     map[string]string{},
			want:     "Hello {{.Name}}",
		},
		{
			name:     "values are not re-expanded",
			template: "{{.A}} {{.B}}",
			data:     map[string]string{"A": "{{.B}}", "B": "x"},
			want:     "{{.B}} x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.template, tt.data))
		})
	}
}

func TestList(t *testing.T) {
	ClearCache()

	keys, err := List("assistant.json")
	require.NoError(t, err)
	assert.Equal(t, []string{"optimize", "optimize-input", "project-entry", "suggest"}, keys)
}

func TestCaching(t *testing.T) {
	ClearCache()

	prompt1, err := Get("assistant.json", "suggest")
	require.NoError(t, err)
	prompt2, err := Get("assistant.json", "suggest")
	require.NoError(t, err)

	assert.Equal(t, prompt1, prompt2)
}
