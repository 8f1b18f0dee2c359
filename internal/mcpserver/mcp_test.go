package mcpserver

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/devfolio/internal/assistant"
	"github.com/jonathan/devfolio/internal/llm"
	"github.com/jonathan/devfolio/internal/store"
	"github.com/jonathan/devfolio/internal/types"
)

type stubLLM struct {
	text string
	err  error
}

func (s *stubLLM) GenerateContent(context.Context, string, llm.ModelTier) (string, error) {
	return s.text, s.err
}

func (s *stubLLM) GenerateJSON(context.Context, string, llm.ModelTier) (string, error) {
	return "", s.err
}

func (s *stubLLM) GetModel(llm.ModelTier) string { return "stub" }
func (s *stubLLM) Close() error                  { return nil }

func newTestDeps(t *testing.T) Deps {
	t.Helper()
	doc := types.DefaultDocument()
	doc.Profile.ResumeURL = "data:application/pdf;base64,JVBERi0="
	return Deps{Store: store.New(doc, nil, nil)}
}

func toolText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	tc, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected TextContent, got %T", result.Content[0])
	return tc.Text
}

func callTool(name string, args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func TestGetPortfolio(t *testing.T) {
	deps := newTestDeps(t)

	result, err := getPortfolio(deps)(context.Background(), callTool("get_portfolio", nil))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var view PortfolioView
	require.NoError(t, json.Unmarshal([]byte(toolText(t, result)), &view))
	assert.Equal(t, "Alex Chen", view.Profile.Name)
	assert.Equal(t, "/resume", view.Profile.ResumeURL, "inline resume data is not exposed")
	assert.Len(t, view.Projects, 3)
	assert.Len(t, view.Skills, 7)
}

func TestListProjects(t *testing.T) {
	deps := newTestDeps(t)

	tests := []struct {
		name    string
		args    map[string]any
		wantIDs []string
	}{
		{name: "all", args: nil, wantIDs: []string{"1", "2", "3"}},
		{name: "by tech", args: map[string]any{"tech": "Python"}, wantIDs: []string{"1", "3"}},
		{name: "unknown tech", args: map[string]any{"tech": "COBOL"}, wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := listProjects(deps)(context.Background(), callTool("list_projects", tt.args))
			require.NoError(t, err)

			var view types.ProjectsView
			require.NoError(t, json.Unmarshal([]byte(toolText(t, result)), &view))
			ids := make([]string, 0, len(view.Projects))
			for _, p := range view.Projects {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestSendMessage(t *testing.T) {
	deps := newTestDeps(t)

	result, err := sendMessage(deps)(context.Background(), callTool("send_message", map[string]any{
		"name": "Robin", "email": "robin@example.com", "message": "Let's talk",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError, toolText(t, result))

	doc := deps.Store.State()
	require.Len(t, doc.Messages, 1)
	assert.Equal(t, "Robin", doc.Messages[0].Name)
	assert.False(t, doc.Messages[0].Read)
	assert.Contains(t, toolText(t, result), doc.Messages[0].ID)
}

func TestSendMessage_Invalid(t *testing.T) {
	deps := newTestDeps(t)

	result, err := sendMessage(deps)(context.Background(), callTool("send_message", map[string]any{
		"name": "Robin", "email": "not-an-email", "message": "hi",
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Empty(t, deps.Store.State().Messages)
}

func TestSuggestText(t *testing.T) {
	tests := []struct {
		name   string
		client llm.Client
		want   string
	}{
		{name: "assistant reply", client: &stubLLM{text: "Crisper."}, want: "Crisper."},
		{name: "assistant failure", client: &stubLLM{err: assert.AnError}, want: "rough draft"},
		{name: "no assistant", client: nil, want: "rough draft"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := newTestDeps(t)
			deps.Assistant = assistant.New(tt.client, nil)

			result, err := suggestText(deps)(context.Background(), callTool("suggest_text", map[string]any{
				"field": "bio", "text": "rough draft",
			}))
			require.NoError(t, err)
			assert.False(t, result.IsError)
			assert.Equal(t, tt.want, toolText(t, result))
		})
	}
}

func TestSuggestText_MissingArgs(t *testing.T) {
	deps := newTestDeps(t)
	deps.Assistant = assistant.New(nil, nil)

	result, err := suggestText(deps)(context.Background(), callTool("suggest_text", map[string]any{"field": "bio"}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Equal(t, "text is required", toolText(t, result))
}

func TestProfileResource(t *testing.T) {
	deps := newTestDeps(t)

	contents, err := profileResource(deps)(context.Background(), mcp.ReadResourceRequest{
		Params: mcp.ReadResourceParams{URI: ProfileURI},
	})
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, ProfileURI, text.URI)
	assert.Equal(t, "application/json", text.MIMEType)

	var profile types.Profile
	require.NoError(t, json.Unmarshal([]byte(text.Text), &profile))
	assert.Equal(t, "Senior Data Analyst", profile.Title)
}

func TestNew_ListsTools(t *testing.T) {
	s := New(newTestDeps(t))

	resp := s.HandleMessage(context.Background(), []byte(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))
	require.NotNil(t, resp)

	b, err := json.Marshal(resp)
	require.NoError(t, err)
	for _, name := range []string{"get_portfolio", "list_projects", "send_message", "suggest_text"} {
		assert.Contains(t, string(b), `"name":"`+name+`"`)
	}
}
