// Package mcpserver exposes the portfolio to MCP clients over stdio.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/jonathan/devfolio/internal/assistant"
	"github.com/jonathan/devfolio/internal/store"
	"github.com/jonathan/devfolio/internal/types"
)

// ProfileURI is the resource holding the public profile.
const ProfileURI = "portfolio://profile"

// Deps holds dependencies for the MCP server.
type Deps struct {
	Store     *store.Store
	Assistant *assistant.Assistant // optional; suggest_text echoes its input when nil
	Logger    *zap.Logger
	Version   string
}

// PortfolioView is the public portfolio returned by get_portfolio.
type PortfolioView struct {
	Profile  types.Profile   `json:"profile"`
	Projects []types.Project `json:"projects"`
	Skills   []types.Skill   `json:"skills"`
}

// New creates an MCP server with all portfolio tools and resources registered.
func New(deps Deps) *server.MCPServer {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Assistant == nil {
		deps.Assistant = assistant.New(nil, deps.Logger)
	}
	version := deps.Version
	if version == "" {
		version = "dev"
	}

	s := server.NewMCPServer(
		"devfolio",
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithInstructions("devfolio: read a developer portfolio and leave the owner a message."),
		server.WithRecovery(),
	)

	s.AddTool(
		mcp.NewTool("get_portfolio",
			mcp.WithDescription("Return the public portfolio: profile, projects and skills."),
		),
		getPortfolio(deps),
	)

	s.AddTool(
		mcp.NewTool("list_projects",
			mcp.WithDescription("List projects, optionally only those using a technology."),
			mcp.WithString("tech", mcp.Description("Technology to filter by, e.g. SQL")),
		),
		listProjects(deps),
	)

	s.AddTool(
		mcp.NewTool("send_message",
			mcp.WithDescription("Leave a message in the portfolio owner's inbox."),
			mcp.WithString("name", mcp.Description("Sender name"), mcp.Required()),
			mcp.WithString("email", mcp.Description("Sender email address"), mcp.Required()),
			mcp.WithString("message", mcp.Description("Message body"), mcp.Required()),
		),
		sendMessage(deps),
	)

	s.AddTool(
		mcp.NewTool("suggest_text",
			mcp.WithDescription("Polish a piece of portfolio copy. Returns the input unchanged when the assistant is unavailable."),
			mcp.WithString("field", mcp.Description("What the text is for, e.g. bio or project description"), mcp.Required()),
			mcp.WithString("text", mcp.Description("Current text"), mcp.Required()),
		),
		suggestText(deps),
	)

	s.AddResource(
		mcp.NewResource(
			ProfileURI,
			"Portfolio Profile",
			mcp.WithResourceDescription("Public profile of the portfolio owner as JSON"),
			mcp.WithMIMEType("application/json"),
		),
		profileResource(deps),
	)

	return s
}

// Serve speaks the MCP stdio protocol over in and out until ctx is cancelled.
// Protocol errors are written to logger, never to out.
func Serve(ctx context.Context, s *server.MCPServer, in io.Reader, out io.Writer, logger *zap.Logger) error {
	stdio := server.NewStdioServer(s)
	if logger != nil {
		stdio.SetErrorLogger(zap.NewStdLog(logger))
	}
	if err := stdio.Listen(ctx, in, out); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("mcp server error: %w", err)
	}
	return nil
}

func getPortfolio(deps Deps) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var view PortfolioView
		deps.Store.Read(func(doc *types.Document) {
			view = PortfolioView{
				Profile:  doc.About().Profile,
				Projects: doc.ProjectList("").Projects,
				Skills:   append(make([]types.Skill, 0, len(doc.Skills)), doc.Skills...),
			}
		})
		return jsonResult(view)
	}
}

func listProjects(deps Deps) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		tech := req.GetString("tech", "")
		var view types.ProjectsView
		deps.Store.Read(func(doc *types.Document) { view = doc.ProjectList(tech) })
		return jsonResult(view)
	}
}

func sendMessage(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		in := types.MessageInput{
			Name:    req.GetString("name", ""),
			Email:   req.GetString("email", ""),
			Message: req.GetString("message", ""),
		}
		if err := in.Validate(); err != nil {
			return mcpError(fmt.Sprintf("invalid message: %v", err)), nil
		}

		msg := in.ToMessage(types.NewID(), time.Now())
		deps.Store.Dispatch(context.WithoutCancel(ctx), store.AddMessage(msg))
		deps.Logger.Info("contact message received via MCP", zap.String("id", msg.ID))
		return mcpText(fmt.Sprintf("Message %s delivered", msg.ID)), nil
	}
}

func suggestText(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		field, err := req.RequireString("field")
		if err != nil {
			return mcpError("field is required"), nil
		}
		text, err := req.RequireString("text")
		if err != nil {
			return mcpError("text is required"), nil
		}
		return mcpText(deps.Assistant.Suggest(ctx, field, text)), nil
	}
}

func profileResource(deps Deps) server.ResourceHandlerFunc {
	return func(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		var profile types.Profile
		deps.Store.Read(func(doc *types.Document) { profile = doc.About().Profile })

		b, err := json.Marshal(profile)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal profile: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     string(b),
			},
		}, nil
	}
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcpError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}
	return mcpText(string(b)), nil
}

func mcpText(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: text},
		},
	}
}

func mcpError(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: msg},
		},
		IsError: true,
	}
}
