// Package tools provides the MCP tools for most-distant-point queries.
package tools

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/NERVsystems/remotepoint/pkg/cache"
	"github.com/NERVsystems/remotepoint/pkg/calculator"
	"github.com/NERVsystems/remotepoint/pkg/ratelimit"
	"github.com/NERVsystems/remotepoint/pkg/search"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Tool names.
const (
	ToolFindMostDistantPoint = "find_most_distant_point"
	ToolDistanceBetween      = "distance_between"
	ToolIsolationScore       = "isolation_score"
	ToolAddInputPoint        = "add_input_point"
	ToolRemoveInputPoint     = "remove_input_point"
	ToolListInputPoints      = "list_input_points"
)

// Dependencies are the services the tools run on.
type Dependencies struct {
	Searcher   *search.Searcher
	Finder     *cache.Finder
	Limiter    *ratelimit.RateLimiter
	Calculator *calculator.Calculator
}

// Registry holds all MCP tool registrations.
type Registry struct {
	logger *slog.Logger
	deps   Dependencies
}

// NewRegistry creates a new MCP tool registry.
func NewRegistry(logger *slog.Logger, deps Dependencies) *Registry {
	return &Registry{
		logger: logger,
		deps:   deps,
	}
}

// ToolDefinition represents an MCP tool definition.
type ToolDefinition struct {
	Name        string
	Description string
	Tool        mcp.Tool
	Handler     func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// GetToolDefinitions returns all tool definitions.
func (r *Registry) GetToolDefinitions() []ToolDefinition {
	return []ToolDefinition{
		// Search Tools
		{
			Name:        ToolFindMostDistantPoint,
			Description: "Find the point on Earth farthest from every given point",
			Tool:        FindMostDistantPointTool(),
			Handler:     r.HandleFindMostDistantPoint,
		},
		{
			Name:        ToolIsolationScore,
			Description: "Distance from a candidate location to the nearest of a set of points",
			Tool:        IsolationScoreTool(),
			Handler:     r.HandleIsolationScore,
		},

		// Distance Tools
		{
			Name:        ToolDistanceBetween,
			Description: "Great-circle distance between two locations",
			Tool:        DistanceBetweenTool(),
			Handler:     r.HandleDistanceBetween,
		},

		// Input Set Tools
		{
			Name:        ToolAddInputPoint,
			Description: "Add a location to the server's input set and recompute the most distant point",
			Tool:        AddInputPointTool(),
			Handler:     r.HandleAddInputPoint,
		},
		{
			Name:        ToolRemoveInputPoint,
			Description: "Remove a location from the server's input set and recompute the most distant point",
			Tool:        RemoveInputPointTool(),
			Handler:     r.HandleRemoveInputPoint,
		},
		{
			Name:        ToolListInputPoints,
			Description: "List the server's input set and its most distant point",
			Tool:        ListInputPointsTool(),
			Handler:     r.HandleListInputPoints,
		},
	}
}

// RegisterTools registers all tools with the MCP server.
func (r *Registry) RegisterTools(mcpServer *server.MCPServer) {
	for _, def := range r.GetToolDefinitions() {
		r.logger.Info("registering tool", "name", def.Name)
		mcpServer.AddTool(def.Tool, def.Handler)
	}
}

// toolLogger tags log lines with the tool and a fresh request id.
func (r *Registry) toolLogger(tool string) *slog.Logger {
	return r.logger.With("tool", tool, "request_id", uuid.NewString())
}

// jsonResult marshals output into a text result.
func jsonResult(logger *slog.Logger, output any) *mcp.CallToolResult {
	resultBytes, err := json.Marshal(output)
	if err != nil {
		logger.Error("failed to marshal result", "error", err)
		return ErrorWithGuidance(NewToolError(CodeSearchFailed, "failed to generate result", GuidanceGeneral))
	}
	return mcp.NewToolResultText(string(resultBytes))
}
