package tools

import (
	"context"

	"github.com/NERVsystems/remotepoint/pkg/geo"
	"github.com/mark3labs/mcp-go/mcp"
)

func pointTool(name, description string) mcp.Tool {
	return mcp.NewTool(name,
		mcp.WithDescription(description),
		mcp.WithNumber("latitude",
			mcp.Required(),
			mcp.Description("Latitude in degrees"),
		),
		mcp.WithNumber("longitude",
			mcp.Required(),
			mcp.Description("Longitude in degrees"),
		),
	)
}

// AddInputPointTool returns a tool definition for adding to the input set
func AddInputPointTool() mcp.Tool {
	return pointTool(ToolAddInputPoint,
		"Add a location to the input set kept by the server; re-adding an existing location moves it to the end")
}

// RemoveInputPointTool returns a tool definition for removing from the input set
func RemoveInputPointTool() mcp.Tool {
	return pointTool(ToolRemoveInputPoint,
		"Remove every input with exactly these coordinates from the input set kept by the server")
}

// ListInputPointsTool returns a tool definition for listing the input set
func ListInputPointsTool() mcp.Tool {
	return mcp.NewTool(ToolListInputPoints,
		mcp.WithDescription("List the input set kept by the server and its most distant point"),
	)
}

// HandleAddInputPoint adds a location and recomputes.
func (r *Registry) HandleAddInputPoint(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return r.editInputs(ctx, req, ToolAddInputPoint)
}

// HandleRemoveInputPoint removes a location and recomputes.
func (r *Registry) HandleRemoveInputPoint(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return r.editInputs(ctx, req, ToolRemoveInputPoint)
}

// HandleListInputPoints reports the current input set.
func (r *Registry) HandleListInputPoints(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := r.toolLogger(ToolListInputPoints)
	return jsonResult(logger, r.inputsOutput()), nil
}

func (r *Registry) editInputs(ctx context.Context, req mcp.CallToolRequest, tool string) (*mcp.CallToolResult, error) {
	logger := r.toolLogger(tool)

	loc, tErr := extractLocation(req, "latitude", "longitude")
	if tErr != nil {
		return ErrorWithGuidance(tErr), nil
	}

	if err := r.deps.Limiter.Wait(ctx, tool); err != nil {
		logger.Warn("rate limit wait failed", "error", err)
		return ErrorWithGuidance(NewToolError(CodeRateLimited, "too many updates", "")), nil
	}

	var err error
	if tool == ToolAddInputPoint {
		_, err = r.deps.Calculator.Add(ctx, loc)
	} else {
		_, err = r.deps.Calculator.Remove(ctx, loc)
	}
	if err != nil {
		logger.Error("failed to update inputs", "error", err)
		return ErrorWithGuidance(NewToolError(CodeSearchFailed, err.Error(), "")), nil
	}

	return jsonResult(logger, r.inputsOutput()), nil
}

func (r *Registry) inputsOutput() InputsOutput {
	out, isolation := r.deps.Calculator.Output()
	inputs := r.deps.Calculator.Inputs()
	if inputs == nil {
		inputs = []geo.Location{}
	}
	return InputsOutput{
		Inputs:      inputs,
		MostDistant: out,
		IsolationKm: isolation,
	}
}
