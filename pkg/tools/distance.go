package tools

import (
	"context"

	"github.com/NERVsystems/remotepoint/pkg/geo"
	"github.com/mark3labs/mcp-go/mcp"
)

// DistanceBetweenTool returns a tool definition for great-circle distance
func DistanceBetweenTool() mcp.Tool {
	return mcp.NewTool(ToolDistanceBetween,
		mcp.WithDescription("Calculate the great-circle distance between two locations"),
		mcp.WithNumber("from_lat",
			mcp.Required(),
			mcp.Description("The latitude of the first location"),
		),
		mcp.WithNumber("from_lon",
			mcp.Required(),
			mcp.Description("The longitude of the first location"),
		),
		mcp.WithNumber("to_lat",
			mcp.Required(),
			mcp.Description("The latitude of the second location"),
		),
		mcp.WithNumber("to_lon",
			mcp.Required(),
			mcp.Description("The longitude of the second location"),
		),
	)
}

// HandleDistanceBetween computes the distance on the configured sphere.
func (r *Registry) HandleDistanceBetween(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := r.toolLogger(ToolDistanceBetween)

	from, tErr := extractLocation(req, "from_lat", "from_lon")
	if tErr != nil {
		return ErrorWithGuidance(tErr), nil
	}
	to, tErr := extractLocation(req, "to_lat", "to_lon")
	if tErr != nil {
		return ErrorWithGuidance(tErr), nil
	}

	d := geo.DistanceOn(r.deps.Searcher.Radius(), from.Point().Optimize(), to.Point().Optimize())
	logger.DebugContext(ctx, "distance computed", "distance_km", d)

	return jsonResult(logger, DistanceOutput{From: from, To: to, DistanceKm: d}), nil
}
