// Package prompts provides prompt templates for use with the MCP server.
package prompts

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Prompt names.
const (
	RemotePoint         = "remote_point"
	RemotePointExamples = "remote_point_examples"
)

// RegisterRemotePointPrompts registers the most-distant-point prompts with the MCP server
func RegisterRemotePointPrompts(s *server.MCPServer) {
	s.AddPrompt(mcp.NewPrompt(RemotePoint,
		mcp.WithPromptDescription("Instructions for finding the place farthest from a set of locations"),
	), RemotePointPromptHandler)

	s.AddPrompt(mcp.NewPrompt(RemotePointExamples,
		mcp.WithPromptDescription("Examples of well-formed most distant point queries"),
	), RemotePointExamplesHandler)
}

// RemotePointPromptHandler returns the main usage prompt
func RemotePointPromptHandler(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	systemPrompt := `You have access to tools that find the location on Earth farthest from a set of points.
The answer maximizes the great-circle distance to the NEAREST input point, so it is the most
isolated spot relative to the whole set, not the point farthest from any single input.

When using these tools:

1. Pass coordinates in decimal degrees: latitude in [-90, 90], longitude in [-180, 180]
2. Send every point in one find_most_distant_point call; the result depends on the whole set
3. isolation_km is the distance from the answer to the closest input point
4. Use isolation_score to compare a candidate location against the same set
5. Use add_input_point, remove_input_point and list_input_points to build a set over several turns

ACCURACY:
The search refines a 1 degree grid to about 0.01 degrees, so answers are accurate to roughly a kilometre.
Near the poles longitude is meaningless; read the latitude first.

ERROR HANDLING GUIDELINES:
Error results are JSON objects with code, message and guidance fields.
- EMPTY_POINTS: supply at least one point
- INVALID_COORDINATES: fix the point named in the message; latitude and longitude may be swapped
- RATE_LIMITED: wait a few seconds and retry`

	return mcp.NewGetPromptResult(
		"Most Distant Point Tool Usage Guidelines",
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(
				mcp.RoleAssistant,
				mcp.NewTextContent(systemPrompt),
			),
		},
	), nil
}

// RemotePointExamplesHandler returns examples for find_most_distant_point
func RemotePointExamplesHandler(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	examplesPrompt := `EXAMPLES OF EFFECTIVE FIND_MOST_DISTANT_POINT USAGE:

User: "Where on Earth is farthest from London?"
AI: *uses find_most_distant_point with points [{"latitude": 51.5074, "longitude": -0.1278}]*
The answer is the antipode, near 51.5 S 179.9 E, about 20015 km away.

User: "I have offices in New York, Tokyo and Sydney. Where is the most remote place from all of them?"
AI: *uses find_most_distant_point with points
  [{"latitude": 40.7128, "longitude": -74.0060},
   {"latitude": 35.6762, "longitude": 139.6503},
   {"latitude": -33.8688, "longitude": 151.2093}]*

User: "How far is Reykjavik from the nearest of those offices?"
AI: *uses isolation_score with the same points and latitude 64.1466, longitude -21.9426*

COMMON MISTAKES:
❌ Passing "51.5074, -0.1278" as a single string instead of an object
❌ Using degrees-minutes-seconds such as 51°30'26"N
✅ Use decimal degrees in {"latitude": ..., "longitude": ...} objects`

	return mcp.NewGetPromptResult(
		"Most Distant Point Examples",
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(
				mcp.RoleAssistant,
				mcp.NewTextContent(examplesPrompt),
			),
		},
	), nil
}
