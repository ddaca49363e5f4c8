package tools

import (
	"context"
	"errors"
	"time"

	"github.com/NERVsystems/remotepoint/pkg/geo"
	"github.com/NERVsystems/remotepoint/pkg/search"
	"github.com/mark3labs/mcp-go/mcp"
)

const pointsDescription = `Array of input points, each {"latitude": <degrees>, "longitude": <degrees>}`

// FindMostDistantPointTool returns a tool definition for the most distant point search
func FindMostDistantPointTool() mcp.Tool {
	return mcp.NewTool(ToolFindMostDistantPoint,
		mcp.WithDescription("Find the location on Earth whose distance to the nearest of the given points is as large as possible (a pole of inaccessibility for the set)"),
		mcp.WithArray("points",
			mcp.Required(),
			mcp.Description(pointsDescription),
		),
	)
}

// HandleFindMostDistantPoint runs the search, answering from the cache when
// the same set was searched recently.
func (r *Registry) HandleFindMostDistantPoint(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := r.toolLogger(ToolFindMostDistantPoint)

	locs, tErr := extractPoints(req, "points")
	if tErr != nil {
		return ErrorWithGuidance(tErr), nil
	}

	if err := r.deps.Limiter.Wait(ctx, ToolFindMostDistantPoint); err != nil {
		logger.Warn("rate limit wait failed", "error", err)
		return ErrorWithGuidance(NewToolError(CodeRateLimited, "too many searches", "")), nil
	}

	start := time.Now()
	res, cached, err := r.deps.Finder.Lookup(ctx, geo.PointsOf(locs))
	if err != nil {
		logger.Error("search failed", "error", err, "inputs", len(locs))
		if errors.Is(err, search.ErrNoPoints) {
			return ErrorWithGuidance(NewToolError(CodeEmptyPoints, "no input points", "")), nil
		}
		return ErrorWithGuidance(NewToolError(CodeSearchFailed, err.Error(), "")), nil
	}

	logger.Info("search complete",
		"inputs", len(locs),
		"cached", cached,
		"isolation_km", res.Isolation,
		"duration", time.Since(start))

	return jsonResult(logger, MostDistantOutput{
		Point:       geo.LocationOf(res.Point),
		IsolationKm: res.Isolation,
		Seeds:       len(res.Seeds),
		InputCount:  len(locs),
		Cached:      cached,
	}), nil
}

// IsolationScoreTool returns a tool definition for scoring one candidate
func IsolationScoreTool() mcp.Tool {
	return mcp.NewTool(ToolIsolationScore,
		mcp.WithDescription("Compute the distance from a candidate location to the nearest of the given points"),
		mcp.WithArray("points",
			mcp.Required(),
			mcp.Description(pointsDescription),
		),
		mcp.WithNumber("latitude",
			mcp.Required(),
			mcp.Description("Candidate latitude in degrees"),
		),
		mcp.WithNumber("longitude",
			mcp.Required(),
			mcp.Description("Candidate longitude in degrees"),
		),
	)
}

// HandleIsolationScore scores a single candidate against the points.
func (r *Registry) HandleIsolationScore(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := r.toolLogger(ToolIsolationScore)

	locs, tErr := extractPoints(req, "points")
	if tErr != nil {
		return ErrorWithGuidance(tErr), nil
	}
	candidate, tErr := extractLocation(req, "latitude", "longitude")
	if tErr != nil {
		return ErrorWithGuidance(tErr), nil
	}

	score, err := r.deps.Searcher.Isolation(geo.PointsOf(locs), candidate.Point())
	if err != nil {
		logger.Error("isolation failed", "error", err)
		return ErrorWithGuidance(NewToolError(CodeEmptyPoints, err.Error(), "")), nil
	}

	logger.DebugContext(ctx, "isolation computed", "inputs", len(locs), "isolation_km", score)
	return jsonResult(logger, IsolationOutput{
		Candidate:   candidate,
		IsolationKm: score,
		InputCount:  len(locs),
	}), nil
}
