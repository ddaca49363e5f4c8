package tools

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/mark3labs/mcp-go/mcp"
)

// Error codes reported in ToolError.Code.
const (
	CodeEmptyPoints        = "EMPTY_POINTS"
	CodeInvalidCoordinates = "INVALID_COORDINATES"
	CodeInvalidParameters  = "INVALID_PARAMETERS"
	CodeRateLimited        = "RATE_LIMITED"
	CodeSearchFailed       = "SEARCH_FAILED"
)

// Common error guidance messages
const (
	GuidanceEmptyPoints  = "Provide at least one point as {\"latitude\": <deg>, \"longitude\": <deg>}."
	GuidanceCoordinates  = "Latitude must be between -90 and 90 and longitude between -180 and 180, in decimal degrees."
	GuidanceParameters   = "Check the parameter names and types against the tool schema and try again."
	GuidanceRateLimited  = "Searches are expensive and currently throttled. Please try again in a few seconds."
	GuidanceSearchFailed = "The search did not finish. Retry the request, or send fewer points."
	GuidanceGeneral      = "Please try again later or modify your request parameters."
)

// ToolError is the structured error returned to the client, with guidance
// on how to recover.
type ToolError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Guidance string `json:"guidance,omitempty"`
}

// Error implements the error interface.
func (e *ToolError) Error() string {
	if e.Guidance != "" {
		return fmt.Sprintf("%s: %s. %s", e.Code, e.Message, e.Guidance)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewToolError creates a ToolError, filling in guidance for known codes.
func NewToolError(code, message, guidance string) *ToolError {
	if guidance == "" {
		switch code {
		case CodeEmptyPoints:
			guidance = GuidanceEmptyPoints
		case CodeInvalidCoordinates:
			guidance = GuidanceCoordinates
		case CodeInvalidParameters:
			guidance = GuidanceParameters
		case CodeRateLimited:
			guidance = GuidanceRateLimited
		case CodeSearchFailed:
			guidance = GuidanceSearchFailed
		default:
			guidance = GuidanceGeneral
		}
	}
	return &ToolError{Code: code, Message: message, Guidance: guidance}
}

// ErrorWithGuidance renders err as a tool error result whose text is the
// JSON form of err.
func ErrorWithGuidance(err *ToolError) *mcp.CallToolResult {
	data, mErr := json.Marshal(err)
	if mErr != nil {
		return mcp.NewToolResultError(err.Error())
	}
	return mcp.NewToolResultError(string(data))
}

// CoordinateError describes which coordinate of a point is out of range.
// index < 0 means the point is not part of a list.
func CoordinateError(index int, lat, lon float64) *ToolError {
	var message string
	prefix := ""
	if index >= 0 {
		prefix = fmt.Sprintf("point %d: ", index)
	}

	if lat < -90 || lat > 90 || math.IsNaN(lat) {
		message = fmt.Sprintf("%sinvalid latitude value: %f (must be between -90 and 90)", prefix, lat)
	} else {
		message = fmt.Sprintf("%sinvalid longitude value: %f (must be between -180 and 180)", prefix, lon)
	}
	return NewToolError(CodeInvalidCoordinates, message, "")
}
