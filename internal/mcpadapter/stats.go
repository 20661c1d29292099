// Package mcpadapter exposes stats generation as MCP tools so agent hosts
// can call it over stdio.
package mcpadapter

import (
	"context"
	"fmt"

	"github.com/chemforge/chem-stats/internal/stats"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// StatsInput is the MCP tool input schema. The field name matches the HTTP
// API body.
type StatsInput struct {
	Query string `json:"query" jsonschema:"chemical element symbol (e.g. 'Fe') or molecular formula (e.g. 'H2O')"`
}

// NewStatsHandler returns a tool handler that uses the given service.
// Pass the returned function to mcp.AddTool.
func NewStatsHandler(service *stats.Service) func(context.Context, *mcp.CallToolRequest, StatsInput) (*mcp.CallToolResult, stats.Record, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input StatsInput) (*mcp.CallToolResult, stats.Record, error) {
		return GenerateStats(ctx, service, req, input)
	}
}

// GenerateStats runs one generation for the query and returns the record.
func GenerateStats(
	ctx context.Context,
	service *stats.Service,
	req *mcp.CallToolRequest,
	input StatsInput,
) (*mcp.CallToolResult, stats.Record, error) {
	if input.Query == "" {
		return nil, stats.Record{}, fmt.Errorf("query is required")
	}

	record, err := service.Generate(ctx, input.Query)
	if err != nil {
		return nil, stats.Record{}, err
	}

	return nil, *record, nil
}
