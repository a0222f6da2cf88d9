package mcp

import (
	"context"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func (s *GatewayServer) toolExecuteQuery() (mcp.Tool, server.ToolHandlerFunc) {
	return mcp.Tool{
		Name:        "execute-query",
		Description: "Execute an SQL query and return results",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"sql": map[string]interface{}{
					"type":        "string",
					"description": "SQL query to execute (required)",
				},
				"connection_name": map[string]interface{}{
					"type":        "string",
					"description": "Name of the connection to use (optional, uses default if not specified)",
				},
				"max_rows": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of rows to return (optional, uses default if not specified)",
				},
			},
			Required: []string{"sql"},
		},
	}, s.handleExecuteQuery
}

func (s *GatewayServer) handleExecuteQuery(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := getArgs(request.Params.Arguments)
	if !ok {
		return mcp.NewToolResultError(ErrInvalidArguments.Error()), nil
	}

	query, ok := getStringArg(args, "sql")
	if !ok || query == "" {
		return mcp.NewToolResultError(ErrQueryRequired.Error()), nil
	}

	connName, _ := getStringArg(args, "connection_name")
	maxRows := getIntArg(args, "max_rows", 0)
	effectiveLimit := maxRows
	if effectiveLimit <= 0 {
		effectiveLimit = s.manager.Limits().MaxRows
	}

	result, err := s.executor.Execute(ctx, query, connName, maxRows)
	if err != nil {
		log.Printf("Error executing query: %v", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatQueryResult(result, effectiveLimit)), nil
}
