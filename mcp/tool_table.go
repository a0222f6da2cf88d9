package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func (s *GatewayServer) toolListTables() (mcp.Tool, server.ToolHandlerFunc) {
	return mcp.Tool{
		Name:        "list-tables",
		Description: "List all tables in the database",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"connection_name": map[string]interface{}{
					"type":        "string",
					"description": "Name of the connection to use (optional, uses default if not specified)",
				},
			},
			Required: []string{},
		},
	}, s.handleListTables
}

func (s *GatewayServer) handleListTables(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := getArgs(request.Params.Arguments)
	if !ok {
		return mcp.NewToolResultError(ErrInvalidArguments.Error()), nil
	}

	connName, _ := getStringArg(args, "connection_name")
	tables, err := s.metadata.ListTables(ctx, connName)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatTableList(tables)), nil
}

func (s *GatewayServer) toolGetTableSchema() (mcp.Tool, server.ToolHandlerFunc) {
	return mcp.Tool{
		Name:        "get-table-schema",
		Description: "Get schema information for a table",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"table_name": map[string]interface{}{
					"type":        "string",
					"description": "Name of the table to describe (required)",
				},
				"connection_name": map[string]interface{}{
					"type":        "string",
					"description": "Name of the connection to use (optional, uses default if not specified)",
				},
			},
			Required: []string{"table_name"},
		},
	}, s.handleGetTableSchema
}

func (s *GatewayServer) handleGetTableSchema(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := getArgs(request.Params.Arguments)
	if !ok {
		return mcp.NewToolResultError(ErrInvalidArguments.Error()), nil
	}

	tableName, ok := getStringArg(args, "table_name")
	if !ok || tableName == "" {
		return mcp.NewToolResultError(ErrTableNameRequired.Error()), nil
	}

	connName, _ := getStringArg(args, "connection_name")
	columns, err := s.metadata.TableSchema(ctx, tableName, connName)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatTableSchema(tableName, columns)), nil
}
