package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func (s *GatewayServer) toolListConnections() (mcp.Tool, server.ToolHandlerFunc) {
	return mcp.Tool{
		Name:        "list-connections",
		Description: "List all configured database connections",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleListConnections
}

func (s *GatewayServer) handleListConnections(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	response := map[string]interface{}{
		"connections":        s.manager.ProfileNames(),
		"default_connection": s.manager.DefaultName(),
	}

	jsonData, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(ErrSerializingJSON.Error()), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (s *GatewayServer) toolListAvailableDSNs() (mcp.Tool, server.ToolHandlerFunc) {
	return mcp.Tool{
		Name:        "list-available-dsns",
		Description: "List all available DSNs on the system",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleListAvailableDSNs
}

func (s *GatewayServer) handleListAvailableDSNs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dsns, err := SystemDataSources()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if dsns == nil {
		dsns = []DataSource{}
	}

	jsonData, err := json.MarshalIndent(dsns, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(ErrSerializingJSON.Error()), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (s *GatewayServer) toolTestConnection() (mcp.Tool, server.ToolHandlerFunc) {
	return mcp.Tool{
		Name:        "test-connection",
		Description: "Test a database connection and return information",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"connection_name": map[string]interface{}{
					"type":        "string",
					"description": "Name of the connection to test (optional, uses default if not specified)",
				},
			},
			Required: []string{},
		},
	}, s.handleTestConnection
}

func (s *GatewayServer) handleTestConnection(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := getArgs(request.Params.Arguments)
	if !ok {
		return mcp.NewToolResultError(ErrInvalidArguments.Error()), nil
	}

	connName, _ := getStringArg(args, "connection_name")
	status := s.manager.Test(ctx, connName)

	jsonData, err := json.MarshalIndent(status, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(ErrSerializingJSON.Error()), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}
