package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// GatewayServer exposes the configured database connections as MCP tools
// over stdio
type GatewayServer struct {
	server   *server.MCPServer
	config   *Config
	manager  *Manager
	metadata *MetadataService
	executor *QueryExecutor
}

// NewGatewayServer wires the connection manager, metadata service and query
// executor over the configured profiles and registers the tools
func NewGatewayServer(cfg *Config) *GatewayServer {
	manager := NewManager(cfg, SQLDriver{})

	gateway := &GatewayServer{
		server: server.NewMCPServer(
			"odbc-mcp-server",
			"0.1.0",
			server.WithToolCapabilities(true),
		),
		config:   cfg,
		manager:  manager,
		metadata: NewMetadataService(manager),
		executor: NewQueryExecutor(manager),
	}

	// Register tools
	gateway.registerTools()

	return gateway
}

// Start starts the MCP server in stdio mode
func (s *GatewayServer) Start() error {
	return server.ServeStdio(s.server)
}

// Close tears down every live database connection
func (s *GatewayServer) Close() {
	s.manager.CloseAll()
}
