package mcp

func (s *GatewayServer) registerTools() {
	// List Connections
	s.server.AddTool(s.toolListConnections())

	// List Available DSNs
	s.server.AddTool(s.toolListAvailableDSNs())

	// Test Connection
	s.server.AddTool(s.toolTestConnection())

	// List Tables
	s.server.AddTool(s.toolListTables())

	// Get Table Schema
	s.server.AddTool(s.toolGetTableSchema())

	// Execute Query
	s.server.AddTool(s.toolExecuteQuery())
}
