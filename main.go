package main

import (
	"flag"
	"log"

	"odbc-mcp/mcp"

	_ "github.com/denisenkom/go-mssqldb"
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/godror/godror"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

func main() {
	configPath := flag.String("config", "", "Path to the connection profile file (INI or YAML)")
	flag.Parse()

	cfg, err := mcp.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	// Define MCP Server
	gatewayServer := mcp.NewGatewayServer(cfg)
	log.Printf("Initialized ODBC MCP server with %d connections", len(cfg.Connections))

	// Start server in stdio
	defer gatewayServer.Close()
	if err = gatewayServer.Start(); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
