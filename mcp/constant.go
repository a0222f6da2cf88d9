package mcp

import "time"

// Server limit defaults, overridable via the SERVER config section
const (
	DefaultMaxRows = 1000
	DefaultTimeout = 30 * time.Second
)

// Probe statements
const (
	probeStatement   = "SELECT 1"
	versionStatement = "SELECT @@version"
)

// DriverType identifies a database/sql driver family
type DriverType string

// Drivers
const (
	DriverSQLServer DriverType = "sqlserver"
	DriverPostgres  DriverType = "postgres"
	DriverMySQL     DriverType = "mysql"
	DriverOracle    DriverType = "godror"
	DriverSQLite    DriverType = "sqlite3"
)

// Default config file path, relative to the working directory
const defaultConfigPath = "config/config.ini"

// Environment variable naming an alternative config file
const configPathEnv = "ODBC_MCP_CONFIG"
