package mcp

import (
	"context"
	"time"
)

// Driver is the physical connectivity layer: it turns a connection string
// into a live connection. The production implementation sits on database/sql;
// tests substitute fakes.
type Driver interface {
	Connect(ctx context.Context, connStr string, opts ConnectOptions) (Conn, error)
}

// ConnectOptions carries per-profile connection settings
type ConnectOptions struct {
	// DriverName selects the driver family (sqlserver, postgres, mysql,
	// sqlite3, godror). Empty selects the default family.
	DriverName string

	// Timeout bounds connection establishment
	Timeout time.Duration

	// Autocommit requests explicit autocommit at connect time, for driver
	// families that need it
	Autocommit bool
}

// Conn is one physical database handle. Catalog methods may report
// ErrNotSupported; callers fall back to SQL-level introspection.
type Conn interface {
	// Query executes a statement expected to produce a result set
	Query(ctx context.Context, query string) (Rows, error)

	// Exec executes a statement without reading a result set
	Exec(ctx context.Context, query string) error

	// Tables enumerates tables via the driver catalog API
	Tables(ctx context.Context) ([]TableInfo, error)

	// Columns returns column metadata for a table via the driver catalog API
	Columns(ctx context.Context, schema, table string) ([]ColumnInfo, error)

	// Info returns driver and engine identification, best effort
	Info(ctx context.Context) ConnInfo

	Close() error
}

// Rows is a forward-only cursor over a result set
type Rows interface {
	// Columns returns the result column names, empty when the statement
	// produced no result set
	Columns() []string

	// Types returns per-column type metadata
	Types() []TypeInfo

	// Next returns the next row, or io.EOF when the set is exhausted
	Next() ([]interface{}, error)

	Close() error
}

// TypeInfo describes one result column. Name takes precedence when the
// driver reports type names directly; Code is an ODBC SQL type code mapped
// through sqlTypeName otherwise.
type TypeInfo struct {
	Name     string
	Code     int
	Size     int64
	Nullable bool
}

// TableInfo identifies one table in the catalog
type TableInfo struct {
	Catalog string `json:"catalog"`
	Schema  string `json:"schema"`
	Name    string `json:"name"`
	Type    string `json:"type"`
}

// ColumnInfo describes one table column
type ColumnInfo struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Size     int64  `json:"size"`
	Nullable bool   `json:"nullable"`
	Position int    `json:"position"`
}

// ConnInfo identifies the driver and engine behind a connection. Empty
// fields mean the driver could not report the value.
type ConnInfo struct {
	DriverName    string
	DriverVersion string
	DatabaseName  string
	DBMSName      string
	DBMSVersion   string
}

// DataSource is one entry from the system driver registry
type DataSource struct {
	Name   string `json:"name"`
	Driver string `json:"driver"`
}
