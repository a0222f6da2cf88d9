package mcp

import "errors"

// Connection errors
var (
	ErrUnknownProfile   = errors.New("connection not found in configuration")
	ErrAmbiguousDefault = errors.New("no default connection specified and multiple connections exist")
	ErrConnectionFailed = errors.New("failed to connect")
)

// Query errors
var (
	ErrWriteNotAllowed = errors.New("write operations are not allowed on read-only connections")
	ErrExecutionFailed = errors.New("error executing query")
)

// Metadata errors
var (
	ErrMetadataUnavailable = errors.New("failed to list tables")
	ErrSchemaUnavailable   = errors.New("failed to get table schema")
)

// Driver errors
var (
	ErrNotSupported  = errors.New("not supported by this driver")
	ErrInvalidDriver = errors.New("invalid database driver")
)

// Argument errors
var (
	ErrInvalidArguments  = errors.New("invalid arguments")
	ErrQueryRequired     = errors.New("sql is required")
	ErrTableNameRequired = errors.New("table_name is required")
)

// Serialization errors
var (
	ErrSerializingJSON = errors.New("error serializing JSON")
)
