package mcp

import (
	"context"
	"database/sql"
	"fmt"
	"io"
)

// SQLDriver connects through database/sql using the drivers registered by
// the main package (sqlserver, postgres, mysql, sqlite3, godror).
type SQLDriver struct{}

func (SQLDriver) Connect(ctx context.Context, connStr string, opts ConnectOptions) (Conn, error) {
	driverName := normalizeDriver(opts.DriverName)
	if driverName == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDriver, opts.DriverName)
	}

	db, err := sql.Open(driverName, connStr)
	if err != nil {
		return nil, err
	}

	// One logical connection per profile; the manager owns the lifecycle
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, err
	}

	// database/sql executes statements in autocommit mode outside explicit
	// transactions, so opts.Autocommit needs no extra work here. The option
	// still travels for drivers that do need it.
	return &sqlConn{db: db, driverName: driverName}, nil
}

// normalizeDriver converts user-facing driver names to database/sql driver
// names. An empty name selects SQL Server, whose driver accepts the
// semicolon-separated connection strings the profiles assemble.
func normalizeDriver(driver string) string {
	switch driver {
	case "", "sqlserver", "mssql", "sql server":
		return string(DriverSQLServer)
	case "postgres", "postgresql":
		return string(DriverPostgres)
	case "mysql", "mariadb":
		return string(DriverMySQL)
	case "sqlite", "sqlite3":
		return string(DriverSQLite)
	case "oracle", "godror":
		return string(DriverOracle)
	default:
		return ""
	}
}

type sqlConn struct {
	db         *sql.DB
	driverName string
}

func (c *sqlConn) Query(ctx context.Context, query string) (Rows, error) {
	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	return newSQLRows(rows)
}

func (c *sqlConn) Exec(ctx context.Context, query string) error {
	_, err := c.db.ExecContext(ctx, query)
	return err
}

// Tables is unsupported: database/sql exposes no catalog API. Callers use
// the information-schema fallback.
func (c *sqlConn) Tables(ctx context.Context) ([]TableInfo, error) {
	return nil, fmt.Errorf("table enumeration: %w", ErrNotSupported)
}

// Columns is unsupported for the same reason; callers use the zero-row
// probe fallback.
func (c *sqlConn) Columns(ctx context.Context, schema, table string) ([]ColumnInfo, error) {
	return nil, fmt.Errorf("column metadata: %w", ErrNotSupported)
}

func (c *sqlConn) Info(ctx context.Context) ConnInfo {
	return ConnInfo{DriverName: c.driverName}
}

func (c *sqlConn) Close() error {
	return c.db.Close()
}

type sqlRows struct {
	rows    *sql.Rows
	columns []string
	types   []TypeInfo
}

func newSQLRows(rows *sql.Rows) (*sqlRows, error) {
	columns, err := rows.Columns()
	if err != nil {
		rows.Close()
		return nil, err
	}

	columnTypes, err := rows.ColumnTypes()
	if err != nil {
		rows.Close()
		return nil, err
	}

	types := make([]TypeInfo, len(columnTypes))
	for i, ct := range columnTypes {
		size, _ := ct.Length()
		nullable, _ := ct.Nullable()
		types[i] = TypeInfo{
			Name:     ct.DatabaseTypeName(),
			Size:     size,
			Nullable: nullable,
		}
	}

	return &sqlRows{rows: rows, columns: columns, types: types}, nil
}

func (r *sqlRows) Columns() []string {
	return r.columns
}

func (r *sqlRows) Types() []TypeInfo {
	return r.types
}

func (r *sqlRows) Next() ([]interface{}, error) {
	if !r.rows.Next() {
		if err := r.rows.Err(); err != nil {
			return nil, err
		}
		return nil, io.EOF
	}

	values := make([]interface{}, len(r.columns))
	pointers := make([]interface{}, len(r.columns))
	for i := range values {
		pointers[i] = &values[i]
	}
	if err := r.rows.Scan(pointers...); err != nil {
		return nil, err
	}
	return values, nil
}

func (r *sqlRows) Close() error {
	return r.rows.Close()
}
