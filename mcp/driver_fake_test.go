package mcp

import (
	"context"
	"errors"
	"io"
)

// fakeRows is a canned result set. Query hands out clones so one canned
// set can serve repeated queries.
type fakeRows struct {
	columns []string
	types   []TypeInfo
	rows    [][]interface{}
	pos     int
}

func (r *fakeRows) clone() *fakeRows {
	cp := *r
	cp.pos = 0
	return &cp
}

func (r *fakeRows) Columns() []string { return r.columns }
func (r *fakeRows) Types() []TypeInfo { return r.types }

func (r *fakeRows) Next() ([]interface{}, error) {
	if r.pos >= len(r.rows) {
		return nil, io.EOF
	}
	row := r.rows[r.pos]
	r.pos++
	return row, nil
}

func (r *fakeRows) Close() error { return nil }

// fakeConn records every statement it receives and serves canned responses
type fakeConn struct {
	queries []string
	execs   []string

	failProbe bool
	queryErr  map[string]error
	results   map[string]*fakeRows

	tables     []TableInfo
	tablesErr  error
	columns    []ColumnInfo
	columnsErr error

	lastColumnsSchema string
	lastColumnsTable  string

	info       ConnInfo
	closeCount int
}

func (c *fakeConn) Query(ctx context.Context, query string) (Rows, error) {
	c.queries = append(c.queries, query)
	if query == probeStatement && c.failProbe {
		return nil, errors.New("connection is dead")
	}
	if err, ok := c.queryErr[query]; ok {
		return nil, err
	}
	if rows, ok := c.results[query]; ok {
		return rows.clone(), nil
	}
	return &fakeRows{}, nil
}

func (c *fakeConn) Exec(ctx context.Context, query string) error {
	c.execs = append(c.execs, query)
	return nil
}

func (c *fakeConn) Tables(ctx context.Context) ([]TableInfo, error) {
	if c.tablesErr != nil {
		return nil, c.tablesErr
	}
	return c.tables, nil
}

func (c *fakeConn) Columns(ctx context.Context, schema, table string) ([]ColumnInfo, error) {
	c.lastColumnsSchema = schema
	c.lastColumnsTable = table
	if c.columnsErr != nil {
		return nil, c.columnsErr
	}
	return c.columns, nil
}

func (c *fakeConn) Info(ctx context.Context) ConnInfo { return c.info }

func (c *fakeConn) Close() error {
	c.closeCount++
	return nil
}

// fakeDriver hands out its connections in order, reusing the last one when
// exhausted
type fakeDriver struct {
	conns      []*fakeConn
	connectErr error

	connStrs []string
	opts     []ConnectOptions
}

func (d *fakeDriver) Connect(ctx context.Context, connStr string, opts ConnectOptions) (Conn, error) {
	d.connStrs = append(d.connStrs, connStr)
	d.opts = append(d.opts, opts)
	if d.connectErr != nil {
		return nil, d.connectErr
	}
	idx := len(d.connStrs) - 1
	if idx >= len(d.conns) {
		idx = len(d.conns) - 1
	}
	return d.conns[idx], nil
}

func testConfig(defaultName string, profiles ...*ConnectionProfile) *Config {
	cfg := &Config{
		Connections:       make(map[string]*ConnectionProfile),
		DefaultConnection: defaultName,
		Limits:            ServerLimits{MaxRows: DefaultMaxRows, Timeout: DefaultTimeout},
	}
	for _, p := range profiles {
		cfg.Connections[p.Name] = p
	}
	return cfg
}

func readOnlyProfile(name string) *ConnectionProfile {
	return &ConnectionProfile{Name: name, Server: "localhost", Database: name, ReadOnly: true}
}
