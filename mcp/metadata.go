package mcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Standard fallback for drivers without a table catalog API
const informationSchemaTables = "SELECT TABLE_CATALOG, TABLE_SCHEMA, TABLE_NAME, TABLE_TYPE " +
	"FROM INFORMATION_SCHEMA.TABLES WHERE TABLE_TYPE = 'BASE TABLE'"

// MetadataService introspects tables and columns with a two-tier strategy:
// the driver catalog API first, then SQL-level fallbacks. Not all drivers
// implement the catalog APIs (notably legacy ISAM-style ones); the SQL
// fallbacks work against any driver that can parse SQL at all.
type MetadataService struct {
	manager *Manager
}

func NewMetadataService(manager *Manager) *MetadataService {
	return &MetadataService{manager: manager}
}

// ListTables enumerates the base tables of the named connection. The native
// catalog result is filtered to base tables; when the driver lacks the
// capability or fails, the information-schema view is queried instead.
func (s *MetadataService) ListTables(ctx context.Context, connName string) ([]TableInfo, error) {
	conn, _, err := s.manager.Acquire(ctx, connName)
	if err != nil {
		return nil, err
	}

	native, nativeErr := conn.Tables(ctx)
	if nativeErr == nil {
		tables := make([]TableInfo, 0, len(native))
		for _, table := range native {
			if table.Type == "TABLE" {
				tables = append(tables, table)
			}
		}
		return tables, nil
	}

	tables, fallbackErr := s.listTablesSQL(ctx, conn)
	if fallbackErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrMetadataUnavailable, nativeErr)
	}
	return tables, nil
}

func (s *MetadataService) listTablesSQL(ctx context.Context, conn Conn) ([]TableInfo, error) {
	rows, err := conn.Query(ctx, informationSchemaTables)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []TableInfo
	for {
		row, err := rows.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(row) < 4 {
			continue
		}
		tables = append(tables, TableInfo{
			Catalog: stringCell(row[0]),
			Schema:  stringCell(row[1]),
			Name:    stringCell(row[2]),
			Type:    stringCell(row[3]),
		})
	}
	return tables, nil
}

// TableSchema describes the columns of a table. A "schema.table" name is
// split on the first dot. The driver catalog is consulted first; when it is
// unsupported or yields no columns, a zero-row probe query derives the
// descriptors from result-set metadata.
func (s *MetadataService) TableSchema(ctx context.Context, tableName, connName string) ([]ColumnInfo, error) {
	conn, _, err := s.manager.Acquire(ctx, connName)
	if err != nil {
		return nil, err
	}

	schema, table := splitTableName(tableName)

	columns, nativeErr := conn.Columns(ctx, schema, table)
	if nativeErr == nil && len(columns) > 0 {
		sort.Slice(columns, func(i, j int) bool { return columns[i].Position < columns[j].Position })
		return columns, nil
	}

	columns, probeErr := s.probeSchema(ctx, conn, tableName)
	if probeErr != nil {
		return nil, fmt.Errorf("%w for %q: %v", ErrSchemaUnavailable, tableName, probeErr)
	}
	return columns, nil
}

// probeSchema executes a query guaranteed to match no rows and reads the
// column descriptors off the result metadata
func (s *MetadataService) probeSchema(ctx context.Context, conn Conn, tableName string) ([]ColumnInfo, error) {
	rows, err := conn.Query(ctx, fmt.Sprintf("SELECT * FROM %s WHERE 1=0", tableName))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := rows.Columns()
	types := rows.Types()

	columns := make([]ColumnInfo, len(names))
	for i, name := range names {
		column := ColumnInfo{Name: name, Position: i + 1}
		if i < len(types) {
			column.Type = types[i].Name
			if column.Type == "" {
				column.Type = sqlTypeName(types[i].Code)
			}
			column.Size = types[i].Size
			column.Nullable = types[i].Nullable
		}
		columns[i] = column
	}
	return columns, nil
}

func splitTableName(name string) (schema, table string) {
	if before, after, found := strings.Cut(name, "."); found {
		return before, after
	}
	return "", name
}

func stringCell(v interface{}) string {
	if v == nil {
		return ""
	}
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return fmt.Sprintf("%v", v)
}
