package mcp

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// QueryResult is one normalized result set: ordered column names plus rows
// of scalars, bounded by the effective row limit. Byte-sequence values are
// coerced to text for serialization.
type QueryResult struct {
	Columns []string
	Rows    [][]interface{}
}

// QueryExecutor runs ad-hoc SQL against a named connection, enforcing the
// per-profile read-only policy and the row limit
type QueryExecutor struct {
	manager *Manager
}

func NewQueryExecutor(manager *Manager) *QueryExecutor {
	return &QueryExecutor{manager: manager}
}

// Execute runs a statement on the named connection (or the default).
// maxRows overrides the global limit when positive. Statements classified
// as mutating are rejected before reaching the driver on read-only
// profiles. Every statement goes through the result-set path, since
// procedure calls can return rows; a statement that produced no columns
// yields an empty result. Rows past the limit are discarded without
// further indication; the formatting layer owns the truncation signal.
func (e *QueryExecutor) Execute(ctx context.Context, query, connName string, maxRows int) (*QueryResult, error) {
	conn, profile, err := e.manager.Acquire(ctx, connName)
	if err != nil {
		return nil, err
	}

	readOnlyStmt := IsReadOnly(query)
	if profile.ReadOnly && !readOnlyStmt {
		return nil, ErrWriteNotAllowed
	}

	if maxRows <= 0 {
		maxRows = e.manager.Limits().MaxRows
	}

	rows, err := conn.Query(ctx, query)
	if err != nil {
		if readOnlyStmt {
			return nil, fmt.Errorf("%w: %v", ErrExecutionFailed, err)
		}
		// Some drivers reject DML/DDL on the result-set path
		if err := conn.Exec(ctx, query); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrExecutionFailed, err)
		}
		return &QueryResult{}, nil
	}
	defer rows.Close()

	result := &QueryResult{Columns: rows.Columns()}
	if len(result.Columns) == 0 {
		return result, nil
	}
	for len(result.Rows) < maxRows {
		row, err := rows.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrExecutionFailed, err)
		}
		for i, value := range row {
			if b, ok := value.([]byte); ok {
				row[i] = string(b)
			}
		}
		result.Rows = append(result.Rows, row)
	}
	return result, nil
}
