package mcp

import (
	"fmt"
	"strings"
)

// Markdown rendering for tool output. The truncation marker lives here, at
// the formatting layer, since the executor gives no signal beyond
// "rows returned == limit".

func formatTableList(tables []TableInfo) string {
	var b strings.Builder
	b.WriteString("### Tables:\n\n")
	for _, table := range tables {
		if table.Schema != "" {
			fmt.Fprintf(&b, "- %s.%s\n", table.Schema, table.Name)
		} else {
			fmt.Fprintf(&b, "- %s\n", table.Name)
		}
	}
	return b.String()
}

func formatTableSchema(tableName string, columns []ColumnInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "### Schema for table %s:\n\n", tableName)
	b.WriteString("| Column | Type | Size | Nullable |\n")
	b.WriteString("| ------ | ---- | ---- | -------- |\n")
	for _, column := range columns {
		nullable := "No"
		if column.Nullable {
			nullable = "Yes"
		}
		fmt.Fprintf(&b, "| %s | %s | %d | %s |\n", column.Name, column.Type, column.Size, nullable)
	}
	return b.String()
}

func formatQueryResult(result *QueryResult, limit int) string {
	if len(result.Columns) == 0 {
		return "Query executed successfully, but no results were returned."
	}

	var b strings.Builder
	b.WriteString("### Query Results:\n\n")
	b.WriteString("| " + strings.Join(result.Columns, " | ") + " |\n")

	separators := make([]string, len(result.Columns))
	for i := range separators {
		separators[i] = "---"
	}
	b.WriteString("| " + strings.Join(separators, " | ") + " |\n")

	for _, row := range result.Rows {
		cells := make([]string, len(row))
		for i, value := range row {
			cells[i] = valueString(value)
		}
		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}

	fmt.Fprintf(&b, "\n\n_Returned %d rows_", len(result.Rows))
	if limit > 0 && len(result.Rows) >= limit {
		fmt.Fprintf(&b, " _(limited to %d rows)_", limit)
	}
	return b.String()
}
