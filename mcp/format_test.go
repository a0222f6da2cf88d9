package mcp

import (
	"strings"
	"testing"
)

func TestFormatTableList(t *testing.T) {
	got := formatTableList([]TableInfo{
		{Schema: "dbo", Name: "customers"},
		{Name: "orders"},
	})

	if !strings.HasPrefix(got, "### Tables:\n\n") {
		t.Errorf("missing heading in %q", got)
	}
	if !strings.Contains(got, "- dbo.customers\n") {
		t.Errorf("schema-qualified entry missing in %q", got)
	}
	if !strings.Contains(got, "- orders\n") {
		t.Errorf("bare entry missing in %q", got)
	}
}

func TestFormatTableSchema(t *testing.T) {
	got := formatTableSchema("dbo.customers", []ColumnInfo{
		{Name: "id", Type: "INTEGER", Size: 10, Nullable: false},
		{Name: "email", Type: "VARCHAR", Size: 255, Nullable: true},
	})

	if !strings.Contains(got, "### Schema for table dbo.customers:") {
		t.Errorf("heading missing in %q", got)
	}
	if !strings.Contains(got, "| id | INTEGER | 10 | No |") {
		t.Errorf("id row missing in %q", got)
	}
	if !strings.Contains(got, "| email | VARCHAR | 255 | Yes |") {
		t.Errorf("email row missing in %q", got)
	}
}

func TestFormatQueryResultEmpty(t *testing.T) {
	got := formatQueryResult(&QueryResult{}, 0)

	if got != "Query executed successfully, but no results were returned." {
		t.Errorf("empty result message = %q", got)
	}
}

func TestFormatQueryResult(t *testing.T) {
	result := &QueryResult{
		Columns: []string{"id", "name"},
		Rows: [][]interface{}{
			{1, "alpha"},
			{2, nil},
		},
	}

	got := formatQueryResult(result, 100)

	if !strings.Contains(got, "| id | name |") {
		t.Errorf("header row missing in %q", got)
	}
	if !strings.Contains(got, "| 2 | NULL |") {
		t.Errorf("NULL rendering missing in %q", got)
	}
	if !strings.Contains(got, "_Returned 2 rows_") {
		t.Errorf("row count missing in %q", got)
	}
	if strings.Contains(got, "limited to") {
		t.Errorf("truncation marker present below the limit: %q", got)
	}
}

func TestFormatQueryResultTruncationMarker(t *testing.T) {
	result := &QueryResult{
		Columns: []string{"id"},
		Rows:    [][]interface{}{{1}, {2}, {3}},
	}

	got := formatQueryResult(result, 3)

	if !strings.Contains(got, "_(limited to 3 rows)_") {
		t.Errorf("truncation marker missing in %q", got)
	}
}
