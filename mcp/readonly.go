package mcp

import (
	"regexp"
	"strings"
)

var (
	reLineComment  = regexp.MustCompile(`--[^\n]*`)
	reBlockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)
	reWhitespace   = regexp.MustCompile(`\s+`)
)

// Statement prefixes classified as mutating, matched in order against the
// normalized statement
var mutationPrefixes = []string{
	"INSERT INTO",
	"UPDATE ",
	"DELETE FROM",
	"DROP ",
	"CREATE ",
	"ALTER ",
	"TRUNCATE ",
	"GRANT ",
	"REVOKE ",
	"MERGE ",
	"EXEC ",
	"EXECUTE ",
	"CALL ",
	"SET ",
	"USE ",
}

// IsReadOnly classifies a SQL statement as read-only or mutating. It is a
// syntactic heuristic, not a parser: comments are stripped, whitespace is
// collapsed, and the uppercased result is matched against a fixed list of
// statement prefixes. Mutations hidden inside stored procedures are not
// detected, and a multi-statement batch is matched as one string, so a
// batch like "SELECT 1; DROP TABLE x" is classified read-only.
func IsReadOnly(query string) bool {
	normalized := normalizeStatement(query)
	for _, prefix := range mutationPrefixes {
		if strings.HasPrefix(normalized, prefix) {
			return false
		}
	}
	return true
}

// normalizeStatement strips comments, collapses whitespace runs to single
// spaces, trims, and uppercases
func normalizeStatement(query string) string {
	query = reLineComment.ReplaceAllString(query, " ")
	query = reBlockComment.ReplaceAllString(query, " ")
	query = reWhitespace.ReplaceAllString(query, " ")
	return strings.ToUpper(strings.TrimSpace(query))
}
