package repository

import (
	"fmt"
	"strings"
)

// updateBuilder accumulates column assignments for a partial UPDATE. Only
// columns that were explicitly set are rendered, always as parameterized
// placeholders; values never appear in the statement text.
type updateBuilder struct {
	table string
	cols  []string
	args  []interface{}
}

func newUpdateBuilder(table string) *updateBuilder {
	return &updateBuilder{table: table}
}

// Set records an assignment for col. Column names are supplied by callers
// from a fixed set, never from request input.
func (b *updateBuilder) Set(col string, val interface{}) {
	b.cols = append(b.cols, col)
	b.args = append(b.args, val)
}

// Build renders the UPDATE statement keyed by keyCol. It fails with
// ErrNoFields when no assignment was recorded, so a zero-column UPDATE can
// never reach the database.
func (b *updateBuilder) Build(keyCol string, key interface{}) (string, []interface{}, error) {
	if len(b.cols) == 0 {
		return "", nil, ErrNoFields
	}
	sets := make([]string, len(b.cols))
	for i, c := range b.cols {
		sets[i] = c + "=?"
	}
	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s=?",
		b.table, strings.Join(sets, ", "), keyCol)
	args := append(b.args, key)
	return query, args, nil
}
