package database

import (
	"fmt"
	"strings"
)

// UpdateBuilder assembles the SET clause of a partial UPDATE statement.
// Columns are added only for fields the caller actually supplied, so an
// untouched field keeps its stored value without any COALESCE gymnastics,
// and an explicit nil clears a nullable column.
type UpdateBuilder struct {
	assignments []string
	args        []any
}

func NewUpdateBuilder() *UpdateBuilder {
	return &UpdateBuilder{}
}

// Set adds an assignment for col. Passing a nil value writes SQL NULL.
func (b *UpdateBuilder) Set(col string, value any) *UpdateBuilder {
	b.args = append(b.args, value)
	b.assignments = append(b.assignments, fmt.Sprintf("%s = $%d", col, len(b.args)))

	return b
}

// Empty reports whether no assignments have been added.
func (b *UpdateBuilder) Empty() bool {
	return len(b.assignments) == 0
}

// SetIf adds the assignment only when supplied is true.
func (b *UpdateBuilder) SetIf(supplied bool, col string, value any) *UpdateBuilder {
	if supplied {
		b.Set(col, value)
	}

	return b
}

// Query renders "UPDATE table SET ... WHERE ..." with the WHERE arguments
// appended after the SET arguments. whereClause uses %d verbs for its
// placeholder positions, e.g. "id = $%d AND user_id = $%d".
func (b *UpdateBuilder) Query(table, whereClause string, whereArgs ...any) (string, []any) {
	positions := make([]any, len(whereArgs))
	for i := range whereArgs {
		positions[i] = len(b.args) + i + 1
	}

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s",
		table,
		strings.Join(b.assignments, ", "),
		fmt.Sprintf(whereClause, positions...),
	)

	return query, append(b.args, whereArgs...)
}
