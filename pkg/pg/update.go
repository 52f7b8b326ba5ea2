package pg

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
)

// BuildUpdate renders an UPDATE statement from a column-to-value map, such
// as the one a patch change set produces. Column values bind through named
// arguments prefixed with "set_"; args carries the caller's own named
// arguments for the WHERE fragment. Columns are ordered alphabetically so
// the statement is deterministic.
//
//	cols := userSchema.Columns(&updated, cs)
//	query, args, err := pg.BuildUpdate("users", cols, "id = @id", pgx.NamedArgs{"id": userID})
//	// UPDATE "users" SET "bio" = @set_bio, "name" = @set_name WHERE id = @id
//	tag, err := q.Exec(ctx, query, args)
func BuildUpdate(table string, columns map[string]any, where string, args pgx.NamedArgs) (string, pgx.NamedArgs, error) {
	if len(columns) == 0 {
		return "", nil, ErrNoColumnsToUpdate
	}

	names := make([]string, 0, len(columns))
	for name := range columns {
		names = append(names, name)
	}
	sort.Strings(names)

	merged := make(pgx.NamedArgs, len(columns)+len(args))
	for name, value := range args {
		merged[name] = value
	}

	assignments := make([]string, 0, len(names))
	for _, name := range names {
		argName := "set_" + name
		if _, exists := merged[argName]; exists {
			return "", nil, fmt.Errorf("%w: %s", ErrArgNameConflict, argName)
		}
		merged[argName] = columns[name]
		assignments = append(assignments, fmt.Sprintf("%s = @%s", quoteIdentifier(name), argName))
	}

	var sb strings.Builder
	sb.WriteString("UPDATE ")
	sb.WriteString(quoteIdentifier(table))
	sb.WriteString(" SET ")
	sb.WriteString(strings.Join(assignments, ", "))
	if where != "" {
		sb.WriteString(" WHERE ")
		sb.WriteString(where)
	}

	return sb.String(), merged, nil
}

// quoteIdentifier quotes a possibly schema-qualified identifier.
func quoteIdentifier(name string) string {
	return pgx.Identifier(strings.Split(name, ".")).Sanitize()
}
