// Package ddl resolves declared column types and renders the PostgreSQL
// statements generated from a column list: CREATE TABLE and the matching
// bulk load (\copy or COPY).
//
// The package is pure: nothing here touches a database or a file. Inputs are
// ColumnSpec values already reconciled by the caller.
package ddl

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoColumns is returned by CreateTable for an empty column list.
var ErrNoColumns = errors.New("ddl: no column definitions")

// NoColumnsPlaceholder is the explanatory SQL comment returned in place of a
// statement when there is nothing to create. It is never valid DDL.
const NoColumnsPlaceholder = "-- Error: no valid column definitions found in the source; CREATE TABLE not generated."

// DefaultNotes are the review notes appended after a dictionary-driven
// statement.
var DefaultNotes = []string{
	"Generated from the source data dictionary. Review types and sizes before running it.",
	"No NOT NULL, PRIMARY KEY or UNIQUE constraints were added; add them as your model requires.",
	`For an auto-generated key, add "id" SERIAL PRIMARY KEY as the first column.`,
	"Column names were sanitized (accents folded, separators replaced by underscores, lowercase).",
}

// CreateOptions tunes CreateTable output.
type CreateOptions struct {
	// IfNotExists renders CREATE TABLE IF NOT EXISTS.
	IfNotExists bool
	// Notes are appended as numbered SQL comments after the statement.
	Notes []string
}

// CreateTable renders a PostgreSQL CREATE TABLE statement:
//
//	CREATE TABLE "<table>" (
//	    "<col>" <TYPE>[(size)],
//	    ...
//	);
//
// Every identifier is double-quoted; a dotted table name is quoted per
// segment ("public"."t"). Column order is preserved.
//
// An empty column list yields NoColumnsPlaceholder together with
// ErrNoColumns, so a caller that ignores the error still prints a comment
// rather than invalid DDL.
func CreateTable(table string, cols []ColumnSpec, opts CreateOptions) (string, error) {
	fqn := strings.TrimSpace(table)
	if fqn == "" {
		return "", fmt.Errorf("ddl: table name must not be empty")
	}
	if len(cols) == 0 {
		return NoColumnsPlaceholder, ErrNoColumns
	}

	defs := make([]string, 0, len(cols))
	for i, c := range cols {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return "", fmt.Errorf("ddl: column %d of %s has an empty name", i+1, fqn)
		}
		typ := strings.TrimSpace(c.SQLType())
		if typ == "" {
			return "", fmt.Errorf("ddl: column %s missing storage type", name)
		}
		defs = append(defs, quoteIdent(name)+" "+typ)
	}

	var sb strings.Builder
	sb.WriteString("CREATE TABLE ")
	if opts.IfNotExists {
		sb.WriteString("IF NOT EXISTS ")
	}
	sb.WriteString(quoteFQN(fqn))
	sb.WriteString(" (\n    ")
	sb.WriteString(strings.Join(defs, ",\n    "))
	sb.WriteString("\n);")

	if len(opts.Notes) > 0 {
		sb.WriteString("\n\n-- Notes:")
		for i, n := range opts.Notes {
			fmt.Fprintf(&sb, "\n-- %d. %s", i+1, n)
		}
	}
	return sb.String(), nil
}
