package ddl

import (
	"fmt"
	"strings"
)

// Size is the optional length/precision modifier of a column type.
//
// For character types only Precision is used (the length). For NUMERIC and
// DECIMAL, HasScale selects between "(p)" and "(p, s)".
type Size struct {
	Precision int
	Scale     int
	HasScale  bool
}

// Suffix renders the modifier including parentheses, e.g. "(50)" or "(10, 2)".
func (s *Size) Suffix() string {
	if s == nil {
		return ""
	}
	if s.HasScale {
		return fmt.Sprintf("(%d, %d)", s.Precision, s.Scale)
	}
	return fmt.Sprintf("(%d)", s.Precision)
}

// ColumnSpec describes one column of a generated table definition.
//
// Fields:
//   - Name: canonical identifier (unquoted; quoting happens at render time)
//   - DeclaredType: the raw type token as found in the source (may be empty
//     for inferred columns)
//   - StorageType: resolved target type without modifier (e.g. VARCHAR)
//   - Size: optional modifier; nil means none
type ColumnSpec struct {
	Name         string
	DeclaredType string
	StorageType  string
	Size         *Size
}

// SQLType returns the full column type, e.g. "VARCHAR(50)".
func (c ColumnSpec) SQLType() string {
	return c.StorageType + c.Size.Suffix()
}

// TableDef holds the (possibly schema-qualified) table name and the ordered
// column list. Order is significant: it must match the data file for a
// positional bulk load to succeed.
type TableDef struct {
	FQN     string
	Columns []ColumnSpec
}

// Names returns the column names in order.
func (t TableDef) Names() []string {
	out := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		out[i] = c.Name
	}
	return out
}

// isCharType reports whether a storage type takes a single length modifier.
func isCharType(storage string) bool {
	u := strings.ToUpper(storage)
	return strings.HasPrefix(u, "VARCHAR") ||
		strings.HasPrefix(u, "CHARACTER VARYING") ||
		strings.HasPrefix(u, "CHAR") ||
		strings.HasPrefix(u, "CHARACTER")
}

// isNumericType reports whether a storage type takes precision[, scale].
func isNumericType(storage string) bool {
	u := strings.ToUpper(storage)
	return strings.HasPrefix(u, "NUMERIC") || strings.HasPrefix(u, "DECIMAL")
}
