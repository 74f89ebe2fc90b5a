package ddl

import (
	"strings"

	"schemagen/internal/ident"
)

// quoteIdent quotes a single identifier segment for Postgres, e.g.:
//
//	quoteIdent(`pcv`)        => `"pcv"`
//	quoteIdent(`weird"name`) => `"weird""name"`
func quoteIdent(id string) string {
	return `"` + strings.ReplaceAll(id, `"`, `""`) + `"`
}

// quoteFQN quotes a possibly schema-qualified name like "public.users" to
// `"public"."users"`. Segments already in double quotes are unquoted first,
// so `"Censo"."Cursos"` renders unchanged.
func quoteFQN(f string) string {
	parts := ident.SplitQualified(f)
	for i, p := range parts {
		parts[i] = quoteIdent(p)
	}
	return strings.Join(parts, ".")
}

// quoteLiteral renders a standard SQL string literal.
func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
