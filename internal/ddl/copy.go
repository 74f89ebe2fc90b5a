package ddl

import (
	"fmt"
	"strings"
)

// BulkLoad describes a PostgreSQL bulk-load command for a delimited file.
type BulkLoad struct {
	Table string
	// Columns is the explicit target column list in file field order. When
	// empty the list is omitted and the file's field order must match the
	// table's column order.
	Columns   []string
	Path      string
	Delimiter string
	Encoding  string
	// Header marks the first line of the file as a header to skip.
	Header bool
	// Client selects psql's client-side \copy (file read by psql) instead of
	// the server-side COPY (file read by the server process).
	Client bool
}

// SQL renders the command on a single line, as psql requires for \copy:
//
//	\copy "t" ("a", "b") FROM '/data/f.csv' DELIMITER ';' CSV HEADER ENCODING 'UTF8';
func (b BulkLoad) SQL() (string, error) {
	table := strings.TrimSpace(b.Table)
	if table == "" {
		return "", fmt.Errorf("ddl: bulk load: table name must not be empty")
	}
	if strings.TrimSpace(b.Path) == "" {
		return "", fmt.Errorf("ddl: bulk load %s: file path must not be empty", table)
	}
	if strings.ContainsAny(b.Path, "\r\n") {
		return "", fmt.Errorf("ddl: bulk load %s: file path contains a line break", table)
	}

	var sb strings.Builder
	if b.Client {
		sb.WriteString(`\copy `)
	} else {
		sb.WriteString("COPY ")
	}
	sb.WriteString(quoteFQN(table))

	if len(b.Columns) > 0 {
		cols := make([]string, len(b.Columns))
		for i, c := range b.Columns {
			cols[i] = quoteIdent(c)
		}
		sb.WriteString(" (")
		sb.WriteString(strings.Join(cols, ", "))
		sb.WriteByte(')')
	}

	sb.WriteString(" FROM ")
	sb.WriteString(quoteLiteral(b.Path))

	if b.Delimiter != "" {
		sb.WriteString(" DELIMITER ")
		sb.WriteString(delimiterLiteral(b.Delimiter))
	}
	sb.WriteString(" CSV")
	if b.Header {
		sb.WriteString(" HEADER")
	}
	if enc := strings.TrimSpace(b.Encoding); enc != "" {
		sb.WriteString(" ENCODING ")
		sb.WriteString(quoteLiteral(enc))
	}
	sb.WriteByte(';')
	return sb.String(), nil
}

func delimiterLiteral(d string) string {
	if d == "\t" {
		return `E'\t'`
	}
	return quoteLiteral(d)
}
