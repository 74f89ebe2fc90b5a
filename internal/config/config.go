// Package config defines the run configuration shared by the schemagen
// commands. It can be loaded from a JSON or an HCL file; absent keys keep the
// values of DefaultConfig. Command-line flags are applied on top by the
// commands themselves.
//
// Example (HCL):
//
//	table      = "censo.escolas"
//	dictionary = "dicionario.xlsx"
//	header_row = 1
//	name_column = 1
//	type_column = 2
//	size_column = 3
//
// Example (JSON):
//
//	{ "table": "cursos", "file": "cursos.csv", "delimiter": ";", "encoding": "LATIN1" }
package config

import (
	"os"
	"strings"
	"unicode/utf8"
)

// EnvDSN is consulted when Config.DSN is empty.
const EnvDSN = "DATABASE_URL"

// Config is the full run configuration. Column indices are 0-based positions
// within a dictionary row; HeaderRow is 1-based (0 means no header row).
type Config struct {
	// Table is the target table, optionally schema-qualified.
	Table string `json:"table" hcl:"table,optional"`

	// File is the delimited data file whose header or sample is read.
	File string `json:"file" hcl:"file,optional"`

	// LoadPath is the path written into the generated bulk-load command.
	// Empty means File. Set it when the load runs on another machine.
	LoadPath string `json:"load_path" hcl:"load_path,optional"`

	// Dictionary is the data-dictionary spreadsheet (.xlsx) or delimited file.
	Dictionary string `json:"dictionary" hcl:"dictionary,optional"`
	// Sheet selects the worksheet; empty means the active sheet.
	Sheet string `json:"sheet" hcl:"sheet,optional"`

	HeaderRow  int `json:"header_row" hcl:"header_row,optional"`
	NameColumn int `json:"name_column" hcl:"name_column,optional"`
	TypeColumn int `json:"type_column" hcl:"type_column,optional"`
	// SizeColumn < 0 means the dictionary has no size column.
	SizeColumn int `json:"size_column" hcl:"size_column,optional"`

	// Delimiter is the field delimiter; "\t" or "tab" selects a tab.
	Delimiter string `json:"delimiter" hcl:"delimiter,optional"`
	// Encoding is the PostgreSQL name of the file encoding (UTF8, LATIN1...).
	Encoding string `json:"encoding" hcl:"encoding,optional"`

	// SampleRows bounds the rows read for type inference.
	SampleRows int `json:"sample_rows" hcl:"sample_rows,optional"`

	// CatalogKind selects the metadata backend (postgres, sqlite, mssql, mysql).
	CatalogKind string `json:"catalog_kind" hcl:"catalog_kind,optional"`
	// DSN for the catalog backend. Empty falls back to $DATABASE_URL.
	DSN string `json:"dsn" hcl:"dsn,optional"`

	// Strict turns a non-trailing unmatched header field into an error.
	Strict bool `json:"strict" hcl:"strict,optional"`
	// IfNotExists renders CREATE TABLE IF NOT EXISTS.
	IfNotExists bool `json:"if_not_exists" hcl:"if_not_exists,optional"`
	// Notes appends review notes after a dictionary-driven CREATE TABLE.
	Notes bool `json:"notes" hcl:"notes,optional"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		HeaderRow:   1,
		NameColumn:  1,
		TypeColumn:  2,
		SizeColumn:  3,
		Delimiter:   ";",
		Encoding:    "UTF8",
		SampleRows:  1000,
		CatalogKind: "postgres",
		Notes:       true,
	}
}

// Comma decodes Delimiter into a single rune. Empty or invalid input yields
// ','.
func (c *Config) Comma() rune {
	d := c.Delimiter
	switch strings.ToLower(d) {
	case `\t`, "tab":
		return '\t'
	}
	if d == "" {
		return ','
	}
	r, _ := utf8.DecodeRuneInString(d)
	if r == utf8.RuneError {
		return ','
	}
	return r
}

// ResolvedDSN returns DSN, or $DATABASE_URL when DSN is empty.
func (c *Config) ResolvedDSN() string {
	if s := strings.TrimSpace(c.DSN); s != "" {
		return s
	}
	return strings.TrimSpace(os.Getenv(EnvDSN))
}

// ResolvedLoadPath returns LoadPath, or File when LoadPath is empty.
func (c *Config) ResolvedLoadPath() string {
	if c.LoadPath != "" {
		return c.LoadPath
	}
	return c.File
}
