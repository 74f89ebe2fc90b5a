package config

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"schemagen/internal/catalog"
	"schemagen/internal/parser/csv"
)

// IssueSeverity represents the severity of a configuration issue.
type IssueSeverity string

const (
	// SeverityError indicates a configuration error that should block execution.
	SeverityError IssueSeverity = "error"
	// SeverityWarning is surfaced to users but does not block execution.
	SeverityWarning IssueSeverity = "warning"
)

// Issue describes a single validation finding. Path is the config key the
// finding refers to (e.g. "type_column").
type Issue struct {
	Severity IssueSeverity
	Path     string
	Message  string
}

// Error implements the error interface so an Issue can be treated as a single
// error in contexts that expect error.
func (i Issue) Error() string {
	return fmt.Sprintf("%s at %s: %s", i.Severity, i.Path, i.Message)
}

// Mode names the operation a Config is validated for.
type Mode string

const (
	// ModeDictionary is CREATE TABLE from a data dictionary.
	ModeDictionary Mode = "dictionary"
	// ModeCopy is a \copy command matched against catalog metadata.
	ModeCopy Mode = "copy"
	// ModeSample is CREATE TABLE and COPY inferred from a data sample.
	ModeSample Mode = "sample"
)

// Validate performs static checks of cfg for the given mode. It does not
// mutate cfg. Callers decide whether warnings are fatal.
func Validate(cfg *Config, mode Mode) []Issue {
	var issues []Issue
	errf := func(path, format string, args ...any) {
		issues = append(issues, Issue{Severity: SeverityError, Path: path, Message: fmt.Sprintf(format, args...)})
	}
	warnf := func(path, format string, args ...any) {
		issues = append(issues, Issue{Severity: SeverityWarning, Path: path, Message: fmt.Sprintf(format, args...)})
	}

	if cfg == nil {
		errf("", "config must not be nil")
		return issues
	}

	if strings.TrimSpace(cfg.Table) == "" {
		errf("table", "table must not be empty")
	}

	switch mode {
	case ModeDictionary:
		if strings.TrimSpace(cfg.Dictionary) == "" {
			errf("dictionary", "dictionary must not be empty")
		}
		validateLayout(cfg, errf, warnf)
	case ModeCopy:
		if strings.TrimSpace(cfg.File) == "" {
			errf("file", "file must not be empty")
		}
		validateDelimited(cfg, errf)
		validateCatalog(cfg, errf)
	case ModeSample:
		if strings.TrimSpace(cfg.File) == "" {
			errf("file", "file must not be empty")
		}
		validateDelimited(cfg, errf)
		if cfg.SampleRows <= 0 {
			errf("sample_rows", "sample_rows must be > 0 (got %d)", cfg.SampleRows)
		}
	default:
		errf("mode", "unknown mode %q", mode)
	}

	if strings.ContainsAny(cfg.ResolvedLoadPath(), "\r\n") {
		errf("load_path", "load path must not contain line breaks")
	}
	return issues
}

type issueFunc func(path, format string, args ...any)

func validateLayout(cfg *Config, errf, warnf issueFunc) {
	if cfg.HeaderRow < 0 {
		errf("header_row", "header_row must be >= 0 (got %d)", cfg.HeaderRow)
	}
	if cfg.NameColumn < 0 {
		errf("name_column", "name_column must be >= 0 (got %d)", cfg.NameColumn)
	}
	if cfg.TypeColumn < 0 {
		errf("type_column", "type_column must be >= 0 (got %d)", cfg.TypeColumn)
	}
	if cfg.NameColumn == cfg.TypeColumn {
		errf("type_column", "type_column must differ from name_column (both %d)", cfg.NameColumn)
	}
	if cfg.SizeColumn >= 0 && (cfg.SizeColumn == cfg.NameColumn || cfg.SizeColumn == cfg.TypeColumn) {
		warnf("size_column", "size_column %d overlaps the name or type column", cfg.SizeColumn)
	}
}

func validateDelimited(cfg *Config, errf issueFunc) {
	d := cfg.Delimiter
	switch strings.ToLower(d) {
	case "", `\t`, "tab":
	default:
		if utf8.RuneCountInString(d) != 1 {
			errf("delimiter", "delimiter must be a single character (got %q)", d)
		} else if r, _ := utf8.DecodeRuneInString(d); r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
			errf("delimiter", "invalid delimiter %q", d)
		}
	}
	if _, err := csv.LookupEncoding(cfg.Encoding); err != nil {
		errf("encoding", "%v", err)
	}
}

func validateCatalog(cfg *Config, errf issueFunc) {
	kind := strings.ToLower(strings.TrimSpace(cfg.CatalogKind))
	if kind == "" {
		errf("catalog_kind", "catalog_kind must not be empty")
		return
	}
	known := catalog.Kinds()
	if len(known) > 0 && !contains(known, kind) {
		errf("catalog_kind", "unsupported catalog_kind %q (registered: %s)", cfg.CatalogKind, strings.Join(known, ", "))
	}
	if cfg.ResolvedDSN() == "" {
		errf("dsn", "dsn must not be empty (set dsn or $%s)", EnvDSN)
	}
}

func contains(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}
