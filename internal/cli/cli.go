// Package cli holds the flag handling shared by the schemagen commands: an
// optional config file, flag overrides on top of it, validation output and
// fatal error reporting.
package cli

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"

	"schemagen/internal/config"
	"schemagen/internal/reconcile"
)

// Flags are the command-line settings of one command. Only flags that were
// set explicitly override the config file.
type Flags struct {
	fs   *flag.FlagSet
	mode config.Mode

	ConfigPath string
	ExportPath string
	Validate   bool
	Verbose    bool

	table, file, loadPath, delimiter, encoding string
	dictionary, sheet, dsn, catalogKind        string
	headerRow, nameCol, typeCol, sizeCol       int
	sampleRows                                 int
	strict, ifNotExists, notes                 bool
}

// Register defines the flags relevant to mode on fs.
func Register(fs *flag.FlagSet, mode config.Mode) *Flags {
	d := config.DefaultConfig()
	f := &Flags{fs: fs, mode: mode}

	fs.StringVar(&f.ConfigPath, "config", "", "config file (.hcl or .json); flags override it")
	fs.StringVar(&f.ExportPath, "export-config", "", "write the effective config as HCL to this path and exit")
	fs.BoolVar(&f.Validate, "validate", false, "validate the configuration and exit")
	fs.BoolVar(&f.Verbose, "v", false, "enable verbose logs")
	fs.StringVar(&f.table, "table", "", "target table, optionally schema-qualified")

	switch mode {
	case config.ModeDictionary:
		fs.StringVar(&f.dictionary, "dictionary", "", "data dictionary (.xlsx, or .csv with -delimiter)")
		fs.StringVar(&f.sheet, "sheet", "", "worksheet name (default: active sheet)")
		fs.IntVar(&f.headerRow, "header-row", d.HeaderRow, "1-based header row of the dictionary (0: none)")
		fs.IntVar(&f.nameCol, "name-col", d.NameColumn, "0-based column holding the field name")
		fs.IntVar(&f.typeCol, "type-col", d.TypeColumn, "0-based column holding the declared type")
		fs.IntVar(&f.sizeCol, "size-col", d.SizeColumn, "0-based column holding the size (-1: none)")
		fs.BoolVar(&f.notes, "notes", d.Notes, "append review notes after the statement")
		fs.StringVar(&f.delimiter, "delimiter", d.Delimiter, `field delimiter of a .csv dictionary ("\t" for tab)`)
		fs.StringVar(&f.encoding, "encoding", d.Encoding, "encoding of a .csv dictionary")
	case config.ModeCopy, config.ModeSample:
		fs.StringVar(&f.file, "file", "", "delimited data file (local path or http(s) URL)")
		fs.StringVar(&f.loadPath, "load-path", "", "path written into the load command (default: -file)")
		fs.StringVar(&f.delimiter, "delimiter", d.Delimiter, `field delimiter ("\t" for tab)`)
		fs.StringVar(&f.encoding, "encoding", d.Encoding, "file encoding (UTF8, LATIN1, WIN1252, ...)")
	}

	switch mode {
	case config.ModeCopy:
		fs.StringVar(&f.catalogKind, "catalog", d.CatalogKind, "metadata backend (postgres, sqlite, mssql, mysql)")
		fs.StringVar(&f.dsn, "dsn", "", "catalog DSN (default: $"+config.EnvDSN+")")
		fs.BoolVar(&f.strict, "strict", false, "fail when unmatched header fields are not trailing")
	case config.ModeSample:
		fs.IntVar(&f.sampleRows, "sample-rows", d.SampleRows, "rows read for type inference")
	}
	if mode != config.ModeCopy {
		fs.BoolVar(&f.ifNotExists, "if-not-exists", false, "render CREATE TABLE IF NOT EXISTS")
	}
	return f
}

// Config loads ConfigPath (or the defaults) and applies the flags set on the
// command line. Call it after fs.Parse.
func (f *Flags) Config() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if f.ConfigPath != "" {
		c, err := config.Load(f.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = c
	}

	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "table":
			cfg.Table = f.table
		case "file":
			cfg.File = f.file
		case "load-path":
			cfg.LoadPath = f.loadPath
		case "delimiter":
			cfg.Delimiter = f.delimiter
		case "encoding":
			cfg.Encoding = f.encoding
		case "dictionary":
			cfg.Dictionary = f.dictionary
		case "sheet":
			cfg.Sheet = f.sheet
		case "header-row":
			cfg.HeaderRow = f.headerRow
		case "name-col":
			cfg.NameColumn = f.nameCol
		case "type-col":
			cfg.TypeColumn = f.typeCol
		case "size-col":
			cfg.SizeColumn = f.sizeCol
		case "notes":
			cfg.Notes = f.notes
		case "catalog":
			cfg.CatalogKind = f.catalogKind
		case "dsn":
			cfg.DSN = f.dsn
		case "strict":
			cfg.Strict = f.strict
		case "sample-rows":
			cfg.SampleRows = f.sampleRows
		case "if-not-exists":
			cfg.IfNotExists = f.ifNotExists
		}
	})
	return cfg, nil
}

// Prepare runs the steps every command shares before its own work: build the
// config, honor -export-config, validate and honor -validate. done reports
// that the command should exit successfully without generating anything.
func (f *Flags) Prepare() (cfg *config.Config, done bool) {
	cfg, err := f.Config()
	if err != nil {
		Fatalf("%v", err)
	}

	if f.ExportPath != "" {
		if err := config.Export(f.ExportPath, cfg); err != nil {
			Fatalf("%v", err)
		}
		log.Printf("config written to %s", f.ExportPath)
		return cfg, true
	}

	if PrintIssues(os.Stderr, config.Validate(cfg, f.mode)) {
		Fatalf("configuration is invalid")
	}
	if f.Validate {
		log.Printf("configuration is valid")
		return cfg, true
	}
	return cfg, false
}

// PrintIssues writes one line per issue and reports whether any is an error.
func PrintIssues(w io.Writer, issues []config.Issue) (hasError bool) {
	for _, iss := range issues {
		fmt.Fprintf(w, "%s: %s: %s\n", iss.Severity, iss.Path, iss.Message)
		if iss.Severity == config.SeverityError {
			hasError = true
		}
	}
	return hasError
}

// LogWarnings logs each reconciliation warning on the standard logger.
func LogWarnings(ws []reconcile.Warning) {
	for _, w := range ws {
		log.Printf("warning: %s", w)
	}
}

// exit is a test hook.
var exit = os.Exit

// Fatalf prints the message in red on stderr and exits with status 1.
func Fatalf(format string, a ...any) {
	errorColor := color.New(color.FgRed, color.Bold)
	_, _ = errorColor.Fprintf(os.Stderr, "error: "+format+"\n", a...)
	exit(1)
}
