// Package pipeline wires the readers, the reconciler and the statement
// renderer into the three generation runs:
//
//   - DictionaryDDL: CREATE TABLE from a data-dictionary spreadsheet.
//   - CopyCommand: a \copy whose column list is the file header matched
//     against the live table.
//   - SampleDDL: CREATE TABLE and COPY inferred from a sample of the file.
//
// Each run returns a report holding the rendered statement and every
// non-fatal warning; fatal conditions are returned as errors matching the
// sentinels in this package (or catalog.ErrTableNotFound,
// xlsx.ErrSheetNotFound).
package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"schemagen/internal/config"
	"schemagen/internal/datasource"
	"schemagen/internal/datasource/httpds"
	"schemagen/internal/parser/csv"
	"schemagen/internal/reconcile"
)

// HTTP configures the source used for http(s) inputs.
var HTTP = httpds.Config{
	Timeout:    60 * time.Second,
	MaxRetries: 2,
}

// openSource is a test hook.
var openSource = func(location string) datasource.Source {
	return datasource.For(location, HTTP)
}

// open opens location and returns the stream. what names the input in
// errors ("data file", "dictionary").
func open(ctx context.Context, what, location string) (io.ReadCloser, error) {
	if location == "" {
		return nil, fmt.Errorf("pipeline: %s path must not be empty", what)
	}
	src := openSource(location)
	rc, err := src.Open(ctx)
	if err != nil {
		return nil, openErr(what, src.Name(), err)
	}
	return rc, nil
}

func csvOptions(cfg *config.Config) csv.Options {
	return csv.Options{Comma: cfg.Comma(), Encoding: cfg.Encoding}
}

func layout(cfg *config.Config) reconcile.Layout {
	return reconcile.Layout{
		HeaderRow: cfg.HeaderRow,
		NameCol:   cfg.NameColumn,
		TypeCol:   cfg.TypeColumn,
		SizeCol:   cfg.SizeColumn,
	}
}

// delimiter returns the single-character delimiter as rendered in a bulk
// load command.
func delimiter(cfg *config.Config) string {
	return string(cfg.Comma())
}
