package pipeline

import (
	"context"
	"errors"
	"fmt"

	"schemagen/internal/config"
	"schemagen/internal/datasource"
	"schemagen/internal/ddl"
	"schemagen/internal/parser/csv"
	"schemagen/internal/parser/xlsx"
	"schemagen/internal/reconcile"
)

// DictionaryReport is the outcome of DictionaryDDL.
type DictionaryReport struct {
	// Statement is CREATE TABLE, or ddl.NoColumnsPlaceholder when no column
	// survived.
	Statement string
	// Sheet is the worksheet read and Sheets every worksheet of the
	// workbook; both empty for a delimited dictionary.
	Sheet       string
	Sheets      []string
	Rows        int
	Columns     []ddl.ColumnSpec
	SkippedRows []int
	Warnings    []reconcile.Warning
}

// DictionaryDDL reads cfg.Dictionary (an .xlsx workbook, or a delimited file
// for .csv/.tsv/.txt) and renders CREATE TABLE cfg.Table from it.
func DictionaryDDL(ctx context.Context, cfg *config.Config) (DictionaryReport, error) {
	var rep DictionaryReport

	sh, err := readDictionary(ctx, cfg)
	if err != nil {
		return rep, err
	}
	rep.Sheet = sh.Name
	rep.Sheets = sh.Sheets
	rep.Rows = len(sh.Rows)

	res, err := reconcile.FromDictionary(sh.Rows, layout(cfg))
	rep.Columns = res.Columns
	rep.SkippedRows = res.SkippedRows
	rep.Warnings = res.Warnings
	if err != nil && !errors.Is(err, reconcile.ErrNoColumns) {
		return rep, err
	}

	opts := ddl.CreateOptions{IfNotExists: cfg.IfNotExists}
	if cfg.Notes {
		opts.Notes = ddl.DefaultNotes
	}
	stmt, cerr := ddl.CreateTable(cfg.Table, res.Columns, opts)
	rep.Statement = stmt
	switch {
	case errors.Is(cerr, ddl.ErrNoColumns):
		return rep, fmt.Errorf("%w: dictionary %s: %w", ErrNoUsableMapping, cfg.Dictionary, cerr)
	case cerr != nil:
		return rep, cerr
	}
	return rep, nil
}

// readDictionary returns the dictionary rows. A delimited dictionary comes
// back as a Sheet with no name.
func readDictionary(ctx context.Context, cfg *config.Config) (xlsx.Sheet, error) {
	rc, err := open(ctx, "dictionary", cfg.Dictionary)
	if err != nil {
		return xlsx.Sheet{}, err
	}
	defer rc.Close()

	switch datasource.Ext(cfg.Dictionary) {
	case ".csv", ".tsv", ".txt":
		rows, err := csv.ReadAll(rc, csvOptions(cfg))
		if err != nil {
			return xlsx.Sheet{}, fmt.Errorf("pipeline: dictionary %s: %w", cfg.Dictionary, err)
		}
		return xlsx.Sheet{Rows: rows}, nil
	default:
		sh, err := xlsx.Read(rc, cfg.Sheet)
		if err != nil {
			return xlsx.Sheet{}, fmt.Errorf("pipeline: dictionary %s: %w", cfg.Dictionary, err)
		}
		return sh, nil
	}
}
