package pipeline

import (
	"context"
	"errors"
	"fmt"

	"schemagen/internal/config"
	"schemagen/internal/ddl"
	"schemagen/internal/parser/csv"
	"schemagen/internal/reconcile"
)

// SampleReport is the outcome of SampleDDL.
type SampleReport struct {
	// Statement is CREATE TABLE, or ddl.NoColumnsPlaceholder for an empty
	// file.
	Statement string
	// Load is a server-side COPY without a column list.
	Load string
	// SampledRows and SkippedLines count the rows read for inference and the
	// lines dropped because they did not parse.
	SampledRows  int
	SkippedLines int
	Result       reconcile.InferResult
	Warnings     []reconcile.Warning
}

// SampleDDL reads the header and up to cfg.SampleRows rows of cfg.File,
// infers one column per header field and renders CREATE TABLE plus the COPY
// that loads the file into it.
func SampleDDL(ctx context.Context, cfg *config.Config) (SampleReport, error) {
	var rep SampleReport

	s, err := readSample(ctx, cfg)
	if err != nil {
		return rep, err
	}
	rep.SampledRows = len(s.Rows)
	rep.SkippedLines = s.Skipped

	res := reconcile.InferColumns(s.Header, s.Rows)
	rep.Result = res
	rep.Warnings = res.Warnings

	stmt, err := ddl.CreateTable(cfg.Table, res.Columns, ddl.CreateOptions{IfNotExists: cfg.IfNotExists})
	rep.Statement = stmt
	switch {
	case errors.Is(err, ddl.ErrNoColumns):
		return rep, fmt.Errorf("%w: %s has no header: %w", ErrNoUsableMapping, cfg.File, err)
	case err != nil:
		return rep, err
	}

	load, err := ddl.BulkLoad{
		Table:     cfg.Table,
		Path:      cfg.ResolvedLoadPath(),
		Delimiter: delimiter(cfg),
		Encoding:  cfg.Encoding,
		Header:    true,
	}.SQL()
	if err != nil {
		return rep, err
	}
	rep.Load = load
	return rep, nil
}

func readSample(ctx context.Context, cfg *config.Config) (csv.Sample, error) {
	rc, err := open(ctx, "data file", cfg.File)
	if err != nil {
		return csv.Sample{}, err
	}
	defer rc.Close()

	s, err := csv.ReadSample(rc, csvOptions(cfg), cfg.SampleRows)
	if err != nil {
		return s, fmt.Errorf("pipeline: data file %s: %w", cfg.File, err)
	}
	return s, nil
}
