package pipeline

import (
	"context"
	"fmt"

	"schemagen/internal/catalog"
	"schemagen/internal/config"
	"schemagen/internal/ddl"
	"schemagen/internal/ident"
	"schemagen/internal/parser/csv"
	"schemagen/internal/reconcile"
)

// CopyReport is the outcome of CopyCommand.
type CopyReport struct {
	Statement    string
	TableColumns []string
	Header       []string
	Match        reconcile.HeaderMatch
	// HeaderFingerprint and ColumnsFingerprint hash the match keys of the
	// header and of the emitted column list; they are equal exactly when the
	// column list covers the header field for field.
	HeaderFingerprint  string
	ColumnsFingerprint string
	Warnings           []reconcile.Warning
}

// CopyCommand renders a client-side \copy for cfg.File into cfg.Table whose
// column list is the file header matched against the table columns reported
// by cat.
//
// A table without columns and a missing file are fatal. An empty file gives a
// command without a column list and a warning. A non-empty header that
// matches no column is ErrNoUsableMapping. Unmatched fields are left out with
// warnings; in strict mode non-trailing unmatched fields are ErrMisaligned.
func CopyCommand(ctx context.Context, cfg *config.Config, cat catalog.Catalog) (CopyReport, error) {
	var rep CopyReport

	cols, err := cat.Columns(ctx, cfg.Table)
	if err != nil {
		return rep, err
	}
	rep.TableColumns = cols

	header, err := readHeader(ctx, cfg)
	if err != nil {
		return rep, err
	}
	rep.Header = header

	load := ddl.BulkLoad{
		Table:     cfg.Table,
		Path:      cfg.ResolvedLoadPath(),
		Delimiter: delimiter(cfg),
		Encoding:  cfg.Encoding,
		Header:    true,
		Client:    true,
	}

	if len(header) == 0 {
		rep.Warnings = append(rep.Warnings, reconcile.Warning{
			Kind:    reconcile.KindEmptyInput,
			Message: fmt.Sprintf("%s has no header; column list omitted", cfg.File),
		})
	} else {
		m := reconcile.MatchHeader(cols, header)
		rep.Match = m
		rep.Warnings = append(rep.Warnings, m.Warnings...)
		rep.HeaderFingerprint = ddl.Fingerprint(matchKeys(header))
		rep.ColumnsFingerprint = ddl.Fingerprint(matchKeys(m.Matched))

		if len(m.Matched) == 0 {
			return rep, fmt.Errorf("%w: none of the %d header fields of %s matches a column of %s", ErrNoUsableMapping, len(header), cfg.File, cfg.Table)
		}
		if cfg.Strict && !m.TrailingOnly() {
			return rep, fmt.Errorf("%w: %s", ErrMisaligned, cfg.File)
		}
		load.Columns = m.Matched
	}

	stmt, err := load.SQL()
	if err != nil {
		return rep, err
	}
	rep.Statement = stmt
	return rep, nil
}

func readHeader(ctx context.Context, cfg *config.Config) ([]string, error) {
	rc, err := open(ctx, "data file", cfg.File)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	h, err := csv.ReadHeader(rc, csvOptions(cfg))
	if err != nil {
		return nil, fmt.Errorf("pipeline: data file %s: %w", cfg.File, err)
	}
	return h, nil
}

func matchKeys(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = ident.MatchKey(n)
	}
	return out
}
