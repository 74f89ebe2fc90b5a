// Package csv reads the parts of a delimited file needed to generate DDL: the
// header, a bounded sample of rows, or (for small dictionary files) every row.
// Input is decoded from the configured text encoding before parsing.
package csv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// Options configures the reader. All fields are optional; sensible defaults
// are applied when a field is zero.
type Options struct {
	// Comma specifies the field delimiter. When zero, ',' is used.
	Comma rune

	// Encoding names the text encoding of the input, PostgreSQL style
	// ("UTF8", "LATIN1", "WIN1252") or any IANA name. Empty means UTF-8.
	Encoding string

	// TrimLeadingSpace ignores leading white space in a field.
	TrimLeadingSpace bool
}

// Sample is the header plus up to maxRows data rows of a file.
type Sample struct {
	Header []string
	Rows   [][]string
	// Skipped counts lines dropped because they failed to parse or were
	// empty.
	Skipped int
}

// newReader builds a lenient encoding/csv reader: lazy quotes and variable
// field counts, so callers see every row and decide what a width mismatch
// means.
func newReader(r io.Reader, opt Options) (*csv.Reader, error) {
	dec, err := NewDecoder(r, opt.Encoding)
	if err != nil {
		return nil, err
	}
	cr := csv.NewReader(dec)
	if opt.Comma != 0 {
		cr.Comma = opt.Comma
	}
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = opt.TrimLeadingSpace
	cr.ReuseRecord = false
	return cr, nil
}

// ReadHeader returns the first record of r with any UTF-8 BOM removed from
// its first cell. An empty input yields a nil header and no error.
func ReadHeader(r io.Reader, opt Options) ([]string, error) {
	cr, err := newReader(r, opt)
	if err != nil {
		return nil, err
	}
	h, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("csv: read header: %w", err)
	}
	return StripHeaderBOM(h), nil
}

// ReadSample reads the header and at most maxRows data rows (maxRows <= 0
// means no limit). Rows that fail to parse are skipped and counted rather
// than aborting the read; rows of any width are kept.
func ReadSample(r io.Reader, opt Options, maxRows int) (Sample, error) {
	var s Sample
	cr, err := newReader(r, opt)
	if err != nil {
		return s, err
	}

	h, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("csv: read header: %w", err)
	}
	s.Header = StripHeaderBOM(h)

	for maxRows <= 0 || len(s.Rows) < maxRows {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				s.Skipped++
				continue
			}
			return s, fmt.Errorf("csv: read row %d: %w", len(s.Rows)+s.Skipped+2, err)
		}
		if len(rec) == 0 {
			s.Skipped++
			continue
		}
		s.Rows = append(s.Rows, rec)
	}
	return s, nil
}

// ReadAll returns every record of r, header included, with a leading BOM
// stripped. It is meant for dictionary files, which are small.
func ReadAll(r io.Reader, opt Options) ([][]string, error) {
	cr, err := newReader(r, opt)
	if err != nil {
		return nil, err
	}
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv: read all: %w", err)
	}
	if len(rows) > 0 {
		rows[0] = StripHeaderBOM(rows[0])
	}
	return rows, nil
}
