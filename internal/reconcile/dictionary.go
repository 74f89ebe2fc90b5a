package reconcile

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"schemagen/internal/ddl"
	"schemagen/internal/ident"
)

// Layout locates the dictionary fields inside each row.
//
// HeaderRow is 1-based: rows up to and including it are skipped (0 means the
// first row is already data). Column indices are 0-based positions within a
// row; SizeCol < 0 means the dictionary has no size column.
type Layout struct {
	HeaderRow int
	NameCol   int
	TypeCol   int
	SizeCol   int
}

// DefaultLayout matches the common dictionary shape: one header row, an
// ordinal in column A, then name, type and size.
func DefaultLayout() Layout {
	return Layout{HeaderRow: 1, NameCol: 1, TypeCol: 2, SizeCol: 3}
}

// Validate checks the layout for impossible positions.
func (l Layout) Validate() error {
	var errs []error
	if l.HeaderRow < 0 {
		errs = append(errs, fmt.Errorf("header row %d must be >= 0", l.HeaderRow))
	}
	if l.NameCol < 0 {
		errs = append(errs, fmt.Errorf("name column %d must be >= 0", l.NameCol))
	}
	if l.TypeCol < 0 {
		errs = append(errs, fmt.Errorf("type column %d must be >= 0", l.TypeCol))
	}
	if l.NameCol == l.TypeCol {
		errs = append(errs, fmt.Errorf("name and type columns must differ (both %d)", l.NameCol))
	}
	if l.SizeCol >= 0 && (l.SizeCol == l.NameCol || l.SizeCol == l.TypeCol) {
		errs = append(errs, fmt.Errorf("size column %d overlaps name or type column", l.SizeCol))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("reconcile: invalid layout: %w", err)
	}
	return nil
}

// DictionaryResult is the outcome of FromDictionary.
type DictionaryResult struct {
	// Columns in source row order.
	Columns []ddl.ColumnSpec
	// SkippedRows lists the 1-based row numbers that produced no column.
	SkippedRows []int
	Warnings    []Warning
}

// FromDictionary builds column definitions from data-dictionary rows.
//
// Each row after l.HeaderRow contributes one column unless it is too short
// to hold a name and a type, its name normalizes to nothing, or its type
// cell is blank; such rows are skipped and reported. Unknown type tokens fall
// back to TEXT and size specs that do not fit are dropped, both with a
// warning. Names that collide after normalization get a numeric suffix.
//
// ErrNoColumns is returned when no row survives.
func FromDictionary(rows [][]string, l Layout) (DictionaryResult, error) {
	var res DictionaryResult
	if err := l.Validate(); err != nil {
		return res, err
	}

	var ws warnings
	names := newNameSet()
	need := max(l.NameCol, l.TypeCol) + 1

	for i := l.HeaderRow; i < len(rows); i++ {
		row := rows[i]
		rowNum := i + 1

		if len(row) < need {
			ws.add(KindRowTooShort, rowNum, "", "only %d cells, need %d for name and type; row skipped", len(row), need)
			res.SkippedRows = append(res.SkippedRows, rowNum)
			continue
		}

		rawName := row[l.NameCol]
		rawType := strings.TrimSpace(row[l.TypeCol])
		name, ok := ident.Normalize(rawName)
		switch {
		case !ok:
			ws.add(KindMissingName, rowNum, rawName, "name is empty after sanitizing (type %q); row skipped", rawType)
			res.SkippedRows = append(res.SkippedRows, rowNum)
			continue
		case rawType == "":
			ws.add(KindMissingType, rowNum, rawName, "type is empty; row skipped")
			res.SkippedRows = append(res.SkippedRows, rowNum)
			continue
		}

		var rawSize string
		if l.SizeCol >= 0 && l.SizeCol < len(row) {
			rawSize = row[l.SizeCol]
		}

		r := ddl.Resolve(rawType, rawSize)
		if r.Fallback {
			ws.add(KindUnknownType, rowNum, rawName, "unknown type %q, using %s", rawType, r.StorageType)
		}
		if r.SizeErr != nil {
			ws.add(KindInvalidSize, rowNum, rawName, "size ignored for %s: %v", r.StorageType, r.SizeErr)
		}

		final := names.claim(name, rowNum, rawName, &ws)
		res.Columns = append(res.Columns, ddl.ColumnSpec{
			Name:         final,
			DeclaredType: rawType,
			StorageType:  r.StorageType,
			Size:         r.Size,
		})
	}

	res.Warnings = ws
	if len(res.Columns) == 0 {
		return res, fmt.Errorf("%w: %d dictionary rows after the header, none usable", ErrNoColumns, max(len(rows)-l.HeaderRow, 0))
	}
	return res, nil
}

// nameSet hands out unique, length-capped identifiers.
type nameSet map[string]struct{}

func newNameSet() nameSet { return make(nameSet) }

// claim reserves name, truncating it to the identifier limit and appending
// "_2", "_3", ... on collision. Adjustments are reported through ws.
func (s nameSet) claim(name string, row int, raw string, ws *warnings) string {
	base := ident.Truncate(name)
	if base != name {
		ws.add(KindTruncatedName, row, raw, "name longer than %d bytes, truncated to %q", ident.MaxLen, base)
	}
	if _, taken := s[base]; !taken {
		s[base] = struct{}{}
		return base
	}
	for n := 2; ; n++ {
		suffix := "_" + strconv.Itoa(n)
		stem := base
		if len(stem)+len(suffix) > ident.MaxLen {
			stem = strings.TrimRight(stem[:ident.MaxLen-len(suffix)], "_")
		}
		cand := stem + suffix
		if _, taken := s[cand]; !taken {
			s[cand] = struct{}{}
			ws.add(KindDuplicateName, row, raw, "name %q already used, renamed to %q", base, cand)
			return cand
		}
	}
}
