package reconcile

import (
	"strconv"
	"strings"

	"schemagen/internal/ddl"
	"schemagen/internal/ident"
)

// InferResult is the outcome of InferColumns.
type InferResult struct {
	Columns []ddl.ColumnSpec
	// Kinds holds the inferred kind per column (ddl.KindInteger, ...).
	Kinds []string
	// HeaderWidth is the number of fields in the source header.
	HeaderWidth int
	Warnings    []Warning
}

// CountsMatch reports whether one definition was produced per header field.
func (r InferResult) CountsMatch() bool {
	return len(r.Columns) == r.HeaderWidth
}

// InferColumns derives one column definition per header field from sampled
// rows. Each column gets the narrowest kind all of its non-empty values
// satisfy, tried in order integer, boolean, real; anything else (and an
// all-empty column) is text. Names go through ident.Normalize; a field that
// normalizes to nothing becomes col_<n>.
//
// Sample rows whose width differs from the header do not take part in
// inference; they are counted in a single warning.
func InferColumns(header []string, rows [][]string) InferResult {
	n := len(header)
	res := InferResult{HeaderWidth: n}
	var ws warnings

	cols := make([][]string, n)
	ragged := 0
	for _, row := range rows {
		if len(row) != n {
			ragged++
			continue
		}
		for i, v := range row {
			cols[i] = append(cols[i], v)
		}
	}
	if ragged > 0 {
		ws.add(KindRaggedSampleRow, 0, "", "%d sample rows with a field count other than %d ignored for inference", ragged, n)
	}

	names := newNameSet()
	for i, h := range header {
		name, ok := ident.Normalize(h)
		if !ok {
			name = "col_" + strconv.Itoa(i+1)
			ws.add(KindFallbackName, 0, h, "header field %d has no usable name, using %q", i+1, name)
		}
		name = names.claim(name, 0, h, &ws)

		kind := inferKind(cols[i])
		res.Kinds = append(res.Kinds, kind)
		res.Columns = append(res.Columns, ddl.ColumnSpec{
			Name:        name,
			StorageType: ddl.FromInferred(kind),
		})
	}

	if !res.CountsMatch() {
		ws.add(KindCountMismatch, 0, "", "%d column definitions for %d header fields", len(res.Columns), n)
	}
	res.Warnings = ws
	return res
}

// inferKind guesses a kind among integer, boolean, real and text.
// Heuristic: require all non-empty values to satisfy a narrower kind.
func inferKind(values []string) string {
	nonEmpty := nonEmptyTrimmed(values)
	if len(nonEmpty) == 0 {
		return ddl.KindText
	}
	if allMatch(nonEmpty, isInt) {
		return ddl.KindInteger
	}
	if allMatch(nonEmpty, isBool) {
		return ddl.KindBoolean
	}
	// Mixed ints and floats are real; isFloat accepts both.
	if allMatch(nonEmpty, isFloat) {
		return ddl.KindReal
	}
	return ddl.KindText
}

// nonEmptyTrimmed returns the non-empty, trimmed values.
func nonEmptyTrimmed(vals []string) []string {
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// allMatch reports whether every value satisfies fn.
func allMatch(vals []string, fn func(string) bool) bool {
	for _, v := range vals {
		if !fn(v) {
			return false
		}
	}
	return true
}

// isBool accepts common textual booleans. 1/0 are claimed by isInt first.
func isBool(s string) bool {
	switch strings.ToLower(s) {
	case "true", "false", "t", "f", "yes", "no", "y", "n":
		return true
	default:
		return false
	}
}

// isInt requires a signed base-10 integer that fits in int64.
func isInt(s string) bool {
	_, err := strconv.ParseInt(s, 10, 64)
	return err == nil
}

// isFloat accepts decimal or scientific notation. NaN and Inf spellings are
// rejected since they are almost always text in open data.
func isFloat(s string) bool {
	switch strings.ToLower(strings.TrimLeft(s, "+-")) {
	case "nan", "inf", "infinity":
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
