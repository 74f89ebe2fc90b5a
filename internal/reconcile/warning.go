// Package reconcile turns source metadata into an ordered column list.
//
// Two algorithms live here. FromDictionary treats a data dictionary (one row
// per column: name, type token, optional size) as the source of truth.
// MatchHeader maps a delimited file's header onto the columns of a table that
// already exists. InferColumns derives definitions from sampled values when
// neither is available.
//
// None of them print anything. Per-row and per-field anomalies are returned as
// Warning values next to the primary result; the caller decides whether to
// log, surface or escalate them.
package reconcile

import (
	"errors"
	"fmt"
)

// ErrNoColumns means reconciliation produced nothing usable.
var ErrNoColumns = errors.New("reconcile: no usable column definitions")

// Kind classifies a Warning.
type Kind string

const (
	KindRowTooShort     Kind = "row_too_short"
	KindMissingName     Kind = "missing_name"
	KindMissingType     Kind = "missing_type"
	KindUnknownType     Kind = "unknown_type"
	KindInvalidSize     Kind = "invalid_size"
	KindDuplicateName   Kind = "duplicate_name"
	KindTruncatedName   Kind = "truncated_name"
	KindUnmatchedField  Kind = "unmatched_field"
	KindDuplicateMatch  Kind = "duplicate_match"
	KindCountMismatch   Kind = "count_mismatch"
	KindMisaligned      Kind = "misaligned"
	KindFallbackName    Kind = "fallback_name"
	KindRaggedSampleRow Kind = "ragged_sample_row"
	KindEmptyInput      Kind = "empty_input"
)

// Warning is a non-fatal anomaly found while reconciling.
//
// Row is the 1-based source row (dictionary row, or sample row) when the
// anomaly is tied to one, 0 otherwise. Field is the raw name or header text
// involved, if any.
type Warning struct {
	Kind    Kind
	Row     int
	Field   string
	Message string
}

func (w Warning) String() string {
	switch {
	case w.Row > 0 && w.Field != "":
		return fmt.Sprintf("row %d (%q): %s", w.Row, w.Field, w.Message)
	case w.Row > 0:
		return fmt.Sprintf("row %d: %s", w.Row, w.Message)
	case w.Field != "":
		return fmt.Sprintf("%q: %s", w.Field, w.Message)
	default:
		return w.Message
	}
}

// warnings accumulates Warning values.
type warnings []Warning

func (ws *warnings) add(kind Kind, row int, field, format string, args ...any) {
	*ws = append(*ws, Warning{
		Kind:    kind,
		Row:     row,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	})
}
