package reconcile

import (
	"strconv"
	"strings"

	"schemagen/internal/ident"
)

// Field is one delimited-file header field and its 0-based position.
type Field struct {
	Index int
	Name  string
}

// HeaderMatch is the outcome of MatchHeader.
//
// Matched and Positions are parallel: Matched[i] is the canonical table
// column for header field Positions[i]. Every header field lands in exactly
// one of Matched or Unmatched.
type HeaderMatch struct {
	Matched   []string
	Positions []int
	// Unmatched holds header fields with no table column, raw text kept.
	Unmatched []Field
	// UnusedColumns are table columns no header field hit, in table order.
	// Informational only: they simply receive their defaults on load.
	UnusedColumns []string
	Width         int
	Warnings      []Warning
}

// Aligned reports whether every header field was matched, so the emitted
// column list covers the file field for field.
func (m HeaderMatch) Aligned() bool {
	return len(m.Unmatched) == 0
}

// TrailingOnly reports whether all unmatched fields sit after the last
// matched one. That is the only partial match under which a positional bulk
// load with the emitted column list is safe.
func (m HeaderMatch) TrailingOnly() bool {
	for _, f := range m.Unmatched {
		if f.Index < len(m.Matched) {
			return false
		}
	}
	return true
}

// UnmatchedNames returns the raw text of the unmatched header fields.
func (m HeaderMatch) UnmatchedNames() []string {
	out := make([]string, len(m.Unmatched))
	for i, f := range m.Unmatched {
		out[i] = f.Name
	}
	return out
}

// MatchHeader maps header fields onto known table columns.
//
// The comparison ignores only case and surrounding whitespace (ident.MatchKey);
// it does not apply full identifier normalization, since the table columns
// are authoritative and a looser match would silently pick the wrong one.
// When two known columns share a key the later one wins.
//
// A count mismatch is never an error: the result is best-effort and the
// warnings describe the risk. Callers wanting a hard failure check
// TrailingOnly.
func MatchHeader(known, header []string) HeaderMatch {
	lookup := make(map[string]string, len(known))
	for _, c := range known {
		if k := ident.MatchKey(c); k != "" {
			lookup[k] = c
		}
	}

	m := HeaderMatch{Width: len(header)}
	var ws warnings
	hit := make(map[string]int, len(known))

	for i, h := range header {
		col, ok := lookup[ident.MatchKey(h)]
		if !ok {
			m.Unmatched = append(m.Unmatched, Field{Index: i, Name: h})
			ws.add(KindUnmatchedField, 0, h, "no table column matches header field %d", i+1)
			continue
		}
		if prev, dup := hit[col]; dup {
			ws.add(KindDuplicateMatch, 0, h, "header field %d maps to column %q already matched by field %d", i+1, col, prev+1)
		} else {
			hit[col] = i
		}
		m.Matched = append(m.Matched, col)
		m.Positions = append(m.Positions, i)
	}

	seen := make(map[string]bool, len(known))
	for _, c := range known {
		if _, ok := hit[c]; ok || seen[c] {
			continue
		}
		seen[c] = true
		m.UnusedColumns = append(m.UnusedColumns, c)
	}

	if len(m.Unmatched) > 0 && len(m.Matched) > 0 {
		ws.add(KindCountMismatch, 0, "", "%d of %d header fields matched; unmatched fields are left out of the column list", len(m.Matched), len(header))
		if !m.TrailingOnly() {
			ws.add(KindMisaligned, 0, "", "unmatched fields %s are not trailing; a positional load will misalign", quoteList(m.UnmatchedNames()))
		}
	}

	m.Warnings = ws
	return m
}

func quoteList(ss []string) string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = strconv.Quote(s)
	}
	return strings.Join(out, ", ")
}
