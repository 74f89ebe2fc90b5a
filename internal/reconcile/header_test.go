package reconcile

import (
	"reflect"
	"testing"
)

func TestMatchHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		known         []string
		header        []string
		wantMatched   []string
		wantPositions []int
		wantUnmatched []string
		wantUnused    []string
		wantTrailing  bool
		wantKinds     []Kind
	}{
		{
			name:          "case and whitespace ignored",
			known:         []string{"id", "nome", "idade"},
			header:        []string{"ID", " Nome ", "cidade"},
			wantMatched:   []string{"id", "nome"},
			wantPositions: []int{0, 1},
			wantUnmatched: []string{"cidade"},
			wantUnused:    []string{"idade"},
			wantTrailing:  true,
			wantKinds:     []Kind{KindUnmatchedField, KindCountMismatch},
		},
		{
			name:          "full match keeps csv order",
			known:         []string{"a", "b", "c"},
			header:        []string{"c", "a", "b"},
			wantMatched:   []string{"c", "a", "b"},
			wantPositions: []int{0, 1, 2},
			wantTrailing:  true,
		},
		{
			name:          "unmatched in the middle is flagged",
			known:         []string{"a", "c"},
			header:        []string{"a", "x", "c"},
			wantMatched:   []string{"a", "c"},
			wantPositions: []int{0, 2},
			wantUnmatched: []string{"x"},
			wantTrailing:  false,
			wantKinds:     []Kind{KindUnmatchedField, KindCountMismatch, KindMisaligned},
		},
		{
			name:          "canonical case from the table",
			known:         []string{"CodigoCurso"},
			header:        []string{"codigocurso"},
			wantMatched:   []string{"CodigoCurso"},
			wantPositions: []int{0},
			wantTrailing:  true,
		},
		{
			name:          "no full normalization",
			known:         []string{"nome_aluno"},
			header:        []string{"Nome Aluno"},
			wantUnmatched: []string{"Nome Aluno"},
			wantUnused:    []string{"nome_aluno"},
			wantTrailing:  true,
			wantKinds:     []Kind{KindUnmatchedField},
		},
		{
			name:          "duplicate header field",
			known:         []string{"id"},
			header:        []string{"id", "ID"},
			wantMatched:   []string{"id", "id"},
			wantPositions: []int{0, 1},
			wantTrailing:  true,
			wantKinds:     []Kind{KindDuplicateMatch},
		},
		{
			name:          "later duplicate key wins",
			known:         []string{"Nome", "nome"},
			header:        []string{"NOME"},
			wantMatched:   []string{"nome"},
			wantPositions: []int{0},
			wantUnused:    []string{"Nome"},
			wantTrailing:  true,
		},
		{
			name:         "empty header",
			known:        []string{"id"},
			header:       nil,
			wantUnused:   []string{"id"},
			wantTrailing: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m := MatchHeader(tc.known, tc.header)

			if !reflect.DeepEqual(m.Matched, tc.wantMatched) {
				t.Fatalf("Matched = %v, want %v", m.Matched, tc.wantMatched)
			}
			if !reflect.DeepEqual(m.Positions, tc.wantPositions) {
				t.Fatalf("Positions = %v, want %v", m.Positions, tc.wantPositions)
			}
			if got := m.UnmatchedNames(); len(got) != len(tc.wantUnmatched) || (len(got) > 0 && !reflect.DeepEqual(got, tc.wantUnmatched)) {
				t.Fatalf("Unmatched = %v, want %v", got, tc.wantUnmatched)
			}
			if !reflect.DeepEqual(m.UnusedColumns, tc.wantUnused) {
				t.Fatalf("UnusedColumns = %v, want %v", m.UnusedColumns, tc.wantUnused)
			}
			if m.TrailingOnly() != tc.wantTrailing {
				t.Fatalf("TrailingOnly = %v, want %v", m.TrailingOnly(), tc.wantTrailing)
			}
			if len(m.Matched)+len(m.Unmatched) != len(tc.header) {
				t.Fatalf("matched+unmatched = %d, header = %d", len(m.Matched)+len(m.Unmatched), len(tc.header))
			}
			var kinds []Kind
			for _, w := range m.Warnings {
				kinds = append(kinds, w.Kind)
			}
			if !reflect.DeepEqual(kinds, tc.wantKinds) {
				t.Fatalf("warning kinds = %v, want %v", kinds, tc.wantKinds)
			}
		})
	}
}

func TestWarningString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		w    Warning
		want string
	}{
		{Warning{Row: 3, Field: "x", Message: "m"}, `row 3 ("x"): m`},
		{Warning{Row: 3, Message: "m"}, "row 3: m"},
		{Warning{Field: "x", Message: "m"}, `"x": m`},
		{Warning{Message: "m"}, "m"},
	}
	for _, tc := range tests {
		if got := tc.w.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}
