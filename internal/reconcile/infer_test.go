package reconcile

import (
	"reflect"
	"testing"

	"schemagen/internal/ddl"
)

// TestInferKind covers boolean, integer, real and fallback to text using
// table-driven cases.
func TestInferKind(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		values []string
		want   string
	}{
		{"AllEmpty", []string{"", " ", "   "}, ddl.KindText},
		{"NoValues", nil, ddl.KindText},
		{"Integers", []string{"1", "0", "-10", " 42 "}, ddl.KindInteger},
		{"ZeroOneIsInteger", []string{"0", "1", "1"}, ddl.KindInteger},
		{"IntegersWithGaps", []string{"1", "", "3"}, ddl.KindInteger},
		{"Booleans", []string{"true", "FALSE", "Yes", "n"}, ddl.KindBoolean},
		{"Reals", []string{"1.1", "2e3", "3"}, ddl.KindReal},
		{"NaNIsText", []string{"NaN", "1.5"}, ddl.KindText},
		{"CommaDecimalIsText", []string{"1,5", "2,0"}, ddl.KindText},
		{"MixedText", []string{"x", "1", "true"}, ddl.KindText},
		{"Dates", []string{"2024-01-02"}, ddl.KindText},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := inferKind(tc.values); got != tc.want {
				t.Fatalf("inferKind(%q) = %q; want %q", tc.values, got, tc.want)
			}
		})
	}
}

func TestInferColumns(t *testing.T) {
	t.Parallel()

	header := []string{"ID", "Ativo", "Nota Final", "Nome", "%%", "id"}
	rows := [][]string{
		{"1", "true", "7.5", "Ana", "x", "9"},
		{"2", "false", "8", "Bia", "y", "8"},
		{"3", "t"}, // ragged
	}
	res := InferColumns(header, rows)

	want := []string{
		"id INTEGER",
		"ativo BOOLEAN",
		"nota_final NUMERIC",
		"nome TEXT",
		"col_5 TEXT",
		"id_2 INTEGER",
	}
	if got := specs(res.Columns); !reflect.DeepEqual(got, want) {
		t.Fatalf("columns = %v, want %v", got, want)
	}
	if !res.CountsMatch() || res.HeaderWidth != 6 {
		t.Fatalf("CountsMatch = %v, HeaderWidth = %d", res.CountsMatch(), res.HeaderWidth)
	}
	for _, k := range []Kind{KindRaggedSampleRow, KindFallbackName, KindDuplicateName} {
		if !hasKind(res.Warnings, k) {
			t.Errorf("missing %s warning in %+v", k, res.Warnings)
		}
	}
}

func TestInferColumns_HeaderOnly(t *testing.T) {
	t.Parallel()

	res := InferColumns([]string{"a", "b"}, nil)
	want := []string{"a TEXT", "b TEXT"}
	if got := specs(res.Columns); !reflect.DeepEqual(got, want) {
		t.Fatalf("columns = %v, want %v", got, want)
	}
	if len(res.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %+v", res.Warnings)
	}
}
