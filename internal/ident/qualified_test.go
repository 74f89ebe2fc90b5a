package ident

import (
	"reflect"
	"testing"
)

func TestSplitQualified(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want []string
	}{
		{"escolas", []string{"escolas"}},
		{"censo.escolas", []string{"censo", "escolas"}},
		{`"Censo"."Cursos"`, []string{"Censo", "Cursos"}},
		{` "Censo" . "Escolas" `, []string{"Censo", "Escolas"}},
		{`"we""ird"`, []string{`we"ird`}},
		{`we"ird`, []string{`we"ird`}},
		{`"a.b".c`, []string{"a.b", "c"}},
		{"db.dbo.t", []string{"db", "dbo", "t"}},
		{"Nome Curso", []string{"Nome Curso"}},
		{".t.", []string{"t"}},
		{"", nil},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()
			if got := SplitQualified(tc.in); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("SplitQualified(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
