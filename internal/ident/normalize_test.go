package ident

import (
	"regexp"
	"strings"
	"testing"
)

var identRe = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{name: "spaces become underscore", in: "Nome Aluno", want: "nome_aluno", wantOK: true},
		{name: "surrounding whitespace trimmed", in: "  idade \t", want: "idade", wantOK: true},
		{name: "accents folded", in: "Situação Matrícula", want: "situacao_matricula", wantOK: true},
		{name: "punctuation dropped", in: "CO_UF (código)", want: "co_uf_codigo", wantOK: true},
		{name: "underscore runs collapsed", in: "a__b___c", want: "a_b_c", wantOK: true},
		{name: "edge underscores trimmed", in: "__x__", want: "x", wantOK: true},
		{name: "leading digit prefixed", in: "2024 total", want: "_2024_total", wantOK: true},
		{name: "already prefixed digit is stable", in: "_1abc", want: "_1abc", wantOK: true},
		{name: "mixed whitespace", in: "a\t b\nc", want: "a_b_c", wantOK: true},
		{name: "separator next to space", in: "a - b", want: "a_b", wantOK: true},
		{name: "empty", in: "", wantOK: false},
		{name: "only whitespace", in: "   ", wantOK: false},
		{name: "only symbols", in: "%%$#", wantOK: false},
		{name: "only underscores", in: "___", wantOK: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := Normalize(tc.in)
			if ok != tc.wantOK {
				t.Fatalf("Normalize(%q) ok = %v, want %v (got %q)", tc.in, ok, tc.wantOK, got)
			}
			if got != tc.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

// corpus covers the shapes seen in open-data headers and dictionaries.
var corpus = []string{
	"", " ", "ID", " Nome ", "cidade", "Nome Aluno", "NU_ANO_CENSO",
	"Nº de matrículas", "1ª série", "___", "a b  c", "Ação/Região",
	"QT_MAT_BAS_0_3", "9", "_9", "x-y.z", "ÇÃO", "naïve café", "\uFEFFid",
	"tab\there", "日本語", "emoji 😀 col", "UPPER lower", "__a__b__",
}

func TestNormalizeIdempotent(t *testing.T) {
	t.Parallel()
	for _, s := range corpus {
		once, ok := Normalize(s)
		twice, ok2 := Normalize(once)
		if !ok {
			continue
		}
		if !ok2 || twice != once {
			t.Errorf("Normalize not idempotent for %q: %q -> %q (ok=%v)", s, once, twice, ok2)
		}
	}
}

func TestNormalizeCharset(t *testing.T) {
	t.Parallel()
	for _, s := range corpus {
		got, ok := Normalize(s)
		if !ok {
			if got != "" {
				t.Errorf("Normalize(%q) returned %q with ok=false", s, got)
			}
			continue
		}
		if !identRe.MatchString(got) {
			t.Errorf("Normalize(%q) = %q, not a valid identifier", s, got)
		}
		if got[0] >= '0' && got[0] <= '9' {
			t.Errorf("Normalize(%q) = %q starts with a digit", s, got)
		}
	}
}

func FuzzNormalize(f *testing.F) {
	for _, s := range corpus {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		once, ok := Normalize(s)
		if !ok {
			return
		}
		if !identRe.MatchString(once) {
			t.Fatalf("Normalize(%q) = %q, not a valid identifier", s, once)
		}
		if twice, _ := Normalize(once); twice != once {
			t.Fatalf("Normalize not idempotent for %q: %q -> %q", s, once, twice)
		}
	})
}

func TestMatchKey(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"ID":         "id",
		" Nome ":     "nome",
		"Nome Aluno": "nome aluno", // interior whitespace is significant
		"":           "",
	}
	for in, want := range tests {
		if got := MatchKey(in); got != want {
			t.Errorf("MatchKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	short := "nome_aluno"
	if got := Truncate(short); got != short {
		t.Fatalf("Truncate(%q) = %q, want unchanged", short, got)
	}

	long := strings.Repeat("a", 40) + "_" + strings.Repeat("b", 40)
	got := Truncate(long)
	if len(got) != MaxLen {
		t.Fatalf("len(Truncate) = %d, want %d", len(got), MaxLen)
	}
	if !strings.HasPrefix(got, strings.Repeat("a", 10)) || !strings.HasSuffix(got, strings.Repeat("b", 40)) {
		t.Fatalf("Truncate kept wrong segments: %q", got)
	}

	// A cut landing between two underscores must not produce "__".
	seam := "abcdefghi_" + strings.Repeat("x", 30) + "_" + strings.Repeat("y", 52)
	if got := Truncate(seam); strings.Contains(got, "__") {
		t.Fatalf("Truncate(%q) = %q contains a double underscore", seam, got)
	}
}
