package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoad_HCLOverDefaults(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "run.hcl", `
table      = "censo.escolas"
dictionary = "dicionario.xlsx"
sheet      = "Dicionario"
size_column = -1
strict     = true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := DefaultConfig()
	want.Table = "censo.escolas"
	want.Dictionary = "dicionario.xlsx"
	want.Sheet = "Dicionario"
	want.SizeColumn = -1
	want.Strict = true
	if !reflect.DeepEqual(cfg, want) {
		t.Fatalf("Load() = %+v\nwant %+v", cfg, want)
	}
}

func TestLoad_JSONOverDefaults(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "run.json", `{"table":"cursos","file":"cursos.csv","encoding":"LATIN1","notes":false}`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Table != "cursos" || cfg.File != "cursos.csv" || cfg.Encoding != "LATIN1" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Notes {
		t.Fatalf("Notes = true, want explicit false to override default")
	}
	if cfg.Delimiter != ";" || cfg.SampleRows != 1000 || cfg.HeaderRow != 1 {
		t.Fatalf("defaults not kept: %+v", cfg)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name, file, content, want string
	}{
		{"unknown json key", "a.json", `{"tabel":"x"}`, "unknown field"},
		{"bad json", "b.json", `{`, "config: decode"},
		{"bad hcl", "c.hcl", `table = `, "config: parse"},
		{"hcl wrong type", "d.hcl", `header_row = "one"`, "config: decode"},
		{"hcl unknown attr", "e.hcl", `tabel = "x"`, "config: decode"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Load(writeFile(t, tc.file, tc.content))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("Load() err = %v, want containing %q", err, tc.want)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.hcl"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Load() err = %v, want not-exist", err)
	}
}

func TestExportAndLoad(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Table = "public.cursos"
	cfg.File = "/data/cursos.csv"
	cfg.LoadPath = "/srv/cursos.csv"
	cfg.Delimiter = "|"
	cfg.DSN = "postgres://localhost/censo"
	cfg.IfNotExists = true

	path := filepath.Join(t.TempDir(), "out.hcl")
	if err := Export(path, cfg); err != nil {
		t.Fatalf("Export: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, cfg) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, cfg)
	}
}

func TestComma(t *testing.T) {
	t.Parallel()

	cases := map[string]rune{
		"":    ',',
		";":   ';',
		",":   ',',
		"|":   '|',
		`\t`:  '\t',
		"TAB": '\t',
		"\t":  '\t',
		";;":  ';',
	}
	for in, want := range cases {
		c := Config{Delimiter: in}
		if got := c.Comma(); got != want {
			t.Errorf("Comma(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestResolvedDSN(t *testing.T) {
	t.Setenv(EnvDSN, " postgres://env/db ")

	c := Config{}
	if got := c.ResolvedDSN(); got != "postgres://env/db" {
		t.Fatalf("ResolvedDSN() = %q, want env fallback", got)
	}
	c.DSN = "postgres://flag/db"
	if got := c.ResolvedDSN(); got != "postgres://flag/db" {
		t.Fatalf("ResolvedDSN() = %q, want explicit DSN", got)
	}
}

func TestResolvedLoadPath(t *testing.T) {
	t.Parallel()

	c := Config{File: "a.csv"}
	if got := c.ResolvedLoadPath(); got != "a.csv" {
		t.Fatalf("ResolvedLoadPath() = %q", got)
	}
	c.LoadPath = "/srv/a.csv"
	if got := c.ResolvedLoadPath(); got != "/srv/a.csv" {
		t.Fatalf("ResolvedLoadPath() = %q", got)
	}
}
