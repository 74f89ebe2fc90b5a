package xlsx

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"
)

// buildWorkbook returns an in-memory workbook with a default "Sheet1" and a
// "Dicionario" sheet that is made active.
func buildWorkbook(t *testing.T) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	t.Cleanup(func() { _ = f.Close() })

	if err := f.SetSheetRow("Sheet1", "A1", &[]any{"ignored"}); err != nil {
		t.Fatalf("SetSheetRow: %v", err)
	}

	idx, err := f.NewSheet("Dicionario")
	if err != nil {
		t.Fatalf("NewSheet: %v", err)
	}
	rows := [][]any{
		{"#", "Nome", "Tipo", "Tamanho"},
		{1, "Nome Aluno", "TEXTO"},
		{2, "idade", "NUM", 3},
	}
	for i, r := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Dicionario", cell, &r); err != nil {
			t.Fatalf("SetSheetRow: %v", err)
		}
	}
	// Row 5 leaves a gap at row 4.
	if err := f.SetSheetRow("Dicionario", "A5", &[]any{4, "nota", "NUMERIC", "5,2"}); err != nil {
		t.Fatalf("SetSheetRow: %v", err)
	}
	f.SetActiveSheet(idx)

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}
	return buf
}

func TestRead_ActiveSheet(t *testing.T) {
	t.Parallel()

	s, err := Read(buildWorkbook(t), "")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if s.Name != "Dicionario" {
		t.Fatalf("sheet = %q, want active sheet Dicionario", s.Name)
	}
	if len(s.Rows) != 5 {
		t.Fatalf("rows = %d (%q), want 5", len(s.Rows), s.Rows)
	}
	if want := []string{"1", "Nome Aluno", "TEXTO"}; !reflect.DeepEqual(s.Rows[1], want) {
		t.Fatalf("row 2 = %q, want %q", s.Rows[1], want)
	}
	if want := []string{"2", "idade", "NUM", "3"}; !reflect.DeepEqual(s.Rows[2], want) {
		t.Fatalf("row 3 = %q, want %q", s.Rows[2], want)
	}
	if len(s.Rows[3]) != 0 {
		t.Fatalf("row 4 = %q, want empty", s.Rows[3])
	}
	if s.Rows[4][1] != "nota" {
		t.Fatalf("row 5 = %q", s.Rows[4])
	}
}

func TestRead_NamedSheet(t *testing.T) {
	t.Parallel()

	s, err := Read(buildWorkbook(t), "Sheet1")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if want := [][]string{{"ignored"}}; !reflect.DeepEqual(s.Rows, want) {
		t.Fatalf("rows = %q, want %q", s.Rows, want)
	}
}

func TestRead_MissingSheet(t *testing.T) {
	t.Parallel()

	_, err := Read(buildWorkbook(t), "Nope")
	if !errors.Is(err, ErrSheetNotFound) {
		t.Fatalf("err = %v, want ErrSheetNotFound", err)
	}
}

func TestRead_NotAWorkbook(t *testing.T) {
	t.Parallel()

	_, err := Read(bytes.NewReader([]byte("id;nome\n")), "")
	if err == nil || errors.Is(err, ErrSheetNotFound) {
		t.Fatalf("err = %v, want open error", err)
	}
}

func TestRead_ListsSheets(t *testing.T) {
	t.Parallel()

	s, err := Read(buildWorkbook(t), "Sheet1")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if want := []string{"Sheet1", "Dicionario"}; !reflect.DeepEqual(s.Sheets, want) {
		t.Fatalf("sheets = %q, want %q", s.Sheets, want)
	}
}

func TestRead_RawValuesIgnoreNumberFormat(t *testing.T) {
	t.Parallel()

	f := excelize.NewFile()
	t.Cleanup(func() { _ = f.Close() })

	rows := [][]any{
		{"#", "Nome", "Tipo", "Tamanho"},
		{1, "nome", "VARCHAR", 8},
		{2, "valor", "NUMERIC", 1000},
	}
	for i, r := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Sheet1", cell, &r); err != nil {
			t.Fatalf("SetSheetRow: %v", err)
		}
	}
	// 2 is "0.00", 3 is "#,##0".
	for cell, numFmt := range map[string]int{"D2": 2, "D3": 3} {
		style, err := f.NewStyle(&excelize.Style{NumFmt: numFmt})
		if err != nil {
			t.Fatalf("NewStyle: %v", err)
		}
		if err := f.SetCellStyle("Sheet1", cell, cell, style); err != nil {
			t.Fatalf("SetCellStyle: %v", err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}

	s, err := Read(buf, "")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got := s.Rows[1][3]; got != "8" {
		t.Fatalf("D2 = %q, want raw 8", got)
	}
	if got := s.Rows[2][3]; got != "1000" {
		t.Fatalf("D3 = %q, want raw 1000", got)
	}
}
