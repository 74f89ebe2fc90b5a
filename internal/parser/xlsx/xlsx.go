// Package xlsx reads the rows of one worksheet of an Excel workbook, as used
// for data-dictionary spreadsheets.
package xlsx

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/xuri/excelize/v2"
)

// ErrSheetNotFound is returned when the requested sheet does not exist.
var ErrSheetNotFound = errors.New("xlsx: sheet not found")

// Sheet is the content of one worksheet.
type Sheet struct {
	Name string
	// Sheets lists every worksheet of the workbook in order.
	Sheets []string
	// Rows in sheet order. Cell values are raw, ignoring number formats, so
	// a size typed as 1000 reads "1000" whatever its display. Trailing empty
	// cells are omitted, so rows may differ in length. Empty
	// rows inside the used range are kept as empty slices, so Rows[i] is
	// spreadsheet row i+1.
	Rows [][]string
}

// Read opens a workbook from r and returns the rows of the named sheet, or of
// the active sheet when name is empty.
func Read(r io.Reader, name string) (Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Sheet{}, fmt.Errorf("xlsx: open workbook: %w", err)
	}
	defer f.Close()

	sheet, err := resolveSheet(f, name)
	if err != nil {
		return Sheet{}, err
	}

	rows, err := f.Rows(sheet)
	if err != nil {
		return Sheet{}, fmt.Errorf("xlsx: rows of sheet %q: %w", sheet, err)
	}
	defer rows.Close()

	out := Sheet{Name: sheet, Sheets: f.GetSheetList()}
	for rows.Next() {
		cols, err := rows.Columns(excelize.Options{RawCellValue: true})
		if err != nil {
			return Sheet{}, fmt.Errorf("xlsx: read row %d of sheet %q: %w", len(out.Rows)+1, sheet, err)
		}
		out.Rows = append(out.Rows, cols)
	}
	if err := rows.Error(); err != nil {
		return Sheet{}, fmt.Errorf("xlsx: iterate sheet %q: %w", sheet, err)
	}
	return out, nil
}

func resolveSheet(f *excelize.File, name string) (string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", fmt.Errorf("%w: workbook has no sheets", ErrSheetNotFound)
	}
	if name == "" {
		active := f.GetSheetName(f.GetActiveSheetIndex())
		if active == "" {
			return sheets[0], nil
		}
		return active, nil
	}
	if !slices.Contains(sheets, name) {
		return "", fmt.Errorf("%w: %q (available: %v)", ErrSheetNotFound, name, sheets)
	}
	return name, nil
}
