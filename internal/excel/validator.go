// Package excel performs structural validation of uploaded workbooks
// before they are accepted into storage.
package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"misportal/internal/domain"
)

// WorkbookSummary describes the first sheet of an accepted workbook.
type WorkbookSummary struct {
	SheetName string
	Rows      int
	Columns   int
}

// ValidateWorkbook parses the spreadsheet bytes and checks that the
// workbook has at least one sheet whose first sheet carries a header row
// plus at least one data row with at least one column. Returns
// domain.ErrFileInvalid (wrapped with detail) on any structural problem.
func ValidateWorkbook(data []byte) (*WorkbookSummary, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: unable to parse workbook: %v", domain.ErrFileInvalid, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", domain.ErrFileInvalid)
	}

	sheet := sheets[0]
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to read sheet %q: %v", domain.ErrFileInvalid, sheet, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: sheet %q needs a header row and at least one data row", domain.ErrFileInvalid, sheet)
	}

	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	if cols == 0 {
		return nil, fmt.Errorf("%w: sheet %q has no columns", domain.ErrFileInvalid, sheet)
	}

	return &WorkbookSummary{SheetName: sheet, Rows: len(rows), Columns: cols}, nil
}
