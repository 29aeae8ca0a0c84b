package excel_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"misportal/internal/domain"
	"misportal/internal/excel"
)

func buildWorkbook(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func TestValidateWorkbookAcceptsHeaderPlusData(t *testing.T) {
	data := buildWorkbook(t, [][]interface{}{
		{"Month", "Revenue", "Expenses"},
		{"January", 1200, 800},
		{"February", 1500, 900},
	})

	summary, err := excel.ValidateWorkbook(data)
	require.NoError(t, err)
	assert.Equal(t, "Sheet1", summary.SheetName)
	assert.Equal(t, 3, summary.Rows)
	assert.Equal(t, 3, summary.Columns)
}

func TestValidateWorkbookRejectsGarbage(t *testing.T) {
	_, err := excel.ValidateWorkbook([]byte("this is not a spreadsheet"))
	assert.ErrorIs(t, err, domain.ErrFileInvalid)
}

func TestValidateWorkbookRejectsHeaderOnly(t *testing.T) {
	data := buildWorkbook(t, [][]interface{}{
		{"Month", "Revenue"},
	})

	_, err := excel.ValidateWorkbook(data)
	assert.ErrorIs(t, err, domain.ErrFileInvalid)
	assert.Contains(t, err.Error(), "data row")
}

func TestValidateWorkbookRejectsEmptySheet(t *testing.T) {
	data := buildWorkbook(t, nil)

	_, err := excel.ValidateWorkbook(data)
	assert.ErrorIs(t, err, domain.ErrFileInvalid)
}
