// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlsx

import (
	"bytes"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/UNO-SOFT/gridtable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func fixture(t *testing.T) *Workbook {
	t.Helper()
	f := excelize.NewFile()
	t.Cleanup(func() { f.Close() })
	for axis, v := range map[string]any{
		"A1": "Header1", "B1": "Header2",
		"A2": 100, "B2": 200.5,
		"A3": "Text", "B3": true,
	} {
		require.NoError(t, f.SetCellValue("Sheet1", axis, v))
	}
	return Wrap(f)
}

func TestWorksheetRows(t *testing.T) {
	wb := fixture(t)
	ws, err := wb.Worksheet("Sheet1")
	require.NoError(t, err)
	rows, err := ws.Rows()
	require.NoError(t, err)
	assert.Equal(t, [][]any{
		{"Header1", "Header2"},
		{int64(100), 200.5},
		{"Text", true},
	}, rows)

	_, err = wb.Worksheet("nope")
	assert.ErrorIs(t, err, gridtable.ErrSheetNotExist)
}

func TestSetNullValues(t *testing.T) {
	wb := fixture(t)
	ws, err := wb.Worksheet("Sheet1")
	require.NoError(t, err)

	for _, tt := range []struct {
		value    any
		expected any
		row, col int
	}{
		{row: 2, col: 1, value: sql.NullInt64{}, expected: int64(100)},
		{row: 3, col: 1, value: sql.NullString{}, expected: "Text"},
		{row: 1, col: 3, value: sql.NullInt64{Int64: 7, Valid: true}, expected: int64(7)},
		{row: 2, col: 3, value: sql.NullFloat64{Float64: 2.5, Valid: true}, expected: 2.5},
		{row: 3, col: 3, value: sql.NullString{String: "x", Valid: true}, expected: "x"},
		{row: 4, col: 3, value: sql.NullBool{Bool: true, Valid: true}, expected: true},
		{row: 5, col: 3, value: sql.NullBool{}, expected: nil},
	} {
		require.NoError(t, ws.SetCellValue(tt.row, tt.col, tt.value))
		got, err := ws.Value(tt.row, tt.col)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, got, "%d/%d %#v", tt.row, tt.col, tt.value)
	}
}

func TestWorksheetDate(t *testing.T) {
	wb := New()
	defer wb.Close()
	ws, err := wb.Worksheet("Sheet1")
	require.NoError(t, err)
	day := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
	require.NoError(t, ws.SetCellValue(1, 1, day))
	v, err := ws.Value(1, 1)
	require.NoError(t, err)
	require.IsType(t, time.Time{}, v)
	assert.True(t, day.Equal(v.(time.Time)), "got %v", v)
}

func TestToTableFromWorkbook(t *testing.T) {
	wb := fixture(t)
	tbl, err := gridtable.ToTable(gridtable.FromDocument(wb), 0)
	require.NoError(t, err)
	assert.Equal(t, []any{"Header1", "Header2"}, tbl.Columns)
	assert.Equal(t, 2, tbl.NumRows())

	ss, err := wb.Stream("Sheet1")
	require.NoError(t, err)
	tbl, err = gridtable.ToTable(gridtable.FromSheet(ss), 0)
	require.NoError(t, err)
	assert.Equal(t, []any{int64(100), 200.5}, tbl.Data[0])
}

func TestRange(t *testing.T) {
	wb := fixture(t)
	ws, err := wb.Worksheet("Sheet1")
	require.NoError(t, err)
	block, err := Range(ws, "B2:C4")
	require.NoError(t, err)
	assert.Equal(t, [][]any{{200.5, nil}, {true, nil}, {nil, nil}}, block)

	tbl, err := gridtable.ToTable(gridtable.FromRows(block), 0)
	require.NoError(t, err)
	assert.Equal(t, []any{200.5, nil}, tbl.Columns)
}

func TestToGridOffset(t *testing.T) {
	wb := New()
	defer wb.Close()
	tbl := &gridtable.Table{
		Columns: []any{"a", "b"},
		Index:   []any{int64(10), int64(11)},
		Data:    [][]any{{"x", int64(1)}, {"y", int64(2)}},
	}
	opts := gridtable.DefaultWriteOptions()
	opts.Index, opts.StartRow, opts.StartColName = true, 2, "C"
	require.NoError(t, gridtable.ToGrid(tbl, gridtable.InDocument(wb, "Sheet1"), opts))

	f := wb.File()
	for axis, want := range map[string]string{
		"C2": "", "D2": "a", "E2": "b",
		"C3": "10", "D3": "x", "E3": "1",
		"C4": "11", "D4": "y", "E4": "2",
	} {
		got, err := f.GetCellValue("Sheet1", axis)
		require.NoError(t, err)
		assert.Equal(t, want, got, axis)
	}
	s, err := f.GetCellStyle("Sheet1", "D2")
	require.NoError(t, err)
	st, err := f.GetStyle(s)
	require.NoError(t, err)
	require.NotNil(t, st.Font)
	assert.True(t, st.Font.Bold)
	assert.NotEmpty(t, st.Border)

	ws, err := wb.Worksheet("Sheet1")
	require.NoError(t, err)
	back, err := gridtable.ToTable(gridtable.FromRows(mustRange(t, ws, "D2:E4")), 0)
	require.NoError(t, err)
	assert.Equal(t, tbl.Columns, back.Columns)
	assert.Equal(t, tbl.Data, back.Data)
}

func mustRange(t *testing.T, ws *Worksheet, ref string) [][]any {
	t.Helper()
	block, err := Range(ws, ref)
	require.NoError(t, err)
	return block
}

func TestClear(t *testing.T) {
	for _, dataOnly := range []bool{true, false} {
		wb := fixture(t)
		f := wb.File()
		border, err := f.NewStyle(&excelize.Style{
			Font:   &excelize.Font{Bold: true, Size: 14, Family: "Arial"},
			Border: []excelize.Border{{Type: "left", Color: "000000", Style: 1}},
		})
		require.NoError(t, err)
		require.NoError(t, f.SetCellStyle("Sheet1", "A1", "B3", border))

		ws, err := gridtable.Clear(gridtable.InDocument(wb, "Sheet1"), dataOnly)
		require.NoError(t, err)
		assert.Equal(t, "Sheet1", ws.Name())

		for _, axis := range []string{"A1", "B1", "A2", "B2", "A3", "B3"} {
			v, err := f.GetCellValue("Sheet1", axis)
			require.NoError(t, err)
			assert.Equal(t, "", v, axis)
			s, err := f.GetCellStyle("Sheet1", axis)
			require.NoError(t, err)
			st, err := f.GetStyle(s)
			require.NoError(t, err)
			assert.Empty(t, st.Border, axis)
			require.NotNil(t, st.Font, axis)
			if dataOnly {
				assert.Equal(t, "Arial", st.Font.Family, axis)
				assert.True(t, st.Font.Bold, axis)
			} else {
				assert.Equal(t, gridtable.ResetFontFamily, st.Font.Family, axis)
				assert.False(t, st.Font.Bold, axis)
			}
		}
	}
}

func TestWriterRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	tbl := &gridtable.Table{
		Columns: []any{"name", "qty"},
		Index:   []any{0, 1},
		Data:    [][]any{{"apple", int64(3)}, {"pear", gridtable.Number("5.5")}},
	}
	require.NoError(t, gridtable.WriteTable(w, "fruit", tbl, false))
	require.NoError(t, w.Close())

	wb, err := OpenReader(&buf)
	require.NoError(t, err)
	defer wb.Close()
	assert.Equal(t, []string{"fruit"}, wb.SheetList())
	back, err := gridtable.ToTable(gridtable.FromDocumentIndex(wb, 0), 0)
	require.NoError(t, err)
	assert.Equal(t, []any{"name", "qty"}, back.Columns)
	assert.Equal(t, [][]any{{"apple", int64(3)}, {"pear", 5.5}}, back.Data)
}

func TestSaveAndOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "a.xlsx")
	wb := fixture(t)
	ws, err := wb.NewSheet("second")
	require.NoError(t, err)
	require.NoError(t, ws.SetCellValue(1, 1, "here"))
	require.NoError(t, wb.SetActiveSheet("second"))
	require.NoError(t, wb.SaveAs(fn))

	wb2, err := Open(fn)
	require.NoError(t, err)
	defer wb2.Close()
	assert.Equal(t, "second", wb2.ActiveSheet())
	tbl, err := gridtable.ToTable(gridtable.FromDocument(wb2), gridtable.NoHeader)
	require.NoError(t, err)
	assert.Equal(t, [][]any{{"here"}}, tbl.Data)
}
