// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlsx

import (
	"fmt"
	"strings"

	"github.com/UNO-SOFT/gridtable"
	"github.com/xuri/excelize/v2"
)

var _ = (gridtable.Worksheet)((*Worksheet)(nil))

// Worksheet is a writable sheet of a Workbook.
type Worksheet struct {
	xl     *excelize.File
	styles *styleCache
	name   string
}

func (ws *Worksheet) Name() string { return ws.name }

// Rows returns the typed values of the used range.
//
// Numbers are int64 or float64 (time.Time with a date format),
// booleans are bool, everything else is string. Empty cells are nil.
func (ws *Worksheet) Rows() ([][]any, error) {
	raw, err := ws.xl.GetRows(ws.name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ws.name, err)
	}
	rows := make([][]any, len(raw))
	for i, r := range raw {
		row := make([]any, len(r))
		for j, s := range r {
			if row[j], err = ws.value(i+1, j+1, s); err != nil {
				return rows, err
			}
		}
		rows[i] = row
	}
	return rows, nil
}

// Value returns the typed value of the cell.
func (ws *Worksheet) Value(row, col int) (any, error) {
	axis, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return nil, err
	}
	s, err := ws.xl.GetCellValue(ws.name, axis, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%s[%s]: %w", ws.name, axis, err)
	}
	return ws.value(row, col, s)
}

func (ws *Worksheet) value(row, col int, raw string) (any, error) {
	if raw == "" {
		return nil, nil
	}
	axis, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return nil, err
	}
	typ, err := ws.xl.GetCellType(ws.name, axis)
	if err != nil {
		return nil, fmt.Errorf("%s[%s]: %w", ws.name, axis, err)
	}
	switch typ {
	case excelize.CellTypeBool:
		return raw == "1" || strings.EqualFold(raw, "TRUE"), nil
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeError, excelize.CellTypeDate:
		return raw, nil
	}
	v := parseValue(raw)
	var f float64
	switch x := v.(type) {
	case int64:
		f = float64(x)
	case float64:
		f = x
	default:
		return v, nil
	}
	styleID, err := ws.xl.GetCellStyle(ws.name, axis)
	if err != nil || styleID == 0 {
		return v, nil
	}
	if st, err := ws.xl.GetStyle(styleID); err == nil && isDateFormat(st) {
		if t, err := excelize.ExcelDateToTime(f, false); err == nil {
			return t, nil
		}
	}
	return v, nil
}

func (ws *Worksheet) SetCellValue(row, col int, value any) error {
	axis, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return setValue(ws.xl, ws.name, axis, value)
}

func (ws *Worksheet) SetCellStyle(row, col int, style gridtable.Style) error {
	s, err := ws.styles.get(style)
	if err != nil {
		return err
	}
	return ws.setStyleID(row, col, s)
}

func (ws *Worksheet) ResetBorder(row, col int) error {
	return ws.derive(row, col, derivedKey{noBorder: true})
}

func (ws *Worksheet) SetFontFamily(row, col int, family string) error {
	return ws.derive(row, col, derivedKey{family: family})
}

func (ws *Worksheet) derive(row, col int, key derivedKey) error {
	axis, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if key.base, err = ws.xl.GetCellStyle(ws.name, axis); err != nil {
		return err
	}
	if key.noBorder && key.base == 0 {
		return nil
	}
	s, err := ws.styles.derive(key)
	if err != nil {
		return err
	}
	return ws.xl.SetCellStyle(ws.name, axis, axis, s)
}

func (ws *Worksheet) setStyleID(row, col, s int) error {
	axis, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return ws.xl.SetCellStyle(ws.name, axis, axis, s)
}

// UsedRange returns the larger of the recorded sheet dimension
// and the extent of the non-empty cells.
func (ws *Worksheet) UsedRange() (rows, cols int, err error) {
	raw, err := ws.xl.GetRows(ws.name, excelize.Options{RawCellValue: true})
	if err != nil {
		return 0, 0, err
	}
	rows = len(raw)
	for _, r := range raw {
		cols = max(cols, len(r))
	}
	dim, err := ws.xl.GetSheetDimension(ws.name)
	if err != nil || dim == "" {
		return rows, cols, nil
	}
	_, last, _ := strings.Cut(dim, ":")
	if last == "" {
		last = dim
	}
	if c, r, err := excelize.CellNameToCoordinates(last); err == nil {
		rows, cols = max(rows, r), max(cols, c)
	}
	return rows, cols, nil
}

// Range returns the values of the rectangular block ref (like "B2:D5") of the sheet,
// suitable for gridtable.FromRows.
func Range(sheet gridtable.SheetReader, ref string) ([][]any, error) {
	first, last, ok := strings.Cut(ref, ":")
	if !ok {
		last = first
	}
	c1, r1, err := excelize.CellNameToCoordinates(first)
	if err != nil {
		return nil, err
	}
	c2, r2, err := excelize.CellNameToCoordinates(last)
	if err != nil {
		return nil, err
	}
	if c2 < c1 {
		c1, c2 = c2, c1
	}
	if r2 < r1 {
		r1, r2 = r2, r1
	}
	all, err := sheet.Rows()
	if err != nil {
		return nil, err
	}
	block := make([][]any, 0, r2-r1+1)
	for r := r1; r <= r2; r++ {
		row := make([]any, c2-c1+1)
		if r-1 < len(all) {
			src := all[r-1]
			for c := c1; c <= c2 && c-1 < len(src); c++ {
				row[c-c1] = src[c-1]
			}
		}
		block = append(block, row)
	}
	return block, nil
}
