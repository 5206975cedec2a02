// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package gridtable

import (
	"fmt"
	"slices"
)

type cellKey struct{ row, col int }

type memCell struct {
	value  any
	font   string
	style  Style
	border bool
}

// memSheet is an in-memory Worksheet.
type memSheet struct {
	cells      map[cellKey]*memCell
	name       string
	rows, cols int
	failAt     cellKey
}

func newMemSheet(name string, rows [][]any) *memSheet {
	ms := &memSheet{name: name, cells: make(map[cellKey]*memCell)}
	for i, row := range rows {
		for j, v := range row {
			ms.cell(i+1, j+1).value = v
		}
	}
	return ms
}

func (ms *memSheet) cell(row, col int) *memCell {
	k := cellKey{row, col}
	c := ms.cells[k]
	if c == nil {
		c = &memCell{}
		ms.cells[k] = c
		ms.rows, ms.cols = max(ms.rows, row), max(ms.cols, col)
	}
	return c
}

func (ms *memSheet) get(row, col int) any {
	if c := ms.cells[cellKey{row, col}]; c != nil {
		return c.value
	}
	return nil
}

func (ms *memSheet) Name() string { return ms.name }
func (ms *memSheet) Rows() ([][]any, error) {
	rows := make([][]any, ms.rows)
	for i := range rows {
		rows[i] = make([]any, ms.cols)
		for j := range rows[i] {
			rows[i][j] = ms.get(i+1, j+1)
		}
	}
	return rows, nil
}
func (ms *memSheet) SetCellValue(row, col int, value any) error {
	if ms.failAt == (cellKey{row, col}) {
		return fmt.Errorf("boom")
	}
	ms.cell(row, col).value = value
	return nil
}
func (ms *memSheet) SetCellStyle(row, col int, style Style) error {
	c := ms.cell(row, col)
	c.style, c.border = style, style.Border
	return nil
}
func (ms *memSheet) ResetBorder(row, col int) error {
	ms.cell(row, col).border = false
	return nil
}
func (ms *memSheet) SetFontFamily(row, col int, family string) error {
	ms.cell(row, col).font = family
	return nil
}
func (ms *memSheet) UsedRange() (int, int, error) { return ms.rows, ms.cols, nil }

// roSheet is a read-only sheet.
type roSheet struct {
	name string
	rows [][]any
}

func (rs roSheet) Name() string           { return rs.name }
func (rs roSheet) Rows() ([][]any, error) { return rs.rows, nil }

// memDoc is an in-memory Document.
type memDoc struct {
	sheets map[string]SheetReader
	names  []string
	active string
}

func newMemDoc(sheets ...SheetReader) *memDoc {
	d := &memDoc{sheets: make(map[string]SheetReader, len(sheets))}
	for _, s := range sheets {
		d.names = append(d.names, s.Name())
		d.sheets[s.Name()] = s
	}
	if len(d.names) != 0 {
		d.active = d.names[0]
	}
	return d
}

func (d *memDoc) SheetList() []string { return slices.Clone(d.names) }
func (d *memDoc) ActiveSheet() string { return d.active }
func (d *memDoc) Sheet(name string) (SheetReader, error) {
	if s, ok := d.sheets[name]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("%q: %w", name, ErrSheetNotExist)
}
