// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package gridtable

import (
	"fmt"
	"slices"
)

// Table is a labeled, 0-indexed table.
//
// Index holds one label per row of Data, Columns one label per value of each row.
// Column labels need not be unique; label lookups return the first match.
type Table struct {
	Columns []any
	Index   []any
	Data    [][]any
}

// NewTable returns the raw table of the given rows, without transformation.
//
// Short rows are padded with nil to the width of the widest row.
// Both the column and the row labels are the positions 0, 1, ...
func NewTable(rows [][]any) *Table {
	var width int
	for _, row := range rows {
		width = max(width, len(row))
	}
	t := &Table{
		Columns: rangeLabels(width),
		Index:   rangeLabels(len(rows)),
		Data:    make([][]any, len(rows)),
	}
	for i, row := range rows {
		r := make([]any, width)
		copy(r, row)
		t.Data[i] = r
	}
	return t
}

func rangeLabels(n int) []any {
	labels := make([]any, n)
	for i := range labels {
		labels[i] = i
	}
	return labels
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int { return len(t.Data) }

// NumCols returns the number of columns.
func (t *Table) NumCols() int { return len(t.Columns) }

// Clone returns a copy of t that shares nothing with it.
func (t *Table) Clone() *Table {
	if t == nil {
		return nil
	}
	c := &Table{
		Columns: slices.Clone(t.Columns),
		Index:   slices.Clone(t.Index),
		Data:    make([][]any, len(t.Data)),
	}
	for i, row := range t.Data {
		c.Data[i] = slices.Clone(row)
	}
	return c
}

// SetColumns replaces the column labels.
func (t *Table) SetColumns(labels []any) error {
	if len(labels) != t.NumCols() {
		return fmt.Errorf("length mismatch: %d labels for %d columns", len(labels), t.NumCols())
	}
	t.Columns = slices.Clone(labels)
	return nil
}

// DropRows removes the rows [from, to) together with their labels.
func (t *Table) DropRows(from, to int) {
	from, to = max(from, 0), min(to, len(t.Data))
	if from >= to {
		return
	}
	t.Data = slices.Delete(t.Data, from, to)
	t.Index = slices.Delete(t.Index, from, to)
}

// ResetIndex renumbers the rows contiguously from 0.
func (t *Table) ResetIndex() { t.Index = rangeLabels(len(t.Data)) }

// ColumnIndex returns the position of the first column labeled label.
func (t *Table) ColumnIndex(label any) (int, bool) {
	for i, c := range t.Columns {
		if c == label {
			return i, true
		}
	}
	return -1, false
}

// At returns the value at the given row and column position.
func (t *Table) At(row, col int) any { return t.Data[row][col] }

// Cell returns the value of the row at position row in the column labeled label.
func (t *Table) Cell(row int, label any) (any, error) {
	if row < 0 || row >= len(t.Data) {
		return nil, fmt.Errorf("row %d: out of range [0,%d)", row, len(t.Data))
	}
	i, ok := t.ColumnIndex(label)
	if !ok {
		return nil, fmt.Errorf("column %v: not found", label)
	}
	return t.Data[row][i], nil
}
