// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package gridtable

import (
	"errors"
	"fmt"
)

// WriteTable writes t as a new sheet called name into w.
//
// The column labels become the (bold) header; with index, the row labels
// are written as an unnamed first column.
func WriteTable(w Writer, name string, t *Table, index bool) (err error) {
	if t == nil {
		return ErrNilTable
	}
	cols := make([]Column, 0, t.NumCols()+1)
	if index {
		cols = append(cols, Column{})
	}
	for _, c := range t.Columns {
		cols = append(cols, Column{Name: fmt.Sprint(c), Header: Style{FontBold: true}})
	}
	sheet, err := w.NewSheet(name, cols)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, sheet.Close()) }()

	values := make([]any, 0, len(cols))
	for i, row := range t.Data {
		values = values[:0]
		if index {
			values = append(values, t.Index[i])
		}
		values = append(values, row...)
		if err := sheet.AppendRow(values...); err != nil {
			return fmt.Errorf("%s: row %d: %w", name, i, err)
		}
	}
	return nil
}
