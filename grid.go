// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package gridtable

import (
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"
)

// WriteOptions controls where and what ToGrid writes.
type WriteOptions struct {
	// HeaderStyle is applied to the header cells, nil means no styling.
	HeaderStyle *Style
	// StartColName is the column letter ("A", "AB") of the first column,
	// overriding StartCol when not empty.
	StartColName string
	// StartRow is the 1-based first row, 0 means 1.
	StartRow int
	// StartCol is the 1-based first column, 0 means 1.
	StartCol int
	// Index writes the row labels into the first column.
	Index bool
	// Header writes the column labels into the first row.
	Header bool
}

// DefaultWriteOptions writes the header, but not the index, from A1.
func DefaultWriteOptions() WriteOptions {
	hs := DefaultHeaderStyle
	return WriteOptions{StartRow: 1, StartCol: 1, Header: true, HeaderStyle: &hs}
}

func (opts WriteOptions) start() (row, col int, err error) {
	row, col = max(opts.StartRow, 1), max(opts.StartCol, 1)
	if opts.StartColName != "" {
		if col, err = excelize.ColumnNameToNumber(opts.StartColName); err != nil {
			return 0, 0, &AddressError{Kind: KindColumnName, Err: err}
		}
	}
	return row, col, nil
}

// ToGrid writes t into the target sheet.
//
// With both Index and Header the top-left corner cell stays blank,
// the labels go right of it and below it, and the body starts diagonally below.
// With only one of them the body is shifted by one row (Header) or column (Index).
//
// t is not modified. A failing cell write aborts,
// leaving the already written cells in place.
func ToGrid(t *Table, target Target, opts WriteOptions) error {
	if t == nil {
		return ErrNilTable
	}
	ws, err := target.resolve()
	if err != nil {
		return err
	}
	srow, scol, err := opts.start()
	if err != nil {
		return err
	}
	data := t.Clone()
	slog.Debug("ToGrid", "sheet", ws.Name(), "row", srow, "col", scol,
		"index", opts.Index, "header", opts.Header, "rows", data.NumRows())

	set := func(row, col int, v any) error {
		if err := ws.SetCellValue(row, col, v); err != nil {
			return cellError(ws.Name(), row, col, err)
		}
		return nil
	}
	setHeader := func(row, col int, v any) error {
		if err := set(row, col, v); err != nil {
			return err
		}
		if opts.HeaderStyle == nil {
			return nil
		}
		if err := ws.SetCellStyle(row, col, *opts.HeaderStyle); err != nil {
			return cellError(ws.Name(), row, col, err)
		}
		return nil
	}

	switch {
	case opts.Index && opts.Header:
		for i, v := range data.Index {
			if err := set(srow+1+i, scol, v); err != nil {
				return err
			}
		}
		for j, v := range data.Columns {
			if err := setHeader(srow, scol+1+j, v); err != nil {
				return err
			}
		}
		srow++
		scol++
	case opts.Index:
		for i, v := range data.Index {
			if err := set(srow+i, scol, v); err != nil {
				return err
			}
		}
		scol++
	case opts.Header:
		for j, v := range data.Columns {
			if err := setHeader(srow, scol+j, v); err != nil {
				return err
			}
		}
		srow++
	}

	for i, row := range data.Data {
		for j, v := range row {
			if err := set(srow+i, scol+j, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func cellError(sheet string, row, col int, err error) error {
	axis, aErr := excelize.CoordinatesToCellName(col, row)
	if aErr != nil {
		axis = fmt.Sprintf("R%dC%d", row, col)
	}
	return fmt.Errorf("%s[%s]: %w", sheet, axis, err)
}
