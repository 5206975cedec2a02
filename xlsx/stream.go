// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlsx

import (
	"errors"
	"fmt"

	"github.com/UNO-SOFT/gridtable"
	"github.com/xuri/excelize/v2"
)

var _ = (gridtable.SheetReader)((*StreamSheet)(nil))

// StreamSheet is a read-only sheet read row by row, without looking at cell types or styles.
//
// Numeric looking values are int64 or float64, the rest are strings.
type StreamSheet struct {
	xl   *excelize.File
	name string
}

func (ss *StreamSheet) Name() string { return ss.name }

func (ss *StreamSheet) Rows() (rows [][]any, err error) {
	it, err := ss.xl.Rows(ss.name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ss.name, err)
	}
	defer func() { err = errors.Join(err, it.Close()) }()
	for it.Next() {
		cols, err := it.Columns(excelize.Options{RawCellValue: true})
		if err != nil {
			return rows, fmt.Errorf("%s: row %d: %w", ss.name, len(rows)+1, err)
		}
		row := make([]any, len(cols))
		for i, s := range cols {
			row[i] = parseValue(s)
		}
		rows = append(rows, row)
	}
	return rows, it.Error()
}
