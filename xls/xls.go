// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package xls reads legacy BIFF (.xls) workbooks as read-only gridtable documents.
package xls

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/UNO-SOFT/gridtable"
	"github.com/extrame/xls"
)

var _ = (gridtable.Document)((*Workbook)(nil))

// Workbook is a read-only gridtable.Document. Its active sheet is the first one.
type Workbook struct {
	wb     *xls.WorkBook
	closer io.Closer
	names  []string
}

// Open opens the named .xls file, decoding its strings from charset ("utf-8" if empty).
//
// The file stays open until Close.
func Open(path, charset string) (*Workbook, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	w, err := OpenReader(fh, charset)
	if err != nil {
		fh.Close()
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	w.closer = fh
	return w, nil
}

// OpenReader reads the workbook from r, which must stay readable while the Workbook is used.
func OpenReader(r io.ReadSeeker, charset string) (*Workbook, error) {
	if charset == "" {
		charset = "utf-8"
	}
	wb, err := xls.OpenReader(r, charset)
	if err != nil {
		return nil, err
	}
	if wb == nil {
		return nil, errors.New("no workbook stream")
	}
	return wrap(wb), nil
}

// Close closes the file opened by Open.
func (w *Workbook) Close() error {
	if w == nil || w.closer == nil {
		return nil
	}
	c := w.closer
	w.closer = nil
	return c.Close()
}

func wrap(wb *xls.WorkBook) *Workbook {
	w := &Workbook{wb: wb, names: make([]string, 0, wb.NumSheets())}
	for i := 0; i < wb.NumSheets(); i++ {
		name := strconv.Itoa(i)
		if ws := wb.GetSheet(i); ws != nil {
			name = ws.Name
		}
		w.names = append(w.names, name)
	}
	return w
}

func (w *Workbook) SheetList() []string { return append([]string(nil), w.names...) }

func (w *Workbook) ActiveSheet() string {
	if len(w.names) == 0 {
		return ""
	}
	return w.names[0]
}

func (w *Workbook) Sheet(name string) (gridtable.SheetReader, error) {
	for i, n := range w.names {
		if n == name {
			if ws := w.wb.GetSheet(i); ws != nil {
				return Sheet{ws: ws}, nil
			}
		}
	}
	return nil, fmt.Errorf("%q: %w", name, gridtable.ErrSheetNotExist)
}

// Sheet is a read-only sheet of a Workbook.
type Sheet struct {
	ws *xls.WorkSheet
}

func (s Sheet) Name() string { return s.ws.Name }

// Rows returns the cell texts, numeric ones parsed to int64 or float64.
func (s Sheet) Rows() ([][]any, error) {
	n := int(s.ws.MaxRow) + 1
	rows := make([][]any, 0, n)
	for i := 0; i < n; i++ {
		r := sheetRow(s.ws, i)
		if r == nil {
			rows = append(rows, nil)
			continue
		}
		row := make([]any, max(r.LastCol(), 0)) // LastCol is exclusive
		for j := r.FirstCol(); j < len(row); j++ {
			row[j] = parseValue(r.Col(j))
		}
		for len(row) != 0 && row[len(row)-1] == nil {
			row = row[:len(row)-1]
		}
		rows = append(rows, row)
	}
	for len(rows) != 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}
	return rows, nil
}

// sheetRow returns the i-th row, or nil if the sheet has no record of it.
// WorkSheet.Row panics on such rows.
func sheetRow(ws *xls.WorkSheet, i int) (r *xls.Row) {
	defer func() {
		if recover() != nil {
			r = nil
		}
	}()
	return ws.Row(i)
}

func parseValue(s string) any {
	if s == "" {
		return nil
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
