// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlsx

import (
	"fmt"
	"io"

	"github.com/UNO-SOFT/gridtable"
	"github.com/xuri/excelize/v2"
)

var _ = (gridtable.Document)((*Workbook)(nil))

// Workbook is a gridtable.Document over an excelize file.
//
// Its sheets are writable *Worksheet values.
type Workbook struct {
	xl     *excelize.File
	styles *styleCache
}

// New returns an empty workbook with a single "Sheet1" sheet.
func New() *Workbook { return Wrap(excelize.NewFile()) }

// Wrap returns the workbook of an already opened excelize file.
func Wrap(xl *excelize.File) *Workbook { return &Workbook{xl: xl, styles: newStyleCache(xl)} }

// Open opens the named xlsx file.
func Open(path string, opts ...excelize.Options) (*Workbook, error) {
	xl, err := excelize.OpenFile(path, opts...)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	return Wrap(xl), nil
}

// OpenReader reads the workbook from r.
func OpenReader(r io.Reader, opts ...excelize.Options) (*Workbook, error) {
	xl, err := excelize.OpenReader(r, opts...)
	if err != nil {
		return nil, err
	}
	return Wrap(xl), nil
}

// File returns the underlying excelize file.
func (wb *Workbook) File() *excelize.File { return wb.xl }

func (wb *Workbook) SheetList() []string { return wb.xl.GetSheetList() }

func (wb *Workbook) ActiveSheet() string { return wb.xl.GetSheetName(wb.xl.GetActiveSheetIndex()) }

// SetActiveSheet makes the named sheet the active one.
func (wb *Workbook) SetActiveSheet(name string) error {
	idx, err := wb.sheetIndex(name)
	if err != nil {
		return err
	}
	wb.xl.SetActiveSheet(idx)
	return nil
}

func (wb *Workbook) Sheet(name string) (gridtable.SheetReader, error) { return wb.Worksheet(name) }

// Worksheet returns the named sheet.
func (wb *Workbook) Worksheet(name string) (*Worksheet, error) {
	if _, err := wb.sheetIndex(name); err != nil {
		return nil, err
	}
	return &Worksheet{xl: wb.xl, styles: wb.styles, name: name}, nil
}

// NewSheet returns the named sheet, creating it if it does not exist yet.
func (wb *Workbook) NewSheet(name string) (*Worksheet, error) {
	if idx, err := wb.xl.GetSheetIndex(name); err != nil {
		return nil, err
	} else if idx < 0 {
		if _, err = wb.xl.NewSheet(name); err != nil {
			return nil, fmt.Errorf("new sheet %q: %w", name, err)
		}
	}
	return wb.Worksheet(name)
}

// Stream returns the named sheet for reading it row by row.
func (wb *Workbook) Stream(name string) (*StreamSheet, error) {
	if _, err := wb.sheetIndex(name); err != nil {
		return nil, err
	}
	return &StreamSheet{xl: wb.xl, name: name}, nil
}

func (wb *Workbook) sheetIndex(name string) (int, error) {
	idx, err := wb.xl.GetSheetIndex(name)
	if err != nil {
		return idx, err
	}
	if idx < 0 {
		return idx, fmt.Errorf("%q: %w", name, gridtable.ErrSheetNotExist)
	}
	return idx, nil
}

func (wb *Workbook) Save() error { return wb.xl.Save() }
func (wb *Workbook) SaveAs(path string) error { return wb.xl.SaveAs(path) }
func (wb *Workbook) WriteTo(w io.Writer) (int64, error) { return wb.xl.WriteTo(w) }
func (wb *Workbook) Close() error { return wb.xl.Close() }
