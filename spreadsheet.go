// Copyright 2020, 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package gridtable converts between spreadsheet cell grids and labeled tables.
//
// A grid is the 1-indexed (row, column) cell collection of a worksheet;
// a table is a 0-indexed body with column labels (header) and row labels (index).
// The concrete spreadsheet models live in the xlsx, xls and ods subpackages.
package gridtable

import (
	"errors"
	"io"
)

// Writer writes the spreadsheet consisting of the sheets created
// with NewSheet. The write finishes when Close is called.
//
// The writer SHOULD allow writing to separate sheets concurrently,
// and document if it does not provide this functionality.
type Writer interface {
	io.Closer
	NewSheet(name string, cols []Column) (Sheet, error)
}

// Sheet should be Closed when finished.
type Sheet interface {
	io.Closer
	AppendRow(values ...any) error
}

// SheetReader is a readable sheet.
//
// Rows returns the used range of the sheet as row-major values,
// row 0 being the first grid row. Empty cells are nil.
type SheetReader interface {
	Name() string
	Rows() ([][]any, error)
}

// Worksheet is a sheet that can be modified in place.
// All coordinates are 1-based.
type Worksheet interface {
	SheetReader
	SetCellValue(row, col int, value any) error
	SetCellStyle(row, col int, style Style) error
	// ResetBorder removes every border of the cell, keeping other formatting.
	ResetBorder(row, col int) error
	// SetFontFamily replaces the cell's font with a plain one of the given family.
	SetFontFamily(row, col int, family string) error
	// UsedRange returns the extent of rows and columns that
	// contain or have contained data.
	UsedRange() (rows, cols int, err error)
}

// Document is a workbook of named sheets.
//
// Sheet returns a Worksheet when the sheet is writable.
type Document interface {
	SheetList() []string
	ActiveSheet() string
	Sheet(name string) (SheetReader, error)
}

// Style is a style for a column/row/cell.
type Style struct {
	// Format is the number format
	Format string
	// FontFamily is the name of the typeface, empty for the default
	FontFamily string
	// FontBold is true if the font is bold
	FontBold bool
	// Border draws a thin border around the cell
	Border bool
	// Center aligns the content horizontally
	Center bool
}

// IsZero reports whether the style carries no formatting.
func (s Style) IsZero() bool { return s == Style{} }

// DefaultHeaderStyle is applied to header cells written by ToGrid.
var DefaultHeaderStyle = Style{FontBold: true, Border: true, Center: true}

// Column contains the Name of the column and header's style and column's style.
type Column struct {
	Name           string
	Header, Column Style
}

var (
	ErrTooManyRows   = errors.New("too many rows")
	ErrUnknownSource = errors.New("unknown source")
	ErrHeaderRow     = errors.New("invalid header row")
	ErrReadOnly      = errors.New("sheet is read-only")
	ErrSheetNotExist = errors.New("sheet does not exist")
	ErrNilTable      = errors.New("nil table")
)

// Number is a string that contains a number.
type Number string
