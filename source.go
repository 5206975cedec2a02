// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package gridtable

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
)

type sourceKind uint8

const (
	sourceUnknown sourceKind = iota
	sourceDocument
	sourceSheet
	sourceRows
)

// Source is the grid a table is read from: a document, a sheet or
// an explicit sequence of rows. The zero Source is invalid.
type Source struct {
	doc      Document
	sheet    SheetReader
	rows     [][]any
	index    int
	hasIndex bool
	kind     sourceKind
}

// FromDocument reads the active sheet of doc.
func FromDocument(doc Document) Source { return Source{kind: sourceDocument, doc: doc} }

// FromDocumentIndex reads the sheet at position index of doc.SheetList().
func FromDocumentIndex(doc Document, index int) Source {
	return Source{kind: sourceDocument, doc: doc, index: index, hasIndex: true}
}

// FromSheet reads the sheet, which may be a read-only or streaming one.
func FromSheet(sheet SheetReader) Source { return Source{kind: sourceSheet, sheet: sheet} }

// FromRows reads the rows as they are, the first row being the first grid row.
func FromRows(rows [][]any) Source { return Source{kind: sourceRows, rows: rows} }

// NoHeader means the table gets no header row.
const NoHeader = -1

// grid returns the cell values of the source.
func (src Source) grid() ([][]any, error) {
	switch src.kind {
	case sourceDocument:
		if src.doc == nil {
			return nil, &AddressError{Kind: KindNoDocument, Err: ErrUnknownSource}
		}
		name := src.doc.ActiveSheet()
		if src.hasIndex {
			names := src.doc.SheetList()
			if src.index < 0 || src.index >= len(names) {
				return nil, &AddressError{Kind: KindSheetIndex, Sheet: strconv.Itoa(src.index),
					Err: fmt.Errorf("%w: %d sheets", ErrSheetNotExist, len(names))}
			}
			name = names[src.index]
		}
		sheet, err := src.doc.Sheet(name)
		if err != nil {
			return nil, &AddressError{Kind: KindSheetName, Sheet: name, Err: err}
		}
		return sheet.Rows()
	case sourceSheet:
		if src.sheet == nil {
			return nil, &AddressError{Kind: KindNoSheet, Err: ErrUnknownSource}
		}
		return src.sheet.Rows()
	case sourceRows:
		return src.rows, nil
	}
	return nil, ErrUnknownSource
}

// ToTable reads the grid of src into a table.
//
// With header == NoHeader the raw table is returned.
// With header == 0 the first grid row becomes the column labels and is dropped.
// With header > 0 the labels come from grid row header+1 (0-based) and
// the rows above header are dropped; the label row itself stays in the body.
// In both latter cases the rows are renumbered from 0.
func ToTable(src Source, header int) (*Table, error) {
	if header < NoHeader {
		return nil, fmt.Errorf("%w: %d", ErrHeaderRow, header)
	}
	rows, err := src.grid()
	if err != nil {
		return nil, err
	}
	t := NewTable(rows)
	slog.Debug("ToTable", "rows", t.NumRows(), "cols", t.NumCols(), "header", header)
	if header == NoHeader {
		return t, nil
	}

	labelRow, drop := 0, 1
	if header > 0 {
		labelRow, drop = header+1, header
	}
	if labelRow >= t.NumRows() {
		return nil, fmt.Errorf("%w: label row %d of %d rows", ErrHeaderRow, labelRow, t.NumRows())
	}
	title := t.Data[labelRow]
	t.DropRows(0, drop)
	if err := t.SetColumns(title); err != nil {
		return nil, errors.Join(ErrHeaderRow, err)
	}
	t.ResetIndex()
	return t, nil
}
