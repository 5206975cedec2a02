// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/UNO-SOFT/gridtable"
	"github.com/UNO-SOFT/gridtable/xls"
	"github.com/UNO-SOFT/gridtable/xlsx"
)

// sourceFlags selects the grid to read from a spreadsheet.
type sourceFlags struct {
	charset    string
	sheet      string
	cellRange  string
	sheetIndex int
	header     int
	stream     bool
}

// openDocument opens an xls or xlsx file; charset decodes the strings of an xls file.
func openDocument(fn, charset string) (gridtable.Document, io.Closer, error) {
	if strings.EqualFold(filepath.Ext(fn), ".xls") {
		wb, err := xls.Open(fn, charset)
		if err != nil {
			return nil, nil, err
		}
		return wb, wb, nil
	}
	wb, err := xlsx.Open(fn)
	if err != nil {
		return nil, nil, err
	}
	return wb, wb, nil
}

// readTable reads the table from a CSV, xls or xlsx file.
func readTable(fn string, src sourceFlags) (*gridtable.Table, error) {
	if strings.EqualFold(filepath.Ext(fn), ".csv") || fn == "" || fn == "-" {
		return gridtable.ReadCsv(fn, src.charset, src.header)
	}
	doc, closer, err := openDocument(fn, src.charset)
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	var source gridtable.Source
	switch {
	case src.sheet != "" || src.cellRange != "":
		name := src.sheet
		if name == "" {
			name = doc.ActiveSheet()
		}
		var sheet gridtable.SheetReader
		if wb, ok := doc.(*xlsx.Workbook); ok && src.stream {
			sheet, err = wb.Stream(name)
		} else {
			sheet, err = doc.Sheet(name)
		}
		if err != nil {
			return nil, err
		}
		if src.cellRange == "" {
			source = gridtable.FromSheet(sheet)
			break
		}
		rows, err := xlsx.Range(sheet, src.cellRange)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", src.cellRange, err)
		}
		source = gridtable.FromRows(rows)
	case src.sheetIndex >= 0:
		source = gridtable.FromDocumentIndex(doc, src.sheetIndex)
	default:
		source = gridtable.FromDocument(doc)
	}
	return gridtable.ToTable(source, src.header)
}

// writeCsv writes the table (with its header unless header is NoHeader) as CSV.
func writeCsv(w io.Writer, t *gridtable.Table, header int, charset string) (err error) {
	enc, err := gridtable.GetEncoding(charset)
	if err != nil {
		return err
	}
	if enc != nil {
		w = enc.NewEncoder().Writer(w)
		if c, ok := w.(io.Closer); ok {
			defer func() { err = errors.Join(err, c.Close()) }()
		}
	}
	cw := csv.NewWriter(w)
	rec := make([]string, t.NumCols())
	if header != gridtable.NoHeader {
		for i, c := range t.Columns {
			rec[i] = cellText(c)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	for _, row := range t.Data {
		for i, v := range row {
			rec[i] = cellText(v)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func cellText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case time.Time:
		if x.Hour() == 0 && x.Minute() == 0 && x.Second() == 0 {
			return x.Format("2006-01-02")
		}
		return x.Format(time.RFC3339)
	}
	return fmt.Sprint(v)
}

func create(fn string) (*os.File, error) {
	if fn == "" || fn == "-" {
		return os.Stdout, nil
	}
	return os.Create(fn)
}
