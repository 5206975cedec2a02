// Copyright 2020, 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package ods writes OpenDocument spreadsheets (.ods).
package ods

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"

	"github.com/UNO-SOFT/gridtable"
	"github.com/klauspost/compress/zip"
	"github.com/valyala/quicktemplate"
)

var _ = (gridtable.Writer)((*ODSWriter)(nil))

// MaxRowCount is the number of maximum rows.
const MaxRowCount = 1_048_576

const mimetype = "application/vnd.oasis.opendocument.spreadsheet"

// ODSWriter is a gridtable.Writer producing an .ods file.
//
// This writer allows concurrent writes to separate sheets.
//
// The rows are kept in memory until Close.
type ODSWriter struct {
	w      io.Writer
	sheets []*ODSSheet
	mu     sync.Mutex
}

// ODSSheet is a sheet of an ODSWriter.
type ODSSheet struct {
	Name    string
	columns []gridtable.Column
	rows    [][]any
	mu      sync.Mutex
}

// NewWriter returns a new gridtable.Writer writing to w on Close.
func NewWriter(w io.Writer) (*ODSWriter, error) {
	if w == nil {
		return nil, errors.New("nil writer")
	}
	return &ODSWriter{w: w}, nil
}

func (ow *ODSWriter) NewSheet(name string, cols []gridtable.Column) (gridtable.Sheet, error) {
	ow.mu.Lock()
	defer ow.mu.Unlock()
	if ow.w == nil {
		return nil, errors.New("writer is closed")
	}
	for _, s := range ow.sheets {
		if s.Name == name {
			return nil, fmt.Errorf("%q: sheet already exists", name)
		}
	}
	s := &ODSSheet{Name: name, columns: append([]gridtable.Column(nil), cols...)}
	ow.sheets = append(ow.sheets, s)
	return s, nil
}

func (s *ODSSheet) Close() error { return nil }

func (s *ODSSheet) AppendRow(values ...any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.rows) >= MaxRowCount {
		return gridtable.ErrTooManyRows
	}
	row := make([]any, len(values))
	for i, v := range values {
		row[i] = normalize(v)
	}
	s.rows = append(s.rows, row)
	return nil
}

// normalize turns v into nil, string, float64, bool or time.Time.
func normalize(v any) any {
	if vr, ok := v.(driver.Valuer); ok {
		if vv, err := vr.Value(); err == nil {
			v = vv
		}
	}
	switch x := v.(type) {
	case nil:
		return nil
	case string:
		return x
	case gridtable.Number:
		if f, err := strconv.ParseFloat(string(x), 64); err == nil {
			return f
		}
		return string(x)
	case bool:
		return x
	case time.Time:
		if x.IsZero() {
			return nil
		}
		return x
	case int:
		return float64(x)
	case int8:
		return float64(x)
	case int16:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case uint:
		return float64(x)
	case uint8:
		return float64(x)
	case uint16:
		return float64(x)
	case uint32:
		return float64(x)
	case uint64:
		return float64(x)
	case float32:
		return float64(x)
	case float64:
		return x
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}

// Close writes the document. The writer cannot be used afterwards.
func (ow *ODSWriter) Close() error {
	if ow == nil {
		return nil
	}
	ow.mu.Lock()
	defer ow.mu.Unlock()
	w, sheets := ow.w, ow.sheets
	ow.w, ow.sheets = nil, nil
	if w == nil {
		return nil
	}
	zw := zip.NewWriter(w)
	// The mimetype must be the first, uncompressed entry.
	fw, err := zw.CreateHeader(&zip.FileHeader{Name: "mimetype", Method: zip.Store})
	if err != nil {
		return err
	}
	if _, err = io.WriteString(fw, mimetype); err != nil {
		return err
	}
	for _, part := range []struct {
		write func(*quicktemplate.Writer)
		name  string
	}{
		{name: "META-INF/manifest.xml", write: writeManifest},
		{name: "styles.xml", write: writeStyles},
		{name: "content.xml", write: func(qw *quicktemplate.Writer) { writeContent(qw, sheets) }},
	} {
		fw, err := zw.Create(part.name)
		if err != nil {
			return fmt.Errorf("%s: %w", part.name, err)
		}
		qw := quicktemplate.AcquireWriter(fw)
		part.write(qw)
		quicktemplate.ReleaseWriter(qw)
	}
	return zw.Close()
}
