// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/UNO-SOFT/gridtable"
	"github.com/UNO-SOFT/gridtable/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertRoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.csv")
	require.NoError(t, os.WriteFile(in, []byte("name,qty\napple,3\npear,5\n"), 0o644))

	src := sourceFlags{charset: "utf-8", sheetIndex: -1}
	tbl, err := readTable(in, src)
	require.NoError(t, err)

	out := filepath.Join(dir, "out.xlsx")
	require.NoError(t, convert(tbl, out, "fruit", false, 0, "utf-8", pdf.DefaultOptions()))

	back, err := readTable(out, src)
	require.NoError(t, err)
	assert.Equal(t, []any{"name", "qty"}, back.Columns)
	assert.Equal(t, [][]any{{"apple", "3"}, {"pear", "5"}}, back.Data)

	src.sheet, src.cellRange = "fruit", "A2:B3"
	back, err = readTable(out, src)
	require.NoError(t, err)
	assert.Equal(t, []any{"apple", "3"}, back.Columns)

	src = sourceFlags{sheet: "fruit", stream: true, header: gridtable.NoHeader}
	back, err = readTable(out, src)
	require.NoError(t, err)
	assert.Equal(t, 3, back.NumRows())

	for _, ext := range []string{".ods", ".pdf", ".csv"} {
		fn := filepath.Join(dir, "out"+ext)
		require.NoError(t, convert(tbl, fn, "fruit", true, 0, "utf-8", pdf.DefaultOptions()), ext)
		fi, err := os.Stat(fn)
		require.NoError(t, err)
		assert.NotZero(t, fi.Size(), ext)
	}
	assert.Error(t, convert(tbl, filepath.Join(dir, "out.doc"), "x", false, 0, "", pdf.DefaultOptions()))
}

func TestReadXls(t *testing.T) {
	tbl, err := readTable(filepath.Join("..", "xls", "testdata", "ragged.xls"),
		sourceFlags{charset: "iso-8859-1", sheetIndex: 0})
	require.NoError(t, err)
	assert.Equal(t, []any{"name", "qty", "note"}, tbl.Columns)
	assert.Equal(t, 3, tbl.NumRows())

	var buf bytes.Buffer
	require.NoError(t, writeCsv(&buf, tbl, 0, "utf-8"))
	assert.Equal(t, "name,qty,note\napple,3,\n,,\npear,1.5,ripe\n", buf.String())
}

func TestWriteCsv(t *testing.T) {
	tbl, err := gridtable.ToTable(gridtable.FromRows([][]any{
		{"a", "b"}, {int64(1), nil}, {2.5, true},
	}), 0)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeCsv(&buf, tbl, 0, "utf-8"))
	assert.Equal(t, "a,b\n1,\n2.5,true\n", buf.String())

	buf.Reset()
	require.NoError(t, writeCsv(&buf, tbl, gridtable.NoHeader, "iso-8859-2"))
	assert.Equal(t, "1,\n2.5,true\n", buf.String())
}
