// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/UNO-SOFT/gridtable"
	"github.com/UNO-SOFT/gridtable/ods"
	"github.com/UNO-SOFT/gridtable/pdf"
	"github.com/UNO-SOFT/gridtable/xlsx"
	"github.com/peterbourgon/ff/v3/ffcli"
)

func (src *sourceFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&src.charset, "in-charset", gridtable.EncName, "charset of the input CSV or xls file")
	fs.StringVar(&src.sheet, "sheet", "", "sheet name (default: the active sheet)")
	fs.IntVar(&src.sheetIndex, "sheet-index", -1, "sheet position, from 0")
	fs.StringVar(&src.cellRange, "range", "", "read only this block of cells, like B2:D10")
	fs.IntVar(&src.header, "header", 0, "row of the column labels, -1 for none")
	fs.BoolVar(&src.stream, "stream", false, "read the sheet row by row (xlsx only)")
}

func readCmd() *ffcli.Command {
	fs := newFlagSet("read")
	var src sourceFlags
	src.register(fs)
	flagEnc := fs.String("charset", gridtable.EncName, "charset of the printed CSV")
	return &ffcli.Command{Name: "read", FlagSet: fs, Options: ffOptions(),
		ShortUsage: "xlt read [flags] file.xlsx|file.xls",
		ShortHelp:  "print a sheet as CSV",
		Exec: func(ctx context.Context, args []string) error {
			if len(args) != 1 {
				return flag.ErrHelp
			}
			t, err := readTable(args[0], src)
			if err != nil {
				return err
			}
			slog.Debug("read", "file", args[0], "rows", t.NumRows(), "cols", t.NumCols())
			return writeCsv(os.Stdout, t, src.header, *flagEnc)
		},
	}
}

func writeCmd() *ffcli.Command {
	fs := newFlagSet("write")
	flagEnc := fs.String("charset", gridtable.EncName, "charset of the input CSV")
	flagCsvHeader := fs.Int("csv-header", 0, "row of the column labels in the CSV, -1 for none")
	flagSheet := fs.String("sheet", "Sheet1", "target sheet, created when missing")
	flagRow := fs.Int("row", 1, "first row, from 1")
	flagCol := fs.String("col", "A", "first column, as a letter or a number from 1")
	flagIndex := fs.Bool("index", false, "write the row labels")
	flagNoHeader := fs.Bool("no-header", false, "do not write the column labels")
	flagPlain := fs.Bool("plain", false, "do not style the header")
	return &ffcli.Command{Name: "write", FlagSet: fs, Options: ffOptions(),
		ShortUsage: "xlt write [flags] in.csv out.xlsx",
		ShortHelp:  "write a CSV table into a sheet at the given position",
		Exec: func(ctx context.Context, args []string) error {
			if len(args) != 2 {
				return flag.ErrHelp
			}
			t, err := gridtable.ReadCsv(args[0], *flagEnc, *flagCsvHeader)
			if err != nil {
				return err
			}
			wb, err := xlsx.Open(args[1])
			if errors.Is(err, os.ErrNotExist) {
				wb, err = xlsx.New(), nil
			}
			if err != nil {
				return err
			}
			defer wb.Close()
			if _, err = wb.NewSheet(*flagSheet); err != nil {
				return err
			}

			opts := gridtable.DefaultWriteOptions()
			opts.StartRow, opts.Index, opts.Header = *flagRow, *flagIndex, !*flagNoHeader
			if *flagPlain {
				opts.HeaderStyle = nil
			}
			if n, err := strconv.Atoi(*flagCol); err == nil {
				opts.StartCol = n
			} else {
				opts.StartColName = *flagCol
			}
			if err = gridtable.ToGrid(t, gridtable.InDocument(wb, *flagSheet), opts); err != nil {
				return err
			}
			slog.Info("written", "file", args[1], "sheet", *flagSheet, "rows", t.NumRows())
			return wb.SaveAs(args[1])
		},
	}
}

func clearCmd() *ffcli.Command {
	fs := newFlagSet("clear")
	flagSheet := fs.String("sheet", "", "sheet to clear (default: the active sheet)")
	flagFormat := fs.Bool("format", false, "reset the font, too")
	return &ffcli.Command{Name: "clear", FlagSet: fs, Options: ffOptions(),
		ShortUsage: "xlt clear [flags] file.xlsx",
		ShortHelp:  "empty the cells of a sheet and remove their borders",
		Exec: func(ctx context.Context, args []string) error {
			if len(args) != 1 {
				return flag.ErrHelp
			}
			wb, err := xlsx.Open(args[0])
			if err != nil {
				return err
			}
			defer wb.Close()
			name := *flagSheet
			if name == "" {
				name = wb.ActiveSheet()
			}
			ws, err := gridtable.Clear(gridtable.InDocument(wb, name), !*flagFormat)
			if err != nil {
				return err
			}
			slog.Info("cleared", "file", args[0], "sheet", ws.Name())
			return wb.Save()
		},
	}
}

func convertCmd() *ffcli.Command {
	fs := newFlagSet("convert")
	var src sourceFlags
	src.register(fs)
	flagEnc := fs.String("charset", gridtable.EncName, "charset of the CSV output")
	flagOut := fs.String("o", "", "output file (.xlsx, .ods, .pdf or .csv; default: input file + .pdf)")
	flagName := fs.String("name", "", "output sheet name (default: input file name)")
	flagIndex := fs.Bool("index", false, "write the row labels")
	pdfOpts := pdf.DefaultOptions()
	fs.Var(&pdfOpts.AlternateColor, "alternate-color", "alternate color (pdf)")
	fs.BoolVar(&pdfOpts.Landscape, "L", false, "landscape orientation (pdf)")
	fs.Float64Var(&pdfOpts.FontSize, "f", 8, "font size (pdf)")
	fs.BoolVar(&pdfOpts.PageNumbers, "print-pagenum", false, "print page numbers (pdf)")
	return &ffcli.Command{Name: "convert", FlagSet: fs, Options: ffOptions(),
		ShortUsage: "xlt convert [flags] in.{csv,xlsx,xls}",
		ShortHelp:  "convert a table to xlsx, ods, pdf or csv",
		Exec: func(ctx context.Context, args []string) error {
			if len(args) != 1 {
				return flag.ErrHelp
			}
			t, err := readTable(args[0], src)
			if err != nil {
				return err
			}
			out := *flagOut
			if out == "" && args[0] != "" && args[0] != "-" {
				out = args[0] + ".pdf"
			}
			name := *flagName
			if name == "" {
				name = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			}
			return convert(t, out, name, *flagIndex, src.header, *flagEnc, pdfOpts)
		},
	}
}

func convert(t *gridtable.Table, out, name string, index bool, header int, charset string, pdfOpts pdf.Options) error {
	ext := strings.ToLower(filepath.Ext(out))
	if ext == ".pdf" {
		pdfOpts.Index = index
		return pdf.WriteFile(out, t, pdfOpts)
	}

	fh, err := create(out)
	if err != nil {
		return err
	}
	defer fh.Close()
	var w gridtable.Writer
	switch ext {
	case ".xlsx":
		w = xlsx.NewWriter(fh)
	case ".ods":
		if w, err = ods.NewWriter(fh); err != nil {
			return err
		}
	case ".csv", "":
		if err = writeCsv(fh, t, header, charset); err != nil {
			return err
		}
		return fh.Close()
	default:
		return fmt.Errorf("%q: unknown output format", out)
	}
	if err = gridtable.WriteTable(w, name, t, index); err != nil {
		return err
	}
	if err = w.Close(); err != nil {
		return err
	}
	return fh.Close()
}
