// Copyright 2021, 2026 Tamas Gulacsi. All rights reserved.

// Package pdf renders tables as PDF table lists.
package pdf

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/UNO-SOFT/gridtable"
	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
)

// Options of Render.
type Options struct {
	// AlternateColor is the background of every second row.
	AlternateColor Color
	// FontSize of the content; the header is 1.375 times bigger.
	FontSize float64
	// Landscape orientation instead of portrait.
	Landscape bool
	// PageNumbers prints the page number in the footer.
	PageNumbers bool
	// Index prints the row labels as the first column.
	Index bool
}

// DefaultOptions returns portrait, 8pt, light gray alternating rows.
func DefaultOptions() Options {
	return Options{
		FontSize:       8,
		AlternateColor: Color{Color: color.Color{Red: 230, Green: 230, Blue: 230}},
	}
}

// Render renders t as a table list.
func Render(t *gridtable.Table, opts Options) (bytes.Buffer, error) {
	m := build(t, opts)
	return m.Output()
}

// WriteFile renders t into the named file.
func WriteFile(path string, t *gridtable.Table, opts Options) error {
	return build(t, opts).OutputFileAndClose(path)
}

func build(t *gridtable.Table, opts Options) pdf.Maroto {
	if opts.FontSize <= 0 {
		opts.FontSize = 8
	}
	headers, contents := Strings(t, opts.Index)
	gridSize := GridSizes(headers, contents)
	slog.Debug("pdf", "headers", headers, "gridSize", gridSize)

	orientation := consts.Portrait
	if opts.Landscape {
		orientation = consts.Landscape
	}
	m := pdf.NewMaroto(orientation, consts.A4)
	if opts.PageNumbers {
		m.RegisterFooter(func() {
			m.Row(4, func() {
				m.Col(12, func() {
					m.Text(fmt.Sprintf("%d", m.GetCurrentPage()+1), props.Text{
						Align: consts.Right,
						Size:  opts.FontSize,
					})
				})
			})
		})
	}
	alternate := opts.AlternateColor.Color
	m.TableList(headers, contents, props.TableList{
		HeaderProp: props.TableListContent{
			Family:    consts.Arial,
			Style:     consts.Bold,
			Size:      opts.FontSize * 1.375,
			GridSizes: gridSize,
		},
		ContentProp: props.TableListContent{
			Family:    consts.Courier,
			Style:     consts.Normal,
			Size:      opts.FontSize,
			GridSizes: gridSize,
		},
		Align:                consts.Center,
		AlternatedBackground: &alternate,
		HeaderContentSpace:   opts.FontSize * 1.2,
		Line:                 false,
	})
	return m
}

// Strings returns the header and the body of t as text.
func Strings(t *gridtable.Table, index bool) (headers []string, contents [][]string) {
	if index {
		headers = append(headers, "")
	}
	for _, c := range t.Columns {
		headers = append(headers, text(c))
	}
	contents = make([][]string, len(t.Data))
	for i, row := range t.Data {
		r := make([]string, 0, len(headers))
		if index {
			r = append(r, text(t.Index[i]))
		}
		for _, v := range row {
			r = append(r, text(v))
		}
		contents[i] = r
	}
	return headers, contents
}

func text(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case time.Time:
		return x.Format("2006-01-02")
	}
	return fmt.Sprint(v)
}

// GridSizes returns the width of each column on maroto's 12 unit grid,
// proportional to the average text width, at least 1.
func GridSizes(headers []string, contents [][]string) []uint {
	widths := make([]float64, len(headers))
	var avg float64
	for i, s := range headers {
		widths[i] = float64(len(s))
		avg += widths[i]
	}
	for _, row := range contents {
		for i, s := range row {
			if i < len(widths) {
				widths[i] += float64(len(s))
				avg += widths[i]
			}
		}
	}
	gridSize := make([]uint, len(headers))
	if len(widths) == 0 {
		return gridSize
	}
	avg /= float64(len(widths))
	avg /= float64(len(contents) + 1)
	for i, w := range widths {
		if avg > 0 {
			gridSize[i] = uint(math.Round(w / avg / 4))
		}
		if gridSize[i] == 0 {
			gridSize[i] = 1
		}
	}
	return gridSize
}

// Color is a flag.Value for an RGB colour as hex digits.
type Color struct {
	color.Color
}

func (c *Color) String() string {
	return fmt.Sprintf("%02x%02x%02x", c.Red, c.Green, c.Blue)
}

func (c *Color) Set(s string) error { return c.Parse(s) }

func (c *Color) Parse(s string) error {
	b, err := hex.DecodeString(s)
	if err != nil {
		return err
	}
	if len(b) != 3 {
		return fmt.Errorf("%q: need 3 bytes, got %d", s, len(b))
	}
	c.Red, c.Green, c.Blue = int(b[0]), int(b[1]), int(b[2])
	return nil
}
