// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package gridtable

import "log/slog"

// ResetFontFamily is the typeface Clear sets when not clearing data only.
var ResetFontFamily = "宋体"

// Clear empties every cell in the used range of the target sheet and removes their borders.
//
// Unless dataOnly, the font of each cell is also replaced with a plain ResetFontFamily one.
// The previous size, colour and weight are lost.
func Clear(target Target, dataOnly bool) (Worksheet, error) {
	ws, err := target.resolve()
	if err != nil {
		return nil, err
	}
	rows, cols, err := ws.UsedRange()
	if err != nil {
		return ws, err
	}
	slog.Debug("Clear", "sheet", ws.Name(), "rows", rows, "cols", cols, "dataOnly", dataOnly)
	for r := 1; r <= rows; r++ {
		for c := 1; c <= cols; c++ {
			if err := ws.ResetBorder(r, c); err != nil {
				return ws, cellError(ws.Name(), r, c, err)
			}
			if !dataOnly {
				if err := ws.SetFontFamily(r, c, ResetFontFamily); err != nil {
					return ws, cellError(ws.Name(), r, c, err)
				}
			}
			if err := ws.SetCellValue(r, c, ""); err != nil {
				return ws, cellError(ws.Name(), r, c, err)
			}
		}
	}
	return ws, nil
}
