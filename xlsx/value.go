// Copyright 2020, 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlsx

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/UNO-SOFT/gridtable"
	"github.com/xuri/excelize/v2"
)

// setValue writes v into the cell, skipping nil and invalid sql.Null* values.
func setValue(xl *excelize.File, sheet, axis string, v any) error {
	var err error
	switch x := v.(type) {
	case nil:
		return xl.SetCellValue(sheet, axis, nil)
	case sql.NullTime:
		if !x.Valid || x.Time.IsZero() {
			return nil
		}
		err = xl.SetCellValue(sheet, axis, x.Time)
	case sql.NullFloat64:
		if !x.Valid {
			return nil
		}
		err = xl.SetCellFloat(sheet, axis, x.Float64, -1, 64)
	case sql.NullInt64:
		if !x.Valid {
			return nil
		}
		err = xl.SetCellInt(sheet, axis, x.Int64)
	case sql.NullString:
		if !x.Valid {
			return nil
		}
		err = xl.SetCellStr(sheet, axis, x.String)
	default:
		if vr, ok := v.(driver.Valuer); ok {
			if vv, vErr := vr.Value(); vErr == nil {
				v = vv
			}
		}
		return setPlainValue(xl, sheet, axis, v)
	}
	if err != nil {
		return fmt.Errorf("%s[%s]: %w", sheet, axis, err)
	}
	return nil
}

func setPlainValue(xl *excelize.File, sheet, axis string, v any) error {
	var err error
	switch x := v.(type) {
	case nil:
		return xl.SetCellValue(sheet, axis, nil)
	case time.Time:
		if x.IsZero() {
			return nil
		}
		err = xl.SetCellValue(sheet, axis, x)
	case gridtable.Number:
		if f, pErr := strconv.ParseFloat(string(x), 64); pErr == nil {
			err = xl.SetCellFloat(sheet, axis, f, -1, 64)
		} else {
			err = xl.SetCellStr(sheet, axis, string(x))
		}
	case string:
		err = xl.SetCellStr(sheet, axis, x)
	case fmt.Stringer:
		err = xl.SetCellStr(sheet, axis, x.String())
	default:
		err = xl.SetCellValue(sheet, axis, v)
	}
	if err != nil {
		return fmt.Errorf("%s[%s]: %w", sheet, axis, err)
	}
	return nil
}

// parseValue returns int64 for integers, float64 for decimals, or the original string.
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

// isDateFormat reports whether the number format shows a date or time.
func isDateFormat(st *excelize.Style) bool {
	if st == nil {
		return false
	}
	switch st.NumFmt {
	case 14, 15, 16, 17, 18, 19, 20, 21, 22, 45, 46, 47:
		return true
	}
	if st.CustomNumFmt == nil {
		return false
	}
	fmtStr := strings.ToLower(*st.CustomNumFmt)
	return strings.Contains(fmtStr, "yy") || strings.Contains(fmtStr, "dd") ||
		strings.Contains(fmtStr, "hh")
}
