// Copyright 2020, 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlsx

import (
	"sync"

	"github.com/UNO-SOFT/gridtable"
	"github.com/xuri/excelize/v2"
)

// styleCache maps styles to excelize style IDs, so each is registered only once.
type styleCache struct {
	xl      *excelize.File
	styles  map[gridtable.Style]int
	derived map[derivedKey]int
	mu      sync.Mutex
}

// derivedKey identifies a style made from the base style ID by an edit.
type derivedKey struct {
	family   string
	base     int
	noBorder bool
}

func newStyleCache(xl *excelize.File) *styleCache { return &styleCache{xl: xl} }

func excelStyle(style gridtable.Style) *excelize.Style {
	var st excelize.Style
	if style.FontBold || style.FontFamily != "" {
		st.Font = &excelize.Font{Bold: style.FontBold, Family: style.FontFamily}
	}
	if style.Format != "" {
		format := style.Format
		st.CustomNumFmt = &format
	}
	if style.Border {
		for _, side := range []string{"left", "top", "right", "bottom"} {
			st.Border = append(st.Border, excelize.Border{Type: side, Color: "000000", Style: 1})
		}
	}
	if style.Center {
		st.Alignment = &excelize.Alignment{Horizontal: "center"}
	}
	return &st
}

// get returns the ID of style, 0 for the zero Style.
func (sc *styleCache) get(style gridtable.Style) (int, error) {
	if style.IsZero() {
		return 0, nil
	}
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if s, ok := sc.styles[style]; ok {
		return s, nil
	}
	s, err := sc.xl.NewStyle(excelStyle(style))
	if err != nil {
		return 0, err
	}
	if sc.styles == nil {
		sc.styles = make(map[gridtable.Style]int)
	}
	sc.styles[style] = s
	return s, nil
}

// derive returns the ID of the base style edited as key says.
func (sc *styleCache) derive(key derivedKey) (int, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if s, ok := sc.derived[key]; ok {
		return s, nil
	}
	st, err := sc.xl.GetStyle(key.base)
	if err != nil {
		return 0, err
	}
	if key.noBorder {
		st.Border = nil
	}
	if key.family != "" {
		st.Font = &excelize.Font{Family: key.family}
	}
	s, err := sc.xl.NewStyle(st)
	if err != nil {
		return 0, err
	}
	if sc.derived == nil {
		sc.derived = make(map[derivedKey]int)
	}
	sc.derived[key] = s
	return s, nil
}
