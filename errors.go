// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package gridtable

import "fmt"

// AddressKind tells which part of a sheet address could not be resolved.
type AddressKind uint8

const (
	KindNoSheet AddressKind = iota + 1
	KindNoDocument
	KindSheetName
	KindSheetIndex
	KindColumnName
	KindReadOnly
)

func (k AddressKind) String() string {
	switch k {
	case KindNoSheet:
		return "no sheet"
	case KindNoDocument:
		return "no document"
	case KindSheetName:
		return "sheet name"
	case KindSheetIndex:
		return "sheet index"
	case KindColumnName:
		return "column name"
	case KindReadOnly:
		return "read-only sheet"
	default:
		return fmt.Sprintf("AddressKind(%d)", uint8(k))
	}
}

// AddressError is returned when the sheet or cell to work on cannot be resolved.
type AddressError struct {
	Kind  AddressKind
	Sheet string
	Err   error
}

func (e *AddressError) Error() string {
	if e.Sheet == "" {
		return fmt.Sprintf("address %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("address %s %q: %v", e.Kind, e.Sheet, e.Err)
}

func (e *AddressError) Unwrap() error { return e.Err }
