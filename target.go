// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package gridtable

// Target is the worksheet a table is written to or that is cleared:
// either a sheet given directly, or a sheet named within a document.
type Target struct {
	doc   Document
	sheet Worksheet
	name  string
	inDoc bool
}

// OnSheet targets the sheet itself.
func OnSheet(sheet Worksheet) Target { return Target{sheet: sheet} }

// InDocument targets the sheet called name in doc.
func InDocument(doc Document, name string) Target { return Target{doc: doc, name: name, inDoc: true} }

func (tgt Target) resolve() (Worksheet, error) {
	if !tgt.inDoc {
		if tgt.sheet == nil {
			return nil, &AddressError{Kind: KindNoSheet, Err: ErrSheetNotExist}
		}
		return tgt.sheet, nil
	}
	if tgt.doc == nil {
		return nil, &AddressError{Kind: KindNoDocument, Sheet: tgt.name, Err: ErrSheetNotExist}
	}
	sheet, err := tgt.doc.Sheet(tgt.name)
	if err != nil {
		return nil, &AddressError{Kind: KindSheetName, Sheet: tgt.name, Err: err}
	}
	ws, ok := sheet.(Worksheet)
	if !ok {
		return nil, &AddressError{Kind: KindReadOnly, Sheet: tgt.name, Err: ErrReadOnly}
	}
	return ws, nil
}
