// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package ods

import (
	"time"

	"github.com/valyala/quicktemplate"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

const officeNS = ` xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0"` +
	` xmlns:style="urn:oasis:names:tc:opendocument:xmlns:style:1.0"` +
	` xmlns:text="urn:oasis:names:tc:opendocument:xmlns:text:1.0"` +
	` xmlns:table="urn:oasis:names:tc:opendocument:xmlns:table:1.0"` +
	` xmlns:fo="urn:oasis:names:tc:opendocument:xmlns:xsl-fo-compatible:1.0"` +
	` office:version="1.2"`

func writeManifest(qw *quicktemplate.Writer) {
	qw.N().S(xmlHeader)
	qw.N().S(`<manifest:manifest xmlns:manifest="urn:oasis:names:tc:opendocument:xmlns:manifest:1.0" manifest:version="1.2">`)
	qw.N().S(`<manifest:file-entry manifest:full-path="/" manifest:version="1.2" manifest:media-type="`)
	qw.N().S(mimetype)
	qw.N().S(`"/>`)
	for _, fn := range []string{"content.xml", "styles.xml"} {
		qw.N().S(`<manifest:file-entry manifest:full-path="`)
		qw.N().S(fn)
		qw.N().S(`" manifest:media-type="text/xml"/>`)
	}
	qw.N().S(`</manifest:manifest>`)
}

func writeStyles(qw *quicktemplate.Writer) {
	qw.N().S(xmlHeader)
	qw.N().S(`<office:document-styles` + officeNS + `><office:styles>`)
	qw.N().S(`<style:default-style style:family="table-cell"><style:text-properties style:font-name="Liberation Sans"/></style:default-style>`)
	qw.N().S(`</office:styles></office:document-styles>`)
}

func writeContent(qw *quicktemplate.Writer, sheets []*ODSSheet) {
	qw.N().S(xmlHeader)
	qw.N().S(`<office:document-content` + officeNS + `>`)
	qw.N().S(`<office:automatic-styles>`)
	qw.N().S(`<style:style style:name="hdr" style:family="table-cell"><style:text-properties fo:font-weight="bold"/></style:style>`)
	qw.N().S(`</office:automatic-styles>`)
	qw.N().S(`<office:body><office:spreadsheet>`)
	for _, s := range sheets {
		s.mu.Lock()
		writeSheet(qw, s)
		s.mu.Unlock()
	}
	qw.N().S(`</office:spreadsheet></office:body></office:document-content>`)
}

func writeSheet(qw *quicktemplate.Writer, s *ODSSheet) {
	qw.N().S(`<table:table table:name="`)
	qw.E().S(s.Name)
	qw.N().S(`">`)
	var hasHeader bool
	for _, c := range s.columns {
		if c.Name != "" {
			hasHeader = true
			break
		}
	}
	if hasHeader {
		qw.N().S(`<table:table-row>`)
		for _, c := range s.columns {
			if c.Name == "" {
				qw.N().S(`<table:table-cell/>`)
				continue
			}
			qw.N().S(`<table:table-cell`)
			if c.Header.FontBold {
				qw.N().S(` table:style-name="hdr"`)
			}
			qw.N().S(` office:value-type="string"><text:p>`)
			qw.E().S(c.Name)
			qw.N().S(`</text:p></table:table-cell>`)
		}
		qw.N().S(`</table:table-row>`)
	}
	for _, row := range s.rows {
		qw.N().S(`<table:table-row>`)
		for _, v := range row {
			writeCell(qw, v)
		}
		qw.N().S(`</table:table-row>`)
	}
	qw.N().S(`</table:table>`)
}

func writeCell(qw *quicktemplate.Writer, v any) {
	switch x := v.(type) {
	case nil:
		qw.N().S(`<table:table-cell/>`)
		return
	case float64:
		qw.N().S(`<table:table-cell office:value-type="float" office:value="`)
		qw.N().F(x)
		qw.N().S(`"><text:p>`)
		qw.N().F(x)
	case bool:
		s := "false"
		if x {
			s = "true"
		}
		qw.N().S(`<table:table-cell office:value-type="boolean" office:boolean-value="`)
		qw.N().S(s)
		qw.N().S(`"><text:p>`)
		qw.N().S(s)
	case time.Time:
		qw.N().S(`<table:table-cell office:value-type="date" office:date-value="`)
		qw.N().S(x.Format("2006-01-02T15:04:05"))
		qw.N().S(`"><text:p>`)
		qw.N().S(x.Format("2006-01-02"))
	case string:
		qw.N().S(`<table:table-cell office:value-type="string"><text:p>`)
		qw.E().S(x)
	}
	qw.N().S(`</text:p></table:table-cell>`)
}
