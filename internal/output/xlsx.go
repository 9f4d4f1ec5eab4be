// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"archive/zip"
	"fmt"
	"os"
	"strings"

	"github.com/pdiddy/linkscout/pkg/types"
)

// SpreadsheetWriter is the optional spreadsheet capability. Callers probe
// once with Spreadsheet() and branch on availability; a missing capability
// must never abort the CSV path.
type SpreadsheetWriter interface {
	// Name identifies the spreadsheet format (e.g. "xlsx").
	Name() string

	// Write serializes rows to path with the same columns as the CSV.
	Write(rows []types.Row, path string) error
}

// Spreadsheet returns the spreadsheet writer and whether one is available
// in this build. The XLSX writer is self-contained, so availability is
// unconditional today; the probe stays so the orchestrator's advisory path
// is exercised rather than dead.
func Spreadsheet() (SpreadsheetWriter, bool) {
	return xlsxWriter{}, true
}

// xlsxWriter emits a minimal OOXML workbook: one sheet, inline strings,
// no styling. Enough for spreadsheet apps to open the file; formatting is
// out of scope.
type xlsxWriter struct{}

func (xlsxWriter) Name() string { return "xlsx" }

func (xlsxWriter) Write(rows []types.Row, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", xlsxContentTypes},
		{"_rels/.rels", xlsxRels},
		{"xl/workbook.xml", xlsxWorkbook},
		{"xl/_rels/workbook.xml.rels", xlsxWorkbookRels},
		{"xl/worksheets/sheet1.xml", buildSheet(rows)},
	}
	for _, p := range parts {
		w, err := zw.Create(p.name)
		if err != nil {
			return fmt.Errorf("adding %s: %w", p.name, err)
		}
		if _, err := w.Write([]byte(p.content)); err != nil {
			return fmt.Errorf("writing %s: %w", p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalizing %s: %w", path, err)
	}
	return nil
}

const xlsxContentTypes = `<?xml version="1.0" encoding="UTF-8"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/xl/workbook.xml" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.sheet.main+xml"/>
  <Override PartName="/xl/worksheets/sheet1.xml" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.worksheet+xml"/>
</Types>`

const xlsxRels = `<?xml version="1.0" encoding="UTF-8"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="xl/workbook.xml"/>
</Relationships>`

const xlsxWorkbook = `<?xml version="1.0" encoding="UTF-8"?>
<workbook xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
  <sheets>
    <sheet name="Searches" sheetId="1" r:id="rId1"/>
  </sheets>
</workbook>`

const xlsxWorkbookRels = `<?xml version="1.0" encoding="UTF-8"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet" Target="worksheets/sheet1.xml"/>
</Relationships>`

func buildSheet(rows []types.Row) string {
	var data strings.Builder
	data.WriteString("<sheetData>")
	writeSheetRow(&data, 1, types.Columns)
	for i, row := range rows {
		writeSheetRow(&data, i+2, row.Values())
	}
	data.WriteString("</sheetData>")

	return `<?xml version="1.0" encoding="UTF-8"?>
<worksheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main">
  ` + data.String() + `
</worksheet>`
}

func writeSheetRow(b *strings.Builder, num int, values []string) {
	fmt.Fprintf(b, `<row r="%d">`, num)
	for i, val := range values {
		fmt.Fprintf(b, `<c r="%s%d" t="inlineStr"><is><t>%s</t></is></c>`,
			columnName(i+1), num, escapeXML(val))
	}
	b.WriteString("</row>")
}

// columnName converts a 1-based column index to its letter form
// (1 → "A", 27 → "AA").
func columnName(index int) string {
	name := ""
	for index > 0 {
		index--
		name = string(rune('A'+index%26)) + name
		index /= 26
	}
	return name
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}
