// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package output serializes result rows to CSV and, when the capability is
// present, to an XLSX spreadsheet.
package output

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/pdiddy/linkscout/pkg/types"
)

// WriteCSV writes rows to path with the fixed header
// email,surname_hint,Google,Bing,Yandex. An empty row slice still produces
// the header line, so downstream consumers always see the schema.
func WriteCSV(rows []types.Row, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(types.Columns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row.Values()); err != nil {
			return fmt.Errorf("writing CSV row for %s: %w", row.Email, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return nil
}
