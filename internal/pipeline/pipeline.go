// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline drives one generation run: read emails, build per-email
// search rows, write outputs, optionally record history.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pdiddy/linkscout/internal/emails"
	"github.com/pdiddy/linkscout/internal/history"
	"github.com/pdiddy/linkscout/internal/output"
	"github.com/pdiddy/linkscout/internal/query"
	"github.com/pdiddy/linkscout/pkg/types"
)

// Summary holds the outcome of a generation run.
type Summary struct {
	// Accepted is the number of rows written to the CSV.
	Accepted int

	// SkippedKnown counts emails dropped because the history database
	// already had them.
	SkippedKnown int

	// CSVPath is the primary output file that was written.
	CSVPath string

	// XLSXPath is the spreadsheet that was written; empty when the
	// spreadsheet was not requested or could not be produced.
	XLSXPath string
}

// Run executes the pipeline once. Progress and advisories go to w. The CSV
// is the authoritative artifact: it is written before the spreadsheet is
// attempted, and spreadsheet failures degrade to an advisory instead of an
// error. A missing input file or an unwritable CSV path is fatal.
func Run(ctx context.Context, cfg types.GenerateConfig, w io.Writer) (Summary, error) {
	f, err := os.Open(cfg.InputPath)
	if err != nil {
		return Summary{}, fmt.Errorf("opening input %s: %w", cfg.InputPath, err)
	}
	accepted, err := emails.Filter(f)
	f.Close()
	if err != nil {
		return Summary{}, fmt.Errorf("reading input %s: %w", cfg.InputPath, err)
	}

	var store *history.Store
	if cfg.HistoryDB != "" {
		store, err = history.Open(types.HistoryConfig{DBPath: cfg.HistoryDB})
		if err != nil {
			return Summary{}, err
		}
		defer store.Close()
	}

	summary := Summary{CSVPath: cfg.CSVPath}

	if store != nil && cfg.SkipKnown {
		known, err := store.Known(ctx)
		if err != nil {
			return Summary{}, err
		}
		kept := accepted[:0]
		for _, email := range accepted {
			if _, ok := known[email]; ok {
				summary.SkippedKnown++
				continue
			}
			kept = append(kept, email)
		}
		accepted = kept
	}

	rows := make([]types.Row, 0, len(accepted))
	for _, email := range accepted {
		hint := emails.SurnameHint(emails.LocalPart(email))
		q := query.Build(hint, cfg.OrgKeywords)
		row := types.Row{Email: email, SurnameHint: hint, Query: q}

		// Walk the engine table so a new or renamed engine cannot leave a
		// column silently blank.
		for _, l := range query.Links(q) {
			switch l.Engine.Name {
			case "Google":
				row.Google = l.URL
			case "Bing":
				row.Bing = l.URL
			case "Yandex":
				row.Yandex = l.URL
			default:
				return Summary{}, fmt.Errorf("engine %s has no output column", l.Engine.Name)
			}
		}
		rows = append(rows, row)
	}
	summary.Accepted = len(rows)

	if err := output.WriteCSV(rows, cfg.CSVPath); err != nil {
		return Summary{}, err
	}

	if cfg.XLSXPath != "" {
		sw, ok := output.Spreadsheet()
		if !ok {
			fmt.Fprintf(w, "warning: spreadsheet output unavailable in this build, skipping %s\n", cfg.XLSXPath)
		} else if err := sw.Write(rows, cfg.XLSXPath); err != nil {
			fmt.Fprintf(w, "warning: could not write %s: %v\n", cfg.XLSXPath, err)
		} else {
			summary.XLSXPath = cfg.XLSXPath
		}
	}

	if store != nil {
		meta := history.RunMeta{
			InputPath: cfg.InputPath,
			Org:       strings.Join(cfg.OrgKeywords, ";"),
		}
		if err := store.RecordRun(ctx, meta, rows); err != nil {
			return Summary{}, err
		}
	}

	return summary, nil
}
