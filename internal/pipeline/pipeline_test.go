// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/linkscout/pkg/types"
)

func writeInput(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "emails.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	return path
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	cfg := types.GenerateConfig{
		InputPath:   writeInput(t, "john.doe@corp.com", "john.doe@corp.com", "bad email@x", "a_b@corp.com"),
		CSVPath:     filepath.Join(dir, "out.csv"),
		OrgKeywords: []string{"sk.kz", "Samruk-Kazyna", "Самрук-Казына"},
	}

	var progress bytes.Buffer
	summary, err := Run(context.Background(), cfg, &progress)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Accepted)
	assert.Equal(t, cfg.CSVPath, summary.CSVPath)
	assert.Empty(t, summary.XLSXPath)
	assert.Empty(t, progress.String())

	records := readCSV(t, cfg.CSVPath)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"email", "surname_hint", "Google", "Bing", "Yandex"}, records[0])

	assert.Equal(t, "john.doe@corp.com", records[1][0])
	assert.Equal(t, "doe", records[1][1])
	assert.Equal(t, "a_b@corp.com", records[2][0])
	assert.Equal(t, "b", records[2][1])

	assert.True(t, strings.HasPrefix(records[1][2], "https://www.google.com/search?q="))
	assert.True(t, strings.HasPrefix(records[1][3], "https://www.bing.com/search?q="))
	assert.True(t, strings.HasPrefix(records[1][4], "https://yandex.com/search/?text="))
	assert.Contains(t, records[1][2], "doe")
}

func TestRunEmptyInputWritesHeaderOnly(t *testing.T) {
	dir := t.TempDir()
	cfg := types.GenerateConfig{
		InputPath:   writeInput(t, "", "not an email", "also bad"),
		CSVPath:     filepath.Join(dir, "out.csv"),
		OrgKeywords: []string{"sk.kz"},
	}

	summary, err := Run(context.Background(), cfg, os.Stderr)
	require.NoError(t, err)
	assert.Zero(t, summary.Accepted)

	records := readCSV(t, cfg.CSVPath)
	require.Len(t, records, 1, "empty input still produces the header")
}

func TestRunMissingInputIsFatal(t *testing.T) {
	cfg := types.GenerateConfig{
		InputPath:   filepath.Join(t.TempDir(), "absent.txt"),
		CSVPath:     filepath.Join(t.TempDir(), "out.csv"),
		OrgKeywords: []string{"sk.kz"},
	}
	_, err := Run(context.Background(), cfg, os.Stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening input")
}

func TestRunWritesXLSX(t *testing.T) {
	dir := t.TempDir()
	cfg := types.GenerateConfig{
		InputPath:   writeInput(t, "ivan.petrov@corp.kz"),
		CSVPath:     filepath.Join(dir, "out.csv"),
		XLSXPath:    filepath.Join(dir, "out.xlsx"),
		OrgKeywords: []string{"sk.kz"},
	}

	summary, err := Run(context.Background(), cfg, os.Stderr)
	require.NoError(t, err)
	assert.Equal(t, cfg.XLSXPath, summary.XLSXPath)

	zr, err := zip.OpenReader(cfg.XLSXPath)
	require.NoError(t, err, "XLSX output must be a readable workbook")
	zr.Close()
}

func TestRunXLSXFailureIsAdvisory(t *testing.T) {
	dir := t.TempDir()
	cfg := types.GenerateConfig{
		InputPath:   writeInput(t, "ivan.petrov@corp.kz"),
		CSVPath:     filepath.Join(dir, "out.csv"),
		XLSXPath:    filepath.Join(dir, "no-such-dir", "out.xlsx"),
		OrgKeywords: []string{"sk.kz"},
	}

	var progress bytes.Buffer
	summary, err := Run(context.Background(), cfg, &progress)
	require.NoError(t, err, "a failed spreadsheet must not abort the run")
	assert.Equal(t, 1, summary.Accepted)
	assert.Empty(t, summary.XLSXPath)
	assert.Contains(t, progress.String(), "warning")

	records := readCSV(t, cfg.CSVPath)
	assert.Len(t, records, 2, "CSV remains the authoritative output")
}

func TestRunHistorySkipKnown(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, "john.doe@corp.com", "a_b@corp.com")
	cfg := types.GenerateConfig{
		InputPath:   input,
		CSVPath:     filepath.Join(dir, "first.csv"),
		OrgKeywords: []string{"sk.kz"},
		HistoryDB:   filepath.Join(dir, "history.db"),
		SkipKnown:   true,
	}

	summary, err := Run(context.Background(), cfg, os.Stderr)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Accepted)
	assert.Zero(t, summary.SkippedKnown)

	// Second run over the same input: everything is already recorded.
	cfg.CSVPath = filepath.Join(dir, "second.csv")
	summary, err = Run(context.Background(), cfg, os.Stderr)
	require.NoError(t, err)
	assert.Zero(t, summary.Accepted)
	assert.Equal(t, 2, summary.SkippedKnown)

	records := readCSV(t, cfg.CSVPath)
	assert.Len(t, records, 1, "all-known input produces a header-only CSV")
}
