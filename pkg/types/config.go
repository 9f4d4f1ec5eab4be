package types

// GenerateConfig holds settings for one pipeline run.
type GenerateConfig struct {
	// InputPath is the text file with one candidate email per line.
	InputPath string `json:"input" yaml:"input"`

	// CSVPath is the primary output file. Always written.
	CSVPath string `json:"output" yaml:"output"`

	// XLSXPath is the optional spreadsheet output. Empty disables it.
	XLSXPath string `json:"xlsx,omitempty" yaml:"xlsx,omitempty"`

	// OrgKeywords is the keyword list joined into every query's OR block.
	// Must be non-empty; the caller substitutes defaults before running.
	OrgKeywords []string `json:"org_keywords" yaml:"org_keywords"`

	// HistoryDB is the optional SQLite history database path. Empty
	// disables history recording.
	HistoryDB string `json:"history_db,omitempty" yaml:"history_db,omitempty"`

	// SkipKnown skips emails already recorded in the history database.
	// Ignored when HistoryDB is empty.
	SkipKnown bool `json:"skip_known" yaml:"skip_known"`
}

// HistoryConfig holds settings for the history store.
type HistoryConfig struct {
	// DBPath is the SQLite database file.
	DBPath string `json:"db_path" yaml:"db_path"`

	// MaxResults is the default maximum number of list results (default 50).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
