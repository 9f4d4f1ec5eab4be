// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Row holds the output record produced for one accepted email: the heuristic
// surname hint and one search URL per engine. Rows are built once by the
// pipeline and never mutated afterwards.
type Row struct {
	// Email is the validated address exactly as it appeared in the input.
	Email string `json:"email" yaml:"email"`

	// SurnameHint is the fragment of the local part most likely to be a
	// surname. Best effort only; never validated against real names.
	SurnameHint string `json:"surname_hint" yaml:"surname_hint"`

	// Query is the full search-engine query the links encode.
	Query string `json:"query" yaml:"query"`

	// Google, Bing and Yandex are the rendered search URLs.
	Google string `json:"google" yaml:"google"`
	Bing   string `json:"bing" yaml:"bing"`
	Yandex string `json:"yandex" yaml:"yandex"`
}

// Columns is the fixed output column order shared by the CSV and
// spreadsheet writers.
var Columns = []string{"email", "surname_hint", "Google", "Bing", "Yandex"}

// Values returns the row's cells in Columns order.
func (r Row) Values() []string {
	return []string{r.Email, r.SurnameHint, r.Google, r.Bing, r.Yandex}
}
