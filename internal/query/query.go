// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package query builds search-engine queries and renders them into
// per-engine search URLs.
package query

import "strings"

// profileSite restricts results to public profile pages.
const profileSite = "site:linkedin.com/in"

// Build constructs the engine query for one surname hint:
//
//	site:linkedin.com/in "<surname>" (<kw1> OR <kw2> OR ... OR <kwN>)
//
// The surname is always quoted. Keywords are quoted only when they contain
// a space. Double quotes embedded in the surname or a keyword pass through
// unescaped; engines tolerate them and the input is not worth sanitizing.
func Build(surname string, orgKeywords []string) string {
	var b strings.Builder
	b.WriteString(profileSite)
	b.WriteString(` "`)
	b.WriteString(surname)
	b.WriteString(`" (`)
	for i, kw := range orgKeywords {
		if i > 0 {
			b.WriteString(" OR ")
		}
		if strings.ContainsRune(kw, ' ') {
			b.WriteString(`"` + kw + `"`)
		} else {
			b.WriteString(kw)
		}
	}
	b.WriteString(")")
	return b.String()
}
