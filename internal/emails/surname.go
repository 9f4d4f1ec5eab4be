// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package emails

import "strings"

// separators are the local-part separators tried when extracting a surname
// hint, in priority order. The first separator that splits the local part
// into two or more non-empty fragments wins; later separators are never
// consulted, so "john.doe-extra" yields "doe-extra", not "extra".
var separators = []string{".", "-", "_"}

// SurnameHint returns the fragment of local most likely to be a surname.
// Each separator is tried in order; the last fragment of the first
// successful split is returned. A local part no separator can split comes
// back unchanged. Purely heuristic: "jsmith" stays "jsmith".
func SurnameHint(local string) string {
	for _, sep := range separators {
		parts := splitNonEmpty(local, sep)
		if len(parts) >= 2 {
			return parts[len(parts)-1]
		}
	}
	return local
}

// splitNonEmpty splits s on sep and drops empty fragments, so leading,
// trailing and doubled separators do not produce empty candidates.
func splitNonEmpty(s, sep string) []string {
	var parts []string
	for _, p := range strings.Split(s, sep) {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}
