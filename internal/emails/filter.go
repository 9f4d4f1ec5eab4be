// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package emails validates candidate email lines and derives surname hints
// from their local parts.
package emails

import (
	"bufio"
	"io"
	"regexp"
	"strings"
)

// emailPattern matches the accepted email shape: a local part of letters,
// digits and ._+- followed by a domain whose final label is at least two
// letters. Anything stricter (RFC 5322 quoting, IP literals) is rejected
// on purpose: the input is expected to be plain corporate addresses.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// Valid reports whether line (already trimmed) has the accepted email shape.
func Valid(line string) bool {
	return emailPattern.MatchString(line)
}

// Filter reads candidate lines from r and returns the unique valid emails
// in first-seen order. Lines are trimmed; empty lines, lines containing a
// space and lines without '@' are skipped before the shape check. Dedup is
// case-sensitive: the same address in different casings yields two entries.
//
// Lines of any length are tolerated: an overlong garbage line is just one
// more malformed candidate to skip, never a reason to abort the run.
func Filter(r io.Reader) ([]string, error) {
	seen := make(map[string]struct{})
	var out []string

	br := bufio.NewReader(r)
	for {
		raw, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, readErr
		}

		line := strings.TrimSpace(raw)
		switch {
		case line == "", strings.ContainsRune(line, ' '), !strings.ContainsRune(line, '@'):
		case !Valid(line):
		default:
			if _, dup := seen[line]; !dup {
				seen[line] = struct{}{}
				out = append(out, line)
			}
		}

		if readErr == io.EOF {
			return out, nil
		}
	}
}

// LocalPart returns the part of email before the first '@'. The filter
// guarantees an '@' is present; on a bare string without one the whole
// input is returned.
func LocalPart(email string) string {
	if idx := strings.IndexByte(email, '@'); idx >= 0 {
		return email[:idx]
	}
	return email
}
