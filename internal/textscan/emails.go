// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textscan finds structured tokens in free text.
package textscan

import (
	"regexp"
	"strings"
)

// emailPattern is deliberately permissive: author contact lines in
// papers rarely follow RFC 5322 to the letter.
var emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

// FindEmails returns email-like tokens from text, deduplicated
// case-insensitively. The first occurrence keeps its original casing
// and first-seen order is preserved.
func FindEmails(text string) []string {
	if text == "" {
		return nil
	}

	seen := make(map[string]bool)
	var out []string
	for _, email := range emailPattern.FindAllString(text, -1) {
		key := strings.ToLower(email)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, email)
	}
	return out
}
