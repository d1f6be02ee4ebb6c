// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package receipt

import (
	"regexp"
	"strings"
)

// Candidate IDs outside these length bounds are OCR noise or labels.
const (
	minIDLen = 8
	maxIDLen = 50
)

// labelWords flag candidates that are labels rather than values: the
// patterns occasionally latch onto the caption next to the number.
var labelWords = []string{
	"PHONE", "EMAIL", "ADDRESS", "CUSTOMER", "MERCHANT", "BANK",
	"ACCOUNT", "IFSC", "DETAILS", "PAYMENT", "DATE", "TIME",
	"STATUS", "METHOD", "COMPLETED", "SUCCESS", "FAILED",
}

// isFalsePositive reports whether a candidate ID should be suppressed.
// Length bounds, a distinct-character floor (repeated-character OCR
// noise), and the label denylist all reject.
func isFalsePositive(candidate string) bool {
	if candidate == "" {
		return true
	}
	if len(candidate) < minIDLen || len(candidate) > maxIDLen {
		return true
	}

	distinct := make(map[rune]bool)
	for _, r := range candidate {
		distinct[r] = true
	}
	if len(distinct) < 3 {
		return true
	}

	upper := strings.ToUpper(candidate)
	for _, w := range labelWords {
		if strings.Contains(upper, w) {
			return true
		}
	}
	return false
}

// transactionIDs holds at most one candidate per extraction scheme.
type transactionIDs struct {
	upi       string
	google    string
	app       string
	utr       string
	reference string
}

// primary resolves the scheme IDs to a single identifier in strict
// priority order. UPI-labeled IDs are the most reliable on Indian
// mobile-payment receipts, so they win over everything else.
func (ids transactionIDs) primary() string {
	switch {
	case ids.upi != "":
		return ids.upi
	case ids.app != "":
		return ids.app
	case ids.google != "":
		return ids.google
	case ids.utr != "":
		return ids.utr
	case ids.reference != "":
		return ids.reference
	}
	return ""
}

// upiPatterns match a 12-digit number after a UPI label, in priority
// order from the most explicit label down.
var upiPatterns = []*regexp.Regexp{
	regexp.MustCompile(`UPI\s+TRANSACTION\s+ID[\s:]*(\d{12})`),
	regexp.MustCompile(`UPI\s+TXN\s+ID[\s:]*(\d{12})`),
	regexp.MustCompile(`UPI\s+ID[\s:]*(\d{12})`),
	regexp.MustCompile(`UPI\s+REF(?:ERENCE)?\s+(?:NO|NUMBER)[\s:]*(\d{12})`),
	regexp.MustCompile(`UPI\s+REF[\s:]*(\d{12})`),
}

var (
	bareTwelveDigits = regexp.MustCompile(`\b(\d{12})\b`)

	googlePattern = regexp.MustCompile(`(?i)GOOGLE\s+(?:TRANSACTION|TXN)\s+ID[\s:]*([A-Za-z0-9]{10,})`)
	// Google IDs often mix case; on the fallback line scan anything
	// letter-led and alphanumeric qualifies, subject to rejection.
	googleLineToken = regexp.MustCompile(`\b([A-Za-z][A-Za-z0-9]{9,30})\b`)

	olexPattern    = regexp.MustCompile(`\b(OLEX[A-Z0-9]{20,})\b`)
	tPrefixPattern = regexp.MustCompile(`\bT([A-Z0-9]{18,})\b`)

	utrPattern = regexp.MustCompile(`UTR[\s:]*#?\s*(\d{12})`)
)

// appLabelPatterns match vendor-labeled or generic transaction-ID
// labels, in priority order.
var appLabelPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:PHONEPE|PAYTM|BHIM)\s+(?:TRANSACTION|TXN)\s+ID[\s:]*([A-Z0-9]{15,})`),
	regexp.MustCompile(`TRANSACTION\s+ID[\s:]*([A-Z0-9]{15,})`),
	regexp.MustCompile(`TXN\s+ID[\s:]*([A-Z0-9]{15,})`),
}

var referencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:REF|REFERENCE)[\s:]*#?\s*([A-Z0-9]{12,})`),
	regexp.MustCompile(`(?:ORDER|PAYMENT)[\s:]*#?\s*([A-Z0-9]{12,})`),
	regexp.MustCompile(`(?:RECEIPT|RCPT)[\s:]*#?\s*([A-Z0-9]{12,})`),
}

// extractTransactionIDs runs the five independent ID schemes against
// the text. Each scheme produces at most one candidate.
func extractTransactionIDs(text string) transactionIDs {
	var ids transactionIDs
	if text == "" {
		return ids
	}

	upper := strings.ToUpper(text)

	for _, p := range upiPatterns {
		if m := p.FindStringSubmatch(upper); m != nil {
			ids.upi = m[1]
			break
		}
	}
	if ids.upi == "" {
		ids.upi = scanLinesAfterLabel(text, []string{"UPI", "TRANSACTION", "ID"},
			bareTwelveDigits, false)
	}

	if m := googlePattern.FindStringSubmatch(text); m != nil {
		ids.google = m[1]
	} else {
		ids.google = scanLinesAfterLabel(text, []string{"GOOGLE", "TRANSACTION", "ID"},
			googleLineToken, true)
	}

	if m := olexPattern.FindStringSubmatch(upper); m != nil {
		ids.app = m[1]
	}
	if ids.app == "" {
		if m := tPrefixPattern.FindStringSubmatch(upper); m != nil {
			if full := "T" + m[1]; !isFalsePositive(full) {
				ids.app = full
			}
		}
	}
	if ids.app == "" {
		for _, p := range appLabelPatterns {
			m := p.FindStringSubmatch(upper)
			if m == nil {
				continue
			}
			// Skip the UPI ID the first scheme already claimed.
			if m[1] != ids.upi && !isFalsePositive(m[1]) {
				ids.app = m[1]
				break
			}
		}
	}

	if m := utrPattern.FindStringSubmatch(upper); m != nil {
		ids.utr = m[1]
	}

	for _, p := range referencePatterns {
		m := p.FindStringSubmatch(upper)
		if m == nil {
			continue
		}
		ref := m[1]
		if ref == ids.upi || ref == ids.google || ref == ids.app || ref == ids.utr {
			continue
		}
		if !isFalsePositive(ref) {
			ids.reference = ref
			break
		}
	}

	return ids
}

// scanLinesAfterLabel finds a line containing every label word and
// looks for the token pattern within the next three lines. Receipts
// from some apps put the label and the value on separate lines.
func scanLinesAfterLabel(text string, labels []string, token *regexp.Regexp, checked bool) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		up := strings.ToUpper(line)
		if !containsAll(up, labels) {
			continue
		}
		for j := i + 1; j < len(lines) && j <= i+3; j++ {
			m := token.FindStringSubmatch(lines[j])
			if m == nil {
				continue
			}
			if checked && isFalsePositive(m[1]) {
				continue
			}
			return m[1]
		}
	}
	return ""
}

func containsAll(s string, words []string) bool {
	for _, w := range words {
		if !strings.Contains(s, w) {
			return false
		}
	}
	return true
}
