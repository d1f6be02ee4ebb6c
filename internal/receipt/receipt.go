// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package receipt turns OCR'd payment-receipt text into a structured
// record. Receipts from different payment apps label the same fields
// differently and OCR mangles the rest, so every field is resolved by
// a prioritized list of patterns with the first success winning.
package receipt

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/confdesk/intake-engine/pkg/types"
)

// rawTextLimit bounds the OCR dump kept on the record for audit.
const rawTextLimit = 500

// Amounts outside this open interval are OCR misreads.
const (
	minAmount = 0
	maxAmount = 1000000
)

// amountPatterns match a currency-symbol- or label-prefixed number,
// in priority order. Applied to upper-cased text.
var amountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`₹\s*([0-9,]+\.?[0-9]*)`),
	regexp.MustCompile(`RS\.?\s*([0-9,]+\.?[0-9]*)`),
	regexp.MustCompile(`INR\s*([0-9,]+\.?[0-9]*)`),
	regexp.MustCompile(`(?:AMOUNT|AMT|TOTAL|PAID)[\s:]*[₹$]?\s*([0-9,]+\.?[0-9]*)`),
}

// datePatterns cover the three families seen on receipts: month name,
// day-first numeric, and year-first numeric. The raw matched text is
// kept; calendar normalization is the caller's problem.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(\d{1,2}\s+(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{4})\b`),
	regexp.MustCompile(`\b(\d{1,2}[-/]\d{1,2}[-/]\d{2,4})\b`),
	regexp.MustCompile(`\b(\d{4}[-/]\d{1,2}[-/]\d{1,2})\b`),
}

var timePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(\d{1,2}:\d{2}\s*(?:am|pm))\b`),
	regexp.MustCompile(`(?i)\b(\d{1,2}:\d{2}:\d{2}\s*(?:AM|PM)?)\b`),
}

// upiHandlePattern is looser than an email: UPI handles have no TLD
// (e.g. "name@okhdfcbank").
var upiHandlePattern = regexp.MustCompile(`([a-zA-Z0-9._-]+@[a-zA-Z]+)`)

// labelValue pairs a literal to scan for with the canonical value it
// resolves to. Tables are iterated in priority order; the first label
// found in the text wins.
type labelValue struct {
	label string
	value string
}

var paymentMethods = []labelValue{
	{"GOOGLE PAY", "GOOGLE PAY"},
	{"GPAY", "GPAY"},
	{"PHONEPE", "PHONEPE"},
	{"PAYTM", "PAYTM"},
	{"BHIM", "BHIM"},
	{"UPI", "UPI"},
	{"CREDIT CARD", "CREDIT CARD"},
	{"DEBIT CARD", "DEBIT CARD"},
	{"NET BANKING", "NET BANKING"},
	{"WALLET", "WALLET"},
	{"AUTOPAY", "AUTOPAY"},
}

var statuses = []labelValue{
	{"COMPLETED", "COMPLETED"},
	{"COMPLETE", "COMPLETED"},
	{"SUCCESS", "SUCCESS"},
	{"SUCCESSFUL", "SUCCESS"},
	{"PAID", "PAID"},
	{"FAILED", "FAILED"},
	{"FAIL", "FAILED"},
	{"PENDING", "PENDING"},
	{"DECLINED", "DECLINED"},
}

var bankNames = []labelValue{
	{"HDFC BANK", "HDFC BANK"},
	{"HDFC", "HDFC"},
	{"SBI", "SBI"},
	{"STATE BANK", "STATE BANK"},
	{"ICICI", "ICICI"},
	{"AXIS", "AXIS"},
	{"KOTAK", "KOTAK"},
	{"PNB", "PNB"},
	{"PUNJAB NATIONAL", "PUNJAB NATIONAL"},
	{"BOB", "BOB"},
	{"BANK OF BARODA", "BANK OF BARODA"},
	{"CANARA", "CANARA"},
	{"UNION", "UNION"},
	{"IDBI", "IDBI"},
	{"YES BANK", "YES BANK"},
	{"FEDERAL", "FEDERAL"},
	{"IDFC", "IDFC"},
}

var merchantPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:TO|PAY\s+TO)[\s:]+([A-Z][A-Z\s]+?)(?:\n|$|₹)`),
	regexp.MustCompile(`PAY\s+TO\s+(.+?)(?:MERCHANT|$)`),
}

var payerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`FROM[\s:]+([A-Z][A-Z\s]+?)(?:\(|$|\n)`),
}

// ExtractDetails scans OCR'd receipt text and returns the structured
// payment record. Empty text yields the zero record with RawText "".
// Extraction misses are empty fields, never errors.
func ExtractDetails(text string) types.PaymentDetails {
	var d types.PaymentDetails
	if text == "" {
		return d
	}

	upper := strings.ToUpper(text)

	ids := extractTransactionIDs(text)
	d.UPITransactionID = ids.upi
	d.GoogleTransactionID = ids.google
	d.AppTransactionID = ids.app
	d.UTRNumber = ids.utr
	d.ReferenceNumber = ids.reference
	d.TransactionID = ids.primary()

	d.Amount = extractAmount(upper)
	d.Date = firstMatch(datePatterns, text)
	d.Time = firstMatch(timePatterns, text)

	if m := upiHandlePattern.FindStringSubmatch(text); m != nil {
		d.UPIID = m[1]
	}

	d.PaymentMethod = firstLabel(upper, paymentMethods)
	d.Status = firstLabel(upper, statuses)
	d.BankName = firstLabel(upper, bankNames)

	d.MerchantName = extractName(upper, merchantPatterns)
	d.PayerName = extractName(upper, payerPatterns)

	d.RawText = truncate(text, rawTextLimit)
	return d
}

// extractAmount tries the amount patterns in order, accepting the
// first candidate that parses to a value inside the sane range.
func extractAmount(upper string) string {
	for _, p := range amountPatterns {
		m := p.FindStringSubmatch(upper)
		if m == nil {
			continue
		}
		amt := strings.ReplaceAll(m[1], ",", "")
		v, err := strconv.ParseFloat(amt, 64)
		if err != nil {
			continue
		}
		if v > minAmount && v < maxAmount {
			return amt
		}
	}
	return ""
}

func firstMatch(patterns []*regexp.Regexp, text string) string {
	for _, p := range patterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return m[1]
		}
	}
	return ""
}

func firstLabel(upper string, table []labelValue) string {
	for _, lv := range table {
		if strings.Contains(upper, lv.label) {
			return lv.value
		}
	}
	return ""
}

// extractName pulls a label-prefixed counterparty name, accepted only
// when its length is plausible for a display name.
func extractName(upper string, patterns []*regexp.Regexp) string {
	for _, p := range patterns {
		m := p.FindStringSubmatch(upper)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		if len(name) > 2 && len(name) < 50 {
			return name
		}
	}
	return ""
}

func truncate(s string, limit int) string {
	if r := []rune(s); len(r) > limit {
		return string(r[:limit])
	}
	return s
}
