// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package receipt

import (
	"strings"

	"github.com/confdesk/intake-engine/pkg/types"
)

// formatFields fixes the order and labels of the human-readable
// summary. Only present fields are printed.
var formatFields = []struct {
	label string
	get   func(d types.PaymentDetails) string
}{
	{"Primary Transaction ID", func(d types.PaymentDetails) string { return d.TransactionID }},
	{"UPI Transaction ID", func(d types.PaymentDetails) string { return d.UPITransactionID }},
	{"Google Transaction ID", func(d types.PaymentDetails) string { return d.GoogleTransactionID }},
	{"App Transaction ID", func(d types.PaymentDetails) string { return d.AppTransactionID }},
	{"UTR Number", func(d types.PaymentDetails) string { return d.UTRNumber }},
	{"Reference Number", func(d types.PaymentDetails) string { return d.ReferenceNumber }},
	{"Amount", func(d types.PaymentDetails) string { return d.Amount }},
	{"Status", func(d types.PaymentDetails) string { return d.Status }},
	{"Merchant", func(d types.PaymentDetails) string { return d.MerchantName }},
	{"From", func(d types.PaymentDetails) string { return d.PayerName }},
	{"Date", func(d types.PaymentDetails) string { return d.Date }},
	{"Time", func(d types.PaymentDetails) string { return d.Time }},
	{"Method", func(d types.PaymentDetails) string { return d.PaymentMethod }},
	{"UPI ID", func(d types.PaymentDetails) string { return d.UPIID }},
	{"Bank", func(d types.PaymentDetails) string { return d.BankName }},
}

// Format renders a payment record as a multi-line summary in a fixed
// field order, listing only the fields extraction found. A record with
// nothing extracted renders as a sentinel line.
func Format(d types.PaymentDetails) string {
	var lines []string
	for _, f := range formatFields {
		v := f.get(d)
		if v == "" {
			continue
		}
		if f.label == "Amount" {
			v = "₹" + v
		}
		lines = append(lines, f.label+": "+v)
	}
	if len(lines) == 0 {
		return "No payment details extracted"
	}
	return strings.Join(lines, "\n")
}
