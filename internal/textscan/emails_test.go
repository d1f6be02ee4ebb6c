// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textscan

import (
	"reflect"
	"testing"
)

func TestFindEmails(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			"case-insensitive dedup keeps first casing",
			"A@x.com B@X.com a@x.com",
			[]string{"A@x.com", "B@X.com"},
		},
		{
			"order preserved",
			"contact zeta@uni.edu first, then alpha@uni.edu",
			[]string{"zeta@uni.edu", "alpha@uni.edu"},
		},
		{
			"plus and dots in local part",
			"send to first.last+tag@sub.example.org please",
			[]string{"first.last+tag@sub.example.org"},
		},
		{
			"upi handles without TLD are not emails",
			"pay merchant@okhdfcbank today",
			nil,
		},
		{
			"single-letter TLD rejected",
			"bad@host.x",
			nil,
		},
		{"empty text", "", nil},
		{"no emails", "nothing to see here", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindEmails(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FindEmails(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
