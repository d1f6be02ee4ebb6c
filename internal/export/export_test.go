// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/confdesk/intake-engine/pkg/types"
)

func TestWriteCSVMetadata(t *testing.T) {
	meta := types.DocumentMetadata{
		Title:        "Deep Parsing of Scholarly Text",
		Authors:      []string{"Ada Lovelace", "Charles Babbage"},
		Abstract:     "We parse things.",
		Keywords:     []string{"parsing", "metadata"},
		Affiliations: []string{"Analytical Engine Institute"},
		Emails:       []string{"ada@example.org"},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, meta); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want header plus one record", len(rows))
	}
	if rows[0][0] != "title" || rows[0][7] != "emails" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][1] != "Ada Lovelace; Charles Babbage" {
		t.Errorf("authors cell = %q, want semicolon-joined list", rows[1][1])
	}
	if rows[1][3] != "parsing; metadata" {
		t.Errorf("keywords cell = %q", rows[1][3])
	}
}

func TestWriteCSVPayment(t *testing.T) {
	d := types.PaymentDetails{
		TransactionID:    "123456789012",
		UPITransactionID: "123456789012",
		Amount:           "499",
		Status:           "COMPLETED",
		RawText:          "should not appear in CSV",
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, d); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "transaction_id,upi_transaction_id,") {
		t.Errorf("header = %q", strings.SplitN(out, "\n", 2)[0])
	}
	if strings.Contains(out, "should not appear") {
		t.Error("raw_text leaked into CSV output")
	}
	if !strings.Contains(out, "123456789012") || !strings.Contains(out, "COMPLETED") {
		t.Errorf("value row missing fields: %q", out)
	}
}

func TestWriteCSVUnsupportedType(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, struct{ X int }{1}); err == nil {
		t.Error("WriteCSV should reject unknown record types")
	}
}

func TestWriteJSON(t *testing.T) {
	meta := types.DocumentMetadata{Title: "A Title", Authors: []string{"Solo Author"}}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, meta); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var back map[string]any
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if back["title"] != "A Title" {
		t.Errorf("title = %v", back["title"])
	}
	if !strings.Contains(buf.String(), "\n    \"title\"") {
		t.Error("output is not indented")
	}
}

func TestWriteYAML(t *testing.T) {
	d := types.PaymentDetails{Amount: "499", Status: "PAID"}

	var buf bytes.Buffer
	if err := WriteYAML(&buf, d); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}
	if !strings.Contains(buf.String(), "amount: \"499\"") {
		t.Errorf("yaml output = %q", buf.String())
	}
	if !strings.Contains(buf.String(), "status: PAID") {
		t.Errorf("yaml output = %q", buf.String())
	}
}
