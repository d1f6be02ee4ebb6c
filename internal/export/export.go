// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export renders extraction records for downstream consumers.
// The upstream form code owns where files land; the field-to-column
// and field-to-key mapping is fixed here so every consumer sees the
// same shape. List-valued fields join with "; ".
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/confdesk/intake-engine/pkg/types"
)

// listSeparator joins list-valued fields into a single CSV cell.
const listSeparator = "; "

// WriteJSON writes the record as indented JSON.
func WriteJSON(w io.Writer, record any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(record)
}

// WriteYAML writes the record as YAML.
func WriteYAML(w io.Writer, record any) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(record)
}

// WriteCSV writes the record as a header row plus one value row.
// Only the two extraction record types are supported.
func WriteCSV(w io.Writer, record any) error {
	header, row, err := csvRow(record)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.Write(row); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

func csvRow(record any) (header, row []string, err error) {
	switch r := record.(type) {
	case types.DocumentMetadata:
		header = []string{
			"title", "authors", "abstract", "keywords", "affiliations",
			"publication_date", "body_excerpt", "emails",
		}
		row = []string{
			r.Title,
			joinList(r.Authors),
			r.Abstract,
			joinList(r.Keywords),
			joinList(r.Affiliations),
			r.PublicationDate,
			r.BodyExcerpt,
			joinList(r.Emails),
		}
	case types.PaymentDetails:
		header = []string{
			"transaction_id", "upi_transaction_id", "google_transaction_id",
			"app_transaction_id", "utr_number", "reference_number",
			"amount", "date", "time", "payment_method", "status",
			"upi_id", "bank_name", "merchant_name", "payer_name",
		}
		row = []string{
			r.TransactionID, r.UPITransactionID, r.GoogleTransactionID,
			r.AppTransactionID, r.UTRNumber, r.ReferenceNumber,
			r.Amount, r.Date, r.Time, r.PaymentMethod, r.Status,
			r.UPIID, r.BankName, r.MerchantName, r.PayerName,
		}
	default:
		return nil, nil, fmt.Errorf("unsupported record type %T", record)
	}
	return header, row, nil
}

func joinList(items []string) string {
	return strings.Join(items, listSeparator)
}
