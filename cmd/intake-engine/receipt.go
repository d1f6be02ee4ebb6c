// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/confdesk/intake-engine/internal/ocr"
	"github.com/confdesk/intake-engine/internal/receipt"
)

var receiptCmd = &cobra.Command{
	Use:   "receipt [image|pdf]",
	Short: "Extract payment details from a receipt image or PDF",
	Long: `Receipt runs OCR on a payment receipt and extracts transaction IDs
(UPI, Google Pay, payment-app, UTR, reference), amount, date, time,
payment method, status, UPI handle, bank, and counterparty names.

When nothing can be read from the image the record is empty and the
raw OCR text is kept for manual review.`,
	Args: cobra.ExactArgs(1),
	RunE: runReceipt,
}

func runReceipt(cmd *cobra.Command, args []string) error {
	path := args[0]
	format, _ := cmd.Flags().GetString("format")

	text, err := acquireText(cmd, path)
	if err != nil {
		return err
	}

	details := receipt.ExtractDetails(text)

	if format == "text" || format == "" {
		fmt.Println(receipt.Format(details))
		return nil
	}
	return writeRecord(details, format)
}

// acquireText obtains best-effort plain text from a receipt file.
// PDFs try the text layer first and fall back to rendering the first
// page for the OCR chain. Absence of text is a soft miss: the result
// is "", not an error.
func acquireText(cmd *cobra.Command, path string) (string, error) {
	if strings.ToLower(filepath.Ext(path)) == ".pdf" {
		if text := ocr.FromPDF(path); strings.TrimSpace(text) != "" {
			return text, nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", path, err)
		}
		pngData, err := ocr.PDFPageImage(data)
		if err != nil {
			return "", nil
		}
		return ocr.FromImage(context.Background(), bytes.NewReader(pngData), imageBackends(cmd)...)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return ocr.FromImage(context.Background(), f, imageBackends(cmd)...)
}

func init() {
	receiptCmd.Flags().String("format", "text", "output format: text, yaml, json, or csv")
	receiptCmd.Flags().String("lang", "", "Tesseract language string (e.g. \"eng+hin\")")
	receiptCmd.Flags().Bool("grobid-fallback", false, "try the GROBID server when OCR yields nothing")

	rootCmd.AddCommand(receiptCmd)
}
