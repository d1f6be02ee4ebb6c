// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/confdesk/intake-engine/internal/textscan"
)

var emailsCmd = &cobra.Command{
	Use:   "emails [file]",
	Short: "List email addresses found in a document",
	Long: `Emails scans a document's text for email addresses, one per line,
deduplicated case-insensitively with first-seen order preserved.
Accepts PDFs, TEI XML, and plain text.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := documentText(cmd, args[0])
		if err != nil {
			return err
		}
		for _, email := range textscan.FindEmails(text) {
			fmt.Println(email)
		}
		return nil
	},
}

func init() {
	emailsCmd.Flags().String("lang", "", "Tesseract language string for image input")
	emailsCmd.Flags().Bool("grobid-fallback", false, "try the GROBID server when OCR yields nothing")

	rootCmd.AddCommand(emailsCmd)
}
