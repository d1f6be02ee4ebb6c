// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/confdesk/intake-engine/internal/ocr"
	"github.com/confdesk/intake-engine/internal/tei"
	"github.com/confdesk/intake-engine/internal/textscan"
)

var metadataCmd = &cobra.Command{
	Use:   "metadata [file]",
	Short: "Extract document metadata from a paper PDF or TEI XML file",
	Long: `Metadata extracts title, authors, abstract, keywords, affiliations,
publication date, a body excerpt, and contact emails from a submitted
paper. PDF input is converted through the configured GROBID server;
TEI XML input (a saved GROBID response) is parsed directly.

A document that cannot be parsed yields an empty record, not an error:
the intake form falls back to manual completion.`,
	Args: cobra.ExactArgs(1),
	RunE: runMetadata,
}

func runMetadata(cmd *cobra.Command, args []string) error {
	path := args[0]
	debug, _ := cmd.Flags().GetBool("debug")
	format, _ := cmd.Flags().GetString("format")

	var teiXML string
	var fullText string

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml", ".tei":
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		teiXML = string(data)
		fullText = tei.FlattenText(teiXML)
	default:
		client, err := grobidClient(cmd)
		if err != nil {
			return err
		}
		teiXML, err = client.ProcessFulltext(context.Background(), path)
		if err != nil {
			return fmt.Errorf("converting %s: %w", path, err)
		}
		fullText = ocr.FromPDF(path)
		if fullText == "" {
			fullText = tei.FlattenText(teiXML)
		}
	}

	meta := tei.ExtractMetadata(teiXML, debug, os.Stderr)
	meta.Emails = textscan.FindEmails(fullText)

	return writeRecord(meta, format)
}

func init() {
	metadataCmd.Flags().Bool("debug", false, "print per-field extraction diagnostics to stderr")
	metadataCmd.Flags().String("format", "yaml", "output format: yaml, json, or csv")

	rootCmd.AddCommand(metadataCmd)
}
