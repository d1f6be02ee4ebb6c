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
)

var textCmd = &cobra.Command{
	Use:   "text [file]",
	Short: "Dump the acquired plain text of a document",
	Long: `Text prints the raw text this engine would feed to its parsers:
the PDF text layer, the flattened TEI content, or OCR output for
images. Useful for diagnosing extraction misses.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := documentText(cmd, args[0])
		if err != nil {
			return err
		}
		fmt.Println(text)
		return nil
	},
}

// documentText acquires plain text from any supported input kind.
func documentText(cmd *cobra.Command, path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return ocr.FromPDF(path), nil
	case ".xml", ".tei":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", path, err)
		}
		return tei.FlattenText(string(data)), nil
	case ".txt":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", path, err)
		}
		return string(data), nil
	default:
		f, err := os.Open(path)
		if err != nil {
			return "", fmt.Errorf("opening %s: %w", path, err)
		}
		defer f.Close()
		return ocr.FromImage(context.Background(), f, imageBackends(cmd)...)
	}
}

func init() {
	textCmd.Flags().String("lang", "", "Tesseract language string for image input")
	textCmd.Flags().Bool("grobid-fallback", false, "try the GROBID server when OCR yields nothing")

	rootCmd.AddCommand(textCmd)
}
