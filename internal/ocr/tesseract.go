//go:build ocr

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ocr

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// TesseractBackend recognizes text with the Tesseract engine via
// gosseract. Requires Tesseract installed on the system and the "ocr"
// build tag.
type TesseractBackend struct {
	// Language is the Tesseract language string ("eng" when empty).
	// Multiple languages join with "+".
	Language string
}

// Name returns the backend identifier.
func (b *TesseractBackend) Name() string { return "tesseract" }

// Text runs OCR on the image. Any input format the image package or
// the HEIC decoder understands is accepted; recognition is CPU-bound
// and can take a while on large photos.
func (b *TesseractBackend) Text(_ context.Context, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading image: %w", err)
	}

	pngData, err := NormalizePNG(data)
	if err != nil {
		return "", err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if b.Language != "" {
		if err := client.SetLanguage(strings.Split(b.Language, "+")...); err != nil {
			return "", fmt.Errorf("setting OCR language: %w", err)
		}
	}
	if err := client.SetImageFromBytes(pngData); err != nil {
		return "", fmt.Errorf("setting image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}
	return text, nil
}
