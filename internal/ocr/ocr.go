// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ocr acquires plain text from binary documents (receipt
// images and PDFs) through pluggable backends. Text acquisition fails
// soft: when every backend fails or none is available the result is
// an empty string, and the caller treats absence of text as a miss
// rather than an error.
package ocr

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// ErrOCRNotEnabled is returned when OCR functions are called but OCR
// support was not compiled in. Rebuild with -tags ocr to enable it.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Backend extracts plain text from an image handle. Implementations
// may assume the reader is positioned at the start; FromImage rewinds
// between backends.
type Backend interface {
	Name() string
	Text(ctx context.Context, r io.Reader) (string, error)
}

// FromImage tries each backend in order against the image and returns
// the first non-empty text. The handle is rewound before every
// attempt so backends never see a half-consumed stream. All backends
// failing is a soft miss with "" text; an I/O error on the handle
// itself is a real fault and propagates.
func FromImage(ctx context.Context, r io.ReadSeeker, backends ...Backend) (string, error) {
	for _, b := range backends {
		if _, err := r.Seek(0, io.SeekStart); err != nil {
			return "", fmt.Errorf("rewinding image handle: %w", err)
		}
		text, err := b.Text(ctx, r)
		if err != nil || strings.TrimSpace(text) == "" {
			continue
		}
		return text, nil
	}
	return "", nil
}

// FromPDF extracts the text layer of the PDF at path, page by page.
// Scanned PDFs without a text layer and unreadable files both yield
// "" (the caller falls back to rendering and OCR).
func FromPDF(path string) string {
	doc, err := fitz.New(path)
	if err != nil {
		return ""
	}
	defer doc.Close()

	var b strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		text, err := doc.Text(i)
		if err != nil {
			continue
		}
		b.WriteString(text)
	}
	return b.String()
}

// PDFPageImage renders the first page of a PDF to PNG bytes so the
// OCR chain can handle receipts exported as PDF. Most receipts are a
// single page.
func PDFPageImage(pdfData []byte) ([]byte, error) {
	doc, err := fitz.NewFromMemory(pdfData)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	img, err := doc.Image(0)
	if err != nil {
		return nil, err
	}
	return encodePNG(img)
}
