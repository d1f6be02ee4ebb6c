//go:build !ocr

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ocr

import (
	"context"
	"io"
)

// TesseractBackend is the stub used when the "ocr" build tag is not
// set. All calls return ErrOCRNotEnabled, which FromImage treats as a
// backend miss. Enabling OCR requires Tesseract installed and a
// rebuild with -tags ocr.
type TesseractBackend struct {
	Language string
}

// Name returns the backend identifier.
func (b *TesseractBackend) Name() string { return "tesseract" }

// Text always fails: OCR support was not compiled in.
func (b *TesseractBackend) Text(_ context.Context, _ io.Reader) (string, error) {
	return "", ErrOCRNotEnabled
}
