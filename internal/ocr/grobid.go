// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ocr

import (
	"context"
	"io"

	"github.com/confdesk/intake-engine/internal/grobid"
	"github.com/confdesk/intake-engine/internal/tei"
)

// GrobidBackend presses the GROBID conversion service into duty as a
// secondary text source: the image is uploaded as a document and the
// TEI response is flattened to bare words. Lower fidelity than real
// OCR, but works when Tesseract is unavailable.
type GrobidBackend struct {
	Client *grobid.Client
}

// Name returns the backend identifier.
func (b *GrobidBackend) Name() string { return "grobid" }

// Text uploads the image and flattens the structured response.
func (b *GrobidBackend) Text(ctx context.Context, r io.Reader) (string, error) {
	teiXML, err := b.Client.ProcessBytes(ctx, "input", r)
	if err != nil {
		return "", err
	}
	return tei.FlattenText(teiXML), nil
}
