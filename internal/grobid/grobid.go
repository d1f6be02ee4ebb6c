// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package grobid is the HTTP client for the external GROBID
// document-conversion service (PDF in, TEI XML out). Hosted GROBID
// instances sleep when idle, so requests retry timeouts and HTTP 503
// with increasing waits before giving up.
package grobid

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/confdesk/intake-engine/internal/httputil"
	"github.com/confdesk/intake-engine/pkg/types"
)

// fulltextPath is the GROBID endpoint for full-document processing.
const fulltextPath = "/api/processFulltextDocument"

// Client calls a GROBID server. The zero value is not usable; build
// one with NewClient.
type Client struct {
	ServerURL  string
	HTTPClient *http.Client
	MaxRetries int
}

// NewClient builds a client from configuration, applying the default
// timeout when unset.
func NewClient(cfg types.GrobidConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &Client{
		ServerURL:  cfg.ServerURL,
		HTTPClient: &http.Client{Timeout: timeout},
		MaxRetries: cfg.MaxRetries,
	}
}

// ProcessFulltext sends the PDF at pdfPath to the server and returns
// the TEI XML response body.
func (c *Client) ProcessFulltext(ctx context.Context, pdfPath string) (string, error) {
	f, err := os.Open(pdfPath)
	if err != nil {
		return "", fmt.Errorf("opening PDF %s: %w", pdfPath, err)
	}
	defer f.Close()

	return c.ProcessBytes(ctx, filepath.Base(pdfPath), f)
}

// ProcessBytes sends a document read from r (under the given upload
// filename) and returns the TEI XML response. The document is
// buffered so the multipart body can be rebuilt on each retry.
func (c *Client) ProcessBytes(ctx context.Context, filename string, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading document: %w", err)
	}

	build := func(ctx context.Context) (*http.Request, error) {
		body, contentType, err := multipartBody(filename, data)
		if err != nil {
			return nil, err
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.ServerURL+fulltextPath, body)
		if err != nil {
			return nil, fmt.Errorf("creating request: %w", err)
		}
		req.Header.Set("Content-Type", contentType)
		return req, nil
	}

	resp, err := httputil.DoWithRetry(ctx, c.HTTPClient, build, c.MaxRetries)
	if err != nil {
		var exhausted *httputil.RetriesExhaustedError
		if errors.As(err, &exhausted) {
			return "", fmt.Errorf("GROBID unavailable after %d attempts (the service may be sleeping or overloaded): %w",
				exhausted.Attempts, exhausted.Last)
		}
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("GROBID returned HTTP %d", resp.StatusCode)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading GROBID response: %w", err)
	}
	return string(b), nil
}

// multipartBody builds the "input" file upload GROBID expects.
func multipartBody(filename string, data []byte) (io.Reader, string, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("input", filename)
	if err != nil {
		return nil, "", fmt.Errorf("building multipart body: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, "", fmt.Errorf("building multipart body: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, "", fmt.Errorf("building multipart body: %w", err)
	}
	return &body, mw.FormDataContentType(), nil
}
