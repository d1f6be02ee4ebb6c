// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ocr

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/confdesk/intake-engine/internal/grobid"
)

func TestGrobidBackendFlattensResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<TEI><text><p>paid</p><p>499</p></text></TEI>`))
	}))
	defer srv.Close()

	b := &GrobidBackend{Client: &grobid.Client{
		ServerURL:  srv.URL,
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
		MaxRetries: 1,
	}}

	got, err := b.Text(context.Background(), strings.NewReader("imgbytes"))
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if got != "paid 499" {
		t.Errorf("Text = %q, want %q", got, "paid 499")
	}
}

func TestGrobidBackendServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	b := &GrobidBackend{Client: &grobid.Client{
		ServerURL:  srv.URL,
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
		MaxRetries: 1,
	}}

	if _, err := b.Text(context.Background(), strings.NewReader("imgbytes")); err == nil {
		t.Error("Text should fail on server error")
	}
}
