package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "intake-engine/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// GrobidConfig holds settings for the external document-conversion
// service (GROBID).
type GrobidConfig struct {
	HTTPConfig `yaml:",inline"`

	// ServerURL is the base URL of the GROBID server
	// (e.g. "http://localhost:8070").
	ServerURL string `json:"server_url" yaml:"server_url"`

	// MaxRetries is the number of retry attempts on timeout or
	// HTTP 503 (default 3). A hosted GROBID instance sleeps when idle
	// and needs time to wake up.
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// OCRConfig holds settings for the text-acquisition stage.
type OCRConfig struct {
	// Language is the Tesseract language string (default "eng").
	// Multiple languages join with "+" (e.g. "eng+hin").
	Language string `json:"language" yaml:"language"`

	// EnableTesseract controls whether the Tesseract backend is tried.
	EnableTesseract bool `json:"enable_tesseract" yaml:"enable_tesseract"`

	// EnableGrobidFallback controls whether the GROBID server is tried
	// as a secondary text source for images.
	EnableGrobidFallback bool `json:"enable_grobid_fallback" yaml:"enable_grobid_fallback"`
}

// ExtractionConfig groups all stage configurations for the engine.
type ExtractionConfig struct {
	Grobid GrobidConfig `json:"grobid" yaml:"grobid"`
	OCR    OCRConfig    `json:"ocr" yaml:"ocr"`
}
