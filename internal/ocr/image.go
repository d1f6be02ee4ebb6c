// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ocr

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	"image/png"

	"github.com/gen2brain/heic"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

// NormalizePNG converts arbitrary image bytes to PNG for the OCR
// engine. HEIC/HEIF photos (the default on iPhones) are decoded with
// a dedicated decoder since the standard image package does not know
// the format; PNG input passes through untouched.
func NormalizePNG(data []byte) ([]byte, error) {
	if bytes.HasPrefix(data, pngMagic) {
		return data, nil
	}

	var img image.Image
	var err error
	if isHEIC(data) {
		img, err = heic.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decoding HEIC image: %w", err)
		}
	} else {
		img, _, err = image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decoding image: %w", err)
		}
	}

	return encodePNG(img)
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// isHEIC sniffs the ISO-BMFF ftyp box for HEIC/HEIF brands.
func isHEIC(data []byte) bool {
	if len(data) < 12 || string(data[4:8]) != "ftyp" {
		return false
	}
	switch string(data[8:12]) {
	case "heic", "heif", "mif1", "msf1":
		return true
	}
	return false
}
