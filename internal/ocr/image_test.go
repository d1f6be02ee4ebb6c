// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ocr

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"testing"
)

func TestIsHEIC(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{"heic brand", []byte("\x00\x00\x00\x18ftypheic...."), true},
		{"heif brand", []byte("\x00\x00\x00\x18ftypheif...."), true},
		{"mif1 brand", []byte("\x00\x00\x00\x18ftypmif1...."), true},
		{"msf1 brand", []byte("\x00\x00\x00\x18ftypmsf1...."), true},
		{"mp4 brand", []byte("\x00\x00\x00\x18ftypisom...."), false},
		{"no ftyp box", []byte("\x89PNG\r\n\x1a\n widthheight"), false},
		{"too short", []byte("\x00\x00ftyp"), false},
		{"empty", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isHEIC(tt.data); got != tt.want {
				t.Errorf("isHEIC = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalizePNGPassthrough(t *testing.T) {
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}

	out, err := NormalizePNG(buf.Bytes())
	if err != nil {
		t.Fatalf("NormalizePNG: %v", err)
	}
	if !bytes.Equal(out, buf.Bytes()) {
		t.Error("PNG input should pass through unmodified")
	}
}

func TestNormalizePNGConvertsJPEG(t *testing.T) {
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatal(err)
	}

	out, err := NormalizePNG(buf.Bytes())
	if err != nil {
		t.Fatalf("NormalizePNG: %v", err)
	}
	if !bytes.HasPrefix(out, pngMagic) {
		t.Error("converted output is not PNG")
	}
	if _, err := png.Decode(bytes.NewReader(out)); err != nil {
		t.Errorf("output does not decode as PNG: %v", err)
	}
}

func TestNormalizePNGGarbage(t *testing.T) {
	if _, err := NormalizePNG([]byte("definitely not an image")); err == nil {
		t.Error("NormalizePNG on garbage input should fail")
	}
}
