package receipt

import (
	"bytes"
	"errors"
	"testing"

	"avatarmarket/internal/catalog"
	"avatarmarket/internal/configurator"
)

func TestGenerate_NoSubject(t *testing.T) {
	cat := catalog.Default()
	q := configurator.Breakdown(cat, nil, configurator.DefaultRecord(cat))
	b, err := Generate(q)
	if !errors.Is(err, ErrNoSubject) {
		t.Errorf("Expected ErrNoSubject, got %v", err)
	}
	if b != nil {
		t.Error("Expected no PDF without subject")
	}
}

func TestGenerate_ReturnsPDF(t *testing.T) {
	cat := catalog.Default()
	fox, _ := cat.Subject("fox")
	rec := configurator.DefaultRecord(cat).With(catalog.Eyes, "mischief").With(catalog.Color, "violet")
	b, err := Generate(configurator.Breakdown(cat, &fox, rec))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(b) < 100 {
		t.Errorf("PDF too short: %d bytes", len(b))
	}
	if !bytes.HasPrefix(b, []byte("%PDF")) {
		t.Error("output is not a PDF (missing %PDF header)")
	}
}

func TestHexRGB(t *testing.T) {
	tests := []struct {
		in      string
		r, g, b int
	}{
		{"#ff9f43", 255, 159, 67},
		{"a56bff", 165, 107, 255},
		{"#fff", 128, 128, 128},
		{"#zzzzzz", 128, 128, 128},
	}
	for _, tt := range tests {
		r, g, b := hexRGB(tt.in)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("hexRGB(%q) = %d,%d,%d want %d,%d,%d", tt.in, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}
