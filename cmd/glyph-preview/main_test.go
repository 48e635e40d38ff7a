package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/hrko/store-assets/internal/config"
)

func TestRender(t *testing.T) {
	fontPath := config.Default().Fonts.Regular
	if _, err := os.Stat(fontPath); err != nil {
		t.Skip("DejaVu fonts not installed")
	}

	out := filepath.Join(t.TempDir(), "glyph.png")
	if err := render(out, 40, fontPath, "A"); err != nil {
		t.Fatalf("render: %v", err)
	}
	img, err := imaging.Open(out)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 60 || b.Dy() != 60 {
		t.Errorf("size = %v; want 60x60", b)
	}
}

func TestRender_Errors(t *testing.T) {
	dir := t.TempDir()
	if err := render(filepath.Join(dir, "x.png"), 40, filepath.Join(dir, "NoSuchGlyphFont.ttf"), "A"); err == nil {
		t.Error("missing font should fail")
	}

	fontPath := config.Default().Fonts.Regular
	if _, err := os.Stat(fontPath); err != nil {
		return
	}
	if err := render(filepath.Join(dir, "x.png"), 0, fontPath, "A"); err == nil {
		t.Error("zero size should fail")
	}
}
