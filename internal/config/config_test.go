package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "assets.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v; want defaults %+v", cfg, Default())
	}
	if cfg.OutputDir != DefaultOutputDir {
		t.Errorf("OutputDir = %q; want %q", cfg.OutputDir, DefaultOutputDir)
	}
	if !strings.HasSuffix(cfg.Fonts.Mono, "DejaVuSansMono.ttf") {
		t.Errorf("Fonts.Mono = %q; want DejaVuSansMono.ttf", cfg.Fonts.Mono)
	}
}

func TestLoad_OverridesKeepUnsetDefaults(t *testing.T) {
	path := writeConfig(t, `
output_dir = "out/store"

[fonts]
regular = "/opt/fonts/NotoSans.ttf"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.OutputDir != "out/store" {
		t.Errorf("OutputDir = %q; want out/store", cfg.OutputDir)
	}
	if cfg.Fonts.Regular != "/opt/fonts/NotoSans.ttf" {
		t.Errorf("Fonts.Regular = %q", cfg.Fonts.Regular)
	}
	if cfg.Fonts.Bold != Default().Fonts.Bold {
		t.Errorf("Fonts.Bold = %q; want default %q", cfg.Fonts.Bold, Default().Fonts.Bold)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"unknown key", "outdir = \"x\"\n", "unknown keys: outdir"},
		{"unknown nested key", "[fonts]\nitalic = \"x.ttf\"\n", "unknown keys: fonts.italic"},
		{"bad syntax", "output_dir = \n", "parse config"},
		{"empty output dir", "output_dir = \"  \"\n", "output_dir must not be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v; want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v; want a not-exist error", err)
	}
}
