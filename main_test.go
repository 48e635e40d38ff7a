package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/hrko/store-assets/internal/assets"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(io.Discard)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func TestRun_WritesBothAssets(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "docs", "assets")

	// second run overwrites the first
	for i := 0; i < 2; i++ {
		if err := run(context.Background(), []string{"--out", dir}); err != nil {
			t.Fatalf("run %d: %v", i+1, err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	want := []string{assets.PromoFile, assets.ScreenshotFile}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Fatalf("files = %v; want %v", names, want)
	}

	tests := []struct {
		file string
		w, h int
	}{
		{assets.PromoFile, 440, 280},
		{assets.ScreenshotFile, 1280, 800},
	}
	for _, tt := range tests {
		img, err := imaging.Open(filepath.Join(dir, tt.file))
		if err != nil {
			t.Errorf("open %s: %v", tt.file, err)
			continue
		}
		if b := img.Bounds(); b.Dx() != tt.w || b.Dy() != tt.h {
			t.Errorf("%s size = %dx%d; want %dx%d", tt.file, b.Dx(), b.Dy(), tt.w, tt.h)
		}
	}
}

func TestRun_PrintsSummary(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "-o", dir)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, s := range []string{"Done!", dir, assets.PromoFile, assets.ScreenshotFile} {
		if !strings.Contains(out, s) {
			t.Errorf("summary %q does not mention %q", out, s)
		}
	}
}

func TestRun_ConfigOutputDir(t *testing.T) {
	base := t.TempDir()
	dir := filepath.Join(base, "from-config")
	cfg := filepath.Join(base, "assets.toml")
	if err := os.WriteFile(cfg, []byte("output_dir = \""+filepath.ToSlash(dir)+"\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := execute(t, "--config", cfg); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, assets.PromoFile)); err != nil {
		t.Errorf("promo not written to config output_dir: %v", err)
	}
}

func TestRun_Errors(t *testing.T) {
	base := t.TempDir()
	blocker := filepath.Join(base, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	badConfig := filepath.Join(base, "bad.toml")
	if err := os.WriteFile(badConfig, []byte("output_dir = [\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		args []string
	}{
		{"positional argument", []string{"extra"}},
		{"unknown flag", []string{"--size", "10"}},
		{"missing config", []string{"-c", filepath.Join(base, "missing.toml")}},
		{"malformed config", []string{"-c", badConfig}},
		{"output under a regular file", []string{"-o", filepath.Join(blocker, "assets")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := execute(t, tt.args...); err == nil {
				t.Error("execute succeeded; want error")
			}
		})
	}
}
