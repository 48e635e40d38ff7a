package main

import (
	"context"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"

	"github.com/hrko/store-assets/internal/assets"
	"github.com/hrko/store-assets/internal/config"
	"github.com/hrko/store-assets/pkg/graphics"
)

// generate renders every asset into cfg.OutputDir, replacing files from
// earlier runs, and prints a summary to out.
func generate(ctx context.Context, cfg config.Config, logger *log.Logger, out io.Writer) error {
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	var written []string
	for _, a := range assets.All() {
		if err := ctx.Err(); err != nil {
			return err
		}

		logger.Infof("Rendering %s (%dx%d)...", a.Name, a.Width, a.Height)
		start := time.Now()

		fonts := graphics.LoadFonts(cfg.Fonts, logger)
		if fonts.Fallback() {
			logger.Warn("no font files found, using the built-in face", "asset", a.Name)
		}
		img := a.Render(fonts)

		path := filepath.Join(cfg.OutputDir, a.Name)
		if err := save(img, path); err != nil {
			return err
		}
		logger.Infof("Saved %s (%s)", path, time.Since(start).Round(time.Millisecond))
		written = append(written, a.Name)
	}

	printSummary(out, cfg.OutputDir, written)
	return nil
}

func save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
