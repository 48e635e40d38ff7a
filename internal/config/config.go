// Package config loads the optional settings file. Settings only decide
// where images are written and which font files are used; layouts are fixed.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/hrko/store-assets/pkg/graphics"
)

const DefaultOutputDir = "docs/assets"

const fontDir = "/usr/share/fonts/truetype/dejavu/"

type Config struct {
	OutputDir string             `toml:"output_dir"`
	Fonts     graphics.FontPaths `toml:"fonts"`
}

// Default returns the built-in settings: DejaVu fonts from the usual Linux
// location and docs/assets as the output directory.
func Default() Config {
	return Config{
		OutputDir: DefaultOutputDir,
		Fonts: graphics.FontPaths{
			Regular: fontDir + "DejaVuSans.ttf",
			Bold:    fontDir + "DejaVuSans-Bold.ttf",
			Mono:    fontDir + "DejaVuSansMono.ttf",
		},
	}
}

// Load reads the TOML file at path on top of Default. An empty path returns
// the defaults. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("parse config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.OutputDir) == "" {
		return errors.New("output_dir must not be empty")
	}
	return nil
}
