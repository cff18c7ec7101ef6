package cui

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config configures a Context and the Run driver.
type Config struct {
	// Title is the window title used by Run.
	Title string `yaml:"title" toml:"title"`
	// Width and Height are the initial window size used by Run.
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
	// ShowFPS prints the frame rate in the corner of the window.
	ShowFPS bool `yaml:"show_fps" toml:"show_fps"`
	// FontSize is the size in pixels of the default face used by Run.
	FontSize float64 `yaml:"font_size" toml:"font_size"`
	// Margin insets the base viewport from the surface edges. A negative
	// margin selects a random margin fixed for the life of the process.
	Margin float64 `yaml:"margin" toml:"margin"`
	// Debug enables [cui] diagnostics on stderr.
	Debug bool `yaml:"debug" toml:"debug"`
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string `yaml:"screenshot_dir" toml:"screenshot_dir"`
	// TestScript is the path of a JSON test script Run attaches at start.
	TestScript string `yaml:"test_script" toml:"test_script"`
	// BaseStyle is layered over DefaultStyle to form the base overlay.
	BaseStyle Rules `yaml:"-" toml:"-"`
}

// processMargin is the base viewport margin chosen once per process.
var processMargin = float64(8 + rand.IntN(17))

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Title:         "cui",
		Width:         640,
		Height:        480,
		FontSize:      16,
		Margin:        -1,
		ScreenshotDir: "screenshots",
	}
}

// margin resolves the configured margin.
func (cfg Config) margin() float64 {
	if cfg.Margin < 0 {
		return processMargin
	}
	return cfg.Margin
}

// LoadConfig reads a YAML (.yaml, .yml) or TOML (.toml) file over
// DefaultConfig. A missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	var unmarshal func([]byte, any) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		unmarshal = yaml.Unmarshal
	case ".toml":
		unmarshal = toml.Unmarshal
	default:
		return cfg, fmt.Errorf("cui: unsupported config format %q", filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("cui: failed to read %s: %w", path, err)
	}
	if err := unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("cui: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}
