package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/papapumpkin/sprout/internal/catalog"
	"github.com/papapumpkin/sprout/internal/export"
)

// Output modes.
const (
	OutputTerminal = "terminal"
	OutputFile     = "file"
	OutputBoth     = "both"
)

// Validation errors.
var (
	ErrInvalidGeometry = errors.New("canvas width and height must be at least 1")
	ErrInvalidSpeed    = errors.New("growth speed must be finite and not negative")
	ErrInvalidOutput   = errors.New("output format must be terminal, file, or both")
	ErrInvalidCatalog  = errors.New("catalog must be registry or builtin")
)

// Config holds the settings for one growth run. Values are populated from
// a JSON config file, SPROUT_* env vars, and CLI flags.
type Config struct {
	GrowthSpeed  float64 `mapstructure:"growth_speed"`
	CanvasWidth  int     `mapstructure:"canvas_width"`
	CanvasHeight int     `mapstructure:"canvas_height"`
	Variety      string  `mapstructure:"variety"`
	ShowColors   bool    `mapstructure:"show_colors"`
	OutputFormat string  `mapstructure:"output_format"`
	OutputFile   string  `mapstructure:"output_file"`
	Catalog      string  `mapstructure:"catalog"`
	VarietyPack  string  `mapstructure:"variety_pack"`
	JournalFile  string  `mapstructure:"journal_file"`
	Verbose      bool    `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags. Values of the wrong
// type are reported as an error.
func Load() (Config, error) {
	viper.SetDefault("growth_speed", 2.0)
	viper.SetDefault("canvas_width", 40)
	viper.SetDefault("canvas_height", 20)
	viper.SetDefault("variety", catalog.FallbackVariety)
	viper.SetDefault("show_colors", true)
	viper.SetDefault("output_format", OutputTerminal)
	viper.SetDefault("output_file", "")
	viper.SetDefault("catalog", catalog.SourceRegistry)
	viper.SetDefault("variety_pack", "")
	viper.SetDefault("journal_file", "")
	viper.SetDefault("verbose", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	return cfg, nil
}

// ReadFile loads a JSON config file into viper. An explicit path that does
// not exist is ignored. With no path, .sprout.json is looked up in the
// working directory and then the home directory; not finding one is fine.
// A file that exists but cannot be parsed is an error.
func ReadFile(path string) error {
	viper.SetConfigType("json")
	if path != "" {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigName(".sprout")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", viper.ConfigFileUsed(), err)
	}
	return nil
}

// Validate rejects settings the renderer cannot honor.
func (c Config) Validate() error {
	if c.CanvasWidth < 1 || c.CanvasHeight < 1 {
		return fmt.Errorf("%w (got %dx%d)", ErrInvalidGeometry, c.CanvasWidth, c.CanvasHeight)
	}
	if c.GrowthSpeed < 0 || math.IsNaN(c.GrowthSpeed) || math.IsInf(c.GrowthSpeed, 0) {
		return fmt.Errorf("%w (got %g)", ErrInvalidSpeed, c.GrowthSpeed)
	}
	switch c.OutputFormat {
	case OutputTerminal, OutputFile, OutputBoth:
	default:
		return fmt.Errorf("%w (got %q)", ErrInvalidOutput, c.OutputFormat)
	}
	switch strings.ToLower(c.Catalog) {
	case catalog.SourceRegistry, catalog.SourceBuiltin:
	default:
		return fmt.Errorf("%w (got %q)", ErrInvalidCatalog, c.Catalog)
	}
	return nil
}

// Terminal reports whether frames are shown on the terminal.
func (c Config) Terminal() bool {
	return c.OutputFormat == OutputTerminal || c.OutputFormat == OutputBoth
}

// File reports whether frames are exported to a file.
func (c Config) File() bool {
	return c.OutputFormat == OutputFile || c.OutputFormat == OutputBoth
}

// OutputPath returns the export path, falling back to export.DefaultPath.
func (c Config) OutputPath() string {
	if c.OutputFile == "" {
		return export.DefaultPath
	}
	return c.OutputFile
}

// Delay is the pause between stages.
func (c Config) Delay() time.Duration {
	return time.Duration(c.GrowthSpeed * float64(time.Second))
}
