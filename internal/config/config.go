package config

import (
	"fmt"
	"slices"
	"time"

	"inkclock/hal"
	"inkclock/internal/clockface"
	"inkclock/internal/fonts"
	"inkclock/internal/logger"
)

// DefaultMessage is what `show` prints without an argument.
const DefaultMessage = "Hello World"

type Config struct {
	Display DisplayConfig `yaml:"display" envconfig:"DISPLAY"`
	Font    FontConfig    `yaml:"font" envconfig:"FONT"`
	Clock   ClockConfig   `yaml:"clock" envconfig:"CLOCK"`
	Log     logger.Config `yaml:"log" envconfig:"LOG"`
}

type DisplayConfig struct {
	// Backend is auto, inky, headless or window.
	Backend string `yaml:"backend"`
	// Model forces the Inky model (phat, phat2, what) instead of reading
	// the EEPROM.
	Model string `yaml:"model"`
	// Color is the accent ink of tri-color glass; white or black means mono.
	Color  string `yaml:"color"`
	Border string `yaml:"border"`
	// Width and Height size software panels; 0 means 212x104.
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	OutputDir  string `yaml:"output_dir" split_words:"true"`
	KeepFrames bool   `yaml:"keep_frames" split_words:"true"`
}

type FontConfig struct {
	Path string  `yaml:"path"`
	Size float64 `yaml:"size"`
	// MessageSize is used by `show`.
	MessageSize float64 `yaml:"message_size" split_words:"true"`
	// Builtin selects a bitmap font instead of Path.
	Builtin string `yaml:"builtin"`
}

type ClockConfig struct {
	Layout   string        `yaml:"layout"`
	Rotation int           `yaml:"rotation"`
	Align    string        `yaml:"align"`
	Spacing  int           `yaml:"spacing"`
	Poll     time.Duration `yaml:"poll"`
	Message  string        `yaml:"message"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Backend: "auto",
			Model:   "auto",
			Color:   "black",
			Border:  "white",
		},
		Font: FontConfig{
			Path:        fonts.DefaultPath,
			Size:        35,
			MessageSize: 22,
		},
		Clock: ClockConfig{
			Layout:   clockface.DefaultLayout,
			Rotation: 180,
			Align:    "left",
			Spacing:  clockface.DefaultSpacing,
			Poll:     time.Second,
			Message:  DefaultMessage,
		},
		Log: logger.Config{
			Encoding: "console",
			Level:    "info",
		},
	}
}

var (
	backends = []string{"", "auto", "inky", "headless", "window"}
	models   = []string{"", "auto", "phat", "phat2", "what"}
)

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	d := c.Display
	if !slices.Contains(backends, d.Backend) {
		return fmt.Errorf("%w: %q", ErrInvalidBackend, d.Backend)
	}
	if !slices.Contains(models, d.Model) {
		return fmt.Errorf("%w: %q", ErrInvalidModel, d.Model)
	}
	for _, name := range []string{d.Color, d.Border} {
		if _, ok := hal.ParseColor(name); !ok {
			return fmt.Errorf("%w: %q", ErrInvalidColor, name)
		}
	}
	if d.Width < 0 || d.Height < 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, d.Width, d.Height)
	}

	f := c.Font
	if f.Size <= 0 || f.MessageSize <= 0 {
		return fmt.Errorf("%w: %v/%v", ErrInvalidFontSize, f.Size, f.MessageSize)
	}
	if f.Builtin != "" && !slices.Contains(fonts.BuiltinNames(), f.Builtin) {
		return fmt.Errorf("%w: %q", ErrInvalidFont, f.Builtin)
	}

	k := c.Clock
	if k.Layout == "" {
		return ErrEmptyLayout
	}
	if !clockface.ValidRotation(k.Rotation) {
		return fmt.Errorf("%w: %d", ErrInvalidRotation, k.Rotation)
	}
	if _, err := clockface.ParseAlign(k.Align); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidAlign, k.Align)
	}
	if k.Spacing < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSpacing, k.Spacing)
	}
	if k.Poll <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidPoll, k.Poll)
	}

	return c.Log.Validate()
}

// Accent returns the parsed accent ink. Call after Validate.
func (c *Config) Accent() hal.Color {
	col, _ := hal.ParseColor(c.Display.Color)
	return col
}

// BorderColor returns the parsed border ink. Call after Validate.
func (c *Config) BorderColor() hal.Color {
	col, _ := hal.ParseColor(c.Display.Border)
	return col
}
