package hal

import (
	"errors"
	"image"
	"image/color"
	"time"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var (
	ErrNoImage   = errors.New("no image set")
	ErrClosed    = errors.New("panel closed")
	ErrNoDisplay = errors.New("no inky display detected")
)

// Color is an ink the panel can show.
type Color uint8

const (
	White Color = iota
	Black
	Red
	Yellow
)

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	case Red:
		return "red"
	case Yellow:
		return "yellow"
	default:
		return "unknown"
	}
}

// RGBA returns the on-screen approximation of the ink.
func (c Color) RGBA() color.RGBA {
	switch c {
	case Black:
		return color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	case Red:
		return color.RGBA{R: 0xC8, G: 0x1E, B: 0x1E, A: 0xFF}
	case Yellow:
		return color.RGBA{R: 0xE6, G: 0xC8, B: 0x1E, A: 0xFF}
	default:
		return color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	}
}

// ParseColor maps a config name to a Color.
func ParseColor(s string) (Color, bool) {
	switch s {
	case "white":
		return White, true
	case "black":
		return Black, true
	case "red":
		return Red, true
	case "yellow":
		return Yellow, true
	}
	return White, false
}

// Panel is a paletted e-paper display.
//
// SetImage copies the image; Show pushes the last image set to the glass.
type Panel interface {
	Name() string
	Bounds() image.Rectangle
	// Colors lists the inks the panel can show, background first.
	Colors() []Color
	SetBorder(c Color) error
	SetImage(img image.Image) error
	Show() error
	Close() error
}

// Clock provides the wall time.
type Clock interface {
	Now() time.Time
}

// HAL provides the only contact point between the program and the device.
type HAL interface {
	Logger() Logger
	Panel() Panel
	Clock() Clock
	Close() error
}
