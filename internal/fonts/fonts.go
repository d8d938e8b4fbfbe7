// Package fonts loads the faces the clock face is drawn with.
//
// Two families are supported behind one interface: scalable TrueType/OpenType
// files rendered through golang.org/x/image, and the fixed bitmap fonts of
// tinyfont, which also build for microcontrollers.
package fonts

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
)

// DefaultPath is where Debian-based images ship DejaVu.
const DefaultPath = "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf"

var (
	ErrNoPath      = errors.New("no font path")
	ErrUnknownFont = errors.New("unknown builtin font")
	ErrInvalidSize = errors.New("invalid font size")
)

// Metrics are whole-pixel vertical metrics of a face.
type Metrics struct {
	Ascent     int
	Descent    int
	LineHeight int
}

// Face measures and draws single lines of text.
type Face interface {
	Metrics() Metrics
	// Bounds returns the ink box of line relative to its baseline origin.
	// An empty or all-blank line has an empty box.
	Bounds(line string) image.Rectangle
	// Draw renders line with its baseline origin at pt.
	Draw(dst draw.Image, pt image.Point, line string, c color.Color)
}
