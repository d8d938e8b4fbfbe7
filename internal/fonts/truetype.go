package fonts

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DefaultDPI makes the point size equal the pixel size.
const DefaultDPI = 72

// LoadTrueType parses a TrueType/OpenType file into a face of size pixels.
func LoadTrueType(path string, size, dpi float64) (Face, error) {
	if path == "" {
		return nil, ErrNoPath
	}
	if size <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font %q: %w", path, err)
	}
	return ParseTrueType(data, size, dpi)
}

// ParseTrueType builds a face from font file contents.
func ParseTrueType(data []byte, size, dpi float64) (Face, error) {
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &xFace{face: truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})}, nil
}

// Load returns the TrueType face at path. On any failure it returns the
// default face, fallback set and the cause in err so the caller can log it.
func Load(path string, size float64) (face Face, fallback bool, err error) {
	face, err = LoadTrueType(path, size, DefaultDPI)
	if err != nil {
		return Default(), true, err
	}
	return face, false, nil
}

// Default is the built-in 7x13 bitmap face.
func Default() Face {
	return &xFace{face: basicfont.Face7x13}
}

// xFace adapts an x/image font.Face. Not safe for concurrent use.
type xFace struct {
	face font.Face
}

func (f *xFace) Metrics() Metrics {
	m := f.face.Metrics()
	return Metrics{
		Ascent:     m.Ascent.Ceil(),
		Descent:    m.Descent.Ceil(),
		LineHeight: m.Height.Ceil(),
	}
}

func (f *xFace) Bounds(line string) image.Rectangle {
	b, _ := font.BoundString(f.face, line)
	r := image.Rect(b.Min.X.Floor(), b.Min.Y.Floor(), b.Max.X.Ceil(), b.Max.Y.Ceil())
	if r.Empty() {
		return image.Rectangle{}
	}
	return r
}

func (f *xFace) Draw(dst draw.Image, pt image.Point, line string, c color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: f.face,
		Dot:  fixed.P(pt.X, pt.Y),
	}
	d.DrawString(line)
}
