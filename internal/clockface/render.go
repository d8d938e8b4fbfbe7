package clockface

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"inkclock/internal/fonts"
)

var ErrRotation = errors.New("rotation must be 0, 90, 180 or 270")

// ValidRotation reports whether deg is a supported quarter turn.
func ValidRotation(deg int) bool {
	switch deg {
	case 0, 90, 180, 270:
		return true
	}
	return false
}

// Renderer draws text centered on a paletted canvas.
type Renderer struct {
	Face    fonts.Face
	Spacing int
	Align   Align
	// Rotation turns the finished canvas counter-clockwise, in degrees.
	// Quarter turns lay the text out on the transposed canvas.
	Rotation int
	// Palette must hold Background and Foreground; index 0 fills the canvas.
	Palette    color.Palette
	Foreground color.Color
}

// Origin lays out text and returns the offset to add to its baselines so
// that its ink is centered on a canvas of the given size. Unlike placing the
// layout box at ((W-w)/2, (H-h)/2) and drawing from there, this subtracts
// the ink box origin, so side bearings and ascender slack do not shift the
// text; lines step by the face's line height rather than a glyph height.
func (r *Renderer) Origin(canvas image.Point, text string) (image.Point, Block) {
	b := Measure(r.Face, text, r.Spacing, r.Align)
	topLeft := Center(canvas, b.Ink.Size())
	return topLeft.Sub(b.Ink.Min), b
}

// Render returns a frame of the given size with text centered on it.
func (r *Renderer) Render(size image.Point, text string) (*image.Paletted, error) {
	if !ValidRotation(r.Rotation) {
		return nil, fmt.Errorf("%w: %d", ErrRotation, r.Rotation)
	}
	if len(r.Palette) == 0 {
		return nil, errors.New("clockface: empty palette")
	}

	canvas := size
	if r.Rotation == 90 || r.Rotation == 270 {
		canvas = image.Pt(size.Y, size.X)
	}
	img := image.NewPaletted(image.Rectangle{Max: canvas}, r.Palette)

	off, b := r.Origin(canvas, text)
	for i, line := range b.Lines {
		r.Face.Draw(img, b.Baselines[i].Add(off), line, r.Foreground)
	}
	return rotate(img, r.Rotation), nil
}

// rotate turns img counter-clockwise by deg.
func rotate(src *image.Paletted, deg int) *image.Paletted {
	if deg == 0 {
		return src
	}
	sw, sh := src.Rect.Dx(), src.Rect.Dy()
	dw, dh := sw, sh
	if deg != 180 {
		dw, dh = sh, sw
	}
	dst := image.NewPaletted(image.Rect(0, 0, dw, dh), src.Palette)
	for y := 0; y < dh; y++ {
		for x := 0; x < dw; x++ {
			var sx, sy int
			switch deg {
			case 90:
				sx, sy = sw-1-y, x
			case 180:
				sx, sy = sw-1-x, sh-1-y
			case 270:
				sx, sy = y, sh-1-x
			}
			dst.SetColorIndex(x, y, src.ColorIndexAt(sx, sy))
		}
	}
	return dst
}
