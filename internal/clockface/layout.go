package clockface

import (
	"fmt"
	"image"
	"strings"

	"inkclock/internal/fonts"
)

// DefaultSpacing is the extra gap between lines, in pixels.
const DefaultSpacing = 4

// Align positions lines of different width inside a block.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// ParseAlign maps a config name to an Align.
func ParseAlign(s string) (Align, error) {
	switch s {
	case "", "left":
		return AlignLeft, nil
	case "center":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	}
	return AlignLeft, fmt.Errorf("unknown alignment %q", s)
}

// Block is text laid out from a top-left origin at (0, 0).
type Block struct {
	Lines []string
	// Baselines holds the baseline origin of each line.
	Baselines []image.Point
	// Ink is the union of the lines' ink boxes.
	Ink image.Rectangle
}

// Measure lays out text, one line per "\n". Line i sits on the baseline
// Ascent + i*(LineHeight+spacing).
func Measure(face fonts.Face, text string, spacing int, align Align) Block {
	m := face.Metrics()
	lines := strings.Split(text, "\n")

	widths := make([]int, len(lines))
	maxW := 0
	for i, line := range lines {
		widths[i] = face.Bounds(line).Max.X
		if widths[i] > maxW {
			maxW = widths[i]
		}
	}

	b := Block{
		Lines:     lines,
		Baselines: make([]image.Point, len(lines)),
	}
	for i, line := range lines {
		x := 0
		switch align {
		case AlignCenter:
			x = floorDiv(maxW-widths[i], 2)
		case AlignRight:
			x = maxW - widths[i]
		}
		pt := image.Pt(x, m.Ascent+i*(m.LineHeight+spacing))
		b.Baselines[i] = pt
		b.Ink = b.Ink.Union(face.Bounds(line).Add(pt))
	}
	return b
}

// Center returns the top-left corner that centers a box of the given size
// on the canvas. Division floors, so overflowing text goes negative.
func Center(canvas image.Point, box image.Point) image.Point {
	return image.Pt(floorDiv(canvas.X-box.X, 2), floorDiv(canvas.Y-box.Y, 2))
}
