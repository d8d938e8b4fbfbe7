package fonts

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sort"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freesans"
)

var builtins = map[string]*tinyfont.Font{
	"freesans9":       &freesans.Regular9pt7b,
	"freesans12":      &freesans.Regular12pt7b,
	"freesans18":      &freesans.Regular18pt7b,
	"freesans24":      &freesans.Regular24pt7b,
	"freesans-bold9":  &freesans.Bold9pt7b,
	"freesans-bold12": &freesans.Bold12pt7b,
	"freesans-bold18": &freesans.Bold18pt7b,
	"freesans-bold24": &freesans.Bold24pt7b,
}

// metricsSample covers the glyphs a clock face draws.
const metricsSample = "0123456789/:-ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// Builtin returns a tinyfont bitmap face by name.
func Builtin(name string) (Face, error) {
	f, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFont, name)
	}
	return NewTiny(f), nil
}

// BuiltinNames lists the names accepted by Builtin, sorted.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewTiny adapts any tinyfont font.
func NewTiny(f tinyfont.Fonter) Face {
	t := &tinyFace{font: f}
	t.metrics = t.computeMetrics()
	return t
}

type tinyFace struct {
	font    tinyfont.Fonter
	metrics Metrics
}

// computeMetrics scans glyph headers: ascent is the highest glyph top above
// the baseline, descent the lowest bottom below it.
func (t *tinyFace) computeMetrics() Metrics {
	minY, maxY := 0, 0
	for _, r := range metricsSample {
		info := t.font.GetGlyph(r).Info()
		if info.Height == 0 {
			continue
		}
		top := int(info.YOffset)
		bottom := top + int(info.Height)
		if top < minY {
			minY = top
		}
		if bottom > maxY {
			maxY = bottom
		}
	}
	lh := int(t.font.GetYAdvance())
	if lh <= 0 {
		lh = maxY - minY
	}
	return Metrics{Ascent: -minY, Descent: maxY, LineHeight: lh}
}

func (t *tinyFace) Metrics() Metrics { return t.metrics }

func (t *tinyFace) Bounds(line string) image.Rectangle {
	var r image.Rectangle
	x := 0
	for _, c := range line {
		info := t.font.GetGlyph(c).Info()
		if info.Width > 0 && info.Height > 0 {
			g := image.Rect(0, 0, int(info.Width), int(info.Height)).
				Add(image.Pt(x+int(info.XOffset), int(info.YOffset)))
			r = r.Union(g)
		}
		x += int(info.XAdvance)
	}
	return r
}

func (t *tinyFace) Draw(dst draw.Image, pt image.Point, line string, c color.Color) {
	d := displayer{dst: dst}
	tinyfont.WriteLine(d, t.font, int16(pt.X), int16(pt.Y), line, toRGBA(c))
}

// displayer lets tinyfont draw into an image.
type displayer struct {
	dst draw.Image
}

func (d displayer) Size() (x, y int16) {
	b := d.dst.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (d displayer) SetPixel(x, y int16, c color.RGBA) {
	p := image.Pt(int(x), int(y))
	if !p.In(d.dst.Bounds()) {
		return
	}
	d.dst.Set(p.X, p.Y, c)
}

func (d displayer) Display() error { return nil }

func toRGBA(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}
