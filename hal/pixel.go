package hal

import (
	"image"
	"image/color"
	"image/draw"
)

// Palette returns the color palette for a set of inks, in order.
func Palette(inks []Color) color.Palette {
	pal := make(color.Palette, 0, len(inks))
	for _, c := range inks {
		pal = append(pal, c.RGBA())
	}
	return pal
}

// quantize copies img into a paletted frame of the given bounds. Pixels are
// snapped to the nearest ink without dithering: text must stay crisp.
func quantize(img image.Image, bounds image.Rectangle, inks []Color) *image.Paletted {
	dst := image.NewPaletted(bounds, Palette(inks))
	draw.Draw(dst, bounds, img, img.Bounds().Min, draw.Src)
	return dst
}

// inkAt returns the ink of a paletted frame at (x, y).
func inkAt(p *image.Paletted, inks []Color, x, y int) Color {
	i := int(p.ColorIndexAt(x, y))
	if i < 0 || i >= len(inks) {
		return inks[0]
	}
	return inks[i]
}

func inksFor(accent Color) []Color {
	if accent == Red || accent == Yellow {
		return []Color{White, Black, accent}
	}
	return []Color{White, Black}
}
