package hal

import (
	"image"
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	for _, c := range []Color{White, Black, Red, Yellow} {
		got, ok := ParseColor(c.String())
		if !ok || got != c {
			t.Fatalf("ParseColor(%q) = %v, %v", c.String(), got, ok)
		}
	}
	if _, ok := ParseColor("green"); ok {
		t.Fatal("ParseColor(green) succeeded")
	}
}

func TestInksFor(t *testing.T) {
	if got := inksFor(Black); len(got) != 2 {
		t.Fatalf("mono inks = %v", got)
	}
	got := inksFor(Red)
	if len(got) != 3 || got[0] != White || got[2] != Red {
		t.Fatalf("red inks = %v", got)
	}
}

func TestQuantizeSnapsToInks(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 1))
	src.Set(0, 0, color.RGBA{R: 0xF0, G: 0xF0, B: 0xF0, A: 0xFF}) // near white
	src.Set(1, 0, color.RGBA{R: 0x20, G: 0x10, B: 0x10, A: 0xFF}) // near black
	src.Set(2, 0, color.RGBA{R: 0xD0, G: 0x20, B: 0x20, A: 0xFF}) // near red

	inks := inksFor(Red)
	p := quantize(src, src.Bounds(), inks)

	want := []Color{White, Black, Red}
	for x, w := range want {
		if got := inkAt(p, inks, x, 0); got != w {
			t.Fatalf("pixel %d = %v, want %v", x, got, w)
		}
	}
}

func TestQuantizeCropsToBounds(t *testing.T) {
	src := image.NewPaletted(image.Rect(0, 0, 10, 10), Palette([]Color{White, Black}))
	p := quantize(src, image.Rect(0, 0, 4, 2), []Color{White, Black})
	if got := p.Bounds(); got != image.Rect(0, 0, 4, 2) {
		t.Fatalf("bounds = %v", got)
	}
}
