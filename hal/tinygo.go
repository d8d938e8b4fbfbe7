//go:build tinygo && baremetal && (badger2040 || badger2040_w)

package hal

import (
	"image"
	"image/color"
	"machine"

	"tinygo.org/x/drivers/uc8151"
)

// New returns a Badger 2040 HAL: UC8151 296x128 mono e-paper on SPI0.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})

	led3v3 := machine.ENABLE_3V3
	led3v3.Configure(machine.PinConfig{Mode: machine.PinOutput})
	led3v3.High()

	machine.SPI0.Configure(machine.SPIConfig{
		Frequency: 12000000,
		SCK:       machine.EPD_SCK_PIN,
		SDO:       machine.EPD_SDO_PIN,
	})

	dev := uc8151.New(machine.SPI0, machine.EPD_CS_PIN, machine.EPD_DC_PIN, machine.EPD_RESET_PIN, machine.EPD_BUSY_PIN)
	dev.Configure(uc8151.Config{
		Speed:       uc8151.MEDIUM,
		Blocking:    true,
		FlickerFree: true,
		Rotation:    uc8151.NO_ROTATION,
	})
	dev.ClearDisplay()

	return &tinyGoHAL{
		logger: &uartLogger{uart: uart},
		panel:  &uc8151Panel{dev: &dev, inks: []Color{White, Black}},
	}
}

type uc8151Panel struct {
	dev     *uc8151.Device
	inks    []Color
	pending *image.Paletted
}

func (p *uc8151Panel) Name() string { return "badger2040" }

func (p *uc8151Panel) Bounds() image.Rectangle {
	w, h := p.dev.Size()
	return image.Rect(0, 0, int(w), int(h))
}

func (p *uc8151Panel) Colors() []Color { return p.inks }

// SetBorder is a no-op: the UC8151 on the Badger has no addressable border.
func (p *uc8151Panel) SetBorder(Color) error { return nil }

func (p *uc8151Panel) SetImage(img image.Image) error {
	if img == nil {
		return ErrNoImage
	}
	p.pending = quantize(img, p.Bounds(), p.inks)
	return nil
}

func (p *uc8151Panel) Show() error {
	if p.pending == nil {
		return ErrNoImage
	}
	b := p.pending.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			p.dev.SetPixel(int16(x), int16(y), uc8151Ink(inkAt(p.pending, p.inks, x, y)))
		}
	}
	return p.dev.Display()
}

// uc8151Ink maps an ink to the driver's convention: zero is white paper,
// anything else is black.
func uc8151Ink(c Color) color.RGBA {
	if c == White {
		return color.RGBA{}
	}
	return color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
}

// Close leaves the last frame on the glass; e-paper holds it unpowered.
func (p *uc8151Panel) Close() error { return nil }
