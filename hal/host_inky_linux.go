//go:build linux && !tinygo

package hal

import (
	"context"
	"fmt"
	"image"
	"sync"

	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/inky"
	"periph.io/x/host/v3"
)

// Pimoroni HAT wiring (BCM numbering).
const (
	inkySPIPort = "SPI0.0"
	inkyDCPin   = "GPIO22"
	inkyRSTPin  = "GPIO27"
	inkyBusyPin = "GPIO17"
)

type inkyPanel struct {
	mu      sync.Mutex
	dev     *inky.Dev
	port    spi.PortCloser
	model   string
	inks    []Color
	pending *image.Paletted
	closed  bool
}

func openInky(ctx context.Context, opts Options) (Panel, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("inky: periph host init: %w", err)
	}

	o, err := inkyOpts(opts)
	if err != nil {
		return nil, err
	}

	dc := gpioreg.ByName(inkyDCPin)
	reset := gpioreg.ByName(inkyRSTPin)
	busy := gpioreg.ByName(inkyBusyPin)
	if dc == nil || reset == nil || busy == nil {
		return nil, fmt.Errorf("inky: gpio %s/%s/%s not found", inkyDCPin, inkyRSTPin, inkyBusyPin)
	}

	port, err := spireg.Open(inkySPIPort)
	if err != nil {
		return nil, fmt.Errorf("inky: open %s: %w", inkySPIPort, err)
	}

	dev, err := inky.New(port, dc, reset, busy, o)
	if err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("inky: %w", err)
	}

	return &inkyPanel{
		dev:   dev,
		port:  port,
		model: modelName(o.Model),
		inks:  inksFor(fromInkyColor(o.ModelColor)),
	}, nil
}

// inkyOpts reads the HAT EEPROM unless a model is forced by config.
func inkyOpts(opts Options) (*inky.Opts, error) {
	if opts.Model != "" && opts.Model != "auto" {
		return forcedInkyOpts(opts.Model, opts.Accent)
	}
	bus, err := i2creg.Open("")
	if err != nil {
		return nil, fmt.Errorf("%w: open i2c: %v", ErrNoDisplay, err)
	}
	defer bus.Close()
	o, err := inky.DetectOpts(bus)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoDisplay, err)
	}
	o.BorderColor = inky.White
	return o, nil
}

// forcedInkyOpts builds options for a model named in config. The driver
// only takes black, red or yellow as the model colour.
func forcedInkyOpts(model string, accent Color) (*inky.Opts, error) {
	o := &inky.Opts{ModelColor: modelColor(accent), BorderColor: inky.White}
	switch model {
	case "phat":
		o.Model = inky.PHAT
	case "phat2":
		o.Model = inky.PHAT2
	case "what":
		o.Model = inky.WHAT
	default:
		return nil, fmt.Errorf("inky: unknown model %q", model)
	}
	return o, nil
}

func modelName(m inky.Model) string {
	switch m {
	case inky.PHAT:
		return "phat"
	case inky.PHAT2:
		return "phat2"
	case inky.WHAT:
		return "what"
	default:
		return "unknown"
	}
}

// modelColor maps an accent to a model colour; white means mono glass.
func modelColor(c Color) inky.Color {
	switch c {
	case Red:
		return inky.Red
	case Yellow:
		return inky.Yellow
	default:
		return inky.Black
	}
}

func toInkyColor(c Color) inky.Color {
	switch c {
	case Red:
		return inky.Red
	case Yellow:
		return inky.Yellow
	case White:
		return inky.White
	default:
		return inky.Black
	}
}

func fromInkyColor(c inky.Color) Color {
	switch c {
	case inky.Red:
		return Red
	case inky.Yellow:
		return Yellow
	case inky.White:
		return White
	default:
		return Black
	}
}

func (p *inkyPanel) Name() string { return BackendInky + "/" + p.model }

func (p *inkyPanel) Bounds() image.Rectangle { return p.dev.Bounds() }

func (p *inkyPanel) Colors() []Color {
	out := make([]Color, len(p.inks))
	copy(out, p.inks)
	return out
}

// SetBorder takes effect on the next Show.
func (p *inkyPanel) SetBorder(c Color) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrClosed
	}
	p.dev.SetBorder(toInkyColor(c))
	return nil
}

func (p *inkyPanel) SetImage(img image.Image) error {
	if img == nil {
		return ErrNoImage
	}
	frame := quantize(img, p.dev.Bounds(), p.inks)

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrClosed
	}
	p.pending = frame
	return nil
}

// Show blocks for the full refresh cycle of the panel (several seconds on
// tri-color glass).
func (p *inkyPanel) Show() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrClosed
	}
	if p.pending == nil {
		return ErrNoImage
	}
	if err := p.dev.Draw(p.dev.Bounds(), p.pending, image.Point{}); err != nil {
		return fmt.Errorf("inky: draw: %w", err)
	}
	return nil
}

func (p *inkyPanel) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	err := p.dev.Halt()
	if cerr := p.port.Close(); err == nil {
		err = cerr
	}
	return err
}
