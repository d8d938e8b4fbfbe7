//go:build !tinygo && cgo

package hal

import (
	"context"
	"errors"

	"inkclock/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/sync/errgroup"
)

const (
	windowScale = 3
	// windowMargin is the border drawn around the panel, in panel pixels.
	windowMargin = 4
)

type windowPanel struct {
	*hostFramebuffer
	title string
}

func openWindow(opts Options) (Panel, error) {
	title := opts.Title
	if title == "" {
		title = "inkclock"
	}
	return &windowPanel{
		hostFramebuffer: newHostFramebuffer(opts.Width, opts.Height, opts.Accent),
		title:           title + " (" + buildinfo.Short() + ")",
	}, nil
}

func (p *windowPanel) Name() string { return BackendWindow }

func (p *windowPanel) Show() error {
	_, _, err := p.present()
	return err
}

// runLoop opens the preview window on the calling goroutine and runs fn
// beside it. Closing the window cancels fn; fn returning closes the window.
func (p *windowPanel) runLoop(ctx context.Context, fn func(context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	finished := make(chan struct{})
	g.Go(func() error {
		defer close(finished)
		return fn(gctx)
	})

	game := &windowGame{p: p, finished: finished}
	ebiten.SetWindowTitle(p.title)
	w, h := game.Layout(0, 0)
	ebiten.SetWindowSize(w*windowScale, h*windowScale)
	ebiten.SetTPS(10)
	runErr := ebiten.RunGame(game)

	cancel()
	if err := g.Wait(); err != nil {
		return err
	}
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		return runErr
	}
	return nil
}

type windowGame struct {
	p        *windowPanel
	finished <-chan struct{}
	img      *ebiten.Image
	seq      uint64
}

func (g *windowGame) Update() error {
	select {
	case <-g.finished:
		return ebiten.Termination
	default:
		return nil
	}
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	screen.Fill(g.p.Border().RGBA())

	frame, seq := g.p.snapshot()
	if frame == nil {
		return
	}
	if g.img == nil || seq != g.seq {
		if g.img != nil {
			g.img.Deallocate()
		}
		g.img = ebiten.NewImageFromImage(frame)
		g.seq = seq
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(windowMargin, windowMargin)
	screen.DrawImage(g.img, op)
}

func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.p.bounds.Dx() + 2*windowMargin, g.p.bounds.Dy() + 2*windowMargin
}
