//go:build tinygo

package main

import (
	"context"
	"time"

	"inkclock/app"
	"inkclock/hal"
	"inkclock/internal/clockface"
	"inkclock/internal/fonts"
	"inkclock/internal/logger"
)

func main() {
	h := hal.New()

	log, err := logger.New("inkclock", nil, h.Logger())
	if err != nil {
		halt(h, err.Error())
	}
	face, err := fonts.Builtin("freesans-bold18")
	if err != nil {
		log.Warn("builtin font unavailable, using default", "err", err)
		face = fonts.Default()
	}

	r := &clockface.Renderer{
		Face:       face,
		Spacing:    clockface.DefaultSpacing,
		Palette:    hal.Palette(h.Panel().Colors()),
		Foreground: hal.Black.RGBA(),
	}
	c := app.New(h.Panel(), r, h.Clock(), log, app.Config{Layout: "%a %d %b\n%H:%M"})
	if err := c.Run(context.Background()); err != nil {
		log.Error("clock stopped", "err", err)
	}
	halt(h, "halted")
}

// halt parks the board; the last frame stays on the glass.
func halt(h hal.HAL, msg string) {
	h.Logger().WriteLineString(msg)
	for {
		time.Sleep(time.Hour)
	}
}
