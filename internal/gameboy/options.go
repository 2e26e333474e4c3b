package gameboy

import (
	"github.com/thelolagemann/dmgcore/internal/config"
	"github.com/thelolagemann/dmgcore/internal/ppu/palette"
	"github.com/thelolagemann/dmgcore/pkg/log"
)

// Opt is a function that modifies a GameBoy
// instance.
type Opt func(gb *GameBoy)

// WithLogger sets the logger shared by every component.
func WithLogger(log log.Logger) Opt {
	return func(gb *GameBoy) {
		gb.Logger = log
	}
}

// WithConfig applies cfg. Unless WithLogger is also given, a logger
// at the configured level is created, and unless WithPalette is
// given the configured palette is used.
func WithConfig(cfg config.Config) Opt {
	return func(gb *GameBoy) {
		gb.config = cfg
		gb.configured = true
	}
}

// WithPalette sets the palette used for screenshots.
func WithPalette(p palette.Palette) Opt {
	return func(gb *GameBoy) {
		gb.palette = p
		gb.paletteSet = true
	}
}
