// Package gameboy provides an emulation of a Nintendo Game Boy.
package gameboy

import (
	"errors"
	"fmt"
	"io"

	"github.com/thelolagemann/dmgcore/internal/cartridge"
	"github.com/thelolagemann/dmgcore/internal/config"
	"github.com/thelolagemann/dmgcore/internal/cpu"
	"github.com/thelolagemann/dmgcore/internal/interrupts"
	"github.com/thelolagemann/dmgcore/internal/mmu"
	"github.com/thelolagemann/dmgcore/internal/ppu"
	"github.com/thelolagemann/dmgcore/internal/ppu/palette"
	"github.com/thelolagemann/dmgcore/internal/timer"
	"github.com/thelolagemann/dmgcore/pkg/log"
	"github.com/thelolagemann/dmgcore/pkg/utils"
)

const (
	// ClockSpeed is the clock speed of the Game Boy.
	ClockSpeed = cpu.ClockSpeed // 4.194304 MHz
	// CyclesPerFrame is the number of clock cycles per frame.
	CyclesPerFrame = config.DefaultFrameCycleLimit // 4194304 / 59.7
)

// ErrInvalidHeader is returned for a cartridge whose header
// checksum does not match, when the header is checked strictly.
var ErrInvalidHeader = errors.New("gameboy: invalid cartridge header")

// GameBoy represents a Game Boy. It contains all the components of the Game Boy.
// It is the main entry point for the emulator.
type GameBoy struct {
	CPU        *cpu.CPU
	MMU        *mmu.MMU
	PPU        *ppu.PPU
	Timer      *timer.Controller
	Interrupts *interrupts.Service

	log.Logger

	config     config.Config
	configured bool
	palette    palette.Palette
	paletteSet bool
}

// NewGameBoy returns a new GameBoy running rom, in the state left
// behind by the boot ROM.
func NewGameBoy(rom []byte, opts ...Opt) (*GameBoy, error) {
	g := &GameBoy{
		config:  config.Default(),
		palette: palette.Palettes[palette.Greyscale],
	}
	for _, opt := range opts {
		opt(g)
	}
	if err := g.applyConfig(); err != nil {
		return nil, err
	}

	cart, err := cartridge.NewCartridge(rom)
	if err != nil {
		return nil, fmt.Errorf("gameboy: %w", err)
	}
	header := cart.Header()
	if !header.Valid() {
		if g.config.Emulation.StrictHeader {
			return nil, fmt.Errorf("%w: checksum %#02x, expected %#02x", ErrInvalidHeader, header.HeaderChecksum, header.Checksum())
		}
		g.Warnf("gameboy: header checksum %#02x does not match %#02x", header.HeaderChecksum, header.Checksum())
	}
	if !header.CartridgeType.Supported() {
		g.Warnf("gameboy: unknown cartridge type %s, running as ROM only", header.CartridgeType)
	}
	g.Infof("gameboy: loaded %s", header)

	g.MMU = mmu.NewMMU(cart, g.Logger)
	g.Interrupts = interrupts.NewService(g.MMU)
	g.PPU = ppu.New(g.MMU, g.Interrupts)
	g.Timer = timer.NewController(g.MMU, g.Interrupts)
	g.CPU = cpu.NewCPU(g.MMU, g.Interrupts, clock{g.Timer, g.PPU}, g.Logger)

	return g, nil
}

// Load returns a new GameBoy running the ROM at path, which may be
// compressed or archived.
func Load(path string, opts ...Opt) (*GameBoy, error) {
	rom, err := utils.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return NewGameBoy(rom, opts...)
}

// clock forwards the cycles of every CPU step to each component
// that keeps time with it.
type clock []cpu.Ticker

func (c clock) Tick(cycles uint8) {
	for _, t := range c {
		t.Tick(cycles)
	}
}

func (g *GameBoy) applyConfig() error {
	if !g.configured {
		if g.Logger == nil {
			g.Logger = log.NewNullLogger()
		}
		return nil
	}

	if err := g.config.Validate(); err != nil {
		return err
	}
	if g.Logger == nil {
		l, err := log.NewWithLevel(g.config.Log.Level)
		if err != nil {
			return err
		}
		g.Logger = l
	}
	if !g.paletteSet {
		g.palette, _ = palette.ByName(g.config.Video.Palette)
	}
	return nil
}

// Step executes a single instruction, and returns the cycles it
// took.
func (g *GameBoy) Step() (uint8, error) {
	return g.CPU.Step()
}

// Frame runs the Game Boy until the PPU completes a frame, or the
// frame cycle limit is reached, whichever comes first. The latter
// happens while the display is disabled. It returns the last
// completed frame.
func (g *GameBoy) Frame() (*ppu.FrameBuffer, error) {
	limit := uint64(g.config.Emulation.FrameCycleLimit)
	start := g.CPU.Cycles
	for g.CPU.Cycles-start < limit {
		if _, err := g.CPU.Step(); err != nil {
			return nil, err
		}
		if g.PPU.FrameReady() {
			break
		}
	}
	return g.PPU.Frame(), nil
}

// Screenshot writes the last completed frame to w as a PNG, in the
// configured palette and scale.
func (g *GameBoy) Screenshot(w io.Writer) error {
	img := utils.FrameImage(g.PPU.Frame(), g.palette, g.config.Video.Scale)
	return utils.EncodePNG(w, img)
}

// Palette returns the palette used for screenshots.
func (g *GameBoy) Palette() palette.Palette {
	return g.palette
}
