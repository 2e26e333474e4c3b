// Package ppu provides the Game Boy's (P)ixel (P)rocessing (U)nit: a
// scanline driven mode state machine, clocked by the CPU, that renders
// the background, window and sprite layers into a frame buffer.
package ppu

import (
	"github.com/thelolagemann/dmgcore/internal/interrupts"
	"github.com/thelolagemann/dmgcore/internal/ppu/lcd"
	"github.com/thelolagemann/dmgcore/internal/types"
)

const (
	// ScreenWidth is the width of the screen in pixels.
	ScreenWidth = 160
	// ScreenHeight is the height of the screen in pixels.
	ScreenHeight = 144
)

const (
	// scanlineCycles is the number of T-cycles taken by a single
	// scanline, visible or not.
	scanlineCycles = 456
	// oamCycles is the length of Mode 2 at the start of a line.
	oamCycles = 80
	// transferCycles is the length of Mode 3, which follows Mode 2.
	transferCycles = 172
	// lastLine is the final line of V-Blank.
	lastLine = 153

	tileDataStart = 0x8000
	oamStart      = 0xFE00
)

// Bus is the memory the PPU renders from, and on which it owns
// the LCD registers.
type Bus interface {
	types.Bus
	types.HardwareBus
}

// PPU implements the Game Boy's (P)ixel (P)rocessing (U)nit.
//
// References:
//   - [Pan Docs](https://gbdev.io/pandocs/Graphics.html)
//   - [Hacktix GBEDG](https://hacktix.github.io/GBEDG/ppu/)
type PPU struct {
	controller *lcd.Controller
	status     *lcd.Status
	dma        *DMA

	// Rendering state
	ly      uint8  // Current line (0-153)
	counter uint16 // Cycles into the current line (0-455)

	// Scroll registers
	scy, scx uint8 // Background viewport position
	wy, wx   uint8 // Window Position

	lyc uint8 // LYC register value

	// Palette registers
	bgp, obp0, obp1 uint8

	bus Bus
	irq *interrupts.Service

	// buffer is rendered into a line at a time, and copied into
	// frame on entering V-Blank.
	buffer     FrameBuffer
	frame      FrameBuffer
	frameReady bool

	// colour indices of the background and window for the line
	// being rendered, before palette mapping
	bgIndex [ScreenWidth]uint8
}

// New returns a PPU that owns the LCD registers of bus, and raises
// its interrupts through irq. It starts in Mode 2 at line 0.
func New(bus Bus, irq *interrupts.Service) *PPU {
	p := &PPU{
		controller: lcd.NewController(),
		status:     lcd.NewStatus(),
		bus:        bus,
		irq:        irq,
	}
	p.status.Mode = lcd.OAM

	bus.RegisterHardware(types.LCDC, p.controller.Read, p.writeLCDC)
	bus.RegisterHardware(types.STAT, p.status.Read, p.status.Write)
	bus.RegisterHardware(types.LY, func() uint8 { return p.ly }, nil)
	bus.RegisterHardware(types.LYC, readWith(&p.lyc), writeWith(&p.lyc))
	bus.RegisterHardware(types.SCY, readWith(&p.scy), writeWith(&p.scy))
	bus.RegisterHardware(types.SCX, readWith(&p.scx), writeWith(&p.scx))
	bus.RegisterHardware(types.WY, readWith(&p.wy), writeWith(&p.wy))
	bus.RegisterHardware(types.WX, readWith(&p.wx), writeWith(&p.wx))
	bus.RegisterHardware(types.BGP, readWith(&p.bgp), writeWith(&p.bgp))
	bus.RegisterHardware(types.OBP0, readWith(&p.obp0), writeWith(&p.obp0))
	bus.RegisterHardware(types.OBP1, readWith(&p.obp1), writeWith(&p.obp1))
	p.dma = NewDMA(bus)

	p.status.Coincidence = p.ly == p.lyc
	return p
}

func readWith(r *uint8) func() uint8 {
	return func() uint8 { return *r }
}

func writeWith(r *uint8) func(uint8) {
	return func(v uint8) { *r = v }
}

func (p *PPU) writeLCDC(v uint8) {
	enabled := p.controller.Enabled
	p.controller.Write(v)

	// turning the display off or on restarts it at line 0
	if enabled != p.controller.Enabled {
		p.counter = 0
		p.ly = 0
		if !p.controller.Enabled {
			p.status.Mode = lcd.VBlank
		}
	}
}

// Tick advances the PPU by the given number of T-cycles. Crossing
// the end of a scanline moves on to the next, rendering it if it
// is visible, and raising V-Blank on line 144. While the display
// is disabled nothing advances.
func (p *PPU) Tick(cycles uint8) {
	if !p.controller.Enabled {
		p.status.Mode = lcd.VBlank
		p.counter = 0
		p.ly = 0
		return
	}

	p.counter += uint16(cycles)
	if p.counter >= scanlineCycles {
		p.counter -= scanlineCycles
		p.ly++

		if p.ly == ScreenHeight {
			p.irq.Request(interrupts.VBlank)
			p.frame = p.buffer
			p.frameReady = true
		}
		if p.ly > lastLine {
			p.ly = 0
		}
		if p.ly < ScreenHeight {
			p.renderScanline()
		}
	}

	p.updateStatus()
}

// updateStatus derives the mode from the line and cycle counter,
// then checks LY against LYC.
func (p *PPU) updateStatus() {
	var mode lcd.Mode
	switch {
	case p.ly >= ScreenHeight:
		mode = lcd.VBlank
	case p.counter < oamCycles:
		mode = lcd.OAM
	case p.counter < oamCycles+transferCycles:
		mode = lcd.VRAM
	default:
		mode = lcd.HBlank
	}
	if p.status.SetMode(mode) {
		p.irq.Request(interrupts.LCD)
	}

	p.status.Coincidence = p.ly == p.lyc
	if p.status.Coincidence && p.status.CoincidenceInterrupt {
		p.irq.Request(interrupts.LCD)
	}
}

// Mode returns the current mode of the PPU.
func (p *PPU) Mode() lcd.Mode {
	return p.status.Mode
}

// LY returns the current scanline.
func (p *PPU) LY() uint8 {
	return p.ly
}

// Cycles returns the number of cycles into the current scanline.
func (p *PPU) Cycles() uint16 {
	return p.counter
}

// Enabled reports whether the display is enabled.
func (p *PPU) Enabled() bool {
	return p.controller.Enabled
}

// Frame returns the last completed frame. It is overwritten each
// time the PPU enters V-Blank.
func (p *PPU) Frame() *FrameBuffer {
	return &p.frame
}

// Buffer returns the frame being rendered, which holds every line
// rendered so far.
func (p *PPU) Buffer() *FrameBuffer {
	return &p.buffer
}

// FrameReady reports whether a frame has been completed since the
// last call.
func (p *PPU) FrameReady() bool {
	ready := p.frameReady
	p.frameReady = false
	return ready
}
