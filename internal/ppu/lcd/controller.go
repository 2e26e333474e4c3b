// Package lcd decodes the LCD control and status registers.
package lcd

import (
	"github.com/thelolagemann/dmgcore/pkg/bits"
)

// Controller is the LCD controller. It is responsible for controlling various
// aspects of the LCD, such as enabling the background and window display.
//
// Its value is stored in the LCD Control Register (0xFF40) as follows:
//
//	Bit 7 - LCD Enable             (0=Off, 1=On)
//	Bit 6 - Window Tile Map Display Select (0=9800-9BFF, 1=9C00-9FFF)
//	Bit 5 - Window Display Enable          (0=Off, 1=On)
//	Bit 4 - BG & Window Tile Data Select   (0=8800-97FF, 1=8000-8FFF)
//	Bit 3 - BG Tile Map Display Select     (0=9800-9BFF, 1=9C00-9FFF)
//	Bit 2 - OBJ (Sprite) Size              (0=8x8, 1=8x16)
//	Bit 1 - OBJ (Sprite) Display Enable    (0=Off, 1=On)
//	Bit 0 - BG/Window Display/Priority     (0=Off, 1=On)
type Controller struct {
	// Enabled is the LCD Enable bit. When set, the LCD is enabled.
	Enabled bool
	// WindowTileMapAddress represents the Window Tile Map Display Select
	// bit, stored as the start address of the tile map.
	WindowTileMapAddress uint16
	// WindowEnabled is the Window Display Enable bit.
	WindowEnabled bool
	// TileDataAddress represents the BG & Window Tile Data Select bit,
	// stored as the start address of the tile data. At 0x8800 tile
	// indices are signed, and index 0 is found at 0x9000.
	TileDataAddress uint16
	// BackgroundTileMapAddress represents the BG Tile Map Display
	// Select bit, stored as the start address of the tile map.
	BackgroundTileMapAddress uint16
	// SpriteSize is the height of a sprite, either 8 or 16.
	SpriteSize uint8
	// SpriteEnabled is the OBJ (Sprite) Display Enable bit.
	SpriteEnabled bool
	// BackgroundEnabled is the BG/Window Display/Priority bit. When
	// reset, neither the background nor the window are drawn.
	BackgroundEnabled bool
}

// NewController returns a new LCD controller with every bit reset.
func NewController() *Controller {
	c := &Controller{}
	c.Write(0)
	return c
}

// Write decodes value into the LCD controller.
func (c *Controller) Write(value uint8) {
	c.Enabled = bits.Test(value, 7)
	c.WindowTileMapAddress = tileMap(bits.Test(value, 6))
	c.WindowEnabled = bits.Test(value, 5)
	if bits.Test(value, 4) {
		c.TileDataAddress = 0x8000
	} else {
		c.TileDataAddress = 0x8800
	}
	c.BackgroundTileMapAddress = tileMap(bits.Test(value, 3))
	c.SpriteSize = 8 + bits.Val(value, 2)*8
	c.SpriteEnabled = bits.Test(value, 1)
	c.BackgroundEnabled = bits.Test(value, 0)
}

// Read encodes the LCD controller back into its register value.
func (c *Controller) Read() uint8 {
	var value uint8
	if c.Enabled {
		value |= 1 << 7
	}
	if c.WindowTileMapAddress == 0x9C00 {
		value |= 1 << 6
	}
	if c.WindowEnabled {
		value |= 1 << 5
	}
	if c.TileDataAddress == 0x8000 {
		value |= 1 << 4
	}
	if c.BackgroundTileMapAddress == 0x9C00 {
		value |= 1 << 3
	}
	if c.SpriteSize == 16 {
		value |= 1 << 2
	}
	if c.SpriteEnabled {
		value |= 1 << 1
	}
	if c.BackgroundEnabled {
		value |= 1 << 0
	}
	return value
}

// UsingSignedTileData returns true if the LCD controller is using signed tile
// data.
func (c *Controller) UsingSignedTileData() bool {
	return c.TileDataAddress == 0x8800
}

func tileMap(high bool) uint16 {
	if high {
		return 0x9C00
	}
	return 0x9800
}
