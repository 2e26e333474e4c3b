package ppu

import "github.com/thelolagemann/dmgcore/pkg/bits"

const (
	// spriteCount is the number of sprites held in OAM.
	spriteCount = 40
	// spritesPerLine is the number of sprites drawn on a single
	// scanline.
	spritesPerLine = 10
)

// Sprite is an entry of the sprite attribute table, decoded from
// its 4 bytes in OAM.
type Sprite struct {
	// Y is the vertical position of the sprite, plus 16.
	Y uint8
	// X is the horizontal position of the sprite, plus 8.
	X      uint8
	TileID uint8
	spriteAttributes
}

// spriteAttributes represents the attributes of a sprite.
type spriteAttributes struct {
	// Bit 7 - OBJ-to-BG priority (0=OBJ Above BG, 1=OBJ Behind BG color 1-3)
	// (Used for both BG and Window. BG color 0 is always behind OBJ)
	behindBackground bool
	// Bit 6 - Y flip          (0=Normal, 1=Vertically mirrored)
	flipY bool
	// Bit 5 - X flip          (0=Normal, 1=Horizontally mirrored)
	flipX bool
	// Bit 4 - Palette number  (0=OBP0, 1=OBP1)
	useSecondPalette bool
}

func newSprite(b [4]uint8) Sprite {
	return Sprite{
		Y:      b[0],
		X:      b[1],
		TileID: b[2],
		spriteAttributes: spriteAttributes{
			behindBackground: bits.Test(b[3], 7),
			flipY:            bits.Test(b[3], 6),
			flipX:            bits.Test(b[3], 5),
			useSecondPalette: bits.Test(b[3], 4),
		},
	}
}

// readSprite reads the sprite at index from OAM.
func (p *PPU) readSprite(index uint8) Sprite {
	address := oamStart + uint16(index)*4
	return newSprite([4]uint8{
		p.bus.Read(address),
		p.bus.Read(address + 1),
		p.bus.Read(address + 2),
		p.bus.Read(address + 3),
	})
}

// spriteRow decodes the row of the sprite that falls on line, honouring
// both flips. A sprite 16 pixels high spans two consecutive tiles,
// the first of which is always even.
func (p *PPU) spriteRow(s Sprite, line uint8, height uint8) [8]uint8 {
	row := line + 16 - s.Y
	if s.flipY {
		row = height - 1 - row
	}
	id := s.TileID
	if height == 16 {
		id &^= 1
	}

	address := tileDataStart + uint16(id)*16 + uint16(row)*2
	lo, hi := p.bus.Read(address), p.bus.Read(address+1)
	if s.flipX {
		lo, hi = bits.Reverse(lo), bits.Reverse(hi)
	}
	return decodeRow(lo, hi)
}
