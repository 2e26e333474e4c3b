package ppu

// Tile represents a tile. Each tile has a size of 8x8 pixels and a color
// depth of 4 colors/gray shades. Tiles can be displayed as sprites or as
// background/window tiles.
type Tile [8][8]uint8

// NewTile decodes the 16 bytes of a tile. Each row is stored in
// two bytes, the first holding the low bit of each pixel's colour
// index and the second the high bit, with bit 7 the leftmost.
func NewTile(b [16]uint8) Tile {
	var t Tile
	for tileY := 0; tileY < 8; tileY++ {
		t[tileY] = decodeRow(b[tileY*2], b[tileY*2+1])
	}
	return t
}

// decodeRow decodes a single row of tile data into colour indices.
func decodeRow(lo, hi uint8) [8]uint8 {
	var row [8]uint8
	for tileX := uint8(0); tileX < 8; tileX++ {
		row[tileX] = (lo>>(7-tileX))&1 | (hi>>(7-tileX)&1)<<1
	}
	return row
}

// tileAddress resolves a tile index to the address of its data,
// using the tile data area selected by LCDC bit 4.
func (p *PPU) tileAddress(index uint8) uint16 {
	if p.controller.UsingSignedTileData() {
		// index 0 sits at 0x9000, index -128 at 0x8800
		return p.controller.TileDataAddress + uint16(index+128)*16
	}
	return p.controller.TileDataAddress + uint16(index)*16
}

// readTile reads and decodes the tile at address.
func (p *PPU) readTile(address uint16) Tile {
	var b [16]uint8
	for i := range b {
		b[i] = p.bus.Read(address + uint16(i))
	}
	return NewTile(b)
}
