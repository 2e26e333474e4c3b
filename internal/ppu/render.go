package ppu

import (
	"sort"

	"github.com/thelolagemann/dmgcore/internal/ppu/palette"
)

// renderScanline renders the current line into the buffer, the
// background and window first and then the sprites on top of them.
func (p *PPU) renderScanline() {
	if p.controller.BackgroundEnabled {
		p.renderTiles()
	} else {
		p.bgIndex = [ScreenWidth]uint8{}
		p.buffer[p.ly] = [ScreenWidth]uint8{}
	}

	if p.controller.SpriteEnabled {
		p.renderSprites()
	}
}

// renderTiles renders the background and window for the current
// line. Each pixel is taken from the window once the line and
// column fall inside it, and from the scrolled background
// otherwise.
func (p *PPU) renderTiles() {
	line := &p.buffer[p.ly]
	inWindowRow := p.controller.WindowEnabled && p.ly >= p.wy

	var (
		tile     Tile
		tileAddr uint16
		decoded  bool
	)
	for x := 0; x < ScreenWidth; x++ {
		var mapAddress uint16
		var tileX, tileY uint8
		if inWindowRow && x+7 >= int(p.wx) {
			mapAddress = p.controller.WindowTileMapAddress
			tileX = uint8(x + 7 - int(p.wx))
			tileY = p.ly - p.wy
		} else {
			mapAddress = p.controller.BackgroundTileMapAddress
			tileX = uint8(x) + p.scx
			tileY = p.ly + p.scy
		}

		// the tile maps are 32x32 tiles, and wrap around
		column, row := uint16(tileX/8)%32, uint16(tileY/8)%32
		address := p.tileAddress(p.bus.Read(mapAddress + row*32 + column))
		if !decoded || address != tileAddr {
			tile = p.readTile(address)
			tileAddr, decoded = address, true
		}

		index := tile[tileY%8][tileX%8]
		p.bgIndex[x] = index
		line[x] = palette.Shade(p.bgp, index)
	}
}

// renderSprites renders the sprites on the current line, on top of
// the background.
func (p *PPU) renderSprites() {
	height := p.controller.SpriteSize

	// the first 10 sprites in OAM order that intersect the line
	visible := make([]Sprite, 0, spritesPerLine)
	for i := uint8(0); i < spriteCount && len(visible) < spritesPerLine; i++ {
		s := p.readSprite(i)
		top := int(s.Y) - 16
		if int(p.ly) < top || int(p.ly) >= top+int(height) {
			continue
		}
		visible = append(visible, s)
	}

	// a lower X draws over a higher one, with OAM order breaking ties
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].X < visible[j].X
	})

	var drawn [ScreenWidth]bool
	line := &p.buffer[p.ly]
	for _, s := range visible {
		row := p.spriteRow(s, p.ly, height)
		objPalette := p.obp0
		if s.useSecondPalette {
			objPalette = p.obp1
		}

		for px := 0; px < 8; px++ {
			x := int(s.X) - 8 + px
			if x < 0 || x >= ScreenWidth || drawn[x] {
				continue
			}
			// colour 0 is transparent
			index := row[px]
			if index == 0 {
				continue
			}
			drawn[x] = true
			if s.behindBackground && p.bgIndex[x] != 0 {
				continue
			}
			line[x] = palette.Shade(objPalette, index)
		}
	}
}
