// Package palette maps the four DMG shades to display colours.
package palette

import (
	"image/color"
	"sort"
	"strings"
)

const (
	// Greyscale is the default greyscale palette.
	Greyscale = "greyscale"
	// Green is the green palette which attempts to emulate
	// the colours of the DMG's LCD.
	Green = "green"
	// Red is a red palette.
	Red = "red"
	// Yellow is a yellow palette.
	Yellow = "yellow"
)

// Palette represents a palette. A palette is an array of 4 RGB values,
// one for each shade from lightest (0) to darkest (3).
type Palette struct {
	Colors [4][3]uint8
}

// Palettes holds every available palette by name.
var Palettes = map[string]Palette{
	Greyscale: {
		Colors: [4][3]uint8{
			{0xFF, 0xFF, 0xFF},
			{0xCC, 0xCC, 0xCC},
			{0x77, 0x77, 0x77},
			{0x00, 0x00, 0x00},
		},
	},
	Green: {
		Colors: [4][3]uint8{
			{0x9B, 0xBC, 0x0F},
			{0x8B, 0xAC, 0x0F},
			{0x30, 0x62, 0x30},
			{0x0F, 0x38, 0x0F},
		},
	},
	Red: {
		Colors: [4][3]uint8{
			{0xFF, 0x00, 0x00},
			{0xCC, 0x00, 0x00},
			{0x77, 0x00, 0x00},
			{0x00, 0x00, 0x00},
		},
	},
	Yellow: {
		Colors: [4][3]uint8{
			{0xFF, 0xFF, 0x00},
			{0xCC, 0xCC, 0x00},
			{0x77, 0x77, 0x00},
			{0x00, 0x00, 0x00},
		},
	},
}

// ByName returns the palette with the given name, ignoring case.
func ByName(name string) (Palette, bool) {
	p, ok := Palettes[strings.ToLower(name)]
	return p, ok
}

// Names returns the names of every available palette, sorted.
func Names() []string {
	names := make([]string, 0, len(Palettes))
	for name := range Palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetColour returns the colour of the given shade.
func (p Palette) GetColour(shade uint8) [3]uint8 {
	return p.Colors[shade&0x03]
}

// RGBA returns the colour of the given shade as an opaque
// color.RGBA.
func (p Palette) RGBA(shade uint8) color.RGBA {
	rgb := p.GetColour(shade)
	return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xFF}
}

// Shade maps a 2-bit colour index through a palette register such
// as BGP, returning the shade it selects. Bits 1-0 of the
// register hold the shade for index 0, bits 3-2 index 1 and so on.
func Shade(register uint8, index uint8) uint8 {
	return register >> ((index & 0x03) * 2) & 0x03
}
