package mmu

// Region identifies one of the storage regions the address space
// is partitioned into.
type Region uint8

const (
	RegionROM0 Region = iota
	RegionROMN
	RegionVRAM
	RegionExternalRAM
	RegionWRAM
	RegionEcho
	RegionOAM
	RegionUnusable
	RegionIO
	RegionHRAM

	regionCount
)

var regionNames = [regionCount]string{
	"ROM0", "ROMN", "VRAM", "ERAM", "WRAM", "ECHO", "OAM", "UNUSABLE", "IO", "HRAM",
}

func (r Region) String() string {
	if r >= regionCount {
		return "UNKNOWN"
	}
	return regionNames[r]
}

// pages maps the upper byte of an address to its region. Pages
// 0xFE and 0xFF hold more than one region and are resolved by
// RegionOf.
var pages [0x100]Region

func init() {
	for page := 0x00; page < 0x100; page++ {
		switch {
		case page < 0x40:
			pages[page] = RegionROM0
		case page < 0x80:
			pages[page] = RegionROMN
		case page < 0xA0:
			pages[page] = RegionVRAM
		case page < 0xC0:
			pages[page] = RegionExternalRAM
		case page < 0xE0:
			pages[page] = RegionWRAM
		case page < 0xFE:
			pages[page] = RegionEcho
		case page == 0xFE:
			pages[page] = RegionOAM
		default:
			pages[page] = RegionIO
		}
	}
}

// RegionOf returns the region an address belongs to. Every
// address belongs to exactly one region.
func RegionOf(address uint16) Region {
	switch address >> 8 {
	case 0xFE:
		if address >= 0xFEA0 {
			return RegionUnusable
		}
		return RegionOAM
	case 0xFF:
		if address >= 0xFF80 && address != 0xFFFF {
			return RegionHRAM
		}
		return RegionIO
	}
	return pages[address>>8]
}
