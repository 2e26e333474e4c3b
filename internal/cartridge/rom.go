package cartridge

// ROMCartridge represents a cartridge without a memory bank
// controller. The whole 32kB image is mapped at 0x0000-0x7FFF
// and control writes are ignored.
type ROMCartridge struct {
	*memoryBankedCartridge
}

// NewROMCartridge returns a new ROMCartridge. Cartridges of type
// ROMRAM have their RAM permanently enabled.
func NewROMCartridge(rom []byte, header *Header) *ROMCartridge {
	c := &ROMCartridge{
		memoryBankedCartridge: newMemoryBankedCartridge(rom, header, ControllerNone, header.RAMSize),
	}
	c.ramEnabled = header.CartridgeType == ROMRAM || header.CartridgeType == ROMRAMBATT
	return c
}

// Write writes to external RAM, if present. Writes to the ROM
// area have no effect.
func (r *ROMCartridge) Write(address uint16, value uint8) {
	if address >= 0xA000 && address < 0xC000 {
		r.writeRAM(address, value)
	}
}
