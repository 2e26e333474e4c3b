package cartridge

// MemoryBankedCartridge1 represents a MemoryBankedCartridge1 cartridge. This cartridge
// type supports up to 128 ROM banks and 4 RAM banks.
type MemoryBankedCartridge1 struct {
	*memoryBankedCartridge
}

// NewMemoryBankedCartridge1 returns a new MemoryBankedCartridge1 cartridge.
func NewMemoryBankedCartridge1(rom []byte, header *Header) *MemoryBankedCartridge1 {
	return &MemoryBankedCartridge1{
		memoryBankedCartridge: newMemoryBankedCartridge(rom, header, ControllerMBC1, header.RAMSize),
	}
}

// Write attempts to switch the ROM or RAM bank, or writes to the
// selected RAM bank.
func (m *MemoryBankedCartridge1) Write(address uint16, value uint8) {
	switch {
	case address < 0x2000:
		m.setRAMEnabled(value)
	case address < 0x4000:
		// ROM bank number (lower 5 bits), bank 0 is never selectable
		lower := uint16(value & 0x1F)
		if lower == 0 {
			lower = 1
		}
		m.romBank = m.romBank&0x60 | lower
	case address < 0x6000:
		if m.romBanking {
			m.romBank = m.romBank&0x1F | uint16(value&0x03)<<5
		} else {
			m.ramBank = value & 0x03
		}
	case address < 0x8000:
		// ROM/RAM mode select
		m.romBanking = value&0x01 == 0x00
		if m.romBanking {
			m.ramBank = 0
		}
	case address >= 0xA000 && address < 0xC000:
		m.writeRAM(address, value)
	}
}
