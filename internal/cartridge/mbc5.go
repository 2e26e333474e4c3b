package cartridge

// MemoryBankedCartridge5 represents a MemoryBankedCartridge5 cartridge. It supports up
// to 512 ROM banks and 16 RAM banks. Unlike the other
// controllers, MBC5 can map bank 0 into 0x4000-0x7FFF.
type MemoryBankedCartridge5 struct {
	*memoryBankedCartridge
}

// NewMemoryBankedCartridge5 returns a new MemoryBankedCartridge5 cartridge.
func NewMemoryBankedCartridge5(rom []byte, header *Header) *MemoryBankedCartridge5 {
	return &MemoryBankedCartridge5{
		memoryBankedCartridge: newMemoryBankedCartridge(rom, header, ControllerMBC5, header.RAMSize),
	}
}

func (m *MemoryBankedCartridge5) Write(address uint16, value uint8) {
	switch {
	case address < 0x2000:
		m.setRAMEnabled(value)
	case address < 0x3000:
		m.romBank = m.romBank&0x100 | uint16(value)
	case address < 0x4000:
		m.romBank = m.romBank&0xFF | uint16(value&0x01)<<8
	case address < 0x6000:
		m.ramBank = value & 0x0F
	case address >= 0xA000 && address < 0xC000:
		m.writeRAM(address, value)
	}
}
