package cartridge

// MemoryBankedCartridge2 represents a MemoryBankedCartridge2 cartridge. It supports up
// to 16 ROM banks and has 512 half-bytes of RAM built in.
type MemoryBankedCartridge2 struct {
	*memoryBankedCartridge
}

// NewMemoryBankedCartridge2 returns a new MemoryBankedCartridge2 cartridge.
func NewMemoryBankedCartridge2(rom []byte, header *Header) *MemoryBankedCartridge2 {
	return &MemoryBankedCartridge2{
		memoryBankedCartridge: newMemoryBankedCartridge(rom, header, ControllerMBC2, 512),
	}
}

// Read returns the value from the cartridges ROM or RAM, depending on the bank
// selected. Only the lower nibble of RAM is stored, the upper
// nibble reads as set.
func (m *MemoryBankedCartridge2) Read(address uint16) uint8 {
	if address >= 0xA000 && address < 0xC000 {
		if !m.ramEnabled {
			return 0xFF
		}
		return m.ram[address&0x01FF] | 0xF0
	}
	return m.memoryBankedCartridge.Read(address)
}

// Write attempts to switch the ROM bank, or writes to RAM.
func (m *MemoryBankedCartridge2) Write(address uint16, value uint8) {
	switch {
	case address < 0x2000:
		// bit 4 of the address must be clear for RAM enable writes
		if address&0x0010 != 0 {
			return
		}
		m.setRAMEnabled(value)
	case address < 0x4000:
		m.romBank = uint16(value & 0x0F)
		if m.romBank == 0 {
			m.romBank = 1
		}
	case address >= 0xA000 && address < 0xC000:
		if m.ramEnabled {
			m.ram[address&0x01FF] = value & 0x0F
		}
	}
}
