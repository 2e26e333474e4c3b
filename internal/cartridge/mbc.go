package cartridge

// memoryBankedCartridge holds the state shared by every memory
// bank controller: the fixed bank 0, the rest of the image, the
// external RAM and the current bank selection.
type memoryBankedCartridge struct {
	bank0    [romBankSize]uint8
	rom, ram []byte
	romBank  uint16
	ramBank  uint8

	ramEnabled bool
	romBanking bool

	controller Controller
	header     *Header
}

func newMemoryBankedCartridge(rom []byte, h *Header, controller Controller, ramSize uint) *memoryBankedCartridge {
	m := &memoryBankedCartridge{
		rom:        rom,
		ram:        make([]byte, ramSize),
		romBank:    1,
		romBanking: true,
		controller: controller,
		header:     h,
	}
	// the first 16kB are fixed for the lifetime of the cartridge
	copy(m.bank0[:], rom)
	return m
}

// Header returns the parsed cartridge header.
func (m *memoryBankedCartridge) Header() *Header {
	return m.header
}

// Banks returns a snapshot of the current bank selection.
func (m *memoryBankedCartridge) Banks() BankState {
	return BankState{
		Controller: m.controller,
		ROMBank:    m.romBank,
		RAMBank:    m.ramBank,
		RAMEnabled: m.ramEnabled,
		ROMBanking: m.romBanking,
	}
}

// Read returns the value from ROM or external RAM.
func (m *memoryBankedCartridge) Read(address uint16) uint8 {
	switch {
	case address < 0x8000:
		return m.readROM(address)
	case address >= 0xA000 && address < 0xC000:
		return m.readRAM(address)
	}
	return 0xFF
}

// readROM reads from the fixed bank for 0x0000-0x3FFF and from
// the selected bank for 0x4000-0x7FFF. Banks past the end of the
// image wrap around to its start.
func (m *memoryBankedCartridge) readROM(address uint16) uint8 {
	if address < romBankSize {
		return m.bank0[address]
	}
	bank := int(m.romBank)
	if banks := len(m.rom) / romBankSize; banks > 0 {
		bank %= banks
	}
	offset := bank*romBankSize + int(address-romBankSize)
	if offset >= len(m.rom) {
		return 0xFF
	}
	return m.rom[offset]
}

// readRAM reads from the selected RAM bank. Disabled or
// missing RAM reads as 0xFF.
func (m *memoryBankedCartridge) readRAM(address uint16) uint8 {
	offset, ok := m.ramOffset(address)
	if !ok {
		return 0xFF
	}
	return m.ram[offset]
}

func (m *memoryBankedCartridge) writeRAM(address uint16, value uint8) {
	if offset, ok := m.ramOffset(address); ok {
		m.ram[offset] = value
	}
}

func (m *memoryBankedCartridge) ramOffset(address uint16) (int, bool) {
	if !m.ramEnabled || len(m.ram) == 0 {
		return 0, false
	}
	offset := (int(m.ramBank)*ramBankSize + int(address-0xA000)) % len(m.ram)
	return offset, true
}

// setRAMEnabled enables external RAM when the low nibble of
// value is 0xA and disables it when the low nibble is 0x0. Any
// other value leaves the flag untouched.
func (m *memoryBankedCartridge) setRAMEnabled(value uint8) {
	switch value & 0x0F {
	case 0x0A:
		m.ramEnabled = true
	case 0x00:
		m.ramEnabled = false
	}
}
