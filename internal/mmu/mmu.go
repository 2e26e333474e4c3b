// Package mmu provides a memory management unit for the Game Boy. The
// MMU owns every storage region of the address space and routes reads
// and writes to them by address. Hardware registers in the I/O window
// are owned by the components that register them.
package mmu

import (
	"github.com/thelolagemann/dmgcore/internal/cartridge"
	"github.com/thelolagemann/dmgcore/internal/ram"
	"github.com/thelolagemann/dmgcore/internal/types"
	"github.com/thelolagemann/dmgcore/pkg/log"
)

// postBoot holds the values of the I/O registers once the boot
// ROM has handed control to the cartridge at 0x0100.
var postBoot = map[types.HardwareAddress]uint8{
	types.TIMA: 0x00,
	types.TMA:  0x00,
	types.TAC:  0x00,
	types.NR10: 0x80,
	types.NR11: 0xBF,
	types.NR12: 0xF3,
	types.NR14: 0xBF,
	types.NR21: 0x3F,
	types.NR22: 0x00,
	types.NR24: 0xBF,
	types.NR30: 0x7F,
	types.NR31: 0xFF,
	types.NR32: 0x9F,
	types.NR34: 0xBF,
	types.NR41: 0xFF,
	types.NR42: 0x00,
	types.NR43: 0x00,
	types.NR44: 0xBF,
	types.NR50: 0x77,
	types.NR51: 0xF3,
	types.NR52: 0xF1,
	types.LCDC: 0x91,
	types.SCY:  0x00,
	types.SCX:  0x00,
	types.LYC:  0x00,
	types.BGP:  0xFC,
	types.OBP0: 0xFF,
	types.OBP1: 0xFF,
	types.WY:   0x00,
	types.WX:   0x00,
	types.IE:   0x00,
}

// MMU is the memory management unit for the Game Boy. It handles all
// memory reads and writes to the Game Boy's 64kB of memory.
type MMU struct {
	// per region read/write handlers, indexed by Region
	raw [regionCount]types.Address

	// 0x0000 - 0x7FFF - ROM (32kB)
	// 0xA000 - 0xBFFF - External RAM (8kB)
	Cart cartridge.Cartridge

	// 0x8000 - 0x9FFF - Video RAM (8kB)
	vRAM *ram.RAM

	// 0xC000 - 0xDFFF - Work RAM (8kB)
	// 0xE000 - 0xFDFF - Echo RAM (7.5kB)
	wRAM *WRAM

	// 0xFE00 - 0xFE9F - Sprite Attribute Table (160B)
	oam *ram.RAM

	// 0xFF00 - 0xFF7F - I/O Registers, plus 0xFFFF. Registers that
	// no component has claimed are plain storage.
	io       [0x100]uint8
	hardware [0x100]*types.HardwareRegister

	// 0xFF80 - 0xFFFE - Zero Page RAM (127B)
	zRAM *ram.RAM

	Log log.Logger
}

// NewMMU returns a new MMU with cart mapped into the cartridge
// regions, and the I/O window holding its post-boot values.
func NewMMU(cart cartridge.Cartridge, l log.Logger) *MMU {
	if l == nil {
		l = log.NewNullLogger()
	}
	m := &MMU{
		Cart: cart,
		vRAM: ram.NewRAM(types.VRAMStart, 0x2000),
		wRAM: NewWRAM(),
		oam:  ram.NewRAM(types.OAMStart, 0xA0),
		zRAM: ram.NewRAM(types.HRAMStart, 0x7F),
		Log:  l,
	}
	for address, value := range postBoot {
		m.io[address&0xFF] = value
	}
	m.init()

	m.Log.Debugf("mmu: mapped cartridge %q (%s)", cart.Header().Title, cart.Banks().Controller)
	return m
}

func (m *MMU) init() {
	m.raw = [regionCount]types.Address{
		RegionROM0:        {Read: m.Cart.Read, Write: m.Cart.Write},
		RegionROMN:        {Read: m.Cart.Read, Write: m.Cart.Write},
		RegionVRAM:        {Read: m.vRAM.Read, Write: m.vRAM.Write},
		RegionExternalRAM: {Read: m.Cart.Read, Write: m.Cart.Write},
		RegionWRAM:        {Read: m.wRAM.Read, Write: m.wRAM.Write},
		RegionEcho:        {Read: m.wRAM.Read, Write: m.wRAM.Write},
		RegionOAM:         {Read: m.oam.Read, Write: m.oam.Write},
		RegionUnusable: {
			Read:  func(uint16) uint8 { return 0 },
			Write: func(uint16, uint8) {},
		},
		RegionIO:   {Read: m.readIO, Write: m.writeIO},
		RegionHRAM: {Read: m.zRAM.Read, Write: m.zRAM.Write},
	}
}

// RegisterHardware hands ownership of the I/O register at address
// to the given handlers. If the register has a post-boot value,
// it is written through to the new owner.
func (m *MMU) RegisterHardware(address types.HardwareAddress, read func() uint8, write func(v uint8)) {
	if RegionOf(address) != RegionIO {
		m.Log.Errorf("mmu: %#04x is not an I/O register", address)
		return
	}
	h := types.NewHardwareRegister(address, read, write)
	m.hardware[address&0xFF] = h
	if value, ok := postBoot[address]; ok {
		h.Write(value)
	}
}

func (m *MMU) readIO(address uint16) uint8 {
	if h := m.hardware[address&0xFF]; h != nil {
		return h.Read()
	}
	return m.io[address&0xFF]
}

func (m *MMU) writeIO(address uint16, value uint8) {
	if h := m.hardware[address&0xFF]; h != nil {
		h.Write(value)
		return
	}
	m.io[address&0xFF] = value
}

// Read returns the value at the given address.
func (m *MMU) Read(address uint16) uint8 {
	return m.raw[RegionOf(address)].Read(address)
}

// Write writes the value to the given address. Writes into the
// ROM regions are passed to the cartridge as bank control writes.
func (m *MMU) Write(address uint16, value uint8) {
	m.raw[RegionOf(address)].Write(address, value)
}

// Read16 returns the little endian word at address.
func (m *MMU) Read16(address uint16) uint16 {
	return uint16(m.Read(address)) | uint16(m.Read(address+1))<<8
}

// Write16 writes the low byte of value to address, and the high
// byte to address+1.
func (m *MMU) Write16(address uint16, value uint16) {
	m.Write(address, uint8(value))
	m.Write(address+1, uint8(value>>8))
}

// PushWord pushes value onto the stack at sp and returns the new
// stack pointer. The stack grows downward, so the low byte ends
// up at the lower address.
func (m *MMU) PushWord(sp uint16, value uint16) uint16 {
	sp -= 2
	m.Write16(sp, value)
	return sp
}

// PopWord pops a word off the stack at sp, returning it along
// with the new stack pointer.
func (m *MMU) PopWord(sp uint16) (uint16, uint16) {
	return m.Read16(sp), sp + 2
}
