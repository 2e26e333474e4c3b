package mmu

import (
	"testing"

	"github.com/thelolagemann/dmgcore/internal/cartridge"
	"github.com/thelolagemann/dmgcore/internal/types"
)

func newTestMMU(t *testing.T, cartType uint8) *MMU {
	t.Helper()
	rom := make([]byte, 0x10000)
	for bank := 0; bank < 4; bank++ {
		rom[bank*0x4000+0x200] = uint8(bank)
	}
	rom[0x147] = cartType
	rom[0x148] = 0x01
	rom[0x149] = 0x02
	cart, err := cartridge.NewCartridge(rom)
	if err != nil {
		t.Fatal(err)
	}
	return NewMMU(cart, nil)
}

func TestRegionOf(t *testing.T) {
	tests := []struct {
		start, end uint16
		region     Region
	}{
		{0x0000, 0x3FFF, RegionROM0},
		{0x4000, 0x7FFF, RegionROMN},
		{0x8000, 0x9FFF, RegionVRAM},
		{0xA000, 0xBFFF, RegionExternalRAM},
		{0xC000, 0xDFFF, RegionWRAM},
		{0xE000, 0xFDFF, RegionEcho},
		{0xFE00, 0xFE9F, RegionOAM},
		{0xFEA0, 0xFEFF, RegionUnusable},
		{0xFF00, 0xFF7F, RegionIO},
		{0xFF80, 0xFFFE, RegionHRAM},
		{0xFFFF, 0xFFFF, RegionIO},
	}
	covered := 0
	for _, tt := range tests {
		t.Run(tt.region.String(), func(t *testing.T) {
			for addr := uint32(tt.start); addr <= uint32(tt.end); addr++ {
				if got := RegionOf(uint16(addr)); got != tt.region {
					t.Fatalf("%#04x: expected %s, got %s", addr, tt.region, got)
				}
			}
		})
		covered += int(tt.end) - int(tt.start) + 1
	}
	if covered != 0x10000 {
		t.Errorf("expected the partition to cover the whole address space, covered %#x", covered)
	}
}

func TestEcho(t *testing.T) {
	m := newTestMMU(t, 0x00)

	m.Write(0xE123, 0x42)
	if got := m.Read(0xC123); got != 0x42 {
		t.Errorf("expected echo write to be visible in WRAM, got %#02x", got)
	}
	m.Write(0xDDFF, 0x24)
	if got := m.Read(0xFDFF); got != 0x24 {
		t.Errorf("expected WRAM write to be visible in echo, got %#02x", got)
	}
}

func TestUnusable(t *testing.T) {
	m := newTestMMU(t, 0x00)

	for addr := uint16(0xFEA0); addr <= 0xFEFF; addr++ {
		m.Write(addr, 0xFF)
		if got := m.Read(addr); got != 0 {
			t.Fatalf("%#04x: expected 0, got %#02x", addr, got)
		}
	}
	// neighbouring regions are unaffected
	if m.Read(0xFE9F) != 0 || m.Read(0xFF80) != 0 {
		t.Error("expected writes to the unusable region to have no effect")
	}
}

func TestStorageRegions(t *testing.T) {
	m := newTestMMU(t, 0x00)
	for _, addr := range []uint16{0x8000, 0x9FFF, 0xC000, 0xDFFF, 0xFE00, 0xFE9F, 0xFF80, 0xFFFE} {
		m.Write(addr, uint8(addr))
		if got := m.Read(addr); got != uint8(addr) {
			t.Errorf("%#04x: expected %#02x, got %#02x", addr, uint8(addr), got)
		}
	}
}

func TestCartridgeRouting(t *testing.T) {
	m := newTestMMU(t, 0x02) // MBC1+RAM

	if got := m.Read(0x4200); got != 1 {
		t.Fatalf("expected bank 1 to be mapped at boot, got %d", got)
	}
	m.Write(0x2000, 0x03)
	if got := m.Read(0x4200); got != 3 {
		t.Errorf("expected bank 3 after a bank select, got %d", got)
	}
	if got := m.Read(0x0200); got != 0 {
		t.Errorf("expected the fixed bank to be unaffected, got %d", got)
	}

	m.Write(0xA000, 0x11)
	if m.Read(0xA000) != 0xFF {
		t.Error("expected external RAM to be disabled until enabled")
	}
	m.Write(0x1000, 0x0A)
	m.Write(0xA000, 0x11)
	if got := m.Read(0xA000); got != 0x11 {
		t.Errorf("expected 0x11 from external RAM, got %#02x", got)
	}
}

func TestWrite16(t *testing.T) {
	m := newTestMMU(t, 0x00)
	m.Write16(0xC000, 0xBEEF)
	if m.Read(0xC000) != 0xEF || m.Read(0xC001) != 0xBE {
		t.Errorf("expected little endian order, got %#02x %#02x", m.Read(0xC000), m.Read(0xC001))
	}
	if got := m.Read16(0xC000); got != 0xBEEF {
		t.Errorf("expected 0xBEEF, got %#04x", got)
	}
}

func TestStack(t *testing.T) {
	m := newTestMMU(t, 0x00)
	for _, value := range []uint16{0x0000, 0x1234, 0xFFFF, 0x8001} {
		sp := uint16(0xFFFE)
		pushed := m.PushWord(sp, value)
		if pushed != sp-2 {
			t.Fatalf("expected SP %#04x after push, got %#04x", sp-2, pushed)
		}
		if m.Read(pushed) != uint8(value) || m.Read(pushed+1) != uint8(value>>8) {
			t.Errorf("expected the low byte at the lower address")
		}
		got, popped := m.PopWord(pushed)
		if got != value || popped != sp {
			t.Errorf("expected %#04x and SP %#04x, got %#04x and SP %#04x", value, sp, got, popped)
		}
	}
}

func TestHardwareRegisters(t *testing.T) {
	m := newTestMMU(t, 0x00)

	t.Run("post boot", func(t *testing.T) {
		for address, want := range map[uint16]uint8{
			types.NR10: 0x80,
			types.NR52: 0xF1,
			types.LCDC: 0x91,
			types.BGP:  0xFC,
			types.IE:   0x00,
		} {
			if got := m.Read(address); got != want {
				t.Errorf("%#04x: expected %#02x, got %#02x", address, want, got)
			}
		}
	})

	t.Run("registered", func(t *testing.T) {
		var value uint8
		m.RegisterHardware(types.BGP, func() uint8 { return value }, func(v uint8) { value = v })
		if value != 0xFC {
			t.Errorf("expected the post-boot value to be written through, got %#02x", value)
		}
		m.Write(types.BGP, 0xE4)
		if value != 0xE4 || m.Read(types.BGP) != 0xE4 {
			t.Errorf("expected the owner to receive the write, got %#02x", value)
		}
	})

	t.Run("read only", func(t *testing.T) {
		m.RegisterHardware(types.LY, func() uint8 { return 0x90 }, nil)
		m.Write(types.LY, 0x00)
		if got := m.Read(types.LY); got != 0x90 {
			t.Errorf("expected read-only register to ignore writes, got %#02x", got)
		}
	})

	t.Run("not io", func(t *testing.T) {
		m.RegisterHardware(0xC000, func() uint8 { return 0x55 }, nil)
		if m.Read(0xC000) == 0x55 {
			t.Error("expected registration outside the I/O window to be rejected")
		}
	})
}
