package cartridge

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// newImage returns a ROM image of the given number of 16kB banks,
// where the first byte of every bank (after the header for bank 0)
// holds the bank number.
func newImage(t Type, banks int, ramSize uint8) []byte {
	rom := make([]byte, banks*romBankSize)
	for i := 1; i < banks; i++ {
		rom[i*romBankSize] = uint8(i)
	}
	copy(rom[0x134:], "TESTCART")
	rom[0x147] = uint8(t)
	rom[0x149] = ramSize
	for size := 0; 32*1024<<size < len(rom); size++ {
		rom[0x148] = uint8(size + 1)
	}

	var sum uint8
	for _, b := range rom[0x134:0x14D] {
		sum = sum - b - 1
	}
	rom[0x14D] = sum
	return rom
}

func TestNewCartridge(t *testing.T) {
	t.Run("too small", func(t *testing.T) {
		_, err := NewCartridge(make([]byte, 0x14F))
		if !errors.Is(err, ErrImageTooSmall) {
			t.Fatalf("expected ErrImageTooSmall, got %v", err)
		}
	})

	tests := []struct {
		t    Type
		want Controller
	}{
		{ROM, ControllerNone},
		{ROMRAM, ControllerNone},
		{MBC1, ControllerMBC1},
		{MBC1RAMBATT, ControllerMBC1},
		{MBC2, ControllerMBC2},
		{MBC3TIMERRAMBATT, ControllerMBC3},
		{MBC5RUMBLE, ControllerMBC5},
		{Type(0xFC), ControllerNone},
	}
	for _, tt := range tests {
		t.Run(tt.t.String(), func(t *testing.T) {
			c, err := NewCartridge(newImage(tt.t, 4, 0x03))
			if err != nil {
				t.Fatal(err)
			}
			if got := c.Banks().Controller; got != tt.want {
				t.Errorf("expected controller %s, got %s", tt.want, got)
			}
		})
	}
}

func TestHeader(t *testing.T) {
	c, err := NewCartridge(newImage(MBC1RAM, 8, 0x03))
	if err != nil {
		t.Fatal(err)
	}
	h := c.Header()
	got := struct {
		Title   string
		Type    Type
		ROMSize uint
		RAMSize uint
		Valid   bool
	}{h.Title, h.CartridgeType, h.ROMSize, h.RAMSize, h.Valid()}
	want := struct {
		Title   string
		Type    Type
		ROMSize uint
		RAMSize uint
		Valid   bool
	}{"TESTCART", MBC1RAM, 128 * 1024, 32 * 1024, true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("header mismatch (-want +got):\n%s", diff)
	}

	t.Run("bad checksum", func(t *testing.T) {
		rom := newImage(ROM, 2, 0)
		rom[0x14D]++
		c, _ := NewCartridge(rom)
		if c.Header().Valid() {
			t.Error("expected header to be invalid")
		}
	})
}

func TestBank0Copy(t *testing.T) {
	rom := newImage(MBC1, 4, 0)
	rom[0x0150] = 0x42
	c, _ := NewCartridge(rom)

	// the cartridge must not alias the caller's slice
	rom[0x0150] = 0x00
	if c.Read(0x0150) != 0x42 {
		t.Errorf("expected bank 0 to hold a copy of the image, got %#02x", c.Read(0x0150))
	}

	// control writes never change ROM contents
	c.Write(0x0150, 0x99)
	if c.Read(0x0150) != 0x42 {
		t.Errorf("expected ROM to be unchanged, got %#02x", c.Read(0x0150))
	}
}

func TestROMCartridge(t *testing.T) {
	c, _ := NewCartridge(newImage(ROM, 2, 0))
	c.Write(0x2000, 0x05)
	if c.Read(0x4000) != 1 {
		t.Errorf("expected bank 1 to stay mapped, got bank %d", c.Read(0x4000))
	}
	if c.Read(0xA000) != 0xFF {
		t.Error("expected missing external RAM to read 0xFF")
	}

	t.Run("ROM+RAM", func(t *testing.T) {
		c, _ := NewCartridge(newImage(ROMRAM, 2, 0x02))
		c.Write(0xA123, 0x77)
		if c.Read(0xA123) != 0x77 {
			t.Errorf("expected RAM to always be enabled, got %#02x", c.Read(0xA123))
		}
	})
}

func TestMBC1(t *testing.T) {
	t.Run("ram enable", func(t *testing.T) {
		c, _ := NewCartridge(newImage(MBC1RAM, 4, 0x03))
		c.Write(0x1000, 0x0A)
		if !c.Banks().RAMEnabled {
			t.Fatal("expected 0x0A to enable RAM")
		}
		c.Write(0xA000, 0x12)
		if c.Read(0xA000) != 0x12 {
			t.Errorf("expected 0x12, got %#02x", c.Read(0xA000))
		}

		// other low nibbles leave the flag alone
		c.Write(0x1000, 0x05)
		if !c.Banks().RAMEnabled {
			t.Error("expected RAM to still be enabled")
		}

		c.Write(0x1000, 0x00)
		if c.Banks().RAMEnabled {
			t.Fatal("expected 0x00 to disable RAM")
		}
		if c.Read(0xA000) != 0xFF {
			t.Errorf("expected disabled RAM to read 0xFF, got %#02x", c.Read(0xA000))
		}
	})

	t.Run("rom bank", func(t *testing.T) {
		c, _ := NewCartridge(newImage(MBC1, 64, 0))
		for _, tt := range []struct {
			value uint8
			want  uint16
		}{{0x00, 1}, {0x01, 1}, {0x05, 5}, {0x1F, 31}, {0x25, 5}} {
			c.Write(0x2000, tt.value)
			if got := c.Banks().ROMBank; got != tt.want {
				t.Errorf("write %#02x: expected bank %d, got %d", tt.value, tt.want, got)
			}
			if got := c.Read(0x4000); got != uint8(tt.want) {
				t.Errorf("write %#02x: expected to read bank %d, got %d", tt.value, tt.want, got)
			}
		}
	})

	t.Run("upper rom bits", func(t *testing.T) {
		c, _ := NewCartridge(newImage(MBC1, 128, 0))
		c.Write(0x2000, 0x02)
		c.Write(0x4000, 0x01)
		if got := c.Banks().ROMBank; got != 0x22 {
			t.Errorf("expected bank 0x22, got %#02x", got)
		}
		if c.Read(0x4000) != 0x22 {
			t.Errorf("expected to read bank 0x22, got %#02x", c.Read(0x4000))
		}
	})

	t.Run("ram banking mode", func(t *testing.T) {
		c, _ := NewCartridge(newImage(MBC1RAM, 4, 0x03))
		c.Write(0x0000, 0x0A)
		c.Write(0x6000, 0x01)
		if c.Banks().ROMBanking {
			t.Fatal("expected RAM banking mode")
		}
		c.Write(0x4000, 0x02)
		if c.Banks().RAMBank != 2 {
			t.Fatalf("expected RAM bank 2, got %d", c.Banks().RAMBank)
		}
		c.Write(0xA000, 0x22)

		// switching back into ROM banking mode resets the RAM bank
		c.Write(0x6000, 0x00)
		if c.Banks().RAMBank != 0 || !c.Banks().ROMBanking {
			t.Fatalf("expected RAM bank 0 in ROM banking mode, got %+v", c.Banks())
		}
		if c.Read(0xA000) == 0x22 {
			t.Error("expected RAM bank 0 to be mapped")
		}
	})

	t.Run("bank wraps image", func(t *testing.T) {
		c, _ := NewCartridge(newImage(MBC1, 4, 0))
		c.Write(0x2000, 0x06)
		if c.Read(0x4000) != 2 {
			t.Errorf("expected bank 6 to wrap to bank 2, got %d", c.Read(0x4000))
		}
	})
}

func TestMBC2(t *testing.T) {
	c, _ := NewCartridge(newImage(MBC2, 16, 0))

	// bit 4 of the address is set, so the write is rejected
	c.Write(0x1010, 0x0A)
	if c.Banks().RAMEnabled {
		t.Fatal("expected write with address bit 4 set to be ignored")
	}
	c.Write(0x1000, 0x0A)
	if !c.Banks().RAMEnabled {
		t.Fatal("expected 0x0A to enable RAM")
	}
	c.Write(0x1010, 0x00)
	if !c.Banks().RAMEnabled {
		t.Fatal("expected disable with address bit 4 set to be ignored")
	}

	t.Run("half-byte ram", func(t *testing.T) {
		c.Write(0xA001, 0xAB)
		if got := c.Read(0xA001); got != 0xFB {
			t.Errorf("expected 0xFB, got %#02x", got)
		}
		// the 512 entries are mirrored through the region
		if got := c.Read(0xA201); got != 0xFB {
			t.Errorf("expected mirrored 0xFB, got %#02x", got)
		}
	})

	t.Run("rom bank", func(t *testing.T) {
		c.Write(0x2000, 0x00)
		if c.Banks().ROMBank != 1 {
			t.Errorf("expected bank 0 to be coerced to 1, got %d", c.Banks().ROMBank)
		}
		c.Write(0x2100, 0x3C)
		if c.Banks().ROMBank != 0x0C || c.Read(0x4000) != 0x0C {
			t.Errorf("expected 4-bit bank 0x0C, got %#02x", c.Banks().ROMBank)
		}
		c.Write(0x4000, 0x03)
		c.Write(0x6000, 0x01)
		if c.Banks().ROMBank != 0x0C || c.Banks().RAMBank != 0 {
			t.Error("expected MBC2 to ignore writes above 0x3FFF")
		}
	})
}

func TestMBC3(t *testing.T) {
	now := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	rom := newImage(MBC3TIMERRAMBATT, 128, 0x03)
	h := parseHeader(rom[0x100:headerEnd])
	c := newMemoryBankedCartridge3(rom, &h, func() time.Time { return now })

	c.Write(0x2000, 0x00)
	if c.Banks().ROMBank != 1 {
		t.Errorf("expected bank 0 to be coerced to 1, got %d", c.Banks().ROMBank)
	}
	c.Write(0x2000, 0x7F)
	if c.Read(0x4000) != 0x7F {
		t.Errorf("expected bank 0x7F, got %#02x", c.Read(0x4000))
	}

	t.Run("rtc latch", func(t *testing.T) {
		c.Write(0x0000, 0x0A)
		now = now.Add(90*time.Minute + 5*time.Second)
		c.Write(0x6000, 0x00)
		c.Write(0x6000, 0x01)

		c.Write(0x4000, 0x08)
		if got := c.Read(0xA000); got != 5 {
			t.Errorf("expected 5 seconds, got %d", got)
		}
		c.Write(0x4000, 0x09)
		if got := c.Read(0xA000); got != 30 {
			t.Errorf("expected 30 minutes, got %d", got)
		}
		c.Write(0x4000, 0x0A)
		if got := c.Read(0xA000); got != 1 {
			t.Errorf("expected 1 hour, got %d", got)
		}

		// latched values do not move until the next latch
		now = now.Add(time.Hour)
		if got := c.Read(0xA000); got != 1 {
			t.Errorf("expected latched hour to stay 1, got %d", got)
		}
	})

	t.Run("ram bank", func(t *testing.T) {
		c.Write(0x4000, 0x01)
		c.Write(0xA000, 0x5A)
		c.Write(0x4000, 0x00)
		if c.Read(0xA000) == 0x5A {
			t.Error("expected RAM bank 0 to be distinct from bank 1")
		}
		c.Write(0x4000, 0x01)
		if c.Read(0xA000) != 0x5A {
			t.Errorf("expected 0x5A in RAM bank 1, got %#02x", c.Read(0xA000))
		}
	})
}

func TestMBC5(t *testing.T) {
	c, _ := NewCartridge(newImage(MBC5RAM, 512, 0x03))

	c.Write(0x2000, 0x00)
	if c.Banks().ROMBank != 0 || c.Read(0x4000) != 0 {
		t.Errorf("expected bank 0 to be selectable, got %d", c.Banks().ROMBank)
	}
	c.Write(0x2000, 0x34)
	c.Write(0x3000, 0x01)
	if c.Banks().ROMBank != 0x134 {
		t.Errorf("expected bank 0x134, got %#03x", c.Banks().ROMBank)
	}
	if c.Read(0x4000) != 0x34 {
		t.Errorf("expected bank marker 0x34, got %#02x", c.Read(0x4000))
	}

	c.Write(0x4000, 0x13)
	if c.Banks().RAMBank != 0x03 {
		t.Errorf("expected RAM bank 3, got %d", c.Banks().RAMBank)
	}
}
