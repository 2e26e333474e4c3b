package lcd

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestController(t *testing.T) {
	c := NewController()
	c.Write(0x91)

	want := Controller{
		Enabled:                  true,
		WindowTileMapAddress:     0x9800,
		TileDataAddress:          0x8000,
		BackgroundTileMapAddress: 0x9800,
		SpriteSize:               8,
		BackgroundEnabled:        true,
	}
	if diff := cmp.Diff(want, *c); diff != "" {
		t.Errorf("unexpected controller (-want +got):\n%s", diff)
	}
	if c.UsingSignedTileData() {
		t.Error("expected unsigned tile data")
	}

	c.Write(0x6E)
	if !c.WindowEnabled || c.WindowTileMapAddress != 0x9C00 || c.BackgroundTileMapAddress != 0x9C00 || c.SpriteSize != 16 || !c.SpriteEnabled {
		t.Errorf("unexpected controller %+v", *c)
	}
	if !c.UsingSignedTileData() || c.Enabled || c.BackgroundEnabled {
		t.Errorf("unexpected controller %+v", *c)
	}

	for v := 0; v < 256; v++ {
		c.Write(uint8(v))
		if got := c.Read(); got != uint8(v) {
			t.Fatalf("expected %#02x to read back, got %#02x", v, got)
		}
	}
}

func TestStatus(t *testing.T) {
	s := NewStatus()
	s.Write(0xFF)
	if got := s.Read(); got != 0xF8 {
		t.Errorf("expected the read only bits to ignore writes, got %#02x", got)
	}

	s.Coincidence = true
	s.Mode = VRAM
	if got := s.Read(); got != 0xFF {
		t.Errorf("expected 0xFF, got %#02x", got)
	}

	t.Run("SetMode", func(t *testing.T) {
		s := NewStatus()
		s.Mode = VRAM
		s.Write(0x08) // HBlank interrupt only
		if !s.SetMode(HBlank) {
			t.Error("expected entering HBlank to interrupt")
		}
		if s.SetMode(HBlank) {
			t.Error("expected staying in HBlank not to interrupt")
		}
		if s.SetMode(OAM) {
			t.Error("expected OAM to be disabled")
		}
		if s.SetMode(VRAM) {
			t.Error("expected entering VRAM never to interrupt")
		}

		s.Write(0x30)
		if !s.SetMode(VBlank) || !s.SetMode(OAM) {
			t.Error("expected VBlank and OAM to interrupt")
		}
		if s.Mode != OAM {
			t.Errorf("expected mode OAM, got %s", ModeName(s.Mode))
		}
	})
}
