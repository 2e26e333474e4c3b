package palette

import (
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestShade(t *testing.T) {
	// the post-boot BGP, 0xFC, maps index 0 to white and the rest to black
	for index, want := range []uint8{0, 3, 3, 3} {
		if got := Shade(0xFC, uint8(index)); got != want {
			t.Errorf("index %d: expected shade %d, got %d", index, want, got)
		}
	}
	for index, want := range []uint8{3, 2, 1, 0} {
		if got := Shade(0x1B, uint8(index)); got != want {
			t.Errorf("index %d: expected shade %d, got %d", index, want, got)
		}
	}
}

func TestByName(t *testing.T) {
	p, ok := ByName("Green")
	if !ok {
		t.Fatal("expected the green palette")
	}
	if got := p.RGBA(3); got != (color.RGBA{R: 0x0F, G: 0x38, B: 0x0F, A: 0xFF}) {
		t.Errorf("unexpected colour %v", got)
	}
	if _, ok := ByName("purple"); ok {
		t.Error("expected no purple palette")
	}
	if diff := cmp.Diff([]string{Green, Greyscale, Red, Yellow}, Names()); diff != "" {
		t.Errorf("unexpected names (-want +got):\n%s", diff)
	}
}
