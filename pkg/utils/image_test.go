package utils

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/thelolagemann/dmgcore/internal/ppu"
	"github.com/thelolagemann/dmgcore/internal/ppu/palette"
)

func TestFrameImage(t *testing.T) {
	var frame ppu.FrameBuffer
	frame[0][0] = 3
	frame[143][159] = 1
	greyscale, _ := palette.ByName(palette.Greyscale)

	img := FrameImage(&frame, greyscale, 1)
	if img.Bounds().Dx() != ppu.ScreenWidth || img.Bounds().Dy() != ppu.ScreenHeight {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{A: 0xFF}) {
		t.Errorf("expected black, got %v", got)
	}
	if got := img.RGBAAt(159, 143); got != (color.RGBA{R: 0xCC, G: 0xCC, B: 0xCC, A: 0xFF}) {
		t.Errorf("expected light grey, got %v", got)
	}

	scaled := FrameImage(&frame, greyscale, 3)
	if scaled.Bounds().Dx() != ppu.ScreenWidth*3 || scaled.Bounds().Dy() != ppu.ScreenHeight*3 {
		t.Fatalf("unexpected bounds %v", scaled.Bounds())
	}
	for _, p := range [][2]int{{0, 0}, {2, 2}} {
		if got := scaled.RGBAAt(p[0], p[1]); got != (color.RGBA{A: 0xFF}) {
			t.Errorf("%v: expected black, got %v", p, got)
		}
	}
	if got := scaled.RGBAAt(3, 3); got != (color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}) {
		t.Errorf("expected white, got %v", got)
	}

	var buf bytes.Buffer
	if err := EncodePNG(&buf, img); err != nil {
		t.Fatal(err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("expected the PNG to keep its bounds, got %v", decoded.Bounds())
	}
}
