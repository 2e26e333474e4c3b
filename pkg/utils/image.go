package utils

import (
	"image"
	"image/png"
	"io"

	"github.com/thelolagemann/dmgcore/internal/ppu"
	"github.com/thelolagemann/dmgcore/internal/ppu/palette"
	"golang.org/x/image/draw"
)

// FrameImage renders frame through the palette p, scaled up by an
// integer factor with nearest neighbour sampling. A scale below 1
// is treated as 1.
func FrameImage(frame *ppu.FrameBuffer, p palette.Palette, scale int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, ppu.ScreenWidth, ppu.ScreenHeight))
	for y := 0; y < ppu.ScreenHeight; y++ {
		for x := 0; x < ppu.ScreenWidth; x++ {
			img.SetRGBA(x, y, p.RGBA(frame[y][x]))
		}
	}
	if scale <= 1 {
		return img
	}

	scaled := image.NewRGBA(image.Rect(0, 0, ppu.ScreenWidth*scale, ppu.ScreenHeight*scale))
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)
	return scaled
}

// EncodePNG writes img to w as a PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
