package ppu

import "github.com/cespare/xxhash"

// FrameBuffer holds a complete frame as shades 0-3, indexed by
// row and then column. Mapping the shades to colours is left to
// the consumer.
type FrameBuffer [ScreenHeight][ScreenWidth]uint8

// Hash returns a digest of the frame, which is equal for equal
// frames.
func (f *FrameBuffer) Hash() uint64 {
	b := make([]byte, 0, ScreenWidth*ScreenHeight)
	for y := range f {
		b = append(b, f[y][:]...)
	}
	return xxhash.Sum64(b)
}

// Row returns a copy of row y.
func (f *FrameBuffer) Row(y int) [ScreenWidth]uint8 {
	return f[y]
}
