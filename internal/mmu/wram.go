package mmu

// WRAM is the 8kB of working RAM mapped at 0xC000-0xDFFF. The
// region 0xE000-0xFDFF echoes its first 7.5kB.
type WRAM struct {
	raw [0x2000]uint8
}

// NewWRAM returns a new, zeroed WRAM.
func NewWRAM() *WRAM {
	return &WRAM{}
}

// Read reads from the working RAM or its echo.
func (w *WRAM) Read(addr uint16) uint8 {
	return w.raw[(addr-0xC000)&0x1FFF]
}

// Write writes to the working RAM or its echo.
func (w *WRAM) Write(addr uint16, v uint8) {
	w.raw[(addr-0xC000)&0x1FFF] = v
}
