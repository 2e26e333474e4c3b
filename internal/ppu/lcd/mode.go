package lcd

// Mode represents a mode of the LCD, as reported in bits 0-1 of
// the status register.
type Mode = uint8

const (
	// HBlank is the horizontal blanking mode. The CPU can access both the display RAM and OAM.
	HBlank Mode = iota
	// VBlank is the vertical blanking mode. The CPU can access both the display RAM and OAM.
	VBlank
	// OAM is the OAM mode. The CPU can access OAM but not the display RAM.
	OAM
	// VRAM is the VRAM mode. The CPU can access neither the display RAM nor OAM.
	VRAM
)

var modeNames = [4]string{"HBlank", "VBlank", "OAM", "VRAM"}

// ModeName returns the name of the mode.
func ModeName(m Mode) string {
	return modeNames[m&0x03]
}
