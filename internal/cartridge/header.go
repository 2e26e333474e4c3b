package cartridge

import (
	"fmt"
	"strings"
)

var (
	ramMAP = map[uint8]uint{
		0x00: 0,
		0x01: 2 * 1024,
		0x02: 8 * 1024,
		0x03: 32 * 1024,
		0x04: 128 * 1024,
		0x05: 64 * 1024,
	}
)

// Type is the cartridge type byte stored at 0x0147, which
// describes the memory bank controller and any extra hardware
// present on the cartridge.
type Type uint8

const (
	ROM               Type = 0x00
	MBC1              Type = 0x01
	MBC1RAM           Type = 0x02
	MBC1RAMBATT       Type = 0x03
	MBC2              Type = 0x05
	MBC2BATT          Type = 0x06
	ROMRAM            Type = 0x08
	ROMRAMBATT        Type = 0x09
	MBC3TIMERBATT     Type = 0x0F
	MBC3TIMERRAMBATT  Type = 0x10
	MBC3              Type = 0x11
	MBC3RAM           Type = 0x12
	MBC3RAMBATT       Type = 0x13
	MBC5              Type = 0x19
	MBC5RAM           Type = 0x1A
	MBC5RAMBATT       Type = 0x1B
	MBC5RUMBLE        Type = 0x1C
	MBC5RUMBLERAM     Type = 0x1D
	MBC5RUMBLERAMBATT Type = 0x1E
)

var typeNames = map[Type]string{
	ROM:               "ROM",
	MBC1:              "MBC1",
	MBC1RAM:           "MBC1+RAM",
	MBC1RAMBATT:       "MBC1+RAM+BATTERY",
	MBC2:              "MBC2",
	MBC2BATT:          "MBC2+BATTERY",
	ROMRAM:            "ROM+RAM",
	ROMRAMBATT:        "ROM+RAM+BATTERY",
	MBC3TIMERBATT:     "MBC3+TIMER+BATTERY",
	MBC3TIMERRAMBATT:  "MBC3+TIMER+RAM+BATTERY",
	MBC3:              "MBC3",
	MBC3RAM:           "MBC3+RAM",
	MBC3RAMBATT:       "MBC3+RAM+BATTERY",
	MBC5:              "MBC5",
	MBC5RAM:           "MBC5+RAM",
	MBC5RAMBATT:       "MBC5+RAM+BATTERY",
	MBC5RUMBLE:        "MBC5+RUMBLE",
	MBC5RUMBLERAM:     "MBC5+RUMBLE+RAM",
	MBC5RUMBLERAMBATT: "MBC5+RUMBLE+RAM+BATTERY",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%#02x)", uint8(t))
}

// Controller returns the memory bank controller that governs
// a cartridge of this type. Unknown types are treated as having
// no controller at all.
func (t Type) Controller() Controller {
	switch t {
	case MBC1, MBC1RAM, MBC1RAMBATT:
		return ControllerMBC1
	case MBC2, MBC2BATT:
		return ControllerMBC2
	case MBC3TIMERBATT, MBC3TIMERRAMBATT, MBC3, MBC3RAM, MBC3RAMBATT:
		return ControllerMBC3
	case MBC5, MBC5RAM, MBC5RAMBATT, MBC5RUMBLE, MBC5RUMBLERAM, MBC5RUMBLERAMBATT:
		return ControllerMBC5
	}
	return ControllerNone
}

// Supported reports whether the type is one this package knows
// how to emulate.
func (t Type) Supported() bool {
	_, ok := typeNames[t]
	return ok
}

// Header represents the header of a cartridge, each cartridge has a header and is
// located at the address space 0x0100-0x014F. The header contains information about
// the cartridge itself, and the hardware it expects to run on.
type Header struct {
	// 0x0134-0x0143 - Title of the game, padded with zeroes.
	Title string
	// 0x0147 - the memory bank controller and extra hardware.
	CartridgeType Type
	// 0x0148 - ROM size, calculated as 32kB << n.
	ROMSize uint
	// 0x0149 - size of the external RAM.
	RAMSize        uint
	HeaderChecksum uint8
	GlobalChecksum uint16

	raw [0x50]byte
}

// parseHeader parses the 0x50 bytes of the header, found from
// 0x0100 to 0x014F in the ROM.
func parseHeader(header []byte) Header {
	h := Header{}
	copy(h.raw[:], header)

	h.Title = strings.TrimRight(string(header[0x34:0x44]), "\x00")
	h.CartridgeType = Type(header[0x47])
	h.ROMSize = (32 * 1024) << header[0x48]
	h.RAMSize = ramMAP[header[0x49]]
	h.HeaderChecksum = header[0x4D]
	h.GlobalChecksum = uint16(header[0x4E])<<8 | uint16(header[0x4F])

	return h
}

// Checksum computes the header checksum over 0x0134-0x014C.
func (h *Header) Checksum() uint8 {
	var sum uint8
	for _, b := range h.raw[0x34:0x4D] {
		sum = sum - b - 1
	}
	return sum
}

// Valid reports whether the checksum stored in the header
// matches the computed one.
func (h *Header) Valid() bool {
	return h.Checksum() == h.HeaderChecksum
}

func (h *Header) String() string {
	return fmt.Sprintf("%s | Type: %s | ROM Size: %dkB | RAM Size: %dkB", h.Title, h.CartridgeType, h.ROMSize/1024, h.RAMSize/1024)
}
