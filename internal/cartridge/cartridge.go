// Package cartridge provides the Cartridge interface for the DMG.
// The cartridge holds the game ROM, any external RAM, and the
// memory bank controller that maps them into the address space.
package cartridge

import (
	"errors"
	"fmt"
)

// ErrImageTooSmall is returned when a ROM image is too short to
// contain a cartridge header.
var ErrImageTooSmall = errors.New("cartridge: image too small")

const (
	// headerEnd is the first address after the cartridge header.
	headerEnd   = 0x150
	romBankSize = 0x4000
	ramBankSize = 0x2000
)

// Cartridge represents a game cartridge. Reads and writes are
// given absolute addresses in the ranges 0x0000-0x7FFF and
// 0xA000-0xBFFF. Writes into 0x0000-0x7FFF are bank control
// writes and never change ROM contents.
type Cartridge interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)

	Header() *Header
	Banks() BankState
}

// Controller identifies the memory bank controller variant of
// a cartridge.
type Controller uint8

const (
	ControllerNone Controller = iota
	ControllerMBC1
	ControllerMBC2
	ControllerMBC3
	ControllerMBC5
)

func (c Controller) String() string {
	switch c {
	case ControllerMBC1:
		return "MBC1"
	case ControllerMBC2:
		return "MBC2"
	case ControllerMBC3:
		return "MBC3"
	case ControllerMBC5:
		return "MBC5"
	}
	return "None"
}

// BankState is a snapshot of a cartridge's bank selection.
type BankState struct {
	Controller Controller
	ROMBank    uint16
	RAMBank    uint8
	RAMEnabled bool
	// ROMBanking is true when the 0x4000-0x5FFF register selects
	// the upper ROM bank bits, and false when it selects the RAM
	// bank. Only MBC1 switches between the two.
	ROMBanking bool
}

// NewCartridge returns the Cartridge for rom, choosing the
// controller from the cartridge type in its header. The image is
// copied, so the caller may reuse rom afterwards.
func NewCartridge(rom []byte) (Cartridge, error) {
	if len(rom) < headerEnd {
		return nil, fmt.Errorf("%w: %d bytes", ErrImageTooSmall, len(rom))
	}

	// parse the cartridge header (0x0100 - 0x014F)
	header := parseHeader(rom[0x100:headerEnd])
	image := append([]byte(nil), rom...)

	switch header.CartridgeType.Controller() {
	case ControllerMBC1:
		return NewMemoryBankedCartridge1(image, &header), nil
	case ControllerMBC2:
		return NewMemoryBankedCartridge2(image, &header), nil
	case ControllerMBC3:
		return NewMemoryBankedCartridge3(image, &header), nil
	case ControllerMBC5:
		return NewMemoryBankedCartridge5(image, &header), nil
	}
	return NewROMCartridge(image, &header), nil
}
