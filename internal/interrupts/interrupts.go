// Package interrupts provides the interrupt request service. The
// PPU and other subsystems raise requests through it; dispatching
// them into the instruction stream is left to the CPU's consumer.
package interrupts

import (
	"fmt"

	"github.com/thelolagemann/dmgcore/internal/types"
)

// Interrupt identifies an interrupt source by its bit position in
// the IF and IE registers. A lower bit has a higher priority.
type Interrupt uint8

const (
	// VBlank is requested every time the PPU enters V-Blank.
	VBlank Interrupt = iota
	// LCD is requested by the LCD STAT register (types.STAT),
	// when one of its enabled conditions is met.
	LCD
	// Timer is requested when TIMA overflows.
	Timer
	// Serial is requested when a serial transfer completes.
	Serial
	// Joypad is requested when a selected joypad line goes low.
	Joypad
)

const (
	VBlankFlag = types.Bit0
	LCDFlag    = types.Bit1
	TimerFlag  = types.Bit2
	SerialFlag = types.Bit3
	JoypadFlag = types.Bit4
)

// Flag returns the bit mask of the interrupt in IF and IE.
func (i Interrupt) Flag() uint8 {
	return 1 << i
}

// Vector returns the address the CPU jumps to when servicing
// the interrupt.
func (i Interrupt) Vector() uint16 {
	return 0x0040 + uint16(i)*8
}

func (i Interrupt) String() string {
	switch i {
	case VBlank:
		return "VBlank"
	case LCD:
		return "LCD"
	case Timer:
		return "Timer"
	case Serial:
		return "Serial"
	case Joypad:
		return "Joypad"
	}
	return fmt.Sprintf("Interrupt(%d)", uint8(i))
}

// Service is the interrupt service, used to request interrupts
// and to inspect which ones are pending.
//
// When an interrupt is requested, the corresponding bit in the
// Flag register is set. When an interrupt is enabled, the
// corresponding bit in the Enable register is set. IME is the
// master enable toggled by the DI, EI and RETI instructions.
type Service struct {
	Flag   uint8 // interrupt Flag (types.IF)
	Enable uint8 // interrupt Enable (types.IE)
	IME    bool
}

// NewService returns a new Service, attaching the IF and IE
// registers to b.
func NewService(b types.HardwareBus) *Service {
	s := &Service{}
	b.RegisterHardware(
		types.IF,
		func() uint8 {
			return s.Flag | 0xE0 // the upper 3 bits are always set
		},
		func(v uint8) {
			s.Flag = v & 0x1F // only the first 5 bits are used
		},
	)
	b.RegisterHardware(
		types.IE,
		func() uint8 {
			return s.Enable
		},
		func(v uint8) {
			s.Enable = v
		},
	)
	return s
}

// Request requests the given interrupt, by setting the
// corresponding bit in the Flag register.
func (s *Service) Request(i Interrupt) {
	s.Flag |= i.Flag()
}

// Requested reports whether i has been requested.
func (s *Service) Requested(i Interrupt) bool {
	return s.Flag&i.Flag() != 0
}

// Acknowledge clears the request for i.
func (s *Service) Acknowledge(i Interrupt) {
	s.Flag &^= i.Flag()
}

// HasInterrupts returns true if there are any interrupts
// that are requested and enabled.
func (s *Service) HasInterrupts() bool {
	return s.Enable&s.Flag&0x1F != 0
}

// Pending returns the interrupts that are both requested and
// enabled, highest priority first.
func (s *Service) Pending() []Interrupt {
	var pending []Interrupt
	for i := VBlank; i <= Joypad; i++ {
		if s.Flag&s.Enable&i.Flag() != 0 {
			pending = append(pending, i)
		}
	}
	return pending
}
