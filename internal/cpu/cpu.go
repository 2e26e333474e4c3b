// Package cpu provides the Sharp LR35902 instruction interpreter:
// the register file, the two opcode tables and the fetch, decode
// and execute loop that drives the rest of the system.
package cpu

import (
	"errors"
	"fmt"

	"github.com/thelolagemann/dmgcore/internal/interrupts"
	"github.com/thelolagemann/dmgcore/pkg/log"
)

const (
	// ClockSpeed is the clock speed of the CPU in T-cycles per second.
	ClockSpeed = 4194304
)

type mode = uint8

const (
	// ModeNormal is the normal CPU mode.
	ModeNormal mode = iota
	// ModeHalt is entered by HALT, and left when an interrupt
	// is both requested and enabled.
	ModeHalt
	// ModeStop is entered by STOP. Without a joypad to wake it,
	// it is left on the same condition as ModeHalt.
	ModeStop
)

// Bus is the memory the CPU executes from.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
	Write16(address uint16, value uint16)
	PushWord(sp uint16, value uint16) uint16
	PopWord(sp uint16) (uint16, uint16)
}

// Ticker is driven by the CPU with the T-cycles taken by every
// step, which is how the PPU and the timer keep time with it.
type Ticker interface {
	Tick(cycles uint8)
}

// CPU represents the Gameboy CPU. It is responsible for executing instructions.
type CPU struct {
	// Registers contains the 8-bit registers, as well as the 16-bit
	// register pairs, SP and PC.
	Registers

	// Cycles is the running total of T-cycles executed.
	Cycles uint64

	bus   Bus
	irq   *interrupts.Service
	clock Ticker
	log   log.Logger

	mode     mode
	imeDelay uint8

	// state of the instruction being executed
	operands [2]uint8
	cycles   uint8
	branched bool
	fault    error
}

// NewCPU creates a new CPU with its registers in their post-boot
// state. The clock Ticker may be nil.
func NewCPU(bus Bus, irq *interrupts.Service, clock Ticker, l log.Logger) *CPU {
	if l == nil {
		l = log.NewNullLogger()
	}
	c := &CPU{
		bus:   bus,
		irq:   irq,
		clock: clock,
		log:   l,
	}
	c.Registers.init()
	return c
}

// Halted reports whether the CPU is waiting in HALT or STOP.
func (c *CPU) Halted() bool {
	return c.mode != ModeNormal
}

// Execute executes a single instruction with the given operand
// bytes, and returns the T-cycles it took. An opcode of 0xCB
// executes the instruction from InstructionSetCB selected by the
// first operand.
func (c *CPU) Execute(opcode uint8, operands []uint8) (uint8, error) {
	instruction := InstructionSet[opcode]
	if !instruction.Defined() {
		return 0, &UnimplementedOpcodeError{Opcode: opcode}
	}
	if len(operands) < int(instruction.length)-1 {
		return 0, fmt.Errorf("%w: %s takes %d, got %d", ErrMissingOperands, instruction.name, instruction.length-1, len(operands))
	}

	c.cycles = instruction.cycles
	c.branched = false
	c.fault = nil
	instruction.fn(c, operands)
	if c.fault != nil {
		return 0, c.fault
	}
	if c.branched {
		c.cycles += instruction.branchCycles
	}
	return c.cycles, nil
}

// Step fetches, decodes and executes the instruction at PC, then
// forwards the cycles it took to the clock Ticker. A halted CPU
// idles for 4 cycles. On an unimplemented opcode PC is left
// pointing at it and nothing is forwarded.
func (c *CPU) Step() (uint8, error) {
	if c.mode != ModeNormal && c.irq.HasInterrupts() {
		c.mode = ModeNormal
	}

	cycles := uint8(4)
	if c.mode == ModeNormal {
		pc := c.PC
		opcode := c.readInstruction()
		instruction := InstructionSet[opcode]

		operands := c.operands[:0]
		for i := uint8(1); i < instruction.length; i++ {
			operands = append(operands, c.readOperand())
		}

		var err error
		cycles, err = c.Execute(opcode, operands)
		if err != nil {
			c.PC = pc
			var unimplemented *UnimplementedOpcodeError
			if errors.As(err, &unimplemented) {
				unimplemented.PC = pc
			}
			c.log.Errorf("cpu: %v", err)
			return 0, err
		}

		if c.imeDelay > 0 {
			c.imeDelay--
			if c.imeDelay == 0 {
				c.irq.IME = true
			}
		}
	}

	c.Cycles += uint64(cycles)
	if c.clock != nil {
		c.clock.Tick(cycles)
	}
	return cycles, nil
}

// readInstruction reads the opcode at PC and advances PC.
func (c *CPU) readInstruction() uint8 {
	opcode := c.bus.Read(c.PC)
	c.PC++
	return opcode
}

// readOperand reads the operand at PC and advances PC.
func (c *CPU) readOperand() uint8 {
	operand := c.bus.Read(c.PC)
	c.PC++
	return operand
}
