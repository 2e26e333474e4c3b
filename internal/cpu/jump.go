package cpu

import (
	"encoding/binary"
	"fmt"
)

// conditionNames holds the names of the 2-bit branch conditions
// encoded by bits 3-4 of the conditional jumps, calls and returns.
var conditionNames = [4]string{"NZ", "Z", "NC", "C"}

// condition evaluates the branch condition for the given index.
func (c *CPU) condition(index uint8) bool {
	switch index {
	case 0:
		return !c.IsFlagSet(FlagZero)
	case 1:
		return c.IsFlagSet(FlagZero)
	case 2:
		return !c.IsFlagSet(FlagCarry)
	}
	return c.IsFlagSet(FlagCarry)
}

// call pushes the address of the next instruction onto the stack and jumps to
// the given address.
//
//	CALL nn
//	nn = 16-bit immediate value
func (c *CPU) call(address uint16) {
	c.push(c.PC)
	c.PC = address
}

// ret pops the return address off the stack and jumps to it.
//
//	RET
func (c *CPU) ret() {
	c.PC = c.pop()
}

// jumpRelative jumps to the address relative to the current PC,
// which already points past the operand.
//
//	JR e
//	e = 8-bit signed immediate value
func (c *CPU) jumpRelative(offset uint8) {
	c.PC += uint16(int8(offset))
}

// branch marks the current instruction as having taken its
// branch, so that its extra cycles are charged.
func (c *CPU) branch() {
	c.branched = true
}

func init() {
	DefineInstruction(0x18, "JR r8", func(c *CPU, operands []uint8) {
		c.jumpRelative(operands[0])
	}, Length(2), Cycles(12))
	DefineInstruction(0xC3, "JP a16", func(c *CPU, operands []uint8) {
		c.PC = binary.LittleEndian.Uint16(operands)
	}, Length(3), Cycles(16))
	DefineInstruction(0xE9, "JP HL", func(c *CPU, _ []uint8) {
		c.PC = c.HL.Uint16()
	})
	DefineInstruction(0xCD, "CALL a16", func(c *CPU, operands []uint8) {
		c.call(binary.LittleEndian.Uint16(operands))
	}, Length(3), Cycles(24))
	DefineInstruction(0xC9, "RET", func(c *CPU, _ []uint8) {
		c.ret()
	}, Cycles(16))
	DefineInstruction(0xD9, "RETI", func(c *CPU, _ []uint8) {
		c.ret()
		c.irq.IME = true
	}, Cycles(16))

	// JR cc, JP cc, CALL cc, RET cc
	for cc := uint8(0); cc < 4; cc++ {
		cc := cc
		name := conditionNames[cc]
		DefineInstruction(0x20|cc<<3, "JR "+name+",r8", func(c *CPU, operands []uint8) {
			if c.condition(cc) {
				c.jumpRelative(operands[0])
				c.branch()
			}
		}, Length(2), Cycles(8), Branch(4))
		DefineInstruction(0xC2|cc<<3, "JP "+name+",a16", func(c *CPU, operands []uint8) {
			if c.condition(cc) {
				c.PC = binary.LittleEndian.Uint16(operands)
				c.branch()
			}
		}, Length(3), Cycles(12), Branch(4))
		DefineInstruction(0xC4|cc<<3, "CALL "+name+",a16", func(c *CPU, operands []uint8) {
			if c.condition(cc) {
				c.call(binary.LittleEndian.Uint16(operands))
				c.branch()
			}
		}, Length(3), Cycles(12), Branch(12))
		DefineInstruction(0xC0|cc<<3, "RET "+name, func(c *CPU, _ []uint8) {
			if c.condition(cc) {
				c.ret()
				c.branch()
			}
		}, Cycles(8), Branch(12))
	}

	// RST n
	for n := uint8(0); n < 8; n++ {
		vector := uint16(n) * 8
		DefineInstruction(0xC7|n<<3, fmt.Sprintf("RST %02XH", vector), func(c *CPU, _ []uint8) {
			c.call(vector)
		}, Cycles(16))
	}
}
