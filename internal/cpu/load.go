package cpu

import "encoding/binary"

// pairNames holds the operand names for the 2-bit register pair
// index used by the 16-bit loads and arithmetic.
var pairNames = [4]string{"BC", "DE", "HL", "SP"}

// readPair returns the register pair for the given index, where
// index 3 is SP.
func (c *CPU) readPair(index uint8) uint16 {
	switch index {
	case 0:
		return c.BC.Uint16()
	case 1:
		return c.DE.Uint16()
	case 2:
		return c.HL.Uint16()
	}
	return c.SP
}

// writePair sets the register pair for the given index, where
// index 3 is SP.
func (c *CPU) writePair(index uint8, value uint16) {
	switch index {
	case 0:
		c.BC.SetUint16(value)
	case 1:
		c.DE.SetUint16(value)
	case 2:
		c.HL.SetUint16(value)
	default:
		c.SP = value
	}
}

// readTarget returns the value of the register for the given
// index, or the byte addressed by HL for index 6.
func (c *CPU) readTarget(index uint8) uint8 {
	if index == 6 {
		return c.bus.Read(c.HL.Uint16())
	}
	return *c.registerIndex(index)
}

// writeTarget sets the register for the given index, or the byte
// addressed by HL for index 6.
func (c *CPU) writeTarget(index uint8, value uint8) {
	if index == 6 {
		c.bus.Write(c.HL.Uint16(), value)
		return
	}
	*c.registerIndex(index) = value
}

// push pushes value onto the stack.
func (c *CPU) push(value uint16) {
	c.SP = c.bus.PushWord(c.SP, value)
}

// pop pops a value off the stack.
func (c *CPU) pop() uint16 {
	value, sp := c.bus.PopWord(c.SP)
	c.SP = sp
	return value
}

func init() {
	// LD r, r' (0x40 - 0x7F), with HALT in place of LD (HL),(HL)
	for dst := uint8(0); dst < 8; dst++ {
		for src := uint8(0); src < 8; src++ {
			if dst == 6 && src == 6 {
				continue
			}
			dst, src := dst, src
			cycles := uint8(4)
			if dst == 6 || src == 6 {
				cycles = 8
			}
			DefineInstruction(0x40|dst<<3|src, "LD "+registerNames[dst]+","+registerNames[src], func(c *CPU, _ []uint8) {
				c.writeTarget(dst, c.readTarget(src))
			}, Cycles(cycles))
		}
	}

	// LD r, d8
	for dst := uint8(0); dst < 8; dst++ {
		dst := dst
		cycles := uint8(8)
		if dst == 6 {
			cycles = 12
		}
		DefineInstruction(0x06|dst<<3, "LD "+registerNames[dst]+",d8", func(c *CPU, operands []uint8) {
			c.writeTarget(dst, operands[0])
		}, Length(2), Cycles(cycles))
	}

	// LD rr, d16
	for pair := uint8(0); pair < 4; pair++ {
		pair := pair
		DefineInstruction(0x01|pair<<4, "LD "+pairNames[pair]+",d16", func(c *CPU, operands []uint8) {
			c.writePair(pair, binary.LittleEndian.Uint16(operands))
		}, Length(3), Cycles(12))
	}

	// indirect loads through BC, DE and HL with post increment/decrement
	DefineInstruction(0x02, "LD (BC),A", func(c *CPU, _ []uint8) {
		c.bus.Write(c.BC.Uint16(), c.A)
	}, Cycles(8))
	DefineInstruction(0x0A, "LD A,(BC)", func(c *CPU, _ []uint8) {
		c.A = c.bus.Read(c.BC.Uint16())
	}, Cycles(8))
	DefineInstruction(0x12, "LD (DE),A", func(c *CPU, _ []uint8) {
		c.bus.Write(c.DE.Uint16(), c.A)
	}, Cycles(8))
	DefineInstruction(0x1A, "LD A,(DE)", func(c *CPU, _ []uint8) {
		c.A = c.bus.Read(c.DE.Uint16())
	}, Cycles(8))
	DefineInstruction(0x22, "LD (HL+),A", func(c *CPU, _ []uint8) {
		hl := c.HL.Uint16()
		c.bus.Write(hl, c.A)
		c.HL.SetUint16(hl + 1)
	}, Cycles(8))
	DefineInstruction(0x2A, "LD A,(HL+)", func(c *CPU, _ []uint8) {
		hl := c.HL.Uint16()
		c.A = c.bus.Read(hl)
		c.HL.SetUint16(hl + 1)
	}, Cycles(8))
	DefineInstruction(0x32, "LD (HL-),A", func(c *CPU, _ []uint8) {
		hl := c.HL.Uint16()
		c.bus.Write(hl, c.A)
		c.HL.SetUint16(hl - 1)
	}, Cycles(8))
	DefineInstruction(0x3A, "LD A,(HL-)", func(c *CPU, _ []uint8) {
		hl := c.HL.Uint16()
		c.A = c.bus.Read(hl)
		c.HL.SetUint16(hl - 1)
	}, Cycles(8))

	// absolute and high page loads
	DefineInstruction(0x08, "LD (a16),SP", func(c *CPU, operands []uint8) {
		c.bus.Write16(binary.LittleEndian.Uint16(operands), c.SP)
	}, Length(3), Cycles(20))
	DefineInstruction(0xEA, "LD (a16),A", func(c *CPU, operands []uint8) {
		c.bus.Write(binary.LittleEndian.Uint16(operands), c.A)
	}, Length(3), Cycles(16))
	DefineInstruction(0xFA, "LD A,(a16)", func(c *CPU, operands []uint8) {
		c.A = c.bus.Read(binary.LittleEndian.Uint16(operands))
	}, Length(3), Cycles(16))
	DefineInstruction(0xE0, "LDH (a8),A", func(c *CPU, operands []uint8) {
		c.bus.Write(0xFF00|uint16(operands[0]), c.A)
	}, Length(2), Cycles(12))
	DefineInstruction(0xF0, "LDH A,(a8)", func(c *CPU, operands []uint8) {
		c.A = c.bus.Read(0xFF00 | uint16(operands[0]))
	}, Length(2), Cycles(12))
	DefineInstruction(0xE2, "LD (C),A", func(c *CPU, _ []uint8) {
		c.bus.Write(0xFF00|uint16(c.C), c.A)
	}, Cycles(8))
	DefineInstruction(0xF2, "LD A,(C)", func(c *CPU, _ []uint8) {
		c.A = c.bus.Read(0xFF00 | uint16(c.C))
	}, Cycles(8))

	// stack pointer loads
	DefineInstruction(0xF8, "LD HL,SP+r8", func(c *CPU, operands []uint8) {
		c.HL.SetUint16(c.addSPSigned(operands[0]))
	}, Length(2), Cycles(12))
	DefineInstruction(0xF9, "LD SP,HL", func(c *CPU, _ []uint8) {
		c.SP = c.HL.Uint16()
	}, Cycles(8))

	// PUSH/POP rr, where index 3 is AF rather than SP
	stackPairs := [4]struct {
		name string
		pair func(c *CPU) *RegisterPair
	}{
		{"BC", func(c *CPU) *RegisterPair { return c.BC }},
		{"DE", func(c *CPU) *RegisterPair { return c.DE }},
		{"HL", func(c *CPU) *RegisterPair { return c.HL }},
		{"AF", func(c *CPU) *RegisterPair { return c.AF }},
	}
	for i, p := range stackPairs {
		pair := p.pair
		DefineInstruction(0xC5|uint8(i)<<4, "PUSH "+p.name, func(c *CPU, _ []uint8) {
			c.push(pair(c).Uint16())
		}, Cycles(16))
		DefineInstruction(0xC1|uint8(i)<<4, "POP "+p.name, func(c *CPU, _ []uint8) {
			pair(c).SetUint16(c.pop())
		}, Cycles(12))
	}
}
