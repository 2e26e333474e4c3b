package cpu

// rotateLeftCarry rotates n left by one, copying bit 7 into both
// bit 0 and the carry flag.
//
//	RLC n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeftCarry(n uint8) uint8 {
	result := n<<1 | n>>7
	c.setFlags(result == 0, false, false, n&0x80 != 0)
	return result
}

// rotateRightCarry rotates n right by one, copying bit 0 into
// both bit 7 and the carry flag.
//
//	RRC n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRightCarry(n uint8) uint8 {
	result := n>>1 | n<<7
	c.setFlags(result == 0, false, false, n&0x01 != 0)
	return result
}

// rotateLeftThroughCarry rotates n left through the carry flag.
//
//	RL n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeftThroughCarry(n uint8) uint8 {
	result := n<<1 | c.carry()
	c.setFlags(result == 0, false, false, n&0x80 != 0)
	return result
}

// rotateRightThroughCarry rotates n right through the carry flag.
//
//	RR n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRightThroughCarry(n uint8) uint8 {
	result := n>>1 | c.carry()<<7
	c.setFlags(result == 0, false, false, n&0x01 != 0)
	return result
}

// shiftLeftArithmetic shifts n left into the carry flag. Bit 0
// is reset.
//
//	SLA n
func (c *CPU) shiftLeftArithmetic(n uint8) uint8 {
	result := n << 1
	c.setFlags(result == 0, false, false, n&0x80 != 0)
	return result
}

// shiftRightArithmetic shifts n right into the carry flag. Bit 7
// keeps its value.
//
//	SRA n
func (c *CPU) shiftRightArithmetic(n uint8) uint8 {
	result := n>>1 | n&0x80
	c.setFlags(result == 0, false, false, n&0x01 != 0)
	return result
}

// shiftRightLogical shifts n right into the carry flag. Bit 7
// is reset.
//
//	SRL n
func (c *CPU) shiftRightLogical(n uint8) uint8 {
	result := n >> 1
	c.setFlags(result == 0, false, false, n&0x01 != 0)
	return result
}

// swap the upper and lower nibbles of a byte.
//
//	SWAP n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) swap(n uint8) uint8 {
	c.setFlags(n == 0, false, false, false)
	return n<<4 | n>>4
}

func init() {
	// the accumulator rotates always clear the zero flag
	DefineInstruction(0x07, "RLCA", func(c *CPU, _ []uint8) {
		c.A = c.rotateLeftCarry(c.A)
		c.ClearFlag(FlagZero)
	})
	DefineInstruction(0x0F, "RRCA", func(c *CPU, _ []uint8) {
		c.A = c.rotateRightCarry(c.A)
		c.ClearFlag(FlagZero)
	})
	DefineInstruction(0x17, "RLA", func(c *CPU, _ []uint8) {
		c.A = c.rotateLeftThroughCarry(c.A)
		c.ClearFlag(FlagZero)
	})
	DefineInstruction(0x1F, "RRA", func(c *CPU, _ []uint8) {
		c.A = c.rotateRightThroughCarry(c.A)
		c.ClearFlag(FlagZero)
	})

	// CB 0x00 - 0x3F
	shifts := [8]struct {
		name string
		fn   func(c *CPU, n uint8) uint8
	}{
		{"RLC", (*CPU).rotateLeftCarry},
		{"RRC", (*CPU).rotateRightCarry},
		{"RL", (*CPU).rotateLeftThroughCarry},
		{"RR", (*CPU).rotateRightThroughCarry},
		{"SLA", (*CPU).shiftLeftArithmetic},
		{"SRA", (*CPU).shiftRightArithmetic},
		{"SWAP", (*CPU).swap},
		{"SRL", (*CPU).shiftRightLogical},
	}
	for op, shift := range shifts {
		for reg := uint8(0); reg < 8; reg++ {
			reg, fn := reg, shift.fn
			opts := []InstructionOpt{}
			if reg == 6 {
				opts = append(opts, Cycles(16))
			}
			DefineInstructionCB(uint8(op)<<3|reg, shift.name+" "+registerNames[reg], func(c *CPU) {
				c.writeTarget(reg, fn(c, c.readTarget(reg)))
			}, opts...)
		}
	}
}
