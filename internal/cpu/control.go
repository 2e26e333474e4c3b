package cpu

func init() {
	DefineInstruction(0x00, "NOP", func(c *CPU, _ []uint8) {})
	// STOP is encoded as 0x10 0x00
	DefineInstruction(0x10, "STOP", func(c *CPU, _ []uint8) {
		c.mode = ModeStop
	}, Length(2))
	DefineInstruction(0x76, "HALT", func(c *CPU, _ []uint8) {
		c.mode = ModeHalt
	})
	DefineInstruction(0xF3, "DI", func(c *CPU, _ []uint8) {
		c.irq.IME = false
		c.imeDelay = 0
	})
	// EI takes effect after the instruction that follows it
	DefineInstruction(0xFB, "EI", func(c *CPU, _ []uint8) {
		c.imeDelay = 2
	})
	DefineInstruction(0x27, "DAA", func(c *CPU, _ []uint8) {
		c.decimalAdjust()
	})
	DefineInstruction(0x2F, "CPL", func(c *CPU, _ []uint8) {
		c.A = ^c.A
		c.SetFlag(FlagSubtract)
		c.SetFlag(FlagHalfCarry)
	})
	DefineInstruction(0x37, "SCF", func(c *CPU, _ []uint8) {
		c.setFlags(c.IsFlagSet(FlagZero), false, false, true)
	})
	DefineInstruction(0x3F, "CCF", func(c *CPU, _ []uint8) {
		c.setFlags(c.IsFlagSet(FlagZero), false, false, !c.IsFlagSet(FlagCarry))
	})
}
