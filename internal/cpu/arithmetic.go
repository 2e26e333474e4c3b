package cpu

// aluOps are the eight accumulator operations encoded by bits 3-5
// of 0x80-0xBF and 0xC6-0xFE.
var aluOps = [8]struct {
	name string
	fn   func(c *CPU, n uint8)
}{
	{"ADD A,", func(c *CPU, n uint8) { c.add(n, false) }},
	{"ADC A,", func(c *CPU, n uint8) { c.add(n, true) }},
	{"SUB ", func(c *CPU, n uint8) { c.sub(n, false) }},
	{"SBC A,", func(c *CPU, n uint8) { c.sub(n, true) }},
	{"AND ", (*CPU).and},
	{"XOR ", (*CPU).xor},
	{"OR ", (*CPU).or},
	{"CP ", (*CPU).compare},
}

func init() {
	// INC r, DEC r
	for reg := uint8(0); reg < 8; reg++ {
		reg := reg
		cycles := uint8(4)
		if reg == 6 {
			cycles = 12
		}
		DefineInstruction(0x04|reg<<3, "INC "+registerNames[reg], func(c *CPU, _ []uint8) {
			c.writeTarget(reg, c.increment(c.readTarget(reg)))
		}, Cycles(cycles))
		DefineInstruction(0x05|reg<<3, "DEC "+registerNames[reg], func(c *CPU, _ []uint8) {
			c.writeTarget(reg, c.decrement(c.readTarget(reg)))
		}, Cycles(cycles))
	}

	// INC rr, DEC rr, ADD HL,rr - none of which touch Z
	for pair := uint8(0); pair < 4; pair++ {
		pair := pair
		DefineInstruction(0x03|pair<<4, "INC "+pairNames[pair], func(c *CPU, _ []uint8) {
			c.writePair(pair, c.readPair(pair)+1)
		}, Cycles(8))
		DefineInstruction(0x0B|pair<<4, "DEC "+pairNames[pair], func(c *CPU, _ []uint8) {
			c.writePair(pair, c.readPair(pair)-1)
		}, Cycles(8))
		DefineInstruction(0x09|pair<<4, "ADD HL,"+pairNames[pair], func(c *CPU, _ []uint8) {
			c.addHL(c.readPair(pair))
		}, Cycles(8))
	}

	// ALU A, r (0x80 - 0xBF) and ALU A, d8
	for op, alu := range aluOps {
		fn := alu.fn
		for reg := uint8(0); reg < 8; reg++ {
			reg := reg
			cycles := uint8(4)
			if reg == 6 {
				cycles = 8
			}
			DefineInstruction(0x80|uint8(op)<<3|reg, alu.name+registerNames[reg], func(c *CPU, _ []uint8) {
				fn(c, c.readTarget(reg))
			}, Cycles(cycles))
		}
		DefineInstruction(0xC6|uint8(op)<<3, alu.name+"d8", func(c *CPU, operands []uint8) {
			fn(c, operands[0])
		}, Length(2), Cycles(8))
	}

	DefineInstruction(0xE8, "ADD SP,r8", func(c *CPU, operands []uint8) {
		c.SP = c.addSPSigned(operands[0])
	}, Length(2), Cycles(16))
}
