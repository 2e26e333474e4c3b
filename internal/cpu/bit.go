package cpu

import (
	"fmt"

	"github.com/thelolagemann/dmgcore/pkg/bits"
)

// testBit tests the bit at the given position in value.
//
//	BIT n, r
//	n = 0-7
//	r = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if bit n of Register r is 0.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func (c *CPU) testBit(value uint8, bit uint8) {
	c.setFlags(!bits.Test(value, bit), false, true, c.IsFlagSet(FlagCarry))
}

func init() {
	for bit := uint8(0); bit < 8; bit++ {
		for reg := uint8(0); reg < 8; reg++ {
			bit, reg := bit, reg
			name := fmt.Sprintf("%d,%s", bit, registerNames[reg])

			// BIT only reads (HL), so it is cheaper than RES and SET
			bitCycles, writeCycles := uint8(8), uint8(8)
			if reg == 6 {
				bitCycles, writeCycles = 12, 16
			}

			DefineInstructionCB(0x40|bit<<3|reg, "BIT "+name, func(c *CPU) {
				c.testBit(c.readTarget(reg), bit)
			}, Cycles(bitCycles))
			DefineInstructionCB(0x80|bit<<3|reg, "RES "+name, func(c *CPU) {
				c.writeTarget(reg, bits.Reset(c.readTarget(reg), bit))
			}, Cycles(writeCycles))
			DefineInstructionCB(0xC0|bit<<3|reg, "SET "+name, func(c *CPU) {
				c.writeTarget(reg, bits.Set(c.readTarget(reg), bit))
			}, Cycles(writeCycles))
		}
	}
}
