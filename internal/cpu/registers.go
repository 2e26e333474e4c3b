package cpu

// Register represents a single 8-bit register.
type Register = uint8

// RegisterPair combines two 8-bit registers into a 16-bit view,
// with High holding the most significant byte.
type RegisterPair struct {
	High *Register
	Low  *Register

	// lowMask is applied to the low byte when the pair is set,
	// which keeps the lower nibble of F clear for AF.
	lowMask uint8
}

// Uint16 returns the value of the RegisterPair as a uint16.
func (r *RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

// SetUint16 splits value into the high and low registers.
func (r *RegisterPair) SetUint16(value uint16) {
	*r.High = uint8(value >> 8)
	*r.Low = uint8(value) & r.lowMask
}

// Registers is the register file of the CPU: the 8-bit registers,
// their 16-bit pairings, the stack pointer and the program
// counter. The register pairs point into the struct itself, so a
// Registers must not be copied once initialised.
type Registers struct {
	A Register
	B Register
	C Register
	D Register
	E Register
	// F holds the flags in its upper nibble; the lower nibble
	// is always zero.
	F Register
	H Register
	L Register

	AF *RegisterPair
	BC *RegisterPair
	DE *RegisterPair
	HL *RegisterPair

	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
}

// NewRegisters returns a register file holding the values left
// behind by the boot ROM.
func NewRegisters() *Registers {
	r := &Registers{}
	r.init()
	return r
}

func (r *Registers) init() {
	r.AF = &RegisterPair{High: &r.A, Low: &r.F, lowMask: 0xF0}
	r.BC = &RegisterPair{High: &r.B, Low: &r.C, lowMask: 0xFF}
	r.DE = &RegisterPair{High: &r.D, Low: &r.E, lowMask: 0xFF}
	r.HL = &RegisterPair{High: &r.H, Low: &r.L, lowMask: 0xFF}
	r.Reset()
}

// Reset sets every register to its post-boot value.
func (r *Registers) Reset() {
	r.AF.SetUint16(0x01B0)
	r.BC.SetUint16(0x0013)
	r.DE.SetUint16(0x00D8)
	r.HL.SetUint16(0x014D)
	r.SP = 0xFFFE
	r.PC = 0x0100
}

// registerNames holds the operand names for the 3-bit register
// index used throughout the instruction encoding. Index 6 is the
// byte addressed by HL rather than a register.
var registerNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

// registerIndex returns a Register pointer for the given index,
// or nil for index 6.
func (r *Registers) registerIndex(index uint8) *Register {
	switch index {
	case 0:
		return &r.B
	case 1:
		return &r.C
	case 2:
		return &r.D
	case 3:
		return &r.E
	case 4:
		return &r.H
	case 5:
		return &r.L
	case 7:
		return &r.A
	}
	return nil
}
