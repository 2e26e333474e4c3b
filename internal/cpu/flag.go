package cpu

// Flag is the bit position of a flag in the F register.
type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// ClearFlag clears a flag from the F register.
func (r *Registers) ClearFlag(flag Flag) {
	r.F &^= 1 << flag
}

// SetFlag sets a flag in the F register.
func (r *Registers) SetFlag(flag Flag) {
	r.F |= 1 << flag
}

// IsFlagSet returns true if the given flag is set.
func (r *Registers) IsFlagSet(flag Flag) bool {
	return r.F&(1<<flag) != 0
}

// setFlags replaces all four flags at once.
func (r *Registers) setFlags(zero, subtract, halfCarry, carry bool) {
	r.F = 0
	if zero {
		r.SetFlag(FlagZero)
	}
	if subtract {
		r.SetFlag(FlagSubtract)
	}
	if halfCarry {
		r.SetFlag(FlagHalfCarry)
	}
	if carry {
		r.SetFlag(FlagCarry)
	}
}

// carry returns the carry flag as 0 or 1.
func (r *Registers) carry() uint8 {
	if r.IsFlagSet(FlagCarry) {
		return 1
	}
	return 0
}
