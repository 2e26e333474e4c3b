package cpu

import (
	"errors"
	"fmt"
)

var (
	// ErrUnimplementedOpcode is returned when the CPU is asked to
	// execute an opcode without a registered operation.
	ErrUnimplementedOpcode = errors.New("cpu: unimplemented opcode")
	// ErrMissingOperands is returned when an instruction is given
	// fewer operand bytes than its encoding requires.
	ErrMissingOperands = errors.New("cpu: missing operands")
)

// UnimplementedOpcodeError reports the opcode that could not be
// executed, and where it was fetched from.
type UnimplementedOpcodeError struct {
	Opcode   uint8
	Prefixed bool
	PC       uint16
}

func (e *UnimplementedOpcodeError) Error() string {
	if e.Prefixed {
		return fmt.Sprintf("%s: 0xCB 0x%02X at 0x%04X", ErrUnimplementedOpcode, e.Opcode, e.PC)
	}
	return fmt.Sprintf("%s: 0x%02X at 0x%04X", ErrUnimplementedOpcode, e.Opcode, e.PC)
}

func (e *UnimplementedOpcodeError) Unwrap() error {
	return ErrUnimplementedOpcode
}

// Instruction is a decoded instruction: its mnemonic, its encoded
// length, its cost in T-cycles and the operation itself.
type Instruction struct {
	name   string
	length uint8
	cycles uint8
	// branchCycles is added to cycles when a conditional
	// instruction takes its branch.
	branchCycles uint8
	fn           func(c *CPU, operands []uint8)
}

// Name returns the mnemonic of the instruction.
func (i Instruction) Name() string {
	return i.name
}

// Length returns the length of the instruction in bytes,
// including the opcode.
func (i Instruction) Length() uint8 {
	return i.length
}

// Cycles returns the T-cycles taken by the instruction. For a
// conditional instruction this is the cost of not branching.
func (i Instruction) Cycles() uint8 {
	return i.cycles
}

// BranchCycles returns the extra T-cycles taken by a conditional
// instruction when its condition holds.
func (i Instruction) BranchCycles() uint8 {
	return i.branchCycles
}

// Defined reports whether the table slot holds an operation.
func (i Instruction) Defined() bool {
	return i.fn != nil
}

// InstructionSet holds the standard opcodes, and InstructionSetCB
// the opcodes following the 0xCB prefix. Both are populated once
// by the package's init functions and only read afterwards.
var (
	InstructionSet   [256]Instruction
	InstructionSetCB [256]Instruction
)

// InstructionOpt configures an instruction as it is defined.
type InstructionOpt func(*Instruction)

// Length sets the encoded length of the instruction, which
// defaults to 1.
func Length(n uint8) InstructionOpt {
	return func(i *Instruction) {
		i.length = n
	}
}

// Cycles sets the T-cycles of the instruction, which defaults
// to 4.
func Cycles(n uint8) InstructionOpt {
	return func(i *Instruction) {
		i.cycles = n
	}
}

// Branch sets the extra T-cycles taken when a conditional
// instruction branches.
func Branch(n uint8) InstructionOpt {
	return func(i *Instruction) {
		i.branchCycles = n
	}
}

func newInstruction(name string, fn func(*CPU, []uint8), opts ...InstructionOpt) Instruction {
	instruction := Instruction{
		name:   name,
		length: 1,
		cycles: 4,
		fn:     fn,
	}
	for _, opt := range opts {
		opt(&instruction)
	}
	return instruction
}

// DefineInstruction defines the instruction in the InstructionSet,
// with the provided opcode.
func DefineInstruction(opcode uint8, name string, fn func(*CPU, []uint8), opts ...InstructionOpt) {
	InstructionSet[opcode] = newInstruction(name, fn, opts...)
}

// DefineInstructionCB defines the instruction in the
// InstructionSetCB, with the provided opcode. CB instructions are
// two bytes long, prefix included.
func DefineInstructionCB(opcode uint8, name string, fn func(*CPU), opts ...InstructionOpt) {
	opts = append([]InstructionOpt{Length(2), Cycles(8)}, opts...)
	InstructionSetCB[opcode] = newInstruction(name, func(c *CPU, _ []uint8) { fn(c) }, opts...)
}

func init() {
	DefineInstruction(0xCB, "PREFIX CB", func(c *CPU, operands []uint8) {
		instruction := InstructionSetCB[operands[0]]
		if !instruction.Defined() {
			c.fault = &UnimplementedOpcodeError{Opcode: operands[0], Prefixed: true}
			return
		}
		instruction.fn(c, nil)
		c.cycles = instruction.cycles
	}, Length(2))
}
