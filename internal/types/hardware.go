package types

// HardwareBus is implemented by the memory bus, and allows a
// component to take ownership of a hardware register. Reads and
// writes to address are then passed to read and write respectively.
// A nil write makes the register read-only.
type HardwareBus interface {
	RegisterHardware(address HardwareAddress, read func() uint8, write func(v uint8))
}

// Bus is the read/write surface of the address space.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// HardwareRegister represents a hardware register of the Game
// Boy, owned by a component that has attached its handlers with
// HardwareBus.RegisterHardware.
type HardwareRegister struct {
	Address HardwareAddress
	read    func() uint8
	write   func(v uint8)
}

// NewHardwareRegister returns a HardwareRegister for address.
func NewHardwareRegister(address HardwareAddress, read func() uint8, write func(v uint8)) *HardwareRegister {
	return &HardwareRegister{
		Address: address,
		read:    read,
		write:   write,
	}
}

// Read returns the value of the hardware register. A register
// without a read handler reads as 0xFF.
func (h *HardwareRegister) Read() uint8 {
	if h.read == nil {
		return 0xFF
	}
	return h.read()
}

// Write writes the value to the hardware register, if it is
// writable.
func (h *HardwareRegister) Write(value uint8) {
	if h.write != nil {
		h.write(value)
	}
}

// Address represents a region of the address space, which can be
// read from or written to.
type Address struct {
	// Read is a function that is called when the CPU reads from
	// the address.
	Read func(address uint16) uint8
	// Write is a function that is called when the CPU writes to
	// the address.
	Write func(address uint16, value uint8)
}
