// Package ram provides a basic RAM implementation.
package ram

// RAM represents a block of RAM mapped at a fixed offset in the
// address space. Addresses passed to Read and Write are absolute;
// anything outside the block reads as 0 and ignores writes.
type RAM struct {
	data   []uint8
	offset uint16
}

// NewRAM returns a new RAM of size bytes, starting at offset.
func NewRAM(offset uint16, size uint32) *RAM {
	return &RAM{
		data:   make([]uint8, size),
		offset: offset,
	}
}

// Read returns the value at the given address.
func (r *RAM) Read(address uint16) uint8 {
	i := int(address) - int(r.offset)
	if i < 0 || i >= len(r.data) {
		return 0
	}
	return r.data[i]
}

// Write writes the value to the given address.
func (r *RAM) Write(address uint16, value uint8) {
	i := int(address) - int(r.offset)
	if i < 0 || i >= len(r.data) {
		return
	}
	r.data[i] = value
}

// Size returns the size of the RAM in bytes.
func (r *RAM) Size() int {
	return len(r.data)
}

// Bytes returns the backing storage of the RAM.
func (r *RAM) Bytes() []uint8 {
	return r.data
}
