package ppu

import "github.com/thelolagemann/dmgcore/internal/types"

// dmaLength is the number of bytes copied by an OAM DMA transfer.
const dmaLength = 0xA0

// DMA copies a page of memory into OAM when its register is
// written. The transfer completes immediately.
type DMA struct {
	value uint8
	bus   Bus
}

// NewDMA returns a DMA that owns the DMA register of bus.
func NewDMA(bus Bus) *DMA {
	d := &DMA{bus: bus}
	bus.RegisterHardware(types.DMA, func() uint8 {
		return d.value
	}, d.transfer)
	return d
}

// transfer copies XX00-XX9F into OAM, where XX is value.
func (d *DMA) transfer(value uint8) {
	d.value = value
	source := uint16(value) << 8

	// a source above work RAM is read through its echo instead
	if source >= types.EchoStart {
		source &^= 0x2000
	}
	for i := uint16(0); i < dmaLength; i++ {
		d.bus.Write(oamStart+i, d.bus.Read(source+i))
	}
}
