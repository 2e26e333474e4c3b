// Package timer provides an implementation of the Game Boy
// timer. It is used to generate interrupts at a specific
// frequency. The frequency can be configured using the
// types.TAC register.
package timer

import (
	"github.com/thelolagemann/dmgcore/internal/interrupts"
	"github.com/thelolagemann/dmgcore/internal/types"
)

// reloadDelay is the number of T-cycles TIMA reads 0x00 for after
// overflowing, before it is reloaded from TMA.
const reloadDelay = 4

// bits selects the bit of the system counter whose falling edge
// increments TIMA, indexed by the lower 2 bits of TAC.
//
//	00 = 4096Hz   (bit 9)
//	01 = 262144Hz (bit 3)
//	10 = 65536Hz  (bit 5)
//	11 = 16384Hz  (bit 7)
var bits = [4]uint16{1 << 9, 1 << 3, 1 << 5, 1 << 7}

// Controller is a timer controller. DIV is the upper byte of a
// 16-bit system counter incremented every T-cycle, and TIMA is
// incremented on every falling edge of the counter bit selected
// by TAC, while the timer is enabled.
type Controller struct {
	counter uint16

	tima uint8
	tma  uint8
	tac  uint8

	Enabled bool
	bit     uint16

	// cycles left until an overflowed TIMA is reloaded
	reload uint8

	irq *interrupts.Service
}

// NewController returns a new timer controller, attaching the
// DIV, TIMA, TMA and TAC registers to b.
func NewController(b types.HardwareBus, irq *interrupts.Service) *Controller {
	c := &Controller{
		irq: irq,
		bit: bits[0],
	}
	b.RegisterHardware(types.DIV, c.DIV, func(uint8) {
		// any write resets the whole counter
		c.update(0)
	})
	b.RegisterHardware(
		types.TIMA,
		func() uint8 {
			return c.tima
		},
		func(v uint8) {
			// a write during the reload delay cancels the reload
			c.tima = v
			c.reload = 0
		},
	)
	b.RegisterHardware(
		types.TMA,
		func() uint8 {
			return c.tma
		},
		func(v uint8) {
			c.tma = v
		},
	)
	b.RegisterHardware(
		types.TAC,
		func() uint8 {
			return c.tac | 0xF8
		},
		c.writeTAC,
	)
	return c
}

// DIV returns the divider register, the upper byte of the system
// counter.
func (c *Controller) DIV() uint8 {
	return uint8(c.counter >> 8)
}

// Tick advances the timer by the given T-cycles.
func (c *Controller) Tick(cycles uint8) {
	for i := uint8(0); i < cycles; i++ {
		if c.reload > 0 {
			c.reload--
			if c.reload == 0 {
				c.tima = c.tma
				c.irq.Request(interrupts.Timer)
			}
		}
		c.update(c.counter + 1)
	}
}

func (c *Controller) writeTAC(v uint8) {
	before := c.signal()
	c.tac = v & 0x07
	c.bit = bits[v&0x03]
	c.Enabled = v&types.Bit2 != 0

	// disabling the timer, or selecting a bit that is low, is seen
	// as a falling edge
	if before && !c.signal() {
		c.increment()
	}
}

// update sets the system counter, incrementing TIMA if that drops
// the selected bit.
func (c *Controller) update(counter uint16) {
	before := c.signal()
	c.counter = counter
	if before && !c.signal() {
		c.increment()
	}
}

func (c *Controller) signal() bool {
	return c.Enabled && c.counter&c.bit != 0
}

func (c *Controller) increment() {
	c.tima++
	if c.tima == 0 {
		c.reload = reloadDelay
	}
}
