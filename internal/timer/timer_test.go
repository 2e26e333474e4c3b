package timer

import (
	"fmt"
	"testing"

	"github.com/thelolagemann/dmgcore/internal/interrupts"
	"github.com/thelolagemann/dmgcore/internal/types"
)

type registers map[uint16]*types.HardwareRegister

func (r registers) RegisterHardware(address types.HardwareAddress, read func() uint8, write func(uint8)) {
	r[address] = types.NewHardwareRegister(address, read, write)
}

func newTestTimer() (*Controller, registers, *interrupts.Service) {
	regs := registers{}
	irq := interrupts.NewService(regs)
	return NewController(regs, irq), regs, irq
}

func tick(c *Controller, cycles int) {
	for ; cycles > 0; cycles-- {
		c.Tick(1)
	}
}

func TestController_DIV(t *testing.T) {
	c, regs, _ := newTestTimer()

	tick(c, 255)
	if got := regs[types.DIV].Read(); got != 0 {
		t.Errorf("expected DIV 0 after 255 cycles, got %d", got)
	}
	c.Tick(1)
	if got := regs[types.DIV].Read(); got != 1 {
		t.Errorf("expected DIV 1 after 256 cycles, got %d", got)
	}

	regs[types.DIV].Write(0x42)
	if got := regs[types.DIV].Read(); got != 0 {
		t.Errorf("expected a write to reset DIV, got %d", got)
	}
}

func TestController_TIMA(t *testing.T) {
	tests := []struct {
		tac    uint8
		period int
	}{
		{0x04, 1024},
		{0x05, 16},
		{0x06, 64},
		{0x07, 256},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("TAC %#02x", tt.tac), func(t *testing.T) {
			c, regs, _ := newTestTimer()
			regs[types.TAC].Write(tt.tac)

			tick(c, tt.period-1)
			if got := regs[types.TIMA].Read(); got != 0 {
				t.Fatalf("expected TIMA 0 before %d cycles, got %d", tt.period, got)
			}
			c.Tick(1)
			if got := regs[types.TIMA].Read(); got != 1 {
				t.Fatalf("expected TIMA 1 after %d cycles, got %d", tt.period, got)
			}
		})
	}

	t.Run("disabled", func(t *testing.T) {
		c, regs, _ := newTestTimer()
		regs[types.TAC].Write(0x01)
		tick(c, 1024)
		if got := regs[types.TIMA].Read(); got != 0 {
			t.Errorf("expected a disabled timer to hold TIMA, got %d", got)
		}
		if got := regs[types.TAC].Read(); got != 0xF9 {
			t.Errorf("expected TAC to read 0xF9, got %#02x", got)
		}
	})
}

func TestController_Overflow(t *testing.T) {
	c, regs, irq := newTestTimer()
	regs[types.TMA].Write(0xF0)
	regs[types.TIMA].Write(0xFF)
	regs[types.TAC].Write(0x05)

	tick(c, 16)
	tick(c, 3)
	if got := regs[types.TIMA].Read(); got != 0 || irq.Requested(interrupts.Timer) {
		t.Fatalf("expected TIMA to read 0 until reloaded, got %#02x", got)
	}
	c.Tick(1)
	if got := regs[types.TIMA].Read(); got != 0xF0 {
		t.Errorf("expected TIMA to be reloaded with 0xF0, got %#02x", got)
	}
	if !irq.Requested(interrupts.Timer) {
		t.Error("expected a timer interrupt on reload")
	}

	t.Run("write cancels reload", func(t *testing.T) {
		c, regs, irq := newTestTimer()
		regs[types.TMA].Write(0xF0)
		regs[types.TIMA].Write(0xFF)
		regs[types.TAC].Write(0x05)

		tick(c, 17)
		regs[types.TIMA].Write(0x10)
		tick(c, 4)
		if got := regs[types.TIMA].Read(); got != 0x10 {
			t.Errorf("expected the written TIMA to stick, got %#02x", got)
		}
		if irq.Requested(interrupts.Timer) {
			t.Error("expected no timer interrupt")
		}
	})
}

func TestController_FallingEdge(t *testing.T) {
	t.Run("DIV reset", func(t *testing.T) {
		c, regs, _ := newTestTimer()
		regs[types.TAC].Write(0x05)
		tick(c, 8)
		regs[types.DIV].Write(0)
		if got := regs[types.TIMA].Read(); got != 1 {
			t.Errorf("expected resetting DIV with bit 3 set to increment TIMA, got %d", got)
		}
	})
	t.Run("TAC disable", func(t *testing.T) {
		c, regs, _ := newTestTimer()
		regs[types.TAC].Write(0x05)
		tick(c, 8)
		regs[types.TAC].Write(0x01)
		if got := regs[types.TIMA].Read(); got != 1 {
			t.Errorf("expected disabling the timer with bit 3 set to increment TIMA, got %d", got)
		}
	})
	t.Run("low bit", func(t *testing.T) {
		c, regs, _ := newTestTimer()
		regs[types.TAC].Write(0x05)
		tick(c, 4)
		regs[types.DIV].Write(0)
		if got := regs[types.TIMA].Read(); got != 0 {
			t.Errorf("expected no increment with bit 3 clear, got %d", got)
		}
	})
}
