package cartridge

import "time"

// RTC is the real time clock found on MBC3+TIMER cartridges. The
// counting registers advance with wall time, and are copied into
// the latched registers when the game writes 0x00 then 0x01 to
// 0x6000-0x7FFF.
type RTC struct {
	Seconds              uint8
	Minutes              uint8
	Hours                uint8
	DaysLower            uint8
	DaysHigherAndControl uint8

	latched    [5]uint8
	latchValue uint8
	lastUpdate time.Time
	now        func() time.Time
}

func newRTC(now func() time.Time) *RTC {
	return &RTC{
		lastUpdate: now(),
		now:        now,
		latchValue: 0xFF,
	}
}

// halted reports whether bit 6 of the day high register, which
// stops the clock, is set.
func (r *RTC) halted() bool {
	return r.DaysHigherAndControl&0x40 != 0
}

// Update advances the counting registers by the whole seconds
// that have elapsed since the last update.
func (r *RTC) Update() {
	now := r.now()
	delta := now.Sub(r.lastUpdate)
	if r.halted() {
		r.lastUpdate = now
		return
	}
	if delta < time.Second {
		return
	}
	r.lastUpdate = r.lastUpdate.Add(delta.Truncate(time.Second))

	total := int(delta.Seconds()) + int(r.Seconds) + int(r.Minutes)*60 + int(r.Hours)*3600
	days := int(r.DaysLower) | int(r.DaysHigherAndControl&0x01)<<8

	r.Seconds = uint8(total % 60)
	total /= 60
	r.Minutes = uint8(total % 60)
	total /= 60
	r.Hours = uint8(total % 24)
	days += total / 24

	if days >= 512 {
		days %= 512
		// day counter carry
		r.DaysHigherAndControl |= 0x80
	}
	r.DaysLower = uint8(days)
	r.DaysHigherAndControl = r.DaysHigherAndControl&0xFE | uint8(days>>8)
}

func (r *RTC) latch() {
	r.Update()
	r.latched = [5]uint8{r.Seconds, r.Minutes, r.Hours, r.DaysLower, r.DaysHigherAndControl}
}

// read returns the latched value of register 0x08-0x0C.
func (r *RTC) read(register uint8) uint8 {
	if register < 0x08 || register > 0x0C {
		return 0xFF
	}
	return r.latched[register-0x08]
}

func (r *RTC) write(register uint8, value uint8) {
	r.Update()
	switch register {
	case 0x08:
		r.Seconds = value & 0x3F
	case 0x09:
		r.Minutes = value & 0x3F
	case 0x0A:
		r.Hours = value & 0x1F
	case 0x0B:
		r.DaysLower = value
	case 0x0C:
		r.DaysHigherAndControl = value & 0xC1
	}
}

// MemoryBankedCartridge3 represents a MemoryBankedCartridge3 cartridge. This cartridge
// type supports up to 128 ROM banks and 4 RAM banks, and may provide a real time clock.
type MemoryBankedCartridge3 struct {
	*memoryBankedCartridge

	rtc *RTC
	// rtcRegister is the RTC register mapped into 0xA000-0xBFFF,
	// or 0 when a RAM bank is mapped instead.
	rtcRegister uint8
}

// NewMemoryBankedCartridge3 returns a new MemoryBankedCartridge3 cartridge.
func NewMemoryBankedCartridge3(rom []byte, header *Header) *MemoryBankedCartridge3 {
	return newMemoryBankedCartridge3(rom, header, time.Now)
}

func newMemoryBankedCartridge3(rom []byte, header *Header, now func() time.Time) *MemoryBankedCartridge3 {
	m := &MemoryBankedCartridge3{
		memoryBankedCartridge: newMemoryBankedCartridge(rom, header, ControllerMBC3, header.RAMSize),
	}
	if header.CartridgeType == MBC3TIMERBATT || header.CartridgeType == MBC3TIMERRAMBATT {
		m.rtc = newRTC(now)
	}
	return m
}

// RTC returns the cartridge's real time clock, or nil if it
// does not have one.
func (m *MemoryBankedCartridge3) RTC() *RTC {
	return m.rtc
}

// Read returns the value from the cartridges ROM or RAM, depending on the bank
// selected.
func (m *MemoryBankedCartridge3) Read(address uint16) uint8 {
	if address >= 0xA000 && address < 0xC000 && m.rtcRegister != 0 {
		if !m.ramEnabled {
			return 0xFF
		}
		return m.rtc.read(m.rtcRegister)
	}
	return m.memoryBankedCartridge.Read(address)
}

// Write attempts to switch the ROM or RAM bank, latches the RTC,
// or writes to the mapped RAM bank or RTC register.
func (m *MemoryBankedCartridge3) Write(address uint16, value uint8) {
	switch {
	case address < 0x2000:
		m.setRAMEnabled(value)
	case address < 0x4000:
		m.romBank = uint16(value & 0x7F)
		if m.romBank == 0 {
			m.romBank = 1
		}
	case address < 0x6000:
		switch {
		case value <= 0x03:
			m.ramBank = value
			m.rtcRegister = 0
		case value >= 0x08 && value <= 0x0C && m.rtc != nil:
			m.rtcRegister = value
		}
	case address < 0x8000:
		if m.rtc == nil {
			return
		}
		if m.rtc.latchValue == 0x00 && value == 0x01 {
			m.rtc.latch()
		}
		m.rtc.latchValue = value
	case address >= 0xA000 && address < 0xC000:
		if m.rtcRegister != 0 {
			if m.ramEnabled {
				m.rtc.write(m.rtcRegister, value)
			}
			return
		}
		m.writeRAM(address, value)
	}
}
