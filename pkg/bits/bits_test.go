package bits

import "testing"

func TestBits(t *testing.T) {
	if Val(0b1000_0000, 7) != 1 || Val(0b1000_0000, 6) != 0 {
		t.Error("Val returned the wrong bit")
	}
	if Set(0, 3) != 0x08 {
		t.Errorf("Set(0, 3) = %#02x", Set(0, 3))
	}
	if Reset(0xFF, 0) != 0xFE {
		t.Errorf("Reset(0xFF, 0) = %#02x", Reset(0xFF, 0))
	}
	if !Test(0x10, 4) || Test(0x10, 5) {
		t.Error("Test returned the wrong bit")
	}
}

func TestReverse(t *testing.T) {
	tests := map[uint8]uint8{
		0x00: 0x00,
		0x01: 0x80,
		0x80: 0x01,
		0xF0: 0x0F,
		0b1100_1010: 0b0101_0011,
	}
	for in, want := range tests {
		if got := Reverse(in); got != want {
			t.Errorf("Reverse(%08b) = %08b, want %08b", in, got, want)
		}
	}
}
