package types

// HardwareAddress represents the address of a hardware
// register of the Game Boy. The hardware registers are mapped
// to memory addresses 0xFF00 - 0xFF7F & 0xFFFF.
type HardwareAddress = uint16

// Region boundaries of the address space. Each constant is the
// first address of its region.
const (
	ROMBank0Start  uint16 = 0x0000
	ROMBankNStart  uint16 = 0x4000
	VRAMStart      uint16 = 0x8000
	ExternalStart  uint16 = 0xA000
	WRAMStart      uint16 = 0xC000
	EchoStart      uint16 = 0xE000
	OAMStart       uint16 = 0xFE00
	UnusableStart  uint16 = 0xFEA0
	IOStart        uint16 = 0xFF00
	HRAMStart      uint16 = 0xFF80
	InterruptStart uint16 = 0xFFFF
)

const (
	// P1 selects and reads the joypad matrix.
	P1 HardwareAddress = 0xFF00
	// SB is the serial transfer data register.
	SB HardwareAddress = 0xFF01
	// SC is the serial transfer control register.
	SC HardwareAddress = 0xFF02
	// DIV is incremented at 16384Hz.
	DIV HardwareAddress = 0xFF04
	// TIMA is incremented at the rate selected by TAC, and
	// reloaded from TMA when it overflows.
	TIMA HardwareAddress = 0xFF05
	// TMA is loaded into TIMA when it overflows.
	TMA HardwareAddress = 0xFF06
	// TAC controls the timer.
	TAC HardwareAddress = 0xFF07
	// IF is used to request interrupts.
	//
	//  Bit 0: V-Blank Interrupt Request (INT 40h)  (1=Request)
	//  Bit 1: LCD STAT Interrupt Request (INT 48h) (1=Request)
	//  Bit 2: Timer Interrupt Request (INT 50h)    (1=Request)
	//  Bit 3: Serial Interrupt Request (INT 58h)   (1=Request)
	//  Bit 4: Joypad Interrupt Request (INT 60h)   (1=Request)
	IF HardwareAddress = 0xFF0F

	NR10 HardwareAddress = 0xFF10
	NR11 HardwareAddress = 0xFF11
	NR12 HardwareAddress = 0xFF12
	NR14 HardwareAddress = 0xFF14
	NR21 HardwareAddress = 0xFF16
	NR22 HardwareAddress = 0xFF17
	NR24 HardwareAddress = 0xFF19
	NR30 HardwareAddress = 0xFF1A
	NR31 HardwareAddress = 0xFF1B
	NR32 HardwareAddress = 0xFF1C
	NR34 HardwareAddress = 0xFF1E
	NR41 HardwareAddress = 0xFF20
	NR42 HardwareAddress = 0xFF21
	NR43 HardwareAddress = 0xFF22
	NR44 HardwareAddress = 0xFF23
	NR50 HardwareAddress = 0xFF24
	NR51 HardwareAddress = 0xFF25
	NR52 HardwareAddress = 0xFF26

	// LCDC is the main LCD control register.
	//
	//  Bit 7 - LCD Display Enable             (0=Off, 1=On)
	//  Bit 6 - Window Tile Map Display Select (0=9800-9BFF, 1=9C00-9FFF)
	//  Bit 5 - Window Display Enable          (0=Off, 1=On)
	//  Bit 4 - BG & Window Tile Data Select   (0=8800-97FF, 1=8000-8FFF)
	//  Bit 3 - BG Tile Map Display Select     (0=9800-9BFF, 1=9C00-9FFF)
	//  Bit 2 - OBJ (Sprite) Size              (0=8x8, 1=8x16)
	//  Bit 1 - OBJ (Sprite) Display Enable    (0=Off, 1=On)
	//  Bit 0 - BG Display                     (0=Off, 1=On)
	LCDC HardwareAddress = 0xFF40
	// STAT holds the LCD mode, the coincidence flag and the
	// interrupt enable bits for each LCD status source.
	//
	//  Bit 6 - LYC=LY Coincidence Interrupt (1=Enable) (Read/Write)
	//  Bit 5 - Mode 2 OAM Interrupt         (1=Enable) (Read/Write)
	//  Bit 4 - Mode 1 V-Blank Interrupt     (1=Enable) (Read/Write)
	//  Bit 3 - Mode 0 H-Blank Interrupt     (1=Enable) (Read/Write)
	//  Bit 2 - Coincidence Flag  (0:LYC<>LY, 1:LYC=LY) (Read Only)
	//  Bit 1-0 - Mode Flag       (Mode 0-3)            (Read Only)
	STAT HardwareAddress = 0xFF41
	// SCY is the vertical background scroll.
	SCY HardwareAddress = 0xFF42
	// SCX is the horizontal background scroll.
	SCX HardwareAddress = 0xFF43
	// LY is the current scanline.
	LY HardwareAddress = 0xFF44
	// LYC is compared against LY on every status update.
	LYC HardwareAddress = 0xFF45
	// DMA starts a transfer from XX00-XX9F into OAM.
	DMA HardwareAddress = 0xFF46
	// BGP is the background and window palette.
	BGP HardwareAddress = 0xFF47
	// OBP0 is the first sprite palette.
	OBP0 HardwareAddress = 0xFF48
	// OBP1 is the second sprite palette.
	OBP1 HardwareAddress = 0xFF49
	// WY is the window's Y position.
	WY HardwareAddress = 0xFF4A
	// WX is the window's X position, plus 7.
	WX HardwareAddress = 0xFF4B

	// IE is the interrupt enable register.
	IE HardwareAddress = 0xFFFF
)
