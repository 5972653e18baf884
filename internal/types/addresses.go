package types

// HardwareAddress is the address of a memory mapped hardware register.
type HardwareAddress = uint16

const (
	// SB is the address of the serial transfer data register. A byte
	// written here is shifted out when a transfer is started via SC.
	SB HardwareAddress = 0xFF01
	// SC is the address of the serial transfer control register.
	// Writing a value with Bit7 set starts a transfer of the byte
	// currently held in SB.
	SC HardwareAddress = 0xFF02
	// IF is the address of the interrupt flag register. Each of the
	// lower 5 bits holds a pending interrupt request; writing a 0
	// clears the request.
	IF HardwareAddress = 0xFF0F
	// IE is the address of the interrupt enable register. Each of the
	// lower 5 bits masks the interrupt source with the same bit index
	// in IF.
	IE HardwareAddress = 0xFFFF
)
