package bus

import (
	"github.com/gbsemu/sm83/internal/types"
)

// Bus is the single capability the CPU borrows from its host for the
// duration of one step. Implementations map reads and writes to
// cartridge ROM, RAM, video memory, I/O registers and so on; the CPU
// makes no assumption about mapping or side effects.
//
// ReadIO and WriteIO access the small set of registers the CPU
// addresses by name (types.IF and types.IE). Implementations may alias
// them to Read and Write.
type Bus interface {
	// Read returns the byte currently visible at the given address.
	Read(address uint16) uint8
	// Write stores a byte at the given address. Implementations are
	// free to ignore writes to read only areas.
	Write(address uint16, value uint8)
	// ReadIO returns the byte held by the named hardware register.
	ReadIO(address types.HardwareAddress) uint8
	// WriteIO stores a byte into the named hardware register.
	WriteIO(address types.HardwareAddress, value uint8)
}
