package interrupts

import (
	"github.com/gbsemu/sm83/internal/bus"
	"github.com/gbsemu/sm83/internal/types"
	"github.com/gbsemu/sm83/pkg/bits"
)

// Source is one of the five interrupt sources, ordered by priority.
// The bit index of a source in the IF and IE registers equals its
// Source value, and a lower value wins arbitration.
type Source uint8

const (
	// VBlank is requested every time the PPU enters the vertical
	// blanking period. Highest priority.
	VBlank Source = iota
	// LCD is requested by the LCD STAT register when one of its
	// configured conditions is met.
	LCD
	// Timer is requested when the timer counter overflows.
	Timer
	// Serial is requested when a serial transfer completes.
	Serial
	// Joypad is requested on a high to low transition of a selected
	// joypad line. Lowest priority.
	Joypad

	numSources
)

// sourceMask covers the five meaningful bits of IF and IE.
const sourceMask = types.Bit0 | types.Bit1 | types.Bit2 | types.Bit3 | types.Bit4

// Mask returns the IF/IE bit of the source.
func (s Source) Mask() uint8 {
	return 1 << s
}

// Vector returns the fixed address the CPU jumps to when servicing
// the source: 0x0040, 0x0048, 0x0050, 0x0058 or 0x0060.
func (s Source) Vector() uint16 {
	return 0x0040 + uint16(s)*8
}

func (s Source) String() string {
	switch s {
	case VBlank:
		return "VBlank"
	case LCD:
		return "LCD"
	case Timer:
		return "Timer"
	case Serial:
		return "Serial"
	case Joypad:
		return "Joypad"
	}
	return "Unknown"
}

// Pending returns the set of sources that are both requested and
// enabled. Bits above the five sources are ignored.
func Pending(enable, flag uint8) uint8 {
	return enable & flag & sourceMask
}

// Highest returns the highest priority source in the given pending
// set, which is the lowest set bit. ok is false when the set is empty.
func Highest(pending uint8) (s Source, ok bool) {
	for s = VBlank; s < numSources; s++ {
		if bits.Test(pending, uint8(s)) {
			return s, true
		}
	}
	return 0, false
}

// Request raises the source's request bit in IF. External collaborators
// (PPU, timer, serial link, joypad) call this to interrupt the CPU.
func Request(b bus.Bus, s Source) {
	b.WriteIO(types.IF, bits.Set(b.ReadIO(types.IF), uint8(s)))
}
