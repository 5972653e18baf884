package cpu

import (
	"github.com/cespare/xxhash"

	"github.com/gbsemu/sm83/internal/bus"
	"github.com/gbsemu/sm83/internal/interrupts"
	"github.com/gbsemu/sm83/internal/types"
	"github.com/gbsemu/sm83/pkg/bits"
)

const (
	// ClockSpeed is the clock speed of the CPU in T-cycles per second.
	ClockSpeed = 4194304

	// haltCycles is the idle cost reported for a step spent in the
	// halt state with nothing pending.
	haltCycles = 4
	// interruptCycles is the cost of dispatching an interrupt: five
	// M-cycles, two of which push the program counter.
	interruptCycles = 20
)

// CPU is a Sharp LR35902 core. It executes one instruction per Step
// against a borrowed bus, maintaining the register file, the ALU flags
// and the interrupt, halt and stop state.
type CPU struct {
	// PC is the program counter, it points to the next instruction to
	// be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// Registers contains the 8-bit registers, as well as the 16-bit
	// register pairs.
	Registers

	// ime is the interrupt master enable. It gates servicing of
	// pending interrupts and is controlled by DI, EI, RETI and
	// interrupt dispatch.
	ime     bool
	halted  bool
	stopped bool

	// b is the bus borrowed for the duration of the current step.
	b bus.Bus
}

// New creates a CPU in the post-reset state: every register zero,
// interrupts disabled, not halted, not stopped.
func New() *CPU {
	c := &CPU{}

	// create register pairs; AF drops the low nibble of F on every
	// 16-bit write so that F never carries junk flag bits
	c.AF = &RegisterPair{High: &c.A, Low: &c.F, drop: 0x0F}
	c.BC = &RegisterPair{High: &c.B, Low: &c.C}
	c.DE = &RegisterPair{High: &c.D, Low: &c.E}
	c.HL = &RegisterPair{High: &c.H, Low: &c.L}

	return c
}

// Reset returns the CPU to the post-reset state.
func (c *CPU) Reset() {
	c.A, c.F, c.B, c.C, c.D, c.E, c.H, c.L = 0, 0, 0, 0, 0, 0, 0, 0
	c.SP = 0
	c.PC = 0
	c.ime = false
	c.halted = false
	c.stopped = false
}

// ResetDMG loads the documented DMG post-boot register values, for
// running images without a boot ROM.
func (c *CPU) ResetDMG() {
	c.Reset()
	c.AF.SetUint16(0x01B0)
	c.BC.SetUint16(0x0013)
	c.DE.SetUint16(0x00D8)
	c.HL.SetUint16(0x014D)
	c.SP = 0xFFFE
	c.PC = 0x0100
}

// InterruptsEnabled reports the state of the interrupt master enable.
func (c *CPU) InterruptsEnabled() bool { return c.ime }

// SetIME sets the interrupt master enable, for hosts that restore
// machine state.
func (c *CPU) SetIME(enabled bool) { c.ime = enabled }

// Halted reports whether the CPU is in the halt state.
func (c *CPU) Halted() bool { return c.halted }

// Stopped reports whether the CPU has executed STOP.
func (c *CPU) Stopped() bool { return c.stopped }

// Step executes one instruction against the given bus and returns the
// number of T-cycles consumed. Ordering per step:
//
//  1. A halted CPU with nothing both requested and enabled idles for 4
//     cycles; any pending source wakes it, with or without IME.
//  2. With IME set and a source pending, the highest priority source
//     is serviced instead of fetching: 20 cycles.
//  3. Otherwise the opcode under PC is fetched and dispatched.
//
// Step returns an IllegalOpcodeError, with registers and bus
// untouched beyond the opcode read, when PC addresses one of the
// hardware-undefined opcodes.
func (c *CPU) Step(b bus.Bus) (int, error) {
	c.b = b

	pending := interrupts.Pending(b.ReadIO(types.IE), b.ReadIO(types.IF))
	if c.halted {
		if pending == 0 {
			return haltCycles, nil
		}
		c.halted = false
	}

	if c.ime {
		if source, ok := interrupts.Highest(pending); ok {
			c.serviceInterrupt(source)
			return interruptCycles, nil
		}
	}

	opcode := b.Read(c.PC)
	instruction := InstructionSet[opcode]
	if instruction.fn == nil {
		return 0, IllegalOpcodeError{Opcode: opcode, PC: c.PC}
	}
	c.PC++
	return instruction.fn(c), nil
}

// serviceInterrupt dispatches the given source: IME is dropped, the
// current PC is pushed, the request bit is acknowledged and execution
// resumes at the source's vector.
func (c *CPU) serviceInterrupt(source interrupts.Source) {
	c.ime = false
	c.pushStack(c.PC)
	c.b.WriteIO(types.IF, bits.Reset(c.b.ReadIO(types.IF), uint8(source)))
	c.PC = source.Vector()
}

// readOperand reads the next operand byte from memory and advances PC.
func (c *CPU) readOperand() uint8 {
	value := c.b.Read(c.PC)
	c.PC++
	return value
}

// readOperand16 reads a 16-bit operand, least significant byte first.
func (c *CPU) readOperand16() uint16 {
	low := uint16(c.readOperand())
	high := uint16(c.readOperand())
	return high<<8 | low
}

// readByte reads a byte from memory.
func (c *CPU) readByte(address uint16) uint8 {
	return c.b.Read(address)
}

// writeByte writes the given value to the given address.
func (c *CPU) writeByte(address uint16, value uint8) {
	c.b.Write(address, value)
}

// Fingerprint hashes the architectural state of the CPU. Two CPUs with
// the same fingerprint are indistinguishable to a program; the runner
// uses repeated fingerprints at the same PC to detect hangs.
func (c *CPU) Fingerprint() uint64 {
	var state [15]byte
	state[0] = c.A
	state[1] = c.F
	state[2] = c.B
	state[3] = c.C
	state[4] = c.D
	state[5] = c.E
	state[6] = c.H
	state[7] = c.L
	state[8] = uint8(c.SP >> 8)
	state[9] = uint8(c.SP)
	state[10] = uint8(c.PC >> 8)
	state[11] = uint8(c.PC)
	if c.ime {
		state[12] = 1
	}
	if c.halted {
		state[13] = 1
	}
	if c.stopped {
		state[14] = 1
	}
	return xxhash.Sum64(state[:])
}
