package cpu

// Instruction represents a single instruction of the CPU. fn executes
// the instruction against the CPU's borrowed bus and returns the cost
// of the instruction in T-cycles; conditional instructions return one
// of two costs depending on whether the branch was taken.
type Instruction struct {
	name string
	fn   func(*CPU) int
}

// Name returns the mnemonic of the instruction.
func (i Instruction) Name() string {
	return i.name
}

// InstructionSet holds the 256 base instructions, indexed by opcode.
// The eleven slots the hardware leaves undefined stay zero valued;
// executing one surfaces an IllegalOpcodeError from Step.
var InstructionSet [256]Instruction

// InstructionSetCB holds the 256 instructions reached through the
// 0xCB prefix. Every slot is defined.
var InstructionSetCB [256]Instruction

// DefineInstruction defines the instruction with the given opcode in
// the InstructionSet.
func DefineInstruction(opcode uint8, name string, fn func(*CPU) int) {
	InstructionSet[opcode] = Instruction{
		name: name,
		fn:   fn,
	}
}

// DefineInstructionCB defines the instruction with the given opcode in
// the InstructionSetCB.
func DefineInstructionCB(opcode uint8, name string, fn func(*CPU) int) {
	InstructionSetCB[opcode] = Instruction{
		name: name,
		fn:   fn,
	}
}

// illegalOpcodes are the slots of InstructionSet with no hardware
// defined instruction. Note that 0xCB is not among them; it is the
// prefix of the second dispatch table.
var illegalOpcodes = []uint8{
	0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD,
}

func init() {
	DefineInstruction(0xCB, "PREFIX CB", func(c *CPU) int {
		return InstructionSetCB[c.readOperand()].fn(c)
	})
}
