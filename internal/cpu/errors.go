package cpu

import "fmt"

// IllegalOpcodeError reports that the byte under the program counter
// is one of the eleven opcodes the hardware does not define. The real
// CPU locks up on them; the core surfaces the condition as an error
// without touching registers or the bus, so the host can decide
// whether to halt, log or reset.
type IllegalOpcodeError struct {
	Opcode uint8
	PC     uint16
}

func (e IllegalOpcodeError) Error() string {
	return fmt.Sprintf("illegal opcode 0x%02X at 0x%04X", e.Opcode, e.PC)
}
