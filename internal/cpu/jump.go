package cpu

import "fmt"

// pushStack pushes a 16-bit value onto the stack, high byte first.
func (c *CPU) pushStack(value uint16) {
	c.SP--
	c.writeByte(c.SP, uint8(value>>8))
	c.SP--
	c.writeByte(c.SP, uint8(value))
}

// popStack pops a 16-bit value off the stack, low byte first.
func (c *CPU) popStack() uint16 {
	low := uint16(c.readByte(c.SP))
	c.SP++
	high := uint16(c.readByte(c.SP))
	c.SP++
	return high<<8 | low
}

// jumpRelative adds the signed 8-bit operand to PC.
//
//	JR e8
//
//	Flags affected:
//	None.
func (c *CPU) jumpRelative() {
	offset := int8(c.readOperand())
	c.PC = uint16(int32(c.PC) + int32(offset))
}

// call pushes the address of the next instruction onto the stack and
// jumps to the 16-bit operand.
//
//	CALL a16
//
//	Flags affected:
//	None.
func (c *CPU) call() {
	address := c.readOperand16()
	c.pushStack(c.PC)
	c.PC = address
}

// conditionNameMap is ordered to match the cc encoding of the
// conditional jump, call and return opcodes.
var conditionNameMap = []string{"NZ", "Z", "NC", "C"}

// condition evaluates the cc encoding: NZ, Z, NC, C.
func (c *CPU) condition(index uint8) bool {
	switch index {
	case 0:
		return !c.isFlagSet(FlagZero)
	case 1:
		return c.isFlagSet(FlagZero)
	case 2:
		return !c.isFlagSet(FlagCarry)
	case 3:
		return c.isFlagSet(FlagCarry)
	}
	panic("cpu: invalid condition index")
}

func init() {
	// 0x18 - JR e8
	DefineInstruction(0x18, "JR e8", func(c *CPU) int {
		c.jumpRelative()
		return 12
	})
	// 0xC3 - JP a16
	DefineInstruction(0xC3, "JP a16", func(c *CPU) int {
		c.PC = c.readOperand16()
		return 16
	})
	// 0xE9 - JP HL
	DefineInstruction(0xE9, "JP HL", func(c *CPU) int {
		c.PC = c.HL.Uint16()
		return 4
	})
	// 0xCD - CALL a16
	DefineInstruction(0xCD, "CALL a16", func(c *CPU) int {
		c.call()
		return 24
	})
	// 0xC9 - RET
	DefineInstruction(0xC9, "RET", func(c *CPU) int {
		c.PC = c.popStack()
		return 16
	})
	// 0xD9 - RETI
	DefineInstruction(0xD9, "RETI", func(c *CPU) int {
		c.PC = c.popStack()
		c.ime = true
		return 16
	})

	// 0x20, 0x28, 0x30, 0x38 - JR cc, e8
	// 0xC2, 0xCA, 0xD2, 0xDA - JP cc, a16
	// 0xC4, 0xCC, 0xD4, 0xDC - CALL cc, a16
	// 0xC0, 0xC8, 0xD0, 0xD8 - RET cc
	for i := uint8(0); i < 4; i++ {
		i := i
		DefineInstruction(0x20+i*0x08, fmt.Sprintf("JR %s, e8", conditionNameMap[i]), func(c *CPU) int {
			if c.condition(i) {
				c.jumpRelative()
				return 12
			}
			c.PC++
			return 8
		})
		DefineInstruction(0xC2+i*0x08, fmt.Sprintf("JP %s, a16", conditionNameMap[i]), func(c *CPU) int {
			if c.condition(i) {
				c.PC = c.readOperand16()
				return 16
			}
			c.PC += 2
			return 12
		})
		DefineInstruction(0xC4+i*0x08, fmt.Sprintf("CALL %s, a16", conditionNameMap[i]), func(c *CPU) int {
			if c.condition(i) {
				c.call()
				return 24
			}
			c.PC += 2
			return 12
		})
		DefineInstruction(0xC0+i*0x08, fmt.Sprintf("RET %s", conditionNameMap[i]), func(c *CPU) int {
			if c.condition(i) {
				c.PC = c.popStack()
				return 20
			}
			return 8
		})
	}

	// 0xC7..0xFF - RST vec
	for i := uint8(0); i < 8; i++ {
		i := i
		vector := uint16(i) * 0x08
		DefineInstruction(0xC7+i*0x08, fmt.Sprintf("RST $%02X", vector), func(c *CPU) int {
			c.pushStack(c.PC)
			c.PC = vector
			return 16
		})
	}
}
