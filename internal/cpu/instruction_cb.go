package cpu

import "fmt"

// defineTransformCB defines a row of eight CB-prefixed opcodes that
// read a register (or (HL)), transform it, and write it back. The
// returned cycle counts include the 0xCB prefix fetch.
func defineTransformCB(base uint8, name string, transform func(c *CPU, value uint8) uint8) {
	for i := uint8(0); i < 8; i++ {
		i := i
		if i == 6 {
			DefineInstructionCB(base+i, fmt.Sprintf(name, "(HL)"), func(c *CPU) int {
				address := c.HL.Uint16()
				c.writeByte(address, transform(c, c.readByte(address)))
				return 16
			})
			continue
		}
		DefineInstructionCB(base+i, fmt.Sprintf(name, registerNameMap[i]), func(c *CPU) int {
			reg := c.registerPointer(i)
			*reg = transform(c, *reg)
			return 8
		})
	}
}

func init() {
	// 0x00..0x3F - rotate, shift and swap rows
	defineTransformCB(0x00, "RLC %s", (*CPU).rotateLeftCarry)
	defineTransformCB(0x08, "RRC %s", (*CPU).rotateRightCarry)
	defineTransformCB(0x10, "RL %s", (*CPU).rotateLeftThroughCarry)
	defineTransformCB(0x18, "RR %s", (*CPU).rotateRightThroughCarry)
	defineTransformCB(0x20, "SLA %s", (*CPU).shiftLeftArithmetic)
	defineTransformCB(0x28, "SRA %s", (*CPU).shiftRightArithmetic)
	defineTransformCB(0x30, "SWAP %s", (*CPU).swap)
	defineTransformCB(0x38, "SRL %s", (*CPU).shiftRightLogical)

	// 0x40..0x7F - BIT b, r
	for bit := uint8(0); bit < 8; bit++ {
		bit := bit
		for i := uint8(0); i < 8; i++ {
			i := i
			opcode := 0x40 + bit*0x08 + i
			if i == 6 {
				DefineInstructionCB(opcode, fmt.Sprintf("BIT %d, (HL)", bit), func(c *CPU) int {
					c.testBit(bit, c.readByte(c.HL.Uint16()))
					return 12
				})
				continue
			}
			DefineInstructionCB(opcode, fmt.Sprintf("BIT %d, %s", bit, registerNameMap[i]), func(c *CPU) int {
				c.testBit(bit, *c.registerPointer(i))
				return 8
			})
		}
	}

	// 0x80..0xBF - RES b, r / 0xC0..0xFF - SET b, r
	for bit := uint8(0); bit < 8; bit++ {
		bit := bit
		defineTransformCB(0x80+bit*0x08, fmt.Sprintf("RES %d, %%s", bit), func(c *CPU, value uint8) uint8 {
			return c.resetBit(bit, value)
		})
		defineTransformCB(0xC0+bit*0x08, fmt.Sprintf("SET %d, %%s", bit), func(c *CPU, value uint8) uint8 {
			return c.setBit(bit, value)
		})
	}
}
