package cpu

import "fmt"

// and performs a bitwise AND between A and the given value, storing
// the result in A.
//
//	AND A, n
//	n = 8-bit value
//
//	Flags affected:
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func (c *CPU) and(value uint8) {
	c.A &= value
	c.setFlags(c.A == 0, false, true, false)
}

// xor performs a bitwise XOR between A and the given value, storing
// the result in A.
//
//	XOR A, n
//	n = 8-bit value
//
//	Flags affected:
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) xor(value uint8) {
	c.A ^= value
	c.setFlags(c.A == 0, false, false, false)
}

// or performs a bitwise OR between A and the given value, storing the
// result in A.
//
//	OR A, n
//	n = 8-bit value
//
//	Flags affected:
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) or(value uint8) {
	c.A |= value
	c.setFlags(c.A == 0, false, false, false)
}

// compare subtracts the given value from A without storing the result,
// setting the flags as SUB would.
//
//	CP A, n
//	n = 8-bit value
//
//	Flags affected:
//	Z - Set if A equals n.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if A is less than n.
func (c *CPU) compare(value uint8) {
	difference := c.A - value
	c.setFlags(difference == 0, true, c.A&0x0F < value&0x0F, c.A < value)
}

func init() {
	// 0xA0..0xBF - AND/XOR/OR/CP A, r
	logical := []struct {
		base uint8
		name string
		fn   func(c *CPU, value uint8)
	}{
		{0xA0, "AND A, %s", (*CPU).and},
		{0xA8, "XOR A, %s", (*CPU).xor},
		{0xB0, "OR A, %s", (*CPU).or},
		{0xB8, "CP A, %s", (*CPU).compare},
	}
	for _, op := range logical {
		op := op
		for i := uint8(0); i < 8; i++ {
			i := i
			if i == 6 {
				DefineInstruction(op.base+i, fmt.Sprintf(op.name, "(HL)"), func(c *CPU) int {
					op.fn(c, c.readByte(c.HL.Uint16()))
					return 8
				})
				continue
			}
			DefineInstruction(op.base+i, fmt.Sprintf(op.name, registerNameMap[i]), func(c *CPU) int {
				op.fn(c, *c.registerPointer(i))
				return 4
			})
		}
	}

	// 0xE6 - AND A, d8
	DefineInstruction(0xE6, "AND A, d8", func(c *CPU) int {
		c.and(c.readOperand())
		return 8
	})
	// 0xEE - XOR A, d8
	DefineInstruction(0xEE, "XOR A, d8", func(c *CPU) int {
		c.xor(c.readOperand())
		return 8
	})
	// 0xF6 - OR A, d8
	DefineInstruction(0xF6, "OR A, d8", func(c *CPU) int {
		c.or(c.readOperand())
		return 8
	})
	// 0xFE - CP A, d8
	DefineInstruction(0xFE, "CP A, d8", func(c *CPU) int {
		c.compare(c.readOperand())
		return 8
	})
}
