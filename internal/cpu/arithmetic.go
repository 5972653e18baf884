package cpu

import "fmt"

// increment increments the given value by 1, and sets the flags
// accordingly.
//
//	INC n
//	n = 8-bit value
//
//	Flags affected:
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(value uint8) uint8 {
	incremented := value + 1
	c.shouldZeroFlag(incremented)
	c.clearFlag(FlagSubtract)
	if value&0x0F == 0x0F {
		c.setFlag(FlagHalfCarry)
	} else {
		c.clearFlag(FlagHalfCarry)
	}
	return incremented
}

// decrement decrements the given value by 1, and sets the flags
// accordingly.
//
//	DEC n
//	n = 8-bit value
//
//	Flags affected:
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(value uint8) uint8 {
	decremented := value - 1
	c.shouldZeroFlag(decremented)
	c.setFlag(FlagSubtract)
	if value&0x0F == 0x00 {
		c.setFlag(FlagHalfCarry)
	} else {
		c.clearFlag(FlagHalfCarry)
	}
	return decremented
}

// addHLRR adds the given register pair to HL.
//
//	ADD HL, rr
//	rr = 16-bit register pair
//
//	Flags affected:
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addHLRR(value uint16) {
	hl := c.HL.Uint16()
	sum := uint32(hl) + uint32(value)
	c.clearFlag(FlagSubtract)
	if hl&0x0FFF+value&0x0FFF > 0x0FFF {
		c.setFlag(FlagHalfCarry)
	} else {
		c.clearFlag(FlagHalfCarry)
	}
	if sum > 0xFFFF {
		c.setFlag(FlagCarry)
	} else {
		c.clearFlag(FlagCarry)
	}
	c.HL.SetUint16(uint16(sum))
}

// addSPSigned adds the signed 8-bit operand to SP and returns the
// result. The half-carry and carry flags follow the unsigned low
// nibble and low byte of the addition, regardless of the operand's
// sign.
//
//	ADD SP, e8
//
//	Flags affected:
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) addSPSigned() uint16 {
	operand := uint16(int8(c.readOperand()))
	result := c.SP + operand

	carries := c.SP ^ operand ^ result
	c.setFlags(false, false, carries&0x10 != 0, carries&0x100 != 0)
	return result
}

// add adds the given value, plus an optional carry, to A.
//
//	ADD A, n / ADC A, n
//	n = 8-bit value
//
//	Flags affected:
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(value uint8, shouldCarry bool) {
	carry := uint8(0)
	if shouldCarry && c.isFlagSet(FlagCarry) {
		carry = 1
	}
	sum := uint16(c.A) + uint16(value) + uint16(carry)
	halfCarry := c.A&0x0F+value&0x0F+carry > 0x0F
	c.setFlags(uint8(sum) == 0, false, halfCarry, sum > 0xFF)
	c.A = uint8(sum)
}

// sub subtracts the given value, plus an optional carry, from A.
//
//	SUB A, n / SBC A, n
//	n = 8-bit value
//
//	Flags affected:
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) sub(value uint8, shouldCarry bool) {
	carry := uint8(0)
	if shouldCarry && c.isFlagSet(FlagCarry) {
		carry = 1
	}
	difference := uint16(c.A) - uint16(value) - uint16(carry)
	halfBorrow := c.A&0x0F < value&0x0F+carry
	c.setFlags(uint8(difference) == 0, true, halfBorrow, difference > 0xFF)
	c.A = uint8(difference)
}

func init() {
	registerPairs := []struct {
		name string
		pair func(c *CPU) *RegisterPair
	}{
		{"BC", func(c *CPU) *RegisterPair { return c.BC }},
		{"DE", func(c *CPU) *RegisterPair { return c.DE }},
		{"HL", func(c *CPU) *RegisterPair { return c.HL }},
	}

	// 0x03, 0x13, 0x23 - INC rr / 0x0B, 0x1B, 0x2B - DEC rr
	// 0x09, 0x19, 0x29 - ADD HL, rr
	for i, rp := range registerPairs {
		rp := rp
		DefineInstruction(uint8(0x03+i*0x10), fmt.Sprintf("INC %s", rp.name), func(c *CPU) int {
			pair := rp.pair(c)
			pair.SetUint16(pair.Uint16() + 1)
			return 8
		})
		DefineInstruction(uint8(0x0B+i*0x10), fmt.Sprintf("DEC %s", rp.name), func(c *CPU) int {
			pair := rp.pair(c)
			pair.SetUint16(pair.Uint16() - 1)
			return 8
		})
		DefineInstruction(uint8(0x09+i*0x10), fmt.Sprintf("ADD HL, %s", rp.name), func(c *CPU) int {
			c.addHLRR(rp.pair(c).Uint16())
			return 8
		})
	}
	// 0x33 - INC SP
	DefineInstruction(0x33, "INC SP", func(c *CPU) int {
		c.SP++
		return 8
	})
	// 0x3B - DEC SP
	DefineInstruction(0x3B, "DEC SP", func(c *CPU) int {
		c.SP--
		return 8
	})
	// 0x39 - ADD HL, SP
	DefineInstruction(0x39, "ADD HL, SP", func(c *CPU) int {
		c.addHLRR(c.SP)
		return 8
	})

	// 0x04..0x3C - INC r / 0x05..0x3D - DEC r
	for i := uint8(0); i < 8; i++ {
		i := i
		if i == 6 {
			DefineInstruction(0x34, "INC (HL)", func(c *CPU) int {
				address := c.HL.Uint16()
				c.writeByte(address, c.increment(c.readByte(address)))
				return 12
			})
			DefineInstruction(0x35, "DEC (HL)", func(c *CPU) int {
				address := c.HL.Uint16()
				c.writeByte(address, c.decrement(c.readByte(address)))
				return 12
			})
			continue
		}
		DefineInstruction(0x04+i*0x08, fmt.Sprintf("INC %s", registerNameMap[i]), func(c *CPU) int {
			reg := c.registerPointer(i)
			*reg = c.increment(*reg)
			return 4
		})
		DefineInstruction(0x05+i*0x08, fmt.Sprintf("DEC %s", registerNameMap[i]), func(c *CPU) int {
			reg := c.registerPointer(i)
			*reg = c.decrement(*reg)
			return 4
		})
	}

	// 0x80..0x9F - ADD/ADC/SUB/SBC A, r
	alu := []struct {
		base uint8
		name string
		fn   func(c *CPU, value uint8)
	}{
		{0x80, "ADD A, %s", func(c *CPU, value uint8) { c.add(value, false) }},
		{0x88, "ADC A, %s", func(c *CPU, value uint8) { c.add(value, true) }},
		{0x90, "SUB A, %s", func(c *CPU, value uint8) { c.sub(value, false) }},
		{0x98, "SBC A, %s", func(c *CPU, value uint8) { c.sub(value, true) }},
	}
	for _, op := range alu {
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

	// 0xC6 - ADD A, d8
	DefineInstruction(0xC6, "ADD A, d8", func(c *CPU) int {
		c.add(c.readOperand(), false)
		return 8
	})
	// 0xCE - ADC A, d8
	DefineInstruction(0xCE, "ADC A, d8", func(c *CPU) int {
		c.add(c.readOperand(), true)
		return 8
	})
	// 0xD6 - SUB A, d8
	DefineInstruction(0xD6, "SUB A, d8", func(c *CPU) int {
		c.sub(c.readOperand(), false)
		return 8
	})
	// 0xDE - SBC A, d8
	DefineInstruction(0xDE, "SBC A, d8", func(c *CPU) int {
		c.sub(c.readOperand(), true)
		return 8
	})
	// 0xE8 - ADD SP, e8
	DefineInstruction(0xE8, "ADD SP, e8", func(c *CPU) int {
		c.SP = c.addSPSigned()
		return 16
	})

	// 0xC1, 0xD1, 0xE1 - POP rr / 0xC5, 0xD5, 0xE5 - PUSH rr
	for i, rp := range registerPairs {
		rp := rp
		DefineInstruction(uint8(0xC1+i*0x10), fmt.Sprintf("POP %s", rp.name), func(c *CPU) int {
			rp.pair(c).SetUint16(c.popStack())
			return 12
		})
		DefineInstruction(uint8(0xC5+i*0x10), fmt.Sprintf("PUSH %s", rp.name), func(c *CPU) int {
			c.pushStack(rp.pair(c).Uint16())
			return 16
		})
	}
	// 0xF1 - POP AF
	DefineInstruction(0xF1, "POP AF", func(c *CPU) int {
		// the low nibble of F never holds bits
		c.AF.SetUint16(c.popStack())
		return 12
	})
	// 0xF5 - PUSH AF
	DefineInstruction(0xF5, "PUSH AF", func(c *CPU) int {
		c.pushStack(c.AF.Uint16())
		return 16
	})
}
