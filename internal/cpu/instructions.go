package cpu

// This file defines the control instructions: NOP, STOP, HALT, DI, EI
// and the accumulator/flag adjustments DAA, CPL, SCF, CCF.

func init() {
	// 0x00 - NOP
	DefineInstruction(0x00, "NOP", func(c *CPU) int {
		return 4
	})
	// 0x10 - STOP
	DefineInstruction(0x10, "STOP", func(c *CPU) int {
		// STOP is encoded as two bytes; the second is discarded
		c.readOperand()
		c.stopped = true
		return 4
	})
	// 0x27 - DAA
	DefineInstruction(0x27, "DAA", func(c *CPU) int {
		c.decimalAdjust()
		return 4
	})
	// 0x2F - CPL
	DefineInstruction(0x2F, "CPL", func(c *CPU) int {
		c.A = ^c.A
		c.setFlag(FlagSubtract)
		c.setFlag(FlagHalfCarry)
		return 4
	})
	// 0x37 - SCF
	DefineInstruction(0x37, "SCF", func(c *CPU) int {
		c.clearFlag(FlagSubtract)
		c.clearFlag(FlagHalfCarry)
		c.setFlag(FlagCarry)
		return 4
	})
	// 0x3F - CCF
	DefineInstruction(0x3F, "CCF", func(c *CPU) int {
		c.clearFlag(FlagSubtract)
		c.clearFlag(FlagHalfCarry)
		if c.isFlagSet(FlagCarry) {
			c.clearFlag(FlagCarry)
		} else {
			c.setFlag(FlagCarry)
		}
		return 4
	})
	// 0x76 - HALT
	DefineInstruction(0x76, "HALT", func(c *CPU) int {
		c.halted = true
		return 4
	})
	// 0xF3 - DI
	DefineInstruction(0xF3, "DI", func(c *CPU) int {
		c.ime = false
		return 4
	})
	// 0xFB - EI
	DefineInstruction(0xFB, "EI", func(c *CPU) int {
		c.ime = true
		return 4
	})
}

// decimalAdjust adjusts A to a valid packed BCD result after an
// addition or subtraction, using the N, H and C flags left by the
// preceding operation.
//
//	DAA
//
//	Flags affected:
//	Z - Set if result is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set or reset depending on the adjustment.
func (c *CPU) decimalAdjust() {
	if !c.isFlagSet(FlagSubtract) {
		if c.isFlagSet(FlagCarry) || c.A > 0x99 {
			c.A += 0x60
			c.setFlag(FlagCarry)
		}
		if c.isFlagSet(FlagHalfCarry) || c.A&0x0F > 0x09 {
			c.A += 0x06
		}
	} else {
		if c.isFlagSet(FlagCarry) {
			c.A -= 0x60
		}
		if c.isFlagSet(FlagHalfCarry) {
			c.A -= 0x06
		}
	}
	c.shouldZeroFlag(c.A)
	c.clearFlag(FlagHalfCarry)
}
