package cpu

// rotateLeftCarry rotates the given value left by 1 bit. The most
// significant bit is copied into both the carry flag and bit 0.
//
//	RLC n
//	n = 8-bit value
//
//	Flags affected:
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeftCarry(value uint8) uint8 {
	rotated := value<<1 | value>>7
	c.setFlags(rotated == 0, false, false, value&0x80 != 0)
	return rotated
}

// rotateRightCarry rotates the given value right by 1 bit. The least
// significant bit is copied into both the carry flag and bit 7.
//
//	RRC n
//	n = 8-bit value
//
//	Flags affected:
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRightCarry(value uint8) uint8 {
	rotated := value>>1 | value<<7
	c.setFlags(rotated == 0, false, false, value&0x01 != 0)
	return rotated
}

// rotateLeftThroughCarry rotates the given value left by 1 bit through
// the carry flag: the old carry becomes bit 0, the old bit 7 becomes
// the carry.
//
//	RL n
//	n = 8-bit value
//
//	Flags affected:
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeftThroughCarry(value uint8) uint8 {
	rotated := value << 1
	if c.isFlagSet(FlagCarry) {
		rotated |= 0x01
	}
	c.setFlags(rotated == 0, false, false, value&0x80 != 0)
	return rotated
}

// rotateRightThroughCarry rotates the given value right by 1 bit
// through the carry flag: the old carry becomes bit 7, the old bit 0
// becomes the carry.
//
//	RR n
//	n = 8-bit value
//
//	Flags affected:
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRightThroughCarry(value uint8) uint8 {
	rotated := value >> 1
	if c.isFlagSet(FlagCarry) {
		rotated |= 0x80
	}
	c.setFlags(rotated == 0, false, false, value&0x01 != 0)
	return rotated
}

func init() {
	// the accumulator rotates always reset the zero flag, unlike their
	// CB-prefixed counterparts

	// 0x07 - RLCA
	DefineInstruction(0x07, "RLCA", func(c *CPU) int {
		c.A = c.rotateLeftCarry(c.A)
		c.clearFlag(FlagZero)
		return 4
	})
	// 0x0F - RRCA
	DefineInstruction(0x0F, "RRCA", func(c *CPU) int {
		c.A = c.rotateRightCarry(c.A)
		c.clearFlag(FlagZero)
		return 4
	})
	// 0x17 - RLA
	DefineInstruction(0x17, "RLA", func(c *CPU) int {
		c.A = c.rotateLeftThroughCarry(c.A)
		c.clearFlag(FlagZero)
		return 4
	})
	// 0x1F - RRA
	DefineInstruction(0x1F, "RRA", func(c *CPU) int {
		c.A = c.rotateRightThroughCarry(c.A)
		c.clearFlag(FlagZero)
		return 4
	})
}
