package cpu

// shiftLeftArithmetic shifts the given value left by 1 bit. Bit 7 is
// shifted into the carry flag and bit 0 is reset.
//
//	SLA n
//	n = 8-bit value
//
//	Flags affected:
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) shiftLeftArithmetic(value uint8) uint8 {
	shifted := value << 1
	c.setFlags(shifted == 0, false, false, value&0x80 != 0)
	return shifted
}

// shiftRightArithmetic shifts the given value right by 1 bit. Bit 0 is
// shifted into the carry flag and bit 7 retains its value.
//
//	SRA n
//	n = 8-bit value
//
//	Flags affected:
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) shiftRightArithmetic(value uint8) uint8 {
	shifted := value>>1 | value&0x80
	c.setFlags(shifted == 0, false, false, value&0x01 != 0)
	return shifted
}

// shiftRightLogical shifts the given value right by 1 bit. Bit 0 is
// shifted into the carry flag and bit 7 is reset.
//
//	SRL n
//	n = 8-bit value
//
//	Flags affected:
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) shiftRightLogical(value uint8) uint8 {
	shifted := value >> 1
	c.setFlags(shifted == 0, false, false, value&0x01 != 0)
	return shifted
}
