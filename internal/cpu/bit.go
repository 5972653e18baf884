package cpu

// testBit tests the given bit of the given value.
//
//	BIT b, n
//	b = bit number
//	n = 8-bit value
//
//	Flags affected:
//	Z - Set if bit b of n is zero.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func (c *CPU) testBit(bit uint8, value uint8) {
	c.shouldZeroFlag(value & (1 << bit))
	c.clearFlag(FlagSubtract)
	c.setFlag(FlagHalfCarry)
}

// setBit sets the given bit of the given value.
//
//	SET b, n
//	b = bit number
//	n = 8-bit value
//
//	Flags affected:
//	None.
func (c *CPU) setBit(bit uint8, value uint8) uint8 {
	return value | 1<<bit
}

// resetBit resets the given bit of the given value.
//
//	RES b, n
//	b = bit number
//	n = 8-bit value
//
//	Flags affected:
//	None.
func (c *CPU) resetBit(bit uint8, value uint8) uint8 {
	return value &^ (1 << bit)
}

// swap swaps the high and low nibbles of the given value.
//
//	SWAP n
//	n = 8-bit value
//
//	Flags affected:
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) swap(value uint8) uint8 {
	swapped := value<<4 | value>>4
	c.setFlags(swapped == 0, false, false, false)
	return swapped
}
