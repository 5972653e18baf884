package cpu

// Flag is the bit index of an ALU flag within the F register.
type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// setFlag sets a flag in the F register.
func (c *CPU) setFlag(flag Flag) {
	c.F |= 1 << flag
}

// clearFlag clears a flag from the F register.
func (c *CPU) clearFlag(flag Flag) {
	c.F &^= 1 << flag
}

// isFlagSet returns true if the given flag is set.
func (c *CPU) isFlagSet(flag Flag) bool {
	return c.F&(1<<flag) != 0
}

// setFlags replaces the whole F register from the four flag values.
// The low nibble of F is always written as zero.
func (c *CPU) setFlags(zero, subtract, halfCarry, carry bool) {
	var f uint8
	if zero {
		f |= 1 << FlagZero
	}
	if subtract {
		f |= 1 << FlagSubtract
	}
	if halfCarry {
		f |= 1 << FlagHalfCarry
	}
	if carry {
		f |= 1 << FlagCarry
	}
	c.F = f
}

// shouldZeroFlag sets FlagZero if the given value is 0.
func (c *CPU) shouldZeroFlag(value uint8) {
	if value == 0 {
		c.setFlag(FlagZero)
	} else {
		c.clearFlag(FlagZero)
	}
}
