package cpu

// Register is one of the eight 8-bit registers A, F, B, C, D, E, H, L.
type Register = uint8

// RegisterPair couples two 8-bit registers into one 16-bit register,
// with the high register holding bits 15..8 and the low register
// holding bits 7..0. drop is cleared from every value written to the
// low register; the AF pair uses it to keep the low nibble of F zero.
type RegisterPair struct {
	High *Register
	Low  *Register

	drop uint8
}

// Uint16 returns the value of the pair.
func (r *RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

// SetUint16 sets the value of the pair.
func (r *RegisterPair) SetUint16(value uint16) {
	*r.High = uint8(value >> 8)
	*r.Low = uint8(value) &^ r.drop
}

// Registers contains the 8-bit registers, as well as the 16-bit
// register pairs formed over them.
type Registers struct {
	A Register
	F Register
	B Register
	C Register
	D Register
	E Register
	H Register
	L Register

	AF *RegisterPair
	BC *RegisterPair
	DE *RegisterPair
	HL *RegisterPair
}

// registerNameMap maps an operand index of the 8-operand instruction
// grids to its mnemonic.
var registerNameMap = []string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

// registerPointer returns a pointer to the register with the given
// operand index. Index 6 addresses memory through HL and has no
// register; callers of the generated grids handle it separately.
func (c *CPU) registerPointer(index uint8) *Register {
	switch index {
	case 0:
		return &c.B
	case 1:
		return &c.C
	case 2:
		return &c.D
	case 3:
		return &c.E
	case 4:
		return &c.H
	case 5:
		return &c.L
	case 7:
		return &c.A
	}
	panic("invalid register operand index")
}
