package cpu

import "fmt"

// loadRegisterToRegister loads the value of the given register into
// the given register.
//
//	LD r, r'
//	r = 8-bit register
//	r' = 8-bit register
//
//	Flags affected:
//	None.
func (c *CPU) loadRegisterToRegister(register *Register, value *Register) {
	*register = *value
}

// loadMemoryToRegister loads the value at the given address into the
// given register.
//
//	LD r, (nn)
//
//	Flags affected:
//	None.
func (c *CPU) loadMemoryToRegister(register *Register, address uint16) {
	*register = c.readByte(address)
}

// loadRegisterToMemory writes the value of the given register to the
// given address.
//
//	LD (nn), r
//
//	Flags affected:
//	None.
func (c *CPU) loadRegisterToMemory(register *Register, address uint16) {
	c.writeByte(address, *register)
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

	// 0x01, 0x11, 0x21 - LD rr, d16
	for i, rp := range registerPairs {
		rp := rp
		DefineInstruction(uint8(0x01+i*0x10), fmt.Sprintf("LD %s, d16", rp.name), func(c *CPU) int {
			rp.pair(c).SetUint16(c.readOperand16())
			return 12
		})
	}
	// 0x31 - LD SP, d16
	DefineInstruction(0x31, "LD SP, d16", func(c *CPU) int {
		c.SP = c.readOperand16()
		return 12
	})

	// 0x02 - LD (BC), A
	DefineInstruction(0x02, "LD (BC), A", func(c *CPU) int {
		c.loadRegisterToMemory(&c.A, c.BC.Uint16())
		return 8
	})
	// 0x12 - LD (DE), A
	DefineInstruction(0x12, "LD (DE), A", func(c *CPU) int {
		c.loadRegisterToMemory(&c.A, c.DE.Uint16())
		return 8
	})
	// 0x22 - LD (HL+), A
	DefineInstruction(0x22, "LD (HL+), A", func(c *CPU) int {
		c.loadRegisterToMemory(&c.A, c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() + 1)
		return 8
	})
	// 0x32 - LD (HL-), A
	DefineInstruction(0x32, "LD (HL-), A", func(c *CPU) int {
		c.loadRegisterToMemory(&c.A, c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() - 1)
		return 8
	})
	// 0x0A - LD A, (BC)
	DefineInstruction(0x0A, "LD A, (BC)", func(c *CPU) int {
		c.loadMemoryToRegister(&c.A, c.BC.Uint16())
		return 8
	})
	// 0x1A - LD A, (DE)
	DefineInstruction(0x1A, "LD A, (DE)", func(c *CPU) int {
		c.loadMemoryToRegister(&c.A, c.DE.Uint16())
		return 8
	})
	// 0x2A - LD A, (HL+)
	DefineInstruction(0x2A, "LD A, (HL+)", func(c *CPU) int {
		c.loadMemoryToRegister(&c.A, c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() + 1)
		return 8
	})
	// 0x3A - LD A, (HL-)
	DefineInstruction(0x3A, "LD A, (HL-)", func(c *CPU) int {
		c.loadMemoryToRegister(&c.A, c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() - 1)
		return 8
	})

	// 0x06..0x3E - LD r, d8
	for i := uint8(0); i < 8; i++ {
		i := i
		if i == 6 {
			DefineInstruction(0x36, "LD (HL), d8", func(c *CPU) int {
				c.writeByte(c.HL.Uint16(), c.readOperand())
				return 12
			})
			continue
		}
		DefineInstruction(0x06+i*0x08, fmt.Sprintf("LD %s, d8", registerNameMap[i]), func(c *CPU) int {
			*c.registerPointer(i) = c.readOperand()
			return 8
		})
	}

	// 0x08 - LD (a16), SP
	DefineInstruction(0x08, "LD (a16), SP", func(c *CPU) int {
		address := c.readOperand16()
		c.writeByte(address, uint8(c.SP))
		c.writeByte(address+1, uint8(c.SP>>8))
		return 20
	})

	// 0x40..0x7F - LD r, r' (0x76 is HALT)
	for dst := uint8(0); dst < 8; dst++ {
		for src := uint8(0); src < 8; src++ {
			dst, src := dst, src
			opcode := 0x40 + dst*0x08 + src
			switch {
			case dst == 6 && src == 6:
				// 0x76 - HALT, defined with the control instructions
			case dst == 6:
				DefineInstruction(opcode, fmt.Sprintf("LD (HL), %s", registerNameMap[src]), func(c *CPU) int {
					c.loadRegisterToMemory(c.registerPointer(src), c.HL.Uint16())
					return 8
				})
			case src == 6:
				DefineInstruction(opcode, fmt.Sprintf("LD %s, (HL)", registerNameMap[dst]), func(c *CPU) int {
					c.loadMemoryToRegister(c.registerPointer(dst), c.HL.Uint16())
					return 8
				})
			default:
				DefineInstruction(opcode, fmt.Sprintf("LD %s, %s", registerNameMap[dst], registerNameMap[src]), func(c *CPU) int {
					c.loadRegisterToRegister(c.registerPointer(dst), c.registerPointer(src))
					return 4
				})
			}
		}
	}

	// 0xE0 - LDH (a8), A
	DefineInstruction(0xE0, "LDH (a8), A", func(c *CPU) int {
		c.loadRegisterToMemory(&c.A, 0xFF00+uint16(c.readOperand()))
		return 12
	})
	// 0xF0 - LDH A, (a8)
	DefineInstruction(0xF0, "LDH A, (a8)", func(c *CPU) int {
		c.loadMemoryToRegister(&c.A, 0xFF00+uint16(c.readOperand()))
		return 12
	})
	// 0xE2 - LD (C), A
	DefineInstruction(0xE2, "LD (C), A", func(c *CPU) int {
		c.loadRegisterToMemory(&c.A, 0xFF00+uint16(c.C))
		return 8
	})
	// 0xF2 - LD A, (C)
	DefineInstruction(0xF2, "LD A, (C)", func(c *CPU) int {
		c.loadMemoryToRegister(&c.A, 0xFF00+uint16(c.C))
		return 8
	})
	// 0xEA - LD (a16), A
	DefineInstruction(0xEA, "LD (a16), A", func(c *CPU) int {
		c.loadRegisterToMemory(&c.A, c.readOperand16())
		return 16
	})
	// 0xFA - LD A, (a16)
	DefineInstruction(0xFA, "LD A, (a16)", func(c *CPU) int {
		c.loadMemoryToRegister(&c.A, c.readOperand16())
		return 16
	})
	// 0xF8 - LD HL, SP+e8
	DefineInstruction(0xF8, "LD HL, SP+e8", func(c *CPU) int {
		c.HL.SetUint16(c.addSPSigned())
		return 12
	})
	// 0xF9 - LD SP, HL
	DefineInstruction(0xF9, "LD SP, HL", func(c *CPU) int {
		c.SP = c.HL.Uint16()
		return 8
	})
}
