package cpu

import (
	"fmt"
	"testing"
)

func TestInstruction_Load(t *testing.T) {
	// 0x40 - 0x7F - LD r, r'
	for dst, dstName := range registerNameMap {
		for src, srcName := range registerNameMap {
			if dstName == "(HL)" || srcName == "(HL)" {
				continue
			}
			dstName, srcName := dstName, srcName
			opcode := 0x40 + uint8(dst)*0x08 + uint8(src)
			testInstruction(t, fmt.Sprintf("LD %s, %s", dstName, srcName), opcode, func(t *testing.T, opcode uint8, c *CPU, m *busMemory) {
				*reg(c, srcName) = 0x42
				c.F = 0xF0

				if cycles := step(t, c, m, opcode); cycles != 4 {
					t.Errorf("Expected 4 cycles, got %d", cycles)
				}
				if *reg(c, dstName) != 0x42 {
					t.Errorf("Expected %s to be 0x42, got 0x%02X", dstName, *reg(c, dstName))
				}
				if c.F != 0xF0 {
					t.Errorf("Expected flags to be untouched, got 0x%02X", c.F)
				}
			})
		}
	}
	// 0x46 - LD B, (HL)
	testInstruction(t, "LD B, (HL)", 0x46, func(t *testing.T, opcode uint8, c *CPU, m *busMemory) {
		c.HL.SetUint16(0xC000)
		m.Write(0xC000, 0x42)

		if cycles := step(t, c, m, 0x46); cycles != 8 {
			t.Errorf("Expected 8 cycles, got %d", cycles)
		}
		if c.B != 0x42 {
			t.Errorf("Expected B to be 0x42, got 0x%02X", c.B)
		}
	})
	// 0x70 - LD (HL), B
	testInstruction(t, "LD (HL), B", 0x70, func(t *testing.T, opcode uint8, c *CPU, m *busMemory) {
		c.HL.SetUint16(0xC000)
		c.B = 0x42

		step(t, c, m, 0x70)
		if m.Read(0xC000) != 0x42 {
			t.Errorf("Expected memory at 0xC000 to be 0x42, got 0x%02X", m.Read(0xC000))
		}
	})
	// 0x06.. - LD r, d8
	for i, name := range registerNameMap {
		if name == "(HL)" {
			continue
		}
		name := name
		testInstruction(t, fmt.Sprintf("LD %s, d8", name), 0x06+uint8(i)*0x08, func(t *testing.T, opcode uint8, c *CPU, m *busMemory) {
			if cycles := step(t, c, m, opcode, 0x99); cycles != 8 {
				t.Errorf("Expected 8 cycles, got %d", cycles)
			}
			if *reg(c, name) != 0x99 {
				t.Errorf("Expected %s to be 0x99, got 0x%02X", name, *reg(c, name))
			}
		})
	}
	// 0x36 - LD (HL), d8
	testInstruction(t, "LD (HL), d8", 0x36, func(t *testing.T, opcode uint8, c *CPU, m *busMemory) {
		c.HL.SetUint16(0xC000)
		if cycles := step(t, c, m, 0x36, 0x99); cycles != 12 {
			t.Errorf("Expected 12 cycles, got %d", cycles)
		}
		if m.Read(0xC000) != 0x99 {
			t.Errorf("Expected memory at 0xC000 to be 0x99, got 0x%02X", m.Read(0xC000))
		}
	})
}

func TestInstruction_Load16(t *testing.T) {
	// 0x01, 0x11, 0x21 - LD rr, d16
	for i, name := range []string{"BC", "DE", "HL"} {
		name := name
		testInstruction(t, fmt.Sprintf("LD %s, d16", name), uint8(0x01+i*0x10), func(t *testing.T, opcode uint8, c *CPU, m *busMemory) {
			if cycles := step(t, c, m, opcode, 0x34, 0x12); cycles != 12 {
				t.Errorf("Expected 12 cycles, got %d", cycles)
			}
			if pair(c, name).Uint16() != 0x1234 {
				t.Errorf("Expected %s to be 0x1234, got 0x%04X", name, pair(c, name).Uint16())
			}
		})
	}
	// 0x31 - LD SP, d16
	testInstruction(t, "LD SP, d16", 0x31, func(t *testing.T, opcode uint8, c *CPU, m *busMemory) {
		step(t, c, m, 0x31, 0xFE, 0xFF)
		if c.SP != 0xFFFE {
			t.Errorf("Expected SP to be 0xFFFE, got 0x%04X", c.SP)
		}
	})
	// 0x08 - LD (a16), SP stores both bytes, low first
	testInstruction(t, "LD (a16), SP", 0x08, func(t *testing.T, opcode uint8, c *CPU, m *busMemory) {
		c.SP = 0xFFF8
		if cycles := step(t, c, m, 0x08, 0x00, 0xC1); cycles != 20 {
			t.Errorf("Expected 20 cycles, got %d", cycles)
		}
		if m.Read(0xC100) != 0xF8 || m.Read(0xC101) != 0xFF {
			t.Errorf("Expected 0xF8 0xFF at 0xC100, got 0x%02X 0x%02X", m.Read(0xC100), m.Read(0xC101))
		}
	})
	// 0xF9 - LD SP, HL
	testInstruction(t, "LD SP, HL", 0xF9, func(t *testing.T, opcode uint8, c *CPU, m *busMemory) {
		c.HL.SetUint16(0xC123)
		if cycles := step(t, c, m, 0xF9); cycles != 8 {
			t.Errorf("Expected 8 cycles, got %d", cycles)
		}
		if c.SP != 0xC123 {
			t.Errorf("Expected SP to be 0xC123, got 0x%04X", c.SP)
		}
	})
	// 0xF8 - LD HL, SP+e8 sets flags like ADD SP
	testInstruction(t, "LD HL, SP+e8", 0xF8, func(t *testing.T, opcode uint8, c *CPU, m *busMemory) {
		c.SP = 0xFFF8
		if cycles := step(t, c, m, 0xF8, 0x08); cycles != 12 {
			t.Errorf("Expected 12 cycles, got %d", cycles)
		}
		if c.HL.Uint16() != 0x0000 {
			t.Errorf("Expected HL to be 0x0000, got 0x%04X", c.HL.Uint16())
		}
		if c.SP != 0xFFF8 {
			t.Errorf("Expected SP to be untouched, got 0x%04X", c.SP)
		}
		if c.isFlagSet(FlagZero) || !c.isFlagSet(FlagCarry) {
			t.Errorf("Expected Z=0 C=1, got F=0x%02X", c.F)
		}
	})
}

func TestInstruction_LoadIndirect(t *testing.T) {
	// 0x02 - LD (BC), A / 0x0A - LD A, (BC)
	testInstruction(t, "LD (BC), A", 0x02, func(t *testing.T, opcode uint8, c *CPU, m *busMemory) {
		c.A = 0x42
		c.BC.SetUint16(0xC000)
		step(t, c, m, 0x02)
		if m.Read(0xC000) != 0x42 {
			t.Errorf("Expected memory at 0xC000 to be 0x42, got 0x%02X", m.Read(0xC000))
		}
	})
	testInstruction(t, "LD A, (BC)", 0x0A, func(t *testing.T, opcode uint8, c *CPU, m *busMemory) {
		c.BC.SetUint16(0xC000)
		m.Write(0xC000, 0x42)
		step(t, c, m, 0x0A)
		if c.A != 0x42 {
			t.Errorf("Expected A to be 0x42, got 0x%02X", c.A)
		}
	})
	// 0x22 - LD (HL+), A / 0x32 - LD (HL-), A
	testInstruction(t, "LD (HL+), A", 0x22, func(t *testing.T, opcode uint8, c *CPU, m *busMemory) {
		c.A = 0x42
		c.HL.SetUint16(0xC0FF)
		step(t, c, m, 0x22)
		if m.Read(0xC0FF) != 0x42 {
			t.Errorf("Expected memory at 0xC0FF to be 0x42, got 0x%02X", m.Read(0xC0FF))
		}
		if c.HL.Uint16() != 0xC100 {
			t.Errorf("Expected HL to be 0xC100, got 0x%04X", c.HL.Uint16())
		}
	})
	testInstruction(t, "LD (HL-), A", 0x32, func(t *testing.T, opcode uint8, c *CPU, m *busMemory) {
		c.A = 0x42
		c.HL.SetUint16(0xC000)
		step(t, c, m, 0x32)
		if c.HL.Uint16() != 0xBFFF {
			t.Errorf("Expected HL to be 0xBFFF, got 0x%04X", c.HL.Uint16())
		}
	})
	// 0x2A - LD A, (HL+) / 0x3A - LD A, (HL-)
	testInstruction(t, "LD A, (HL+)", 0x2A, func(t *testing.T, opcode uint8, c *CPU, m *busMemory) {
		c.HL.SetUint16(0xC000)
		m.Write(0xC000, 0x42)
		step(t, c, m, 0x2A)
		if c.A != 0x42 || c.HL.Uint16() != 0xC001 {
			t.Errorf("Expected A=0x42 HL=0xC001, got A=0x%02X HL=0x%04X", c.A, c.HL.Uint16())
		}
	})
	testInstruction(t, "LD A, (HL-)", 0x3A, func(t *testing.T, opcode uint8, c *CPU, m *busMemory) {
		c.HL.SetUint16(0xC000)
		m.Write(0xC000, 0x42)
		step(t, c, m, 0x3A)
		if c.A != 0x42 || c.HL.Uint16() != 0xBFFF {
			t.Errorf("Expected A=0x42 HL=0xBFFF, got A=0x%02X HL=0x%04X", c.A, c.HL.Uint16())
		}
	})
	// 0xEA - LD (a16), A / 0xFA - LD A, (a16)
	testInstruction(t, "LD (a16), A", 0xEA, func(t *testing.T, opcode uint8, c *CPU, m *busMemory) {
		c.A = 0x42
		if cycles := step(t, c, m, 0xEA, 0x00, 0xC0); cycles != 16 {
			t.Errorf("Expected 16 cycles, got %d", cycles)
		}
		if m.Read(0xC000) != 0x42 {
			t.Errorf("Expected memory at 0xC000 to be 0x42, got 0x%02X", m.Read(0xC000))
		}
	})
	testInstruction(t, "LD A, (a16)", 0xFA, func(t *testing.T, opcode uint8, c *CPU, m *busMemory) {
		m.Write(0xC000, 0x42)
		if cycles := step(t, c, m, 0xFA, 0x00, 0xC0); cycles != 16 {
			t.Errorf("Expected 16 cycles, got %d", cycles)
		}
		if c.A != 0x42 {
			t.Errorf("Expected A to be 0x42, got 0x%02X", c.A)
		}
	})
}

func TestInstruction_LoadHigh(t *testing.T) {
	// 0xE0 - LDH (a8), A / 0xF0 - LDH A, (a8)
	testInstruction(t, "LDH (a8), A", 0xE0, func(t *testing.T, opcode uint8, c *CPU, m *busMemory) {
		c.A = 0x42
		if cycles := step(t, c, m, 0xE0, 0x80); cycles != 12 {
			t.Errorf("Expected 12 cycles, got %d", cycles)
		}
		if m.Read(0xFF80) != 0x42 {
			t.Errorf("Expected memory at 0xFF80 to be 0x42, got 0x%02X", m.Read(0xFF80))
		}
	})
	testInstruction(t, "LDH A, (a8)", 0xF0, func(t *testing.T, opcode uint8, c *CPU, m *busMemory) {
		m.Write(0xFF80, 0x42)
		if cycles := step(t, c, m, 0xF0, 0x80); cycles != 12 {
			t.Errorf("Expected 12 cycles, got %d", cycles)
		}
		if c.A != 0x42 {
			t.Errorf("Expected A to be 0x42, got 0x%02X", c.A)
		}
	})
	// 0xE2 - LD (C), A / 0xF2 - LD A, (C)
	testInstruction(t, "LD (C), A", 0xE2, func(t *testing.T, opcode uint8, c *CPU, m *busMemory) {
		c.A, c.C = 0x42, 0x80
		if cycles := step(t, c, m, 0xE2); cycles != 8 {
			t.Errorf("Expected 8 cycles, got %d", cycles)
		}
		if m.Read(0xFF80) != 0x42 {
			t.Errorf("Expected memory at 0xFF80 to be 0x42, got 0x%02X", m.Read(0xFF80))
		}
	})
	testInstruction(t, "LD A, (C)", 0xF2, func(t *testing.T, opcode uint8, c *CPU, m *busMemory) {
		c.C = 0x80
		m.Write(0xFF80, 0x42)
		if cycles := step(t, c, m, 0xF2); cycles != 8 {
			t.Errorf("Expected 8 cycles, got %d", cycles)
		}
		if c.A != 0x42 {
			t.Errorf("Expected A to be 0x42, got 0x%02X", c.A)
		}
	})
}
