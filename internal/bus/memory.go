package bus

import (
	"io"

	"github.com/gbsemu/sm83/internal/types"
	"github.com/gbsemu/sm83/pkg/log"
)

// Memory is a flat 64 KiB bus with no mapper. It backs the headless
// runner and the test suites; every address reads and writes a plain
// byte, with one exception: a write to types.SC with Bit7 set latches
// the byte last written to types.SB into the serial sink, which is the
// reporting channel the common test ROMs use.
type Memory struct {
	data [0x10000]uint8

	serial io.Writer
	log    log.Logger
}

// MemoryOpt configures a Memory.
type MemoryOpt func(*Memory)

// WithSerial directs captured serial bytes to w.
func WithSerial(w io.Writer) MemoryOpt {
	return func(m *Memory) {
		m.serial = w
	}
}

// WithLogger enables debug logging of serial latches.
func WithLogger(l log.Logger) MemoryOpt {
	return func(m *Memory) {
		m.log = l
	}
}

// NewMemory returns a zero filled Memory.
func NewMemory(opts ...MemoryOpt) *Memory {
	m := &Memory{
		log: log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// LoadROM copies a ROM image into the address space starting at 0.
// Images larger than 64 KiB are truncated; a real system would bank
// them through a mapper, which this bus deliberately does not model.
func (m *Memory) LoadROM(rom []byte) {
	copy(m.data[:], rom)
}

// Read returns the byte at the given address.
func (m *Memory) Read(address uint16) uint8 {
	return m.data[address]
}

// Write stores a byte at the given address.
func (m *Memory) Write(address uint16, value uint8) {
	if address == types.SC && value&types.Bit7 != 0 && m.serial != nil {
		b := m.data[types.SB]
		m.log.Debugf("serial: %02x %q", b, string(rune(b)))
		_, _ = m.serial.Write([]byte{b})
		// transfer completes instantly on a disconnected link
		m.data[types.SC] = value &^ types.Bit7
		return
	}
	m.data[address] = value
}

// ReadIO aliases Read.
func (m *Memory) ReadIO(address types.HardwareAddress) uint8 {
	return m.Read(address)
}

// WriteIO aliases Write.
func (m *Memory) WriteIO(address types.HardwareAddress, value uint8) {
	m.Write(address, value)
}

var _ Bus = (*Memory)(nil)
