package jr100

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zabaglione/jr100-emulator-v2/internal/loader"
)

// testROM builds an 8KB image with the given code at $E000 and the reset
// vector pointing at it.
func testROM(code ...uint8) []uint8 {
	rom := make([]uint8, loader.RomImageSize)
	copy(rom, code)
	rom[0x1FFE] = 0xE0 // reset vector $E000
	rom[0x1FFF] = 0x00
	return rom
}

func newTestMachine(t *testing.T, code ...uint8) *Machine {
	t.Helper()
	m, err := NewMachine(Config{ROMImage: testROM(code...)})
	require.NoError(t, err)
	return m
}

func Test_MachineReset(t *testing.T) {
	m := newTestMachine(t, 0x01) // NOP

	assert.Equal(t, uint16(0xE000), m.CPU.PC(), "PC from the ROM reset vector")

	m.Bus.Write8(0x0040, 0x55)
	m.Reset()
	assert.Equal(t, uint8(0x00), m.Bus.Read8(0x0040), "RAM zeroed on reset")
	assert.Equal(t, uint16(0xE000), m.CPU.PC())
}

func Test_RunForOvershoot(t *testing.T) {
	m := newTestMachine(t, 0x20, 0xFE) // BRA -2: a 4-cycle spin

	overshoot, err := m.RunFor(10)

	require.NoError(t, err)
	assert.Equal(t, 2, overshoot, "12 cycles run against a budget of 10")

	overshoot, err = m.RunFor(8 - overshoot)
	require.NoError(t, err)
	assert.Equal(t, 2, overshoot, "carry keeps the long-run rate exact")
}

func Test_StepOneTicksVIA(t *testing.T) {
	m := newTestMachine(t, 0x01, 0x01, 0x01) // NOPs

	m.Bus.Write8(VIAStart+viaRegT2CL, 0x03)
	m.Bus.Write8(VIAStart+viaRegT2CH, 0x00)

	for i := 0; i < 3; i++ {
		_, err := m.StepOne()
		require.NoError(t, err)
	}

	assert.NotZero(t, m.VIA.ifr&ifrBitT2, "peripheral time advanced with the CPU")
}

func Test_IllegalOpcodeSurfaces(t *testing.T) {
	m := newTestMachine(t, 0x02) // unassigned opcode

	_, err := m.RunFor(100)

	assert.Error(t, err)
}

func Test_ROMWritesDropped(t *testing.T) {
	m := newTestMachine(t, 0x01)

	before := m.Bus.Read8(0xE000)
	m.Bus.Write8(0xE000, ^before)

	assert.Equal(t, before, m.Bus.Read8(0xE000))
}

func Test_UnmappedGapReadsOpenBus(t *testing.T) {
	m := newTestMachine(t, 0x01)

	assert.Equal(t, uint8(0xFF), m.Bus.Read8(0x4000), "above the 16KB RAM")
	assert.Equal(t, uint8(0xFF), m.Bus.Read8(0xD000))
}

func Test_ExtendedRAMOption(t *testing.T) {
	m, err := NewMachine(Config{ROMImage: testROM(0x01), ExtendedRAM: true})
	require.NoError(t, err)

	m.Bus.Write8(0x7FFF, 0xA5)
	assert.Equal(t, uint8(0xA5), m.Bus.Read8(0x7FFF))
}

func Test_GamepadPort(t *testing.T) {
	m := newTestMachine(t, 0x01)

	m.ExtIO.SetGamepad(0x15)

	assert.Equal(t, uint8(0x15), m.Bus.Read8(GamepadAddr))
	assert.Equal(t, uint8(0x00), m.Bus.Read8(GamepadAddr+1), "rest of the window reads zero")
}

func Test_VIAWindowMapped(t *testing.T) {
	m := newTestMachine(t, 0x01)

	m.Bus.Write8(VIAStart+viaRegACR, 0x40)

	assert.Equal(t, uint8(0x40), m.Bus.Read8(VIAStart+viaRegACR))
}

func Test_LoadProgram(t *testing.T) {
	m := newTestMachine(t, 0x01)
	path := writeProgFile(t)

	require.NoError(t, m.LoadProgram(path))

	assert.Equal(t, uint8(0xAB), m.Bus.Read8(0x0100))
	require.NotNil(t, m.Program)
	assert.True(t, m.Program.Basic)
}

func Test_LoadProgramErrorLeavesMemoryUntouched(t *testing.T) {
	m := newTestMachine(t, 0x01)
	m.Bus.Write8(0x0100, 0x77)

	path := filepath.Join(t.TempDir(), "bad.prog")
	require.NoError(t, os.WriteFile(path, []byte("GORP"), 0o644))

	err := m.LoadProgram(path)

	require.ErrorIs(t, err, loader.ErrBadMagic)
	assert.Equal(t, uint8(0x77), m.Bus.Read8(0x0100), "prior state preserved")
	assert.Nil(t, m.Program)
}

// writeProgFile emits a two-section PROG file: one byte of memory at
// $0100 and the BASIC flag.
func writeProgFile(t *testing.T) string {
	t.Helper()

	var buf []byte
	buf = append(buf, 'P', 'R', 'O', 'G')
	buf = binary.LittleEndian.AppendUint16(buf, 1) // version
	buf = binary.LittleEndian.AppendUint16(buf, 2) // sections

	buf = binary.LittleEndian.AppendUint16(buf, 0x0100) // memory section
	buf = binary.LittleEndian.AppendUint32(buf, 5)
	buf = binary.LittleEndian.AppendUint16(buf, 0x0100) // address
	buf = binary.LittleEndian.AppendUint16(buf, 1)      // size
	buf = append(buf, 0xAB)

	buf = binary.LittleEndian.AppendUint16(buf, 0x0002) // basic flag
	buf = binary.LittleEndian.AppendUint32(buf, 1)
	buf = append(buf, 0x01)

	path := filepath.Join(t.TempDir(), "program.prog")
	require.NoError(t, os.WriteFile(path, buf, 0o644))
	return path
}
