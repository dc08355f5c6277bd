package bus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ramRegion struct {
	start uint16
	data  []uint8
}

func newRAMRegion(start uint16, size int) *ramRegion {
	return &ramRegion{start: start, data: make([]uint8, size)}
}

func (r *ramRegion) StartAddress() uint16 { return r.start }
func (r *ramRegion) EndAddress() uint16   { return r.start + uint16(len(r.data)) - 1 }

func (r *ramRegion) Load8(addr uint16) uint8 {
	return r.data[addr-r.start]
}

func (r *ramRegion) Store8(addr uint16, data uint8) {
	r.data[addr-r.start] = data
}

func Test_WriteReadRoundTrip(t *testing.T) {
	b := New()
	require.NoError(t, b.Map(newRAMRegion(0x0000, 0x4000)))

	for _, addr := range []uint16{0x0000, 0x0040, 0x1234, 0x3FFF} {
		for _, v := range []uint8{0x00, 0x5A, 0xFF} {
			b.Write8(addr, v)
			assert.Equal(t, v, b.Read8(addr), "addr %#04x", addr)
		}
	}
}

func Test_UnmappedReadsOpenBus(t *testing.T) {
	b := New()
	require.NoError(t, b.Map(newRAMRegion(0x0000, 0x4000)))

	b.Write8(0x8000, 0x12) // dropped
	assert.Equal(t, uint8(0xFF), b.Read8(0x8000))
	assert.Equal(t, uint8(0xFF), b.Read8(0xCFFF))
}

func Test_Read16BigEndian(t *testing.T) {
	b := New()
	require.NoError(t, b.Map(newRAMRegion(0x0000, 0x100)))

	b.Write16(0x0010, 0x1234)

	assert.Equal(t, uint8(0x12), b.Read8(0x0010), "high byte first")
	assert.Equal(t, uint8(0x34), b.Read8(0x0011))
	assert.Equal(t, uint16(0x1234), b.Read16(0x0010))
}

func Test_OverlapRejected(t *testing.T) {
	b := New()
	require.NoError(t, b.Map(newRAMRegion(0x1000, 0x100)))

	err := b.Map(newRAMRegion(0x10FF, 0x10))

	assert.Error(t, err, "overlapping region is a wiring error")
}

func Test_ReversedRegionRejected(t *testing.T) {
	b := New()
	r := &ramRegion{start: 0xFFFF, data: make([]uint8, 2)} // wraps past the top

	assert.Error(t, b.Map(r))
}
