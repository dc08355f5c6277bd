package jr100

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTone struct {
	freq float64
	on   bool
}

func (f *fakeTone) SetFrequency(hz float64) { f.freq = hz }
func (f *fakeTone) LineOn()                 { f.on = true }
func (f *fakeTone) LineOff()                { f.on = false }

type irqRecorder struct {
	asserted bool
	edges    int
}

func (r *irqRecorder) set(asserted bool) {
	r.asserted = asserted
	r.edges++
}

func newTestVIA() (*VIA, *Keyboard, *fakeTone, *irqRecorder) {
	kb := NewKeyboard()
	tone := &fakeTone{}
	rec := &irqRecorder{}
	v := NewVIA(VIAStart, ClockHz, kb, nil, tone, rec.set)
	return v, kb, tone, rec
}

func (v *VIA) write(reg uint16, data uint8) {
	v.Store8(v.start+reg, data)
}

func (v *VIA) read(reg uint16) uint8 {
	return v.Load8(v.start + reg)
}

func Test_Timer1FreeRunPeriod(t *testing.T) {
	v, _, _, _ := newTestVIA()
	const latch = 0x20

	v.write(viaRegACR, 0x40) // free-run, PB7 toggles
	v.write(viaRegT1CL, latch)
	v.write(viaRegT1CH, 0x00)
	require.Zero(t, v.ifr&ifrBitT1, "armed, not yet expired")

	// First period pays one extra load cycle.
	v.Tick(latch + 2)
	assert.Zero(t, v.ifr&ifrBitT1)
	v.Tick(1)
	assert.NotZero(t, v.ifr&ifrBitT1, "first underflow")
	pb7 := v.inputPortBBit(7)

	v.read(viaRegT1CL) // clears the flag
	require.Zero(t, v.ifr&ifrBitT1)

	// Steady state: exactly latch+2 cycles per underflow.
	v.Tick(latch + 1)
	assert.Zero(t, v.ifr&ifrBitT1)
	v.Tick(1)
	assert.NotZero(t, v.ifr&ifrBitT1, "second underflow")
	assert.NotEqual(t, pb7, v.inputPortBBit(7), "PB7 toggles on each reload")
}

func Test_Timer1OneShot(t *testing.T) {
	v, _, _, _ := newTestVIA()

	v.write(viaRegACR, 0x00)
	v.write(viaRegT1LL, 0x10)
	v.write(viaRegT1CH, 0x00)
	pb7Before := v.inputPortBBit(7)

	v.Tick(0x14)

	assert.NotZero(t, v.ifr&ifrBitT1, "expired once")
	assert.Greater(t, v.timer1, int32(0xFFF0), "counter rolled through zero")
	assert.Equal(t, pb7Before, v.inputPortBBit(7), "PB7 untouched with output disabled")

	v.Tick(0x100)
	v.read(viaRegT1CL)
	assert.Zero(t, v.ifr&ifrBitT1, "reading T1CL clears the flag")
	v.Tick(0x10000)
	assert.Zero(t, v.ifr&ifrBitT1, "one-shot does not re-fire")
}

func Test_Timer2Interval(t *testing.T) {
	v, _, _, _ := newTestVIA()

	v.write(viaRegT2CL, 0x10)
	v.write(viaRegT2CH, 0x00)

	v.Tick(0x12)
	assert.Zero(t, v.ifr&ifrBitT2)
	v.Tick(1)
	assert.NotZero(t, v.ifr&ifrBitT2, "interval expired")

	v.read(viaRegT2CL)
	assert.Zero(t, v.ifr&ifrBitT2, "reading T2CL clears the flag")
}

func Test_Timer2PulseCountingOnPB6(t *testing.T) {
	v, _, _, _ := newTestVIA()

	// T1 square wave drives PB7, the board jumper mirrors it onto PB6,
	// and T2 counts the falling edges.
	v.write(viaRegACR, 0xC0|0x20)
	v.write(viaRegT1CL, 0x02)
	v.write(viaRegT1CH, 0x00)
	v.write(viaRegT2CL, 0x03)
	v.write(viaRegT2CH, 0x00)

	v.Tick(200)

	assert.NotZero(t, v.ifr&ifrBitT2, "counted PB6 falling edges down to zero")
}

func Test_IERSetClearSemantics(t *testing.T) {
	v, _, _, _ := newTestVIA()

	v.write(viaRegIER, 0x80|0x60) // set T1+T2 enables
	assert.Equal(t, uint8(0x60), v.ier)

	v.write(viaRegIER, 0x20) // bit 7 clear: clear T2 enable
	assert.Equal(t, uint8(0x40), v.ier)

	assert.Equal(t, uint8(0xC0), v.read(viaRegIER), "IER reads back with bit 7 high")
}

func Test_CompositeIRQLine(t *testing.T) {
	v, _, _, rec := newTestVIA()

	v.write(viaRegIER, 0x80|0x40) // enable T1
	v.write(viaRegT1CL, 0x04)
	v.write(viaRegT1CH, 0x00)
	v.Tick(0x20)

	require.NotZero(t, v.ifr&ifrBitT1)
	assert.NotZero(t, v.ifr&ifrBitIRQ, "IFR bit 7 is the composite")
	assert.True(t, rec.asserted, "IRQ line follows the composite")
	assert.True(t, v.IRQAsserted())

	v.write(viaRegIFR, ifrBitT1) // writing 1 clears the flag
	assert.Zero(t, v.ifr&ifrBitT1)
	assert.False(t, rec.asserted, "line drops when the flag clears")
}

func Test_MaskedFlagDoesNotAssert(t *testing.T) {
	v, _, _, rec := newTestVIA()

	v.write(viaRegT1CL, 0x04)
	v.write(viaRegT1CH, 0x00)
	v.Tick(0x20)

	assert.NotZero(t, v.ifr&ifrBitT1, "flag latches regardless of IER")
	assert.False(t, rec.asserted, "line stays quiet while disabled")
}

func Test_KeyboardMatrixRead(t *testing.T) {
	v, kb, _, _ := newTestVIA()

	kb.Set(Key{Row: 5, Column: 4}, true)
	v.write(viaRegIORA, 0x05) // select row 5

	got := v.read(viaRegIORB)
	assert.Equal(t, uint8(0x0F), got&0x1F, "pressed key reads active low")

	v.write(viaRegIORA, 0x03) // row with no keys held
	assert.Equal(t, uint8(0x1F), v.read(viaRegIORB)&0x1F)
}

func Test_KeyboardRollover(t *testing.T) {
	v, kb, _, _ := newTestVIA()

	kb.Set(Key{Row: 2, Column: 0}, true)
	kb.Set(Key{Row: 2, Column: 3}, true)
	v.write(viaRegIORA, 0x02)

	assert.Equal(t, uint8(0x16), v.read(viaRegIORB)&0x1F, "both keys visible")
}

func Test_KeyPressDrivesCA1(t *testing.T) {
	v, kb, _, _ := newTestVIA()
	kb.SetListener(func(anyPressed bool) {
		if anyPressed {
			v.SetCA1(0)
		} else {
			v.SetCA1(1)
		}
	})
	v.SetCA1(1)
	v.clearInterrupt(0x7F)

	kb.Set(KeyZ, true)

	assert.NotZero(t, v.ifr&ifrBitCA1, "negative edge latched")
}

func Test_FontBankFollowsPB5(t *testing.T) {
	vram := NewVideoRAM(VideoRAMStart, VideoRAMSize)
	udc := NewUDCRAM(UDCRAMStart, UDCRAMSize)
	display := NewDisplay(vram, udc)
	v := NewVIA(VIAStart, ClockHz, NewKeyboard(), display, nil, nil)

	v.write(viaRegDDRB, 0x20)
	v.write(viaRegIORB, 0x20)
	assert.True(t, display.UserBank(), "CMODE1 high selects the user bank")

	v.write(viaRegIORB, 0x00)
	assert.False(t, display.UserBank())
}

func Test_ToneFollowsTimer1(t *testing.T) {
	v, _, tone, _ := newTestVIA()

	v.write(viaRegACR, 0xC0) // square wave mode
	v.write(viaRegT1CL, 0xC3)
	v.write(viaRegT1CH, 0x01) // latch 0x01C3 = 451

	assert.True(t, tone.on, "gate opens on arm")
	assert.InDelta(t, ClockHz/(451+2)/2, tone.freq, 0.01)

	v.write(viaRegACR, 0x00)
	v.write(viaRegT1CH, 0x01)
	assert.False(t, tone.on, "non-square modes silence the line")
}

func Test_ShiftRegisterReadsBack(t *testing.T) {
	v, _, _, _ := newTestVIA()

	v.write(viaRegSR, 0x5A)
	assert.Equal(t, uint8(0x5A), v.read(viaRegSR))
}

func Test_RegisterFileReadsBack(t *testing.T) {
	v, _, _, _ := newTestVIA()

	v.write(viaRegACR, 0x40)
	v.write(viaRegPCR, 0x0C)
	v.write(viaRegDDRA, 0x0F)
	v.write(viaRegDDRB, 0xA0)

	assert.Equal(t, uint8(0x40), v.read(viaRegACR))
	assert.Equal(t, uint8(0x0C), v.read(viaRegPCR))
	assert.Equal(t, uint8(0x0F), v.read(viaRegDDRA))
	assert.Equal(t, uint8(0xA0), v.read(viaRegDDRB))
}
