package jr100

// R6522 VIA as wired into the JR-100: port A drives the keyboard row
// selector, port B reads the key matrix on its low five bits, PB5 selects
// the font bank, and Timer 1 in square-wave mode gates the beeper through
// PB7. The machine ticks the VIA by the cycle count of each executed
// instruction, so register accesses always observe a counter that covers
// the preceding CPU cycles.

// Register offsets inside the 16-byte window.
const (
	viaRegIORB = 0x00
	viaRegIORA = 0x01
	viaRegDDRB = 0x02
	viaRegDDRA = 0x03
	viaRegT1CL = 0x04
	viaRegT1CH = 0x05
	viaRegT1LL = 0x06
	viaRegT1LH = 0x07
	viaRegT2CL = 0x08
	viaRegT2CH = 0x09
	viaRegSR   = 0x0A
	viaRegACR  = 0x0B
	viaRegPCR  = 0x0C
	viaRegIFR  = 0x0D
	viaRegIER  = 0x0E
	// Port A without the CA2 handshake pulse.
	viaRegIORANH = 0x0F

	viaWindowSize = 0x10
)

// Interrupt flag register bits.
const (
	ifrBitCA2 = uint8(0x01)
	ifrBitCA1 = uint8(0x02)
	ifrBitSR  = uint8(0x04)
	ifrBitCB2 = uint8(0x08)
	ifrBitCB1 = uint8(0x10)
	ifrBitT2  = uint8(0x20)
	ifrBitT1  = uint8(0x40)
	ifrBitIRQ = uint8(0x80)
)

// ToneOutput is the beeper side of the VIA: Timer 1 reloads translate
// into frequency updates and line gating.
type ToneOutput interface {
	SetFrequency(hz float64)
	LineOn()
	LineOff()
}

// VIA models the JR-100's R6522.
type VIA struct {
	start uint16

	irq      func(asserted bool) // composite IRQ line toward the CPU
	keyboard *Keyboard
	display  *Display
	tone     ToneOutput
	clockHz  float64

	// Register file
	ifr, ier uint8
	pcr, acr uint8
	ira, ora uint8
	irb, orb uint8
	ddra     uint8
	ddrb     uint8
	sr       uint8

	// Pin state
	portA, portB uint8
	ca1In, ca2In uint8
	ca2Out       uint8
	ca2Timer     int
	cb1In, cb2In uint8
	cb2Out       uint8

	// Timers
	prevPB6      uint8
	latch1       uint16
	latch2       uint16
	timer1       int32
	timer2       int32
	timer1Init   bool
	timer1Enable bool
	timer2Init   bool
	timer2Enable bool

	prevFrequency float64
}

// NewVIA wires the VIA at the given base address. Callbacks may be nil in
// partial test rigs.
func NewVIA(start uint16, clockHz float64, keyboard *Keyboard, display *Display, tone ToneOutput, irq func(bool)) *VIA {
	v := &VIA{
		start:    start,
		clockHz:  clockHz,
		keyboard: keyboard,
		display:  display,
		tone:     tone,
		irq:      irq,
	}
	v.Reset()
	return v
}

func (v *VIA) StartAddress() uint16 { return v.start }
func (v *VIA) EndAddress() uint16   { return v.start + viaWindowSize - 1 }

func (v *VIA) Reset() {
	v.ifr, v.ier = 0, 0
	v.pcr, v.acr = 0, 0
	v.ira, v.ora = 0, 0
	v.irb, v.orb = 0, 0
	v.ddra, v.ddrb = 0, 0
	v.sr = 0

	v.portA, v.portB = 0, 0
	v.ca1In, v.ca2In, v.ca2Out = 0, 0, 0
	v.ca2Timer = -1
	v.cb1In, v.cb2In, v.cb2Out = 0, 0, 0

	v.prevPB6 = 0
	v.latch1, v.latch2 = 0, 0
	v.timer1, v.timer2 = 0, 0
	v.timer1Init, v.timer1Enable = false, false
	v.timer2Init, v.timer2Enable = false, false

	v.prevFrequency = 0
}

// Tick advances the VIA by the given number of CPU cycles.
func (v *VIA) Tick(cycles int) {
	for i := 0; i < cycles; i++ {
		v.step()
	}
}

func (v *VIA) step() {
	if v.ca2Timer >= 0 {
		v.ca2Timer--
		if v.ca2Timer < 0 {
			v.ca2Out = 1
		}
	}

	// Timer 1. The load cycle does not decrement; the underflow event is
	// processed on the cycle after the counter passes zero.
	if v.timer1Init {
		v.timer1Init = false
	} else if v.timer1 >= 0 {
		v.timer1--
	} else {
		if v.timer1Enable {
			v.setInterrupt(ifrBitT1)
			switch v.acr & 0xC0 {
			case 0x00: // one-shot, PB7 untouched
				v.timer1Enable = false
				v.toneLineOff()
			case 0x40: // free-run, PB7 toggles
				v.invertPortB(7)
				v.jumperPB7PB6()
			case 0x80: // one-shot, PB7 pulses high once
				v.timer1Enable = false
				v.setPortB(7, 1)
				v.jumperPB7PB6()
			case 0xC0: // square wave
				v.invertPortB(7)
				v.jumperPB7PB6()
			}
		}
		if v.timer1FreeRun() {
			v.timer1 = int32(v.latch1)
			v.timer1Loaded()
		} else {
			// One-shot counters keep rolling through 0xFFFF.
			v.timer1 = 0xFFFF
		}
	}

	currentPB6 := v.inputPortB() & 0x40
	pb6Falling := v.prevPB6 != 0 && currentPB6 == 0
	v.prevPB6 = currentPB6

	// Timer 2: interval mode counts cycles, pulse mode counts PB6
	// falling edges.
	if v.timer2 >= 0 {
		if v.acr&0x20 == 0 {
			if v.timer2Init {
				v.timer2Init = false
			} else {
				v.timer2--
			}
		} else if pb6Falling {
			v.timer2--
		}
	} else {
		if v.timer2Enable {
			v.setInterrupt(ifrBitT2)
			v.timer2Enable = false
		}
		v.timer2 = 0xFFFF
	}
}

// Memory interface

func (v *VIA) Load8(addr uint16) uint8 {
	switch addr - v.start {
	case viaRegIORB:
		v.refreshKeyboardRow()
		result := v.irb
		if v.acr&0x02 == 0 {
			result = v.inputPortB()
		}
		mask := ifrBitCB1
		if v.pcr&0xA0 != 0x20 {
			mask |= ifrBitCB2
		}
		v.clearInterrupt(mask)
		return result
	case viaRegIORA:
		result := v.readPortA()
		mask := ifrBitCA1
		if v.pcr&0x0A != 0x02 {
			mask |= ifrBitCA2
		}
		v.clearInterrupt(mask)
		if v.ca2Out == 1 && (v.pcr&0x0E == 0x0A || v.pcr&0x0E == 0x08) {
			v.ca2Out = 0
			if v.pcr&0x0E == 0x08 {
				v.ca2Timer = 1
			}
		}
		return result
	case viaRegDDRB:
		return v.ddrb
	case viaRegDDRA:
		return v.ddra
	case viaRegT1CL:
		v.clearInterrupt(ifrBitT1)
		return uint8(v.timer1)
	case viaRegT1CH:
		return uint8(uint16(v.timer1) >> 8)
	case viaRegT1LL:
		return uint8(v.latch1)
	case viaRegT1LH:
		return uint8(v.latch1 >> 8)
	case viaRegT2CL:
		v.clearInterrupt(ifrBitT2)
		return uint8(v.timer2)
	case viaRegT2CH:
		return uint8(uint16(v.timer2) >> 8)
	case viaRegSR:
		return v.sr
	case viaRegACR:
		return v.acr
	case viaRegPCR:
		return v.pcr
	case viaRegIFR:
		return v.ifr
	case viaRegIER:
		return v.ier | 0x80
	case viaRegIORANH:
		return v.readPortA()
	}
	return 0
}

func (v *VIA) Store8(addr uint16, data uint8) {
	switch addr - v.start {
	case viaRegIORB:
		v.orb = data
		mask := ifrBitCB1
		if v.pcr&0xA0 != 0x20 {
			mask |= ifrBitCB2
		}
		v.clearInterrupt(mask)
		if v.cb2Out == 1 && v.pcr&0xC0 == 0x80 {
			v.cb2Out = 0
		}
		v.selectFontBank()
		v.jumperPB7PB6()
	case viaRegIORA:
		v.ora = data
		mask := ifrBitCA1
		if v.pcr&0x0A != 0x02 {
			mask |= ifrBitCA2
		}
		v.clearInterrupt(mask)
		if v.ca2Out == 1 && (v.pcr&0x0E == 0x0A || v.pcr&0x0C == 0x08) {
			v.ca2Out = 0
		}
		if v.pcr&0x0E == 0x0A {
			v.ca2Timer = 1
		}
		v.refreshKeyboardRow()
	case viaRegDDRB:
		v.ddrb = data
	case viaRegDDRA:
		v.ddra = data
	case viaRegT1CL, viaRegT1LL:
		v.latch1 = v.latch1&0xFF00 | uint16(data)
	case viaRegT1CH:
		v.latch1 = uint16(data)<<8 | v.latch1&0x00FF
		v.timer1 = int32(v.latch1)
		v.timer1Init = true
		v.timer1Enable = true
		v.clearInterrupt(ifrBitT1)
		v.setPortB(7, 0)
		v.timer1Loaded()
	case viaRegT1LH:
		v.latch1 = uint16(data)<<8 | v.latch1&0x00FF
	case viaRegT2CL:
		v.latch2 = v.latch2&0xFF00 | uint16(data)
	case viaRegT2CH:
		v.latch2 = uint16(data)<<8 | v.latch2&0x00FF
		v.timer2 = int32(v.latch2)
		v.timer2Init = true
		v.timer2Enable = true
		v.clearInterrupt(ifrBitT2)
	case viaRegSR:
		v.sr = data
	case viaRegACR:
		v.acr = data
	case viaRegPCR:
		v.pcr = data
	case viaRegIFR:
		if data&0x80 != 0 {
			data = 0x7F
		}
		v.clearInterrupt(data & 0x7F)
	case viaRegIER:
		if data&0x80 != 0 {
			v.ier |= data & 0x7F
		} else {
			v.ier &^= data & 0x7F
		}
		v.processIRQ()
	case viaRegIORANH:
		v.ora = data
		v.refreshKeyboardRow()
	}
}

// Control lines

// SetCA1 drives the CA1 input. The keyboard pulls it low while any key is
// held; the active edge is selected by PCR bit 0.
func (v *VIA) SetCA1(state uint8) {
	if v.ca1In == state {
		return
	}
	v.ca1In = state
	edgePositive := v.pcr&0x01 == 0x01
	if (state == 1 && edgePositive) || (state == 0 && !edgePositive) {
		if v.acr&0x01 == 0x01 {
			v.ira = v.inputPortA()
		}
		v.setInterrupt(ifrBitCA1)
		if v.ca2Out == 0 && v.pcr&0x0E == 0x08 {
			v.ca2Out = 1
		}
	}
}

// SetCA2 drives the CA2 input when PCR configures it as one.
func (v *VIA) SetCA2(state uint8) {
	if v.ca2In == state {
		return
	}
	v.ca2In = state
	if v.pcr&0x08 != 0 {
		return
	}
	rising := v.pcr&0x0C == 0x04
	if (state == 1 && rising) || (state == 0 && !rising) {
		v.setInterrupt(ifrBitCA2)
	}
}

// SetCB1 drives the CB1 input; the active edge is PCR bit 4.
func (v *VIA) SetCB1(state uint8) {
	if v.cb1In == state {
		return
	}
	v.cb1In = state
	edgePositive := v.pcr&0x10 == 0x10
	if (state == 1 && edgePositive) || (state == 0 && !edgePositive) {
		if v.acr&0x02 == 0x02 {
			v.irb = v.inputPortB()
		}
		v.setInterrupt(ifrBitCB1)
		if v.cb2Out == 0 && v.pcr&0xC0 == 0x80 {
			v.cb2Out = 1
		}
	}
}

// SetCB2 drives the CB2 input when PCR configures it as one.
func (v *VIA) SetCB2(state uint8) {
	if v.cb2In == state {
		return
	}
	v.cb2In = state
	if v.pcr&0x80 != 0 {
		return
	}
	rising := v.pcr&0xC0 == 0x40
	if (state == 1 && rising) || (state == 0 && !rising) {
		v.setInterrupt(ifrBitCB2)
	}
}

// IRQAsserted reports the state of the composite interrupt output.
func (v *VIA) IRQAsserted() bool { return v.ifr&ifrBitIRQ != 0 }

// Interrupt plumbing

func (v *VIA) processIRQ() {
	if v.ier&v.ifr&0x7F != 0 {
		if v.ifr&ifrBitIRQ == 0 {
			v.ifr |= ifrBitIRQ
			if v.irq != nil {
				v.irq(true)
			}
		}
	} else if v.ifr&ifrBitIRQ != 0 {
		v.ifr &^= ifrBitIRQ
		if v.irq != nil {
			v.irq(false)
		}
	}
}

func (v *VIA) setInterrupt(bits uint8) {
	if v.ifr&bits != bits {
		v.ifr |= bits
		v.processIRQ()
	}
}

func (v *VIA) clearInterrupt(bits uint8) {
	if v.ifr&bits != 0 {
		v.ifr &^= bits
		v.processIRQ()
	}
}

// Ports

func (v *VIA) inputPortA() uint8 {
	return v.ira&^v.ddra | v.portA&v.ddra
}

func (v *VIA) readPortA() uint8 {
	if v.acr&0x01 == 0 {
		return v.inputPortA()
	}
	return v.ira
}

func (v *VIA) inputPortB() uint8 {
	return v.irb&^v.ddrb | v.orb&v.ddrb
}

func (v *VIA) inputPortBBit(bit uint8) uint8 {
	return v.inputPortB() >> bit & 0x01
}

// setPortB drives an input pin of port B from inside the chip; pins
// configured as outputs are left to ORB.
func (v *VIA) setPortB(bit uint8, state uint8) {
	mask := uint8(1) << bit
	if v.ddrb&mask != 0 {
		return
	}
	if state != 0 {
		v.portB |= mask
	} else {
		v.portB &^= mask
	}
	if v.acr&0x02 == 0 {
		v.irb = v.portB
	}
}

func (v *VIA) setPortBValue(value uint8) {
	v.portB = v.portB&v.ddrb | value&^v.ddrb
	if v.acr&0x02 == 0 {
		v.irb = v.portB
	}
}

func (v *VIA) invertPortB(bit uint8) {
	v.setPortB(bit, v.portB>>bit&0x01^0x01)
}

// JR-100 wiring

// The board jumpers PB7 onto PB6, which is what makes Timer 2's pulse
// counting observe Timer 1's square wave.
func (v *VIA) jumperPB7PB6() {
	v.setPortB(6, v.inputPortBBit(7))
	v.selectFontBank()
}

func (v *VIA) selectFontBank() {
	if v.display != nil {
		v.display.SetFontBank(v.inputPortB()&0x20 != 0)
	}
}

// refreshKeyboardRow presents the row selected by the low nibble of port
// A on the low five bits of port B, active low.
func (v *VIA) refreshKeyboardRow() {
	if v.keyboard == nil {
		return
	}
	row := v.ora & 0x0F
	value := v.inputPortB() & 0xE0
	value |= ^v.keyboard.Row(int(row)) & 0x1F
	v.setPortBValue(value)
	v.jumperPB7PB6()
}

// Timer 1 side effects shared by the T1CH store and the free-run reload.
func (v *VIA) timer1Loaded() {
	if v.tone == nil {
		return
	}
	if v.acr&0xC0 == 0xC0 {
		period := float64(v.timer1 + 2)
		frequency := 0.0
		if period > 0 {
			frequency = v.clockHz / period / 2.0
		}
		if frequency != v.prevFrequency {
			v.prevFrequency = frequency
			v.tone.SetFrequency(frequency)
		}
		v.tone.LineOn()
	} else {
		v.tone.LineOff()
	}
}

func (v *VIA) toneLineOff() {
	if v.tone != nil {
		v.tone.LineOff()
	}
}

func (v *VIA) timer1FreeRun() bool {
	mode := v.acr & 0xC0
	return mode == 0x40 || mode == 0xC0
}
