package jr100

// Address map of the JR-100.
const (
	MainRAMStart    = 0x0000
	MainRAMSize     = 0x4000
	ExtendedRAMSize = 0x8000

	UDCRAMStart   = 0xC000
	UDCRAMSize    = 0x0100
	VideoRAMStart = 0xC100
	VideoRAMSize  = 0x0300

	VIAStart = 0xC800

	ExtIOStart  = 0xCC00
	ExtIOSize   = 0x0400
	GamepadAddr = 0xCC02

	ROMStart = 0xE000
	ROMSize  = 0x2000
)

// RAM is a plain byte-backed region.
type RAM struct {
	start uint16
	data  []uint8
}

func NewRAM(start uint16, size int) *RAM {
	return &RAM{start: start, data: make([]uint8, size)}
}

func (m *RAM) StartAddress() uint16 { return m.start }
func (m *RAM) EndAddress() uint16   { return m.start + uint16(len(m.data)) - 1 }

func (m *RAM) Load8(addr uint16) uint8 {
	return m.data[addr-m.start]
}

func (m *RAM) Store8(addr uint16, data uint8) {
	m.data[addr-m.start] = data
}

// Zero clears the region.
func (m *RAM) Zero() {
	for i := range m.data {
		m.data[i] = 0
	}
}

// Data exposes the backing bytes for components that need bulk access
// (the display reads glyph rows straight out of UDC/video RAM).
func (m *RAM) Data() []uint8 { return m.data }

// ROM ignores writes.
type ROM struct {
	RAM
}

func NewROM(start uint16, size int) *ROM {
	return &ROM{RAM{start: start, data: make([]uint8, size)}}
}

func (m *ROM) Store8(uint16, uint8) {}

// LoadImage copies an image into the ROM, truncating to the region size.
func (m *ROM) LoadImage(image []uint8) {
	copy(m.data, image)
}

// VideoRAM holds the 32x24 character codes. Writes mark the display cell
// dirty, and also retarget user-defined glyphs 32-127, whose pixel data
// lives in this region (contiguous with UDC RAM).
type VideoRAM struct {
	RAM
	display *Display
}

func NewVideoRAM(start uint16, size int) *VideoRAM {
	return &VideoRAM{RAM: RAM{start: start, data: make([]uint8, size)}}
}

func (m *VideoRAM) AttachDisplay(d *Display) { m.display = d }

func (m *VideoRAM) Store8(addr uint16, data uint8) {
	offset := int(addr - m.start)
	m.RAM.Store8(addr, data)
	if m.display == nil {
		return
	}
	m.display.cellWritten(offset)
	m.display.glyphWritten((offset + UDCRAMSize) / glyphBytes)
}

// UDCRAM backs user-defined glyphs 0-31. Writes retarget the display font.
type UDCRAM struct {
	RAM
	display *Display
}

func NewUDCRAM(start uint16, size int) *UDCRAM {
	return &UDCRAM{RAM: RAM{start: start, data: make([]uint8, size)}}
}

func (m *UDCRAM) AttachDisplay(d *Display) { m.display = d }

func (m *UDCRAM) Store8(addr uint16, data uint8) {
	offset := int(addr - m.start)
	m.RAM.Store8(addr, data)
	if m.display != nil {
		m.display.glyphWritten(offset / glyphBytes)
	}
}

// ExtIOPort is the expansion window. Only the gamepad status byte is
// populated; the rest of the window reads back zero.
type ExtIOPort struct {
	start   uint16
	gamepad uint8
}

func NewExtIOPort(start uint16) *ExtIOPort {
	return &ExtIOPort{start: start}
}

func (p *ExtIOPort) StartAddress() uint16 { return p.start }
func (p *ExtIOPort) EndAddress() uint16   { return p.start + ExtIOSize - 1 }

func (p *ExtIOPort) Load8(addr uint16) uint8 {
	if addr == GamepadAddr {
		return p.gamepad
	}
	return 0
}

func (p *ExtIOPort) Store8(addr uint16, data uint8) {
	if addr == GamepadAddr {
		p.gamepad = data
	}
}

// SetGamepad feeds the host gamepad state into the port.
func (p *ExtIOPort) SetGamepad(state uint8) { p.gamepad = state }
