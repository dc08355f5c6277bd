package jr100

import (
	"image"
	"image/color"
)

// Screen geometry: 32x24 cells of 8x8 pixels.
const (
	ScreenColumns = 32
	ScreenRows    = 24
	ScreenCells   = ScreenColumns * ScreenRows
	ScreenWidth   = ScreenColumns * glyphPixels
	ScreenHeight  = ScreenRows * glyphPixels

	glyphPixels = 8
	glyphBytes  = 8
	romGlyphs   = 128
	// User-definable glyph rows live in the contiguous UDC+video RAM
	// span, 128 glyphs of 8 bytes.
	userGlyphs = 128
)

// Display converts video RAM and the current font bank into a pixel
// frame. Cells are redrawn lazily: VRAM and font writes mark them dirty,
// and a font-bank flip invalidates the whole frame since per-cell
// tracking cannot be trusted across a bank change.
type Display struct {
	vram *VideoRAM
	udc  *UDCRAM

	romFont [romGlyphs][glyphBytes]uint8

	userBank bool
	dirty    [ScreenCells]bool
	allDirty bool

	frame *image.RGBA
	fg    color.RGBA
	bg    color.RGBA
}

func NewDisplay(vram *VideoRAM, udc *UDCRAM) *Display {
	d := &Display{
		vram:     vram,
		udc:      udc,
		allDirty: true,
		frame:    image.NewRGBA(image.Rect(0, 0, ScreenWidth, ScreenHeight)),
		fg:       color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		bg:       color.RGBA{A: 0xFF},
	}
	vram.AttachDisplay(d)
	udc.AttachDisplay(d)
	return d
}

// LoadFont installs the built-in character generator, the first 1KB of
// the BASIC ROM image.
func (d *Display) LoadFont(rom []uint8) {
	for code := 0; code < romGlyphs; code++ {
		for line := 0; line < glyphBytes; line++ {
			idx := code*glyphBytes + line
			if idx < len(rom) {
				d.romFont[code][line] = rom[idx]
			}
		}
	}
	d.allDirty = true
}

// SetFontBank selects between the built-in and user-defined font bank
// (VIA port B bit 5, CMODE1).
func (d *Display) SetFontBank(user bool) {
	if d.userBank == user {
		return
	}
	d.userBank = user
	d.allDirty = true
}

// UserBank reports the selected font bank.
func (d *Display) UserBank() bool { return d.userBank }

func (d *Display) cellWritten(offset int) {
	if offset >= 0 && offset < ScreenCells {
		d.dirty[offset] = true
	}
}

// glyphWritten invalidates every cell showing the changed user glyph.
// The built-in bank never changes, so nothing is dirty unless the user
// bank is selected and the glyph is one of the 128 definable codes.
func (d *Display) glyphWritten(glyph int) {
	if !d.userBank || glyph < 0 || glyph >= userGlyphs {
		return
	}
	code := uint8(0x80 + glyph)
	for offset, cell := range d.vram.Data()[:ScreenCells] {
		if cell == code {
			d.dirty[offset] = true
		}
	}
}

// Invalidate forces a full-frame rebuild on the next RenderFrame.
func (d *Display) Invalidate() { d.allDirty = true }

// RenderFrame merges dirty cells into the previous frame and returns the
// pixel buffer. The buffer is owned by the display; hosts rendering on
// another thread must copy it while the core is paused.
func (d *Display) RenderFrame() *image.RGBA {
	vram := d.vram.Data()
	for offset := 0; offset < ScreenCells; offset++ {
		if !d.allDirty && !d.dirty[offset] {
			continue
		}
		d.drawCell(offset, vram[offset])
		d.dirty[offset] = false
	}
	d.allDirty = false
	return d.frame
}

func (d *Display) drawCell(offset int, code uint8) {
	rows, inverted := d.glyph(code)
	x0 := offset % ScreenColumns * glyphPixels
	y0 := offset / ScreenColumns * glyphPixels
	for line := 0; line < glyphPixels; line++ {
		bits := rows[line]
		if inverted {
			bits ^= 0xFF
		}
		for px := 0; px < glyphPixels; px++ {
			c := d.bg
			if bits&(0x80>>px) != 0 {
				c = d.fg
			}
			d.frame.SetRGBA(x0+px, y0+line, c)
		}
	}
}

// glyph resolves a character code against the current font bank. In the
// built-in bank, codes >= 0x80 are the inverse of the low half. In the
// user bank, codes >= 0x80 select user glyph pixels from the UDC/video
// RAM span.
func (d *Display) glyph(code uint8) ([glyphBytes]uint8, bool) {
	if code < 0x80 {
		return d.romFont[code], false
	}
	if !d.userBank {
		return d.romFont[code-0x80], true
	}
	return d.userGlyph(int(code) - 0x80), false
}

func (d *Display) userGlyph(index int) [glyphBytes]uint8 {
	var rows [glyphBytes]uint8
	base := index * glyphBytes
	udc := d.udc.Data()
	vram := d.vram.Data()
	for line := 0; line < glyphBytes; line++ {
		offset := base + line
		if offset < UDCRAMSize {
			rows[line] = udc[offset]
		} else {
			rows[line] = vram[offset-UDCRAMSize]
		}
	}
	return rows
}
