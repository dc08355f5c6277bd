package jr100

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDisplay() (*Display, *VideoRAM, *UDCRAM) {
	vram := NewVideoRAM(VideoRAMStart, VideoRAMSize)
	udc := NewUDCRAM(UDCRAMStart, UDCRAMSize)
	d := NewDisplay(vram, udc)

	// Synthetic character generator: glyph 0x01 is solid, glyph 0x02 is
	// the top row only, everything else blank.
	font := make([]uint8, romGlyphs*glyphBytes)
	for line := 0; line < glyphBytes; line++ {
		font[0x01*glyphBytes+line] = 0xFF
	}
	font[0x02*glyphBytes] = 0xFF
	d.LoadFont(font)
	return d, vram, udc
}

func pixelOn(d *Display, x, y int) bool {
	r, _, _, _ := d.RenderFrame().At(x, y).RGBA()
	return r != 0
}

func Test_RenderBuiltinGlyph(t *testing.T) {
	d, vram, _ := newTestDisplay()

	vram.Store8(VideoRAMStart, 0x01)   // solid glyph, cell (0,0)
	vram.Store8(VideoRAMStart+1, 0x02) // top-row glyph, cell (1,0)

	frame := d.RenderFrame()
	require.Equal(t, ScreenWidth, frame.Bounds().Dx())
	require.Equal(t, ScreenHeight, frame.Bounds().Dy())

	assert.True(t, pixelOn(d, 0, 0))
	assert.True(t, pixelOn(d, 7, 7))
	assert.True(t, pixelOn(d, 8, 0), "second cell, top row")
	assert.False(t, pixelOn(d, 8, 1), "second cell, below the top row")
	assert.False(t, pixelOn(d, 16, 0), "blank cell")
}

func Test_InverseVideoInBuiltinBank(t *testing.T) {
	d, vram, _ := newTestDisplay()

	vram.Store8(VideoRAMStart, 0x81) // inverse of the solid glyph

	assert.False(t, pixelOn(d, 0, 0), "solid glyph inverts to background")

	vram.Store8(VideoRAMStart, 0x80) // inverse of the blank glyph
	assert.True(t, pixelOn(d, 0, 0), "blank glyph inverts to foreground")
}

func Test_FontBankSwitchInvalidatesFrame(t *testing.T) {
	d, vram, udc := newTestDisplay()

	udc.Store8(UDCRAMStart, 0xF0) // user glyph 0, top row: left half set
	vram.Store8(VideoRAMStart, 0x80)

	require.True(t, pixelOn(d, 0, 0), "built-in bank: inverse blank, all set")
	require.True(t, pixelOn(d, 4, 0))

	d.SetFontBank(true)

	assert.True(t, pixelOn(d, 0, 0), "user glyph left half")
	assert.False(t, pixelOn(d, 4, 0), "user glyph right half clear")
}

func Test_UserGlyphBackedByVideoRAM(t *testing.T) {
	d, vram, _ := newTestDisplay()
	d.SetFontBank(true)

	// User glyph 40 lives past the 32 UDC glyphs; its pixel rows come
	// from the video RAM span.
	glyph := 40
	vram.Store8(uint16(UDCRAMStart+glyph*glyphBytes), 0xAA)
	vram.Store8(VideoRAMStart, uint8(0x80+glyph))

	assert.True(t, pixelOn(d, 0, 0))
	assert.False(t, pixelOn(d, 1, 0))
	assert.True(t, pixelOn(d, 2, 0))
}

func Test_UDCWriteRedrawsAffectedCells(t *testing.T) {
	d, vram, udc := newTestDisplay()
	d.SetFontBank(true)

	vram.Store8(VideoRAMStart+5, 0x80) // cell 5 shows user glyph 0
	require.False(t, pixelOn(d, 5*glyphPixels, 0))

	udc.Store8(UDCRAMStart, 0xFF)

	assert.True(t, pixelOn(d, 5*glyphPixels, 0), "glyph change reaches the cell")
}

func Test_FrameColors(t *testing.T) {
	d, vram, _ := newTestDisplay()
	vram.Store8(VideoRAMStart, 0x01)

	frame := d.RenderFrame()

	assert.Equal(t, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, frame.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{A: 0xFF}, frame.RGBAAt(15, 0))
}
