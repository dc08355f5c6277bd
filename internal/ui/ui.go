package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/zabaglione/jr100-emulator-v2/internal/jr100"
)

// keyMap mirrors the JR-100 keyboard layout onto the host keyboard.
var keyMap = map[ebiten.Key]jr100.Key{
	ebiten.KeyControl:   jr100.KeyCtrl,
	ebiten.KeyShift:     jr100.KeyShift,
	ebiten.KeyZ:         jr100.KeyZ,
	ebiten.KeyX:         jr100.KeyX,
	ebiten.KeyC:         jr100.KeyC,
	ebiten.KeyA:         jr100.KeyA,
	ebiten.KeyS:         jr100.KeyS,
	ebiten.KeyD:         jr100.KeyD,
	ebiten.KeyF:         jr100.KeyF,
	ebiten.KeyG:         jr100.KeyG,
	ebiten.KeyQ:         jr100.KeyQ,
	ebiten.KeyW:         jr100.KeyW,
	ebiten.KeyE:         jr100.KeyE,
	ebiten.KeyR:         jr100.KeyR,
	ebiten.KeyT:         jr100.KeyT,
	ebiten.KeyDigit1:    jr100.Key1,
	ebiten.KeyDigit2:    jr100.Key2,
	ebiten.KeyDigit3:    jr100.Key3,
	ebiten.KeyDigit4:    jr100.Key4,
	ebiten.KeyDigit5:    jr100.Key5,
	ebiten.KeyDigit6:    jr100.Key6,
	ebiten.KeyDigit7:    jr100.Key7,
	ebiten.KeyDigit8:    jr100.Key8,
	ebiten.KeyDigit9:    jr100.Key9,
	ebiten.KeyDigit0:    jr100.Key0,
	ebiten.KeyY:         jr100.KeyY,
	ebiten.KeyU:         jr100.KeyU,
	ebiten.KeyI:         jr100.KeyI,
	ebiten.KeyO:         jr100.KeyO,
	ebiten.KeyP:         jr100.KeyP,
	ebiten.KeyH:         jr100.KeyH,
	ebiten.KeyJ:         jr100.KeyJ,
	ebiten.KeyK:         jr100.KeyK,
	ebiten.KeyL:         jr100.KeyL,
	ebiten.KeySemicolon: jr100.KeySemi,
	ebiten.KeyV:         jr100.KeyV,
	ebiten.KeyB:         jr100.KeyB,
	ebiten.KeyN:         jr100.KeyN,
	ebiten.KeyM:         jr100.KeyM,
	ebiten.KeyComma:     jr100.KeyComma,
	ebiten.KeyPeriod:    jr100.KeyPeriod,
	ebiten.KeySpace:     jr100.KeySpace,
	ebiten.KeyQuote:     jr100.KeyColon,
	ebiten.KeyEnter:     jr100.KeyReturn,
	ebiten.KeyMinus:     jr100.KeyMinus,
}

// Gamepad status bits presented at the extended I/O port, driven from
// the cursor keys and Alt.
const (
	padRight  = uint8(0x01)
	padLeft   = uint8(0x02)
	padUp     = uint8(0x04)
	padDown   = uint8(0x08)
	padButton = uint8(0x10)
)

// UI runs the machine inside an ebiten window: one Update per video
// frame, keyboard state fed in before the frame's cycles run.
type UI struct {
	machine *jr100.Machine
	carry   int
}

func New(machine *jr100.Machine) *UI {
	return &UI{machine: machine}
}

func (ui *UI) Update() error {
	for hostKey, key := range keyMap {
		ui.machine.Keyboard.Set(key, ebiten.IsKeyPressed(hostKey))
	}
	ui.machine.ExtIO.SetGamepad(ui.gamepadState())

	overshoot, err := ui.machine.RunFor(jr100.CyclesPerFrame - ui.carry)
	if err != nil {
		return err
	}
	ui.carry = overshoot
	return nil
}

func (ui *UI) gamepadState() uint8 {
	var state uint8
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		state |= padRight
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		state |= padLeft
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		state |= padUp
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		state |= padDown
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		state |= padButton
	}
	return state
}

func (ui *UI) Draw(screen *ebiten.Image) {
	frame := ebiten.NewImageFromImage(ui.machine.Display.RenderFrame())
	screen.DrawImage(frame, nil)
}

func (ui *UI) Layout(_, _ int) (int, int) {
	return jr100.ScreenWidth, jr100.ScreenHeight
}

// Run opens the window and drives the UI until the machine stops or the
// window is closed.
func Run(ui *UI, scale int, fullscreen bool) error {
	if scale < 1 {
		scale = 1
	}
	ebiten.SetWindowTitle("JR-100")
	ebiten.SetWindowSize(jr100.ScreenWidth*scale, jr100.ScreenHeight*scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(fullscreen)
	ebiten.SetTPS(jr100.FramesPerSecond)
	return ebiten.RunGame(ui)
}
