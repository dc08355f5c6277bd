package jr100

import (
	"fmt"

	"github.com/zabaglione/jr100-emulator-v2/internal/bus"
	"github.com/zabaglione/jr100-emulator-v2/internal/cpu"
	"github.com/zabaglione/jr100-emulator-v2/internal/loader"
)

// System clock and frame pacing of the JR-100.
const (
	ClockHz         = 894886.25
	FramesPerSecond = 50
	CyclesPerFrame  = 894886 / FramesPerSecond
)

// Config selects the machine variant and host-facing options.
type Config struct {
	ROMImage    []uint8 // 8KB BASIC ROM image, mapped at $E000
	ExtendedRAM bool    // 32KB main RAM instead of 16KB
	SampleRate  int     // beeper sample rate; 0 picks the default
}

// Machine wires the CPU, bus, VIA, display, keyboard and beeper into one
// JR-100 and drives them in program order: one instruction, then a VIA
// tick covering the same cycles. The whole machine is single-threaded;
// the host delivers input between frames.
type Machine struct {
	Bus      *bus.Bus
	CPU      *cpu.CPU
	VIA      *VIA
	Keyboard *Keyboard
	Display  *Display
	Beeper   *Beeper
	ExtIO    *ExtIOPort

	ram  *RAM
	vram *VideoRAM
	udc  *UDCRAM
	rom  *ROM

	// Program holds the descriptor of the most recently loaded PROG
	// file, if any.
	Program *loader.Program
}

func NewMachine(cfg Config) (*Machine, error) {
	b := bus.New()

	ramSize := MainRAMSize
	if cfg.ExtendedRAM {
		ramSize = ExtendedRAMSize
	}
	ram := NewRAM(MainRAMStart, ramSize)
	udc := NewUDCRAM(UDCRAMStart, UDCRAMSize)
	vram := NewVideoRAM(VideoRAMStart, VideoRAMSize)
	extIO := NewExtIOPort(ExtIOStart)
	rom := NewROM(ROMStart, ROMSize)
	rom.LoadImage(cfg.ROMImage)

	for _, region := range []bus.Addressable{ram, udc, vram, extIO, rom} {
		if err := b.Map(region); err != nil {
			return nil, fmt.Errorf("machine: %w", err)
		}
	}

	display := NewDisplay(vram, udc)
	display.LoadFont(rom.Data())
	keyboard := NewKeyboard()
	beeper := NewBeeper(cfg.SampleRate)

	core := cpu.New(b)
	via := NewVIA(VIAStart, ClockHz, keyboard, display, beeper, func(asserted bool) {
		if asserted {
			core.AssertIRQ()
		} else {
			core.ReleaseIRQ()
		}
	})
	if err := b.Map(via); err != nil {
		return nil, fmt.Errorf("machine: %w", err)
	}

	// CA1 follows the key matrix, active low.
	keyboard.SetListener(func(anyPressed bool) {
		if anyPressed {
			via.SetCA1(0)
		} else {
			via.SetCA1(1)
		}
	})
	via.SetCA1(1)

	m := &Machine{
		Bus:      b,
		CPU:      core,
		VIA:      via,
		Keyboard: keyboard,
		Display:  display,
		Beeper:   beeper,
		ExtIO:    extIO,
		ram:      ram,
		vram:     vram,
		udc:      udc,
		rom:      rom,
	}
	m.Reset()
	return m, nil
}

// Reset brings the machine to its power-on state: RAM zeroed, VIA
// cleared, CPU restarted from the ROM reset vector.
func (m *Machine) Reset() {
	m.ram.Zero()
	m.VIA.Reset()
	m.Keyboard.Reset()
	m.Beeper.Reset()
	m.Display.Invalidate()
	m.CPU.Reset()
}

// StepOne executes one instruction and advances the peripherals by the
// same cycle count.
func (m *Machine) StepOne() (int, error) {
	cycles, err := m.CPU.Step()
	if err != nil {
		return cycles, err
	}
	m.VIA.Tick(cycles)
	return cycles, nil
}

// RunFor executes instructions until the cycle budget is exhausted and
// returns the overshoot, which the caller subtracts from the next budget
// to avoid drift.
func (m *Machine) RunFor(budget int) (int, error) {
	elapsed := 0
	for elapsed < budget {
		cycles, err := m.StepOne()
		if err != nil {
			return 0, err
		}
		if cycles == 0 {
			// Halted CPU makes no progress; don't spin.
			return 0, nil
		}
		elapsed += cycles
	}
	return elapsed - budget, nil
}

// RaiseIRQ asserts the host-injected maskable interrupt line.
func (m *Machine) RaiseIRQ() { m.CPU.AssertIRQ() }

// RaiseNMI latches one non-maskable interrupt edge.
func (m *Machine) RaiseNMI() { m.CPU.RaiseNMI() }

// LoadProgram parses a PROG file and patches it into memory. On a parse
// error the machine is left untouched.
func (m *Machine) LoadProgram(path string) error {
	program, err := loader.LoadFile(path)
	if err != nil {
		return err
	}
	program.Apply(m.Bus)
	m.Program = program
	return nil
}
