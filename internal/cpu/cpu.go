package cpu

import "fmt"

// ReadWriter is the bus the CPU fetches and stores through.
type ReadWriter interface {
	Read8(addr uint16) uint8
	Read16(addr uint16) uint16
	Write8(addr uint16, data uint8)
	Write16(addr uint16, data uint16)
}

// Interrupt and reset vectors of the MB8861.
const (
	VecIRQ   = 0xFFF8
	VecSWI   = 0xFFFA
	VecNMI   = 0xFFFC
	VecReset = 0xFFFE
)

// Condition-code register bits. The two high bits are unused by the
// hardware and always read back as 1.
const (
	flagCBit = uint8(1 << 0) // Carry / borrow
	flagVBit = uint8(1 << 1) // Two's-complement overflow
	flagZBit = uint8(1 << 2) // Zero
	flagNBit = uint8(1 << 3) // Negative
	flagIBit = uint8(1 << 4) // Interrupt mask
	flagHBit = uint8(1 << 5) // Half carry (bit 3 to bit 4)

	ccUnusedBits = uint8(0xC0)
)

const (
	resetSP = 0x01FF // top of page 1

	// Cycle cost of stacking the register frame and fetching a vector.
	interruptEntryCycles = 12
	// Cycle cost of leaving WAI: the frame is already stacked, only the
	// vector fetch is charged.
	waiResumeCycles = 4
	// WAI burns cycles without fetching while no interrupt is pending.
	waiIdleCycles = 1
)

type addrMode uint8

const (
	// Inherent
	// No operand bytes. Example: INX
	addrModeINH addrMode = iota + 1

	// Immediate (8-bit)
	// Operand is the byte following the opcode. Example: LDAA #$5A
	addrModeIMM

	// Immediate (16-bit, big-endian)
	// Example: LDX #$1234
	addrModeIMM16

	// Direct
	// One-byte zero-page address. Example: STAA $40
	addrModeDIR

	// Indexed
	// Unsigned 8-bit offset added to IX, wrapping modulo $10000.
	// Example: LDAA $10,X
	addrModeIND

	// Extended
	// Full 16-bit big-endian address. Example: JMP $E000
	addrModeEXT

	// Relative
	// Signed 8-bit displacement from the PC after the operand fetch.
	// Example: BNE -3
	addrModeREL

	// Special
	// The handler fetches its own operands (NIM/OIM/XIM/TMM take an
	// immediate mask plus an indexed offset).
	addrModeSPC
)

type opcodeFunc func()

type instruction struct {
	name   string
	fn     opcodeFunc
	mode   addrMode
	cycles int
}

// IllegalOpcodeError reports a fetch of an unassigned opcode. It is fatal
// to the emulation run; the machine surfaces it out of RunFor.
type IllegalOpcodeError struct {
	PC     uint16
	Opcode uint8
}

func (e IllegalOpcodeError) Error() string {
	return fmt.Sprintf("illegal opcode %#02x at %#04x", e.Opcode, e.PC)
}

// CPU emulates the MB8861, the 6800-family processor of the JR-100.
type CPU struct {
	regA uint8  // accumulator A
	regB uint8  // accumulator B
	ix   uint16 // index register
	sp   uint16 // stack pointer
	pc   uint16 // program counter
	cc   uint8  // condition codes (H I N Z V C)

	bus    ReadWriter
	instrs [0x100]instruction

	waiting    bool // WAI latch: frame stacked, idle until an interrupt
	halted     bool // external halt request
	irqLine    bool // level, driven by the VIA composite IRQ output
	nmiPending bool // edge, latched by RaiseNMI

	cycleCount uint64

	// Per-instruction decode state, valid between fetchOperand and the
	// handler invocation.
	operandAddr uint16
	relOffset   int8
}

func New(rw ReadWriter) *CPU {
	c := &CPU{
		sp:  resetSP,
		bus: rw,
	}
	c.initInstructions()
	return c
}

// Reset loads the restart vector and re-arms the register file. The
// interrupt mask comes up set so the ROM can install its handlers first.
func (c *CPU) Reset() {
	c.regA = 0
	c.regB = 0
	c.ix = 0
	c.sp = resetSP
	c.cc = flagIBit
	c.waiting = false
	c.halted = false
	c.irqLine = false
	c.nmiPending = false
	c.cycleCount = 0
	c.pc = c.bus.Read16(VecReset)
}

// Step services any pending interrupt, then executes one instruction, and
// returns the cycles consumed by both. Inside WAI a step executes no
// instruction: it either idles or vectors to the pending interrupt.
func (c *CPU) Step() (int, error) {
	if c.halted {
		return 0, nil
	}

	if c.waiting {
		switch {
		case c.nmiPending:
			c.nmiPending = false
			c.waiting = false
			c.pc = c.bus.Read16(VecNMI)
			c.cycleCount += waiResumeCycles
			return waiResumeCycles, nil
		case c.irqLine && !c.getFlag(flagIBit):
			c.waiting = false
			c.setFlag(flagIBit, true)
			c.pc = c.bus.Read16(VecIRQ)
			c.cycleCount += waiResumeCycles
			return waiResumeCycles, nil
		default:
			c.cycleCount += waiIdleCycles
			return waiIdleCycles, nil
		}
	}

	interruptCycles := 0
	if c.nmiPending {
		c.nmiPending = false
		interruptCycles = c.serviceInterrupt(VecNMI, false)
	} else if c.irqLine && !c.getFlag(flagIBit) {
		interruptCycles = c.serviceInterrupt(VecIRQ, true)
	}

	opcodePC := c.pc
	opcode := c.fetch8()
	instr := c.instrs[opcode]
	if instr.fn == nil {
		return interruptCycles, IllegalOpcodeError{PC: opcodePC, Opcode: opcode}
	}
	c.fetchOperand(instr.mode)
	instr.fn()

	total := interruptCycles + instr.cycles
	c.cycleCount += uint64(total)
	return total, nil
}

// AssertIRQ drives the level-triggered IRQ input. The CPU samples it
// before each fetch; the caller holds the line until its flag source is
// cleared.
func (c *CPU) AssertIRQ() { c.irqLine = true }

// ReleaseIRQ releases the IRQ level.
func (c *CPU) ReleaseIRQ() { c.irqLine = false }

// RaiseNMI latches one non-maskable interrupt edge.
func (c *CPU) RaiseNMI() { c.nmiPending = true }

// SetHalted freezes or resumes the CPU without touching its state.
func (c *CPU) SetHalted(halted bool) { c.halted = halted }

// Waiting reports whether the CPU is idling inside WAI.
func (c *CPU) Waiting() bool { return c.waiting }

// CycleCount returns the cycles consumed since the last reset.
func (c *CPU) CycleCount() uint64 { return c.cycleCount }

// PC returns the current program counter.
func (c *CPU) PC() uint16 { return c.pc }

func (c *CPU) serviceInterrupt(vector uint16, maskable bool) int {
	c.pushAllRegisters()
	if maskable {
		c.setFlag(flagIBit, true)
	}
	c.pc = c.bus.Read16(vector)
	return interruptEntryCycles
}

// fetchOperand resolves the addressing mode into operandAddr (or
// relOffset). Operand values are read lazily by the handlers so that
// store instructions never trigger read side effects on the VIA window.
func (c *CPU) fetchOperand(mode addrMode) {
	switch mode {
	case addrModeIMM:
		c.operandAddr = c.pc
		c.pc++
	case addrModeIMM16:
		c.operandAddr = c.pc
		c.pc += 2
	case addrModeDIR:
		c.operandAddr = uint16(c.fetch8())
	case addrModeIND:
		c.operandAddr = c.ix + uint16(c.fetch8())
	case addrModeEXT:
		c.operandAddr = c.fetch16()
	case addrModeREL:
		c.relOffset = int8(c.fetch8())
	case addrModeINH, addrModeSPC:
	}
}

func (c *CPU) fetch8() uint8 {
	v := c.bus.Read8(c.pc)
	c.pc++
	return v
}

func (c *CPU) fetch16() uint16 {
	hi := uint16(c.fetch8())
	lo := uint16(c.fetch8())
	return hi<<8 | lo
}

func (c *CPU) operand8() uint8 {
	return c.bus.Read8(c.operandAddr)
}

func (c *CPU) operand16() uint16 {
	return c.bus.Read16(c.operandAddr)
}

func (c *CPU) branch(taken bool) {
	if taken {
		c.pc += uint16(int16(c.relOffset))
	}
}

func (c CPU) getFlag(flag uint8) bool {
	return c.cc&flag > 0
}

func (c *CPU) setFlag(flag uint8, v bool) {
	if v {
		c.cc |= flag
		return
	}
	c.cc &= ^flag
}

func (c *CPU) stackPush8(data uint8) {
	c.bus.Write8(c.sp, data)
	c.sp--
}

func (c *CPU) stackPop8() uint8 {
	c.sp++
	return c.bus.Read8(c.sp)
}

func (c *CPU) stackPush16(data uint16) {
	c.stackPush8(uint8(data))
	c.stackPush8(uint8(data >> 8))
}

func (c *CPU) stackPop16() uint16 {
	hi := uint16(c.stackPop8())
	lo := uint16(c.stackPop8())
	return hi<<8 | lo
}

// pushAllRegisters stacks the full frame in interrupt order: PC low, PC
// high, IX low, IX high, A, B, CC.
func (c *CPU) pushAllRegisters() {
	c.stackPush8(uint8(c.pc))
	c.stackPush8(uint8(c.pc >> 8))
	c.stackPush8(uint8(c.ix))
	c.stackPush8(uint8(c.ix >> 8))
	c.stackPush8(c.regA)
	c.stackPush8(c.regB)
	c.stackPush8(c.cc | ccUnusedBits)
}

func (c *CPU) pullAllRegisters() {
	c.cc = c.stackPop8()
	c.regB = c.stackPop8()
	c.regA = c.stackPop8()
	c.ix = c.stackPop16()
	c.pc = c.stackPop16()
}
