package cpu

// Load Accumulator
// A (or B) <- M
//
// Flags affected: N, Z; V cleared
func (c *CPU) ldaa() {
	c.regA = c.operand8()
	c.setNZ8(c.regA)
	c.setFlag(flagVBit, false)
}

func (c *CPU) ldab() {
	c.regB = c.operand8()
	c.setNZ8(c.regB)
	c.setFlag(flagVBit, false)
}

// Store Accumulator
// M <- A (or B)
//
// Flags affected: N, Z; V cleared
func (c *CPU) staa() {
	c.setNZ8(c.regA)
	c.setFlag(flagVBit, false)
	c.bus.Write8(c.operandAddr, c.regA)
}

func (c *CPU) stab() {
	c.setNZ8(c.regB)
	c.setFlag(flagVBit, false)
	c.bus.Write8(c.operandAddr, c.regB)
}

// Load Index Register / Stack Pointer (16-bit, big-endian)
//
// Flags affected: N (bit 15), Z; V cleared
func (c *CPU) ldx() {
	c.ix = c.operand16()
	c.setNZ16(c.ix)
	c.setFlag(flagVBit, false)
}

func (c *CPU) lds() {
	c.sp = c.operand16()
	c.setNZ16(c.sp)
	c.setFlag(flagVBit, false)
}

// Store Index Register / Stack Pointer
func (c *CPU) stx() {
	c.setNZ16(c.ix)
	c.setFlag(flagVBit, false)
	c.bus.Write16(c.operandAddr, c.ix)
}

func (c *CPU) sts() {
	c.setNZ16(c.sp)
	c.setFlag(flagVBit, false)
	c.bus.Write16(c.operandAddr, c.sp)
}

// Add
// A = A + M (+ C for ADC)
//
// Flags affected: H, N, Z, V, C
func (c *CPU) adda() { c.regA = c.add8(c.regA, c.operand8(), false) }
func (c *CPU) addb() { c.regB = c.add8(c.regB, c.operand8(), false) }
func (c *CPU) adca() { c.regA = c.add8(c.regA, c.operand8(), c.getFlag(flagCBit)) }
func (c *CPU) adcb() { c.regB = c.add8(c.regB, c.operand8(), c.getFlag(flagCBit)) }

// Subtract
// A = A - M (- C for SBC)
//
// Flags affected: H, N, Z, V, C
func (c *CPU) suba() { c.regA = c.sub8(c.regA, c.operand8(), false) }
func (c *CPU) subb() { c.regB = c.sub8(c.regB, c.operand8(), false) }
func (c *CPU) sbca() { c.regA = c.sub8(c.regA, c.operand8(), c.getFlag(flagCBit)) }
func (c *CPU) sbcb() { c.regB = c.sub8(c.regB, c.operand8(), c.getFlag(flagCBit)) }

// Accumulator-to-accumulator arithmetic
func (c *CPU) aba() { c.regA = c.add8(c.regA, c.regB, false) }
func (c *CPU) sba() { c.regA = c.sub8(c.regA, c.regB, false) }
func (c *CPU) cba() { c.sub8(c.regA, c.regB, false) }

// Compare
// A - M, result discarded
//
// Flags affected: H, N, Z, V, C
func (c *CPU) cmpa() { c.sub8(c.regA, c.operand8(), false) }
func (c *CPU) cmpb() { c.sub8(c.regB, c.operand8(), false) }

// Decimal Adjust A after a BCD addition
func (c *CPU) daa() { c.regA = c.daa8(c.regA) }

// Logical AND / OR / XOR
//
// Flags affected: N, Z; V cleared
func (c *CPU) anda() {
	c.regA &= c.operand8()
	c.setNZ8(c.regA)
	c.setFlag(flagVBit, false)
}

func (c *CPU) andb() {
	c.regB &= c.operand8()
	c.setNZ8(c.regB)
	c.setFlag(flagVBit, false)
}

func (c *CPU) oraa() {
	c.regA |= c.operand8()
	c.setNZ8(c.regA)
	c.setFlag(flagVBit, false)
}

func (c *CPU) orab() {
	c.regB |= c.operand8()
	c.setNZ8(c.regB)
	c.setFlag(flagVBit, false)
}

func (c *CPU) eora() {
	c.regA ^= c.operand8()
	c.setNZ8(c.regA)
	c.setFlag(flagVBit, false)
}

func (c *CPU) eorb() {
	c.regB ^= c.operand8()
	c.setNZ8(c.regB)
	c.setFlag(flagVBit, false)
}

// Bit Test
// A & M, result discarded
func (c *CPU) bita() {
	r := c.regA & c.operand8()
	c.setNZ8(r)
	c.setFlag(flagVBit, false)
}

func (c *CPU) bitb() {
	r := c.regB & c.operand8()
	c.setNZ8(r)
	c.setFlag(flagVBit, false)
}

// Read-modify-write group, accumulator forms.
func (c *CPU) nega() { c.regA = c.neg8(c.regA) }
func (c *CPU) negb() { c.regB = c.neg8(c.regB) }
func (c *CPU) coma() { c.regA = c.com8(c.regA) }
func (c *CPU) comb() { c.regB = c.com8(c.regB) }
func (c *CPU) clra() { c.regA = c.clr8() }
func (c *CPU) clrb() { c.regB = c.clr8() }
func (c *CPU) inca() { c.regA = c.inc8(c.regA) }
func (c *CPU) incb() { c.regB = c.inc8(c.regB) }
func (c *CPU) deca() { c.regA = c.dec8(c.regA) }
func (c *CPU) decb() { c.regB = c.dec8(c.regB) }
func (c *CPU) tsta() { c.tst8(c.regA) }
func (c *CPU) tstb() { c.tst8(c.regB) }
func (c *CPU) lsra() { c.regA = c.lsr8(c.regA) }
func (c *CPU) lsrb() { c.regB = c.lsr8(c.regB) }
func (c *CPU) asra() { c.regA = c.asr8(c.regA) }
func (c *CPU) asrb() { c.regB = c.asr8(c.regB) }
func (c *CPU) asla() { c.regA = c.asl8(c.regA) }
func (c *CPU) aslb() { c.regB = c.asl8(c.regB) }
func (c *CPU) rola() { c.regA = c.rol8(c.regA) }
func (c *CPU) rolb() { c.regB = c.rol8(c.regB) }
func (c *CPU) rora() { c.regA = c.ror8(c.regA) }
func (c *CPU) rorb() { c.regB = c.ror8(c.regB) }

// Read-modify-write group, memory forms.
func (c *CPU) modifyMem(op func(uint8) uint8) {
	c.bus.Write8(c.operandAddr, op(c.operand8()))
}

func (c *CPU) negm() { c.modifyMem(c.neg8) }
func (c *CPU) comm() { c.modifyMem(c.com8) }
func (c *CPU) clrm() { c.bus.Write8(c.operandAddr, c.clr8()) }
func (c *CPU) incm() { c.modifyMem(c.inc8) }
func (c *CPU) decm() { c.modifyMem(c.dec8) }
func (c *CPU) tstm() { c.tst8(c.operand8()) }
func (c *CPU) lsrm() { c.modifyMem(c.lsr8) }
func (c *CPU) asrm() { c.modifyMem(c.asr8) }
func (c *CPU) aslm() { c.modifyMem(c.asl8) }
func (c *CPU) rolm() { c.modifyMem(c.rol8) }
func (c *CPU) rorm() { c.modifyMem(c.ror8) }

// MB8861 extensions: immediate mask against an indexed memory cell.
// Operand order on the wire is mask first, then the IX offset.
func (c *CPU) indexedMaskAddr() (uint8, uint16) {
	mask := c.fetch8()
	offset := c.fetch8()
	return mask, c.ix + uint16(offset)
}

// AND Immediate with Memory
func (c *CPU) nim() {
	mask, addr := c.indexedMaskAddr()
	c.bus.Write8(addr, c.maskFlags(mask&c.bus.Read8(addr)))
}

// OR Immediate with Memory
func (c *CPU) oim() {
	mask, addr := c.indexedMaskAddr()
	c.bus.Write8(addr, c.maskFlags(mask|c.bus.Read8(addr)))
}

// XOR Immediate with Memory
func (c *CPU) xim() {
	mask, addr := c.indexedMaskAddr()
	c.bus.Write8(addr, c.maskFlags(mask^c.bus.Read8(addr)))
}

// Test Immediate with Memory
func (c *CPU) tmm() {
	mask, addr := c.indexedMaskAddr()
	c.tmm8(mask, c.bus.Read8(addr))
}

// Index register group
func (c *CPU) inx() {
	c.ix++
	c.setFlag(flagZBit, c.ix == 0)
}

func (c *CPU) dex() {
	c.ix--
	c.setFlag(flagZBit, c.ix == 0)
}

func (c *CPU) ins() { c.sp++ }
func (c *CPU) des() { c.sp-- }

// Compare Index Register
// IX - M, result discarded
//
// Flags affected: N, Z, V, C
func (c *CPU) cpx() {
	m := c.operand16()
	r := c.ix - m
	c.setNZ16(r)
	c.setFlag(flagVBit, ((c.ix^m)&(c.ix^r))&0x8000 != 0)
	c.setFlag(flagCBit, c.ix < m)
}

// Add to Index Register (MB8861 extension)
// IX = IX + M
func (c *CPU) adxImm() { c.ix = c.add16(c.ix, uint16(c.operand8())) }
func (c *CPU) adxExt() { c.ix = c.add16(c.ix, c.operand16()) }

// Transfers. TXS and TSX carry the off-by-one of the hardware: SP points
// at the next free slot, IX at the top stacked byte.
func (c *CPU) txs() { c.sp = c.ix - 1 }
func (c *CPU) tsx() { c.ix = c.sp + 1 }

func (c *CPU) tab() {
	c.regB = c.regA
	c.setNZ8(c.regB)
	c.setFlag(flagVBit, false)
}

func (c *CPU) tba() {
	c.regA = c.regB
	c.setNZ8(c.regA)
	c.setFlag(flagVBit, false)
}

// Transfer A to/from the condition codes.
func (c *CPU) tap() { c.cc = c.regA }
func (c *CPU) tpa() { c.regA = c.cc | ccUnusedBits }

// Stack group
func (c *CPU) psha() { c.stackPush8(c.regA) }
func (c *CPU) pshb() { c.stackPush8(c.regB) }
func (c *CPU) pula() { c.regA = c.stackPop8() }
func (c *CPU) pulb() { c.regB = c.stackPop8() }

// Branches. The MB8861 charges the same cycle count whether or not the
// branch is taken.
func (c *CPU) bra() { c.branch(true) }
func (c *CPU) bcc() { c.branch(!c.getFlag(flagCBit)) }
func (c *CPU) bcs() { c.branch(c.getFlag(flagCBit)) }
func (c *CPU) bne() { c.branch(!c.getFlag(flagZBit)) }
func (c *CPU) beq() { c.branch(c.getFlag(flagZBit)) }
func (c *CPU) bpl() { c.branch(!c.getFlag(flagNBit)) }
func (c *CPU) bmi() { c.branch(c.getFlag(flagNBit)) }
func (c *CPU) bvc() { c.branch(!c.getFlag(flagVBit)) }
func (c *CPU) bvs() { c.branch(c.getFlag(flagVBit)) }

// Branch if Higher: C and Z both clear (unsigned >)
func (c *CPU) bhi() { c.branch(!c.getFlag(flagCBit) && !c.getFlag(flagZBit)) }

// Branch if Lower or Same: C or Z set (unsigned <=)
func (c *CPU) bls() { c.branch(c.getFlag(flagCBit) || c.getFlag(flagZBit)) }

// Signed comparisons work off N xor V.
func (c *CPU) bge() { c.branch(c.getFlag(flagNBit) == c.getFlag(flagVBit)) }
func (c *CPU) blt() { c.branch(c.getFlag(flagNBit) != c.getFlag(flagVBit)) }
func (c *CPU) bgt() {
	c.branch(!c.getFlag(flagZBit) && c.getFlag(flagNBit) == c.getFlag(flagVBit))
}
func (c *CPU) ble() {
	c.branch(c.getFlag(flagZBit) || c.getFlag(flagNBit) != c.getFlag(flagVBit))
}

// Branch to Subroutine
func (c *CPU) bsr() {
	c.stackPush16(c.pc)
	c.branch(true)
}

// Jump / Jump to Subroutine
func (c *CPU) jmp() { c.pc = c.operandAddr }

func (c *CPU) jsr() {
	c.stackPush16(c.pc)
	c.pc = c.operandAddr
}

// Return from Subroutine
func (c *CPU) rts() { c.pc = c.stackPop16() }

// Return from Interrupt
// Restores the full register frame and clears the WAI latch.
func (c *CPU) rti() {
	c.pullAllRegisters()
	c.waiting = false
}

// Wait for Interrupt
// Stacks the register frame now and idles; the eventual interrupt only
// pays for its vector fetch.
func (c *CPU) wai() {
	c.pushAllRegisters()
	c.waiting = true
}

// Software Interrupt
func (c *CPU) swi() {
	c.pushAllRegisters()
	c.setFlag(flagIBit, true)
	c.pc = c.bus.Read16(VecSWI)
}

// Condition-code set/clear group
func (c *CPU) clc() { c.setFlag(flagCBit, false) }
func (c *CPU) sec() { c.setFlag(flagCBit, true) }
func (c *CPU) cli() { c.setFlag(flagIBit, false) }
func (c *CPU) sei() { c.setFlag(flagIBit, true) }
func (c *CPU) clv() { c.setFlag(flagVBit, false) }
func (c *CPU) sev() { c.setFlag(flagVBit, true) }

// No Operation
func (c *CPU) nop() {}
