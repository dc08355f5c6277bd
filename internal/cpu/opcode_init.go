package cpu

// initInstructions fills the 256-entry dispatch table. Cycle counts come
// from the MB8861 data sheet; unassigned entries stay nil and surface as
// IllegalOpcodeError at fetch time.
func (c *CPU) initInstructions() {
	set := func(opcode uint8, name string, mode addrMode, cycles int, fn opcodeFunc) {
		c.instrs[opcode] = instruction{name: name, fn: fn, mode: mode, cycles: cycles}
	}

	set(0x01, "NOP", addrModeINH, 2, c.nop)
	set(0x06, "TAP", addrModeINH, 2, c.tap)
	set(0x07, "TPA", addrModeINH, 2, c.tpa)
	set(0x08, "INX", addrModeINH, 4, c.inx)
	set(0x09, "DEX", addrModeINH, 4, c.dex)
	set(0x0A, "CLV", addrModeINH, 2, c.clv)
	set(0x0B, "SEV", addrModeINH, 2, c.sev)
	set(0x0C, "CLC", addrModeINH, 2, c.clc)
	set(0x0D, "SEC", addrModeINH, 2, c.sec)
	set(0x0E, "CLI", addrModeINH, 2, c.cli)
	set(0x0F, "SEI", addrModeINH, 2, c.sei)

	set(0x10, "SBA", addrModeINH, 2, c.sba)
	set(0x11, "CBA", addrModeINH, 2, c.cba)
	set(0x16, "TAB", addrModeINH, 2, c.tab)
	set(0x17, "TBA", addrModeINH, 2, c.tba)
	set(0x19, "DAA", addrModeINH, 2, c.daa)
	set(0x1B, "ABA", addrModeINH, 2, c.aba)

	set(0x20, "BRA", addrModeREL, 4, c.bra)
	set(0x22, "BHI", addrModeREL, 4, c.bhi)
	set(0x23, "BLS", addrModeREL, 4, c.bls)
	set(0x24, "BCC", addrModeREL, 4, c.bcc)
	set(0x25, "BCS", addrModeREL, 4, c.bcs)
	set(0x26, "BNE", addrModeREL, 4, c.bne)
	set(0x27, "BEQ", addrModeREL, 4, c.beq)
	set(0x28, "BVC", addrModeREL, 4, c.bvc)
	set(0x29, "BVS", addrModeREL, 4, c.bvs)
	set(0x2A, "BPL", addrModeREL, 4, c.bpl)
	set(0x2B, "BMI", addrModeREL, 4, c.bmi)
	set(0x2C, "BGE", addrModeREL, 4, c.bge)
	set(0x2D, "BLT", addrModeREL, 4, c.blt)
	set(0x2E, "BGT", addrModeREL, 4, c.bgt)
	set(0x2F, "BLE", addrModeREL, 4, c.ble)

	set(0x30, "TSX", addrModeINH, 4, c.tsx)
	set(0x31, "INS", addrModeINH, 4, c.ins)
	set(0x32, "PULA", addrModeINH, 5, c.pula)
	set(0x33, "PULB", addrModeINH, 5, c.pulb)
	set(0x34, "DES", addrModeINH, 4, c.des)
	set(0x35, "TXS", addrModeINH, 4, c.txs)
	set(0x36, "PSHA", addrModeINH, 4, c.psha)
	set(0x37, "PSHB", addrModeINH, 4, c.pshb)
	set(0x39, "RTS", addrModeINH, 5, c.rts)
	set(0x3B, "RTI", addrModeINH, 10, c.rti)
	set(0x3E, "WAI", addrModeINH, 9, c.wai)
	set(0x3F, "SWI", addrModeINH, 12, c.swi)

	set(0x40, "NEGA", addrModeINH, 2, c.nega)
	set(0x43, "COMA", addrModeINH, 2, c.coma)
	set(0x44, "LSRA", addrModeINH, 2, c.lsra)
	set(0x46, "RORA", addrModeINH, 2, c.rora)
	set(0x47, "ASRA", addrModeINH, 2, c.asra)
	set(0x48, "ASLA", addrModeINH, 2, c.asla)
	set(0x49, "ROLA", addrModeINH, 2, c.rola)
	set(0x4A, "DECA", addrModeINH, 2, c.deca)
	set(0x4C, "INCA", addrModeINH, 2, c.inca)
	set(0x4D, "TSTA", addrModeINH, 2, c.tsta)
	set(0x4F, "CLRA", addrModeINH, 2, c.clra)

	set(0x50, "NEGB", addrModeINH, 2, c.negb)
	set(0x53, "COMB", addrModeINH, 2, c.comb)
	set(0x54, "LSRB", addrModeINH, 2, c.lsrb)
	set(0x56, "RORB", addrModeINH, 2, c.rorb)
	set(0x57, "ASRB", addrModeINH, 2, c.asrb)
	set(0x58, "ASLB", addrModeINH, 2, c.aslb)
	set(0x59, "ROLB", addrModeINH, 2, c.rolb)
	set(0x5A, "DECB", addrModeINH, 2, c.decb)
	set(0x5C, "INCB", addrModeINH, 2, c.incb)
	set(0x5D, "TSTB", addrModeINH, 2, c.tstb)
	set(0x5F, "CLRB", addrModeINH, 2, c.clrb)

	set(0x60, "NEG", addrModeIND, 7, c.negm)
	set(0x63, "COM", addrModeIND, 7, c.comm)
	set(0x64, "LSR", addrModeIND, 7, c.lsrm)
	set(0x66, "ROR", addrModeIND, 7, c.rorm)
	set(0x67, "ASR", addrModeIND, 7, c.asrm)
	set(0x68, "ASL", addrModeIND, 7, c.aslm)
	set(0x69, "ROL", addrModeIND, 7, c.rolm)
	set(0x6A, "DEC", addrModeIND, 7, c.decm)
	set(0x6C, "INC", addrModeIND, 7, c.incm)
	set(0x6D, "TST", addrModeIND, 7, c.tstm)
	set(0x6E, "JMP", addrModeIND, 4, c.jmp)
	set(0x6F, "CLR", addrModeIND, 7, c.clrm)

	set(0x70, "NEG", addrModeEXT, 6, c.negm)
	set(0x71, "NIM", addrModeSPC, 8, c.nim)
	set(0x72, "OIM", addrModeSPC, 8, c.oim)
	set(0x73, "COM", addrModeEXT, 6, c.comm)
	set(0x74, "LSR", addrModeEXT, 6, c.lsrm)
	set(0x75, "XIM", addrModeSPC, 8, c.xim)
	set(0x76, "ROR", addrModeEXT, 6, c.rorm)
	set(0x77, "ASR", addrModeEXT, 6, c.asrm)
	set(0x78, "ASL", addrModeEXT, 6, c.aslm)
	set(0x79, "ROL", addrModeEXT, 6, c.rolm)
	set(0x7A, "DEC", addrModeEXT, 6, c.decm)
	set(0x7B, "TMM", addrModeSPC, 7, c.tmm)
	set(0x7C, "INC", addrModeEXT, 6, c.incm)
	set(0x7D, "TST", addrModeEXT, 6, c.tstm)
	set(0x7E, "JMP", addrModeEXT, 3, c.jmp)
	set(0x7F, "CLR", addrModeEXT, 6, c.clrm)

	set(0x80, "SUBA", addrModeIMM, 2, c.suba)
	set(0x81, "CMPA", addrModeIMM, 2, c.cmpa)
	set(0x82, "SBCA", addrModeIMM, 2, c.sbca)
	set(0x84, "ANDA", addrModeIMM, 2, c.anda)
	set(0x85, "BITA", addrModeIMM, 2, c.bita)
	set(0x86, "LDAA", addrModeIMM, 2, c.ldaa)
	set(0x88, "EORA", addrModeIMM, 2, c.eora)
	set(0x89, "ADCA", addrModeIMM, 2, c.adca)
	set(0x8A, "ORAA", addrModeIMM, 2, c.oraa)
	set(0x8B, "ADDA", addrModeIMM, 2, c.adda)
	set(0x8C, "CPX", addrModeIMM16, 3, c.cpx)
	set(0x8D, "BSR", addrModeREL, 8, c.bsr)
	set(0x8E, "LDS", addrModeIMM16, 3, c.lds)

	set(0x90, "SUBA", addrModeDIR, 3, c.suba)
	set(0x91, "CMPA", addrModeDIR, 3, c.cmpa)
	set(0x92, "SBCA", addrModeDIR, 3, c.sbca)
	set(0x94, "ANDA", addrModeDIR, 3, c.anda)
	set(0x95, "BITA", addrModeDIR, 3, c.bita)
	set(0x96, "LDAA", addrModeDIR, 3, c.ldaa)
	set(0x97, "STAA", addrModeDIR, 4, c.staa)
	set(0x98, "EORA", addrModeDIR, 3, c.eora)
	set(0x99, "ADCA", addrModeDIR, 3, c.adca)
	set(0x9A, "ORAA", addrModeDIR, 3, c.oraa)
	set(0x9B, "ADDA", addrModeDIR, 3, c.adda)
	set(0x9C, "CPX", addrModeDIR, 4, c.cpx)
	set(0x9E, "LDS", addrModeDIR, 4, c.lds)
	set(0x9F, "STS", addrModeDIR, 5, c.sts)

	set(0xA0, "SUBA", addrModeIND, 5, c.suba)
	set(0xA1, "CMPA", addrModeIND, 5, c.cmpa)
	set(0xA2, "SBCA", addrModeIND, 5, c.sbca)
	set(0xA4, "ANDA", addrModeIND, 5, c.anda)
	set(0xA5, "BITA", addrModeIND, 5, c.bita)
	set(0xA6, "LDAA", addrModeIND, 5, c.ldaa)
	set(0xA7, "STAA", addrModeIND, 6, c.staa)
	set(0xA8, "EORA", addrModeIND, 5, c.eora)
	set(0xA9, "ADCA", addrModeIND, 5, c.adca)
	set(0xAA, "ORAA", addrModeIND, 5, c.oraa)
	set(0xAB, "ADDA", addrModeIND, 5, c.adda)
	set(0xAC, "CPX", addrModeIND, 6, c.cpx)
	set(0xAD, "JSR", addrModeIND, 8, c.jsr)
	set(0xAE, "LDS", addrModeIND, 6, c.lds)
	set(0xAF, "STS", addrModeIND, 7, c.sts)

	set(0xB0, "SUBA", addrModeEXT, 4, c.suba)
	set(0xB1, "CMPA", addrModeEXT, 4, c.cmpa)
	set(0xB2, "SBCA", addrModeEXT, 4, c.sbca)
	set(0xB4, "ANDA", addrModeEXT, 4, c.anda)
	set(0xB5, "BITA", addrModeEXT, 4, c.bita)
	set(0xB6, "LDAA", addrModeEXT, 4, c.ldaa)
	set(0xB7, "STAA", addrModeEXT, 5, c.staa)
	set(0xB8, "EORA", addrModeEXT, 4, c.eora)
	set(0xB9, "ADCA", addrModeEXT, 4, c.adca)
	set(0xBA, "ORAA", addrModeEXT, 4, c.oraa)
	set(0xBB, "ADDA", addrModeEXT, 4, c.adda)
	set(0xBC, "CPX", addrModeEXT, 5, c.cpx)
	set(0xBD, "JSR", addrModeEXT, 9, c.jsr)
	set(0xBE, "LDS", addrModeEXT, 5, c.lds)
	set(0xBF, "STS", addrModeEXT, 6, c.sts)

	set(0xC0, "SUBB", addrModeIMM, 2, c.subb)
	set(0xC1, "CMPB", addrModeIMM, 2, c.cmpb)
	set(0xC2, "SBCB", addrModeIMM, 2, c.sbcb)
	set(0xC4, "ANDB", addrModeIMM, 2, c.andb)
	set(0xC5, "BITB", addrModeIMM, 2, c.bitb)
	set(0xC6, "LDAB", addrModeIMM, 2, c.ldab)
	set(0xC8, "EORB", addrModeIMM, 2, c.eorb)
	set(0xC9, "ADCB", addrModeIMM, 2, c.adcb)
	set(0xCA, "ORAB", addrModeIMM, 2, c.orab)
	set(0xCB, "ADDB", addrModeIMM, 2, c.addb)
	set(0xCE, "LDX", addrModeIMM16, 3, c.ldx)

	set(0xD0, "SUBB", addrModeDIR, 3, c.subb)
	set(0xD1, "CMPB", addrModeDIR, 3, c.cmpb)
	set(0xD2, "SBCB", addrModeDIR, 3, c.sbcb)
	set(0xD4, "ANDB", addrModeDIR, 3, c.andb)
	set(0xD5, "BITB", addrModeDIR, 3, c.bitb)
	set(0xD6, "LDAB", addrModeDIR, 3, c.ldab)
	set(0xD7, "STAB", addrModeDIR, 4, c.stab)
	set(0xD8, "EORB", addrModeDIR, 3, c.eorb)
	set(0xD9, "ADCB", addrModeDIR, 3, c.adcb)
	set(0xDA, "ORAB", addrModeDIR, 3, c.orab)
	set(0xDB, "ADDB", addrModeDIR, 3, c.addb)
	set(0xDE, "LDX", addrModeDIR, 4, c.ldx)
	set(0xDF, "STX", addrModeDIR, 5, c.stx)

	set(0xE0, "SUBB", addrModeIND, 5, c.subb)
	set(0xE1, "CMPB", addrModeIND, 5, c.cmpb)
	set(0xE2, "SBCB", addrModeIND, 5, c.sbcb)
	set(0xE4, "ANDB", addrModeIND, 5, c.andb)
	set(0xE5, "BITB", addrModeIND, 5, c.bitb)
	set(0xE6, "LDAB", addrModeIND, 5, c.ldab)
	set(0xE7, "STAB", addrModeIND, 6, c.stab)
	set(0xE8, "EORB", addrModeIND, 5, c.eorb)
	set(0xE9, "ADCB", addrModeIND, 5, c.adcb)
	set(0xEA, "ORAB", addrModeIND, 5, c.orab)
	set(0xEB, "ADDB", addrModeIND, 5, c.addb)
	set(0xEC, "ADX", addrModeIMM, 3, c.adxImm)
	set(0xEE, "LDX", addrModeIND, 6, c.ldx)
	set(0xEF, "STX", addrModeIND, 7, c.stx)

	set(0xF0, "SUBB", addrModeEXT, 4, c.subb)
	set(0xF1, "CMPB", addrModeEXT, 4, c.cmpb)
	set(0xF2, "SBCB", addrModeEXT, 4, c.sbcb)
	set(0xF4, "ANDB", addrModeEXT, 4, c.andb)
	set(0xF5, "BITB", addrModeEXT, 4, c.bitb)
	set(0xF6, "LDAB", addrModeEXT, 4, c.ldab)
	set(0xF7, "STAB", addrModeEXT, 5, c.stab)
	set(0xF8, "EORB", addrModeEXT, 4, c.eorb)
	set(0xF9, "ADCB", addrModeEXT, 4, c.adcb)
	set(0xFA, "ORAB", addrModeEXT, 4, c.orab)
	set(0xFB, "ADDB", addrModeEXT, 4, c.addb)
	set(0xFC, "ADX", addrModeEXT, 7, c.adxExt)
	set(0xFE, "LDX", addrModeEXT, 5, c.ldx)
	set(0xFF, "STX", addrModeEXT, 6, c.stx)
}
