package coproc

// executeOpcode runs a single decoded 6502/65C02 opcode. Unknown opcodes
// execute as one-byte NOPs whatever Compat.NMOSIllegal says; undocumented
// NMOS opcode side effects are not modelled.
func (cp *Coprocessor) executeOpcode(opcode byte) {
	switch opcode {
	case opLDAImm:
		cp.A = cp.fetchByte()
		cp.setNZ(cp.A)
	case opLDAZp:
		cp.A = cp.readByte(cp.eaZeroPage())
		cp.setNZ(cp.A)
	case opLDAZpX:
		cp.A = cp.readByte(cp.eaZeroPageX())
		cp.setNZ(cp.A)
	case opLDAAbs:
		cp.A = cp.readByte(cp.eaAbsolute())
		cp.setNZ(cp.A)
	case opLDAAbsX:
		cp.A = cp.readByte(cp.eaAbsoluteX())
		cp.setNZ(cp.A)
	case opLDAAbsY:
		cp.A = cp.readByte(cp.eaAbsoluteY())
		cp.setNZ(cp.A)
	case opLDAIndX:
		cp.A = cp.readByte(cp.eaIndexedIndirectX())
		cp.setNZ(cp.A)
	case opLDAIndY:
		cp.A = cp.readByte(cp.eaIndirectIndexedY())
		cp.setNZ(cp.A)

	case opSTAZp:
		cp.writeByte(cp.eaZeroPage(), cp.A)
	case opSTAZpX:
		cp.writeByte(cp.eaZeroPageX(), cp.A)
	case opSTAAbs:
		cp.writeByte(cp.eaAbsolute(), cp.A)
	case opSTAAbsX:
		cp.writeByte(cp.eaAbsoluteX(), cp.A)
	case opSTAAbsY:
		cp.writeByte(cp.eaAbsoluteY(), cp.A)
	case opSTAIndX:
		cp.writeByte(cp.eaIndexedIndirectX(), cp.A)
	case opSTAIndY:
		cp.writeByte(cp.eaIndirectIndexedY(), cp.A)
	case opSTZZp:
		cp.writeByte(cp.eaZeroPage(), 0)
	case opSTZAbs:
		cp.writeByte(cp.eaAbsolute(), 0)

	case opLDXImm:
		cp.X = cp.fetchByte()
		cp.setNZ(cp.X)
	case opLDXZp:
		cp.X = cp.readByte(cp.eaZeroPage())
		cp.setNZ(cp.X)
	case opLDXZpY:
		cp.X = cp.readByte(cp.eaZeroPageY())
		cp.setNZ(cp.X)
	case opLDXAbs:
		cp.X = cp.readByte(cp.eaAbsolute())
		cp.setNZ(cp.X)
	case opLDXAbsY:
		cp.X = cp.readByte(cp.eaAbsoluteY())
		cp.setNZ(cp.X)
	case opSTXZp:
		cp.writeByte(cp.eaZeroPage(), cp.X)
	case opSTXZpY:
		cp.writeByte(cp.eaZeroPageY(), cp.X)
	case opSTXAbs:
		cp.writeByte(cp.eaAbsolute(), cp.X)

	case opLDYImm:
		cp.Y = cp.fetchByte()
		cp.setNZ(cp.Y)
	case opLDYZp:
		cp.Y = cp.readByte(cp.eaZeroPage())
		cp.setNZ(cp.Y)
	case opLDYZpX:
		cp.Y = cp.readByte(cp.eaZeroPageX())
		cp.setNZ(cp.Y)
	case opLDYAbs:
		cp.Y = cp.readByte(cp.eaAbsolute())
		cp.setNZ(cp.Y)
	case opLDYAbsX:
		cp.Y = cp.readByte(cp.eaAbsoluteX())
		cp.setNZ(cp.Y)
	case opSTYZp:
		cp.writeByte(cp.eaZeroPage(), cp.Y)
	case opSTYZpX:
		cp.writeByte(cp.eaZeroPageX(), cp.Y)
	case opSTYAbs:
		cp.writeByte(cp.eaAbsolute(), cp.Y)

	case opADCImm:
		cp.adc(cp.fetchByte())
	case opADCZp:
		cp.adc(cp.readByte(cp.eaZeroPage()))
	case opADCAbs:
		cp.adc(cp.readByte(cp.eaAbsolute()))
	case opADCAbsX:
		cp.adc(cp.readByte(cp.eaAbsoluteX()))
	case opADCAbsY:
		cp.adc(cp.readByte(cp.eaAbsoluteY()))
	case opADCIndX:
		cp.adc(cp.readByte(cp.eaIndexedIndirectX()))
	case opADCIndY:
		cp.adc(cp.readByte(cp.eaIndirectIndexedY()))

	case opSBCImm:
		cp.sbc(cp.fetchByte())
	case opSBCZp:
		cp.sbc(cp.readByte(cp.eaZeroPage()))
	case opSBCAbs:
		cp.sbc(cp.readByte(cp.eaAbsolute()))
	case opSBCAbsX:
		cp.sbc(cp.readByte(cp.eaAbsoluteX()))
	case opSBCAbsY:
		cp.sbc(cp.readByte(cp.eaAbsoluteY()))
	case opSBCIndX:
		cp.sbc(cp.readByte(cp.eaIndexedIndirectX()))
	case opSBCIndY:
		cp.sbc(cp.readByte(cp.eaIndirectIndexedY()))

	case opANDImm:
		cp.and(cp.fetchByte())
	case opANDZp:
		cp.and(cp.readByte(cp.eaZeroPage()))
	case opANDAbs:
		cp.and(cp.readByte(cp.eaAbsolute()))
	case opORAImm:
		cp.ora(cp.fetchByte())
	case opORAZp:
		cp.ora(cp.readByte(cp.eaZeroPage()))
	case opORAAbs:
		cp.ora(cp.readByte(cp.eaAbsolute()))
	case opEORImm:
		cp.eor(cp.fetchByte())
	case opEORZp:
		cp.eor(cp.readByte(cp.eaZeroPage()))
	case opEORAbs:
		cp.eor(cp.readByte(cp.eaAbsolute()))

	case opBITZp:
		cp.bit(cp.readByte(cp.eaZeroPage()))
	case opBITAbs:
		cp.bit(cp.readByte(cp.eaAbsolute()))

	case opCMPImm:
		cp.cmp(cp.A, cp.fetchByte())
	case opCMPZp:
		cp.cmp(cp.A, cp.readByte(cp.eaZeroPage()))
	case opCMPAbs:
		cp.cmp(cp.A, cp.readByte(cp.eaAbsolute()))
	case opCMPAbsX:
		cp.cmp(cp.A, cp.readByte(cp.eaAbsoluteX()))
	case opCMPAbsY:
		cp.cmp(cp.A, cp.readByte(cp.eaAbsoluteY()))
	case opCPXImm:
		cp.cmp(cp.X, cp.fetchByte())
	case opCPXZp:
		cp.cmp(cp.X, cp.readByte(cp.eaZeroPage()))
	case opCPXAbs:
		cp.cmp(cp.X, cp.readByte(cp.eaAbsolute()))
	case opCPYImm:
		cp.cmp(cp.Y, cp.fetchByte())
	case opCPYZp:
		cp.cmp(cp.Y, cp.readByte(cp.eaZeroPage()))
	case opCPYAbs:
		cp.cmp(cp.Y, cp.readByte(cp.eaAbsolute()))

	case opINCZp:
		cp.rmw(cp.eaZeroPage(), func(v byte) byte { r := v + 1; cp.setNZ(r); return r })
	case opINCAbs:
		cp.rmw(cp.eaAbsolute(), func(v byte) byte { r := v + 1; cp.setNZ(r); return r })
	case opDECZp:
		cp.rmw(cp.eaZeroPage(), func(v byte) byte { r := v - 1; cp.setNZ(r); return r })
	case opDECAbs:
		cp.rmw(cp.eaAbsolute(), func(v byte) byte { r := v - 1; cp.setNZ(r); return r })
	case opINX:
		cp.X++
		cp.setNZ(cp.X)
	case opINY:
		cp.Y++
		cp.setNZ(cp.Y)
	case opDEX:
		cp.X--
		cp.setNZ(cp.X)
	case opDEY:
		cp.Y--
		cp.setNZ(cp.Y)

	case opASLA:
		cp.A = cp.asl(cp.A)
	case opASLZp:
		cp.rmw(cp.eaZeroPage(), cp.asl)
	case opASLAbs:
		cp.rmw(cp.eaAbsolute(), cp.asl)
	case opLSRA:
		cp.A = cp.lsr(cp.A)
	case opLSRZp:
		cp.rmw(cp.eaZeroPage(), cp.lsr)
	case opLSRAbs:
		cp.rmw(cp.eaAbsolute(), cp.lsr)
	case opROLA:
		cp.A = cp.rol(cp.A)
	case opROLZp:
		cp.rmw(cp.eaZeroPage(), cp.rol)
	case opROLAbs:
		cp.rmw(cp.eaAbsolute(), cp.rol)
	case opRORA:
		cp.A = cp.ror(cp.A)
	case opRORZp:
		cp.rmw(cp.eaZeroPage(), cp.ror)
	case opRORAbs:
		cp.rmw(cp.eaAbsolute(), cp.ror)

	case opBPL:
		cp.branch(!cp.testFlag(FlagN))
	case opBMI:
		cp.branch(cp.testFlag(FlagN))
	case opBVC:
		cp.branch(!cp.testFlag(FlagV))
	case opBVS:
		cp.branch(cp.testFlag(FlagV))
	case opBCC:
		cp.branch(!cp.testFlag(FlagC))
	case opBCS:
		cp.branch(cp.testFlag(FlagC))
	case opBNE:
		cp.branch(!cp.testFlag(FlagZ))
	case opBEQ:
		cp.branch(cp.testFlag(FlagZ))
	case opBRA:
		cp.branch(true)

	case opJMPAbs:
		cp.PC = cp.eaAbsolute()
	case opJMPInd:
		cp.PC = cp.eaIndirect()
	case opJSRAbs:
		target := cp.eaAbsolute()
		cp.pushWord(cp.PC - 1)
		cp.PC = target
	case opRTS:
		cp.PC = cp.pullWord() + 1
	case opRTI:
		cp.P = cp.pull() | Flag1
		cp.PC = cp.pullWord()

	case opPHA:
		cp.push(cp.A)
	case opPLA:
		cp.A = cp.pull()
		cp.setNZ(cp.A)
	case opPHP:
		cp.push(cp.P | Flag1 | FlagB)
	case opPLP:
		cp.P = cp.pull() | Flag1
	case opPHX:
		cp.push(cp.X)
	case opPLX:
		cp.X = cp.pull()
		cp.setNZ(cp.X)
	case opPHY:
		cp.push(cp.Y)
	case opPLY:
		cp.Y = cp.pull()
		cp.setNZ(cp.Y)

	case opTAX:
		cp.X = cp.A
		cp.setNZ(cp.X)
	case opTXA:
		cp.A = cp.X
		cp.setNZ(cp.A)
	case opTAY:
		cp.Y = cp.A
		cp.setNZ(cp.Y)
	case opTYA:
		cp.A = cp.Y
		cp.setNZ(cp.A)
	case opTXS:
		cp.S = cp.X
	case opTSX:
		cp.X = cp.S
		cp.setNZ(cp.X)

	case opCLC:
		cp.setFlag(FlagC, false)
	case opSEC:
		cp.setFlag(FlagC, true)
	case opCLD:
		cp.setFlag(FlagD, false)
	case opSED:
		cp.setFlag(FlagD, true)
	case opCLI:
		cp.setFlag(FlagI, false)
	case opSEI:
		cp.setFlag(FlagI, true)
	case opCLV:
		cp.setFlag(FlagV, false)

	case opNOP:
	case opBRK:
		cp.PC++ // BRK's signature byte is skipped on return, per the 6502 convention
		cp.serviceInterrupt(VecIRQ, true)

	default:
		// Treat every remaining byte as an implied-mode NOP: undocumented
		// NMOS opcodes are not part of the ISA-visible contract this
		// coprocessor exposes.
	}
}

// rmw reads addr, applies fn, and writes the result back.
func (cp *Coprocessor) rmw(addr uint16, fn func(byte) byte) {
	v := cp.readByte(addr)
	cp.writeByte(addr, fn(v))
}

func (cp *Coprocessor) branch(cond bool) {
	target := cp.relTarget()
	if cond {
		cp.PC = target
	}
}
