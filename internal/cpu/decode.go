package cpu

// execute decodes and runs a single base (non-prefixed) opcode. It returns
// false if the instruction failed mid-flight (MMU fault, alignment trap,
// etc.). Step does not read this result: it skips the cycle counter
// whenever the instruction left a trap in c.Trap.
func (c *CPU) execute(opcode byte) bool {
	switch opcode {
	case opExtPrefix:
		return c.executeExt02()

	// Load/store.
	case opLDAImm:
		return c.immToReg(&c.A, c.MWidth())
	case opLDADP:
		return c.loadViaEA(c.eaDirectPage, &c.A, c.MWidth())
	case opLDADPX:
		return c.loadViaEA(c.eaDirectPageX, &c.A, c.MWidth())
	case opLDAAbs:
		return c.loadViaEA(c.eaAbsolute, &c.A, c.MWidth())
	case opLDAAbsX:
		return c.loadViaEA(func() (effAddr, bool) { return c.eaAbsoluteIndexed(c.X) }, &c.A, c.MWidth())
	case opLDAAbsY:
		return c.loadViaEA(func() (effAddr, bool) { return c.eaAbsoluteIndexed(c.Y) }, &c.A, c.MWidth())
	case opLDAIndX:
		return c.loadViaEA(c.eaDPIndexedIndirectX, &c.A, c.MWidth())
	case opLDAIndY:
		return c.loadViaEA(c.eaDPIndirectIndexedY, &c.A, c.MWidth())
	case opLDALong:
		return c.loadViaEA(c.eaLong, &c.A, c.MWidth())
	case opLDALngX:
		return c.loadViaEA(c.eaLongX, &c.A, c.MWidth())
	case opLDALongAlt:
		return c.loadViaEA(c.eaLong, &c.A, c.MWidth())
	case opLDADPIndLngY:
		return c.loadViaEA(c.eaDPIndirectLongY, &c.A, c.MWidth())

	case opSTADP:
		return c.storeViaEA(c.eaDirectPage, c.A, c.MWidth())
	case opSTADPX:
		return c.storeViaEA(c.eaDirectPageX, c.A, c.MWidth())
	case opSTAAbs:
		return c.storeViaEA(c.eaAbsolute, c.A, c.MWidth())
	case opSTAAbsX:
		return c.storeViaEA(func() (effAddr, bool) { return c.eaAbsoluteIndexed(c.X) }, c.A, c.MWidth())
	case opSTAAbsY:
		return c.storeViaEA(func() (effAddr, bool) { return c.eaAbsoluteIndexed(c.Y) }, c.A, c.MWidth())
	case opSTAIndX:
		return c.storeViaEA(c.eaDPIndexedIndirectX, c.A, c.MWidth())
	case opSTAIndY:
		return c.storeViaEA(c.eaDPIndirectIndexedY, c.A, c.MWidth())
	case opSTALong:
		return c.storeViaEA(c.eaLong, c.A, c.MWidth())
	case opSTALngX:
		return c.storeViaEA(c.eaLongX, c.A, c.MWidth())
	case opSTZDP:
		return c.storeViaEA(c.eaDirectPage, 0, c.MWidth())
	case opSTZAbs:
		return c.storeViaEA(c.eaAbsolute, 0, c.MWidth())

	case opLDXImm:
		return c.immToReg(&c.X, c.XWidth())
	case opLDXDP:
		return c.loadViaEA(c.eaDirectPage, &c.X, c.XWidth())
	case opLDXDPY:
		return c.loadViaEA(c.eaDirectPageY, &c.X, c.XWidth())
	case opLDXAbs:
		return c.loadViaEA(c.eaAbsolute, &c.X, c.XWidth())
	case opLDXAbY:
		return c.loadViaEA(func() (effAddr, bool) { return c.eaAbsoluteIndexed(c.Y) }, &c.X, c.XWidth())

	case opSTXDP:
		return c.storeViaEA(c.eaDirectPage, c.X, c.XWidth())
	case opSTXDPY:
		return c.storeViaEA(c.eaDirectPageY, c.X, c.XWidth())
	case opSTXAbs:
		return c.storeViaEA(c.eaAbsolute, c.X, c.XWidth())

	case opLDYImm:
		return c.immToReg(&c.Y, c.XWidth())
	case opLDYDP:
		return c.loadViaEA(c.eaDirectPage, &c.Y, c.XWidth())
	case opLDYDPX:
		return c.loadViaEA(c.eaDirectPageX, &c.Y, c.XWidth())
	case opLDYAbs:
		return c.loadViaEA(c.eaAbsolute, &c.Y, c.XWidth())
	case opLDYAbX:
		return c.loadViaEA(func() (effAddr, bool) { return c.eaAbsoluteIndexed(c.X) }, &c.Y, c.XWidth())

	case opSTYDP:
		return c.storeViaEA(c.eaDirectPage, c.Y, c.XWidth())
	case opSTYDPX:
		return c.storeViaEA(c.eaDirectPageX, c.Y, c.XWidth())
	case opSTYAbs:
		return c.storeViaEA(c.eaAbsolute, c.Y, c.XWidth())

	case opMVN:
		return c.blockMove(1)
	case opMVP:
		return c.blockMove(-1)

	// Arithmetic/logic.
	case opADCImm:
		return c.immArith(c.adc)
	case opADCDP:
		return c.memArith(c.eaDirectPage, c.adc)
	case opADCDPX:
		return c.memArith(c.eaDirectPageX, c.adc)
	case opADCAbs:
		return c.memArith(c.eaAbsolute, c.adc)
	case opADCAbsX:
		return c.memArith(func() (effAddr, bool) { return c.eaAbsoluteIndexed(c.X) }, c.adc)
	case opADCAbsY:
		return c.memArith(func() (effAddr, bool) { return c.eaAbsoluteIndexed(c.Y) }, c.adc)
	case opADCIndX:
		return c.memArith(c.eaDPIndexedIndirectX, c.adc)
	case opADCIndY:
		return c.memArith(c.eaDPIndirectIndexedY, c.adc)

	case opSBCImm:
		return c.immArith(c.sbc)
	case opSBCDP:
		return c.memArith(c.eaDirectPage, c.sbc)
	case opSBCDPX:
		return c.memArith(c.eaDirectPageX, c.sbc)
	case opSBCAbs:
		return c.memArith(c.eaAbsolute, c.sbc)
	case opSBCAbsX:
		return c.memArith(func() (effAddr, bool) { return c.eaAbsoluteIndexed(c.X) }, c.sbc)
	case opSBCAbsY:
		return c.memArith(func() (effAddr, bool) { return c.eaAbsoluteIndexed(c.Y) }, c.sbc)
	case opSBCIndX:
		return c.memArith(c.eaDPIndexedIndirectX, c.sbc)
	case opSBCIndY:
		return c.memArith(c.eaDPIndirectIndexedY, c.sbc)

	case opANDImm:
		return c.immArith(c.logicAnd)
	case opANDDP:
		return c.memArith(c.eaDirectPage, c.logicAnd)
	case opANDAbs:
		return c.memArith(c.eaAbsolute, c.logicAnd)
	case opORAImm:
		return c.immArith(c.logicOr)
	case opORADP:
		return c.memArith(c.eaDirectPage, c.logicOr)
	case opORAAbs:
		return c.memArith(c.eaAbsolute, c.logicOr)
	case opEORImm:
		return c.immArith(c.logicXor)
	case opEORDP:
		return c.memArith(c.eaDirectPage, c.logicXor)
	case opEORAbs:
		return c.memArith(c.eaAbsolute, c.logicXor)

	case opBITImm:
		v, ok := c.fetchImmediate(c.MWidth())
		if !ok {
			return false
		}
		r := c.A & v
		c.SetFlag(FlagZ, (r&widthMax(c.MWidth()))== 0)
		return true
	case opBITDP:
		return c.testMem(c.eaDirectPage)
	case opBITAbs:
		return c.testMem(c.eaAbsolute)

	case opCMPImm:
		v, ok := c.fetchImmediate(c.MWidth())
		if !ok {
			return false
		}
		c.compare(c.A, v, c.MWidth())
		return true
	case opCMPDP:
		return c.memCompare(c.eaDirectPage, c.A, c.MWidth())
	case opCMPAbs:
		return c.memCompare(c.eaAbsolute, c.A, c.MWidth())
	case opCMPAbsX:
		return c.memCompare(func() (effAddr, bool) { return c.eaAbsoluteIndexed(c.X) }, c.A, c.MWidth())
	case opCMPAbsY:
		return c.memCompare(func() (effAddr, bool) { return c.eaAbsoluteIndexed(c.Y) }, c.A, c.MWidth())
	case opCPXImm:
		v, ok := c.fetchImmediate(c.XWidth())
		if !ok {
			return false
		}
		c.compare(c.X, v, c.XWidth())
		return true
	case opCPXDP:
		return c.memCompare(c.eaDirectPage, c.X, c.XWidth())
	case opCPXAbs:
		return c.memCompare(c.eaAbsolute, c.X, c.XWidth())
	case opCPYImm:
		v, ok := c.fetchImmediate(c.XWidth())
		if !ok {
			return false
		}
		c.compare(c.Y, v, c.XWidth())
		return true
	case opCPYDP:
		return c.memCompare(c.eaDirectPage, c.Y, c.XWidth())
	case opCPYAbs:
		return c.memCompare(c.eaAbsolute, c.Y, c.XWidth())

	// Increment/decrement/shift.
	case opINCA:
		c.A = c.incDec(c.A, 1, c.MWidth())
		return true
	case opDECA:
		c.A = c.incDec(c.A, -1, c.MWidth())
		return true
	case opINCDP:
		return c.rmw(c.eaDirectPage, c.MWidth(), func(v uint32, w int) uint32 { return c.incDec(v, 1, w) })
	case opINCAbs:
		return c.rmw(c.eaAbsolute, c.MWidth(), func(v uint32, w int) uint32 { return c.incDec(v, 1, w) })
	case opDECDP:
		return c.rmw(c.eaDirectPage, c.MWidth(), func(v uint32, w int) uint32 { return c.incDec(v, -1, w) })
	case opDECAbs:
		return c.rmw(c.eaAbsolute, c.MWidth(), func(v uint32, w int) uint32 { return c.incDec(v, -1, w) })
	case opINX:
		c.X = c.incDec(c.X, 1, c.XWidth())
		return true
	case opINY:
		c.Y = c.incDec(c.Y, 1, c.XWidth())
		return true
	case opDEX:
		c.X = c.incDec(c.X, -1, c.XWidth())
		return true
	case opDEY:
		c.Y = c.incDec(c.Y, -1, c.XWidth())
		return true

	case opASLA:
		c.A = c.asl(c.A, c.MWidth())
		return true
	case opASLDP:
		return c.rmw(c.eaDirectPage, c.MWidth(), c.asl)
	case opASLAbs:
		return c.rmw(c.eaAbsolute, c.MWidth(), c.asl)
	case opLSRA:
		c.A = c.lsr(c.A, c.MWidth())
		return true
	case opLSRDP:
		return c.rmw(c.eaDirectPage, c.MWidth(), c.lsr)
	case opLSRAbs:
		return c.rmw(c.eaAbsolute, c.MWidth(), c.lsr)
	case opROLA:
		c.A = c.rol(c.A, c.MWidth())
		return true
	case opROLDP:
		return c.rmw(c.eaDirectPage, c.MWidth(), c.rol)
	case opROLAbs:
		return c.rmw(c.eaAbsolute, c.MWidth(), c.rol)
	case opRORA:
		c.A = c.ror(c.A, c.MWidth())
		return true
	case opRORDP:
		return c.rmw(c.eaDirectPage, c.MWidth(), c.ror)
	case opRORAbs:
		return c.rmw(c.eaAbsolute, c.MWidth(), c.ror)

	// Control flow.
	case opBPL:
		return c.branch(!c.TestFlag(FlagN))
	case opBMI:
		return c.branch(c.TestFlag(FlagN))
	case opBVC:
		return c.branch(!c.TestFlag(FlagV))
	case opBVS:
		return c.branch(c.TestFlag(FlagV))
	case opBCC:
		return c.branch(!c.TestFlag(FlagC))
	case opBCS:
		return c.branch(c.TestFlag(FlagC))
	case opBNE:
		return c.branch(!c.TestFlag(FlagZ))
	case opBEQ:
		return c.branch(c.TestFlag(FlagZ))
	case opBRA:
		return c.branch(true)
	case opBRL:
		t, ok := c.eaPCRelative16()
		if !ok {
			return false
		}
		c.PC = t
		return true

	case opJMPAbs:
		a, ok := c.eaAbsolute()
		if !ok {
			return false
		}
		c.PC = a.addr
		return true
	case opJMLAbs:
		a, ok := c.eaLong()
		if !ok {
			return false
		}
		c.PC = a.addr
		return true
	case opJMPInd:
		a, ok := c.eaAbsIndirect()
		if !ok {
			return false
		}
		c.PC = a.addr
		return true
	case opJMPIndX:
		a, ok := c.eaAbsIndirectX()
		if !ok {
			return false
		}
		c.PC = a.addr
		return true
	case opJMPIndLng:
		a, ok := c.eaAbsIndirectLong()
		if !ok {
			return false
		}
		c.PC = a.addr
		return true
	case opJSRAbs:
		return c.jumpToSubroutine(c.eaAbsolute, false)
	case opJSRIndX:
		return c.jumpToSubroutine(c.eaAbsIndirectX, false)
	case opJSLAbs:
		return c.jumpToSubroutine(c.eaLong, true)
	case opRTS:
		return c.returnFromSubroutine(false)
	case opRTL:
		return c.returnFromSubroutine(true)
	case opRTI:
		c.rti()
		return true

	// Stack.
	case opPHA:
		return c.pushWidth(c.A, c.MWidth())
	case opPLA:
		v, ok := c.pullWidth(c.MWidth())
		if !ok {
			return false
		}
		c.A = v
		c.updateNZ(v, c.MWidth())
		return true
	case opPHX:
		return c.pushWidth(c.X, c.XWidth())
	case opPLX:
		v, ok := c.pullWidth(c.XWidth())
		if !ok {
			return false
		}
		c.X = v
		c.updateNZ(v, c.XWidth())
		return true
	case opPHY:
		return c.pushWidth(c.Y, c.XWidth())
	case opPLY:
		v, ok := c.pullWidth(c.XWidth())
		if !ok {
			return false
		}
		c.Y = v
		c.updateNZ(v, c.XWidth())
		return true
	case opPHP:
		return c.pushWidth(c.P, 16)
	case opPLP:
		v, ok := c.pullWidth(16)
		if !ok {
			return false
		}
		c.P = v
		c.syncEflag()
		return true
	case opPHB:
		return c.pushWidth(c.B, 32)
	case opPHD:
		return c.pushWidth(c.D, 32)
	case opPLD:
		v, ok := c.pullWidth(32)
		if !ok {
			return false
		}
		c.D = v
		return true
	case opPHK:
		return c.pushWidth(0, 32) // code-bank register is always 0 (flat 32-bit addressing)

	// Transfers.
	case opTAX:
		c.X = c.transferNZ(c.A, c.XWidth())
		return true
	case opTXA:
		c.A = c.transferNZ(c.X, c.MWidth())
		return true
	case opTAY:
		c.Y = c.transferNZ(c.A, c.XWidth())
		return true
	case opTYA:
		c.A = c.transferNZ(c.Y, c.MWidth())
		return true
	case opTXS:
		c.S = c.X
		return true
	case opTSX:
		c.X = c.transferNZ(c.S, c.XWidth())
		return true
	case opTCD:
		c.D = c.A
		return true
	case opTDC:
		c.A = c.transferNZ(c.D, c.MWidth())
		return true
	case opTCS:
		c.S = c.A
		return true
	case opTSC:
		c.A = c.transferNZ(c.S, c.MWidth())
		return true
	case opTXY:
		c.Y = c.transferNZ(c.X, c.XWidth())
		return true
	case opTYX:
		c.X = c.transferNZ(c.Y, c.XWidth())
		return true

	case opCLC:
		c.SetFlag(FlagC, false)
		return true
	case opSEC:
		c.SetFlag(FlagC, true)
		return true
	case opCLD:
		c.SetFlag(FlagD, false)
		return true
	case opSED:
		c.SetFlag(FlagD, true)
		return true
	case opCLI:
		c.SetFlag(FlagI, false)
		return true
	case opSEI:
		c.SetFlag(FlagI, true)
		return true
	case opCLV:
		c.SetFlag(FlagV, false)
		return true
	case opREP:
		return c.changeStatusBits(false)
	case opSEP:
		return c.changeStatusBits(true)

	case opNOP:
		return true
	case opBRK:
		c.raiseTrap(TrapBRK, c.instPC)
		return true
	case opCOPCode:
		c.raiseTrap(TrapCOP, c.instPC)
		return true
	case opWAI:
		c.wai()
		return true
	case opSTP:
		c.stp()
		return true

	default:
		if c.IllegalAsNOP() {
			return true
		}
		c.raiseTrap(TrapIllegalOp, c.instPC)
		return false
	}
}
