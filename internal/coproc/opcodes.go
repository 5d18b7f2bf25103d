package coproc

// Opcode space, stock 6502/65C02 encoding (the coprocessor is a real
// 6502-family core, unlike the main CPU's fictional successor ISA).
const (
	opLDAImm, opLDAZp, opLDAZpX, opLDAAbs, opLDAAbsX, opLDAAbsY, opLDAIndX, opLDAIndY = 0xA9, 0xA5, 0xB5, 0xAD, 0xBD, 0xB9, 0xA1, 0xB1
	opSTAZp, opSTAZpX, opSTAAbs, opSTAAbsX, opSTAAbsY, opSTAIndX, opSTAIndY          = 0x85, 0x95, 0x8D, 0x9D, 0x99, 0x81, 0x91
	opLDXImm, opLDXZp, opLDXZpY, opLDXAbs, opLDXAbsY                                = 0xA2, 0xA6, 0xB6, 0xAE, 0xBE
	opSTXZp, opSTXZpY, opSTXAbs                                                     = 0x86, 0x96, 0x8E
	opLDYImm, opLDYZp, opLDYZpX, opLDYAbs, opLDYAbsX                                = 0xA0, 0xA4, 0xB4, 0xAC, 0xBC
	opSTYZp, opSTYZpX, opSTYAbs                                                     = 0x84, 0x94, 0x8C

	opADCImm, opADCZp, opADCAbs, opADCAbsX, opADCAbsY, opADCIndX, opADCIndY = 0x69, 0x65, 0x6D, 0x7D, 0x79, 0x61, 0x71
	opSBCImm, opSBCZp, opSBCAbs, opSBCAbsX, opSBCAbsY, opSBCIndX, opSBCIndY = 0xE9, 0xE5, 0xED, 0xFD, 0xF9, 0xE1, 0xF1
	opANDImm, opANDZp, opANDAbs                                            = 0x29, 0x25, 0x2D
	opORAImm, opORAZp, opORAAbs                                            = 0x09, 0x05, 0x0D
	opEORImm, opEORZp, opEORAbs                                            = 0x49, 0x45, 0x4D
	opBITZp, opBITAbs                                                      = 0x24, 0x2C
	opCMPImm, opCMPZp, opCMPAbs, opCMPAbsX, opCMPAbsY                      = 0xC9, 0xC5, 0xCD, 0xDD, 0xD9
	opCPXImm, opCPXZp, opCPXAbs                                            = 0xE0, 0xE4, 0xEC
	opCPYImm, opCPYZp, opCPYAbs                                            = 0xC0, 0xC4, 0xCC

	opINCZp, opINCAbs, opDECZp, opDECAbs = 0xE6, 0xEE, 0xC6, 0xCE
	opINX, opINY, opDEX, opDEY           = 0xE8, 0xC8, 0xCA, 0x88

	opASLA, opASLZp, opASLAbs = 0x0A, 0x06, 0x0E
	opLSRA, opLSRZp, opLSRAbs = 0x4A, 0x46, 0x4E
	opROLA, opROLZp, opROLAbs = 0x2A, 0x26, 0x2E
	opRORA, opRORZp, opRORAbs = 0x6A, 0x66, 0x6E

	opBPL, opBMI, opBVC, opBVS, opBCC, opBCS, opBNE, opBEQ = 0x10, 0x30, 0x50, 0x70, 0x90, 0xB0, 0xD0, 0xF0
	opBRA                                                  = 0x80 // 65C02

	opJMPAbs, opJMPInd, opJSRAbs, opRTS, opRTI = 0x4C, 0x6C, 0x20, 0x60, 0x40

	opPHA, opPLA, opPHP, opPLP           = 0x48, 0x68, 0x08, 0x28
	opPHX, opPLX, opPHY, opPLY           = 0xDA, 0xFA, 0x5A, 0x7A // 65C02
	opTAX, opTXA, opTAY, opTYA           = 0xAA, 0x8A, 0xA8, 0x98
	opTXS, opTSX                         = 0x9A, 0xBA
	opCLC, opSEC, opCLD, opSED           = 0x18, 0x38, 0xD8, 0xF8
	opCLI, opSEI, opCLV                  = 0x58, 0x78, 0xB8
	opNOP, opBRK                         = 0xEA, 0x00
	opSTZZp, opSTZAbs                    = 0x64, 0x9C // 65C02
)

// Step decodes and executes one instruction, advancing the scanline
// timing counters by one cycle; per-opcode cycle counts are not modelled.
// It returns false if a stop was requested before the instruction began.
func (cp *Coprocessor) Step() bool {
	if cp.stopped {
		return false
	}

	cp.checkInterrupts()

	opcode := cp.fetchByte()
	cp.executeOpcode(opcode)
	cp.advanceTiming()
	return true
}

// RunCycles executes up to n whole instructions, each counted as one
// cycle, and returns how many it ran; an instruction is never preempted
// mid-flight. stop, if non-nil, is polled once per instruction for early
// cancellation.
func (cp *Coprocessor) RunCycles(n int, stop *bool) int {
	executed := 0
	for executed < n {
		if stop != nil && *stop {
			break
		}
		if cp.stopped {
			break
		}
		cp.Step()
		executed++
	}
	return executed
}

// checkInterrupts services IRQ (level, masked by P.I) and NMI (edge,
// latched by comparing the current pulse against the previous sample),
// per spec.md §4.8.
func (cp *Coprocessor) checkInterrupts() {
	edge := cp.nmiPending && !cp.nmiPrev
	cp.nmiPrev = cp.nmiPending
	cp.nmiPending = false

	if edge {
		cp.serviceInterrupt(VecNMI, false)
		return
	}
	if cp.irqLevel && !cp.testFlag(FlagI) {
		cp.serviceInterrupt(VecIRQ, false)
	}
}

func (cp *Coprocessor) serviceInterrupt(vector uint16, brk bool) {
	cp.pushWord(cp.PC)
	flags := cp.P | Flag1
	if brk {
		flags |= FlagB
	} else {
		flags &^= FlagB
	}
	cp.push(flags)
	cp.setFlag(FlagI, true)
	if cp.Compat.CMOS {
		cp.setFlag(FlagD, false)
	}
	cp.PC = cp.readWord(vector)
}
