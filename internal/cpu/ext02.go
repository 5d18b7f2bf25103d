package cpu

// Extended-instruction sub-opcodes, selected by the byte following the
// $02 prefix (spec.md §2/§4.3: "Instruction decoder: base + $02-prefix
// ext"). Grouped the way the base opcode space groups its own families.
const (
	subMulUnsignedDP  = 0x00
	subMulUnsignedImm = 0x01
	subMulSignedDP    = 0x02
	subMulSignedImm   = 0x03
	subDivUnsignedDP  = 0x04
	subDivUnsignedImm = 0x05
	subDivSignedDP    = 0x06
	subDivSignedImm   = 0x07

	subCAS = 0x10
	subLLI = 0x12
	subSCI = 0x13

	subSD = 0x20 // store T to a direct-page operand
	subSB = 0x21 // load T from a direct-page operand

	subENR = 0x30 // enable register-window remap (sets P.R)
	subDSR = 0x31 // disable register-window remap (clears P.R)

	subTRAP = 0x40

	subTTA = 0x86 // transfer T -> A
	subTAT = 0x87 // transfer A -> T

	subLDQ = 0x88 // load A:T as a 64-bit little-endian quad from a direct-page address
	subSTQ = 0x89 // store A:T as a 64-bit little-endian quad to a direct-page address

	subLEADP   = 0xA0
	subLEADPX  = 0xA1
	subLEAAbs  = 0xA2
	subLEAAbsX = 0xA3

	subRegALU = 0xE8 // A = A (op) X, op selected by following byte
	subBarrel = 0xE9 // A = barrelShift(A, count, mode), both from following bytes
	subExtend = 0xEA // A = extend/bit-scan op selected by following byte

	subFADD = 0x50 // Fd = Fd + Fs
	subFSUB = 0x51 // Fd = Fd - Fs
	subFMUL = 0x52 // Fd = Fd * Fs
	subFDIV = 0x53 // Fd = Fd / Fs
	subFCMP = 0x54 // compare Fd, Fs -> C/Z/N
	subI2F  = 0x55 // Fd = float64(int32(A))
	subF2I  = 0x56 // A = int32(Fd), truncated toward zero
)

// executeExt02 dispatches the byte after the $02 prefix.
func (c *CPU) executeExt02() bool {
	sub, ok := c.fetchByte()
	if !ok {
		return false
	}

	switch sub {
	case subMulUnsignedDP:
		return c.extMulDP(c.mulUnsigned)
	case subMulUnsignedImm:
		return c.extMulImm(c.mulUnsigned)
	case subMulSignedDP:
		return c.extMulDP(c.mulSigned)
	case subMulSignedImm:
		return c.extMulImm(c.mulSigned)
	case subDivUnsignedDP:
		return c.extDivDP(c.divUnsigned)
	case subDivUnsignedImm:
		return c.extDivImm(c.divUnsigned)
	case subDivSignedDP:
		return c.extDivDP(c.divSigned)
	case subDivSignedImm:
		return c.extDivImm(c.divSigned)

	case subCAS:
		return c.extCAS()
	case subLLI:
		return c.extLLI()
	case subSCI:
		return c.extSCI()

	case subSD:
		return c.storeViaEA(c.eaDirectPage, c.T, c.MWidth())
	case subSB:
		return c.loadViaEA(c.eaDirectPage, &c.T, c.MWidth())

	case subENR:
		c.SetFlag(FlagR, true)
		return true
	case subDSR:
		c.SetFlag(FlagR, false)
		return true

	case subTRAP:
		c.raiseTrap(TrapSyscall, c.instPC)
		return true

	case subTTA:
		c.A = c.transferNZ(c.T, c.MWidth())
		return true
	case subTAT:
		c.T = c.A
		return true

	case subLDQ:
		return c.extLDQ()
	case subSTQ:
		return c.extSTQ()

	case subLEADP:
		return c.extLEA(c.eaDirectPage)
	case subLEADPX:
		return c.extLEA(c.eaDirectPageX)
	case subLEAAbs:
		return c.extLEA(c.eaAbsolute)
	case subLEAAbsX:
		return c.extLEA(func() (effAddr, bool) { return c.eaAbsoluteIndexed(c.X) })

	case subRegALU:
		return c.extRegALU()
	case subBarrel:
		return c.extBarrel()
	case subExtend:
		return c.extExtend()

	case subFADD:
		return c.fpuBinOp(func(a, b float64) float64 { return a + b })
	case subFSUB:
		return c.fpuBinOp(func(a, b float64) float64 { return a - b })
	case subFMUL:
		return c.fpuBinOp(func(a, b float64) float64 { return a * b })
	case subFDIV:
		return c.fpuBinOp(func(a, b float64) float64 { return a / b })
	case subFCMP:
		return c.fpuCompare()
	case subI2F:
		return c.fpuIntToFloat()
	case subF2I:
		return c.fpuFloatToInt()

	default:
		c.raiseTrap(TrapIllegalOp, c.instPC)
		return false
	}
}

func (c *CPU) extMulDP(op func(a, b uint32, width int) (uint32, uint32)) bool {
	ea, ok := c.eaDirectPage()
	if !ok {
		return false
	}
	v, ok := c.loadEA(ea, c.MWidth())
	if !ok {
		return false
	}
	lo, hi := op(c.A, v, c.MWidth())
	c.A, c.T = lo, hi
	return true
}

func (c *CPU) extMulImm(op func(a, b uint32, width int) (uint32, uint32)) bool {
	v, ok := c.fetchImmediate(c.MWidth())
	if !ok {
		return false
	}
	lo, hi := op(c.A, v, c.MWidth())
	c.A, c.T = lo, hi
	return true
}

func (c *CPU) extDivDP(op func(a, b uint32, width int) (uint32, uint32)) bool {
	ea, ok := c.eaDirectPage()
	if !ok {
		return false
	}
	v, ok := c.loadEA(ea, c.MWidth())
	if !ok {
		return false
	}
	q, r := op(c.A, v, c.MWidth())
	c.A, c.T = q, r
	return true
}

func (c *CPU) extDivImm(op func(a, b uint32, width int) (uint32, uint32)) bool {
	v, ok := c.fetchImmediate(c.MWidth())
	if !ok {
		return false
	}
	q, r := op(c.A, v, c.MWidth())
	c.A, c.T = q, r
	return true
}

// extCAS implements EXT02 CAS: X holds the expected value, A holds the
// value to store on success (spec.md §8 scenario 5: X=$42 (expected),
// A=$99 (new value), memory=$42 -> Z=1, memory becomes $99). A is never
// written by this instruction; on a mismatch X is loaded with the actual
// current memory value instead.
func (c *CPU) extCAS() bool {
	ea, ok := c.eaDirectPage()
	if !ok || ea.isRegWin {
		if ok {
			c.raiseTrap(TrapIllegalOp, c.instPC)
		}
		return false
	}
	actual, swapped, ok := c.compareAndSwap(ea.addr, c.X, c.A, c.MWidth())
	if !ok {
		return false
	}
	if !swapped {
		c.X = actual
	}
	return true
}

func (c *CPU) extLLI() bool {
	ea, ok := c.eaDirectPage()
	if !ok || ea.isRegWin {
		if ok {
			c.raiseTrap(TrapIllegalOp, c.instPC)
		}
		return false
	}
	v, ok := c.loadLinked(ea.addr, c.MWidth())
	if !ok {
		return false
	}
	c.A = v
	return true
}

func (c *CPU) extSCI() bool {
	ea, ok := c.eaDirectPage()
	if !ok || ea.isRegWin {
		if ok {
			c.raiseTrap(TrapIllegalOp, c.instPC)
		}
		return false
	}
	result, ok := c.storeConditional(ea.addr, c.A, c.MWidth())
	if !ok {
		return false
	}
	c.A = result
	return true
}

func (c *CPU) extLDQ() bool {
	ea, ok := c.eaDirectPage()
	if !ok || ea.isRegWin {
		if ok {
			c.raiseTrap(TrapIllegalOp, c.instPC)
		}
		return false
	}
	lo, ok := c.readVirtual(ea.addr, 4, accessRead)
	if !ok {
		return false
	}
	hi, ok := c.readVirtual(ea.addr+4, 4, accessRead)
	if !ok {
		return false
	}
	c.A, c.T = lo, hi
	return true
}

func (c *CPU) extSTQ() bool {
	ea, ok := c.eaDirectPage()
	if !ok || ea.isRegWin {
		if ok {
			c.raiseTrap(TrapIllegalOp, c.instPC)
		}
		return false
	}
	if !c.writeVirtual(ea.addr, c.A, 4) {
		return false
	}
	return c.writeVirtual(ea.addr+4, c.T, 4)
}

func (c *CPU) extLEA(resolve func() (effAddr, bool)) bool {
	ea, ok := resolve()
	if !ok {
		return false
	}
	if ea.isRegWin {
		c.raiseTrap(TrapIllegalOp, c.instPC)
		return false
	}
	c.A = ea.addr
	return true
}

// extRegALU applies a register-register ALU op (A (op) X -> A) selected
// by the sub-byte that follows: 0=ADD 1=SUB 2=AND 3=OR 4=XOR.
func (c *CPU) extRegALU() bool {
	op, ok := c.fetchByte()
	if !ok {
		return false
	}
	switch op {
	case 0:
		c.A = c.adc(c.A, c.X, c.MWidth())
	case 1:
		c.A = c.sbc(c.A, c.X, c.MWidth())
	case 2:
		c.A = c.logicAnd(c.A, c.X, c.MWidth())
	case 3:
		c.A = c.logicOr(c.A, c.X, c.MWidth())
	case 4:
		c.A = c.logicXor(c.A, c.X, c.MWidth())
	default:
		c.raiseTrap(TrapIllegalOp, c.instPC)
		return false
	}
	return true
}

// extBarrel applies the one-shot barrel shifter: mode byte then count
// byte, both as immediates.
func (c *CPU) extBarrel() bool {
	mode, ok := c.fetchByte()
	if !ok {
		return false
	}
	count, ok := c.fetchByte()
	if !ok {
		return false
	}
	c.A = c.barrelShift(c.A, uint32(count), int(mode), c.MWidth())
	return true
}

// extExtend applies SEXT8/SEXT16/ZEXT8/ZEXT16/CLZ/CTZ/POPCNT, selected by
// the following byte.
func (c *CPU) extExtend() bool {
	op, ok := c.fetchByte()
	if !ok {
		return false
	}
	width := c.MWidth()
	switch op {
	case 0:
		c.A = c.signExtendOp(c.A, 8, width)
	case 1:
		c.A = c.signExtendOp(c.A, 16, width)
	case 2:
		c.A = c.zeroExtendOp(c.A, 8, width)
	case 3:
		c.A = c.zeroExtendOp(c.A, 16, width)
	case 4:
		c.A = c.clz(c.A, width)
	case 5:
		c.A = c.ctz(c.A, width)
	case 6:
		c.A = c.popcnt(c.A, width)
	default:
		c.raiseTrap(TrapIllegalOp, c.instPC)
		return false
	}
	return true
}
