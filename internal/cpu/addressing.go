package cpu

import "m65832/internal/utils"

// fetchByte reads one byte at PC and advances PC, going through the
// execute-permission MMU path (it is always an instruction-stream byte).
func (c *CPU) fetchByte() (byte, bool) {
	b, ok := c.fetchInstructionByte(c.PC)
	if ok {
		c.PC++
	}
	return b, ok
}

func (c *CPU) fetchWord() (uint16, bool) {
	lo, ok := c.fetchByte()
	if !ok {
		return 0, false
	}
	hi, ok := c.fetchByte()
	if !ok {
		return 0, false
	}
	return uint16(lo) | uint16(hi)<<8, true
}

func (c *CPU) fetchLong24() (uint32, bool) {
	lo, ok := c.fetchByte()
	if !ok {
		return 0, false
	}
	mid, ok := c.fetchByte()
	if !ok {
		return 0, false
	}
	hi, ok := c.fetchByte()
	if !ok {
		return 0, false
	}
	return uint32(lo) | uint32(mid)<<8 | uint32(hi)<<16, true
}

func (c *CPU) fetchWord32() (uint32, bool) {
	lo, ok := c.fetchWord()
	if !ok {
		return 0, false
	}
	hi, ok := c.fetchWord()
	if !ok {
		return 0, false
	}
	return uint32(lo) | uint32(hi)<<16, true
}

// fetchImmediate reads an operand whose width follows the given mode
// width (8/16/32), per spec.md §4.3: "immediate (width follows the
// governing M/X/W flag)".
func (c *CPU) fetchImmediate(width int) (uint32, bool) {
	switch width {
	case 8:
		b, ok := c.fetchByte()
		return uint32(b), ok
	case 16:
		w, ok := c.fetchWord()
		return uint32(w), ok
	default:
		return c.fetchWord32()
	}
}

// effAddr is the outcome of resolving an addressing mode: either a
// memory effective address, or (for register-window direct-page and
// immediate operands) an indication that no physical address applies.
type effAddr struct {
	addr     uint32
	isRegWin bool
	regIdx   int
}

// eaDirectPage implements D + dp8, with the register-window redirection
// from spec.md §4.3/§3 when P.R=1.
func (c *CPU) eaDirectPage() (effAddr, bool) {
	dp, ok := c.fetchByte()
	if !ok {
		return effAddr{}, false
	}
	if c.RegWindowEnabled() {
		if uint32(dp)%4 != 0 {
			c.raiseTrap(TrapAlignment, c.D+uint32(dp))
			return effAddr{}, false
		}
		return effAddr{isRegWin: true, regIdx: int(uint32(dp)/4) % RegWindowSize}, true
	}
	return effAddr{addr: c.D + uint32(dp)}, true
}

func (c *CPU) eaDirectPageX() (effAddr, bool) {
	dp, ok := c.fetchByte()
	if !ok {
		return effAddr{}, false
	}
	return effAddr{addr: c.D + uint32(dp) + c.X}, true
}

func (c *CPU) eaDirectPageY() (effAddr, bool) {
	dp, ok := c.fetchByte()
	if !ok {
		return effAddr{}, false
	}
	return effAddr{addr: c.D + uint32(dp) + c.Y}, true
}

// eaAbsolute implements B + abs16 in 8/16-bit modes, abs32 in 32-bit
// mode (spec.md §4.3).
func (c *CPU) eaAbsolute() (effAddr, bool) {
	if c.W() == WNative32 {
		a, ok := c.fetchWord32()
		if !ok {
			return effAddr{}, false
		}
		return effAddr{addr: a}, true
	}
	a, ok := c.fetchWord()
	if !ok {
		return effAddr{}, false
	}
	return effAddr{addr: c.B + uint32(a)}, true
}

func (c *CPU) eaAbsoluteIndexed(index uint32) (effAddr, bool) {
	base, ok := c.eaAbsolute()
	if !ok {
		return effAddr{}, false
	}
	return effAddr{addr: base.addr + index}, true
}

// eaLong implements the 24-bit long mode, illegal in W=11 (spec.md §4.3
// / §3 invariants).
func (c *CPU) eaLong() (effAddr, bool) {
	if c.W() == WNative32 {
		c.raiseTrap(TrapIllegalOp, c.instPC)
		return effAddr{}, false
	}
	a, ok := c.fetchLong24()
	if !ok {
		return effAddr{}, false
	}
	return effAddr{addr: a}, true
}

func (c *CPU) eaLongX() (effAddr, bool) {
	base, ok := c.eaLong()
	if !ok {
		return effAddr{}, false
	}
	return effAddr{addr: base.addr + c.X}, true
}

func (c *CPU) eaStackRelative() (effAddr, bool) {
	off, ok := c.fetchByte()
	if !ok {
		return effAddr{}, false
	}
	return effAddr{addr: c.S + uint32(off)}, true
}

// eaDPIndirectIndexedY implements (dp),Y: read a pointer from the
// direct page, then index the result by Y.
func (c *CPU) eaDPIndirectIndexedY() (effAddr, bool) {
	dp, ok := c.fetchByte()
	if !ok {
		return effAddr{}, false
	}
	ptr, ok := c.readVirtual(c.D+uint32(dp), 2, accessRead)
	if !ok {
		return effAddr{}, false
	}
	return effAddr{addr: c.B + ptr + c.Y}, true
}

// eaDPIndexedIndirectX implements (dp,X): add X to the direct-page
// offset, then read the pointer.
func (c *CPU) eaDPIndexedIndirectX() (effAddr, bool) {
	dp, ok := c.fetchByte()
	if !ok {
		return effAddr{}, false
	}
	ptr, ok := c.readVirtual(c.D+uint32(dp)+c.X, 2, accessRead)
	if !ok {
		return effAddr{}, false
	}
	return effAddr{addr: c.B + ptr}, true
}

// eaStackRelIndirectIndexedY implements (S+off),Y.
func (c *CPU) eaStackRelIndirectIndexedY() (effAddr, bool) {
	off, ok := c.fetchByte()
	if !ok {
		return effAddr{}, false
	}
	ptr, ok := c.readVirtual(c.S+uint32(off), 2, accessRead)
	if !ok {
		return effAddr{}, false
	}
	return effAddr{addr: c.B + ptr + c.Y}, true
}

// eaDPIndirectLongY implements [dp],Y: the direct page holds a 24-bit
// pointer (long indirect).
func (c *CPU) eaDPIndirectLongY() (effAddr, bool) {
	dp, ok := c.fetchByte()
	if !ok {
		return effAddr{}, false
	}
	lo, ok := c.readVirtual(c.D+uint32(dp), 2, accessRead)
	if !ok {
		return effAddr{}, false
	}
	hi, ok := c.readVirtual(c.D+uint32(dp)+2, 1, accessRead)
	if !ok {
		return effAddr{}, false
	}
	ptr := lo | hi<<16
	return effAddr{addr: ptr + c.Y}, true
}

// eaAbsIndirect implements (abs): PC = indirect pointer, used for JMP.
func (c *CPU) eaAbsIndirect() (effAddr, bool) {
	a, ok := c.fetchWord()
	if !ok {
		return effAddr{}, false
	}
	ptr, ok := c.readVirtual(c.B+uint32(a), 2, accessRead)
	if !ok {
		return effAddr{}, false
	}
	return effAddr{addr: ptr}, true
}

func (c *CPU) eaAbsIndirectX() (effAddr, bool) {
	a, ok := c.fetchWord()
	if !ok {
		return effAddr{}, false
	}
	ptr, ok := c.readVirtual(c.B+uint32(a)+c.X, 2, accessRead)
	if !ok {
		return effAddr{}, false
	}
	return effAddr{addr: ptr}, true
}

// eaAbsIndirectLong implements (abs) long: the indirect pointer is
// 24 bits.
func (c *CPU) eaAbsIndirectLong() (effAddr, bool) {
	a, ok := c.fetchWord()
	if !ok {
		return effAddr{}, false
	}
	ptr, ok := c.readVirtual(c.B+uint32(a), 4, accessRead)
	if !ok {
		return effAddr{}, false
	}
	return effAddr{addr: ptr & 0xFFFFFF}, true
}

// eaPCRelative8/16 compute branch/PER targets from a signed displacement
// relative to the address immediately after the operand.
func (c *CPU) eaPCRelative8() (uint32, bool) {
	d, ok := c.fetchByte()
	if !ok {
		return 0, false
	}
	disp := utils.SignExtend(uint32(d), 8)
	return c.PC + disp, true
}

func (c *CPU) eaPCRelative16() (uint32, bool) {
	d, ok := c.fetchWord()
	if !ok {
		return 0, false
	}
	disp := utils.SignExtend(uint32(d), 16)
	return c.PC + disp, true
}

// loadEA reads a value of the given width from an effAddr (memory or
// register-window).
func (c *CPU) loadEA(ea effAddr, width int) (uint32, bool) {
	if ea.isRegWin {
		return c.RegWindow[ea.regIdx], true
	}
	return c.readVirtual(ea.addr, width/8, accessRead)
}

func (c *CPU) storeEA(ea effAddr, value uint32, width int) bool {
	if ea.isRegWin {
		c.RegWindow[ea.regIdx] = value
		return true
	}
	return c.writeVirtual(ea.addr, value, width/8)
}
