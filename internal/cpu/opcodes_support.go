package cpu

import "m65832/internal/utils"

// immToReg loads an immediate operand of the given width into dest.
func (c *CPU) immToReg(dest *uint32, width int) bool {
	v, ok := c.fetchImmediate(width)
	if !ok {
		return false
	}
	*dest = v
	c.updateNZ(v, width)
	return true
}

// loadViaEA resolves an addressing mode then loads its operand into dest.
func (c *CPU) loadViaEA(resolve func() (effAddr, bool), dest *uint32, width int) bool {
	ea, ok := resolve()
	if !ok {
		return false
	}
	if !ea.isRegWin && c.checkWatchpoint(ea.addr, false) {
		return false
	}
	v, ok := c.loadEA(ea, width)
	if !ok {
		return false
	}
	*dest = v
	c.updateNZ(v, width)
	return true
}

// storeViaEA resolves an addressing mode then stores value into it.
func (c *CPU) storeViaEA(resolve func() (effAddr, bool), value uint32, width int) bool {
	ea, ok := resolve()
	if !ok {
		return false
	}
	if !ea.isRegWin && c.checkWatchpoint(ea.addr, true) {
		return false
	}
	return c.storeEA(ea, value, width)
}

// immArith fetches an immediate operand at MWidth and applies op to (A, operand).
func (c *CPU) immArith(op func(a, b uint32, width int) uint32) bool {
	v, ok := c.fetchImmediate(c.MWidth())
	if !ok {
		return false
	}
	c.A = op(c.A, v, c.MWidth())
	return true
}

// memArith resolves an addressing mode, reads its operand, and applies op
// to (A, operand), leaving the result in A.
func (c *CPU) memArith(resolve func() (effAddr, bool), op func(a, b uint32, width int) uint32) bool {
	ea, ok := resolve()
	if !ok {
		return false
	}
	if !ea.isRegWin && c.checkWatchpoint(ea.addr, false) {
		return false
	}
	v, ok := c.loadEA(ea, c.MWidth())
	if !ok {
		return false
	}
	c.A = op(c.A, v, c.MWidth())
	return true
}

func (c *CPU) testMem(resolve func() (effAddr, bool)) bool {
	ea, ok := resolve()
	if !ok {
		return false
	}
	v, ok := c.loadEA(ea, c.MWidth())
	if !ok {
		return false
	}
	c.bitTest(c.A, v, c.MWidth())
	return true
}

func (c *CPU) memCompare(resolve func() (effAddr, bool), reg uint32, width int) bool {
	ea, ok := resolve()
	if !ok {
		return false
	}
	v, ok := c.loadEA(ea, width)
	if !ok {
		return false
	}
	c.compare(reg, v, width)
	return true
}

// incDec adds delta (1 or -1) to v at the given width, updating N/Z (no
// carry is affected, matching 6502 INC/DEC/INX/.../DEY semantics).
func (c *CPU) incDec(v uint32, delta int32, width int) uint32 {
	r := utils.MaskWidth(uint32(int64(v)+int64(delta)), width)
	c.updateNZ(r, width)
	return r
}

// rmw resolves an addressing mode, applies a read-modify-write function to
// its operand, and stores the result back.
func (c *CPU) rmw(resolve func() (effAddr, bool), width int, fn func(v uint32, width int) uint32) bool {
	ea, ok := resolve()
	if !ok {
		return false
	}
	if !ea.isRegWin && c.checkWatchpoint(ea.addr, true) {
		return false
	}
	v, ok := c.loadEA(ea, width)
	if !ok {
		return false
	}
	return c.storeEA(ea, fn(v, width), width)
}

// branch implements the conditional-branch family: an 8-bit signed
// displacement relative to the address after the operand, taken only when
// cond is true.
func (c *CPU) branch(cond bool) bool {
	target, ok := c.eaPCRelative8()
	if !ok {
		return false
	}
	if cond {
		c.PC = target
	}
	return true
}

// jumpToSubroutine pushes the return address (the address of the last byte
// of the JSR/JSL instruction, per 6502/65816 convention) and jumps. long
// additionally pushes nothing extra since the core has no separate bank
// register to preserve.
func (c *CPU) jumpToSubroutine(resolve func() (effAddr, bool), long bool) bool {
	ea, ok := resolve()
	if !ok {
		return false
	}
	returnAddr := c.PC - 1
	if c.StackWidth() == 32 {
		c.pushStack32(returnAddr)
	} else {
		c.pushStack16(uint16(returnAddr))
	}
	c.PC = ea.addr
	return true
}

func (c *CPU) returnFromSubroutine(long bool) bool {
	var addr uint32
	if c.StackWidth() == 32 {
		addr = c.pullStack32()
	} else {
		addr = uint32(c.pullStack16())
	}
	c.PC = addr + 1
	return true
}

func (c *CPU) pushWidth(v uint32, width int) bool {
	switch {
	case c.IsEmulation():
		c.pushStack8(byte(v))
	case width == 32:
		c.pushStack32(v)
	case width == 16:
		c.pushStack16(uint16(v))
	default:
		c.pushStack8(byte(v))
	}
	return true
}

func (c *CPU) pullWidth(width int) (uint32, bool) {
	switch {
	case c.IsEmulation():
		return uint32(c.pullStack8()), true
	case width == 32:
		return c.pullStack32(), true
	case width == 16:
		return uint32(c.pullStack16()), true
	default:
		return uint32(c.pullStack8()), true
	}
}

func (c *CPU) transferNZ(v uint32, width int) uint32 {
	r := utils.MaskWidth(v, width)
	c.updateNZ(r, width)
	return r
}

// changeStatusBits implements REP/SEP: fetch an 8-bit mask and clear
// (REP) or set (SEP) those status bits, re-deriving E if M0/M1 changed.
// Unlike stock 65816 (where REP/SEP cannot touch M/X while E=1), this ISA
// lets SEP/REP change width bits even in emulation mode, per spec.md §9's
// resolved Open Question: "the spec says SEP/REP may change width even
// with E=1... the implementer must not carry over 65816-exact behavior."
func (c *CPU) changeStatusBits(set bool) bool {
	mask, ok := c.fetchByte()
	if !ok {
		return false
	}
	m := uint32(mask)
	if set {
		c.P |= m
	} else {
		c.P &^= m
	}
	c.syncEflag()
	return true
}

// blockMove implements MVN ($44, swapped vs. stock 65816 per a resolved
// Open Question, see DESIGN.md)/MVP ($54): copies one byte from (X) to
// (Y) in the given direction and decrements the 16-bit-truncated move
// counter in A until it underflows.
func (c *CPU) blockMove(dir int32) bool {
	destBank, ok := c.fetchByte()
	if !ok {
		return false
	}
	srcBank, ok := c.fetchByte()
	if !ok {
		return false
	}
	_, _ = destBank, srcBank // banks are vestigial: this core has no per-move bank override

	v, ok := c.readVirtual(c.B+c.X, 1, accessRead)
	if !ok {
		return false
	}
	if !c.writeVirtual(c.B+c.Y, v, 1) {
		return false
	}
	c.X = uint32(int64(c.X) + int64(dir))
	c.Y = uint32(int64(c.Y) + int64(dir))
	c.A = utils.MaskWidth(c.A-1, 16)
	if c.A != 0xFFFF {
		c.PC -= 3 // repeat MVN/MVP until the counter underflows
	}
	return true
}
