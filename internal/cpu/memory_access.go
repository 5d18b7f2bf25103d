package cpu

// readVirtual translates va and reads width bytes from physical memory.
// On an MMU fault it latches FAULTVA/MMUCR, raises TrapPageFault (which
// vectors to the page-fault handler at once, pushing inst_pc as the return
// address) and returns ok=false so the caller can abort the in-progress
// instruction. Stores already made earlier in the same instruction are not
// rolled back.
func (c *CPU) readVirtual(va uint32, width int, kind accessKind) (uint32, bool) {
	pa, f := c.translate(va, kind)
	if f != nil {
		c.latchFault(f)
		c.raiseTrap(TrapPageFault, va)
		return 0, false
	}
	return c.Bus.Read(pa, width), true
}

// writeVirtual translates va and writes width bytes, invalidating any
// outstanding LL/SC reservation on success (spec.md §4.4/§8: "For all
// stores to any address, any outstanding LL/SC reservation becomes
// invalid").
func (c *CPU) writeVirtual(va uint32, value uint32, width int) bool {
	pa, f := c.translate(va, accessWrite)
	if f != nil {
		c.latchFault(f)
		c.raiseTrap(TrapPageFault, va)
		return false
	}
	c.Bus.Write(pa, value, width)
	c.LLSC.Valid = false
	return true
}

// fetchInstructionByte reads one instruction byte via the executable
// permission check.
func (c *CPU) fetchInstructionByte(va uint32) (byte, bool) {
	v, ok := c.readVirtual(va, 1, accessExecute)
	return byte(v), ok
}

// readDirectPage resolves a direct-page access, redirecting to the
// register window when P.R=1 and enforcing the 4-byte alignment
// invariant from spec.md §3 ("A register-window access with P.R=1
// requires the direct-page offset to be a multiple of 4").
func (c *CPU) readDirectPage(dpOffset uint32, width int) (uint32, bool) {
	if c.RegWindowEnabled() {
		if dpOffset%4 != 0 {
			c.raiseTrap(TrapAlignment, c.D+dpOffset)
			return 0, false
		}
		idx := (dpOffset / 4) % RegWindowSize
		return c.RegWindow[idx], true
	}
	return c.readVirtual(c.D+dpOffset, width, accessRead)
}

func (c *CPU) writeDirectPage(dpOffset uint32, value uint32, width int) bool {
	if c.RegWindowEnabled() {
		if dpOffset%4 != 0 {
			c.raiseTrap(TrapAlignment, c.D+dpOffset)
			return false
		}
		idx := (dpOffset / 4) % RegWindowSize
		c.RegWindow[idx] = value
		return true
	}
	return c.writeVirtual(c.D+dpOffset, value, width)
}
