package cpu

// loadLinked implements EXT02 LLI: reads a value and arms the single
// reservation slot (spec.md §4.4: "LL/SC reservation invalidated by any
// store").
func (c *CPU) loadLinked(addr uint32, width int) (uint32, bool) {
	v, ok := c.readVirtual(addr, width/8, accessRead)
	if !ok {
		return 0, false
	}
	c.LLSC.Valid = true
	c.LLSC.Addr = addr
	return v, true
}

// storeConditional implements EXT02 SCI: the store commits only if the
// reservation is still valid and addresses the same location; the result
// flag (1=success, 0=failure) replaces the stored register value in the
// destination, matching the MIPS SC convention the rest of the
// atomic-op family is grounded on.
func (c *CPU) storeConditional(addr uint32, value uint32, width int) (result uint32, ok bool) {
	if !c.LLSC.Valid || c.LLSC.Addr != addr {
		c.LLSC.Valid = false
		c.updateNZ(0, width)
		return 0, true
	}
	if !c.writeVirtual(addr, value, width/8) {
		return 0, false
	}
	c.updateNZ(1, width)
	return 1, true
}

// compareAndSwap implements EXT02 CAS: if the memory word at addr equals
// expected, stores newVal and sets Z=1; otherwise leaves memory untouched,
// clears Z, and returns the actual value read so the caller can load it
// back into the compare register (spec.md §4.4: "on equality ... sets
// Z=1, otherwise ... clears Z").
func (c *CPU) compareAndSwap(addr uint32, expected, newVal uint32, width int) (actual uint32, swapped bool, ok bool) {
	cur, readOK := c.readVirtual(addr, width/8, accessRead)
	if !readOK {
		return 0, false, false
	}
	if cur != expected {
		c.updateNZ(1, width)
		return cur, false, true
	}
	if !c.writeVirtual(addr, newVal, width/8) {
		return 0, false, false
	}
	c.updateNZ(0, width)
	return cur, true, true
}
