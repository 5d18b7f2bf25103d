package coproc

func (cp *Coprocessor) fetchByte() byte {
	v := cp.readByte(cp.PC)
	cp.PC++
	return v
}

func (cp *Coprocessor) fetchWord() uint16 {
	lo := cp.fetchByte()
	hi := cp.fetchByte()
	return uint16(lo) | uint16(hi)<<8
}

func (cp *Coprocessor) eaZeroPage() uint16 {
	return uint16(cp.fetchByte())
}

func (cp *Coprocessor) eaZeroPageX() uint16 {
	return uint16(byte(cp.fetchByte() + cp.X))
}

func (cp *Coprocessor) eaZeroPageY() uint16 {
	return uint16(byte(cp.fetchByte() + cp.Y))
}

func (cp *Coprocessor) eaAbsolute() uint16 {
	return cp.fetchWord()
}

func (cp *Coprocessor) eaAbsoluteX() uint16 {
	return cp.eaAbsolute() + uint16(cp.X)
}

func (cp *Coprocessor) eaAbsoluteY() uint16 {
	return cp.eaAbsolute() + uint16(cp.Y)
}

func (cp *Coprocessor) eaIndirect() uint16 {
	ptr := cp.fetchWord()
	lo := cp.readByte(ptr)
	hi := cp.readByte((ptr & 0xFF00) | uint16(byte(ptr)+1)) // NMOS page-wrap bug on JMP (ind)
	return uint16(lo) | uint16(hi)<<8
}

func (cp *Coprocessor) eaIndexedIndirectX() uint16 {
	zp := cp.fetchByte() + cp.X
	return cp.readWordZPWrap(zp)
}

func (cp *Coprocessor) eaIndirectIndexedY() uint16 {
	zp := cp.fetchByte()
	base := cp.readWordZPWrap(zp)
	return base + uint16(cp.Y)
}

// eaZeroPageIndirect implements (zp), a 65C02 addressing mode with no
// index register.
func (cp *Coprocessor) eaZeroPageIndirect() uint16 {
	zp := cp.fetchByte()
	return cp.readWordZPWrap(zp)
}

func (cp *Coprocessor) relTarget() uint16 {
	d := int8(cp.fetchByte())
	return uint16(int32(cp.PC) + int32(d))
}
