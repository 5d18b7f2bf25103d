package cpu

import "m65832/internal/utils"

// asl shifts left by one, feeding 0 in and C out from the vacated top bit
// (spec.md §4.4: shift/rotate family).
func (c *CPU) asl(v uint32, width int) uint32 {
	v = utils.MaskWidth(v, width)
	carry := utils.SignBit(v, width)
	r := utils.MaskWidth(v<<1, width)
	c.SetFlag(FlagC, carry)
	c.updateNZ(r, width)
	return r
}

// lsr shifts right by one, feeding 0 in from the top and C out from bit 0.
func (c *CPU) lsr(v uint32, width int) uint32 {
	v = utils.MaskWidth(v, width)
	carry := v&1 != 0
	r := v >> 1
	c.SetFlag(FlagC, carry)
	c.updateNZ(r, width)
	return r
}

// rol rotates left through carry.
func (c *CPU) rol(v uint32, width int) uint32 {
	v = utils.MaskWidth(v, width)
	oldCarry := uint32(0)
	if c.TestFlag(FlagC) {
		oldCarry = 1
	}
	carryOut := utils.SignBit(v, width)
	r := utils.MaskWidth((v<<1)|oldCarry, width)
	c.SetFlag(FlagC, carryOut)
	c.updateNZ(r, width)
	return r
}

// ror rotates right through carry.
func (c *CPU) ror(v uint32, width int) uint32 {
	v = utils.MaskWidth(v, width)
	oldCarry := uint32(0)
	if c.TestFlag(FlagC) {
		oldCarry = 1
	}
	carryOut := v&1 != 0
	r := utils.MaskWidth((v>>1)|(oldCarry<<(uint(width)-1)), width)
	c.SetFlag(FlagC, carryOut)
	c.updateNZ(r, width)
	return r
}

// barrelShift implements the $02-prefix extended barrel shifter (EXT02
// $E9): an arithmetic/logical shift or rotate by an immediate count in one
// cycle's worth of architectural effect, rather than the one-bit-at-a-time
// 6502 shift/rotate opcodes (spec.md §4.3 "extended ALU / barrel shifter").
// mode: 0=LSL 1=LSR 2=ASR 3=ROL 4=ROR.
func (c *CPU) barrelShift(v uint32, count uint32, mode int, width int) uint32 {
	v = utils.MaskWidth(v, width)
	count %= uint32(width)
	if count == 0 {
		c.updateNZ(v, width)
		return v
	}

	var r uint32
	var carryOut bool
	switch mode {
	case 0: // LSL
		carryOut = (v>>(uint32(width)-count))&1 != 0
		r = utils.MaskWidth(v<<count, width)
	case 1: // LSR
		carryOut = (v>>(count-1))&1 != 0
		r = v >> count
	case 2: // ASR (arithmetic, sign-extending)
		carryOut = (v>>(count-1))&1 != 0
		signed := int32(utils.SignExtend(v, width))
		r = utils.MaskWidth(uint32(signed>>count), width)
	case 3: // ROL
		r = utils.MaskWidth((v<<count)|(v>>(uint32(width)-count)), width)
		carryOut = r&1 != 0
	case 4: // ROR
		r = utils.MaskWidth((v>>count)|(v<<(uint32(width)-count)), width)
		carryOut = utils.SignBit(r, width)
	}

	c.SetFlag(FlagC, carryOut)
	c.updateNZ(r, width)
	return r
}
