package cpu

import (
	"math/bits"

	"m65832/internal/utils"
)

// signExtendOp implements EXT02 SEXT8/SEXT16: widen a narrower field to
// the current ALU width, replicating its sign bit (spec.md §4.3 "extend
// ops").
func (c *CPU) signExtendOp(v uint32, fromWidth, toWidth int) uint32 {
	narrow := utils.MaskWidth(v, fromWidth)
	r := utils.MaskWidth(utils.SignExtend(narrow, fromWidth), toWidth)
	c.updateNZ(r, toWidth)
	return r
}

// zeroExtendOp implements ZEXT8/ZEXT16: widen with zero fill.
func (c *CPU) zeroExtendOp(v uint32, fromWidth, toWidth int) uint32 {
	r := utils.MaskWidth(v, fromWidth)
	c.updateNZ(r, toWidth)
	return r
}

// clz counts leading zeros within width bits.
func (c *CPU) clz(v uint32, width int) uint32 {
	masked := utils.MaskWidth(v, width)
	if masked == 0 {
		c.updateNZ(uint32(width), width)
		return uint32(width)
	}
	r := uint32(bits.LeadingZeros32(masked)) - uint32(32-width)
	c.updateNZ(r, width)
	return r
}

// ctz counts trailing zeros within width bits.
func (c *CPU) ctz(v uint32, width int) uint32 {
	masked := utils.MaskWidth(v, width)
	if masked == 0 {
		c.updateNZ(uint32(width), width)
		return uint32(width)
	}
	r := uint32(bits.TrailingZeros32(masked))
	c.updateNZ(r, width)
	return r
}

// popcnt counts set bits within width bits.
func (c *CPU) popcnt(v uint32, width int) uint32 {
	masked := utils.MaskWidth(v, width)
	r := uint32(bits.OnesCount32(masked))
	c.updateNZ(r, width)
	return r
}
