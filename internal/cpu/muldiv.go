package cpu

import "m65832/internal/utils"

// mulUnsigned implements EXT02 MUL: widens two width-bit operands into a
// 2*width-bit product, split across the result register and T (spec.md
// §4.3: "MUL/DIV use the T register to hold the half the destination
// register cannot").
func (c *CPU) mulUnsigned(a, b uint32, width int) (lo, hi uint32) {
	am := uint64(utils.MaskWidth(a, width))
	bm := uint64(utils.MaskWidth(b, width))
	product := am * bm
	lo = utils.MaskWidth(uint32(product), width)
	hi = utils.MaskWidth(uint32(product>>uint(width)), width)
	c.updateNZ(lo, width)
	return lo, hi
}

// mulSigned implements signed MUL.
func (c *CPU) mulSigned(a, b uint32, width int) (lo, hi uint32) {
	as := int64(int32(utils.SignExtend(a, width)))
	bs := int64(int32(utils.SignExtend(b, width)))
	product := as * bs
	lo = utils.MaskWidth(uint32(product), width)
	hi = utils.MaskWidth(uint32(product>>uint(width)), width)
	c.updateNZ(lo, width)
	return lo, hi
}

// divUnsigned implements EXT02 DIV: quotient to the destination register,
// remainder to T. Division by zero is architecturally defined (not a Go
// panic) as all-ones quotient and the dividend as remainder, mirroring the
// "fails safe" convention the MMU/trap layer uses elsewhere for
// undefined-operand cases.
func (c *CPU) divUnsigned(a, b uint32, width int) (quotient, remainder uint32) {
	am := utils.MaskWidth(a, width)
	bm := utils.MaskWidth(b, width)
	if bm == 0 {
		q := widthMax(width)
		c.updateNZ(q, width)
		return q, am
	}
	q := am / bm
	r := am % bm
	c.updateNZ(q, width)
	return q, r
}

func (c *CPU) divSigned(a, b uint32, width int) (quotient, remainder uint32) {
	as := int32(utils.SignExtend(a, width))
	bs := int32(utils.SignExtend(b, width))
	if bs == 0 {
		q := widthMax(width)
		c.updateNZ(q, width)
		return q, utils.MaskWidth(a, width)
	}
	q := utils.MaskWidth(uint32(as/bs), width)
	r := utils.MaskWidth(uint32(as%bs), width)
	c.updateNZ(q, width)
	return q, r
}
