package cpu

import "m65832/internal/utils"

// W returns the width selector derived from the M1:M0 bit pair (spec.md
// §3: "the four W states are {emulation=00, 65816-native=01, reserved=10,
// 32-bit-native=11}").
func (c *CPU) W() uint32 {
	m0 := (c.P & FlagM0) != 0
	m1 := (c.P & FlagM1) != 0
	var w uint32
	if m0 {
		w |= 0b01
	}
	if m1 {
		w |= 0b10
	}
	return w
}

// IsEmulation reports the derived E alias: E == (W==00). This is
// recomputed from M0/M1 rather than stored, so it can never drift from
// its derivation (spec.md §8: "For all W states, the derived E bit equals
// (W==00)").
func (c *CPU) IsEmulation() bool {
	return c.W() == WEmulation
}

// syncEflag mirrors the derived E bit into P.E so code that inspects the
// flags word directly (e.g. a debugger dumping P) still sees a consistent
// picture. It must be called after any write to M0/M1.
func (c *CPU) syncEflag() {
	if c.IsEmulation() {
		c.P |= FlagE
	} else {
		c.P &^= FlagE
	}
}

// MWidth returns the width in bits (8, 16, or 32) that governs the
// accumulator and memory operands for arithmetic, per spec.md §4.3: "M
// flag governs A and memory operands for arithmetic... W=11 forces both
// wide regardless of M/X."
func (c *CPU) MWidth() int {
	if c.W() == WNative32 {
		return 32
	}
	if c.IsEmulation() {
		return 8
	}
	if c.P&FlagM0 != 0 {
		return 8
	}
	return 16
}

// XWidth returns the width in bits governing X/Y and index arithmetic.
func (c *CPU) XWidth() int {
	if c.W() == WNative32 {
		return 32
	}
	if c.IsEmulation() {
		return 8
	}
	if c.P&FlagX0 != 0 {
		return 8
	}
	return 16
}

// StackWidth returns the width of S (spec.md §3: "S (stack pointer), 16 or
// 32 bits by mode").
func (c *CPU) StackWidth() int {
	if c.W() == WNative32 {
		return 32
	}
	return 16
}

// IsSupervisor reports the privilege level (P.S).
func (c *CPU) IsSupervisor() bool { return c.P&FlagS != 0 }

// RegWindowEnabled reports whether direct-page accesses are redirected to
// the register window (P.R).
func (c *CPU) RegWindowEnabled() bool { return c.P&FlagR != 0 }

// IllegalAsNOP reports whether illegal opcodes should decode as NOP (P.K).
func (c *CPU) IllegalAsNOP() bool { return c.P&FlagK != 0 }

// SetFlag sets or clears a single status bit, re-deriving E if M0/M1 were
// touched.
func (c *CPU) SetFlag(mask uint32, on bool) {
	if on {
		c.P |= mask
	} else {
		c.P &^= mask
	}
	if mask&(FlagM0|FlagM1) != 0 {
		c.syncEflag()
	}
}

// TestFlag reports whether every bit in mask is set.
func (c *CPU) TestFlag(mask uint32) bool {
	return c.P&mask == mask
}

// updateNZ sets N and Z from value interpreted at the given width.
func (c *CPU) updateNZ(value uint32, width int) {
	masked := utils.MaskWidth(value, width)
	c.SetFlag(FlagZ, masked == 0)
	c.SetFlag(FlagN, utils.SignBit(masked, width))
}
