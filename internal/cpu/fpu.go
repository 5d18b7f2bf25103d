package cpu

import "math"

// fpuRegPair fetches the Fd/Fs selector byte (high nibble Fd, low nibble
// Fs), per spec.md §3: "FPU register file: sixteen 64-bit entries F0..F15,
// two-operand destructive form Fd = Fd op Fs."
func (c *CPU) fpuRegPair() (fd, fs int, ok bool) {
	b, ok := c.fetchByte()
	if !ok {
		return 0, 0, false
	}
	return int(b >> 4), int(b & 0xF), true
}

func (c *CPU) fpuBinOp(op func(a, b float64) float64) bool {
	fd, fs, ok := c.fpuRegPair()
	if !ok {
		return false
	}
	a := math.Float64frombits(c.F[fd])
	b := math.Float64frombits(c.F[fs])
	r := op(a, b)
	c.F[fd] = math.Float64bits(r)
	c.SetFlag(FlagZ, r == 0)
	c.SetFlag(FlagN, r < 0)
	return true
}

// fpuCompare sets C/Z/N from Fd - Fs without writing back, mirroring the
// integer compare family's flag convention.
func (c *CPU) fpuCompare() bool {
	fd, fs, ok := c.fpuRegPair()
	if !ok {
		return false
	}
	a := math.Float64frombits(c.F[fd])
	b := math.Float64frombits(c.F[fs])
	c.SetFlag(FlagZ, a == b)
	c.SetFlag(FlagN, a < b)
	c.SetFlag(FlagC, a >= b)
	return true
}

// fpuIntToFloat converts A (as a signed 32-bit value) into the selected F
// register.
func (c *CPU) fpuIntToFloat() bool {
	fd, _, ok := c.fpuRegPair()
	if !ok {
		return false
	}
	c.F[fd] = math.Float64bits(float64(int32(c.A)))
	return true
}

// fpuFloatToInt converts the selected F register into A, truncating
// toward zero. Rounding-mode and denormal behavior follow host semantics
// (spec.md §1 non-goals: "the core exposes only the ISA-visible FPU
// register file and operations").
func (c *CPU) fpuFloatToInt() bool {
	fd, _, ok := c.fpuRegPair()
	if !ok {
		return false
	}
	v := math.Float64frombits(c.F[fd])
	c.A = uint32(int32(v))
	c.updateNZ(c.A, c.MWidth())
	return true
}
