package cpu

// Legacy (emulation-mode) vectors, per spec.md §6.
const (
	VecResetLegacy = 0xFFFC
	VecNMILegacy   = 0xFFFA
	VecIRQLegacy   = 0xFFFE
	VecABORTLegacy = 0xFFF8
)

// Native vectors are offsets from VBR, per spec.md §6.
const (
	VecCOPNative        = 0xFFE4
	VecBRKNative        = 0xFFE6
	VecABORTNative       = 0xFFE8
	VecNMINative        = 0xFFEA
	VecIRQNative        = 0xFFEE
	VecPageFaultNative  = 0xFFD0
	VecSyscallNative    = 0xFFD4
	VecIllegalOpNative  = 0xFFF8
)

// Reset restores the CPU to its power-on state: E=1, I=1, D=0, PC loaded
// from the 16-bit reset vector at 0xFFFC, traps and interrupt lines
// cleared (spec.md §3: "Lifecycles").
func (c *CPU) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.S = 0x0000_01FF
	c.D = 0
	c.B = 0
	c.VBR = 0
	c.T = 0

	c.P = 0
	c.SetFlag(FlagM0, false) // W=00 (emulation): M0/M1 both clear, per W()
	c.SetFlag(FlagM1, false)
	c.SetFlag(FlagX0, false)
	c.SetFlag(FlagX1, false)
	c.SetFlag(FlagI, true)
	c.SetFlag(FlagD, false)
	c.syncEflag()

	c.F = [16]uint64{}
	c.RegWindow = [RegWindowSize]uint32{}

	c.MMU = MMUState{}
	c.Timer = TimerState{}
	c.LLSC = Reservation{}

	c.IRQPending = false
	c.NMIPending = false
	c.ABORTPending = false
	c.Halted = false
	c.Stopped = false

	c.Trap = TrapSnapshot{}

	c.PC = uint32(c.Bus.Read(VecResetLegacy, 2))
	c.instPC = c.PC

	c.Cycles = 0
	c.running = false
}
