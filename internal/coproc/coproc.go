// Package coproc implements the embedded 6502/65C02 coprocessor: a
// sub-interpreter sharing the main CPU's physical address space through a
// configurable VBR window (spec.md §4.8). Its timing counts one cycle per
// instruction.
//
// It is grounded on awesomeVM's internal/mips (CPU+COP0 split) for its
// overall struct shape and on the pack's 6502 reference material
// (beevik-go6502's opcode-table layout, jmchacon-6502's cycle-batched Step
// loop) for 6502-specific behavior.
package coproc

import "m65832/internal/bus"

// BankCount and BankSize describe the four shadow-I/O windows (spec.md
// §4.8: "Four shadow-I/O banks, each 64 bytes").
const (
	BankCount = 4
	BankSize  = 64
)

// FIFODepth is the shadow-I/O write log capacity (spec.md §4.8/GLOSSARY:
// "a 256-entry log of writes... consumed by the host").
const FIFODepth = 256

// Status flags, in the classic 6502 P register bit order.
const (
	FlagC = 1 << 0
	FlagZ = 1 << 1
	FlagI = 1 << 2
	FlagD = 1 << 3
	FlagB = 1 << 4
	Flag1 = 1 << 5 // always set
	FlagV = 1 << 6
	FlagN = 1 << 7
)

// Vectors, vbr-relative (the coprocessor's own 16-bit address space).
const (
	VecNMI   = 0xFFFA
	VecReset = 0xFFFC
	VecIRQ   = 0xFFFE
)

// ShadowIOEvent is one FIFO entry: a single write observed on a shadow
// bank (spec.md §4.8: "{frame, cycle, bank, register, value}").
type ShadowIOEvent struct {
	Frame    uint32
	Cycle    uint32
	Bank     int
	Register uint8
	Value    byte
}

// ShadowBank is one 64-byte intercepted I/O window.
type ShadowBank struct {
	Base   uint16
	Active bool
	Regs   [BankSize]byte
}

// Compat holds the 6502-family compatibility switches.
type Compat struct {
	BCD         bool // decimal-mode ADC/SBC when P.D=1
	CMOS        bool // clears D on interrupt entry; PHX/PLX/PHY/PLY/STZ/BRA decode whatever its value, TRB/TSB are not implemented
	NMOSIllegal bool // not read: every undefined opcode runs as a one-byte NOP
}

// Coprocessor is the 6502/65C02 sub-interpreter's full architectural
// state.
type Coprocessor struct {
	A, X, Y, S byte
	P          byte
	PC         uint16

	VBR uint32 // offset into the shared bus this coprocessor's 64 KiB window starts at
	Bus *bus.Bus

	Banks [BankCount]ShadowBank
	FIFO  []ShadowIOEvent

	CyclesPerLine uint32
	LinesPerFrame uint32
	frame, line   uint32
	cycle         uint32

	Compat Compat

	irqLevel   bool
	nmiPending bool
	nmiPrev    bool

	stopped bool
}

// New constructs a coprocessor sharing busRef's physical memory, occupying
// the 64 KiB window starting at vbr.
func New(busRef *bus.Bus, vbr uint32) *Coprocessor {
	cp := &Coprocessor{
		Bus:           busRef,
		VBR:           vbr,
		CyclesPerLine: 65,
		LinesPerFrame: 262,
	}
	cp.Reset()
	return cp
}

// Reset restores power-on state and loads PC from the reset vector.
func (cp *Coprocessor) Reset() {
	cp.A, cp.X, cp.Y = 0, 0, 0
	cp.S = 0xFD
	cp.P = Flag1 | FlagI
	cp.frame, cp.line, cp.cycle = 0, 0, 0
	cp.irqLevel = false
	cp.nmiPending = false
	cp.nmiPrev = false
	cp.stopped = false
	cp.PC = cp.readWord(VecReset)
}

// SetVBR relocates the coprocessor's 64 KiB window within the shared bus.
func (cp *Coprocessor) SetVBR(vbr uint32) {
	cp.VBR = vbr
}

// ConfigureBank arms or disarms one shadow-I/O bank at a 16-bit base
// within the coprocessor's window.
func (cp *Coprocessor) ConfigureBank(index int, base uint16, active bool) {
	cp.Banks[index].Base = base
	cp.Banks[index].Active = active
}

// PokeBank sets a shadow-I/O register directly from the host side, for
// peripherals like a keyboard feeder that drive a bank's "data ready" /
// "key value" registers (spec.md §4.8: shadow banks double as a common
// 6502-host peripheral window) without going through the FIFO write log,
// which only records writes made by the running 6502 program itself.
func (cp *Coprocessor) PokeBank(index int, reg uint8, value byte) {
	cp.Banks[index].Regs[reg] = value
}

// SetIRQLevel drives the level-triggered IRQ line.
func (cp *Coprocessor) SetIRQLevel(asserted bool) {
	cp.irqLevel = asserted
}

// PulseNMI edge-triggers NMI; it is latched against the previous sampled
// state in checkInterrupts (spec.md §4.8: "NMI is edge-detected by
// comparing nmi_pending and nmi_prev").
func (cp *Coprocessor) PulseNMI() {
	cp.nmiPending = true
}

// Stop requests RunCycles exit at the next instruction boundary (spec.md
// §5: "the host may set a 'stop' flag observed at the top of each step").
func (cp *Coprocessor) Stop() {
	cp.stopped = true
}

// bankFor returns the active bank containing addr within the
// coprocessor's 16-bit window, or nil.
func (cp *Coprocessor) bankFor(addr uint16) (*ShadowBank, uint8) {
	for i := range cp.Banks {
		b := &cp.Banks[i]
		if b.Active && addr >= b.Base && int(addr)-int(b.Base) < BankSize {
			return b, uint8(addr - b.Base)
		}
	}
	return nil, 0
}

// logShadowWrite appends a FIFO entry, dropping the oldest once full
// (spec.md §4.8 names a fixed 256-entry FIFO; we treat it as a ring so a
// slow host consumer loses the oldest event rather than the core
// blocking).
func (cp *Coprocessor) logShadowWrite(bankIdx int, reg uint8, value byte) {
	evt := ShadowIOEvent{Frame: cp.frame, Cycle: cp.cycle, Bank: bankIdx, Register: reg, Value: value}
	if len(cp.FIFO) >= FIFODepth {
		cp.FIFO = cp.FIFO[1:]
	}
	cp.FIFO = append(cp.FIFO, evt)
}

// DrainShadowIO returns and clears all pending shadow-I/O events.
func (cp *Coprocessor) DrainShadowIO() []ShadowIOEvent {
	out := cp.FIFO
	cp.FIFO = nil
	return out
}

// advanceTiming steps the scanline counters by one cycle and wraps frame
// at LinesPerFrame*CyclesPerLine.
func (cp *Coprocessor) advanceTiming() {
	cp.cycle++
	if cp.cycle >= cp.CyclesPerLine {
		cp.cycle = 0
		cp.line++
		if cp.line >= cp.LinesPerFrame {
			cp.line = 0
			cp.frame++
		}
	}
}
