package cpu

// Trap/interrupt priority order, highest first. The sequencer does not read
// this table: pendingTrapKind checks the asynchronous lines in the order
// ABORT, NMI, IRQ, and raiseTrap dispatches synchronous traps as they occur.
var trapPriority = []TrapKind{
	TrapABORT,
	TrapNMI,
	TrapPageFault,
	TrapIllegalOp,
	TrapPrivilege,
	TrapAlignment,
	TrapBreakpoint,
	TrapWatchpoint,
	TrapBRK,
	TrapCOP,
	TrapSyscall,
	TrapIRQ,
}

// raiseTrap latches the trap snapshot the host polls via Trap. ABORT, NMI
// and IRQ are marked pending so the sequencer vectors to them at the next
// instruction boundary. Breakpoints and watchpoints only leave the snapshot
// for the host and do not vector. Every other kind (page fault, illegal op,
// alignment, privilege, BRK/COP/SYSCALL) is dispatched immediately, since
// it interrupts the instruction that caused it rather than waiting for its
// retirement.
func (c *CPU) raiseTrap(kind TrapKind, addr uint32) {
	c.Trap = TrapSnapshot{Kind: kind, Addr: addr}
	switch kind {
	case TrapABORT:
		c.ABORTPending = true
	case TrapNMI:
		c.NMIPending = true
	case TrapIRQ:
		c.IRQPending = true
	case TrapBreakpoint, TrapWatchpoint:
		// Host-visible: Step returns with the snapshot set.
	default:
		c.dispatchTrap(kind, addr)
	}
}

// pendingTrapKind reports which asynchronous trap line, if any, is armed
// and not masked, in priority order.
func (c *CPU) pendingTrapKind() (TrapKind, bool) {
	if c.ABORTPending {
		return TrapABORT, true
	}
	if c.NMIPending {
		return TrapNMI, true
	}
	if c.IRQPending && !c.TestFlag(FlagI) {
		return TrapIRQ, true
	}
	return TrapNone, false
}

// servicePendingTraps is invoked by Step between instructions to vector
// through any armed asynchronous line (spec.md §5 step 1).
func (c *CPU) servicePendingTraps() {
	kind, ok := c.pendingTrapKind()
	if !ok {
		return
	}
	switch kind {
	case TrapABORT:
		c.ABORTPending = false
	case TrapNMI:
		c.NMIPending = false
	case TrapIRQ:
		c.IRQPending = false
	}
	c.Trap = TrapSnapshot{Kind: kind, Addr: c.PC}
	c.dispatchTrap(kind, c.PC)
}

// vectorFor resolves a trap kind to its vector address, choosing the
// legacy 16-bit vector table in emulation mode and the VBR-relative
// native table otherwise (spec.md §6).
func (c *CPU) vectorFor(kind TrapKind) (addr uint32, legacy bool) {
	if c.IsEmulation() {
		switch kind {
		case TrapNMI:
			return VecNMILegacy, true
		case TrapABORT:
			return VecABORTLegacy, true
		case TrapIRQ, TrapBRK, TrapCOP, TrapSyscall:
			return VecIRQLegacy, true
		default:
			return VecIRQLegacy, true
		}
	}

	switch kind {
	case TrapCOP:
		return c.VBR + VecCOPNative, false
	case TrapBRK:
		return c.VBR + VecBRKNative, false
	case TrapABORT:
		return c.VBR + VecABORTNative, false
	case TrapNMI:
		return c.VBR + VecNMINative, false
	case TrapIRQ:
		return c.VBR + VecIRQNative, false
	case TrapPageFault:
		return c.VBR + VecPageFaultNative, false
	case TrapSyscall:
		return c.VBR + VecSyscallNative, false
	default:
		return c.VBR + VecIllegalOpNative, false
	}
}

// dispatchTrap pushes the return context at the current stack width, sets
// supervisor mode and masks IRQ, then loads PC from the resolved vector
// (spec.md §5 steps 2-4). It never returns a Go error: the context is
// pushed straight to physical memory through the bus, without MMU
// translation, so the push sequence itself cannot fault.
func (c *CPU) dispatchTrap(kind TrapKind, faultAddr uint32) {
	returnPC := c.instPC
	if kind == TrapIRQ || kind == TrapNMI || kind == TrapABORT {
		returnPC = c.PC
	}

	vector, legacy := c.vectorFor(kind)

	if legacy {
		c.pushStack16(uint16(returnPC))
		c.pushStack8(byte(c.P))
	} else if c.StackWidth() == 32 {
		c.pushStack32(returnPC)
		c.pushStack32(c.P)
	} else {
		c.pushStack16(uint16(returnPC))
		c.pushStack16(uint16(c.P))
	}

	c.SetFlag(FlagI, true)
	c.SetFlag(FlagD, false)
	wasSupervisor := c.IsSupervisor()
	c.SetFlag(FlagS, true)
	_ = wasSupervisor

	if legacy {
		c.PC = uint32(c.Bus.Read(uint64(vector), 2))
	} else {
		c.PC = c.Bus.Read(uint64(vector), 4)
	}
	c.instPC = c.PC
	c.Halted = false
}

func (c *CPU) pushStack8(v byte) {
	c.Bus.Write(uint64(c.S), uint32(v), 1)
	c.S--
}

func (c *CPU) pushStack16(v uint16) {
	c.Bus.Write(uint64(c.S-1), uint32(v), 2)
	c.S -= 2
}

func (c *CPU) pushStack32(v uint32) {
	c.Bus.Write(uint64(c.S-3), v, 4)
	c.S -= 4
}

func (c *CPU) pullStack8() byte {
	c.S++
	return byte(c.Bus.Read(uint64(c.S), 1))
}

func (c *CPU) pullStack16() uint16 {
	c.S += 2
	return uint16(c.Bus.Read(uint64(c.S-1), 2))
}

func (c *CPU) pullStack32() uint32 {
	c.S += 4
	return c.Bus.Read(uint64(c.S-3), 4)
}

// rti implements RTI: pull status then PC (reverse push order), and honor
// a mode switch if P.E changed via the pulled flags in native mode.
func (c *CPU) rti() {
	if c.IsEmulation() {
		c.P = (c.P &^ 0xFF) | uint32(c.pullStack8())
		c.syncEflag()
		c.PC = uint32(c.pullStack16())
		return
	}
	if c.StackWidth() == 32 {
		c.P = c.pullStack32()
		c.syncEflag()
		c.PC = c.pullStack32()
		return
	}
	c.P = uint32(c.pullStack16())
	c.syncEflag()
	c.PC = uint32(c.pullStack16())
}

// wai implements WAI: halt fetch/execute until any pending interrupt line
// (spec.md §4.9 "WAI/STP").
func (c *CPU) wai() {
	c.Halted = true
}

// stp implements STP: stop the clock entirely; only a reset resumes.
func (c *CPU) stp() {
	c.Stopped = true
}
