package cpu

// Step executes exactly one instruction (or services one pending
// interrupt if Halted) and returns the trap, if any, that resulted — the
// CPU-core data flow from spec.md §2: "fetch via virtual address -> MMU
// translate -> physical read (possibly MMIO) -> decode -> compute operands
// -> execute -> commit state -> advance cycle counter -> check pending
// interrupts/timer -> poll debug hooks."
func (c *CPU) Step() TrapSnapshot {
	c.Trap = TrapSnapshot{}

	if c.Stopped {
		return c.Trap
	}

	if c.Halted {
		c.servicePendingTraps()
		if c.Trap.Kind == TrapNone {
			c.Tick()
		}
		c.pollDebugSignal()
		return c.Trap
	}

	if c.checkBreakpoints() {
		c.pollDebugSignal()
		return c.Trap
	}

	c.instPC = c.PC
	startPC := c.PC

	opcode, ok := c.fetchByte()
	if !ok {
		c.pollDebugSignal()
		return c.Trap
	}

	if c.Trace != nil {
		c.traceIfEnabled(startPC, []byte{opcode})
	}

	c.execute(opcode)

	if c.Trap.Kind == TrapNone {
		c.Cycles++
		c.Tick()
		c.servicePendingTraps()
	}

	c.pollDebugSignal()
	return c.Trap
}

// Run steps continuously until Stop is called, a breakpoint/watchpoint
// fires, or the debug mailbox requests a pause. It is the host-facing
// convenience loop; a remote-debugger or interactive-CLI collaborator
// (spec.md §6, out of scope here) drives Stop/pause through DebugSignal.
func (c *CPU) Run() TrapSnapshot {
	c.running = true
	for c.running && !c.Stopped {
		trap := c.Step()
		switch trap.Kind {
		case TrapNone:
		case TrapBreakpoint, TrapWatchpoint:
			c.running = false
			return trap
		default:
			// Other traps vector through the sequencer and execution
			// continues at the handler; Run does not stop for them.
		}
	}
	c.running = false
	return c.Trap
}

// Stop halts a Run loop at the next instruction boundary.
func (c *CPU) Stop() {
	c.running = false
}

// IsRunning reports whether a Run loop is currently active.
func (c *CPU) IsRunning() bool {
	return c.running
}
