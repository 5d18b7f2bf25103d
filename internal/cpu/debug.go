package cpu

// checkBreakpoints raises TrapBreakpoint if PC matches an enabled
// breakpoint (spec.md §4.9). Returns true if execution should stop before
// fetching.
func (c *CPU) checkBreakpoints() bool {
	for _, bp := range c.Breakpoints {
		if bp.Enabled && bp.Addr == c.PC {
			c.raiseTrap(TrapBreakpoint, c.PC)
			return true
		}
	}
	return false
}

// checkWatchpoint raises TrapWatchpoint when addr matches an enabled
// watchpoint for the given access direction. Called from readVirtual's and
// writeVirtual's callers at the point a memory operand's address is known,
// before the access commits.
func (c *CPU) checkWatchpoint(addr uint32, isWrite bool) bool {
	for _, wp := range c.Watchpoints {
		if !wp.Enabled || wp.Addr != addr {
			continue
		}
		if (isWrite && wp.OnWrite) || (!isWrite && wp.OnRead) {
			c.raiseTrap(TrapWatchpoint, addr)
			return true
		}
	}
	return false
}

// AddBreakpoint arms a PC breakpoint.
func (c *CPU) AddBreakpoint(addr uint32) {
	c.Breakpoints = append(c.Breakpoints, Breakpoint{Addr: addr, Enabled: true})
}

// RemoveBreakpoint disarms and drops any breakpoint at addr.
func (c *CPU) RemoveBreakpoint(addr uint32) {
	kept := c.Breakpoints[:0]
	for _, bp := range c.Breakpoints {
		if bp.Addr != addr {
			kept = append(kept, bp)
		}
	}
	c.Breakpoints = kept
}

// AddWatchpoint arms a read/write watchpoint on addr.
func (c *CPU) AddWatchpoint(addr uint32, onRead, onWrite bool) {
	c.Watchpoints = append(c.Watchpoints, Watchpoint{Addr: addr, OnRead: onRead, OnWrite: onWrite, Enabled: true})
}

// RemoveWatchpoint disarms and drops any watchpoint at addr.
func (c *CPU) RemoveWatchpoint(addr uint32) {
	kept := c.Watchpoints[:0]
	for _, wp := range c.Watchpoints {
		if wp.Addr != addr {
			kept = append(kept, wp)
		}
	}
	c.Watchpoints = kept
}

// pollDebugSignal drains one pending request from the debug mailbox
// (spec.md §5's concurrency model): a second goroutine driving a REPL or
// remote-debugger collaborator sets IRQRequested/PauseRequested under
// Debug.Mu, and Step consults them at most once per instruction so no lock
// is held across an architectural step.
func (c *CPU) pollDebugSignal() {
	if c.Debug == nil {
		return
	}
	c.Debug.Mu.Lock()
	irq := c.Debug.IRQRequested
	c.Debug.IRQRequested = false
	pause := c.Debug.PauseRequested
	c.Debug.PauseRequested = false
	c.Debug.Mu.Unlock()

	if irq {
		c.IRQPending = true
	}
	if pause {
		c.running = false
	}
}

// traceIfEnabled invokes the configured trace hook with the instruction's
// start PC and the raw bytes fetched for it.
func (c *CPU) traceIfEnabled(pc uint32, opcodeBytes []byte) {
	if c.Trace != nil {
		c.Trace(pc, opcodeBytes)
	}
}
