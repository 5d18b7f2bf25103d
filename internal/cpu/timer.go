package cpu

// Tick advances the timer peripheral by one cycle, latching an IRQ
// request and optionally auto-resetting the counter on compare match
// (spec.md §4.7: "32-bit compare timer... on match, optionally auto-reset
// the counter and latch an IRQ").
func (c *CPU) Tick() {
	if c.Timer.Control&TimerEnable == 0 {
		return
	}

	c.Timer.Counter++
	if c.Timer.Counter != c.Timer.Compare {
		return
	}

	c.Timer.LatchedAt = c.Timer.Counter
	c.Timer.Control |= TimerIRQPend
	if c.Timer.Control&TimerAutoReset != 0 {
		c.Timer.Counter = 0
	}
	if c.Timer.Control&TimerIRQEnable != 0 {
		c.IRQPending = true
	}
}
