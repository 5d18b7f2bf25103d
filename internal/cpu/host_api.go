package cpu

// ReadMemory reads width (1/2/4) bytes from a physical address, going
// through the MMIO table exactly as the interpreter's own fetch/load path
// does. It is the direct physical-access half of the host contract from
// spec.md §6. Virtual-address host access is not provided, and the package
// exports no address-translation call.
func (c *CPU) ReadMemory(addr uint64, width int) uint32 {
	return c.Bus.Read(addr, width)
}

// WriteMemory writes width bytes to a physical address.
func (c *CPU) WriteMemory(addr uint64, value uint32, width int) {
	c.Bus.Write(addr, value, width)
}

// ReadBlock copies size bytes out of physical memory.
func (c *CPU) ReadBlock(addr uint64, size int) ([]byte, error) {
	return c.Bus.ReadBlock(addr, size)
}

// WriteBlock copies data into physical memory at addr (the loader's entry
// point; ELF/HEX/raw ingestion is an external collaborator that calls this
// once it has parsed a file into bytes, per spec.md §6).
func (c *CPU) WriteBlock(addr uint64, data []byte) error {
	return c.Bus.LoadBlock(addr, data)
}

// RegisterMMIO installs an MMIO region on the CPU's bus.
func (c *CPU) RegisterMMIO(base, size uint64, read func(addr, offset uint64, width int) uint32, write func(addr, offset uint64, value uint32, width int), name string) error {
	return c.Bus.RegisterMMIO(base, size, read, write, name)
}

// UnregisterMMIO removes the MMIO region at base, if any.
func (c *CPU) UnregisterMMIO(base uint64) {
	c.Bus.UnregisterMMIO(base)
}

// TrapName returns the stable string name for a trap kind (spec.md §6).
func TrapName(kind TrapKind) string {
	return kind.String()
}

// SetIRQ raises or clears the level-triggered IRQ line.
func (c *CPU) SetIRQ(asserted bool) {
	c.IRQPending = asserted
}

// PulseNMI edge-triggers an NMI (spec.md §3: "NMI-pending (edge-latched)").
func (c *CPU) PulseNMI() {
	c.NMIPending = true
}

// PulseABORT raises the ABORT line for one service cycle.
func (c *CPU) PulseABORT() {
	c.ABORTPending = true
}

// EnterNative32 is a convenience that forces W=11 (32-bit-native mode) by
// setting M0/M1, matching how a real boot sequence transitions out of
// emulation mode with SEP/REP-equivalent direct flag writes.
func (c *CPU) EnterNative32() {
	c.SetFlag(FlagM0, true)
	c.SetFlag(FlagM1, true)
	c.SetFlag(FlagX0, true)
	c.SetFlag(FlagX1, true)
}

// EnableTrace installs a trace callback invoked before every instruction.
func (c *CPU) EnableTrace(fn TraceFunc) {
	c.Trace = fn
}

// DisableTrace removes any installed trace callback.
func (c *CPU) DisableTrace() {
	c.Trace = nil
}

// AttachDebugSignal wires a shared mailbox a second goroutine (an
// interactive-CLI or remote-debugger collaborator, both out of scope
// here) can use to request a pause or post a synthetic IRQ between steps.
func (c *CPU) AttachDebugSignal(sig *DebugSignal) {
	c.Debug = sig
}
