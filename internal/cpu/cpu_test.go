package cpu

import "testing"

func newTestCPU(t *testing.T) *CPU {
	t.Helper()
	c, err := New(0x10000)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestResetEntersEmulationMode(t *testing.T) {
	c := newTestCPU(t)
	if !c.IsEmulation() {
		t.Error("expected emulation mode after reset")
	}
	if c.MWidth() != 8 || c.XWidth() != 8 {
		t.Errorf("MWidth/XWidth = %d/%d, want 8/8", c.MWidth(), c.XWidth())
	}
}

func TestLoadImmediateAndStoreDirectPage(t *testing.T) {
	c := newTestCPU(t)
	c.WriteBlock(0, []byte{opLDAImm, 0x42, opSTADP, 0x10})
	c.Step()
	c.Step()
	if c.A != 0x42 {
		t.Fatalf("A = 0x%X, want 0x42", c.A)
	}
	if got := c.ReadMemory(0x10, 1); got != 0x42 {
		t.Errorf("memory[0x10] = 0x%X, want 0x42", got)
	}
}

func TestSEPChangesWidthEvenInEmulationMode(t *testing.T) {
	c := newTestCPU(t)
	if !c.IsEmulation() {
		t.Fatal("expected to start in emulation mode")
	}
	c.WriteBlock(0, []byte{opSEP, FlagM0 | FlagM1})
	c.Step()
	if c.MWidth() != 32 {
		t.Errorf("MWidth after SEP = %d, want 32 (emulation mode must not block width changes)", c.MWidth())
	}
}

func TestIllegalOpcodeTrapsByDefault(t *testing.T) {
	c := newTestCPU(t)
	c.WriteBlock(0, []byte{0xFF}) // not a defined opcode in this ISA
	trap := c.Step()
	if trap.Kind != TrapIllegalOp {
		t.Errorf("trap kind = %v, want TrapIllegalOp", trap.Kind)
	}
}

func TestIllegalAsNOPWhenKFlagSet(t *testing.T) {
	c := newTestCPU(t)
	c.SetFlag(FlagK, true)
	c.WriteBlock(0, []byte{0xFF, opNOP})
	trap := c.Step()
	if trap.Kind != TrapNone {
		t.Errorf("trap kind = %v, want TrapNone when P.K masks illegal opcodes", trap.Kind)
	}
}

func TestBreakpointStopsBeforeFetch(t *testing.T) {
	c := newTestCPU(t)
	c.WriteBlock(0, []byte{opNOP, opNOP})
	c.AddBreakpoint(1)
	c.Step() // executes the NOP at 0
	trap := c.Step()
	if trap.Kind != TrapBreakpoint {
		t.Errorf("trap kind = %v, want TrapBreakpoint", trap.Kind)
	}
	if c.PC != 1 {
		t.Errorf("PC = %d, want 1 (should not have advanced past the breakpoint)", c.PC)
	}
}
