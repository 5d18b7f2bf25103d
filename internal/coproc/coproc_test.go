package coproc

import (
	"testing"

	"m65832/internal/bus"
)

func newTestCoproc(t *testing.T) (*Coprocessor, *bus.Bus) {
	t.Helper()
	b := bus.New(0x20000)
	// Plant a reset vector pointing at 0x0200 within the coprocessor's window.
	b.Write(0x1000+uint64(VecReset), 0x00, 1)
	b.Write(0x1000+uint64(VecReset)+1, 0x02, 1)
	cp := New(b, 0x1000)
	return cp, b
}

func TestResetLoadsPCFromVector(t *testing.T) {
	cp, _ := newTestCoproc(t)
	if cp.PC != 0x0200 {
		t.Errorf("PC = 0x%04X, want 0x0200", cp.PC)
	}
}

func TestLDAImmAndSTAZeroPage(t *testing.T) {
	cp, b := newTestCoproc(t)
	cp.PC = 0x0200
	b.Write(0x1000+0x0200, uint32(opLDAImm), 1)
	b.Write(0x1000+0x0201, 0x55, 1)
	b.Write(0x1000+0x0202, uint32(opSTAZp), 1)
	b.Write(0x1000+0x0203, 0x10, 1)

	cp.Step()
	cp.Step()
	if cp.A != 0x55 {
		t.Fatalf("A = 0x%02X, want 0x55", cp.A)
	}
	if got := b.Read(0x1000+0x10, 1); got != 0x55 {
		t.Errorf("zero page[0x10] = 0x%02X, want 0x55", got)
	}
}

func TestShadowBankWriteIsLoggedAndNotCommittedToMemory(t *testing.T) {
	cp, b := newTestCoproc(t)
	cp.ConfigureBank(0, 0x4000, true)
	cp.PC = 0x0200
	b.Write(0x1000+0x0200, uint32(opLDAImm), 1)
	b.Write(0x1000+0x0201, 0x7E, 1)
	b.Write(0x1000+0x0202, uint32(opSTAAbs), 1)
	b.Write(0x1000+0x0203, 0x00, 1)
	b.Write(0x1000+0x0204, 0x40, 1)

	cp.Step()
	cp.Step()

	events := cp.DrainShadowIO()
	if len(events) != 1 {
		t.Fatalf("got %d shadow events, want 1", len(events))
	}
	if events[0].Value != 0x7E || events[0].Register != 0 {
		t.Errorf("event = %+v, want value 0x7E at register 0", events[0])
	}
	if got := b.Read(0x1000+0x4000, 1); got != 0x00 {
		t.Errorf("backing memory at shadow bank = 0x%02X, want untouched 0x00", got)
	}
}

func TestNMIIsEdgeDetected(t *testing.T) {
	cp, b := newTestCoproc(t)
	b.Write(0x1000+uint64(VecNMI), 0x00, 1)
	b.Write(0x1000+uint64(VecNMI)+1, 0x03, 1)
	cp.PC = 0x0200
	b.Write(0x1000+0x0200, uint32(opNOP), 1)
	b.Write(0x1000+0x0300, uint32(opNOP), 1)

	cp.PulseNMI()
	cp.Step() // services the NMI, then fetches+executes the NOP at the vector
	if cp.PC != 0x0301 {
		t.Fatalf("PC after NMI = 0x%04X, want 0x0301 (vectored to 0x0300, then NOP fetched)", cp.PC)
	}
}
