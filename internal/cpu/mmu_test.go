package cpu

import "testing"

func TestTranslateIdentityWhenPagingDisabled(t *testing.T) {
	c := newTestCPU(t)
	pa, f := c.translate(0x1234, accessRead)
	if f != nil {
		t.Fatalf("unexpected fault: %+v", f)
	}
	if pa != 0x1234 {
		t.Errorf("pa = 0x%X, want identity 0x1234", pa)
	}
}

func TestWalkPageTableL1NotPresentFaults(t *testing.T) {
	c := newTestCPU(t)
	c.MMU.MMUCR |= MMUCRPagingEnable
	c.MMU.PTBR = 0x1000

	_, f := c.translate(0x00400000, accessRead)
	if f == nil {
		t.Fatal("expected fault, got none")
	}
	if f.kind != FaultL1NotPresent {
		t.Errorf("fault kind = %d, want FaultL1NotPresent", f.kind)
	}
}

func TestWalkPageTableResolvesMappedPage(t *testing.T) {
	c := newTestCPU(t)
	c.MMU.MMUCR |= MMUCRPagingEnable
	c.MMU.PTBR = 0x2000

	const l1Table = uint64(0x2000)
	const l2Table = uint64(0x3000)
	const physPage = uint64(0x9000)

	// L1 entry 0 points at the L2 table; present + writable + user so a
	// non-supervisor read succeeds.
	l1pte := l2Table | pteBitPresent | pteBitWritable | pteBitUser
	c.Bus.Write(l1Table, uint32(l1pte), 4)
	c.Bus.Write(l1Table+4, uint32(l1pte>>32), 4)

	l2pte := physPage | pteBitPresent | pteBitWritable | pteBitUser
	c.Bus.Write(l2Table, uint32(l2pte), 4)
	c.Bus.Write(l2Table+4, uint32(l2pte>>32), 4)

	c.SetFlag(FlagS, true) // supervisor, though U=1 would pass either way
	pa, f := c.translate(0x00000010, accessRead)
	if f != nil {
		t.Fatalf("unexpected fault: %+v", f)
	}
	if pa != physPage+0x10 {
		t.Errorf("pa = 0x%X, want 0x%X", pa, physPage+0x10)
	}
}

func TestWriteProtectedPageFaultsOnWriteFromUser(t *testing.T) {
	c := newTestCPU(t)
	c.MMU.MMUCR |= MMUCRPagingEnable
	c.MMU.PTBR = 0x4000
	c.SetFlag(FlagS, false) // user mode

	l2Table := uint64(0x5000)
	l1pte := l2Table | pteBitPresent | pteBitUser
	c.Bus.Write(0x4000, uint32(l1pte), 4)
	c.Bus.Write(0x4004, uint32(l1pte>>32), 4)

	l2pte := uint64(0xA000) | pteBitPresent | pteBitUser // no writable bit
	c.Bus.Write(l2Table, uint32(l2pte), 4)
	c.Bus.Write(l2Table+4, uint32(l2pte>>32), 4)

	_, f := c.translate(0, accessWrite)
	if f == nil || f.kind != FaultWriteProtect {
		t.Fatalf("expected FaultWriteProtect, got %+v", f)
	}
}
