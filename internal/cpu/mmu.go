package cpu

// MMUCR bit layout (spec.md §4.2/§6).
const (
	MMUCRPagingEnable = 1 << 0
	MMUCRWriteProtect = 1 << 1
	mmucrFaultShift   = 2
	mmucrFaultMask    = 0x7 << mmucrFaultShift
)

// Fault types recorded in MMUCR[4:2] on translation failure.
const (
	FaultNone = iota
	FaultL1NotPresent
	FaultL2NotPresent
	FaultNotPresent
	FaultUserSuper
	FaultWriteProtect
	FaultNoExecute
)

// PTE layout (spec.md §6 / §9 Open Question, resolved): bit 0 present,
// bit 1 writable, bit 2 user, bit 3 PWT, bit 4 PCD, bit 9 accessed,
// bit 10 dirty, bit 11 global, bit 63 NX, PPN in bits [62:12]. The NX bit
// and the top bit of the naive "PPN covers the whole top half" reading
// overlap; we fix the convention explicitly here rather than guess.
const (
	pteBitPresent  = 1 << 0
	pteBitWritable = 1 << 1
	pteBitUser     = 1 << 2
	pteBitPWT      = 1 << 3
	pteBitPCD      = 1 << 4
	pteBitAccessed = 1 << 9
	pteBitDirty    = 1 << 10
	pteBitGlobal   = 1 << 11
	pteBitNX       = uint64(1) << 63
	ptePPNMask     = uint64(0x7FFFFFFFFFFFF000) // bits [62:12]
)

const pageSize = 4096
const pageOffsetBits = 12

// accessKind distinguishes the permission checks a translation must run.
type accessKind int

const (
	accessRead accessKind = iota
	accessWrite
	accessExecute
)

// faultError is returned internally by translate; it is never a Go
// `error` surfaced to the host — per spec.md §7.1 it is recovered by
// vectoring through the trap sequencer before Step returns.
type faultError struct {
	kind int
	va   uint32
}

// translate converts a virtual address to a physical address, consulting
// the TLB first and walking the two-level page table on a miss (spec.md
// §4.2). When MMUCR.PG=0, translation is the identity function and never
// faults.
func (c *CPU) translate(va uint32, kind accessKind) (uint64, *faultError) {
	if c.MMU.MMUCR&MMUCRPagingEnable == 0 {
		return uint64(va), nil
	}

	vpn := va &^ (pageSize - 1)
	offset := uint64(va) & (pageSize - 1)

	if e, ok := c.lookupTLB(vpn); ok {
		if f := c.checkPermission(e, va, kind); f != nil {
			return 0, f
		}
		return uint64(e.PPN)&ptePPNMaskPhys() | offset, nil
	}

	entry, f := c.walkPageTable(va)
	if f != nil {
		return 0, f
	}
	if f := c.checkPermission(entry, va, kind); f != nil {
		return 0, f
	}
	c.insertTLB(vpn, entry)
	return uint64(entry.PPN)&ptePPNMaskPhys() | offset, nil
}

// ptePPNMaskPhys clears the page-offset bits of a cached PPN, which is
// already a page-aligned physical base. The "PPN is bits [62:12], not the
// whole top half" convention is applied earlier, by ptePPNMask in
// walkPageTable.
func ptePPNMaskPhys() uint64 { return ^uint64(pageSize - 1) }

func (c *CPU) lookupTLB(vpn uint32) (TLBEntry, bool) {
	for _, e := range c.MMU.TLB {
		if !e.Valid || e.VPN != vpn {
			continue
		}
		if e.Global || e.ASID == c.MMU.ASID {
			return e, true
		}
	}
	return TLBEntry{}, false
}

func (c *CPU) insertTLB(vpn uint32, e TLBEntry) {
	e.VPN = vpn
	if !e.Global {
		e.ASID = c.MMU.ASID
	}
	e.Valid = true
	c.MMU.TLB[c.MMU.tlbNext] = e
	c.MMU.tlbNext = (c.MMU.tlbNext + 1) % TLBSize
}

// walkPageTable performs the two-level 4 KiB-page walk: VA[31:22] selects
// the L1 entry, VA[21:12] the L2 entry (spec.md §4.2).
func (c *CPU) walkPageTable(va uint32) (TLBEntry, *faultError) {
	l1Index := uint64(va>>22) & 0x3FF
	l2Index := uint64(va>>12) & 0x3FF

	l1TableAddr := c.MMU.PTBR
	l1PTEAddr := l1TableAddr + l1Index*8
	l1pte := c.readPTE(l1PTEAddr)
	if l1pte&pteBitPresent == 0 {
		return TLBEntry{}, &faultError{kind: FaultL1NotPresent, va: va}
	}

	l2TableAddr := l1pte & ptePPNMask
	l2PTEAddr := l2TableAddr + l2Index*8
	l2pte := c.readPTE(l2PTEAddr)
	if l2pte&pteBitPresent == 0 {
		// The leaf PTE itself is absent. FAULT_L2_NOT_PRESENT is reserved
		// for a missing L2 table pointer, which cannot occur once the L1
		// walk above has already succeeded in this flat two-level scheme;
		// an absent leaf is FAULT_NOT_PRESENT per spec.md §4.2 step 2.
		return TLBEntry{}, &faultError{kind: FaultNotPresent, va: va}
	}

	ppn := l2pte & ptePPNMask
	return TLBEntry{
		PPN:        uint32(ppn),
		Present:    l2pte&pteBitPresent != 0,
		Writable:   l2pte&pteBitWritable != 0,
		User:       l2pte&pteBitUser != 0,
		Executable: l2pte&pteBitNX == 0,
		Dirty:      l2pte&pteBitDirty != 0,
		Accessed:   l2pte&pteBitAccessed != 0,
		Global:     l2pte&pteBitGlobal != 0,
	}, nil
}

func (c *CPU) readPTE(addr uint64) uint64 {
	lo := uint64(c.Bus.Read(addr, 4))
	hi := uint64(c.Bus.Read(addr+4, 4))
	return lo | hi<<32
}

// checkPermission applies the rule from spec.md §4.2 step 3: user access
// to !U -> FAULT_USER_SUPER; write to !W -> FAULT_WRITE_PROTECT unless
// supervisor and MMUCR.WP=0; fetch from NX -> FAULT_NO_EXECUTE.
func (c *CPU) checkPermission(e TLBEntry, va uint32, kind accessKind) *faultError {
	if !c.IsSupervisor() && !e.User {
		return &faultError{kind: FaultUserSuper, va: va}
	}
	if kind == accessWrite && !e.Writable {
		bypass := c.IsSupervisor() && c.MMU.MMUCR&MMUCRWriteProtect == 0
		if !bypass {
			return &faultError{kind: FaultWriteProtect, va: va}
		}
	}
	if kind == accessExecute && !e.Executable {
		return &faultError{kind: FaultNoExecute, va: va}
	}
	return nil
}

// latchFault records FAULTVA and the MMUCR fault-type field, per spec.md
// §4.2 step 5.
func (c *CPU) latchFault(f *faultError) {
	c.MMU.FaultVA = f.va
	c.MMU.MMUCR = (c.MMU.MMUCR &^ mmucrFaultMask) | (uint32(f.kind) << mmucrFaultShift)
}

// InvalidateTLBAll clears every TLB entry (TLBFLUSH register write).
func (c *CPU) InvalidateTLBAll() {
	c.MMU.TLB = [TLBSize]TLBEntry{}
	c.MMU.tlbNext = 0
}

// InvalidateTLBVA invalidates any entry matching vpn regardless of ASID.
func (c *CPU) InvalidateTLBVA(va uint32) {
	vpn := va &^ (pageSize - 1)
	for i := range c.MMU.TLB {
		if c.MMU.TLB[i].Valid && c.MMU.TLB[i].VPN == vpn {
			c.MMU.TLB[i] = TLBEntry{}
		}
	}
}

// InvalidateTLBASID invalidates every non-global entry tagged with asid.
func (c *CPU) InvalidateTLBASID(asid uint8) {
	for i := range c.MMU.TLB {
		if c.MMU.TLB[i].Valid && !c.MMU.TLB[i].Global && c.MMU.TLB[i].ASID == asid {
			c.MMU.TLB[i] = TLBEntry{}
		}
	}
}
