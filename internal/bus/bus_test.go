package bus

import "testing"

func TestReadWriteBackingMemory(t *testing.T) {
	b := New(0x1000)

	b.Write(0x10, 0xDEADBEEF, 4)
	got := b.Read(0x10, 4)
	if got != 0xDEADBEEF {
		t.Errorf("Read = 0x%X, want 0xDEADBEEF", got)
	}
}

func TestReadUnmappedReturnsFF(t *testing.T) {
	b := New(0x10)

	got := b.Read(0x20, 1)
	if got != 0xFF {
		t.Errorf("Read(unmapped) = 0x%X, want 0xFF", got)
	}
}

func TestMMIORegionRoutesBeforeBackingMemory(t *testing.T) {
	b := New(0x1000)

	var lastWrite uint32
	err := b.RegisterMMIO(0x100, 0x10,
		func(addr, offset uint64, width int) uint32 {
			return uint32(offset) + 1
		},
		func(addr, offset uint64, value uint32, width int) {
			lastWrite = value
		},
		"test-region",
	)
	if err != nil {
		t.Fatalf("RegisterMMIO: %v", err)
	}

	if got := b.Read(0x104, 1); got != 5 {
		t.Errorf("Read through MMIO = %d, want 5", got)
	}

	b.Write(0x101, 0x42, 1)
	if lastWrite != 0x42 {
		t.Errorf("lastWrite = 0x%X, want 0x42", lastWrite)
	}
}

func TestMMIOTableOverflow(t *testing.T) {
	b := New(0x1000)
	for i := 0; i < MaxMMIORegions; i++ {
		if err := b.RegisterMMIO(uint64(i)*0x10, 0x10, nil, nil, "r"); err != nil {
			t.Fatalf("unexpected overflow at region %d: %v", i, err)
		}
	}
	if err := b.RegisterMMIO(0xFFFF, 0x10, nil, nil, "overflow"); err == nil {
		t.Error("expected error registering 33rd MMIO region, got nil")
	}
}

func TestFindAndUnregisterMMIO(t *testing.T) {
	b := New(0x1000)
	_ = b.RegisterMMIO(0x200, 0x8, func(addr, offset uint64, width int) uint32 { return 0 }, nil, "r")

	if b.FindMMIO(0x204) == nil {
		t.Fatal("expected to find region at 0x204")
	}
	b.UnregisterMMIO(0x200)
	if b.FindMMIO(0x204) != nil {
		t.Fatal("expected region to be gone after unregister")
	}
}

func TestStraddlingWriteSplitsAcrossRegionBoundary(t *testing.T) {
	b := New(0x1000)
	var seen []byte
	_ = b.RegisterMMIO(0x10, 0x2,
		func(addr, offset uint64, width int) uint32 { return 0 },
		func(addr, offset uint64, value uint32, width int) { seen = append(seen, byte(value)) },
		"narrow",
	)

	// Straddles [0x10,0x12) region and backing memory beyond it.
	b.Write(0x11, 0x0000BEEF, 4)
	if len(seen) != 1 {
		t.Fatalf("expected exactly 1 byte written through region, got %d", len(seen))
	}
	if got := b.Read(0x13, 1); got != 0x00 {
		t.Errorf("backing byte at 0x13 = 0x%X, want 0x00 (byte 2 of 0x0000BEEF)", got)
	}
}

func TestLoadBlockAndReadBlock(t *testing.T) {
	b := New(0x100)
	data := []byte{1, 2, 3, 4}
	if err := b.LoadBlock(0x10, data); err != nil {
		t.Fatalf("LoadBlock: %v", err)
	}
	out, err := b.ReadBlock(0x10, 4)
	if err != nil {
		t.Fatalf("ReadBlock: %v", err)
	}
	for i, v := range data {
		if out[i] != v {
			t.Errorf("out[%d] = %d, want %d", i, out[i], v)
		}
	}
}

func TestLoadBlockOverrunIsError(t *testing.T) {
	b := New(0x10)
	if err := b.LoadBlock(0x8, make([]byte, 0x10)); err == nil {
		t.Error("expected overrun error, got nil")
	}
}
