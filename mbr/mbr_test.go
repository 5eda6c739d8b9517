package mbr

import (
	"encoding/binary"
	"testing"
)

func TestConfigure(t *testing.T) {
	t.Parallel()

	const (
		firstLBA = uint32(2048)
		sectors  = uint32(2880)
	)
	b := Configure(firstLBA, sectors)

	for i, v := range b[:bootstrapLen] {
		if v != 0 {
			t.Fatalf("bootstrap byte %d is %#x, want zero", i, v)
		}
	}
	if got := b[446]; got != active {
		t.Errorf("partition status: got %#x, want %#x", got, active)
	}
	if got := b[450]; got != partitionFAT12 {
		t.Errorf("partition type: got %#x, want %#x", got, partitionFAT12)
	}
	if got := binary.LittleEndian.Uint32(b[454:458]); got != firstLBA {
		t.Errorf("first LBA: got %d, want %d", got, firstLBA)
	}
	if got := binary.LittleEndian.Uint32(b[458:462]); got != sectors {
		t.Errorf("sector count: got %d, want %d", got, sectors)
	}
	for i, v := range b[462:510] {
		if v != 0 {
			t.Fatalf("partition table slot byte %d is %#x, want empty", 462+i, v)
		}
	}
	if b[510] != 0x55 || b[511] != 0xAA {
		t.Errorf("boot signature: got %#x %#x, want 0x55 0xaa", b[510], b[511])
	}
}
