// Package mbr builds a Master Boot Record whose first partition table
// entry maps a FAT12 volume embedded at a sector offset, so that the
// volume written by package fat12 becomes a mountable partition of a
// larger disk image.
package mbr

import (
	"bytes"
	"encoding/binary"
)

const (
	// partitionFAT12 is the MBR partition type for FAT12 volumes.
	partitionFAT12 = uint8(0x01)

	// active marks a partition as bootable.
	active = uint8(0x80)

	bootstrapLen = 446
	entryLen     = 16
)

// written to byte offset 446, the first partition table slot
type partitionEntry struct {
	Status   uint8
	FirstCHS [3]byte
	Type     uint8
	LastCHS  [3]byte
	FirstLBA uint32
	Sectors  uint32
}

// Configure returns an MBR sector with a single active FAT12 partition
// covering sectors [firstLBA, firstLBA+sectors). The CHS fields are left
// zero; readers are expected to use the LBA fields. The bootstrap area
// is zero, i.e. the sector is a partition table only, not a boot loader.
func Configure(firstLBA, sectors uint32) [512]byte {
	buf := bytes.NewBuffer(make([]byte, 0, 512))
	// buf.Write never fails
	buf.Write(make([]byte, bootstrapLen))
	binary.Write(buf, binary.LittleEndian, &partitionEntry{
		Status:   active,
		Type:     partitionFAT12,
		FirstLBA: firstLBA,
		Sectors:  sectors,
	})
	buf.Write(make([]byte, 3*entryLen))
	buf.Write([]byte{0x55, 0xAA})
	var b [512]byte
	copy(b[:], buf.Bytes())
	return b
}
