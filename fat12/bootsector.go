package fat12

import (
	"bytes"
	"encoding/binary"
)

const (
	// fixedMedia is the media descriptor for fixed (non-removable) media.
	fixedMedia = uint8(0xF8)

	// volumeID is encoded verbatim so that repeated builds with the same
	// geometry produce identical images.
	volumeID = uint32(0x66617412)
)

// bootSector serializes g into a BIOS Parameter Block occupying exactly
// one logical sector. g must have been validated; serialization itself
// cannot fail and performs no I/O.
func bootSector(g Geometry) []byte {
	var (
		jumpCode            = [3]byte{0xEB, 0x3C, 0x90}
		oem                 = [8]byte{'f', 'a', 't', 'i', 'm', 'g', ' ', ' '}
		volumeLabel         = [11]byte{'F', 'A', 'T', 'I', 'M', 'G', ' ', ' ', ' ', ' ', ' '}
		fileSystemType      = [8]byte{'F', 'A', 'T', '1', '2', ' ', ' ', ' '}
		bootSectorSignature = [2]byte{0x55, 0xAA}
	)

	// The 16 bit sector count is used when it suffices; a zero value
	// directs readers to the 32 bit count instead.
	var (
		totalSectors16 uint16
		totalSectors32 uint32
	)
	if g.PartitionSectors < 0x10000 {
		totalSectors16 = uint16(g.PartitionSectors)
	} else {
		totalSectors32 = g.PartitionSectors
	}

	buf := bytes.NewBuffer(make([]byte, 0, int(g.SectorSize)))
	for _, v := range []interface{}{
		jumpCode,            // intel 80x86 jump instruction
		oem,                 // OEM name
		g.SectorSize,        // bytes per sector
		g.SectorsPerCluster, // i.e. each FAT entry covers SectorsPerCluster*SectorSize bytes
		g.ReservedSectors,   // reserved sectors, including this one
		g.NumFATs,           // FAT copies
		g.RootEntries,       // root directory entry capacity
		totalSectors16,
		fixedMedia,      // media descriptor
		g.SectorsPerFAT, // sectors per FAT copy
		uint16(32),      // (only for bootcode) sectors per track
		uint16(4),       // (only for bootcode) heads
		uint32(0),       // no hidden sectors
		totalSectors32,
		uint8(0x80), // (only for bootcode) drive number
		uint8(0),    // (only for bootcode) current head
		uint8(0x29), // magic value: extended boot signature
		volumeID,    // volume serial number
		volumeLabel,
		fileSystemType,
	} {
		// writes to a bytes.Buffer never fail
		binary.Write(buf, binary.LittleEndian, v)
	}

	sector := make([]byte, g.SectorSize)
	copy(sector, buf.Bytes())
	// The signature sits at byte offset 510 regardless of sector size.
	copy(sector[510:], bootSectorSignature[:])
	return sector
}
