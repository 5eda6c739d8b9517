package fat12

import (
	"errors"
	"fmt"
)

// Defaults applied by NewGeometry.
const (
	DefaultSectorSize        = uint16(512)
	DefaultSectorsPerCluster = uint8(4)
	DefaultReservedSectors   = uint16(1)
	DefaultRootEntries       = uint16(256)
	DefaultNumFATs           = uint8(2)
	DefaultSectorsPerFAT     = uint16(3)
)

// rootEntrySize is the on-disk size of one root directory entry.
const rootEntrySize = 32

var (
	// ErrInvalidGeometry is returned when a Geometry fails validation.
	// It is always detected before any byte is written.
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrOpenTarget, ErrWriteTarget and ErrSeekTarget wrap failures of
	// the underlying storage calls. None of them is retried; the target
	// is left in whatever state the partial write produced.
	ErrOpenTarget  = errors.New("open target")
	ErrWriteTarget = errors.New("write target")
	ErrSeekTarget  = errors.New("seek target")

	// ErrOpenReservedContent and ErrReadReservedContent wrap failures of
	// the reserved sector content source. They abort the build after the
	// boot sector has already been written, so the caller must treat the
	// target as corrupt until a successful rebuild.
	ErrOpenReservedContent = errors.New("open reserved sector content")
	ErrReadReservedContent = errors.New("read reserved sector content")
)

// Geometry describes the on-disk layout of a FAT12 volume. Every size
// field is encoded into the boot sector verbatim, so the value used to
// write an image is the single source of truth for both the declared and
// the physical layout.
type Geometry struct {
	// SectorSize is the logical sector size in bytes: 512, 1024, 2048 or
	// 4096. It should match the physical sector size of the target media
	// for the encoded offsets to be correct.
	SectorSize uint16

	// PartitionSectors is the total number of sectors in the partition.
	PartitionSectors uint32

	// SectorsPerCluster is the number of sectors per allocation unit.
	SectorsPerCluster uint8

	// ReservedSectors is the number of sectors preceding the first FAT,
	// including the boot sector itself. At least 1.
	ReservedSectors uint16

	// RootEntries is the root directory capacity in 32-byte entries. It
	// must fill a whole number of sectors.
	RootEntries uint16

	// NumFATs is the number of FAT copies, typically 2.
	NumFATs uint8

	// SectorsPerFAT is the size of a single FAT copy in sectors.
	SectorsPerFAT uint16

	// ReservedContent optionally names a file whose bytes fill reserved
	// sectors 1..ReservedSectors-1, e.g. extended boot code. Content
	// beyond the reserved region is ignored; if the file is shorter than
	// the region, the remainder stays zeroed. It is only consulted when
	// ReservedSectors > 1.
	ReservedContent string
}

// NewGeometry returns a Geometry for a partition of the given size with
// all other fields set to their defaults: 4 sectors per cluster, 1
// reserved sector, 256 root directory entries, 2 FAT copies of 3 sectors
// each. Callers may override individual fields before use.
func NewGeometry(partitionSectors uint32, sectorSize uint16) Geometry {
	return Geometry{
		SectorSize:        sectorSize,
		PartitionSectors:  partitionSectors,
		SectorsPerCluster: DefaultSectorsPerCluster,
		ReservedSectors:   DefaultReservedSectors,
		RootEntries:       DefaultRootEntries,
		NumFATs:           DefaultNumFATs,
		SectorsPerFAT:     DefaultSectorsPerFAT,
	}
}

// Validate reports whether g describes a self-consistent volume. All
// write entry points call it before touching the target.
func (g Geometry) Validate() error {
	switch g.SectorSize {
	case 512, 1024, 2048, 4096:
	default:
		return fmt.Errorf("%w: sector size %d (must be 512, 1024, 2048 or 4096)", ErrInvalidGeometry, g.SectorSize)
	}
	if g.SectorsPerCluster == 0 {
		return fmt.Errorf("%w: zero sectors per cluster", ErrInvalidGeometry)
	}
	if g.ReservedSectors == 0 {
		return fmt.Errorf("%w: zero reserved sectors (sector 0 must hold the boot sector)", ErrInvalidGeometry)
	}
	if g.NumFATs == 0 {
		return fmt.Errorf("%w: zero FAT copies", ErrInvalidGeometry)
	}
	if g.SectorsPerFAT == 0 {
		return fmt.Errorf("%w: zero sectors per FAT", ErrInvalidGeometry)
	}
	if g.RootEntries == 0 {
		return fmt.Errorf("%w: zero root directory entries", ErrInvalidGeometry)
	}
	if (uint32(g.RootEntries)*rootEntrySize)%uint32(g.SectorSize) != 0 {
		return fmt.Errorf("%w: %d root directory entries do not fill whole %d-byte sectors", ErrInvalidGeometry, g.RootEntries, g.SectorSize)
	}
	min := uint64(g.ReservedSectors) +
		uint64(g.NumFATs)*uint64(g.SectorsPerFAT) +
		uint64(g.rootDirSectors())
	if uint64(g.PartitionSectors) < min {
		return fmt.Errorf("%w: %d sectors do not hold %d metadata sectors", ErrInvalidGeometry, g.PartitionSectors, min)
	}
	return nil
}

func (g Geometry) rootDirSectors() uint32 {
	return uint32(g.RootEntries) * rootEntrySize / uint32(g.SectorSize)
}

// Size returns the total image size in bytes.
func (g Geometry) Size() int64 {
	return int64(g.PartitionSectors) * int64(g.SectorSize)
}

// metadataBytes is the span covered by boot sector, reserved sectors and
// all FAT copies. Everything after it is zero-filled data region.
func (g Geometry) metadataBytes() int64 {
	sectors := int64(g.ReservedSectors) + int64(g.NumFATs)*int64(g.SectorsPerFAT)
	return sectors * int64(g.SectorSize)
}
