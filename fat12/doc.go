// Package fat12 implements writing empty FAT12 file system images, which
// is useful when generating boot partitions for embedded devices or
// floppy disk images for emulators. It is strictly a generator: it never
// reads an existing file system and never creates directory entries or
// file content.
//
// A Geometry describes the volume layout; the same Geometry value is used
// both for serializing the boot sector and for writing the surrounding
// sectors, so the declared BIOS Parameter Block always agrees with the
// physical layout.
package fat12
