// Package geometryflag registers the volume layout flags shared by tools
// that write FAT12 images, and resolves them into a fat12.Geometry.
package geometryflag

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/gokrazy/fatimg/fat12"
	"github.com/gokrazy/fatimg/humanize"
	"github.com/gokrazy/fatimg/mediaprofile"
)

var (
	profile         string
	size            string
	sectorSize      uint16
	cluster         uint8
	reserved        uint16
	rootEntries     uint16
	numFATs         uint8
	fatSize         uint16
	reservedContent string
)

func RegisterPflags(fs *pflag.FlagSet) {
	fs.StringVar(&profile,
		"profile",
		"",
		fmt.Sprintf("media profile, one of %s", strings.Join(mediaprofile.Slugs(), ", ")))

	fs.StringVar(&size,
		"size",
		"",
		`partition size, e.g. 1440k or 16m; defaults to the size of the target device`)

	fs.Uint16Var(&sectorSize,
		"sector-size",
		fat12.DefaultSectorSize,
		`logical sector size in bytes`)

	fs.Uint8Var(&cluster,
		"cluster",
		fat12.DefaultSectorsPerCluster,
		`sectors per cluster`)

	fs.Uint16Var(&reserved,
		"reserved",
		fat12.DefaultReservedSectors,
		`reserved sectors, including the boot sector`)

	fs.Uint16Var(&rootEntries,
		"root-entries",
		fat12.DefaultRootEntries,
		`root directory entry capacity`)

	fs.Uint8Var(&numFATs,
		"fats",
		fat12.DefaultNumFATs,
		`number of FAT copies`)

	fs.Uint16Var(&fatSize,
		"fat-size",
		fat12.DefaultSectorsPerFAT,
		`sectors per FAT copy`)

	fs.StringVar(&reservedContent,
		"reserved-content",
		"",
		`file copied into reserved sectors 1..N-1, e.g. extended boot code`)
}

// Geometry resolves the registered flags into a validated Geometry.
// Precedence for the partition size: --profile, then --size, then
// targetSize (the size of the target device, 0 if unknown). Individual
// layout flags override the profile's values only when set explicitly.
func Geometry(fs *pflag.FlagSet, targetSize int64) (fat12.Geometry, error) {
	var g fat12.Geometry
	switch {
	case profile != "":
		p, ok := mediaprofile.BySlug(profile)
		if !ok {
			return fat12.Geometry{}, fmt.Errorf("unknown media profile %q (known: %s)", profile, strings.Join(mediaprofile.Slugs(), ", "))
		}
		g = p.Geometry
	case size != "":
		bytes, err := humanize.ParseBytes(size)
		if err != nil {
			return fat12.Geometry{}, fmt.Errorf("parsing --size: %v", err)
		}
		if bytes%int64(sectorSize) != 0 {
			return fat12.Geometry{}, fmt.Errorf("--size %s is not a whole number of %d-byte sectors", size, sectorSize)
		}
		g = fat12.NewGeometry(uint32(bytes/int64(sectorSize)), sectorSize)
	case targetSize > 0:
		g = fat12.NewGeometry(uint32(targetSize/int64(sectorSize)), sectorSize)
	default:
		return fat12.Geometry{}, fmt.Errorf("no partition size: set --profile or --size")
	}

	if fs.Changed("sector-size") {
		g.SectorSize = sectorSize
	}
	if fs.Changed("cluster") {
		g.SectorsPerCluster = cluster
	}
	if fs.Changed("reserved") {
		g.ReservedSectors = reserved
	}
	if fs.Changed("root-entries") {
		g.RootEntries = rootEntries
	}
	if fs.Changed("fats") {
		g.NumFATs = numFATs
	}
	if fs.Changed("fat-size") {
		g.SectorsPerFAT = fatSize
	}
	g.ReservedContent = reservedContent

	if err := g.Validate(); err != nil {
		return fat12.Geometry{}, err
	}
	return g, nil
}
