// Package mediaprofile contains ready-made FAT12 geometries for standard
// media formats, so that callers can format well-known media without
// spelling out individual layout parameters.
package mediaprofile

import "github.com/gokrazy/fatimg/fat12"

type Profile struct {
	// Geometry used to format this media.
	Geometry fat12.Geometry
	// Slug is a unique, short string used by fatimg to refer to this
	// profile.
	Slug string
}

var (
	// Profiles contains a mapping from media format name to the geometry
	// used to format it. The floppy layouts follow the classic PC BIOS
	// formats.
	Profiles = map[string]Profile{
		`5.25" double density floppy, 360 KB`: {
			Geometry: fat12.Geometry{
				SectorSize:        512,
				PartitionSectors:  720,
				SectorsPerCluster: 2,
				ReservedSectors:   1,
				RootEntries:       112,
				NumFATs:           2,
				SectorsPerFAT:     2,
			},
			Slug: "floppy-360",
		},
		`3.5" double density floppy, 720 KB`: {
			Geometry: fat12.Geometry{
				SectorSize:        512,
				PartitionSectors:  1440,
				SectorsPerCluster: 2,
				ReservedSectors:   1,
				RootEntries:       112,
				NumFATs:           2,
				SectorsPerFAT:     3,
			},
			Slug: "floppy-720",
		},
		`5.25" high density floppy, 1.2 MB`: {
			Geometry: fat12.Geometry{
				SectorSize:        512,
				PartitionSectors:  2400,
				SectorsPerCluster: 1,
				ReservedSectors:   1,
				RootEntries:       224,
				NumFATs:           2,
				SectorsPerFAT:     7,
			},
			Slug: "floppy-1200",
		},
		`3.5" high density floppy, 1.44 MB`: {
			Geometry: fat12.Geometry{
				SectorSize:        512,
				PartitionSectors:  2880,
				SectorsPerCluster: 1,
				ReservedSectors:   1,
				RootEntries:       224,
				NumFATs:           2,
				SectorsPerFAT:     9,
			},
			Slug: "floppy-1440",
		},
		`3.5" extended density floppy, 2.88 MB`: {
			Geometry: fat12.Geometry{
				SectorSize:        512,
				PartitionSectors:  5760,
				SectorsPerCluster: 2,
				ReservedSectors:   1,
				RootEntries:       240,
				NumFATs:           2,
				SectorsPerFAT:     9,
			},
			Slug: "floppy-2880",
		},
		// Boot partition layout for embedded devices, matching the
		// NewGeometry defaults for a 1440 KB partition.
		"embedded boot partition, 1440 KB": {
			Geometry: fat12.NewGeometry(2880, 512),
			Slug:     "embedded-boot",
		},
	}
)

// BySlug returns the profile identified by slug.
func BySlug(slug string) (Profile, bool) {
	for _, p := range Profiles {
		if p.Slug == slug {
			return p, true
		}
	}
	return Profile{}, false
}

// Slugs returns the slug of every registered profile.
func Slugs() []string {
	slugs := make([]string, 0, len(Profiles))
	for _, p := range Profiles {
		slugs = append(slugs, p.Slug)
	}
	return slugs
}
