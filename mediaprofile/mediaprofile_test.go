package mediaprofile

import "testing"

func TestProfilesAreValid(t *testing.T) {
	seen := make(map[string]string)
	for name, p := range Profiles {
		t.Run(name, func(t *testing.T) {
			if p.Slug == "" {
				t.Fatalf("profile %q has no slug", name)
			}
			if prev, ok := seen[p.Slug]; ok {
				t.Fatalf("slug %q used by both %q and %q", p.Slug, prev, name)
			}
			seen[p.Slug] = name

			if err := p.Geometry.Validate(); err != nil {
				t.Fatalf("profile %q: %v", name, err)
			}
			if p.Geometry.ReservedContent != "" {
				t.Fatalf("profile %q names reserved sector content, which is caller-specific", name)
			}

			got, ok := BySlug(p.Slug)
			if !ok {
				t.Fatalf("BySlug(%q) did not find the profile", p.Slug)
			}
			if got.Geometry != p.Geometry {
				t.Fatalf("BySlug(%q) returned a different geometry", p.Slug)
			}
		})
	}
}

func TestFATEntriesCoverClusters(t *testing.T) {
	for name, p := range Profiles {
		t.Run(name, func(t *testing.T) {
			g := p.Geometry
			rootSectors := uint32(g.RootEntries) * 32 / uint32(g.SectorSize)
			dataSectors := g.PartitionSectors -
				uint32(g.ReservedSectors) -
				uint32(g.NumFATs)*uint32(g.SectorsPerFAT) -
				rootSectors
			clusters := dataSectors/uint32(g.SectorsPerCluster) + 2 // two reserved entries

			// 12 bit entries: a FAT sector holds sectorSize*2/3 entries.
			fatEntries := uint32(g.SectorsPerFAT) * uint32(g.SectorSize) * 2 / 3
			if clusters > fatEntries {
				t.Fatalf("FAT too small: %d clusters, %d entries", clusters, fatEntries)
			}
			if clusters >= 4085 {
				t.Fatalf("%d clusters exceed the FAT12 limit of 4084", clusters)
			}
		})
	}
}
