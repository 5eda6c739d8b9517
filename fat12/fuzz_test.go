package fat12_test

import (
	"errors"
	"testing"

	"github.com/gokrazy/fatimg/fat12"
)

// countingWriter discards everything but keeps the byte count.
type countingWriter int64

func (cw *countingWriter) Write(p []byte) (n int, err error) {
	*cw += countingWriter(len(p))
	return len(p), nil
}

func FuzzGeometry(f *testing.F) {
	f.Add(uint32(2880), uint16(512), uint8(4), uint16(1), uint16(256), uint8(2), uint16(3))
	f.Add(uint32(720), uint16(512), uint8(2), uint16(1), uint16(64), uint8(2), uint16(2))
	f.Fuzz(func(t *testing.T, partitionSectors uint32, sectorSize uint16, cluster uint8, reserved uint16, rootEntries uint16, numFATs uint8, fatSize uint16) {
		if partitionSectors > 1<<16 {
			return // keep image generation fast
		}
		g := fat12.Geometry{
			SectorSize:        sectorSize,
			PartitionSectors:  partitionSectors,
			SectorsPerCluster: cluster,
			ReservedSectors:   reserved,
			RootEntries:       rootEntries,
			NumFATs:           numFATs,
			SectorsPerFAT:     fatSize,
		}
		var cw countingWriter
		err := fat12.WriteImage(&cw, g)
		if verr := g.Validate(); verr != nil {
			if !errors.Is(err, fat12.ErrInvalidGeometry) {
				t.Fatalf("invalid geometry produced output: validate=%v, write=%v", verr, err)
			}
			if cw != 0 {
				t.Fatalf("%d bytes written despite invalid geometry", cw)
			}
			return
		}
		if err != nil {
			t.Fatal(err)
		}
		if int64(cw) != g.Size() {
			t.Fatalf("unexpected image size: got %d, want %d", cw, g.Size())
		}
	})
}
