package geometryflag

import (
	"errors"
	"testing"

	"github.com/spf13/pflag"

	"github.com/gokrazy/fatimg/fat12"
)

func parse(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("geometryflag", pflag.ContinueOnError)
	RegisterPflags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatal(err)
	}
	return fs
}

func TestProfileSelection(t *testing.T) {
	fs := parse(t, "--profile=floppy-1440")
	g, err := Geometry(fs, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := g.PartitionSectors, uint32(2880); got != want {
		t.Errorf("partition sectors: got %d, want %d", got, want)
	}
	if got, want := g.RootEntries, uint16(224); got != want {
		t.Errorf("root entries: got %d, want %d", got, want)
	}
}

func TestProfileOverride(t *testing.T) {
	fs := parse(t, "--profile=floppy-1440", "--fats=1")
	g, err := Geometry(fs, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := g.NumFATs, uint8(1); got != want {
		t.Errorf("FAT copies: got %d, want %d", got, want)
	}
	// Fields without an explicit flag keep the profile's values.
	if got, want := g.SectorsPerFAT, uint16(9); got != want {
		t.Errorf("sectors per FAT: got %d, want %d", got, want)
	}
}

func TestUnknownProfile(t *testing.T) {
	fs := parse(t, "--profile=floppy-525")
	if _, err := Geometry(fs, 0); err == nil {
		t.Fatal("expected an error for an unknown profile")
	}
}

func TestSizeFlag(t *testing.T) {
	fs := parse(t, "--size=1440k")
	g, err := Geometry(fs, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := g.PartitionSectors, uint32(2880); got != want {
		t.Errorf("partition sectors: got %d, want %d", got, want)
	}
	if got, want := g.SectorsPerCluster, fat12.DefaultSectorsPerCluster; got != want {
		t.Errorf("sectors per cluster: got %d, want %d", got, want)
	}
}

func TestTargetSizeFallback(t *testing.T) {
	fs := parse(t)
	g, err := Geometry(fs, 2880*512)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := g.PartitionSectors, uint32(2880); got != want {
		t.Errorf("partition sectors: got %d, want %d", got, want)
	}
}

func TestNoSize(t *testing.T) {
	fs := parse(t)
	if _, err := Geometry(fs, 0); err == nil {
		t.Fatal("expected an error without any size source")
	}
}

func TestInvalidOverride(t *testing.T) {
	fs := parse(t, "--size=1440k", "--root-entries=10")
	_, err := Geometry(fs, 0)
	if !errors.Is(err, fat12.ErrInvalidGeometry) {
		t.Fatalf("unexpected error: got %v, want %v", err, fat12.ErrInvalidGeometry)
	}
}
