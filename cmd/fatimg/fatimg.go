// fatimg writes an empty FAT12 file system to a file, disk image or
// block device.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/pflag"

	"github.com/gokrazy/fatimg/blockdev"
	"github.com/gokrazy/fatimg/fat12"
	"github.com/gokrazy/fatimg/geometryflag"
	"github.com/gokrazy/fatimg/humanize"
	"github.com/gokrazy/fatimg/mbr"
	"github.com/gokrazy/fatimg/progress"
)

var (
	offset = pflag.Int64("offset",
		0,
		`byte offset within the target at which the partition starts`)

	writeMBR = pflag.Bool("mbr",
		false,
		`write a partition table to sector 0 mapping the volume; requires a non-zero --offset`)

	showProgress = pflag.Bool("progress",
		false,
		`report write progress once per second`)
)

func writeImage(target string, g fat12.Geometry) error {
	if !*showProgress {
		return fat12.WriteFileAt(target, g, *offset)
	}

	f, err := os.OpenFile(target, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.Seek(*offset, io.SeekStart); err != nil {
		return err
	}

	ctx, canc := context.WithCancel(context.Background())
	defer canc()
	var reporter progress.Reporter
	reporter.SetStatus(fmt.Sprintf("formatting %s", target))
	reporter.SetTotal(uint64(g.Size()))
	go reporter.Report(ctx)

	if err := fat12.WriteImage(io.MultiWriter(f, progress.Writer{}), g); err != nil {
		return err
	}
	canc()
	fmt.Println()
	return f.Close()
}

func writePartitionTable(target string, g fat12.Geometry) error {
	f, err := os.OpenFile(target, os.O_RDWR, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	table := mbr.Configure(uint32(*offset/int64(g.SectorSize)), g.PartitionSectors)
	if _, err := f.WriteAt(table[:], 0); err != nil {
		return err
	}
	return f.Close()
}

func logic(target string) error {
	var targetSize int64
	if blockdev.IsBlockDevice(target) {
		size, err := blockdev.Size(target)
		if err != nil {
			return err
		}
		targetSize = size - *offset
	}

	g, err := geometryflag.Geometry(pflag.CommandLine, targetSize)
	if err != nil {
		return err
	}

	if *writeMBR {
		if *offset < int64(g.SectorSize) || *offset%int64(g.SectorSize) != 0 {
			return fmt.Errorf("--mbr requires --offset to be a positive multiple of the sector size (%d)", g.SectorSize)
		}
	}

	if target == "-" {
		if *writeMBR || *offset != 0 {
			return fmt.Errorf("--mbr and --offset cannot be used when writing to stdout")
		}
		return fat12.WriteImage(os.Stdout, g)
	}

	if err := writeImage(target, g); err != nil {
		return err
	}
	if *writeMBR {
		if err := writePartitionTable(target, g); err != nil {
			return err
		}
	}
	log.Printf("wrote %s FAT12 image to %s", humanize.Bytes(uint64(g.Size())), target)
	return nil
}

func main() {
	geometryflag.RegisterPflags(pflag.CommandLine)
	pflag.Parse()
	if pflag.NArg() != 1 {
		log.Fatalf("syntax: fatimg [flags] <target>\ntarget is a file, a block device, or - for stdout")
	}
	if err := logic(pflag.Arg(0)); err != nil {
		log.Fatal(err)
	}
}
