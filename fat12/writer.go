package fat12

import (
	"fmt"
	"io"
	"os"
)

// fatHeader holds the first three bytes of every FAT copy: a copy of the
// media descriptor, then the end-of-chain marker for the two reserved
// FAT entries. The rest of the table is zero, i.e. all clusters free.
var fatHeader = [3]byte{fixedMedia, 0xFF, 0xFF}

// paddingWriter pads whatever was written to a multiple of padTo zero
// bytes when Flush is called.
type paddingWriter struct {
	w     io.Writer
	count int
	padTo int
}

func (pw *paddingWriter) Write(p []byte) (n int, err error) {
	pw.count += len(p)
	return pw.w.Write(p)
}

func (pw *paddingWriter) Flush() error {
	if pw.count%pw.padTo == 0 {
		return nil
	}
	remainder := pw.padTo - (pw.count % pw.padTo)
	pw.count += remainder
	_, err := pw.w.Write(make([]byte, remainder))
	return err
}

// WriteImage writes a complete image for g to w in a single pass: boot
// sector, reserved sector content, NumFATs freshly initialized FAT
// copies, then a zeroed data region. Exactly g.Size() bytes are written.
func WriteImage(w io.Writer, g Geometry) error {
	if err := g.Validate(); err != nil {
		return err
	}
	if err := writeMetadata(w, g); err != nil {
		return err
	}
	return writeZeros(w, g.Size()-g.metadataBytes(), g.SectorSize)
}

// WriteAt writes the image for g into ws starting at the given byte
// offset. Only bytes within [offset, offset+g.Size()) are touched, and
// the position of ws is restored before returning, so an image can be
// embedded into a larger disk image alongside other partitions. The span
// is zero-filled before the metadata is written; clusters never touched
// by the build read back as zero.
func WriteAt(ws io.WriteSeeker, g Geometry, offset int64) error {
	if err := g.Validate(); err != nil {
		return err
	}
	pos, err := ws.Seek(0, io.SeekCurrent)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSeekTarget, err)
	}
	if _, err := ws.Seek(offset, io.SeekStart); err != nil {
		return fmt.Errorf("%w: %v", ErrSeekTarget, err)
	}
	if err := writeZeros(ws, g.Size(), g.SectorSize); err != nil {
		return err
	}
	if _, err := ws.Seek(offset, io.SeekStart); err != nil {
		return fmt.Errorf("%w: %v", ErrSeekTarget, err)
	}
	if err := writeMetadata(ws, g); err != nil {
		return err
	}
	if _, err := ws.Seek(pos, io.SeekStart); err != nil {
		return fmt.Errorf("%w: %v", ErrSeekTarget, err)
	}
	return nil
}

// WriteFileAt writes the image for g into the file at path, starting at
// the given byte offset. The file is created if it does not exist;
// existing bytes outside the image span are left untouched.
func WriteFileAt(path string, g Geometry, offset int64) error {
	if err := g.Validate(); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOpenTarget, err)
	}
	if err := WriteAt(f, g, offset); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteTarget, err)
	}
	return nil
}

// WriteFile is WriteFileAt with offset 0.
func WriteFile(path string, g Geometry) error {
	return WriteFileAt(path, g, 0)
}

// writeMetadata writes the boot sector, the reserved sector content and
// all FAT copies, i.e. the first g.metadataBytes() bytes of the image.
func writeMetadata(w io.Writer, g Geometry) error {
	pw := &paddingWriter{w: w, padTo: int(g.ReservedSectors) * int(g.SectorSize)}
	if _, err := pw.Write(bootSector(g)); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteTarget, err)
	}
	if g.ReservedSectors > 1 && g.ReservedContent != "" {
		if err := copyReservedContent(pw, g); err != nil {
			return err
		}
	}
	if err := pw.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteTarget, err)
	}

	for i := uint8(0); i < g.NumFATs; i++ {
		if _, err := w.Write(fatHeader[:]); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteTarget, err)
		}
		if err := writeZeros(w, int64(g.SectorsPerFAT)*int64(g.SectorSize)-int64(len(fatHeader)), g.SectorSize); err != nil {
			return err
		}
	}
	return nil
}

// copyReservedContent copies bytes from g.ReservedContent into reserved
// sectors 1..ReservedSectors-1. Content beyond the region is not read;
// short content is written as-is, the remainder of the region stays
// zero.
func copyReservedContent(w io.Writer, g Geometry) error {
	f, err := os.Open(g.ReservedContent)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOpenReservedContent, err)
	}
	defer f.Close()

	buf := make([]byte, g.SectorSize)
	remaining := int64(g.ReservedSectors-1) * int64(g.SectorSize)
	for remaining > 0 {
		if remaining < int64(len(buf)) {
			buf = buf[:remaining]
		}
		n, err := f.Read(buf)
		if n > 0 {
			if _, werr := w.Write(buf[:n]); werr != nil {
				return fmt.Errorf("%w: %v", ErrWriteTarget, werr)
			}
			remaining -= int64(n)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrReadReservedContent, err)
		}
	}
	return nil
}

// writeZeros writes n zero bytes to w, reusing a single sector-sized
// buffer so that zero-filling large partitions does not require large
// allocations.
func writeZeros(w io.Writer, n int64, sectorSize uint16) error {
	buf := make([]byte, sectorSize)
	for n > 0 {
		chunk := buf
		if n < int64(len(buf)) {
			chunk = buf[:n]
		}
		wrote, err := w.Write(chunk)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrWriteTarget, err)
		}
		n -= int64(wrote)
	}
	return nil
}
