// Package blockdev identifies block devices and queries their size, so
// that images can be sized to fill the whole target device.
package blockdev

import "os"

// IsBlockDevice reports whether path names a block device.
func IsBlockDevice(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}
	mode := fi.Mode()
	return mode&os.ModeDevice != 0 && mode&os.ModeCharDevice == 0
}
