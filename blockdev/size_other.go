//go:build !linux

package blockdev

import "fmt"

// Size returns the size in bytes of the block device at path.
func Size(path string) (int64, error) {
	return 0, fmt.Errorf("determining the size of block device %s: not implemented on this platform, specify an explicit size", path)
}
