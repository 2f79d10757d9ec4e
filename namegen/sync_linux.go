// +build linux

package namegen

import (
	"os"

	"golang.org/x/sys/unix"
)

// syncDir commits the whole filesystem containing dir, as "btrfs filesystem
// sync" would.
func syncDir(dir string) error {
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := unix.Syncfs(int(f.Fd())); err != nil {
		return &os.PathError{Op: "syncfs", Path: dir, Err: err}
	}
	return nil
}
