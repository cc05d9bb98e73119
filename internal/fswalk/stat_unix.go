//go:build !windows
// +build !windows

package fswalk

import (
	"os"

	"golang.org/x/sys/unix"
)

// openDirNoFollow opens the directory at dir relative to root for reading.
// O_NOFOLLOW guards against a directory being swapped for a symlink between
// the parent read and this open; O_DIRECTORY rejects anything else.
func openDirNoFollow(root *os.Root, dir string) (*os.File, error) {
	name := dir
	if name == "" {
		name = "."
	}
	return root.OpenFile(name, os.O_RDONLY|unix.O_NOFOLLOW|unix.O_DIRECTORY, 0)
}

// rootDevice returns the device number of the walk root itself.
func rootDevice(root *os.Root) (uint64, error) {
	f, err := openDirNoFollow(root, "")
	if err != nil {
		return 0, err
	}
	defer f.Close()
	var st unix.Stat_t
	if err := unix.Fstat(int(f.Fd()), &st); err != nil {
		return 0, &os.PathError{Op: "fstat", Path: root.Name(), Err: err}
	}
	return uint64(st.Dev), nil
}

// deviceAt returns the device number of name inside the open directory f,
// without following symlinks.
func deviceAt(f *os.File, name string) (uint64, error) {
	var st unix.Stat_t
	if err := unix.Fstatat(int(f.Fd()), name, &st, unix.AT_SYMLINK_NOFOLLOW); err != nil {
		return 0, &os.PathError{Op: "fstatat", Path: f.Name() + "/" + name, Err: err}
	}
	return uint64(st.Dev), nil
}
