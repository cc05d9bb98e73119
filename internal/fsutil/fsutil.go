// Package fsutil holds small filesystem helpers shared by the checks.
//
// Everything here operates through an os.Root handle, so lookups cannot
// escape the target tree through symlinks or dot-dot components.
package fsutil

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// LstatOptional returns metadata for name relative to root without
// following a final symlink, or (nil, nil) when nothing exists at that
// path. Other lookup failures are returned as errors.
func LstatOptional(root *os.Root, name string) (fs.FileInfo, error) {
	info, err := root.Lstat(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return info, nil
}

// OpenDirOptional opens the directory at name relative to root, or returns
// (nil, nil) when nothing exists at that path. An entry that exists but is
// not a directory is an error. The caller owns the returned handle and must
// Close it.
func OpenDirOptional(root *os.Root, name string) (*os.Root, error) {
	sub, err := root.OpenRoot(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return sub, nil
}

// PathQuoted renders a path for human-readable output. Paths that are valid
// printable UTF-8 come back verbatim; anything else is quoted with Go
// escape syntax so arbitrary bytes survive the trip through a terminal.
func PathQuoted(p string) string {
	if utf8.ValidString(p) && printable(p) {
		return p
	}
	return strconv.Quote(p)
}

func printable(s string) bool {
	for _, r := range s {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}
