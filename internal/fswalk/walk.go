// Package fswalk traverses a filesystem tree through an os.Root handle.
//
// The walk is built for adversarial trees: entry names are passed through
// as raw bytes, symlinks are reported but never followed, and directories
// on a different device than the root are pruned so the walk stays on one
// filesystem. Every directory's entries are visited in name order, so the
// same tree always produces the same visit sequence.
package fswalk

import (
	"io/fs"
	"os"
	"sort"
)

// WalkFunc is invoked once per visited entry. Returning fs.SkipDir for a
// directory entry prevents descent into it (and is a no-op for anything
// else). Returning fs.SkipAll ends the walk immediately with a nil error.
// Any other error aborts the walk and is returned from Walk.
type WalkFunc func(e *Entry) error

// Entry describes one visited node. It and its Dir handle are only valid
// for the duration of the WalkFunc invocation that received it.
type Entry struct {
	// Path is the virtual absolute path of the node, rooted at "/"
	// regardless of where the walked tree lives on the host.
	Path string

	// Name is the raw entry name as returned by the directory read. It is
	// not guaranteed to be valid UTF-8.
	Name string

	// Type holds the mode type bits (fs.ModeDir, fs.ModeSymlink, ...). It
	// is zero for regular files.
	Type fs.FileMode

	// Dir accesses the directory containing this entry.
	Dir *Dir
}

// Info returns lstat metadata for the entry, fetched on demand.
func (e *Entry) Info() (fs.FileInfo, error) {
	return e.Dir.Lstat(e.Name)
}

// IsDir reports whether the entry is a directory.
func (e *Entry) IsDir() bool {
	return e.Type.IsDir()
}

// Dir is a handle to one directory inside the walked tree. Lookups go
// through the walk root, so they cannot escape it.
type Dir struct {
	root *os.Root
	path string // relative to the walk root; "" for the root itself
}

func (d *Dir) join(name string) string {
	if d.path == "" {
		return name
	}
	return d.path + "/" + name
}

// Lstat returns metadata for name without following a final symlink.
func (d *Dir) Lstat(name string) (fs.FileInfo, error) {
	return d.root.Lstat(d.join(name))
}

// ReadLink returns the raw target of the symlink name. The target is not
// resolved; it may be broken, absolute, or point outside the walked tree.
func (d *Dir) ReadLink(name string) (string, error) {
	return d.root.Readlink(d.join(name))
}

// Open opens name under this directory for reading.
func (d *Dir) Open(name string) (*os.File, error) {
	return d.root.Open(d.join(name))
}

// Walk visits every node reachable from root exactly once, calling fn for
// each. The root itself is not visited. Symlinks are visited as leaves and
// never descended into, so trees with cyclic, self-referential or broken
// links always terminate. Directories on a different device than the root
// are neither visited nor descended.
func Walk(root *os.Root, fn WalkFunc) error {
	rootDev, err := rootDevice(root)
	if err != nil {
		return err
	}
	// Iterative traversal; the stack holds directory paths relative to
	// root that are still to be read.
	stack := []string{""}
	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		descend, err := walkDir(root, dir, rootDev, fn)
		if err != nil {
			if err == fs.SkipAll {
				return nil
			}
			return err
		}
		// Push in reverse so directories pop in name order.
		for i := len(descend) - 1; i >= 0; i-- {
			stack = append(stack, descend[i])
		}
	}
	return nil
}

// walkDir reads one directory, invokes fn for each entry in name order, and
// returns the subdirectories to descend into. fs.SkipDir from fn suppresses
// descent into that entry; every other error is returned as-is.
func walkDir(root *os.Root, dir string, rootDev uint64, fn WalkFunc) ([]string, error) {
	f, err := openDirNoFollow(root, dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	entries, err := f.ReadDir(-1)
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	d := &Dir{root: root, path: dir}
	var descend []string
	for _, de := range entries {
		name := de.Name()
		if de.IsDir() {
			dev, err := deviceAt(f, name)
			if err != nil {
				return nil, err
			}
			if dev != rootDev {
				// Mount point; stay on the root's filesystem.
				continue
			}
		}
		e := &Entry{
			Path: "/" + d.join(name),
			Name: name,
			Type: de.Type().Type(),
			Dir:  d,
		}
		if err := fn(e); err != nil {
			if err == fs.SkipDir {
				continue
			}
			return nil, err
		}
		if de.IsDir() {
			descend = append(descend, d.join(name))
		}
	}
	return descend, nil
}
