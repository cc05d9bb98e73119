// Package kernel locates the installed kernel in a bootable root tree.
package kernel

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
)

// ModulesDir is where bootable images carry kernel content.
const ModulesDir = "usr/lib/modules"

// FindKernelDir locates the kernel version directory under usr/lib/modules:
// a subdirectory holding a vmlinuz regular file. It returns "" when the
// root carries no kernel and an error when it carries more than one, since
// images support exactly one installed kernel.
func FindKernelDir(root *os.Root) (string, error) {
	modules, err := root.OpenRoot(ModulesDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	defer modules.Close()

	f, err := modules.Open(".")
	if err != nil {
		return "", err
	}
	entries, err := f.ReadDir(-1)
	f.Close()
	if err != nil {
		return "", err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var found []string
	for _, de := range entries {
		if !de.IsDir() {
			continue
		}
		info, err := modules.Lstat(de.Name() + "/vmlinuz")
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return "", err
		}
		if info.Mode().IsRegular() {
			found = append(found, ModulesDir+"/"+de.Name())
		}
	}
	switch len(found) {
	case 0:
		return "", nil
	case 1:
		return found[0], nil
	default:
		return "", fmt.Errorf("found %d kernel directories in %s, expected at most one", len(found), ModulesDir)
	}
}
