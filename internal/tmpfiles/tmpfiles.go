// Package tmpfiles reconciles /var content against systemd tmpfiles.d
// coverage.
//
// Directories and symlinks under /var that no tmpfiles.d entry recreates
// exist only on the initial provisioning of a machine and silently diverge
// from the image afterwards. For each such node this package generates the
// tmpfiles.d line that would cover it (with default ownership). Node types
// tmpfiles.d cannot recreate, such as regular files, are reported
// separately as unsupported.
//
// Fragments are read from usr/lib/tmpfiles.d and etc/tmpfiles.d; run-time
// fragment directories are ignored since they are not image content.
package tmpfiles

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var fragmentDirs = []string{"usr/lib/tmpfiles.d", "etc/tmpfiles.d"}

// Analysis is the result of reconciling /var against tmpfiles.d.
type Analysis struct {
	// Missing holds one generated tmpfiles.d line per uncovered directory
	// or symlink under /var, sorted.
	Missing []string

	// Unsupported holds the paths of nodes under /var whose type
	// tmpfiles.d cannot recreate, sorted.
	Unsupported []string
}

// Empty reports whether the root needs no tmpfiles.d changes.
func (a *Analysis) Empty() bool {
	return len(a.Missing) == 0 && len(a.Unsupported) == 0
}

// Analyze loads every tmpfiles.d fragment in the root and scans /var for
// content without covering entries. A root without /var yields an empty
// analysis.
func Analyze(root *os.Root) (*Analysis, error) {
	covered, err := coveredPaths(root)
	if err != nil {
		return nil, err
	}

	a := &Analysis{}
	varDir, err := root.OpenRoot("var")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return a, nil
		}
		return nil, err
	}
	defer varDir.Close()

	if err := scanDir(varDir, "/var", covered, a); err != nil {
		return nil, err
	}
	sort.Strings(a.Missing)
	sort.Strings(a.Unsupported)
	return a, nil
}

// scanDir walks one directory of /var, generating entries for uncovered
// nodes and recursing into subdirectories regardless of coverage, since a
// covering d line only creates the directory itself.
func scanDir(dir *os.Root, abs string, covered map[string]bool, a *Analysis) error {
	f, err := dir.Open(".")
	if err != nil {
		return err
	}
	entries, err := f.ReadDir(-1)
	f.Close()
	if err != nil {
		return err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, de := range entries {
		name := de.Name()
		childAbs := abs + "/" + name
		switch {
		case de.IsDir():
			if !covered[childAbs] {
				info, err := dir.Lstat(name)
				if err != nil {
					return err
				}
				line := fmt.Sprintf("d %s %04o - - -", quotePath(childAbs), unixMode(info.Mode()))
				a.Missing = append(a.Missing, line)
			}
			sub, err := dir.OpenRoot(name)
			if err != nil {
				return err
			}
			err = scanDir(sub, childAbs, covered, a)
			sub.Close()
			if err != nil {
				return err
			}
		case de.Type()&fs.ModeSymlink != 0:
			if !covered[childAbs] {
				target, err := dir.Readlink(name)
				if err != nil {
					return err
				}
				line := fmt.Sprintf("L %s - - - - %s", quotePath(childAbs), quotePath(target))
				a.Missing = append(a.Missing, line)
			}
		default:
			a.Unsupported = append(a.Unsupported, childAbs)
		}
	}
	return nil
}

// coveredPaths parses every fragment and returns the set of absolute paths
// that tmpfiles.d will create or manage.
func coveredPaths(root *os.Root) (map[string]bool, error) {
	covered := make(map[string]bool)
	for _, dirName := range fragmentDirs {
		dir, err := root.OpenRoot(dirName)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, err
		}
		err = readFragments(dir, covered)
		dir.Close()
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", dirName, err)
		}
	}
	return covered, nil
}

func readFragments(dir *os.Root, covered map[string]bool) error {
	f, err := dir.Open(".")
	if err != nil {
		return err
	}
	entries, err := f.ReadDir(-1)
	f.Close()
	if err != nil {
		return err
	}
	for _, de := range entries {
		name := de.Name()
		if !de.Type().IsRegular() || !strings.HasSuffix(name, ".conf") {
			continue
		}
		data, err := dir.ReadFile(name)
		if err != nil {
			return err
		}
		for _, line := range strings.Split(string(data), "\n") {
			if p := entryPath(line); p != "" {
				covered[p] = true
			}
		}
	}
	return nil
}

// entryPath extracts the path field of one tmpfiles.d line. Comments,
// blank lines and lines without a usable absolute path yield "".
func entryPath(line string) string {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return ""
	}
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return ""
	}
	p := fields[1]
	// Paths with whitespace are quoted.
	if p[0] == '"' || p[0] == '\'' {
		quote := p[0]
		start := strings.IndexByte(line, quote)
		end := strings.IndexByte(line[start+1:], quote)
		if end < 0 {
			return ""
		}
		p = line[start+1 : start+1+end]
	}
	if !strings.HasPrefix(p, "/") {
		return ""
	}
	return path.Clean(p)
}

// unixMode reconstructs the numeric mode bits, including setuid, setgid
// and sticky, from an fs.FileMode.
func unixMode(m fs.FileMode) uint32 {
	bits := uint32(m.Perm())
	if m&fs.ModeSetuid != 0 {
		bits |= 0o4000
	}
	if m&fs.ModeSetgid != 0 {
		bits |= 0o2000
	}
	if m&fs.ModeSticky != 0 {
		bits |= 0o1000
	}
	return bits
}

// quotePath renders a path for a tmpfiles.d line: quoted when it contains
// whitespace or bytes that would not survive the line format.
func quotePath(p string) string {
	clean := utf8.ValidString(p)
	if clean {
		for _, r := range p {
			if unicode.IsSpace(r) || !unicode.IsPrint(r) {
				clean = false
				break
			}
		}
	}
	if clean {
		return p
	}
	return strconv.Quote(p)
}
