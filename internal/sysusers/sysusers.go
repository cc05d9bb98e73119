// Package sysusers reconciles /etc/passwd and /etc/group against systemd
// sysusers.d declarations.
//
// Accounts present only in /etc are invisible after an image update when
// /etc is locally modified; declaring them in sysusers.d allocates them on
// every boot instead.
package sysusers

import (
	"errors"
	"io/fs"
	"os"
	"sort"
	"strings"
)

// FragmentDir is where image builds place sysusers.d declarations.
const FragmentDir = "usr/lib/sysusers.d"

// Analysis lists the principals in /etc with no covering sysusers.d entry.
type Analysis struct {
	// MissingUsers holds /etc/passwd user names with no u declaration,
	// sorted.
	MissingUsers []string

	// MissingGroups holds /etc/group group names with no g or u
	// declaration, sorted.
	MissingGroups []string
}

// Empty reports whether every principal is covered.
func (a *Analysis) Empty() bool {
	return len(a.MissingUsers) == 0 && len(a.MissingGroups) == 0
}

// Analyze compares the root's account databases against its sysusers.d
// declarations. Missing database files yield no principals on that side.
func Analyze(root *os.Root) (*Analysis, error) {
	users, err := namesFromColonFile(root, "etc/passwd")
	if err != nil {
		return nil, err
	}
	groups, err := namesFromColonFile(root, "etc/group")
	if err != nil {
		return nil, err
	}
	declaredUsers, declaredGroups, err := declarations(root)
	if err != nil {
		return nil, err
	}

	a := &Analysis{}
	for _, u := range users {
		if !declaredUsers[u] {
			a.MissingUsers = append(a.MissingUsers, u)
		}
	}
	for _, g := range groups {
		if !declaredGroups[g] {
			a.MissingGroups = append(a.MissingGroups, g)
		}
	}
	sort.Strings(a.MissingUsers)
	sort.Strings(a.MissingGroups)
	return a, nil
}

// namesFromColonFile returns the name field (first column) of each entry
// of a passwd-style database. A missing file yields no names.
func namesFromColonFile(root *os.Root, file string) ([]string, error) {
	data, err := root.ReadFile(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var names []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name, _, _ := strings.Cut(line, ":")
		if name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}

// declarations parses usr/lib/sysusers.d/*.conf. A u line declares the
// user and an implicit primary group of the same name; a g line declares a
// group. m and r lines declare no principals.
func declarations(root *os.Root) (users, groups map[string]bool, err error) {
	users = make(map[string]bool)
	groups = make(map[string]bool)

	dir, err := root.OpenRoot(FragmentDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return users, groups, nil
		}
		return nil, nil, err
	}
	defer dir.Close()

	f, err := dir.Open(".")
	if err != nil {
		return nil, nil, err
	}
	entries, err := f.ReadDir(-1)
	f.Close()
	if err != nil {
		return nil, nil, err
	}
	for _, de := range entries {
		name := de.Name()
		if !de.Type().IsRegular() || !strings.HasSuffix(name, ".conf") {
			continue
		}
		data, err := dir.ReadFile(name)
		if err != nil {
			return nil, nil, err
		}
		for _, line := range strings.Split(string(data), "\n") {
			addDeclaration(line, users, groups)
		}
	}
	return users, groups, nil
}

func addDeclaration(line string, users, groups map[string]bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return
	}
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return
	}
	name := strings.Trim(fields[1], `"'`)
	if name == "" {
		return
	}
	switch fields[0] {
	case "u", "u!":
		users[name] = true
		groups[name] = true
	case "g":
		groups[name] = true
	}
}
