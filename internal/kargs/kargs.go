// Package kargs reads kernel argument fragments from usr/lib/bootc/kargs.d.
package kargs

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"slices"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Dir is the kargs fragment directory inside a root.
const Dir = "usr/lib/bootc/kargs.d"

// fragment is the schema of one kargs.d file. Unknown keys are rejected so
// typos in image builds surface as parse errors instead of silently
// dropping arguments.
type fragment struct {
	Kargs              []string `toml:"kargs"`
	MatchArchitectures []string `toml:"match-architectures"`
}

// CurrentArch returns the kernel-style architecture name of the running
// process, which is the vocabulary kargs.d fragments match against.
func CurrentArch() string {
	switch runtime.GOARCH {
	case "amd64":
		return "x86_64"
	case "arm64":
		return "aarch64"
	case "386":
		return "x86"
	default:
		return runtime.GOARCH
	}
}

// Kargs parses every *.toml fragment under usr/lib/bootc/kargs.d in the
// root and returns the aggregated kernel arguments applying to arch, in
// fragment name order. A missing directory yields no arguments. A fragment
// that does not parse, or a kargs.d that is not a directory, is an error.
func Kargs(root *os.Root, arch string) ([]string, error) {
	sub, err := root.OpenRoot(Dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer sub.Close()

	f, err := sub.Open(".")
	if err != nil {
		return nil, err
	}
	entries, err := f.ReadDir(-1)
	f.Close()
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var args []string
	for _, de := range entries {
		name := de.Name()
		if !de.Type().IsRegular() || !strings.HasSuffix(name, ".toml") {
			continue
		}
		data, err := sub.ReadFile(name)
		if err != nil {
			return nil, err
		}
		frag, err := parseFragment(data)
		if err != nil {
			return nil, fmt.Errorf("parsing %s/%s: %w", Dir, name, err)
		}
		if len(frag.MatchArchitectures) > 0 && !slices.Contains(frag.MatchArchitectures, arch) {
			continue
		}
		args = append(args, frag.Kargs...)
	}
	return args, nil
}

func parseFragment(data []byte) (*fragment, error) {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var frag fragment
	if err := dec.Decode(&frag); err != nil {
		return nil, err
	}
	return &frag, nil
}
