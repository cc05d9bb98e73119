package config

import (
	"fmt"
	"strings"
)

type Config struct {
	// MAINTAINER NOTE: If you add/change/remove config fields that affect lint
	// behavior, keep the CLI flags in internal/cli/lint.go in sync.
	Target  Target
	Lint    Lint
	Runtime Runtime
}

type Target struct {
	// Rootfs is the path of the root filesystem tree to lint (see --rootfs).
	// Defaults to "/", the root of the current process.
	Rootfs string

	// RootType declares what kind of root the target is (see --root-type).
	// Allowed values: running, alternative. Empty means detect from Rootfs:
	// "/" is the running root, anything else an alternative root.
	RootType string
}

type Lint struct {
	// Skip lists rule names excluded from the run (see --skip).
	// Values may be provided as repeated flags and/or comma-separated lists.
	Skip []string

	// FatalWarnings makes warning-severity findings fail the run (see --fatal-warnings).
	FatalWarnings bool

	// ListOnly dumps the rule registry instead of linting (see --list).
	ListOnly bool
}

type Runtime struct {
	// Verbose enables more detailed diagnostics on stderr.
	Verbose bool
}

func New() *Config {
	return &Config{
		Target: Target{
			Rootfs: "/",
		},
	}
}

func (c *Config) Validate() error {
	// Normalize comma-delimited list inputs.
	c.Lint.Skip = splitCommaList(c.Lint.Skip)

	if strings.TrimSpace(c.Target.Rootfs) == "" {
		c.Target.Rootfs = "/"
	}

	c.Target.RootType = normalizeEnumValue(c.Target.RootType)
	switch c.Target.RootType {
	case "", "running", "alternative":
	default:
		return fmt.Errorf("unsupported --root-type: %s (must be one of: running, alternative)", c.Target.RootType)
	}

	return nil
}

func normalizeEnumValue(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func splitCommaList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			p := strings.TrimSpace(part)
			if p == "" {
				continue
			}
			out = append(out, p)
		}
	}
	return out
}
