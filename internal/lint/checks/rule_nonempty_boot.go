package checks

import (
	"os"
	"sort"

	"rootlint/internal/fsutil"
	"rootlint/internal/lint"
)

func checkBoot(root *os.Root) (lint.Result, error) {
	boot, err := fsutil.OpenDirOptional(root, "boot")
	if err != nil {
		return lint.Result{}, err
	}
	if boot == nil {
		return lint.FailResult("Missing /boot directory"), nil
	}
	defer boot.Close()

	f, err := boot.Open(".")
	if err != nil {
		return lint.Result{}, err
	}
	entries, err := f.ReadDir(-1)
	f.Close()
	if err != nil {
		return lint.Result{}, err
	}
	if len(entries) == 0 {
		return lint.PassResult(), nil
	}
	names := make([]string, len(entries))
	for i, de := range entries {
		names[i] = de.Name()
	}
	sort.Strings(names)
	return lint.FailResultf("Found non-empty /boot: %q%s", names[0], andNMore(len(names)-1)), nil
}

func init() {
	lint.Register(lint.NewWarning(
		"nonempty-boot",
		`The /boot directory should be present, but empty. The kernel
content should be in /usr/lib/modules instead in the container image.
Any content here in the container image will be masked at runtime.`,
		checkBoot,
	))
}
