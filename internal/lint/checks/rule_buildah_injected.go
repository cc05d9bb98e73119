package checks

import (
	"os"

	"rootlint/internal/fsutil"
	"rootlint/internal/lint"
)

var runtimeInjected = []string{"etc/hostname", "etc/resolv.conf"}

func checkBuildahInjected(root *os.Root) (lint.Result, error) {
	for _, name := range runtimeInjected {
		info, err := fsutil.LstatOptional(root, name)
		if err != nil {
			return lint.Result{}, err
		}
		if info == nil {
			continue
		}
		if info.Mode().IsRegular() && info.Size() == 0 {
			return lint.FailResultf("/%s is an empty file; this may have been synthesized by a container runtime.", name), nil
		}
	}
	return lint.PassResult(), nil
}

func init() {
	// On the running system these files are expected to be populated, so
	// the rule only makes sense against an alternative root.
	lint.Register(lint.NewWarning(
		"buildah-injected",
		`Check for an invalid /etc/hostname or /etc/resolv.conf that may have been injected by
a container build system.`,
		checkBuildahInjected,
	).WithRootType(lint.RootTypeAlternative))
}
