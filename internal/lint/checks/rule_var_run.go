package checks

import (
	"io/fs"
	"os"

	"rootlint/internal/fsutil"
	"rootlint/internal/lint"
)

func checkVarRun(root *os.Root) (lint.Result, error) {
	info, err := fsutil.LstatOptional(root, "var/run")
	if err != nil {
		return lint.Result{}, err
	}
	if info != nil && info.Mode()&fs.ModeSymlink == 0 {
		return lint.FailResult("Not a symlink: var/run"), nil
	}
	return lint.PassResult(), nil
}

func init() {
	lint.Register(lint.NewFatal(
		"var-run",
		"Check for /var/run being a physical directory; this is always a bug.",
		checkVarRun,
	))
}
