package checks

import (
	"os"

	"rootlint/internal/kernel"
	"rootlint/internal/lint"
	"rootlint/internal/logger"
)

func checkKernel(root *os.Root) (lint.Result, error) {
	dir, err := kernel.FindKernelDir(root)
	if err != nil {
		return lint.Result{}, err
	}
	logger.Debugf("found kernel: %q", dir)
	return lint.PassResult(), nil
}

func init() {
	lint.Register(lint.NewFatal(
		"kernel",
		`Check for multiple kernels, i.e. multiple directories of the form /usr/lib/modules/$kver.
Only one kernel is supported in an image.`,
		checkKernel,
	))
}
