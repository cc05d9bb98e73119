package checks

import (
	"os"

	"rootlint/internal/kargs"
	"rootlint/internal/lint"
	"rootlint/internal/logger"
)

func checkParseKargs(root *os.Root) (lint.Result, error) {
	args, err := kargs.Kargs(root, kargs.CurrentArch())
	if err != nil {
		return lint.Result{}, err
	}
	logger.Debugf("found kargs: %v", args)
	return lint.PassResult(), nil
}

func init() {
	lint.Register(lint.NewFatal(
		"bootc-kargs",
		"Verify syntax of /usr/lib/bootc/kargs.d.",
		checkParseKargs,
	))
}
