package checks

import (
	"os"

	"rootlint/internal/fsutil"
	"rootlint/internal/lint"
)

func checkUsrEtc(root *os.Root) (lint.Result, error) {
	etc, err := fsutil.LstatOptional(root, "etc")
	if err != nil {
		return lint.Result{}, err
	}
	// Tolerate roots with no /etc at all.
	if etc == nil {
		return lint.PassResult(), nil
	}
	usrEtc, err := fsutil.LstatOptional(root, "usr/etc")
	if err != nil {
		return lint.Result{}, err
	}
	if usrEtc != nil {
		return lint.FailResult("Found /usr/etc - this is a bootc implementation detail and not supported to use in containers"), nil
	}
	return lint.PassResult(), nil
}

func init() {
	lint.Register(lint.NewFatal(
		"etc-usretc",
		`Verify that only one of /etc or /usr/etc exist. You should only have /etc
in a container image. It will cause undefined behavior to have both /etc
and /usr/etc.`,
		checkUsrEtc,
	))
}
