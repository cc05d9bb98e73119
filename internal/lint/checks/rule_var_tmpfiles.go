package checks

import (
	"os"
	"strings"

	"rootlint/internal/fsutil"
	"rootlint/internal/lint"
	"rootlint/internal/tmpfiles"
)

func checkVarTmpfiles(root *os.Root) (lint.Result, error) {
	a, err := tmpfiles.Analyze(root)
	if err != nil {
		return lint.Result{}, err
	}
	if a.Empty() {
		return lint.PassResult(), nil
	}
	quoted := make([]string, len(a.Unsupported))
	for i, p := range a.Unsupported {
		quoted[i] = fsutil.PathQuoted(p)
	}
	var msg strings.Builder
	appendSection(&msg, "Found content in /var missing systemd tmpfiles.d entries:", a.Missing)
	appendSection(&msg, "Found non-directory/non-symlink files in /var:", quoted)
	return lint.FailResult(msg.String()), nil
}

func init() {
	// On an alternative root /var legitimately holds machine state, so
	// the rule only makes sense against the running system.
	lint.Register(lint.NewWarning(
		"var-tmpfiles",
		`Check for content in /var that does not have corresponding systemd
tmpfiles.d entries. This can cause a problem across upgrades because
content in /var from the container image will only be applied on the
initial provisioning.

Instead, it's recommended to have /var effectively empty in the container
image, and use systemd tmpfiles.d to generate empty directories and
compatibility symbolic links as part of each boot.`,
		checkVarTmpfiles,
	).WithRootType(lint.RootTypeRunning))
}
