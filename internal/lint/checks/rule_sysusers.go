package checks

import (
	"os"
	"strings"

	"rootlint/internal/lint"
	"rootlint/internal/sysusers"
)

func checkSysusers(root *os.Root) (lint.Result, error) {
	a, err := sysusers.Analyze(root)
	if err != nil {
		return lint.Result{}, err
	}
	if a.Empty() {
		return lint.PassResult(), nil
	}
	var msg strings.Builder
	appendSection(&msg, "Found /etc/passwd entry without corresponding systemd sysusers.d:", a.MissingUsers)
	appendSection(&msg, "Found /etc/group entry without corresponding systemd sysusers.d:", a.MissingGroups)
	return lint.FailResult(msg.String()), nil
}

func init() {
	lint.Register(lint.NewWarning(
		"sysusers",
		`Check for users in /etc/passwd and groups in /etc/group that do not have corresponding
systemd sysusers.d entries in /usr/lib/sysusers.d.
This can cause a problem across upgrades because if /etc is not transient and is locally
modified (commonly due to local user additions), then the contents of /etc/passwd in the new container
image may not be visible.

Using systemd-sysusers to allocate users and groups will ensure that these are allocated
on system startup alongside other users.

More on this topic in <https://bootc-dev.github.io/bootc/building/users-and-groups.html>`,
		checkSysusers,
	))
}
