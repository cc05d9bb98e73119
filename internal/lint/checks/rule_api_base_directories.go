package checks

import (
	"os"

	"rootlint/internal/fsutil"
	"rootlint/internal/lint"
)

// https://systemd.io/API_FILE_SYSTEMS/ plus /var, which bootable images
// must also carry.
var apiDirs = []string{"dev", "proc", "sys", "run", "tmp", "var"}

func checkAPIDirs(root *os.Root) (lint.Result, error) {
	for _, d := range apiDirs {
		info, err := fsutil.LstatOptional(root, d)
		if err != nil {
			return lint.Result{}, err
		}
		if info == nil {
			return lint.FailResultf("Missing API filesystem base directory: /%s", d), nil
		}
		if !info.IsDir() {
			return lint.FailResultf("Expected directory for API filesystem base directory: /%s", d), nil
		}
	}
	return lint.PassResult(), nil
}

func init() {
	lint.Register(lint.NewFatal(
		"api-base-directories",
		`Verify that expected base API directories exist. For more information
on these, see <https://systemd.io/API_FILE_SYSTEMS/>.

Note that in addition, bootc requires that /var exist as a directory.`,
		checkAPIDirs,
	))
}
