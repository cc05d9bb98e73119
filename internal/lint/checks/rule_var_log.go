package checks

import (
	"os"
	"sort"

	"rootlint/internal/fsutil"
	"rootlint/internal/lint"
)

func checkVarLog(root *os.Root) (lint.Result, error) {
	logDir, err := fsutil.OpenDirOptional(root, "var/log")
	if err != nil {
		return lint.Result{}, err
	}
	if logDir == nil {
		return lint.PassResult(), nil
	}
	defer logDir.Close()

	var nonempty []string
	if err := collectNonemptyRegfiles(logDir, "/var/log", &nonempty); err != nil {
		return lint.Result{}, err
	}
	if len(nonempty) == 0 {
		return lint.PassResult(), nil
	}
	sort.Strings(nonempty)
	return lint.FailResultf("Found non-empty logfile: %s%s", nonempty[0], andNMore(len(nonempty)-1)), nil
}

// collectNonemptyRegfiles appends the path of every regular file with a
// size above zero under dir. Symlinks are not followed.
func collectNonemptyRegfiles(dir *os.Root, prefix string, out *[]string) error {
	f, err := dir.Open(".")
	if err != nil {
		return err
	}
	entries, err := f.ReadDir(-1)
	f.Close()
	if err != nil {
		return err
	}
	for _, de := range entries {
		name := de.Name()
		switch {
		case de.Type().IsRegular():
			info, err := dir.Lstat(name)
			if err != nil {
				return err
			}
			if info.Size() > 0 {
				*out = append(*out, prefix+"/"+name)
			}
		case de.IsDir():
			sub, err := dir.OpenRoot(name)
			if err != nil {
				return err
			}
			err = collectNonemptyRegfiles(sub, prefix+"/"+name, out)
			sub.Close()
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func init() {
	lint.Register(lint.NewWarning(
		"var-log",
		`Check for non-empty regular files in /var/log. It is often undesired
to ship log files in container images. Log files in general are usually
per-machine state in /var. Additionally, log files often include
timestamps, causing unreproducible container images, and may contain
sensitive build system information.`,
		checkVarLog,
	))
}
