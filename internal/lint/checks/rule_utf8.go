package checks

import (
	"io/fs"
	"path"
	"strconv"
	"unicode/utf8"

	"rootlint/internal/fsutil"
	"rootlint/internal/fswalk"
	"rootlint/internal/lint"
)

func checkUTF8(e *fswalk.Entry) (lint.Result, error) {
	// An invalid name is reported before the target of a symlink carrying
	// it is even looked at.
	if !utf8.ValidString(e.Name) {
		parent := path.Dir(e.Path)
		return lint.FailResultf("%s: Found non-utf8 filename %s", fsutil.PathQuoted(parent), strconv.Quote(e.Name)), nil
	}
	if e.Type&fs.ModeSymlink != 0 {
		target, err := e.Dir.ReadLink(e.Name)
		if err != nil {
			return lint.Result{}, err
		}
		if !utf8.ValidString(target) {
			return lint.FailResultf("%s: Found non-utf8 symlink target", fsutil.PathQuoted(e.Path)), nil
		}
	}
	return lint.PassResult(), nil
}

func init() {
	lint.Register(lint.Rule{
		Name:     "utf8",
		Severity: lint.SeverityFatal,
		Description: `Check for non-UTF8 filenames. Currently, the ostree backend of bootc only supports
UTF-8 filenames. Non-UTF8 filenames will cause a fatal error.`,
		CheckEntry: checkUTF8,
	})
}
