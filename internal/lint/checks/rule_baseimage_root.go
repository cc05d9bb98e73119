package checks

import (
	"io/fs"
	"os"

	"rootlint/internal/fsutil"
	"rootlint/internal/lint"
)

func checkBaseimageRoot(root *os.Root) (lint.Result, error) {
	res, err := checkBaseimageLayout(root)
	if err != nil || res.Failed() {
		return res, err
	}
	// When the image embeds a documentation copy of the expected root,
	// hold that copy to the same layout.
	ref, err := fsutil.OpenDirOptional(root, baseimageRef)
	if err != nil {
		return lint.Result{}, err
	}
	if ref != nil {
		defer ref.Close()
		return checkBaseimageLayout(ref)
	}
	return lint.PassResult(), nil
}

// checkBaseimageLayout verifies the files and directories expected in the
// root of a base image.
func checkBaseimageLayout(root *os.Root) (lint.Result, error) {
	sysroot, err := fsutil.LstatOptional(root, "sysroot")
	if err != nil {
		return lint.Result{}, err
	}
	switch {
	case sysroot == nil:
		return lint.FailResult("Missing /sysroot"), nil
	case !sysroot.IsDir():
		return lint.FailResult("Expected a directory for /sysroot"), nil
	}

	link, err := fsutil.LstatOptional(root, "ostree")
	if err != nil {
		return lint.Result{}, err
	}
	if link == nil {
		return lint.FailResult("Missing ostree -> sysroot/ostree link"), nil
	}
	if link.Mode()&fs.ModeSymlink == 0 {
		return lint.FailResult("/ostree should be a symlink"), nil
	}
	target, err := root.Readlink("ostree")
	if err != nil {
		return lint.Result{}, err
	}
	const expected = "sysroot/ostree"
	if target != expected {
		return lint.FailResultf("Expected /ostree -> %s, not %q", expected, target), nil
	}
	return lint.PassResult(), nil
}

func init() {
	lint.Register(lint.NewFatal(
		"baseimage-root",
		`Check that expected files are present in the root of the filesystem; such
as /sysroot and a composefs configuration for ostree. More in
<https://bootc-dev.github.io/bootc/bootc-images.html#standard-image-content>.`,
		checkBaseimageRoot,
	))
}
