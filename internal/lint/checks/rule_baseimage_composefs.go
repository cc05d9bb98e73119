package checks

import (
	"os"

	"rootlint/internal/fsutil"
	"rootlint/internal/lint"
	"rootlint/internal/prepareroot"
)

func checkComposefs(root *os.Root) (lint.Result, error) {
	res, err := checkComposefsLayer(root)
	if err != nil || res.Failed() {
		return res, err
	}
	// When the image embeds a documentation copy of the expected root,
	// hold that copy to the same configuration.
	ref, err := fsutil.OpenDirOptional(root, baseimageRef)
	if err != nil {
		return lint.Result{}, err
	}
	if ref != nil {
		defer ref.Close()
		return checkComposefsLayer(ref)
	}
	return lint.PassResult(), nil
}

func checkComposefsLayer(root *os.Root) (lint.Result, error) {
	cfg, err := prepareroot.LoadConfig(root)
	if err != nil {
		return lint.Result{}, err
	}
	if cfg == nil {
		return lint.FailResultf("%s is not present to enable composefs", prepareroot.ConfPath), nil
	}
	enabled, err := cfg.ComposefsEnabled()
	if err != nil {
		return lint.Result{}, err
	}
	if !enabled {
		return lint.FailResultf("%s does not have composefs enabled", prepareroot.ConfPath), nil
	}
	return lint.PassResult(), nil
}

func init() {
	lint.Register(lint.NewWarning(
		"baseimage-composefs",
		`Check that composefs is enabled for ostree. More in
<https://ostreedev.github.io/ostree/composefs/>.`,
		checkComposefs,
	))
}
