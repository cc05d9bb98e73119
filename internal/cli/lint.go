package cli

import (
	"errors"
	"fmt"
	"os"

	"rootlint/internal/config"
	"rootlint/internal/engine"
	"rootlint/internal/flags"
	"rootlint/internal/lint"

	"github.com/spf13/cobra"
)

var cfg = config.New()

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Lint a root filesystem tree",
	Long: `Lint a root filesystem tree against the built-in rules.

By default the running system root ("/") is linted; point --rootfs at an
unpacked image to lint that instead. Every lookup happens through a handle
on the target root, so symlinks inside the tree cannot redirect checks to
the host filesystem.

Root types:
	Some rules only make sense for one kind of target. The kind is detected
	from --rootfs ("/" is the running system, anything else an alternative
	root) and can be overridden with --root-type.

Output:
	One line per violation on stdout, then summary counts. Identical trees
	produce byte-identical transcripts.

Exit codes:
	0 = all checks passed
	1 = checks failed
	2 = the run could not complete

Examples:
	# Lint the running system
	rootlint lint

	# Lint an unpacked image root, failing on warnings
	rootlint lint --rootfs /path/to/rootfs --fatal-warnings

	# Skip individual rules
	rootlint lint --skip var-log --skip utf8
`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
		if cfg.Lint.ListOnly {
			if err := lint.WriteList(cmd.OutOrStdout()); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(2)
			}
			return
		}
		os.Exit(runLint(cmd, cfg))
	},
}

// runLint executes the engine for the configured target and maps the
// outcome to the documented exit codes.
func runLint(cmd *cobra.Command, cfg *config.Config) int {
	rootType, err := resolveRootType(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	root, err := os.OpenRoot(cfg.Target.Rootfs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: opening target root: %v\n", err)
		return 2
	}
	defer root.Close()

	disposition := lint.AllowWarnings
	if cfg.Lint.FatalWarnings {
		disposition = lint.FatalWarnings
	}
	return exitCodeForRun(engine.Run(root, disposition, rootType, cfg.Lint.Skip, cmd.OutOrStdout()))
}

func exitCodeForRun(err error) int {
	if err == nil {
		return 0
	}
	var failed *engine.ChecksFailedError
	if errors.As(err, &failed) {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return 2
}

// resolveRootType returns the declared kind of the target, or detects it
// from the target path: linting "/" means linting the running system.
func resolveRootType(cfg *config.Config) (lint.RootType, error) {
	if cfg.Target.RootType != "" {
		return lint.ParseRootType(cfg.Target.RootType)
	}
	if cfg.Target.Rootfs == "/" {
		return lint.RootTypeRunning, nil
	}
	return lint.RootTypeAlternative, nil
}

func init() {
	rootCmd.AddCommand(lintCmd)

	// Target
	lintCmd.Flags().StringVar(&cfg.Target.Rootfs, flags.FlagRootfs, "/", "Path of the root filesystem tree to lint")
	lintCmd.Flags().StringVar(&cfg.Target.RootType, flags.FlagRootType, "", "Kind of target root: running|alternative (default: detected from --rootfs)")

	// Lint
	lintCmd.Flags().StringSliceVar(&cfg.Lint.Skip, flags.FlagSkip, nil, "Rule name to skip (repeatable; comma-separated accepted)")
	lintCmd.Flags().BoolVar(&cfg.Lint.FatalWarnings, flags.FlagFatalWarnings, false, "Make warning-severity findings fail the run")
	lintCmd.Flags().BoolVar(&cfg.Lint.ListOnly, flags.FlagList, false, "List the registered rules instead of linting")
}
