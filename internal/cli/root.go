package cli

import (
	"fmt"
	"os"

	"rootlint/internal/logger"

	"github.com/spf13/cobra"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "rootlint",
	Short: "Verify the layout and contents of a bootable root filesystem tree",
	Long: `rootlint validates a root filesystem tree - the running system root or an
alternative root such as an unpacked bootable container image - against a
registry of independent correctness rules.

rootlint is check-only: it finds defects, it never mutates the tree.

Examples:
	# Show available commands and global flags
	rootlint --help

	# Lint an unpacked image root
	rootlint lint --rootfs /path/to/rootfs

	# List rules
	rootlint rules list

	# Print build info
	rootlint version

Output:
	The lint transcript is written to stdout; diagnostics go to stderr.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := "info"
		if cfg.Runtime.Verbose {
			level = "debug"
		}
		logger.Init(level)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&cfg.Runtime.Verbose, "verbose", false, "Enable verbose logging (per-rule diagnostics on stderr)")
}

func SetBuildInfo(version, commit, date string) {
	if version != "" {
		buildVersion = version
	}
	if commit != "" {
		buildCommit = commit
	}
	if date != "" {
		buildDate = date
	}

	rootCmd.Version = fmt.Sprintf("%s (%s) %s", buildVersion, buildCommit, buildDate)
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func BuildInfo() (version, commit, date string) {
	return buildVersion, buildCommit, buildDate
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
