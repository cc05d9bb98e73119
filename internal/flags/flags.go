package flags

// Package flags defines canonical CLI flag names shared across the CLI.
// Keeping these as constants helps avoid drift between Cobra flag wiring and
// other code paths that need to reference flags (e.g. help text and error
// messages).
// IMPORTANT: These are flag *names* without leading dashes.
// Example usage:
//
//	cmd.Flags().StringVar(&cfg.Target.Rootfs, flags.FlagRootfs, "/", "...")
//	arg := "--" + flags.FlagRootfs
const (
	// Target
	FlagRootfs   = "rootfs"
	FlagRootType = "root-type"

	// Lint
	FlagSkip          = "skip"
	FlagFatalWarnings = "fatal-warnings"
	FlagList          = "list"
)
