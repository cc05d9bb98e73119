// Package output renders the lint transcript.
//
// The transcript is plain text on a single writer, with no color and no
// timestamps: two runs over identical input must produce identical bytes.
// Diagnostics that do not belong in the transcript go through the logger
// on stderr instead.
package output

import (
	"fmt"
	"io"
)

// Transcript writes the user-facing record of one lint run.
type Transcript struct {
	w io.Writer
}

func NewTranscript(w io.Writer) *Transcript {
	return &Transcript{w: w}
}

// Failure records a fatal-severity violation.
func (t *Transcript) Failure(name, msg string) error {
	_, err := fmt.Fprintf(t.w, "Failed lint: %s: %s\n", name, msg)
	return err
}

// Warning records a warning-severity violation.
func (t *Transcript) Warning(name, msg string) error {
	_, err := fmt.Fprintf(t.w, "Lint warning: %s: %s\n", name, msg)
	return err
}

// Passed writes the summary count of rules that found nothing.
func (t *Transcript) Passed(n int) error {
	_, err := fmt.Fprintf(t.w, "Checks passed: %d\n", n)
	return err
}

// Skipped writes the summary count of rules excluded from the run. The
// caller emits it only when nonzero.
func (t *Transcript) Skipped(n int) error {
	_, err := fmt.Fprintf(t.w, "Checks skipped: %d\n", n)
	return err
}

// Warnings writes the summary count of warning-severity violations. The
// caller emits it only when nonzero.
func (t *Transcript) Warnings(n int) error {
	_, err := fmt.Fprintf(t.w, "Warnings: %d\n", n)
	return err
}
