// Package lint defines the rule model: what a check is, how severe a
// failed one is, and the process-wide registry the engine runs from.
package lint

import (
	"fmt"
	"os"

	"rootlint/internal/fswalk"
)

// Severity classifies how bad a failed rule is for the target.
type Severity int

const (
	// SeverityFatal marks a defect known to break installation or boot of
	// the target.
	SeverityFatal Severity = iota
	// SeverityWarning marks a defect that is undesirable but survivable.
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityFatal:
		return "fatal"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// RootType distinguishes the kinds of target a rule can apply to.
type RootType int

const (
	// RootTypeRunning is the root of the currently booted system.
	RootTypeRunning RootType = iota
	// RootTypeAlternative is a root tree materialized somewhere else, such
	// as an unpacked bootable container image.
	RootTypeAlternative
)

func (t RootType) String() string {
	switch t {
	case RootTypeRunning:
		return "running"
	case RootTypeAlternative:
		return "alternative"
	default:
		return fmt.Sprintf("roottype(%d)", int(t))
	}
}

// ParseRootType converts the CLI spelling of a root type.
func ParseRootType(s string) (RootType, error) {
	switch s {
	case "running":
		return RootTypeRunning, nil
	case "alternative":
		return RootTypeAlternative, nil
	default:
		return 0, fmt.Errorf("unknown root type %q (must be running or alternative)", s)
	}
}

// WarningDisposition controls whether warning-severity findings count
// toward the failure verdict of a run.
type WarningDisposition int

const (
	// AllowWarnings reports warnings without failing the run.
	AllowWarnings WarningDisposition = iota
	// FatalWarnings makes any warning fail the run.
	FatalWarnings
)

// CheckFunc evaluates a rule against the whole target root, performing
// whatever lookups or traversal it needs.
type CheckFunc func(root *os.Root) (Result, error)

// EntryCheckFunc evaluates a rule against a single entry of the shared
// filesystem walk.
type EntryCheckFunc func(e *fswalk.Entry) (Result, error)

// Rule is one independent, named correctness check.
//
// Exactly one of Check and CheckEntry must be set; Register enforces this
// at startup.
type Rule struct {
	// Name uniquely identifies the rule. It is the key used for ordering,
	// skipping, and transcript lines.
	Name string

	// Severity decides whether a violation fails the run.
	Severity Severity

	// Description is static documentation shown by the listing commands.
	Description string

	// RootType restricts the rule to one kind of target. Nil applies to
	// both kinds.
	RootType *RootType

	// Check runs the rule against the whole root.
	Check CheckFunc

	// CheckEntry runs the rule against one walk entry at a time. Rules of
	// this shape share a single traversal and report at most one finding
	// per run.
	CheckEntry EntryCheckFunc
}

// NewFatal builds a whole-tree rule with fatal severity.
func NewFatal(name, description string, check CheckFunc) Rule {
	return Rule{Name: name, Severity: SeverityFatal, Description: description, Check: check}
}

// NewWarning builds a whole-tree rule with warning severity.
func NewWarning(name, description string, check CheckFunc) Rule {
	return Rule{Name: name, Severity: SeverityWarning, Description: description, Check: check}
}

// WithRootType returns a copy of the rule restricted to one target kind.
func (r Rule) WithRootType(t RootType) Rule {
	r.RootType = &t
	return r
}

// PerNode reports whether the rule runs against individual walk entries.
func (r Rule) PerNode() bool {
	return r.CheckEntry != nil
}

// AppliesTo reports whether the rule runs for targets of the given kind.
func (r Rule) AppliesTo(t RootType) bool {
	return r.RootType == nil || *r.RootType == t
}
