// Package engine runs the registered lint rules against a target root and
// renders the outcome as a transcript.
//
// A rule that evaluates and finds a violation is a normal outcome: it
// becomes a transcript line and counts toward the verdict. A rule that
// cannot be evaluated at all aborts the whole run with an error naming the
// rule; a half-checked tree must not look like a mostly-passing one.
package engine

import (
	"fmt"
	"io"
	"io/fs"
	"os"

	"rootlint/internal/fswalk"
	"rootlint/internal/lint"
	"rootlint/internal/logger"
	"rootlint/internal/output"
)

// ChecksFailedError is the verdict of a run whose violations, after
// applying the warning disposition, fail it.
type ChecksFailedError struct {
	Count int
}

func (e *ChecksFailedError) Error() string {
	return fmt.Sprintf("Checks failed: %d", e.Count)
}

// Run executes every registered rule applicable to the target and writes
// the transcript to out. It returns *ChecksFailedError when violations
// fail the run, or another error when the run could not complete.
func Run(root *os.Root, disposition lint.WarningDisposition, rootType lint.RootType, skip []string, out io.Writer) error {
	tally, err := execute(root, lint.All(), rootType, skip, out)
	if err != nil {
		return err
	}

	tr := output.NewTranscript(out)
	if err := tr.Passed(tally.Passed); err != nil {
		return err
	}
	if tally.Skipped > 0 {
		if err := tr.Skipped(tally.Skipped); err != nil {
			return err
		}
	}
	failed := tally.Fatal
	if disposition == lint.FatalWarnings {
		failed += tally.Warnings
	}
	if tally.Warnings > 0 {
		if err := tr.Warnings(tally.Warnings); err != nil {
			return err
		}
	}
	if failed > 0 {
		return &ChecksFailedError{Count: failed}
	}
	return nil
}

// outcome pairs a rule with what happened when it ran. A non-nil err is an
// unexpected runtime failure; otherwise result holds the check verdict.
type outcome struct {
	rule   lint.Rule
	result lint.Result
	err    error
}

// execute runs the applicable subset of all against root and writes one
// transcript line per violation. Whole-tree rules run first in name order,
// then every per-node rule shares a single traversal; per-node findings are
// merged failures-first so their position in the walk does not leak into
// the transcript.
func execute(root *os.Root, all []lint.Rule, rootType lint.RootType, skip []string, out io.Writer) (Tally, error) {
	wholeTree, perNode, skipped := filterRules(all, rootType, skip)
	tally := Tally{Skipped: skipped}

	outcomes := make([]outcome, 0, len(wholeTree)+len(perNode))
	for _, r := range wholeTree {
		res, err := r.Check(root)
		if err != nil {
			return Tally{}, ruleError(r.Name, err)
		}
		outcomes = append(outcomes, outcome{rule: r, result: res})
	}

	perNodeOutcomes, err := runMultiplexedWalk(root, perNode)
	if err != nil {
		return Tally{}, err
	}
	outcomes = append(outcomes, perNodeOutcomes...)

	tr := output.NewTranscript(out)
	for _, o := range outcomes {
		if o.err != nil {
			return Tally{}, ruleError(o.rule.Name, o.err)
		}
		if !o.result.Failed() {
			logger.Debugf("OK %s (type=%s)", o.rule.Name, o.rule.Severity)
			tally.Passed++
			continue
		}
		switch o.rule.Severity {
		case lint.SeverityFatal:
			if err := tr.Failure(o.rule.Name, o.result.Message); err != nil {
				return Tally{}, err
			}
			tally.Fatal++
		case lint.SeverityWarning:
			if err := tr.Warning(o.rule.Name, o.result.Message); err != nil {
				return Tally{}, err
			}
			tally.Warnings++
		}
	}
	return tally, nil
}

func ruleError(name string, err error) error {
	return fmt.Errorf("unexpected runtime error running lint %s: %w", name, err)
}

// runMultiplexedWalk drives one traversal of the tree, offering every
// visited entry to each rule still live. A rule leaves the live set on its
// first violation or runtime error, so a per-node rule reports at most one
// finding per run. Rules still live when the walk ends passed. Outcomes
// come back failures first, each group in name order.
func runMultiplexedWalk(root *os.Root, rules []lint.Rule) ([]outcome, error) {
	if len(rules) == 0 {
		return nil, nil
	}
	live := len(rules)
	captured := make([]*outcome, len(rules))
	err := fswalk.Walk(root, func(e *fswalk.Entry) error {
		if live == 0 {
			// Nothing left that wants entries.
			return fs.SkipAll
		}
		for i, r := range rules {
			if captured[i] != nil {
				continue
			}
			res, err := r.CheckEntry(e)
			if err == nil && !res.Failed() {
				continue
			}
			captured[i] = &outcome{rule: r, result: res, err: err}
			live--
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking target root: %w", err)
	}

	outcomes := make([]outcome, 0, len(rules))
	for _, o := range captured {
		if o != nil {
			outcomes = append(outcomes, *o)
		}
	}
	for i, r := range rules {
		if captured[i] == nil {
			outcomes = append(outcomes, outcome{rule: r, result: lint.PassResult()})
		}
	}
	return outcomes, nil
}
