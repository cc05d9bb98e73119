package lint

import "fmt"

// Status is the verdict of a successfully evaluated check. A rule that
// could not be evaluated at all reports an error instead; the engine treats
// that as a different failure class from a failed check.
type Status string

const (
	StatusPass Status = "PASS"
	StatusFail Status = "FAIL"
)

// Result is the outcome of one evaluated check.
type Result struct {
	Status  Status
	Message string
}

// PassResult reports a conforming target.
func PassResult() Result {
	return Result{Status: StatusPass}
}

// FailResult reports a violation with its human-readable finding.
func FailResult(message string) Result {
	return Result{Status: StatusFail, Message: message}
}

// FailResultf is FailResult with fmt.Sprintf formatting.
func FailResultf(format string, args ...any) Result {
	return FailResult(fmt.Sprintf(format, args...))
}

// Failed reports whether the check found a violation.
func (r Result) Failed() bool {
	return r.Status == StatusFail
}
