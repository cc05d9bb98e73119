package engine

// Tally aggregates the per-rule outcomes of one run. Skipped is fixed
// during filtering; the other counts accumulate while outcomes are merged
// into the transcript.
type Tally struct {
	Passed   int
	Skipped  int
	Warnings int
	Fatal    int
}
