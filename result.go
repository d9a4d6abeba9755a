package qlocate

// OutcomeCounts maps an observed basis-state index to its occurrence
// count. It is the canonical artifact a backend produces once per
// completed run.
type OutcomeCounts map[uint64]int

// Total returns the sum of all occurrence counts.
func (c OutcomeCounts) Total() int {
	total := 0
	for _, count := range c {
		total += count
	}
	return total
}

// RankedCandidate pairs a candidate anchor with its measurement
// statistics.
type RankedCandidate struct {
	Candidate   Candidate
	Index       uint64
	Count       int
	Probability float64
}

/*
Result is the terminal artifact of one localization run: the ranked
candidate list, the raw outcome counts, backend cost metadata, and the
low-confidence flag.

LowConfidence marks a run that completed correctly but produced no
strong match - the top probability fell below the configured
threshold, or the solution set was empty. It is a valid outcome, never
a failure.
*/
type Result struct {
	Ranked        []RankedCandidate
	Counts        OutcomeCounts
	Metadata      Metadata
	Iterations    int
	Solutions     []Candidate
	LowConfidence bool
}

// Top returns the reported robot position, the highest-ranked
// candidate. The second return value is false when no valid candidate
// received any counts.
func (r *Result) Top() (RankedCandidate, bool) {
	if len(r.Ranked) == 0 {
		return RankedCandidate{}, false
	}
	return r.Ranked[0], true
}
