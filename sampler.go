package qlocate

import (
	"sort"
)

/*
Rank turns raw outcome counts into the ordered candidate list.

Ordering is by descending count with ties broken by ascending encoded
index, so the ranking is deterministic for a deterministic backend.
Indices in the padding region are excluded even when they carry
nonzero counts - numeric leakage from imperfect marking or noisy
readout on non-power-of-two search spaces. Each probability is the
candidate's share of the total shot count, including any shots lost to
padding.
*/
func Rank(counts OutcomeCounts, enc *IndexEncoding) []RankedCandidate {
	total := counts.Total()

	ranked := make([]RankedCandidate, 0, len(counts))
	for index, count := range counts {
		cand, ok := enc.Decode(index)
		if !ok {
			continue
		}
		probability := 0.0
		if total > 0 {
			probability = float64(count) / float64(total)
		}
		ranked = append(ranked, RankedCandidate{
			Candidate:   cand,
			Index:       index,
			Count:       count,
			Probability: probability,
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Index < ranked[j].Index
	})

	return ranked
}
