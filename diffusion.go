package qlocate

import (
	"runtime"
	"sync"
)

// DefaultParallelThreshold is the state-vector length above which the
// per-index diffusion update fans out across goroutines.
const DefaultParallelThreshold = 1 << 14

/*
Diffuser applies inversion about the mean: every amplitude a_i is
replaced by 2*mean - a_i, the reflection about the uniform
superposition. It has no knowledge of which indices are marked and
preserves the state norm exactly up to numeric tolerance.

The per-index updates are independent, so above the parallel threshold
they are applied as a chunked data-parallel map with no ordering
requirement across indices.
*/
type Diffuser struct {
	parallelThreshold int
}

// NewDiffuser returns a diffuser that parallelizes the per-index
// update for vectors of at least threshold amplitudes. A threshold
// <= 0 selects DefaultParallelThreshold.
func NewDiffuser(threshold int) *Diffuser {
	if threshold <= 0 {
		threshold = DefaultParallelThreshold
	}
	return &Diffuser{parallelThreshold: threshold}
}

// Apply performs one inversion-about-mean round in place.
func (d *Diffuser) Apply(state *AmplitudeState) {
	n := len(state.vector)
	if n == 0 {
		return
	}

	mean := complex(0, 0)
	for _, a := range state.vector {
		mean += a
	}
	mean /= complex(float64(n), 0)
	twoMean := 2 * mean

	if n < d.parallelThreshold {
		for i, a := range state.vector {
			state.vector[i] = twoMean - a
		}
		return
	}

	workers := runtime.GOMAXPROCS(0)
	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				state.vector[i] = twoMean - state.vector[i]
			}
		}(start, end)
	}
	wg.Wait()
}
