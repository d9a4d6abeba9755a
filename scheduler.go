package qlocate

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/theapemachine/errnie"
)

/*
Scheduler computes the amplification schedule and drives the
iterate-then-measure loop: it assembles the pipeline, submits it to
the execution backend, and turns the raw counts into a ranked result.
*/
type Scheduler struct {
	backend Backend
	config  *Config
	metrics *Metrics
}

func NewScheduler(backend Backend, config *Config, metrics *Metrics) *Scheduler {
	return &Scheduler{
		backend: backend,
		config:  config,
		metrics: metrics,
	}
}

/*
Iterations returns the scheduled oracle+diffusion round count,
ceil((pi/4) * sqrt(2^qubits / max(solutions, 1))).

The solution estimate is floored at 1 so an empty solution set still
produces a schedule; that run yields a near-uniform, low-confidence
distribution. The formula is an approximation: exceeding the optimal
count rotates probability mass past the peak, which is inherent to the
amplification geometry and surfaces in the result rather than being
clamped here.
*/
func Iterations(qubits, solutions int) int {
	if solutions < 1 {
		solutions = 1
	}
	size := float64(uint64(1) << qubits)
	return int(math.Ceil(math.Pi / 4 * math.Sqrt(size/float64(solutions))))
}

/*
Run executes one full amplification run for a compiled oracle.

The solution estimate defaults to 1 unless the configuration opts in
to the brute-force solution count. Backend failures surface as a
BackendError; a completed run with a weak top candidate surfaces as a
successful Result with LowConfidence set.
*/
func (s *Scheduler) Run(ctx context.Context, oracle *Oracle, enc *IndexEncoding) (*Result, error) {
	estimate := 1
	if s.config.UseSolutionCount && oracle.SolutionCount() > 1 {
		estimate = oracle.SolutionCount()
	}

	iterations := Iterations(enc.Qubits(), estimate)
	pipeline := &Pipeline{
		Qubits:     enc.Qubits(),
		WorkQubits: oracle.WorkQubits(),
		Iterations: iterations,
		Shots:      s.config.Shots,
		Marking:    oracle.MarkingFunc(),
	}

	errnie.Info(
		"Scheduler.Run - qubits %v, iterations %v, estimate %v, backend %v",
		pipeline.Qubits,
		iterations,
		estimate,
		s.backend.Name(),
	)

	start := time.Now()
	counts, metadata, err := s.backend.Submit(ctx, pipeline)
	if err != nil {
		var backendErr *BackendError
		if !errors.As(err, &backendErr) {
			err = &BackendError{Backend: s.backend.Name(), Err: err}
		}
		return nil, err
	}

	ranked := Rank(counts, enc)
	lowConfidence := oracle.SolutionCount() == 0 ||
		len(ranked) == 0 ||
		ranked[0].Probability < s.config.ConfidenceThreshold

	s.metrics.recordRun(iterations, time.Since(start), lowConfidence)

	return &Result{
		Ranked:        ranked,
		Counts:        counts,
		Metadata:      metadata,
		Iterations:    iterations,
		Solutions:     oracle.Solutions(),
		LowConfidence: lowConfidence,
	}, nil
}
