package qlocate

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"
)

/*
Backend realizes the state evolution for a fully specified pipeline
and returns raw outcome counts plus cost metadata. It is the single
blocking point in the run: a submission may represent a network
round-trip to a remote provider, so it takes a context and may be slow
or fail. An abandoned or timed-out submission is a failed run - a
backend never returns partial counts.
*/
type Backend interface {
	Name() string
	Submit(ctx context.Context, p *Pipeline) (OutcomeCounts, Metadata, error)
}

// evolve runs the scheduled oracle+diffusion rounds on a fresh uniform
// superposition. Rounds are strictly sequential; the context is
// checked between them so cancellation aborts without partial output.
func evolve(ctx context.Context, p *Pipeline, d *Diffuser) (*AmplitudeState, error) {
	state := newUniformState(p.Qubits)
	for i := 0; i < p.Iterations; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		flipMarked(state, p.Marking)
		d.Apply(state)
	}
	return state, nil
}

/*
ExactBackend is the noiseless simulation mode: it evolves the state
vector exactly and converts the final probabilities into counts scaled
to the shot budget. Deterministic for a given pipeline.
*/
type ExactBackend struct {
	diffuser *Diffuser
}

func NewExactBackend() *ExactBackend {
	return &ExactBackend{diffuser: NewDiffuser(0)}
}

func (b *ExactBackend) Name() string { return "exact-simulation" }

func (b *ExactBackend) Submit(ctx context.Context, p *Pipeline) (OutcomeCounts, Metadata, error) {
	state, err := evolve(ctx, p, b.diffuser)
	if err != nil {
		return nil, Metadata{}, err
	}

	counts := make(OutcomeCounts)
	for i, prob := range state.Probabilities() {
		count := int(prob*float64(p.Shots) + 0.5)
		if count > 0 {
			counts[uint64(i)] = count
		}
	}
	return counts, costMetadata(b.Name(), p), nil
}

/*
SamplingBackend evolves the state exactly and then draws independent
stochastic shots from the final distribution, the way a hardware
backend reports results. Seeded, so runs are reproducible.
*/
type SamplingBackend struct {
	mu       sync.Mutex
	diffuser *Diffuser
	rng      *rand.Rand
}

func NewSamplingBackend(seed uint64) *SamplingBackend {
	return &SamplingBackend{
		diffuser: NewDiffuser(0),
		rng:      rand.New(rand.NewPCG(seed, seed)),
	}
}

func (b *SamplingBackend) Name() string { return "sampling-simulation" }

func (b *SamplingBackend) Submit(ctx context.Context, p *Pipeline) (OutcomeCounts, Metadata, error) {
	state, err := evolve(ctx, p, b.diffuser)
	if err != nil {
		return nil, Metadata{}, err
	}

	probs := state.Probabilities()

	b.mu.Lock()
	defer b.mu.Unlock()

	counts := make(OutcomeCounts)
	for shot := 0; shot < p.Shots; shot++ {
		counts[drawIndex(probs, b.rng)]++
	}
	return counts, costMetadata(b.Name(), p), nil
}

// drawIndex samples one basis-state index from a normalized
// distribution by cumulative scan.
func drawIndex(probs []float64, rng *rand.Rand) uint64 {
	r := rng.Float64()
	cumulative := 0.0
	for i, prob := range probs {
		cumulative += prob
		if r <= cumulative {
			return uint64(i)
		}
	}
	return uint64(len(probs) - 1)
}

/*
NoisyBackend is the sampling backend with a depolarizing readout
channel: each shot is replaced by a uniformly random index with
probability noise. Noisy shots can land in the padding region; the
sampler drops those during ranking.
*/
type NoisyBackend struct {
	mu       sync.Mutex
	diffuser *Diffuser
	rng      *rand.Rand
	noise    float64
}

// NewNoisyBackend builds a noisy simulation with the given per-shot
// depolarizing probability. A noise value <= 0 selects 0.01.
func NewNoisyBackend(seed uint64, noise float64) *NoisyBackend {
	if noise <= 0 {
		noise = 0.01
	}
	return &NoisyBackend{
		diffuser: NewDiffuser(0),
		rng:      rand.New(rand.NewPCG(seed, seed)),
		noise:    noise,
	}
}

func (b *NoisyBackend) Name() string { return "noisy-simulation" }

func (b *NoisyBackend) Submit(ctx context.Context, p *Pipeline) (OutcomeCounts, Metadata, error) {
	state, err := evolve(ctx, p, b.diffuser)
	if err != nil {
		return nil, Metadata{}, err
	}

	probs := state.Probabilities()
	size := uint64(len(probs))

	b.mu.Lock()
	defer b.mu.Unlock()

	counts := make(OutcomeCounts)
	for shot := 0; shot < p.Shots; shot++ {
		if b.rng.Float64() < b.noise {
			counts[b.rng.Uint64N(size)]++
			continue
		}
		counts[drawIndex(probs, b.rng)]++
	}
	return counts, costMetadata(b.Name(), p), nil
}

/*
RemoteClient is implemented by provider adapters outside the core
(IonQ, IBM, and the like). Submit runs a flattened pipeline and
Retrieve recalls the counts of a previously submitted job by ID.
*/
type RemoteClient interface {
	Name() string
	Submit(ctx context.Context, req *PipelineRequest) (OutcomeCounts, error)
	Retrieve(ctx context.Context, jobID string) (OutcomeCounts, error)
}

/*
RemoteBackend submits pipelines to a remote execution provider. The
submission is guarded by an optional retry policy (identical
parameters only) and circuit breaker, and the returned counts are
validated against the pipeline's state space before they are handed
to the sampler.
*/
type RemoteBackend struct {
	client  RemoteClient
	retry   *RetryPolicy
	breaker *CircuitBreaker
	jobID   string
}

// RemoteOption configures a remote backend.
type RemoteOption func(*RemoteBackend)

// WithRetryPolicy sets the submission retry policy.
func WithRetryPolicy(policy *RetryPolicy) RemoteOption {
	return func(b *RemoteBackend) { b.retry = policy }
}

// WithCircuitBreaker guards submissions with a circuit breaker.
func WithCircuitBreaker(maxFailures int, resetTimeout time.Duration, halfOpenMax int) RemoteOption {
	return func(b *RemoteBackend) {
		b.breaker = NewCircuitBreaker(maxFailures, resetTimeout, halfOpenMax)
	}
}

// WithJobID recalls the counts of a previously submitted job instead
// of submitting a new one.
func WithJobID(jobID string) RemoteOption {
	return func(b *RemoteBackend) { b.jobID = jobID }
}

func NewRemoteBackend(client RemoteClient, opts ...RemoteOption) *RemoteBackend {
	b := &RemoteBackend{client: client}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *RemoteBackend) Name() string { return b.client.Name() }

func (b *RemoteBackend) Submit(ctx context.Context, p *Pipeline) (OutcomeCounts, Metadata, error) {
	if b.breaker != nil && !b.breaker.Allow() {
		return nil, Metadata{}, fmt.Errorf("circuit breaker open for %s", b.client.Name())
	}

	counts, err := b.submit(ctx, p)
	if b.breaker != nil {
		if err != nil {
			b.breaker.RecordFailure()
		} else {
			b.breaker.RecordSuccess()
		}
	}
	if err != nil {
		return nil, Metadata{}, err
	}

	if err := validateCounts(counts, p.Qubits); err != nil {
		return nil, Metadata{}, err
	}
	return counts, costMetadata(b.Name(), p), nil
}

func (b *RemoteBackend) submit(ctx context.Context, p *Pipeline) (OutcomeCounts, error) {
	if b.jobID != "" {
		return b.client.Retrieve(ctx, b.jobID)
	}

	req := newPipelineRequest(p)
	if b.retry == nil {
		return b.client.Submit(ctx, req)
	}

	var lastErr error
	for attempt := 0; attempt < b.retry.MaxAttempts; attempt++ {
		if attempt > 0 {
			delay := b.retry.Strategy.NextDelay(attempt)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		counts, err := b.client.Submit(ctx, req)
		if err == nil {
			return counts, nil
		}
		lastErr = err

		if b.retry.Filter != nil && !b.retry.Filter(err) {
			break
		}
	}
	return nil, fmt.Errorf("all submission attempts failed: %w", lastErr)
}

// validateCounts rejects malformed provider output: empty
// distributions and indices outside the 2^qubits state space.
func validateCounts(counts OutcomeCounts, qubits int) error {
	if counts.Total() <= 0 {
		return ErrNoCounts
	}
	size := uint64(1) << qubits
	for index, count := range counts {
		if index >= size || count < 0 {
			return ErrMalformedCounts
		}
	}
	return nil
}
