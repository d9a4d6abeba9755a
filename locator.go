package qlocate

import (
	"context"
	"log"

	"github.com/davecgh/go-spew/spew"
)

/*
Locator is the package's entry point. It owns the backend, the run
configuration, and the run metrics, and performs the full pipeline for
each call: derive the index encoding, compile the oracle, schedule and
submit the amplification run, rank the outcome counts.

A locator is safe to reuse across runs; no state crosses run
boundaries except the accumulated metrics.
*/
type Locator struct {
	backend Backend
	config  *Config
	metrics *Metrics
}

// NewLocator builds a locator around an execution backend. A nil
// config selects the defaults.
func NewLocator(backend Backend, config *Config) (*Locator, error) {
	if backend == nil {
		return nil, &ConfigurationError{Field: "backend", Err: ErrNilBackend}
	}
	if config == nil {
		config = NewConfig()
	}
	return &Locator{
		backend: backend,
		config:  config,
		metrics: NewMetrics(),
	}, nil
}

/*
Locate runs one localization: it matches the two sensor scans against
every candidate placement on the map and returns the ranked candidate
list. The top-ranked candidate is the reported robot position.

Input violations return a ConfigurationError before any amplification
round runs; backend failures return a BackendError. A weak match is
not an error - the result carries LowConfidence instead.
*/
func (l *Locator) Locate(ctx context.Context, m *GridMap, rowPattern, colPattern Pattern) (*Result, error) {
	enc, err := NewIndexEncoding(m, rowPattern, colPattern)
	if err != nil {
		return nil, err
	}

	oracle, err := BuildOracle(m, rowPattern, colPattern, enc)
	if err != nil {
		return nil, err
	}

	result, err := NewScheduler(l.backend, l.config, l.metrics).Run(ctx, oracle, enc)
	if err != nil {
		return nil, err
	}

	if l.config.Debug {
		log.Printf("Locate ranked candidates:\n%s", spew.Sdump(result.Ranked))
	}

	return result, nil
}

// Metrics exposes the accumulated run metrics.
func (l *Locator) Metrics() *Metrics { return l.metrics }
