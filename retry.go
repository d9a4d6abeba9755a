package qlocate

import (
	"math"
	"time"
)

/*
RetryPolicy defines how a remote submission is retried. Retries always
reuse identical pipeline parameters - re-submitting with altered
parameters is never the core's call. Filter, when set, stops the retry
loop early for errors that cannot succeed on a later attempt.
*/
type RetryPolicy struct {
	MaxAttempts int
	Strategy    RetryStrategy
	Filter      func(error) bool
}

// RetryStrategy defines the delay between submission attempts.
type RetryStrategy interface {
	NextDelay(attempt int) time.Duration
}

// ExponentialBackoff implements RetryStrategy.
type ExponentialBackoff struct {
	Initial time.Duration
}

func (eb *ExponentialBackoff) NextDelay(attempt int) time.Duration {
	return eb.Initial * time.Duration(math.Pow(2, float64(attempt-1)))
}
