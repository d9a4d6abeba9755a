package qlocate

import (
	"log"
	"sync"
	"time"
)

/*
CircuitState represents the state of the circuit breaker guarding a
remote execution provider.
*/
type CircuitState int

const (
	CircuitClosed   CircuitState = iota // Normal operation state
	CircuitOpen                         // Failure state, rejecting submissions
	CircuitHalfOpen                     // Probationary state, allowing limited submissions
)

/*
CircuitBreaker stops submissions to a remote provider that keeps
failing, so a flapping or unavailable service is not hammered with
identical pipelines.

The breaker operates in three states:
  - Closed: normal operation, all submissions are allowed
  - Open: failure threshold exceeded, all submissions are rejected
  - Half-Open: probationary state allowing limited submissions to test
    provider health
*/
type CircuitBreaker struct {
	mu               sync.RWMutex
	maxFailures      int           // Maximum failures before opening circuit
	resetTimeout     time.Duration // Time to wait before attempting recovery
	halfOpenMax      int           // Maximum submissions allowed in half-open state
	failureCount     int           // Current count of consecutive failures
	state            CircuitState  // Current state of the circuit breaker
	openTime         time.Time     // Time when circuit was opened
	halfOpenAttempts int           // Number of attempts made in half-open state
}

/*
NewCircuitBreaker creates a new circuit breaker instance.

Parameters:
  - maxFailures: Number of failures allowed before opening the circuit
  - resetTimeout: Duration to wait before attempting to close an open circuit
  - halfOpenMax: Maximum number of submissions allowed in half-open state

Returns:
  - *CircuitBreaker: A new circuit breaker initialized in closed state
*/
func NewCircuitBreaker(maxFailures int, resetTimeout time.Duration, halfOpenMax int) *CircuitBreaker {
	return &CircuitBreaker{
		maxFailures:  maxFailures,
		resetTimeout: resetTimeout,
		halfOpenMax:  halfOpenMax,
		state:        CircuitClosed,
	}
}

/*
RecordFailure records a failed submission and updates the circuit
state, opening the circuit once the failure threshold is reached.
*/
func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.failureCount++
	if cb.failureCount >= cb.maxFailures {
		if cb.state == CircuitHalfOpen {
			// If we fail in half-open state, go back to open
			cb.state = CircuitOpen
			cb.openTime = time.Now()
			log.Printf("Circuit breaker reopened from half-open state")
		} else if cb.state == CircuitClosed {
			cb.state = CircuitOpen
			cb.openTime = time.Now()
			log.Printf("Circuit breaker opened")
		}
	}
}

/*
RecordSuccess records a successful submission, closing the circuit
after enough half-open probes and resetting the failure count.
*/
func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == CircuitHalfOpen {
		cb.halfOpenAttempts++
		if cb.halfOpenAttempts >= cb.halfOpenMax {
			cb.state = CircuitClosed
			cb.failureCount = 0
			cb.halfOpenAttempts = 0
			log.Printf("Circuit breaker closed from half-open")
		}
	} else if cb.state == CircuitClosed {
		// Reset failure count on success in closed state
		cb.failureCount = 0
	}
}

/*
Allow determines if a submission is allowed based on the circuit
state and timing conditions.

Returns:
  - bool: true if the submission should proceed, false if it should be rejected
*/
func (cb *CircuitBreaker) Allow() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case CircuitClosed:
		return true
	case CircuitOpen:
		if time.Since(cb.openTime) > cb.resetTimeout {
			cb.state = CircuitHalfOpen
			cb.halfOpenAttempts = 0
			return true
		}
		return false
	case CircuitHalfOpen:
		return cb.halfOpenAttempts < cb.halfOpenMax
	default:
		return false
	}
}
