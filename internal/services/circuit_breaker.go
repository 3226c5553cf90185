package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"cashflow/internal/models"

	"github.com/google/uuid"
)

var (
	ErrCircuitBreakerOpen = errors.New("circuit breaker is open")
)

type CircuitBreakerState int

const (
	StateClosed CircuitBreakerState = iota
	StateOpen
	StateHalfOpen
)

func (s CircuitBreakerState) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half_open"
	default:
		return "closed"
	}
}

type CircuitBreakerConfig struct {
	MaxFailures     int
	ResetTimeout    time.Duration
	HalfOpenMaxSucc int
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		MaxFailures:     5,
		ResetTimeout:    30 * time.Second,
		HalfOpenMaxSucc: 3,
	}
}

type CircuitBreaker struct {
	mu                sync.RWMutex
	config            CircuitBreakerConfig
	state             CircuitBreakerState
	failures          int
	halfOpenSuccesses int
	lastFailureTime   time.Time
}

func NewCircuitBreaker(config CircuitBreakerConfig) *CircuitBreaker {
	return &CircuitBreaker{
		config: config,
		state:  StateClosed,
	}
}

// IsOpen reports whether calls should be short-circuited. An open breaker
// moves to half-open once ResetTimeout has elapsed since the last failure
func (cb *CircuitBreaker) IsOpen() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == StateOpen && time.Since(cb.lastFailureTime) > cb.config.ResetTimeout {
		cb.state = StateHalfOpen
		cb.halfOpenSuccesses = 0
		return false
	}

	return cb.state == StateOpen
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateHalfOpen:
		cb.halfOpenSuccesses++
		if cb.halfOpenSuccesses >= cb.config.HalfOpenMaxSucc {
			cb.state = StateClosed
			cb.failures = 0
			cb.halfOpenSuccesses = 0
		}
	case StateClosed:
		cb.failures = 0
	}
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.lastFailureTime = time.Now()

	switch cb.state {
	case StateHalfOpen:
		cb.state = StateOpen
		cb.halfOpenSuccesses = 0
	case StateClosed:
		cb.failures++
		if cb.failures >= cb.config.MaxFailures {
			cb.state = StateOpen
			cb.halfOpenSuccesses = 0
		}
	}
}

func (cb *CircuitBreaker) GetState() CircuitBreakerState {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state
}

// GuardedCache fronts an analytics cache with a circuit breaker so a failing
// cache backend is skipped instead of adding latency to every request
type GuardedCache struct {
	next    AnalyticsCacheInterface
	breaker *CircuitBreaker
}

func NewGuardedCache(next AnalyticsCacheInterface, breaker *CircuitBreaker) *GuardedCache {
	return &GuardedCache{next: next, breaker: breaker}
}

func (g *GuardedCache) record(err error) error {
	if err != nil {
		g.breaker.RecordFailure()
		return err
	}
	g.breaker.RecordSuccess()
	return nil
}

func (g *GuardedCache) Generation(ctx context.Context, userID uuid.UUID) (int64, error) {
	if g.breaker.IsOpen() {
		return 0, ErrCircuitBreakerOpen
	}
	generation, err := g.next.Generation(ctx, userID)
	return generation, g.record(err)
}

func (g *GuardedCache) GetSummary(ctx context.Context, userID uuid.UUID, generation int64, rangeKey string) (*models.FinancialSummary, bool, error) {
	if g.breaker.IsOpen() {
		return nil, false, ErrCircuitBreakerOpen
	}
	summary, found, err := g.next.GetSummary(ctx, userID, generation, rangeKey)
	return summary, found, g.record(err)
}

func (g *GuardedCache) SetSummary(ctx context.Context, userID uuid.UUID, generation int64, rangeKey string, summary *models.FinancialSummary) error {
	if g.breaker.IsOpen() {
		return ErrCircuitBreakerOpen
	}
	return g.record(g.next.SetSummary(ctx, userID, generation, rangeKey, summary))
}

// InvalidateUser always reaches the backend; skipping it could leave stale
// summaries behind once the breaker closes again
func (g *GuardedCache) InvalidateUser(ctx context.Context, userID uuid.UUID) error {
	return g.record(g.next.InvalidateUser(ctx, userID))
}

// Ping reports an open breaker as unhealthy without touching the backend,
// otherwise it pings the backend when it supports it
func (g *GuardedCache) Ping(ctx context.Context) error {
	if state := g.breaker.GetState(); state == StateOpen {
		return fmt.Errorf("analytics cache %s: %w", state, ErrCircuitBreakerOpen)
	}
	if pinger, ok := g.next.(interface{ Ping(context.Context) error }); ok {
		return pinger.Ping(ctx)
	}
	return nil
}
