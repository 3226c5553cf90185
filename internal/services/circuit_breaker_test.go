package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"cashflow/internal/models"
	"cashflow/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircuitBreaker_OpensAfterMaxFailures(t *testing.T) {
	cb := NewCircuitBreaker(CircuitBreakerConfig{MaxFailures: 2, ResetTimeout: time.Hour, HalfOpenMaxSucc: 1})

	cb.RecordFailure()
	assert.False(t, cb.IsOpen())
	assert.Equal(t, 1, cb.failures)

	cb.RecordFailure()
	assert.True(t, cb.IsOpen())
	assert.Equal(t, "open", cb.GetState().String())
}

func TestCircuitBreaker_SuccessResetsFailures(t *testing.T) {
	cb := NewCircuitBreaker(DefaultCircuitBreakerConfig())

	cb.RecordFailure()
	cb.RecordFailure()
	cb.RecordSuccess()

	assert.Equal(t, 0, cb.failures)
	assert.Equal(t, StateClosed, cb.GetState())
}

func TestCircuitBreaker_HalfOpenRecovery(t *testing.T) {
	cb := NewCircuitBreaker(CircuitBreakerConfig{MaxFailures: 1, ResetTimeout: time.Millisecond, HalfOpenMaxSucc: 2})

	cb.RecordFailure()
	time.Sleep(5 * time.Millisecond)

	assert.False(t, cb.IsOpen())
	assert.Equal(t, StateHalfOpen, cb.GetState())

	cb.RecordSuccess()
	assert.Equal(t, StateHalfOpen, cb.GetState())
	cb.RecordSuccess()
	assert.Equal(t, StateClosed, cb.GetState())
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	cb := NewCircuitBreaker(CircuitBreakerConfig{MaxFailures: 1, ResetTimeout: time.Millisecond, HalfOpenMaxSucc: 2})

	cb.RecordFailure()
	time.Sleep(5 * time.Millisecond)
	require.False(t, cb.IsOpen())

	cb.RecordFailure()
	assert.Equal(t, StateOpen, cb.GetState())
}

func TestGuardedCache_SkipsBackendWhenOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := service_mocks.NewMockAnalyticsCacheInterface(ctrl)
	breaker := NewCircuitBreaker(CircuitBreakerConfig{MaxFailures: 1, ResetTimeout: time.Hour, HalfOpenMaxSucc: 1})
	cache := NewGuardedCache(backend, breaker)

	ctx := context.Background()
	userID := uuid.New()

	backend.EXPECT().GetSummary(ctx, userID, int64(0), "-:-").Return(nil, false, errors.New("connection refused"))

	_, _, err := cache.GetSummary(ctx, userID, 0, "-:-")
	require.Error(t, err)
	assert.True(t, breaker.IsOpen())

	_, found, err := cache.GetSummary(ctx, userID, 0, "-:-")
	assert.False(t, found)
	assert.ErrorIs(t, err, ErrCircuitBreakerOpen)
	assert.ErrorIs(t, cache.SetSummary(ctx, userID, 0, "-:-", &models.FinancialSummary{}), ErrCircuitBreakerOpen)

	_, err = cache.Generation(ctx, userID)
	assert.ErrorIs(t, err, ErrCircuitBreakerOpen)

	backend.EXPECT().InvalidateUser(ctx, userID).Return(nil)
	assert.NoError(t, cache.InvalidateUser(ctx, userID))
}

func TestGuardedCache_PassesThroughWhenClosed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := service_mocks.NewMockAnalyticsCacheInterface(ctrl)
	cache := NewGuardedCache(backend, NewCircuitBreaker(DefaultCircuitBreakerConfig()))

	ctx := context.Background()
	userID := uuid.New()
	summary := &models.FinancialSummary{TotalTransactions: 3}

	backend.EXPECT().Generation(ctx, userID).Return(int64(4), nil)
	backend.EXPECT().GetSummary(ctx, userID, int64(4), "k").Return(summary, true, nil)
	backend.EXPECT().SetSummary(ctx, userID, int64(4), "k", summary).Return(nil)

	generation, err := cache.Generation(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), generation)

	got, found, err := cache.GetSummary(ctx, userID, generation, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Same(t, summary, got)
	assert.NoError(t, cache.SetSummary(ctx, userID, generation, "k", summary))
}

type pingingCache struct {
	*service_mocks.MockAnalyticsCacheInterface
	err   error
	calls int
}

func (p *pingingCache) Ping(context.Context) error {
	p.calls++
	return p.err
}

func TestGuardedCache_Ping(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	backend := &pingingCache{MockAnalyticsCacheInterface: service_mocks.NewMockAnalyticsCacheInterface(ctrl)}
	breaker := NewCircuitBreaker(CircuitBreakerConfig{MaxFailures: 1, ResetTimeout: time.Hour, HalfOpenMaxSucc: 1})
	cache := NewGuardedCache(backend, breaker)

	assert.NoError(t, cache.Ping(ctx))
	assert.Equal(t, 1, backend.calls)

	backend.err = errors.New("connection refused")
	assert.ErrorContains(t, cache.Ping(ctx), "connection refused")

	breaker.RecordFailure()
	err := cache.Ping(ctx)
	assert.ErrorIs(t, err, ErrCircuitBreakerOpen)
	assert.Contains(t, err.Error(), "analytics cache open")
	assert.Equal(t, 2, backend.calls)
}

func TestGuardedCache_PingWithoutPinger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := NewGuardedCache(service_mocks.NewMockAnalyticsCacheInterface(ctrl), NewCircuitBreaker(DefaultCircuitBreakerConfig()))
	assert.NoError(t, cache.Ping(context.Background()))
}
