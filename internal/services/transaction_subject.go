package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"cashflow/internal/models"

	"golang.org/x/sync/errgroup"
)

const DefaultObserverTimeout = 5 * time.Second

// TransactionSubject notifies attached observers of transaction lifecycle
// changes. Notification is fire-and-forget: observers run concurrently on a
// context detached from the request, and their errors are only logged
type TransactionSubject struct {
	mu        sync.RWMutex
	observers []TransactionObserverInterface
	timeout   time.Duration
	wg        sync.WaitGroup
}

// NewTransactionSubject creates a subject whose observer runs are bounded by timeout
func NewTransactionSubject(timeout time.Duration) *TransactionSubject {
	if timeout <= 0 {
		timeout = DefaultObserverTimeout
	}
	return &TransactionSubject{timeout: timeout}
}

func (s *TransactionSubject) Attach(observer TransactionObserverInterface) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, observer)
}

func (s *TransactionSubject) NotifyCreated(ctx context.Context, tx *models.Transaction) {
	s.notify(ctx, "created", tx, TransactionObserverInterface.OnTransactionCreated)
}

func (s *TransactionSubject) NotifyDeleted(ctx context.Context, tx *models.Transaction) {
	s.notify(ctx, "deleted", tx, TransactionObserverInterface.OnTransactionDeleted)
}

// Wait blocks until every in-flight notification has finished
func (s *TransactionSubject) Wait() {
	s.wg.Wait()
}

type observerCall func(TransactionObserverInterface, context.Context, *models.Transaction) error

func (s *TransactionSubject) notify(ctx context.Context, event string, tx *models.Transaction, call observerCall) {
	s.mu.RLock()
	observers := make([]TransactionObserverInterface, len(s.observers))
	copy(observers, s.observers)
	s.mu.RUnlock()

	if len(observers) == 0 || tx == nil {
		return
	}

	snapshot := *tx

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		runCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
		defer cancel()

		var g errgroup.Group
		for _, observer := range observers {
			g.Go(func() error {
				if err := call(observer, runCtx, &snapshot); err != nil {
					slog.ErrorContext(runCtx, "Transaction observer failed",
						"error", err,
						"observer", observer.Name(),
						"event", event,
						"transaction_id", snapshot.ID)
				}
				return nil
			})
		}
		_ = g.Wait()
	}()
}
