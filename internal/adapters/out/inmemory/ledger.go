// Package inmemory provides process-local implementations of the order ledger
// and the print queue. Both are the default drivers; state does not survive a
// restart.
package inmemory

import (
	"context"
	"sync"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// Ledger is a mutex-guarded map keyed by idempotency key. It implements
// ports.OrderLedger; PutIfAbsent is atomic under the mutex, so concurrent
// inserts for the same key admit exactly one winner.
type Ledger struct {
	mu      sync.Mutex
	records map[string]*order.Record
}

var _ ports.OrderLedger = (*Ledger)(nil)

// NewLedger creates an empty in-memory ledger.
func NewLedger() *Ledger {
	return &Ledger{
		records: make(map[string]*order.Record),
	}
}

// Get retrieves the record stored under id.
// Returns errs.ObjectNotFoundError when no record exists.
func (l *Ledger) Get(_ context.Context, id string) (*order.Record, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("order id")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	record, ok := l.records[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order id", id)
	}
	return record, nil
}

// PutIfAbsent inserts the record under its key, or returns
// ports.ErrOrderAlreadyRecorded if a record is already stored there.
func (l *Ledger) PutIfAbsent(_ context.Context, record *order.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.records[record.ID()]; exists {
		return ports.ErrOrderAlreadyRecorded
	}
	l.records[record.ID()] = record
	return nil
}
