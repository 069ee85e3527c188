package ports

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/order"
)

// ErrOrderAlreadyRecorded is returned by PutIfAbsent when a record already
// exists under the same idempotency key.
var ErrOrderAlreadyRecorded = errors.New("order already recorded")

// OrderLedger is the persistence contract for finalized orders, keyed by the
// caller-supplied idempotency key. It is the guard that prevents duplicate
// label purchases.
//
// The in-memory implementation is the default; a durable implementation can
// be substituted without touching orchestration logic.
type OrderLedger interface {
	// Get retrieves the record stored under id.
	// Returns errs.ObjectNotFoundError when no record exists.
	Get(ctx context.Context, id string) (*order.Record, error)

	// PutIfAbsent inserts the record under its key atomically. If a record
	// already exists for the key, ErrOrderAlreadyRecorded is returned and the
	// stored record is left untouched. Records are never updated or deleted.
	PutIfAbsent(ctx context.Context, record *order.Record) error
}
