package order

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrRecordIsNotConstructed is returned when a Record was not created via
// NewRecord or RestoreRecord.
var ErrRecordIsNotConstructed = errs.NewValueIsRequiredError(
	"record must be created via NewRecord or RestoreRecord constructors")

// Record is a finalized order stored under its caller-supplied idempotency
// key. It summarizes the chosen shipping method, what was charged, and the
// labels that were issued. A Record is created exactly once per key and never
// mutated afterwards; its presence is what makes repeat purchases rejectable.
type Record struct { //nolint:recvcheck //using for validation
	id               string
	method           string
	deliveryEstimate int
	total            kernel.Money
	labels           []Label
	completedAt      time.Time

	guard guard.ConstructorGuard
}

// NewRecord creates a Record for a completed purchase, stamped with the
// current time. The id is the idempotency key; method is the chosen service
// summary (e.g. "USPS Priority Mail"); deliveryEstimate is transit days; at
// least one label is required.
func NewRecord(id, method string, deliveryEstimate int, total kernel.Money, labels []Label) (*Record, error) {
	return RestoreRecord(id, method, deliveryEstimate, total, labels, time.Now().UTC())
}

// RestoreRecord reconstructs a Record from persistence with its original
// completion timestamp.
func RestoreRecord(
	id, method string,
	deliveryEstimate int,
	total kernel.Money,
	labels []Label,
	completedAt time.Time,
) (*Record, error) {
	r := &Record{
		method:           method,
		deliveryEstimate: deliveryEstimate,
		completedAt:      completedAt,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setTotal(total),
		r.setLabels(labels),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the Record was properly constructed.
func (r *Record) Validate() error {
	if r == nil {
		return ErrRecordIsNotConstructed
	}
	return r.guard.Validate(ErrRecordIsNotConstructed)
}

// ID returns the idempotency key the record is stored under.
func (r *Record) ID() string { return r.id }

// Method returns the chosen shipping method summary.
func (r *Record) Method() string { return r.method }

// DeliveryEstimate returns the estimated transit days for the chosen method.
func (r *Record) DeliveryEstimate() int { return r.deliveryEstimate }

// Total returns the total amount charged for all labels.
func (r *Record) Total() kernel.Money { return r.total }

// Labels returns the ordered labels issued for the order, one per package.
func (r *Record) Labels() []Label {
	out := make([]Label, len(r.labels))
	copy(out, r.labels)
	return out
}

// CompletedAt returns the UTC time the purchase completed.
func (r *Record) CompletedAt() time.Time { return r.completedAt }

func (r *Record) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("order id")
	}
	r.id = id
	return nil
}

func (r *Record) setTotal(total kernel.Money) error {
	if err := total.Validate(); err != nil {
		return err
	}
	r.total = total
	return nil
}

func (r *Record) setLabels(labels []Label) error {
	if len(labels) == 0 {
		return errs.NewValueIsRequiredError("labels")
	}
	for _, l := range labels {
		if err := l.Validate(); err != nil {
			return err
		}
	}
	r.labels = make([]Label, len(labels))
	copy(r.labels, labels)
	return nil
}

// PurchaseResult is the outcome of one sequential purchase run. Labels holds
// everything issued before the first failure, in package order; Err is the
// terminal error, nil when every package succeeded. Labels are never rolled
// back on failure, so callers must surface them for manual reconciliation.
type PurchaseResult struct {
	Labels []Label
	Err    error
}

// Failed reports whether the purchase sequence was aborted by an error.
func (p PurchaseResult) Failed() bool {
	return p.Err != nil
}
