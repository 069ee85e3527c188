package ledgerrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormLedger implements ports.OrderLedger using GORM. The database must be
// opened with TranslateError enabled so duplicate-key violations surface as
// gorm.ErrDuplicatedKey.
type GormLedger struct {
	db *gorm.DB
}

var _ ports.OrderLedger = (*GormLedger)(nil)

// NewGormLedger creates a new GORM-backed order ledger.
func NewGormLedger(db *gorm.DB) *GormLedger {
	return &GormLedger{db: db}
}

// Get retrieves the record stored under id.
// Returns errs.ObjectNotFoundError when no record exists.
func (r *GormLedger) Get(ctx context.Context, id string) (*order.Record, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("order id")
	}

	var dto RecordDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order id", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// PutIfAbsent inserts the record under its key. The primary-key constraint
// makes the insert atomic; a conflict is reported as
// ports.ErrOrderAlreadyRecorded and the stored record is left untouched.
func (r *GormLedger) PutIfAbsent(ctx context.Context, record *order.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(record)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ports.ErrOrderAlreadyRecorded
		}
		return err
	}
	return nil
}
