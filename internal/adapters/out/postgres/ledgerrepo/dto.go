// Package ledgerrepo provides the durable postgres implementation of the
// order ledger. It handles the conversion between the order record aggregate
// and its database representation.
package ledgerrepo

import (
	"encoding/json"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"gorm.io/datatypes"
)

// RecordDTO represents the database structure for persisting completed orders.
// The id column is the idempotency key; its primary-key constraint is what
// makes PutIfAbsent atomic.
type RecordDTO struct {
	ID               string `gorm:"primaryKey"`
	Method           string
	DeliveryEstimate int
	TotalAmount      string
	TotalCurrency    string
	Labels           datatypes.JSON
	CompletedAt      time.Time
}

// TableName specifies the database table name for order records.
func (RecordDTO) TableName() string {
	return "order_records"
}

// labelDTO is the JSON shape of one label inside the labels column.
type labelDTO struct {
	PackageIndex   int    `json:"package_index"`
	TrackingNumber string `json:"tracking_number"`
	LabelURL       string `json:"label_url"`
	TrackingURL    string `json:"tracking_url,omitempty"`
}

// fromDomain converts an order record to its database representation.
func fromDomain(record *order.Record) (RecordDTO, error) {
	labels := make([]labelDTO, 0, len(record.Labels()))
	for _, l := range record.Labels() {
		labels = append(labels, labelDTO{
			PackageIndex:   l.PackageIndex(),
			TrackingNumber: l.TrackingNumber(),
			LabelURL:       l.LabelURL(),
			TrackingURL:    l.TrackingURL(),
		})
	}

	raw, err := json.Marshal(labels)
	if err != nil {
		return RecordDTO{}, err
	}

	return RecordDTO{
		ID:               record.ID(),
		Method:           record.Method(),
		DeliveryEstimate: record.DeliveryEstimate(),
		TotalAmount:      record.Total().AmountString(),
		TotalCurrency:    record.Total().Currency(),
		Labels:           datatypes.JSON(raw),
		CompletedAt:      record.CompletedAt(),
	}, nil
}

// toDomain converts a database DTO back to an order record aggregate.
func toDomain(dto RecordDTO) (*order.Record, error) {
	total, err := kernel.NewMoneyFromString(dto.TotalAmount, dto.TotalCurrency)
	if err != nil {
		return nil, err
	}

	var labelDTOs []labelDTO
	if err := json.Unmarshal(dto.Labels, &labelDTOs); err != nil {
		return nil, err
	}

	labels := make([]order.Label, 0, len(labelDTOs))
	for _, l := range labelDTOs {
		label, err := order.NewLabel(l.PackageIndex, l.TrackingNumber, l.LabelURL, l.TrackingURL)
		if err != nil {
			return nil, err
		}
		labels = append(labels, label)
	}

	return order.RestoreRecord(dto.ID, dto.Method, dto.DeliveryEstimate,
		total, labels, dto.CompletedAt)
}
