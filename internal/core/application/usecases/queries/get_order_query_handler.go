package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// GetOrderQueryHandler retrieves a previously recorded order from the ledger.
// Callers use it to poll for an order's labels after purchase.
type GetOrderQueryHandler struct {
	ledger ports.OrderLedger
}

// NewGetOrderQueryHandler creates a handler for order lookups.
func NewGetOrderQueryHandler(ledger ports.OrderLedger) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		ledger: ledger,
	}
}

// Handle fetches the order record stored under the query's id.
// Returns errs.ObjectNotFoundError when no order was recorded under the id.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Record, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.ledger.Get(ctx, query.OrderID())
}
