package ports

import (
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipment"
)

// PackingSlipRenderer renders the HTML packing slip that accompanies an
// order's labels to the printer. Rendering is best-effort: a failure is
// logged and the purchase result is unaffected.
type PackingSlipRenderer interface {
	Render(record *order.Record, packages []shipment.Package, dest shipment.Destination) ([]byte, error)
}
