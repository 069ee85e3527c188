package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/shipment"
)

// IssuedLabel is the carrier's response to a successful label purchase.
// The purchase handler combines it with the package index to build the
// domain Label.
type IssuedLabel struct {
	TrackingNumber string
	LabelURL       string
	TrackingURL    string
}

// CarrierGateway defines the outbound contract to the rate/label carrier
// service. Implementations issue one remote call per invocation; batching and
// sequencing policy belong to the application layer.
type CarrierGateway interface {
	// QuoteShipment creates a carrier-side shipment pairing the fixed origin
	// with the destination and this single package, and returns the carrier's
	// rate offers for it. A non-success carrier response is an error; there is
	// no partial offer list.
	QuoteShipment(ctx context.Context, pkg shipment.Package, dest shipment.Destination) ([]shipment.RateOffer, error)

	// PurchaseLabel buys the label for a previously quoted rate. This charges
	// the shipper's account; a returned error means no label was issued for
	// THIS rate, but says nothing about earlier purchases in the caller's
	// sequence. Carrier-reported failure messages are joined into the error.
	PurchaseLabel(ctx context.Context, rateID string) (IssuedLabel, error)
}
