package queries

import (
	"context"
	"fmt"

	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"

	"golang.org/x/sync/errgroup"
)

// GetQuotesQueryHandler produces aggregated shipping quotes for an order.
// One carrier shipment is created per package, all concurrently; aggregation
// waits for every call to return (or the first to fail).
//
// A single package's quote failure fails the whole query: no partial quote
// set is ever returned. An empty quote list, by contrast, is a valid result
// meaning no service level is common to every package.
type GetQuotesQueryHandler struct {
	gateway    ports.CarrierGateway
	aggregator services.RateAggregator
}

// NewGetQuotesQueryHandler creates a handler for quote queries.
func NewGetQuotesQueryHandler(gateway ports.CarrierGateway) GetQuotesQueryHandler {
	return GetQuotesQueryHandler{
		gateway:    gateway,
		aggregator: services.NewRateAggregator(),
	}
}

// Handle quotes every package concurrently and merges the results.
// The first failing package cancels the remaining in-flight calls and its
// error is surfaced, wrapped with the failing package number.
func (h GetQuotesQueryHandler) Handle(ctx context.Context, query GetQuotesQuery) ([]*shipment.AggregatedQuote, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	packages := query.Packages()
	destination := query.Destination()
	offersByPackage := make([][]shipment.RateOffer, len(packages))

	g, groupCtx := errgroup.WithContext(ctx)
	for i, pkg := range packages {
		g.Go(func() error {
			offers, err := h.gateway.QuoteShipment(groupCtx, pkg, destination)
			if err != nil {
				return fmt.Errorf("failed to create shipment for package %d: %w", i+1, err)
			}
			offersByPackage[i] = offers
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return h.aggregator.Aggregate(offersByPackage, len(packages))
}
