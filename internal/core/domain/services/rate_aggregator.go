package services

import (
	"errors"

	"fulfillment/internal/core/domain/model/shipment"
)

// RateAggregator is a domain service that merges the per-package rate offers
// returned by the carrier into combined, comparable quotes.
//
// Aggregation rules:
//   - Offers are grouped by their (provider, service level token) key
//   - Each group's combined amount is the exact decimal sum of the
//     per-package amounts
//   - Only groups quoted for every package of the order are emitted; a
//     service level missing from even one package is discarded entirely,
//     with no partial pricing
//   - Quotes are emitted in first-seen order; an empty result is valid and
//     means no service level is common to all packages
type RateAggregator struct{}

// NewRateAggregator creates a new RateAggregator instance.
func NewRateAggregator() RateAggregator {
	return RateAggregator{}
}

// Aggregate merges offersByPackage, indexed by package, into aggregated
// quotes. packageCount is the order's total package count and must equal
// len(offersByPackage); it is the completeness bar every emitted quote must
// clear.
func (a RateAggregator) Aggregate(offersByPackage [][]shipment.RateOffer, packageCount int) ([]*shipment.AggregatedQuote, error) {
	quotes := make(map[shipment.ServiceLevelKey]*shipment.AggregatedQuote)
	keyOrder := make([]shipment.ServiceLevelKey, 0)

	for packageIndex, offers := range offersByPackage {
		for _, offer := range offers {
			if err := offer.Validate(); err != nil {
				return nil, err
			}

			key := offer.Key()
			quote, seen := quotes[key]
			if !seen {
				newQuote, err := shipment.NewAggregatedQuote(offer, packageIndex)
				if err != nil {
					return nil, err
				}
				quotes[key] = newQuote
				keyOrder = append(keyOrder, key)
				continue
			}

			if err := quote.Accumulate(offer, packageIndex); err != nil {
				// A gap means an earlier package skipped this service level;
				// the quote can never become complete, so drop the offer.
				if errors.Is(err, shipment.ErrQuoteOutOfOrder) {
					continue
				}
				return nil, err
			}
		}
	}

	result := make([]*shipment.AggregatedQuote, 0, len(keyOrder))
	for _, key := range keyOrder {
		if quotes[key].IsComplete(packageCount) {
			result = append(result, quotes[key])
		}
	}

	return result, nil
}
