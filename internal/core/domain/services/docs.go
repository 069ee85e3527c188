// Package services provides stateless domain services for the fulfillment
// system. Domain services implement business logic that spans multiple value
// objects and does not naturally belong to any single one of them.
//
// The package includes:
//   - RateAggregator: merges per-package carrier rate offers into combined
//     multi-package quotes, discarding service levels not available for every
//     package in the order
package services
