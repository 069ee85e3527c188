// Package shipment provides the domain model for quoting carrier shipments.
// It implements the value objects that flow through the rate workflow:
//
//   - Package: the physical parcel being shipped (dimensions and weight)
//   - Destination: the validated recipient address
//   - RateOffer: a single carrier offer for one package's shipment
//   - ServiceLevelKey: the composite (provider, service token) aggregation key
//   - PackageRate: one package's constituent share of an aggregated quote
//   - AggregatedQuote: a combined multi-package quote for one service level
//
// Key business rules:
//   - Package dimensions and weight must be strictly positive
//   - Destinations are limited to the single supported country
//   - An AggregatedQuote is presentable only when it holds exactly one
//     constituent rate per package of the order, with no gaps
//
// All types are immutable once constructed and enforce their invariants
// through constructors, following the same Domain-Driven Design conventions
// as the rest of the domain model.
package shipment
