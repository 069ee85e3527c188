// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetQuotesQueryIsNotConstructed = errors.New(
		"GetQuotesQuery must be created via NewGetQuotesQuery constructor",
	)
	ErrPackagesAreRequired = errors.New("at least one package is required")
)

// GetQuotesQuery requests aggregated shipping quotes for an order: every
// package is quoted against the destination and only service levels available
// for all packages are returned.
//
// Example:
//
//	query, err := NewGetQuotesQuery(packages, destination)
//	if err != nil {
//	    return fmt.Errorf("invalid quote request: %w", err)
//	}
//
//	quotes, err := handler.Handle(ctx, query)
type GetQuotesQuery struct { //nolint:recvcheck //using for validation
	packages    []shipment.Package
	destination shipment.Destination

	guard guard.ConstructorGuard
}

// NewGetQuotesQuery creates a quote query. At least one package is required
// and every package and the destination must be properly constructed.
func NewGetQuotesQuery(packages []shipment.Package, destination shipment.Destination) (GetQuotesQuery, error) {
	q := GetQuotesQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setPackages(packages),
		q.setDestination(destination),
	); err != nil {
		return GetQuotesQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetQuotesQueryIsNotConstructed if validation fails.
func (q GetQuotesQuery) Validate() error {
	return q.guard.Validate(ErrGetQuotesQueryIsNotConstructed)
}

// Packages returns the ordered packages to quote.
func (q GetQuotesQuery) Packages() []shipment.Package {
	out := make([]shipment.Package, len(q.packages))
	copy(out, q.packages)
	return out
}

// Destination returns the order's destination address.
func (q GetQuotesQuery) Destination() shipment.Destination {
	return q.destination
}

func (q *GetQuotesQuery) setPackages(packages []shipment.Package) error {
	if len(packages) == 0 {
		return ErrPackagesAreRequired
	}
	for _, pkg := range packages {
		if err := pkg.Validate(); err != nil {
			return err
		}
	}
	q.packages = make([]shipment.Package, len(packages))
	copy(q.packages, packages)
	return nil
}

func (q *GetQuotesQuery) setDestination(destination shipment.Destination) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	q.destination = destination
	return nil
}
