// Package commands contains write operations that change system state.
// Implements the Command pattern for state-changing operations in the CQRS
// architecture. Every command validates itself via a constructor guard before
// its handler acts on it.
package commands

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrPurchaseOrderCommandIsNotConstructed = errors.New(
		"PurchaseOrderCommand must be created via NewPurchaseOrderCommand constructor",
	)
	ErrSelectionsIncomplete = errors.New(
		"exactly one rate selection per package is required",
	)
	ErrChosenQuoteIsRequired = errors.New(
		"a chosen quote summary is required when an order id is supplied",
	)
)

// RateSelection pairs one package with the carrier rate id to purchase for it.
type RateSelection struct {
	packageIndex int
	rateID       string
}

// NewRateSelection creates a selection of rateID for the package at packageIndex.
func NewRateSelection(packageIndex int, rateID string) (RateSelection, error) {
	if packageIndex < 0 {
		return RateSelection{}, errs.NewValueIsInvalidErrorWithCause("package index",
			fmt.Errorf("%d is negative", packageIndex))
	}
	if rateID == "" {
		return RateSelection{}, errs.NewValueIsRequiredError("rate id")
	}

	return RateSelection{
		packageIndex: packageIndex,
		rateID:       rateID,
	}, nil
}

// PackageIndex returns the zero-based package index this selection covers.
func (s RateSelection) PackageIndex() int { return s.packageIndex }

// RateID returns the carrier rate id to purchase.
func (s RateSelection) RateID() string { return s.rateID }

// ChosenQuote is the caller-chosen service summary recorded with the order:
// the presentation method, the transit estimate and the quoted total.
type ChosenQuote struct {
	method        string
	estimatedDays int
	total         kernel.Money
}

// NewChosenQuote creates the summary of the quote the caller accepted.
func NewChosenQuote(method string, estimatedDays int, total kernel.Money) (ChosenQuote, error) {
	if method == "" {
		return ChosenQuote{}, errs.NewValueIsRequiredError("method")
	}
	if estimatedDays < 0 {
		return ChosenQuote{}, errs.NewValueIsInvalidErrorWithCause("estimated days",
			fmt.Errorf("%d is negative", estimatedDays))
	}
	if err := total.Validate(); err != nil {
		return ChosenQuote{}, err
	}

	return ChosenQuote{
		method:        method,
		estimatedDays: estimatedDays,
		total:         total,
	}, nil
}

// Method returns the presentation summary, e.g. "USPS Priority Mail".
func (c ChosenQuote) Method() string { return c.method }

// EstimatedDays returns the transit estimate in days.
func (c ChosenQuote) EstimatedDays() int { return c.estimatedDays }

// Total returns the quoted total for all packages.
func (c ChosenQuote) Total() kernel.Money { return c.total }

// PurchaseOrderCommand requests the purchase of shipping labels for an order:
// one label per package, bought sequentially in package order. When orderID is
// non-empty the purchase is idempotent and the completed order is recorded
// under it, which requires the chosen quote summary; an empty orderID buys
// labels without recording anything.
//
// Example:
//
//	chosen, _ := NewChosenQuote("USPS Priority Mail", 2, total)
//	cmd, err := NewPurchaseOrderCommand(packages, destination, selections, "order-42", chosen)
//	if err != nil {
//	    return fmt.Errorf("invalid purchase request: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
type PurchaseOrderCommand struct { //nolint:recvcheck //using for validation
	packages    []shipment.Package
	destination shipment.Destination
	selections  []RateSelection
	orderID     string
	chosen      ChosenQuote

	guard guard.ConstructorGuard
}

// NewPurchaseOrderCommand creates a purchase command. Selections must cover
// every package exactly once; order does not matter, the command normalizes
// them to package order. chosen is ignored when orderID is empty.
func NewPurchaseOrderCommand(
	packages []shipment.Package,
	destination shipment.Destination,
	selections []RateSelection,
	orderID string,
	chosen ChosenQuote,
) (PurchaseOrderCommand, error) {
	c := PurchaseOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setPackages(packages),
		c.setDestination(destination),
	); err != nil {
		return PurchaseOrderCommand{}, err
	}
	if err := c.setSelections(selections); err != nil {
		return PurchaseOrderCommand{}, err
	}
	if err := c.setChosen(chosen); err != nil {
		return PurchaseOrderCommand{}, err
	}

	return c, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPurchaseOrderCommandIsNotConstructed if validation fails.
func (c PurchaseOrderCommand) Validate() error {
	return c.guard.Validate(ErrPurchaseOrderCommandIsNotConstructed)
}

// Packages returns the ordered packages being shipped.
func (c PurchaseOrderCommand) Packages() []shipment.Package {
	out := make([]shipment.Package, len(c.packages))
	copy(out, c.packages)
	return out
}

// Destination returns the order's destination address.
func (c PurchaseOrderCommand) Destination() shipment.Destination {
	return c.destination
}

// Selections returns one selection per package, normalized to package order.
func (c PurchaseOrderCommand) Selections() []RateSelection {
	out := make([]RateSelection, len(c.selections))
	copy(out, c.selections)
	return out
}

// OrderID returns the idempotency key, empty for unrecorded purchases.
func (c PurchaseOrderCommand) OrderID() string {
	return c.orderID
}

// Chosen returns the accepted quote summary. Meaningful only when OrderID is
// non-empty.
func (c PurchaseOrderCommand) Chosen() ChosenQuote {
	return c.chosen
}

func (c *PurchaseOrderCommand) setPackages(packages []shipment.Package) error {
	if len(packages) == 0 {
		return errs.NewValueIsRequiredError("packages")
	}
	for _, pkg := range packages {
		if err := pkg.Validate(); err != nil {
			return err
		}
	}
	c.packages = make([]shipment.Package, len(packages))
	copy(c.packages, packages)
	return nil
}

func (c *PurchaseOrderCommand) setDestination(destination shipment.Destination) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	c.destination = destination
	return nil
}

func (c *PurchaseOrderCommand) setSelections(selections []RateSelection) error {
	if len(selections) != len(c.packages) {
		return ErrSelectionsIncomplete
	}

	ordered := make([]RateSelection, len(c.packages))
	seen := make([]bool, len(c.packages))
	for _, sel := range selections {
		if sel.rateID == "" {
			return errs.NewValueIsRequiredError("rate id")
		}
		if sel.packageIndex >= len(c.packages) {
			return errs.NewValueIsOutOfRangeError("package index",
				sel.packageIndex, 0, len(c.packages)-1)
		}
		if seen[sel.packageIndex] {
			return ErrSelectionsIncomplete
		}
		seen[sel.packageIndex] = true
		ordered[sel.packageIndex] = sel
	}

	c.selections = ordered
	return nil
}

func (c *PurchaseOrderCommand) setChosen(chosen ChosenQuote) error {
	if c.orderID == "" {
		return nil
	}
	if chosen.method == "" {
		return ErrChosenQuoteIsRequired
	}
	if err := chosen.total.Validate(); err != nil {
		return err
	}
	c.chosen = chosen
	return nil
}
