package shipment

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

const (
	// DistanceUnit is the unit all package dimensions are expressed in.
	DistanceUnit = "in"
	// MassUnit is the unit all package weights are expressed in.
	MassUnit = "lb"
)

// ErrPackageIsNotConstructed is returned when a Package was not created via
// NewPackage.
var ErrPackageIsNotConstructed = errs.NewValueIsRequiredError(
	"package must be created via NewPackage constructor")

// Package represents one physical parcel submitted for quoting. Dimensions are
// in inches, weight in pounds. A Package is immutable once constructed.
//
// Example:
//
//	pkg, err := shipment.NewPackage(12, 8, 4, 2.5, "coffee mugs")
//	if err != nil {
//	    // handle validation error
//	}
type Package struct { //nolint:recvcheck //using for validation
	length      float64
	width       float64
	height      float64
	weight      float64
	description string

	guard guard.ConstructorGuard
}

// NewPackage creates a Package with validated dimensions and weight.
// All four measurements must be strictly positive; description is optional.
func NewPackage(length, width, height, weight float64, description string) (Package, error) {
	p := Package{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setDimension("length", length, &p.length),
		p.setDimension("width", width, &p.width),
		p.setDimension("height", height, &p.height),
		p.setDimension("weight", weight, &p.weight),
	); err != nil {
		return Package{}, err
	}

	return p, nil
}

// Validate ensures the Package was created via NewPackage.
func (p Package) Validate() error {
	return p.guard.Validate(ErrPackageIsNotConstructed)
}

// Length returns the package length in inches.
func (p Package) Length() float64 {
	return p.length
}

// Width returns the package width in inches.
func (p Package) Width() float64 {
	return p.width
}

// Height returns the package height in inches.
func (p Package) Height() float64 {
	return p.height
}

// Weight returns the package weight in pounds.
func (p Package) Weight() float64 {
	return p.weight
}

// Description returns the optional free-text contents description.
func (p Package) Description() string {
	return p.description
}

func (p *Package) setDimension(name string, value float64, field *float64) error {
	if value <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(name,
			fmt.Errorf("%g is not greater than 0", value))
	}
	*field = value
	return nil
}
