package shipment

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// SupportedCountry is the only destination country this system ships to.
const SupportedCountry = "US"

// ErrDestinationIsNotConstructed is returned when a Destination was not
// created via NewDestination.
var ErrDestinationIsNotConstructed = errs.NewValueIsRequiredError(
	"destination must be created via NewDestination constructor")

// ErrCountryNotSupported is returned for destinations outside SupportedCountry.
var ErrCountryNotSupported = errs.NewValueIsInvalidError(
	fmt.Sprintf("country (only %s is supported)", SupportedCountry))

// Destination is the validated recipient address for an order. It is
// immutable per request; phone and email are optional contact fields and
// street2 is an optional second address line.
type Destination struct { //nolint:recvcheck //using for validation
	name    string
	street  string
	street2 string
	city    string
	state   string
	zip     string
	country string
	phone   string
	email   string

	guard guard.ConstructorGuard
}

// NewDestination creates a Destination. Name, street, city, state and zip are
// required. An empty country defaults to SupportedCountry; any other country
// is rejected.
func NewDestination(name, street, street2, city, state, zip, country, phone, email string) (Destination, error) {
	d := Destination{
		street2: strings.TrimSpace(street2),
		phone:   strings.TrimSpace(phone),
		email:   strings.TrimSpace(email),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setRequired("name", name, &d.name),
		d.setRequired("street", street, &d.street),
		d.setRequired("city", city, &d.city),
		d.setRequired("state", state, &d.state),
		d.setRequired("zip", zip, &d.zip),
		d.setCountry(country),
	); err != nil {
		return Destination{}, err
	}

	return d, nil
}

// Validate ensures the Destination was created via NewDestination.
func (d Destination) Validate() error {
	return d.guard.Validate(ErrDestinationIsNotConstructed)
}

// Name returns the recipient name.
func (d Destination) Name() string { return d.name }

// Street returns the first street address line.
func (d Destination) Street() string { return d.street }

// Street2 returns the optional second street address line.
func (d Destination) Street2() string { return d.street2 }

// City returns the destination city.
func (d Destination) City() string { return d.city }

// State returns the destination state.
func (d Destination) State() string { return d.state }

// Zip returns the destination postal code.
func (d Destination) Zip() string { return d.zip }

// Country returns the destination country, always SupportedCountry.
func (d Destination) Country() string { return d.country }

// Phone returns the optional contact phone number.
func (d Destination) Phone() string { return d.phone }

// Email returns the optional contact email address.
func (d Destination) Email() string { return d.email }

func (d *Destination) setRequired(name, value string, field *string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	*field = value
	return nil
}

func (d *Destination) setCountry(country string) error {
	country = strings.ToUpper(strings.TrimSpace(country))
	if country == "" {
		country = SupportedCountry
	}
	if country != SupportedCountry {
		return ErrCountryNotSupported
	}
	d.country = country
	return nil
}
