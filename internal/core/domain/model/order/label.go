package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrLabelIsNotConstructed is returned when a Label was not created via NewLabel.
var ErrLabelIsNotConstructed = errs.NewValueIsRequiredError(
	"label must be created via NewLabel constructor")

// Label is one purchased, carrier-issued shipping label. It is immutable once
// created; a label represents money already charged to the shipper's account.
type Label struct { //nolint:recvcheck //using for validation
	packageIndex   int
	trackingNumber string
	labelURL       string
	trackingURL    string

	guard guard.ConstructorGuard
}

// NewLabel creates a Label for the package at packageIndex. Tracking number
// and label URL are required; the carrier tracking URL is optional.
func NewLabel(packageIndex int, trackingNumber, labelURL, trackingURL string) (Label, error) {
	if packageIndex < 0 {
		return Label{}, errs.NewValueIsInvalidErrorWithCause("package index",
			fmt.Errorf("%d is negative", packageIndex))
	}
	if trackingNumber == "" {
		return Label{}, errs.NewValueIsRequiredError("tracking number")
	}
	if labelURL == "" {
		return Label{}, errs.NewValueIsRequiredError("label url")
	}

	return Label{
		packageIndex:   packageIndex,
		trackingNumber: trackingNumber,
		labelURL:       labelURL,
		trackingURL:    trackingURL,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Label was created via NewLabel.
func (l Label) Validate() error {
	return l.guard.Validate(ErrLabelIsNotConstructed)
}

// PackageIndex returns the zero-based index of the package this label ships.
func (l Label) PackageIndex() int { return l.packageIndex }

// TrackingNumber returns the carrier tracking number.
func (l Label) TrackingNumber() string { return l.trackingNumber }

// LabelURL returns the URL of the printable label artifact.
func (l Label) LabelURL() string { return l.labelURL }

// TrackingURL returns the carrier's public tracking page URL, if any.
func (l Label) TrackingURL() string { return l.trackingURL }
