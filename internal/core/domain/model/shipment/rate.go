package shipment

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ServiceLevelKey identifies a carrier service level across packages. It is a
// comparable composite key, so providers whose names contain separator
// characters can never collide the way concatenated string keys do.
type ServiceLevelKey struct {
	Provider string
	Token    string
}

// ErrRateOfferIsNotConstructed is returned when a RateOffer was not created
// via NewRateOffer.
var ErrRateOfferIsNotConstructed = errs.NewValueIsRequiredError(
	"rate offer must be created via NewRateOffer constructor")

// RateOffer is a single carrier's priced offer for one package's shipment at
// one service level, as returned by the carrier rate API.
type RateOffer struct { //nolint:recvcheck //using for validation
	rateID        string
	provider      string
	service       string
	token         string
	amount        kernel.Money
	estimatedDays int

	guard guard.ConstructorGuard
}

// NewRateOffer creates a RateOffer. Rate id, provider and service token are
// required; service is the human-readable service level name and falls back to
// the token when the carrier omits it. Estimated days may be zero when the
// carrier gives no estimate.
func NewRateOffer(rateID, provider, service, token string, amount kernel.Money, estimatedDays int) (RateOffer, error) {
	if rateID == "" {
		return RateOffer{}, errs.NewValueIsRequiredError("rate id")
	}
	if provider == "" {
		return RateOffer{}, errs.NewValueIsRequiredError("provider")
	}
	if token == "" {
		return RateOffer{}, errs.NewValueIsRequiredError("service level token")
	}
	if err := amount.Validate(); err != nil {
		return RateOffer{}, err
	}
	if estimatedDays < 0 {
		return RateOffer{}, errs.NewValueIsInvalidErrorWithCause("estimated days",
			fmt.Errorf("%d is negative", estimatedDays))
	}
	if service == "" {
		service = token
	}

	return RateOffer{
		rateID:        rateID,
		provider:      provider,
		service:       service,
		token:         token,
		amount:        amount,
		estimatedDays: estimatedDays,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the RateOffer was created via NewRateOffer.
func (r RateOffer) Validate() error {
	return r.guard.Validate(ErrRateOfferIsNotConstructed)
}

// RateID returns the carrier-side identifier used to purchase this offer.
func (r RateOffer) RateID() string { return r.rateID }

// Provider returns the carrier name, e.g. "USPS".
func (r RateOffer) Provider() string { return r.provider }

// Service returns the human-readable service level name, e.g. "Priority Mail".
func (r RateOffer) Service() string { return r.service }

// Token returns the carrier's service level token, e.g. "usps_priority".
func (r RateOffer) Token() string { return r.token }

// Amount returns the quoted price for this single package.
func (r RateOffer) Amount() kernel.Money { return r.amount }

// EstimatedDays returns the carrier's transit estimate in days (0 if unknown).
func (r RateOffer) EstimatedDays() int { return r.estimatedDays }

// Key returns the (provider, token) aggregation key for this offer.
func (r RateOffer) Key() ServiceLevelKey {
	return ServiceLevelKey{Provider: r.provider, Token: r.token}
}

// PackageRate is one package's constituent share of an AggregatedQuote: the
// package index, the carrier rate id that must be purchased for it, and its
// individual amount.
type PackageRate struct {
	packageIndex int
	rateID       string
	amount       kernel.Money
}

// NewPackageRate creates a constituent rate reference.
func NewPackageRate(packageIndex int, rateID string, amount kernel.Money) (PackageRate, error) {
	if packageIndex < 0 {
		return PackageRate{}, errs.NewValueIsInvalidErrorWithCause("package index",
			fmt.Errorf("%d is negative", packageIndex))
	}
	if rateID == "" {
		return PackageRate{}, errs.NewValueIsRequiredError("rate id")
	}
	if err := amount.Validate(); err != nil {
		return PackageRate{}, err
	}

	return PackageRate{
		packageIndex: packageIndex,
		rateID:       rateID,
		amount:       amount,
	}, nil
}

// PackageIndex returns the zero-based index of the package this rate prices.
func (p PackageRate) PackageIndex() int { return p.packageIndex }

// RateID returns the carrier rate id for this package.
func (p PackageRate) RateID() string { return p.rateID }

// Amount returns this package's individual quoted amount.
func (p PackageRate) Amount() kernel.Money { return p.amount }

// ErrQuoteOutOfOrder is returned when constituent rates are added to an
// AggregatedQuote out of package order or with gaps.
var ErrQuoteOutOfOrder = errors.New("constituent rates must be added in package-index order without gaps")

// AggregatedQuote is a combined multi-package quote for one carrier service
// level. Its amount is the exact decimal sum of all constituent per-package
// amounts. A quote must never be surfaced unless IsComplete reports true for
// the order's package count.
type AggregatedQuote struct {
	provider      string
	service       string
	estimatedDays int
	total         kernel.Money
	rates         []PackageRate
}

// NewAggregatedQuote starts an aggregated quote for one service level from the
// first package's offer.
func NewAggregatedQuote(offer RateOffer, packageIndex int) (*AggregatedQuote, error) {
	if err := offer.Validate(); err != nil {
		return nil, err
	}

	q := &AggregatedQuote{
		provider:      offer.Provider(),
		service:       offer.Service(),
		estimatedDays: offer.EstimatedDays(),
	}
	if err := q.Accumulate(offer, packageIndex); err != nil {
		return nil, err
	}
	return q, nil
}

// Accumulate folds another package's offer for the same service level into the
// quote: the amount joins the running total and a constituent PackageRate
// reference is appended. Offers must arrive in package-index order.
func (q *AggregatedQuote) Accumulate(offer RateOffer, packageIndex int) error {
	if err := offer.Validate(); err != nil {
		return err
	}
	if len(q.rates) > 0 && packageIndex != q.rates[len(q.rates)-1].PackageIndex()+1 {
		return ErrQuoteOutOfOrder
	}

	rate, err := NewPackageRate(packageIndex, offer.RateID(), offer.Amount())
	if err != nil {
		return err
	}

	if len(q.rates) == 0 {
		q.total = offer.Amount()
	} else {
		total, addErr := q.total.Add(offer.Amount())
		if addErr != nil {
			return addErr
		}
		q.total = total
	}

	q.rates = append(q.rates, rate)
	return nil
}

// IsComplete reports whether the quote covers every package of the order:
// exactly one constituent rate per package, indexes 0..packageCount-1.
func (q *AggregatedQuote) IsComplete(packageCount int) bool {
	if len(q.rates) != packageCount || packageCount == 0 {
		return false
	}
	for i, r := range q.rates {
		if r.PackageIndex() != i {
			return false
		}
	}
	return true
}

// Provider returns the carrier name.
func (q *AggregatedQuote) Provider() string { return q.provider }

// Service returns the human-readable service level name.
func (q *AggregatedQuote) Service() string { return q.service }

// EstimatedDays returns the transit estimate taken from the first package's offer.
func (q *AggregatedQuote) EstimatedDays() int { return q.estimatedDays }

// Total returns the combined amount across all constituent packages.
func (q *AggregatedQuote) Total() kernel.Money { return q.total }

// Rates returns the ordered constituent per-package rate references.
func (q *AggregatedQuote) Rates() []PackageRate {
	out := make([]PackageRate, len(q.rates))
	copy(out, q.rates)
	return out
}

// Method returns the presentation summary of the chosen service,
// e.g. "USPS Priority Mail".
func (q *AggregatedQuote) Method() string {
	return fmt.Sprintf("%s %s", q.provider, q.service)
}
