package kernel

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly
// initialized Money value. Money must be created via NewMoney or
// NewMoneyFromString.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney or NewMoneyFromString constructors")

// ErrCurrencyMismatch is returned when arithmetic is attempted between Money
// values of different currencies.
var ErrCurrencyMismatch = errs.NewValueIsInvalidError("currency mismatch")

// Money is an immutable value object representing a monetary amount in a
// single currency. Amounts are held as exact decimals so that summing
// per-package rates never accumulates binary floating-point error.
//
// The zero value of Money is invalid; use NewMoney or NewMoneyFromString.
//
// Example:
//
//	five, _ := kernel.NewMoneyFromString("5.00", "USD")
//	seven, _ := kernel.NewMoneyFromString("7.50", "USD")
//	total, _ := five.Add(seven)
//	fmt.Println(total.AmountString()) // "12.50"
type Money struct { //nolint:recvcheck //using for validation
	amount   decimal.Decimal
	currency string

	guard guard.ConstructorGuard
}

// NewMoney creates a Money value from a decimal amount and an ISO 4217
// currency code. The amount must not be negative and the currency is required.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		return Money{}, errs.NewValueIsRequiredError("currency")
	}
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is negative", amount.String()))
	}

	return Money{
		amount:   amount,
		currency: currency,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// NewMoneyFromString creates a Money value by parsing a decimal string such as
// "7.50". This is the constructor used for amounts arriving on the wire, which
// carriers quote as strings.
func NewMoneyFromString(amount string, currency string) (Money, error) {
	dec, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(dec, currency)
}

// Validate ensures the Money value was properly constructed.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the exact decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the ISO 4217 currency code.
func (m Money) Currency() string {
	return m.currency
}

// AmountString returns the amount formatted with exactly two decimal places,
// using standard rounding ("12.5" becomes "12.50").
func (m Money) AmountString() string {
	return m.amount.StringFixed(2)
}

// Add returns the sum of two Money values. Both values must be constructed and
// share the same currency; otherwise ErrCurrencyMismatch is returned.
func (m Money) Add(other Money) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if err := other.Validate(); err != nil {
		return Money{}, err
	}
	if m.currency != other.currency {
		return Money{}, ErrCurrencyMismatch
	}

	return Money{
		amount:   m.amount.Add(other.amount),
		currency: m.currency,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// IsEqual reports whether two Money values have the same currency and the same
// numeric amount ("12.5" equals "12.50").
func (m Money) IsEqual(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// String implements fmt.Stringer, e.g. "12.50 USD".
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.AmountString(), m.currency)
}
