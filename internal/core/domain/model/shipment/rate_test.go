package shipment_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, amount string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(amount, "USD")
	require.NoError(t, err)
	return m
}

func mustOffer(t *testing.T, rateID, provider, service, token, amount string, days int) shipment.RateOffer {
	t.Helper()
	offer, err := shipment.NewRateOffer(rateID, provider, service, token, mustMoney(t, amount), days)
	require.NoError(t, err)
	return offer
}

func TestNewRateOffer(t *testing.T) {
	t.Run("valid_offer", func(t *testing.T) {
		offer := mustOffer(t, "rate-1", "CarrierX", "Ground", "carrierx_ground", "5.00", 3)

		assert.Equal(t, "rate-1", offer.RateID())
		assert.Equal(t, "CarrierX", offer.Provider())
		assert.Equal(t, "Ground", offer.Service())
		assert.Equal(t, "carrierx_ground", offer.Token())
		assert.Equal(t, "5.00", offer.Amount().AmountString())
		assert.Equal(t, 3, offer.EstimatedDays())
	})

	t.Run("service_name_falls_back_to_token", func(t *testing.T) {
		offer := mustOffer(t, "rate-1", "CarrierX", "", "carrierx_ground", "5.00", 3)
		assert.Equal(t, "carrierx_ground", offer.Service())
	})

	t.Run("missing_rate_id_is_rejected", func(t *testing.T) {
		_, err := shipment.NewRateOffer("", "CarrierX", "Ground", "carrierx_ground", mustMoney(t, "5.00"), 3)
		require.Error(t, err)
	})

	t.Run("missing_token_is_rejected", func(t *testing.T) {
		_, err := shipment.NewRateOffer("rate-1", "CarrierX", "Ground", "", mustMoney(t, "5.00"), 3)
		require.Error(t, err)
	})
}

func TestRateOffer_Key(t *testing.T) {
	t.Run("same_provider_and_token_share_a_key", func(t *testing.T) {
		a := mustOffer(t, "rate-1", "CarrierX", "Ground", "carrierx_ground", "5.00", 3)
		b := mustOffer(t, "rate-2", "CarrierX", "Ground", "carrierx_ground", "7.50", 3)

		assert.Equal(t, a.Key(), b.Key())
	})

	t.Run("hyphenated_provider_names_cannot_collide", func(t *testing.T) {
		// With naive "provider-token" string keys these two would collide:
		// "Acme-Go" + "fast" vs "Acme" + "Go-fast".
		a := mustOffer(t, "rate-1", "Acme-Go", "Fast", "fast", "5.00", 1)
		b := mustOffer(t, "rate-2", "Acme", "Go Fast", "Go-fast", "5.00", 1)

		assert.NotEqual(t, a.Key(), b.Key())
	})
}

func TestAggregatedQuote(t *testing.T) {
	t.Run("accumulates_total_and_constituents", func(t *testing.T) {
		quote, err := shipment.NewAggregatedQuote(
			mustOffer(t, "rate-1", "CarrierX", "Ground", "carrierx_ground", "5.00", 3), 0)
		require.NoError(t, err)

		err = quote.Accumulate(
			mustOffer(t, "rate-2", "CarrierX", "Ground", "carrierx_ground", "7.50", 3), 1)
		require.NoError(t, err)

		assert.Equal(t, "12.50", quote.Total().AmountString())
		assert.Equal(t, "CarrierX Ground", quote.Method())

		rates := quote.Rates()
		require.Len(t, rates, 2)
		assert.Equal(t, 0, rates[0].PackageIndex())
		assert.Equal(t, "rate-1", rates[0].RateID())
		assert.Equal(t, 1, rates[1].PackageIndex())
		assert.Equal(t, "rate-2", rates[1].RateID())
	})

	t.Run("rejects_gaps_in_package_order", func(t *testing.T) {
		quote, err := shipment.NewAggregatedQuote(
			mustOffer(t, "rate-1", "CarrierX", "Ground", "carrierx_ground", "5.00", 3), 0)
		require.NoError(t, err)

		err = quote.Accumulate(
			mustOffer(t, "rate-3", "CarrierX", "Ground", "carrierx_ground", "2.00", 3), 2)
		require.ErrorIs(t, err, shipment.ErrQuoteOutOfOrder)
	})

	t.Run("completeness_requires_one_rate_per_package", func(t *testing.T) {
		quote, err := shipment.NewAggregatedQuote(
			mustOffer(t, "rate-1", "CarrierY", "Express", "carriery_express", "9.99", 1), 0)
		require.NoError(t, err)

		assert.True(t, quote.IsComplete(1))
		assert.False(t, quote.IsComplete(2))
		assert.False(t, quote.IsComplete(0))
	})

	t.Run("rates_returns_a_copy", func(t *testing.T) {
		quote, err := shipment.NewAggregatedQuote(
			mustOffer(t, "rate-1", "CarrierX", "Ground", "carrierx_ground", "5.00", 3), 0)
		require.NoError(t, err)

		rates := quote.Rates()
		rates[0] = shipment.PackageRate{}

		assert.Equal(t, "rate-1", quote.Rates()[0].RateID())
	})
}
