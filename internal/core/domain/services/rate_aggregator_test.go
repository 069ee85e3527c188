package services_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func offer(t *testing.T, rateID, provider, service, token, amount string, days int) shipment.RateOffer {
	t.Helper()
	money, err := kernel.NewMoneyFromString(amount, "USD")
	require.NoError(t, err)
	o, err := shipment.NewRateOffer(rateID, provider, service, token, money, days)
	require.NoError(t, err)
	return o
}

func TestRateAggregator_Aggregate(t *testing.T) {
	aggregator := services.NewRateAggregator()

	t.Run("two_packages_common_service_summed_partial_service_excluded", func(t *testing.T) {
		// CarrierX Ground is quoted for both packages ($5.00 + $7.50);
		// CarrierY Express is quoted only for package 1 and must be excluded.
		offers := [][]shipment.RateOffer{
			{
				offer(t, "x-ground-0", "CarrierX", "Ground", "carrierx_ground", "5.00", 3),
				offer(t, "y-express-0", "CarrierY", "Express", "carriery_express", "9.99", 1),
			},
			{
				offer(t, "x-ground-1", "CarrierX", "Ground", "carrierx_ground", "7.50", 3),
			},
		}

		quotes, err := aggregator.Aggregate(offers, 2)

		require.NoError(t, err)
		require.Len(t, quotes, 1)
		assert.Equal(t, "CarrierX", quotes[0].Provider())
		assert.Equal(t, "Ground", quotes[0].Service())
		assert.Equal(t, "12.50", quotes[0].Total().AmountString())
		assert.Equal(t, 3, quotes[0].EstimatedDays())

		rates := quotes[0].Rates()
		require.Len(t, rates, 2)
		assert.Equal(t, "x-ground-0", rates[0].RateID())
		assert.Equal(t, 0, rates[0].PackageIndex())
		assert.Equal(t, "x-ground-1", rates[1].RateID())
		assert.Equal(t, 1, rates[1].PackageIndex())
	})

	t.Run("service_missing_from_first_package_is_excluded", func(t *testing.T) {
		offers := [][]shipment.RateOffer{
			{offer(t, "x-0", "CarrierX", "Ground", "carrierx_ground", "5.00", 3)},
			{
				offer(t, "x-1", "CarrierX", "Ground", "carrierx_ground", "7.50", 3),
				offer(t, "y-1", "CarrierY", "Express", "carriery_express", "9.99", 1),
			},
		}

		quotes, err := aggregator.Aggregate(offers, 2)

		require.NoError(t, err)
		require.Len(t, quotes, 1)
		assert.Equal(t, "CarrierX", quotes[0].Provider())
	})

	t.Run("no_common_service_yields_empty_result", func(t *testing.T) {
		offers := [][]shipment.RateOffer{
			{offer(t, "x-0", "CarrierX", "Ground", "carrierx_ground", "5.00", 3)},
			{offer(t, "y-1", "CarrierY", "Express", "carriery_express", "9.99", 1)},
		}

		quotes, err := aggregator.Aggregate(offers, 2)

		require.NoError(t, err)
		assert.Empty(t, quotes)
	})

	t.Run("gap_in_middle_package_is_excluded", func(t *testing.T) {
		offers := [][]shipment.RateOffer{
			{offer(t, "x-0", "CarrierX", "Ground", "carrierx_ground", "5.00", 3)},
			{offer(t, "y-1", "CarrierY", "Express", "carriery_express", "9.99", 1)},
			{offer(t, "x-2", "CarrierX", "Ground", "carrierx_ground", "6.00", 3)},
		}

		quotes, err := aggregator.Aggregate(offers, 3)

		require.NoError(t, err)
		assert.Empty(t, quotes)
	})

	t.Run("single_package_passes_through", func(t *testing.T) {
		offers := [][]shipment.RateOffer{
			{
				offer(t, "x-0", "CarrierX", "Ground", "carrierx_ground", "5.00", 3),
				offer(t, "y-0", "CarrierY", "Express", "carriery_express", "9.99", 1),
			},
		}

		quotes, err := aggregator.Aggregate(offers, 1)

		require.NoError(t, err)
		require.Len(t, quotes, 2)
		// Insertion order is preserved.
		assert.Equal(t, "CarrierX", quotes[0].Provider())
		assert.Equal(t, "CarrierY", quotes[1].Provider())
	})

	t.Run("sums_are_exact_decimals", func(t *testing.T) {
		offers := [][]shipment.RateOffer{
			{offer(t, "x-0", "CarrierX", "Ground", "carrierx_ground", "0.10", 3)},
			{offer(t, "x-1", "CarrierX", "Ground", "carrierx_ground", "0.20", 3)},
			{offer(t, "x-2", "CarrierX", "Ground", "carrierx_ground", "0.30", 3)},
		}

		quotes, err := aggregator.Aggregate(offers, 3)

		require.NoError(t, err)
		require.Len(t, quotes, 1)
		assert.Equal(t, "0.60", quotes[0].Total().AmountString())
	})

	t.Run("constituent_count_always_equals_package_count", func(t *testing.T) {
		offers := [][]shipment.RateOffer{
			{
				offer(t, "a-0", "A", "S", "a_s", "1.00", 1),
				offer(t, "b-0", "B", "S", "b_s", "2.00", 2),
			},
			{
				offer(t, "a-1", "A", "S", "a_s", "1.00", 1),
				offer(t, "b-1", "B", "S", "b_s", "2.00", 2),
			},
		}

		quotes, err := aggregator.Aggregate(offers, 2)

		require.NoError(t, err)
		for _, q := range quotes {
			assert.Len(t, q.Rates(), 2)
		}
	})

	t.Run("no_offers_at_all_yields_empty_result", func(t *testing.T) {
		quotes, err := aggregator.Aggregate([][]shipment.RateOffer{{}, {}}, 2)

		require.NoError(t, err)
		assert.Empty(t, quotes)
	})
}
