package shipment_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPackage(t *testing.T) {
	t.Run("valid_package", func(t *testing.T) {
		pkg, err := shipment.NewPackage(12, 8, 4, 2.5, "coffee mugs")

		require.NoError(t, err)
		require.NoError(t, pkg.Validate())
		assert.Equal(t, 12.0, pkg.Length())
		assert.Equal(t, 8.0, pkg.Width())
		assert.Equal(t, 4.0, pkg.Height())
		assert.Equal(t, 2.5, pkg.Weight())
		assert.Equal(t, "coffee mugs", pkg.Description())
	})

	t.Run("description_is_optional", func(t *testing.T) {
		pkg, err := shipment.NewPackage(1, 1, 1, 0.1, "")

		require.NoError(t, err)
		assert.Empty(t, pkg.Description())
	})

	tests := []struct {
		name                            string
		length, width, height, weightLb float64
	}{
		{"zero_length", 0, 8, 4, 2.5},
		{"negative_width", 12, -8, 4, 2.5},
		{"zero_height", 12, 8, 0, 2.5},
		{"negative_weight", 12, 8, 4, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := shipment.NewPackage(tt.length, tt.width, tt.height, tt.weightLb, "")
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		})
	}
}

func TestPackage_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var pkg shipment.Package
		require.Error(t, pkg.Validate())
	})
}
