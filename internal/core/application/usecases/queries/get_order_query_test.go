package queries_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery_Success(t *testing.T) {
	query, err := queries.NewGetOrderQuery("order-123")
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, "order-123", query.OrderID())
}

func TestNewGetOrderQuery_EmptyID(t *testing.T) {
	_, err := queries.NewGetOrderQuery("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGetOrderQuery_Validate_NotConstructed(t *testing.T) {
	var query queries.GetOrderQuery
	require.ErrorIs(t, query.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
}
