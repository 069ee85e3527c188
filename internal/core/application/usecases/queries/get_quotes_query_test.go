package queries_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPackage(t *testing.T) shipment.Package {
	t.Helper()
	pkg, err := shipment.NewPackage(12, 8, 4, 2.5, "books")
	require.NoError(t, err)
	return pkg
}

func testDestination(t *testing.T) shipment.Destination {
	t.Helper()
	dest, err := shipment.NewDestination(
		"Jane Shipper", "100 Main St", "", "Austin", "TX", "78701", "US", "", "")
	require.NoError(t, err)
	return dest
}

func TestNewGetQuotesQuery_Success(t *testing.T) {
	pkg := testPackage(t)
	dest := testDestination(t)

	query, err := queries.NewGetQuotesQuery([]shipment.Package{pkg}, dest)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Len(t, query.Packages(), 1)
	assert.Equal(t, dest, query.Destination())
}

func TestNewGetQuotesQuery_NoPackages(t *testing.T) {
	_, err := queries.NewGetQuotesQuery(nil, testDestination(t))
	require.ErrorIs(t, err, queries.ErrPackagesAreRequired)
}

func TestNewGetQuotesQuery_UnconstructedPackage(t *testing.T) {
	_, err := queries.NewGetQuotesQuery([]shipment.Package{{}}, testDestination(t))
	require.Error(t, err)
}

func TestNewGetQuotesQuery_UnconstructedDestination(t *testing.T) {
	_, err := queries.NewGetQuotesQuery([]shipment.Package{testPackage(t)}, shipment.Destination{})
	require.Error(t, err)
}

func TestGetQuotesQuery_Validate_NotConstructed(t *testing.T) {
	var query queries.GetQuotesQuery
	require.ErrorIs(t, query.Validate(), queries.ErrGetQuotesQueryIsNotConstructed)
}

func TestGetQuotesQuery_PackagesReturnsCopy(t *testing.T) {
	first := testPackage(t)
	second := testPackage(t)

	query, err := queries.NewGetQuotesQuery([]shipment.Package{first, second}, testDestination(t))
	require.NoError(t, err)

	packages := query.Packages()
	packages[0] = shipment.Package{}
	assert.Equal(t, first, query.Packages()[0])
}
