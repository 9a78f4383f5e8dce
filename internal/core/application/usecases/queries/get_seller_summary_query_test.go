package queries_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetSellerSummaryQuery_Success(t *testing.T) {
	sellerID := kernel.NewUUID()

	query, err := queries.NewGetSellerSummaryQuery(sellerID)
	require.NoError(t, err)

	assert.NoError(t, query.Validate())
	assert.Equal(t, sellerID, query.SellerID())
}

func TestNewGetSellerSummaryQuery_EmptySellerID(t *testing.T) {
	_, err := queries.NewGetSellerSummaryQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetSellerSummaryQuery_ValidateZeroValue(t *testing.T) {
	var query queries.GetSellerSummaryQuery

	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetSellerSummaryQueryIsNotConstructed)
}
