package queries_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetSellerReviewsQuery_Success(t *testing.T) {
	sellerID := kernel.NewUUID()

	query, err := queries.NewGetSellerReviewsQuery(sellerID)
	require.NoError(t, err)

	assert.NoError(t, query.Validate())
	assert.Equal(t, sellerID, query.SellerID())
}

func TestNewGetSellerReviewsQuery_EmptySellerID(t *testing.T) {
	_, err := queries.NewGetSellerReviewsQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetSellerReviewsQuery_ValidateZeroValue(t *testing.T) {
	var query queries.GetSellerReviewsQuery

	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetSellerReviewsQueryIsNotConstructed)
}
