package queries_test

import (
	"testing"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetLowStockProductsQuery_Valid(t *testing.T) {
	query, err := queries.NewGetLowStockProductsQuery(5)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, 5, query.Threshold())
}

func TestNewGetLowStockProductsQuery_ZeroThreshold(t *testing.T) {
	query, err := queries.NewGetLowStockProductsQuery(0)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, 0, query.Threshold())
}

func TestNewGetLowStockProductsQuery_NegativeThreshold(t *testing.T) {
	_, err := queries.NewGetLowStockProductsQuery(-1)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestGetLowStockProductsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetLowStockProductsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetLowStockProductsQueryIsNotConstructed)
}
