package sqlutil

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericRoundTrip(t *testing.T) {
	assert.Equal(t, "1500000.00", ToNumeric(decimal.NewFromInt(1500000)))
	assert.Equal(t, "0.10", ToNumeric(decimal.RequireFromString("0.1")))

	d, err := FromNumeric("358.34")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.RequireFromString("358.34")))

	_, err = FromNumeric("NaN")
	assert.Error(t, err)
}
