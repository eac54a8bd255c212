package store

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finwell-app/finwell/internal/statement"
)

func TestTransactionsRoundTrip(t *testing.T) {
	txs := []statement.Transaction{
		{
			Date:        "1 Mar 2025",
			Description: "POS Purchase Spar Gaborone",
			Amount:      "-250.00",
			Balance:     "3850.00",
			Type:        statement.TypeDebit,
		},
		{
			Date:        "5 Mar 2025",
			Description: "Salary Payment",
			Amount:      "2000.00",
			Balance:     "5850.00",
			Type:        statement.TypeCredit,
			Recurring:   true,
			Category:    "Income",
		},
	}

	data, err := encodeTransactions(txs)
	require.NoError(t, err)

	assert.Equal(t, txs, decodeTransactions(data))
}

func TestDecodeTransactions_Degraded(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "Empty", data: nil},
		{name: "Malformed", data: []byte(`{"not":"a list"`)},
		{name: "JSONNull", data: []byte(`null`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txs := decodeTransactions(tt.data)

			require.NotNil(t, txs)
			assert.Empty(t, txs)
		})
	}
}

func TestEncodeTransactions_NilIsEmptyList(t *testing.T) {
	data, err := encodeTransactions(nil)

	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestChargesRoundTrip(t *testing.T) {
	charges := map[string]decimal.Decimal{
		"Total VAT":            decimal.RequireFromString("12.91"),
		"Monthly Account Fees": decimal.RequireFromString("99.00"),
	}

	data, err := encodeCharges(charges)
	require.NoError(t, err)

	decoded := decodeCharges(data)
	require.Len(t, decoded, 2)
	assert.True(t, decoded["Total VAT"].Equal(charges["Total VAT"]))
	assert.True(t, decoded["Monthly Account Fees"].Equal(charges["Monthly Account Fees"]))
}

func TestDecodeCharges_Degraded(t *testing.T) {
	assert.Empty(t, decodeCharges(nil))
	assert.Empty(t, decodeCharges([]byte(`[1,2`)))
	assert.NotNil(t, decodeCharges([]byte(`null`)))
}
