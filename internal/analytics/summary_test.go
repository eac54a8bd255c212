package analytics_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finwell-app/finwell/internal/analytics"
	"github.com/finwell-app/finwell/internal/statement"
)

func TestSummarize(t *testing.T) {
	engine := analytics.NewEngine(analytics.DefaultRules)

	older := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)
	newer := older.AddDate(0, 1, 0)

	sts := []*statement.Statement{
		{
			ClosingBalance: decimal.RequireFromString("1000.00"),
			UploadedAt:     older,
			Charges: map[string]decimal.Decimal{
				"Total VAT":    decimal.RequireFromString("12.91"),
				"Service Fees": decimal.RequireFromString("45.00"),
			},
			Transactions: []statement.Transaction{
				debit("1 Mar 2025", "POS Purchase Spar", "-250.00"),
				debit("8 Mar 2025", "POS Purchase Spar", "-250.00"),
			},
		},
		{
			ClosingBalance: decimal.RequireFromString("2661.26"),
			UploadedAt:     newer,
			Charges: map[string]decimal.Decimal{
				"Total VAT": decimal.RequireFromString("12.91"),
			},
			Transactions: []statement.Transaction{
				debit("5 Apr 2025", "Prepaid Airtime", "-50.00"),
			},
		},
	}

	summary := engine.Summarize(sts)

	assert.Equal(t, 2, summary.StatementCount)
	assert.Equal(t, "70.82", summary.ChargesTotal.StringFixed(2))
	assert.Equal(t, "2661.26", summary.LatestClosing.StringFixed(2))

	require.Len(t, summary.Monthly, 2)
	assert.Equal(t, "2025-03", summary.Monthly[0].Month)
	assert.Equal(t, "500.00", summary.Monthly[0].Total.StringFixed(2))

	require.Len(t, summary.Recurring, 2)
	assert.Equal(t, "POS Purchase Spar", summary.Recurring[0].Description)

	require.NotEmpty(t, summary.Categories)
	assert.Equal(t, "Food", summary.Categories[0].Category)
}

func TestSummarize_Empty(t *testing.T) {
	summary := analytics.NewEngine(analytics.DefaultRules).Summarize(nil)

	assert.Zero(t, summary.StatementCount)
	assert.True(t, summary.ChargesTotal.IsZero())
	assert.True(t, summary.LatestClosing.IsZero())
	assert.Empty(t, summary.Monthly)
	assert.Empty(t, summary.Recurring)
	assert.Empty(t, summary.Flagged)
}
