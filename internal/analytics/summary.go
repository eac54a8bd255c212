package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/finwell-app/finwell/internal/statement"
)

// Summary is the full analytics pass over one user's statements,
// recomputed on demand.
type Summary struct {
	Categories     []CategoryTotal
	Monthly        []MonthlyStat
	Recurring      []statement.Transaction
	Flagged        []statement.Transaction
	ChargesTotal   decimal.Decimal
	LatestClosing  decimal.Decimal
	StatementCount int
}

// Summarize runs every derivation over the statements' flattened,
// already-normalized transactions.
func (e *Engine) Summarize(sts []*statement.Statement) Summary {
	var txs []statement.Transaction
	for _, st := range sts {
		txs = append(txs, st.Transactions...)
	}

	return Summary{
		Categories:     e.CategoryTotals(txs),
		Monthly:        MonthlyTotals(txs),
		Recurring:      e.Recurring(txs),
		Flagged:        e.Anomalies(txs),
		ChargesTotal:   ChargesTotal(sts),
		LatestClosing:  LatestClosingBalance(sts),
		StatementCount: len(sts),
	}
}

// ChargesTotal sums every bank charge across the statements.
func ChargesTotal(sts []*statement.Statement) decimal.Decimal {
	total := decimal.Zero

	for _, st := range sts {
		for _, amount := range st.Charges {
			total = total.Add(amount)
		}
	}

	return total
}

// LatestClosingBalance returns the closing balance of the most
// recently uploaded statement, or zero when there are none.
func LatestClosingBalance(sts []*statement.Statement) decimal.Decimal {
	var latest *statement.Statement

	for _, st := range sts {
		if latest == nil || st.UploadedAt.After(latest.UploadedAt) {
			latest = st
		}
	}

	if latest == nil {
		return decimal.Zero
	}

	return latest.ClosingBalance
}
