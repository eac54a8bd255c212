package analytics

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finwell-app/finwell/internal/statement"
)

type Engine struct {
	rules []CategoryRule
}

// NewEngine builds an engine over an ordered category rule set.
func NewEngine(rules []CategoryRule) *Engine {
	return &Engine{rules: rules}
}

// Categorize maps a description to the first matching rule's name,
// case-insensitively, falling back to "Other".
func (e *Engine) Categorize(description string) string {
	d := strings.ToLower(description)

	for _, rule := range e.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(d, kw) {
				return rule.Name
			}
		}
	}

	return fallbackCategory
}

// Annotate returns a copy of the transactions with Category assigned
// and Recurring marked. A description occurring more than once marks
// every occurrence recurring; this is a frequency heuristic, not an
// interval analysis.
func (e *Engine) Annotate(txs []statement.Transaction) []statement.Transaction {
	counts := make(map[string]int, len(txs))
	for _, tx := range txs {
		if tx.Description != "" {
			counts[tx.Description]++
		}
	}

	out := make([]statement.Transaction, len(txs))
	for i, tx := range txs {
		tx.Category = e.Categorize(tx.Description)
		tx.Recurring = counts[tx.Description] > 1
		out[i] = tx
	}

	return out
}

// Recurring filters to the transactions whose description repeats
// within the snapshot.
func (e *Engine) Recurring(txs []statement.Transaction) []statement.Transaction {
	var out []statement.Transaction

	for _, tx := range e.Annotate(txs) {
		if tx.Recurring {
			out = append(out, tx)
		}
	}

	return out
}

// CategoryTotals sums absolute amounts per category, ordered by rule
// declaration order with "Other" last.
func (e *Engine) CategoryTotals(txs []statement.Transaction) []CategoryTotal {
	totals := make(map[string]decimal.Decimal)

	for _, tx := range txs {
		amount, err := decimal.NewFromString(tx.Amount)
		if err != nil {
			continue
		}

		cat := e.Categorize(tx.Description)
		totals[cat] = totals[cat].Add(amount.Abs())
	}

	var out []CategoryTotal

	for _, rule := range e.rules {
		if total, ok := totals[rule.Name]; ok {
			out = append(out, CategoryTotal{Category: rule.Name, Total: total})
		}
	}

	if total, ok := totals[fallbackCategory]; ok {
		out = append(out, CategoryTotal{Category: fallbackCategory, Total: total})
	}

	return out
}

// MonthlyTotals groups debit transactions by calendar month and sums
// absolute amounts. Only months observed in the data appear; no gap
// filling. Transactions whose date cannot be normalized are skipped.
func MonthlyTotals(txs []statement.Transaction) []MonthlyStat {
	totals := make(map[string]decimal.Decimal)

	for _, tx := range txs {
		if tx.Type != statement.TypeDebit {
			continue
		}

		month, err := statement.MonthKey(tx.Date)
		if err != nil {
			continue
		}

		amount, err := decimal.NewFromString(tx.Amount)
		if err != nil {
			continue
		}

		totals[month] = totals[month].Add(amount.Abs())
	}

	out := make([]MonthlyStat, 0, len(totals))
	for month, total := range totals {
		out = append(out, MonthlyStat{Month: month, Total: total})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })

	return out
}

// Anomalies flags debits whose absolute amount exceeds twice the
// average debit amount within their own calendar month. The average
// is re-derived from the snapshot on every pass. Like Recurring, the
// returned transactions carry category and recurrence annotations.
func (e *Engine) Anomalies(txs []statement.Transaction) []statement.Transaction {
	txs = e.Annotate(txs)

	type monthAgg struct {
		total decimal.Decimal
		count int64
	}

	months := make(map[string]*monthAgg)

	for _, tx := range txs {
		if tx.Type != statement.TypeDebit {
			continue
		}

		month, err := statement.MonthKey(tx.Date)
		if err != nil {
			continue
		}

		amount, err := decimal.NewFromString(tx.Amount)
		if err != nil {
			continue
		}

		agg, ok := months[month]
		if !ok {
			agg = &monthAgg{}
			months[month] = agg
		}

		agg.total = agg.total.Add(amount.Abs())
		agg.count++
	}

	var flagged []statement.Transaction

	for _, tx := range txs {
		if tx.Type != statement.TypeDebit {
			continue
		}

		month, err := statement.MonthKey(tx.Date)
		if err != nil {
			continue
		}

		agg := months[month]
		if agg == nil || agg.count == 0 {
			continue
		}

		amount, err := decimal.NewFromString(tx.Amount)
		if err != nil {
			continue
		}

		average := agg.total.Div(decimal.NewFromInt(agg.count))
		if amount.Abs().GreaterThan(average.Mul(decimal.NewFromInt(2))) {
			flagged = append(flagged, tx)
		}
	}

	return flagged
}
