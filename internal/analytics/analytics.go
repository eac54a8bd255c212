// Package analytics derives spending insights from a normalized
// transaction snapshot. Every derivation is a pure function of its
// input: no I/O, no caching, no mutation, safe to recompute on each
// request.
package analytics

import "github.com/shopspring/decimal"

// CategoryRule maps an ordered keyword group to a category name.
// Rules are configuration: when a description matches several groups,
// the one declared first wins.
type CategoryRule struct {
	Name     string
	Keywords []string
}

// CategoryTotal is the summed absolute spend for one category.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// MonthlyStat is the total debit spend for one observed "YYYY-MM"
// month. Months with no transactions do not appear.
type MonthlyStat struct {
	Month string
	Total decimal.Decimal
}

// DefaultRules is the category configuration the application ships
// with, in priority order.
var DefaultRules = []CategoryRule{
	{Name: "Food", Keywords: []string{"spar", "pick n pay", "pnp", "choppies"}},
	{Name: "Communication", Keywords: []string{"airtime", "prepaid"}},
	{Name: "Shopping", Keywords: []string{"pos purchase"}},
	{Name: "Utilities", Keywords: []string{"electricity", "water"}},
	{Name: "Dining", Keywords: []string{"braai", "restaurant"}},
}

// fallbackCategory is assigned when no rule matches.
const fallbackCategory = "Other"
