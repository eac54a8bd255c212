package parser

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parseAmount parses a statement amount like "1,234.56" or "-588.74"
// into a decimal. Thousands separators are stripped first.
func parseAmount(s string) (decimal.Decimal, error) {
	clean := strings.ReplaceAll(strings.TrimSpace(s), ",", "")

	return decimal.NewFromString(clean)
}

// fixed re-serializes a decimal as the two-fraction-digit text the
// domain model stores.
func fixed(d decimal.Decimal) string {
	return d.StringFixed(2)
}
