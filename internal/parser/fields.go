package parser

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finwell-app/finwell/internal/statement"
)

// vatKey is the reserved charge-map key for the VAT total. It always
// exists, even when the document carries no VAT line.
const vatKey = "Total VAT"

// extractFields pulls the scalar statement fields out of raw text.
// Every field is matched independently: a pattern that finds nothing
// yields that field's default and never blocks the others.
func (p *Parser) extractFields(text string) statement.CreateParams {
	params := statement.CreateParams{
		AccountHolder: firstGroup(p.patterns.AccountHolder, text),
		AccountNumber: firstGroup(p.patterns.AccountNumber, text),
		Charges:       p.extractCharges(text),
	}

	if m := p.patterns.Period.FindStringSubmatch(text); m != nil {
		params.Period = statement.Period{
			From: strings.TrimSpace(m[1]),
			To:   strings.TrimSpace(m[2]),
		}
	}

	params.OpeningBalance = labeledAmount(p.patterns.OpeningBalance, text)
	params.ClosingBalance = labeledAmount(p.patterns.ClosingBalance, text)

	return params
}

// extractCharges scans for fee lines and the VAT total. Charge keys
// are whatever labels the document uses, not a fixed vocabulary; only
// the VAT key is reserved and always present.
func (p *Parser) extractCharges(text string) map[string]decimal.Decimal {
	charges := map[string]decimal.Decimal{
		vatKey: decimal.Zero,
	}

	for _, m := range p.patterns.Charge.FindAllStringSubmatch(text, -1) {
		amount, err := parseAmount(m[2])
		if err != nil {
			continue
		}

		charges[strings.TrimSpace(m[1])] = amount
	}

	if m := p.patterns.VAT.FindStringSubmatch(text); m != nil {
		if amount, err := parseAmount(m[1]); err == nil {
			charges[vatKey] = amount
		}
	}

	return charges
}

func firstGroup(re *regexp.Regexp, text string) string {
	if m := re.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}

	return ""
}

func labeledAmount(re *regexp.Regexp, text string) decimal.Decimal {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return decimal.Zero
	}

	amount, err := parseAmount(m[1])
	if err != nil {
		return decimal.Zero
	}

	return amount
}
