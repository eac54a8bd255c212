package parser

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finwell-app/finwell/internal/statement"
)

// extractTransactions scans raw text for transaction-shaped fragments
// and returns them in document order. Lines whose description matches
// a fee phrase or an already-extracted charge label are dropped; those
// amounts are accounted for in the charges map, not the ledger.
//
// A text with no matching fragments yields an empty slice, never an
// error: an unrecognized layout is a degraded result, not a failure.
func (p *Parser) extractTransactions(text string, period statement.Period, charges map[string]decimal.Decimal) []statement.Transaction {
	year := p.resolveYear(period)
	exclusions := feeExclusions(p.patterns.FeePhrases, charges)

	var txs []statement.Transaction

	for _, m := range p.patterns.Row.FindAllStringSubmatch(text, -1) {
		description := strings.TrimSpace(m[2])
		if description == "" || isFeeLine(description, exclusions) {
			continue
		}

		amount, err := parseAmount(m[3])
		if err != nil {
			continue
		}

		balance, err := parseAmount(m[4])
		if err != nil {
			continue
		}

		// Page extraction can glue a value date and a posting date
		// into one capture; the last token is the posting date.
		dates := p.patterns.DateToken.FindAllString(m[1], -1)
		if len(dates) == 0 {
			continue
		}

		date := strings.Join(strings.Fields(dates[len(dates)-1]), " ")
		// Rows in some layouts print the year themselves; only
		// year-less rows borrow it from the statement period.
		if !hasPrintedYear(date) {
			date = fmt.Sprintf("%s %d", date, year)
		}

		txType := statement.TypeCredit
		if amount.IsNegative() {
			txType = statement.TypeDebit
		}

		txs = append(txs, statement.Transaction{
			Date:        date,
			Description: description,
			Amount:      fixed(amount),
			Balance:     fixed(balance),
			Type:        txType,
		})
	}

	return txs
}

// resolveYear takes the year from the end of the period's "to" date.
// Transaction rows print day and month only.
func (p *Parser) resolveYear(period statement.Period) int {
	fields := strings.Fields(period.To)
	if len(fields) == 0 {
		return p.patterns.FallbackYear
	}

	last := fields[len(fields)-1]
	if len(last) != 4 {
		return p.patterns.FallbackYear
	}

	year := 0
	for _, r := range last {
		if r < '0' || r > '9' {
			return p.patterns.FallbackYear
		}

		year = year*10 + int(r-'0')
	}

	return year
}

// hasPrintedYear reports whether a date token already carries a
// four-digit year ("01 Mar 2025" as opposed to "01 Mar").
func hasPrintedYear(date string) bool {
	fields := strings.Fields(date)
	if len(fields) < 3 {
		return false
	}

	last := fields[len(fields)-1]
	if len(last) != 4 {
		return false
	}

	for _, r := range last {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

func feeExclusions(phrases []string, charges map[string]decimal.Decimal) []string {
	exclusions := make([]string, 0, len(phrases)+len(charges))
	for _, phrase := range phrases {
		exclusions = append(exclusions, strings.ToLower(phrase))
	}

	for label := range charges {
		exclusions = append(exclusions, strings.ToLower(label))
	}

	return exclusions
}

func isFeeLine(description string, exclusions []string) bool {
	d := strings.ToLower(description)
	for _, phrase := range exclusions {
		if strings.Contains(d, phrase) {
			return true
		}
	}

	return false
}
