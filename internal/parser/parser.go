// Package parser turns raw extracted statement text into structured
// statement data. It is a best-effort scraper over one statement
// layout family, not a strict-schema parser: every pattern matches
// independently and a miss degrades to a default instead of failing
// the document.
package parser

import "github.com/finwell-app/finwell/internal/statement"

type Parser struct {
	patterns PatternSet
}

// New returns a parser using the default pattern set.
func New() *Parser {
	return NewWithPatterns(DefaultPatterns())
}

// NewWithPatterns returns a parser over a custom pattern set, for
// statement layouts that have drifted from the default.
func NewWithPatterns(ps PatternSet) *Parser {
	return &Parser{patterns: ps}
}

// Parse extracts scalar fields and the transaction ledger from raw
// document text. Ownership and provenance fields of the returned
// params are left for the caller. Parse never fails: unrecognized
// text produces zero-valued fields and an empty transaction list.
func (p *Parser) Parse(text string) statement.CreateParams {
	params := p.extractFields(text)
	params.Transactions = p.extractTransactions(text, params.Period, params.Charges)

	return params
}
