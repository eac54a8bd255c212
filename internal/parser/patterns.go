package parser

import "regexp"

// PatternSet is the versioned pattern configuration for one statement
// layout family. Layout drift is handled by building a new set (or
// amending the fee phrase list), never by touching the pipeline.
type PatternSet struct {
	// AccountHolder captures the title-cased name after a salutation
	// token, e.g. "MR T MOKOENA".
	AccountHolder *regexp.Regexp
	// AccountNumber captures the first digit run long enough to be a
	// plausible account identifier.
	AccountNumber *regexp.Regexp
	// Period captures the statement's from/to dates, both printed as
	// "DD Mon YYYY".
	Period *regexp.Regexp
	// OpeningBalance / ClosingBalance capture the decimal after the
	// literal label, with an optional Cr/Dr marker.
	OpeningBalance *regexp.Regexp
	ClosingBalance *regexp.Regexp
	// Charge repeatedly captures "<label ending in Fee(s)> <amount> <Cr|Dr>".
	Charge *regexp.Regexp
	// VAT captures the amount of the "Inclusive of VAT@X%" line.
	VAT *regexp.Regexp
	// Row captures one transaction-shaped fragment: date token(s) with
	// or without a printed year, description, amount, running balance,
	// optional numeric noise.
	Row *regexp.Regexp
	// DateToken splits the Row date group when page extraction glued
	// several physical dates together.
	DateToken *regexp.Regexp

	// FeePhrases are descriptions always treated as charges, on top of
	// whatever labels the charge scan found in the document.
	FeePhrases []string
	// FallbackYear is used for transaction dates when the statement
	// period could not be extracted.
	FallbackYear int
}

const monthAlt = `(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)`

// DefaultPatterns matches the FNB-style layout this application was
// built around.
func DefaultPatterns() PatternSet {
	return PatternSet{
		AccountHolder:  regexp.MustCompile(`\b(?:MR|MRS|MS|MISS|DR)[ \t]+([A-Z][A-Za-z]*(?:[ \t]+[A-Z][A-Za-z]*)+)`),
		AccountNumber:  regexp.MustCompile(`\b(\d{9,})\b`),
		Period:         regexp.MustCompile(`(?i)from\s+(\d{1,2}\s+` + monthAlt + `\s+\d{4})\s+to\s+(\d{1,2}\s+` + monthAlt + `\s+\d{4})`),
		OpeningBalance: regexp.MustCompile(`Opening Balance\s*:?\s*(-?[\d,]+\.\d{2})\s*(Cr|Dr)?`),
		ClosingBalance: regexp.MustCompile(`Closing Balance\s*:?\s*(-?[\d,]+\.\d{2})\s*(Cr|Dr)?`),
		Charge:         regexp.MustCompile(`([A-Z][A-Za-z ]*?Fees?)\s+([\d,]+\.\d{2})\s*(Cr|Dr)\b`),
		VAT:            regexp.MustCompile(`Inclusive of VAT\s*@\s*[\d.]+\s*%\s*([\d,]+\.\d{2})`),
		Row: regexp.MustCompile(
			`((?:\d{1,2}\s+` + monthAlt + `(?:\s+\d{4})?\s+)+)(.*?)\s+(-?[\d,]+\.\d{2})\s+(-?[\d,]+\.\d{2})((?:\s+[\d,]+\.\d{2})*)`),
		DateToken: regexp.MustCompile(`\d{1,2}\s+` + monthAlt + `(?:\s+\d{4})?`),
		FeePhrases: []string{
			"service fee",
			"bank charge",
			"monthly account fee",
			"other fees",
			"total vat",
		},
		FallbackYear: 2025,
	}
}
