package statement

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Type says which way money moved on a transaction as recorded on the
// statement. The stored value follows the raw parsed sign convention;
// Normalize corrects it for display (see normalize.go).
type Type string

const (
	TypeCredit Type = "credit"
	TypeDebit  Type = "debit"
)

// Transaction is one line item on a bank statement. Amount and Balance
// are kept as fixed two-decimal text, exactly as re-serialized by the
// parser; Date is the printed date text ("11 Dec 2025").
//
// Recurring and Category are derived at read time by the analytics
// engine and are never persisted.
type Transaction struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Balance     string `json:"balance"`
	Type        Type   `json:"type"`
	Recurring   bool   `json:"recurring,omitempty"`
	Category    string `json:"category,omitempty"`
}

// Period is the statement's date range as printed ("01 Dec 2025").
type Period struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Statement is one uploaded bank document's extracted representation.
// The transaction list preserves document order, which is not
// necessarily date order.
type Statement struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	AccountHolder  string
	AccountNumber  string
	Period         Period
	OpeningBalance decimal.Decimal
	ClosingBalance decimal.Decimal
	Charges        map[string]decimal.Decimal
	Transactions   []Transaction
	Filename       string
	UploadedAt     time.Time
}
