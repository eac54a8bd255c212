package store

import (
	"encoding/json"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/finwell-app/finwell/internal/statement"
)

// The transactions column holds the list as a JSON text blob. The
// in-memory shape and the storage shape are deliberately decoupled:
// encoding must be lossless and decoding must never fail a read.

func encodeTransactions(txs []statement.Transaction) ([]byte, error) {
	if txs == nil {
		txs = []statement.Transaction{}
	}

	return json.Marshal(txs)
}

// decodeTransactions recovers the transaction list from the stored
// blob. A malformed blob degrades to an empty list; losing one
// statement's ledger must not take down the whole listing.
func decodeTransactions(data []byte) []statement.Transaction {
	if len(data) == 0 {
		return []statement.Transaction{}
	}

	var txs []statement.Transaction
	if err := json.Unmarshal(data, &txs); err != nil {
		slog.Error("malformed transactions blob, substituting empty list", "error", err)
		return []statement.Transaction{}
	}

	if txs == nil {
		txs = []statement.Transaction{}
	}

	return txs
}

func encodeCharges(charges map[string]decimal.Decimal) ([]byte, error) {
	if charges == nil {
		charges = map[string]decimal.Decimal{}
	}

	return json.Marshal(charges)
}

func decodeCharges(data []byte) map[string]decimal.Decimal {
	if len(data) == 0 {
		return map[string]decimal.Decimal{}
	}

	var charges map[string]decimal.Decimal
	if err := json.Unmarshal(data, &charges); err != nil {
		slog.Error("malformed charges blob, substituting empty map", "error", err)
		return map[string]decimal.Decimal{}
	}

	if charges == nil {
		charges = map[string]decimal.Decimal{}
	}

	return charges
}
