package statement

import "strings"

// Normalize corrects the sign convention of a stored transaction for
// display. On this statement layout the raw parser tags outflows as
// "credit", so the type is flipped and the displayed amount sign is
// re-derived from the corrected type (negative for debits).
//
// Normalize is its own inverse: applying it twice yields the stored
// record again. It must be applied exactly once between storage and
// display; the Service read path is the single place that does so.
func Normalize(tx Transaction) Transaction {
	out := tx

	if tx.Type == TypeCredit {
		out.Type = TypeDebit
	} else {
		out.Type = TypeCredit
	}

	magnitude := strings.TrimPrefix(tx.Amount, "-")
	if out.Type == TypeDebit {
		out.Amount = "-" + magnitude
	} else {
		out.Amount = magnitude
	}

	return out
}

// NormalizeAll maps Normalize over a transaction slice without
// mutating the input.
func NormalizeAll(txs []Transaction) []Transaction {
	if txs == nil {
		return nil
	}

	out := make([]Transaction, len(txs))
	for i, tx := range txs {
		out[i] = Normalize(tx)
	}

	return out
}
