package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/finwell-app/finwell/internal/statement"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectStatementColumns = `
	id, user_id, account_holder, account_number, period_from, period_to,
	opening_balance, closing_balance, bank_charges, transactions, filename, uploaded_at
`

// scanStatement reads one statement row. The charges and transactions
// columns are JSON text blobs decoded defensively: a malformed blob
// yields an empty value, never a failed read.
func scanStatement(s scanner) (*statement.Statement, error) {
	var st statement.Statement

	var chargesBlob, txBlob []byte

	if err := s.Scan(
		&st.ID, &st.UserID, &st.AccountHolder, &st.AccountNumber,
		&st.Period.From, &st.Period.To,
		&st.OpeningBalance, &st.ClosingBalance,
		&chargesBlob, &txBlob,
		&st.Filename, &st.UploadedAt,
	); err != nil {
		return nil, err
	}

	st.Charges = decodeCharges(chargesBlob)
	st.Transactions = decodeTransactions(txBlob)

	return &st, nil
}

// CreateStatement persists a statement as one insert. The scalar
// fields and the full transaction list commit together or not at all.
func (s *Store) CreateStatement(ctx context.Context, st *statement.Statement) error {
	txBlob, err := encodeTransactions(st.Transactions)
	if err != nil {
		return fmt.Errorf("encoding transactions: %w", err)
	}

	chargesBlob, err := encodeCharges(st.Charges)
	if err != nil {
		return fmt.Errorf("encoding charges: %w", err)
	}

	query := `
		INSERT INTO statements (
			id, user_id, account_holder, account_number, period_from, period_to,
			opening_balance, closing_balance, bank_charges, transactions, filename, uploaded_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err = s.db.ExecContext(ctx, query,
		st.ID, st.UserID, st.AccountHolder, st.AccountNumber,
		st.Period.From, st.Period.To,
		st.OpeningBalance, st.ClosingBalance,
		chargesBlob, txBlob,
		st.Filename, st.UploadedAt,
	)
	if err != nil {
		return fmt.Errorf("creating statement: %w", err)
	}

	return nil
}

func (s *Store) GetStatement(ctx context.Context, id uuid.UUID) (*statement.Statement, error) {
	query := `SELECT ` + selectStatementColumns + ` FROM statements WHERE id = $1`

	st, err := scanStatement(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, statement.ErrNotFound
		}

		return nil, fmt.Errorf("getting statement: %w", err)
	}

	return st, nil
}

func (s *Store) ListStatementsByUser(ctx context.Context, userID uuid.UUID) ([]*statement.Statement, error) {
	query := `SELECT ` + selectStatementColumns + `
		FROM statements
		WHERE user_id = $1
		ORDER BY uploaded_at DESC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing statements: %w", err)
	}
	defer rows.Close()

	var sts []*statement.Statement

	for rows.Next() {
		st, err := scanStatement(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning statement: %w", err)
		}

		sts = append(sts, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating statement rows: %w", err)
	}

	return sts, nil
}
