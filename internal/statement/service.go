package statement

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a statement does not exist or is not
// owned by the requesting user.
var ErrNotFound = errors.New("statement not found")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=statement
type Repository interface {
	CreateStatement(ctx context.Context, st *Statement) error
	GetStatement(ctx context.Context, id uuid.UUID) (*Statement, error)
	ListStatementsByUser(ctx context.Context, userID uuid.UUID) ([]*Statement, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateParams carries everything needed to persist one parsed
// statement. The parser fills the extracted fields; the caller fills
// ownership and provenance.
type CreateParams struct {
	UserID         uuid.UUID
	Filename       string
	AccountHolder  string
	AccountNumber  string
	Period         Period
	OpeningBalance decimal.Decimal
	ClosingBalance decimal.Decimal
	Charges        map[string]decimal.Decimal
	Transactions   []Transaction
}

// Create persists a statement as a single write. The id and upload
// timestamp are issued here, never by the caller.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Statement, error) {
	st := &Statement{
		ID:             uuid.New(),
		UserID:         params.UserID,
		AccountHolder:  params.AccountHolder,
		AccountNumber:  params.AccountNumber,
		Period:         params.Period,
		OpeningBalance: params.OpeningBalance,
		ClosingBalance: params.ClosingBalance,
		Charges:        params.Charges,
		Transactions:   params.Transactions,
		Filename:       params.Filename,
		UploadedAt:     time.Now().UTC(),
	}

	if err := s.repo.CreateStatement(ctx, st); err != nil {
		return nil, fmt.Errorf("creating statement: %w", err)
	}

	return st, nil
}

// ListByUser returns the user's statements with each transaction list
// normalized for display. This is the only place normalization is
// applied on the read path.
func (s *Service) ListByUser(ctx context.Context, userID uuid.UUID) ([]*Statement, error) {
	sts, err := s.repo.ListStatementsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	for _, st := range sts {
		st.Transactions = NormalizeAll(st.Transactions)
	}

	return sts, nil
}

// Get returns one statement, normalized. A statement owned by another
// user is indistinguishable from a missing one.
func (s *Service) Get(ctx context.Context, id, userID uuid.UUID) (*Statement, error) {
	st, err := s.repo.GetStatement(ctx, id)
	if err != nil {
		return nil, err
	}

	if st.UserID != userID {
		return nil, ErrNotFound
	}

	st.Transactions = NormalizeAll(st.Transactions)

	return st, nil
}

// Transactions flattens the user's statements into one normalized
// transaction slice, newest first by parsed date. Transactions whose
// date cannot be parsed sort after the dated ones, keeping their
// document order.
func (s *Service) Transactions(ctx context.Context, userID uuid.UUID) ([]Transaction, error) {
	sts, err := s.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var txs []Transaction
	for _, st := range sts {
		txs = append(txs, st.Transactions...)
	}

	sort.SliceStable(txs, func(i, j int) bool {
		di, erri := ISODate(txs[i].Date)
		dj, errj := ISODate(txs[j].Date)

		if erri != nil || errj != nil {
			return erri == nil && errj != nil
		}

		return di > dj
	})

	return txs, nil
}
