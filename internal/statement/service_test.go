package statement_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/finwell-app/finwell/internal/statement"
)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    statement.CreateParams
		setupMock func(m *statement.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			params: statement.CreateParams{
				UserID:        uuid.New(),
				Filename:      "march.pdf",
				AccountHolder: "Thabo Mokoena",
				AccountNumber: "62123456789",
				Period:        statement.Period{From: "1 Mar 2025", To: "31 Mar 2025"},
				Transactions: []statement.Transaction{
					{Date: "1 Mar 2025", Description: "Salary Payment", Amount: "2000.00", Type: statement.TypeCredit},
				},
			},
			setupMock: func(m *statement.MockRepository) {
				m.EXPECT().
					CreateStatement(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "RepoError",
			params: statement.CreateParams{
				UserID:   uuid.New(),
				Filename: "march.pdf",
			},
			setupMock: func(m *statement.MockRepository) {
				m.EXPECT().
					CreateStatement(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := statement.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := statement.NewService(repo)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.NotEqual(t, uuid.Nil, got.ID)
			assert.False(t, got.UploadedAt.IsZero())
			assert.Equal(t, tt.params.UserID, got.UserID)
			assert.Equal(t, tt.params.AccountHolder, got.AccountHolder)
			assert.Equal(t, tt.params.Transactions, got.Transactions,
				"stored transactions keep the raw parser convention")
		})
	}
}

func TestService_Get(t *testing.T) {
	owner := uuid.New()
	id := uuid.New()

	stored := func() *statement.Statement {
		return &statement.Statement{
			ID:     id,
			UserID: owner,
			Transactions: []statement.Transaction{
				{Date: "1 Mar 2025", Description: "POS Purchase Spar", Amount: "-250.00", Type: statement.TypeDebit},
			},
			UploadedAt: time.Now().UTC(),
		}
	}

	t.Run("NormalizesOnRead", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := statement.NewMockRepository(ctrl)
		repo.EXPECT().GetStatement(gomock.Any(), id).Return(stored(), nil)

		got, err := statement.NewService(repo).Get(context.Background(), id, owner)

		require.NoError(t, err)
		require.Len(t, got.Transactions, 1)
		assert.Equal(t, statement.TypeCredit, got.Transactions[0].Type)
		assert.Equal(t, "250.00", got.Transactions[0].Amount)
	})

	t.Run("OtherUserLooksMissing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := statement.NewMockRepository(ctrl)
		repo.EXPECT().GetStatement(gomock.Any(), id).Return(stored(), nil)

		_, err := statement.NewService(repo).Get(context.Background(), id, uuid.New())

		assert.ErrorIs(t, err, statement.ErrNotFound)
	})

	t.Run("NotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := statement.NewMockRepository(ctrl)
		repo.EXPECT().GetStatement(gomock.Any(), id).Return(nil, statement.ErrNotFound)

		_, err := statement.NewService(repo).Get(context.Background(), id, owner)

		assert.ErrorIs(t, err, statement.ErrNotFound)
	})
}

func TestService_Transactions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	sts := []*statement.Statement{
		{
			ID:     uuid.New(),
			UserID: userID,
			Transactions: []statement.Transaction{
				{Date: "2 Apr 2025", Description: "Prepaid Airtime", Amount: "-50.00", Type: statement.TypeDebit},
			},
		},
		{
			ID:     uuid.New(),
			UserID: userID,
			Transactions: []statement.Transaction{
				{Date: "1 Mar 2025", Description: "Salary Payment", Amount: "2000.00", Type: statement.TypeCredit},
				{Date: "3 Mar 2025", Description: "POS Purchase Spar", Amount: "-250.00", Type: statement.TypeDebit},
			},
		},
	}

	repo := statement.NewMockRepository(ctrl)
	repo.EXPECT().ListStatementsByUser(gomock.Any(), userID).Return(sts, nil)

	txs, err := statement.NewService(repo).Transactions(context.Background(), userID)

	require.NoError(t, err)
	require.Len(t, txs, 3)

	// Newest first across statement boundaries, each transaction
	// normalized exactly once.
	assert.Equal(t, "Prepaid Airtime", txs[0].Description)
	assert.Equal(t, statement.TypeCredit, txs[0].Type)
	assert.Equal(t, "50.00", txs[0].Amount)
	assert.Equal(t, "POS Purchase Spar", txs[1].Description)
	assert.Equal(t, "Salary Payment", txs[2].Description)
	assert.Equal(t, statement.TypeDebit, txs[2].Type)
	assert.Equal(t, "-2000.00", txs[2].Amount)
}

func TestService_TransactionsUnparseableDatesLast(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	sts := []*statement.Statement{
		{
			ID:     uuid.New(),
			UserID: userID,
			Transactions: []statement.Transaction{
				{Date: "??", Description: "Garbled", Amount: "-10.00", Type: statement.TypeDebit},
				{Date: "5 Mar 2025", Description: "Salary Payment", Amount: "2000.00", Type: statement.TypeCredit},
			},
		},
	}

	repo := statement.NewMockRepository(ctrl)
	repo.EXPECT().ListStatementsByUser(gomock.Any(), userID).Return(sts, nil)

	txs, err := statement.NewService(repo).Transactions(context.Background(), userID)

	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, "Salary Payment", txs[0].Description)
	assert.Equal(t, "Garbled", txs[1].Description)
}
