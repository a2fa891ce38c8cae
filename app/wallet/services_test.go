package wallet

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/kelu/tote/internal/logger"
	"github.com/kelu/tote/models"
)

type mockRepository struct {
	*mockLedgerStore
}

func newMockRepository() *mockRepository {
	return &mockRepository{mockLedgerStore: newMockLedgerStore()}
}

func (m *mockRepository) WithTx(_ *gorm.DB) Repository { return m }

func (m *mockRepository) GetByAccountID(ctx context.Context, accountID uuid.UUID) (*models.Wallet, error) {
	return m.GetWalletForUpdate(ctx, accountID)
}

func (m *mockRepository) GetTransactionsByWallet(_ context.Context, walletID uuid.UUID, filters *TransactionFilters) ([]models.Transaction, int64, error) {
	var out []models.Transaction
	for _, entry := range m.transactions {
		if entry.WalletID == walletID {
			out = append(out, *entry)
		}
	}
	total := int64(len(out))
	perPage := filters.PerPage
	if perPage < 1 {
		perPage = 20
	}
	if len(out) > perPage {
		out = out[:perPage]
	}
	return out, total, nil
}

func newTestService(t *testing.T) (Service, *mockRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sqlDB,
	}), &gorm.Config{})
	require.NoError(t, err)

	repo := newMockRepository()
	svc := NewService(gormDB, repo, GetDefaultConfig(), logger.NewNullLogger())
	return svc, repo, mock
}

func TestService_Deposit(t *testing.T) {
	svc, repo, mock := newTestService(t)
	accountID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectCommit()

	resp, err := svc.Deposit(context.Background(), accountID, &DepositRequest{Amount: 2_500_000_000})
	require.NoError(t, err)

	assert.Equal(t, uint64(2_500_000_000), resp.Balance)
	assert.Equal(t, "2.5", resp.BalanceDisplay.String())
	require.Len(t, repo.transactions, 1)
	assert.Equal(t, models.TransactionTypeDeposit, repo.transactions[0].Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Deposit_ZeroAmount(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Deposit(context.Background(), uuid.New(), &DepositRequest{Amount: 0})
	assert.ErrorIs(t, err, models.ErrInvalidAmount)
}

func TestService_GetMyWallet(t *testing.T) {
	svc, repo, _ := newTestService(t)
	accountID := uuid.New()
	repo.seed(accountID, 42_000_000)

	resp, err := svc.GetMyWallet(context.Background(), accountID)
	require.NoError(t, err)
	assert.Equal(t, uint64(42_000_000), resp.Balance)
	assert.Equal(t, accountID, resp.AccountID)
}

func TestService_GetMyWallet_NotFound(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.GetMyWallet(context.Background(), uuid.New())
	assert.ErrorIs(t, err, models.ErrRecordNotFound)
}

func TestService_GetMyTransactions(t *testing.T) {
	svc, repo, mock := newTestService(t)
	accountID := uuid.New()

	for i := 0; i < 3; i++ {
		mock.ExpectBegin()
		mock.ExpectCommit()
		_, err := svc.Deposit(context.Background(), accountID, &DepositRequest{Amount: 1_000_000})
		require.NoError(t, err)
	}

	entries, total, err := svc.GetMyTransactions(context.Background(), accountID, &TransactionFilters{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, entries, 3)
	assert.Equal(t, uint64(3_000_000), repo.wallets[accountID].Balance)
}

func TestService_GetMyTransactions_NoWallet(t *testing.T) {
	svc, _, _ := newTestService(t)

	entries, total, err := svc.GetMyTransactions(context.Background(), uuid.New(), &TransactionFilters{})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, entries)
}
