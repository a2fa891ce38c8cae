package wallet

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelu/tote/models"
)

type mockLedgerStore struct {
	wallets      map[uuid.UUID]*models.Wallet
	transactions []*models.Transaction
}

func newMockLedgerStore() *mockLedgerStore {
	return &mockLedgerStore{wallets: make(map[uuid.UUID]*models.Wallet)}
}

func (m *mockLedgerStore) GetWalletForUpdate(_ context.Context, accountID uuid.UUID) (*models.Wallet, error) {
	wallet, ok := m.wallets[accountID]
	if !ok {
		return nil, models.ErrRecordNotFound
	}
	return wallet, nil
}

func (m *mockLedgerStore) CreateWallet(_ context.Context, wallet *models.Wallet) error {
	if wallet.ID == uuid.Nil {
		wallet.ID = uuid.New()
	}
	m.wallets[wallet.AccountID] = wallet
	return nil
}

func (m *mockLedgerStore) UpdateWallet(_ context.Context, wallet *models.Wallet) error {
	m.wallets[wallet.AccountID] = wallet
	return nil
}

func (m *mockLedgerStore) CreateTransaction(_ context.Context, transaction *models.Transaction) error {
	m.transactions = append(m.transactions, transaction)
	return nil
}

func (m *mockLedgerStore) seed(accountID uuid.UUID, balance uint64) {
	m.wallets[accountID] = &models.Wallet{ID: uuid.New(), AccountID: accountID, Balance: balance}
}

func TestTransfer(t *testing.T) {
	store := newMockLedgerStore()
	from := uuid.New()
	to := uuid.New()
	ref := uuid.New()
	store.seed(from, 1000)
	store.seed(to, 50)

	err := Transfer(context.Background(), store, from, to, 300,
		models.TransactionTypeStake, ref, "stake on outcome 1")
	require.NoError(t, err)

	assert.Equal(t, uint64(700), store.wallets[from].Balance)
	assert.Equal(t, uint64(350), store.wallets[to].Balance)

	require.Len(t, store.transactions, 2)
	debit, credit := store.transactions[0], store.transactions[1]
	assert.Equal(t, models.TransactionDebit, debit.Direction)
	assert.Equal(t, uint64(1000), debit.BalanceBefore)
	assert.Equal(t, uint64(700), debit.BalanceAfter)
	assert.Equal(t, models.TransactionCredit, credit.Direction)
	assert.Equal(t, uint64(50), credit.BalanceBefore)
	assert.Equal(t, uint64(350), credit.BalanceAfter)
	for _, entry := range store.transactions {
		assert.Equal(t, ref, entry.ReferenceID)
		assert.Equal(t, models.TransactionTypeStake, entry.Type)
	}
}

func TestTransfer_CreatesDestinationWallet(t *testing.T) {
	store := newMockLedgerStore()
	from := uuid.New()
	to := uuid.New()
	store.seed(from, 1000)

	err := Transfer(context.Background(), store, from, to, 400,
		models.TransactionTypePayout, uuid.New(), "")
	require.NoError(t, err)

	require.NotNil(t, store.wallets[to])
	assert.Equal(t, uint64(400), store.wallets[to].Balance)
}

func TestTransfer_Errors(t *testing.T) {
	from := uuid.New()
	to := uuid.New()

	tests := []struct {
		name    string
		seed    func(store *mockLedgerStore)
		amount  uint64
		wantErr error
	}{
		{
			name:    "zero amount",
			seed:    func(store *mockLedgerStore) { store.seed(from, 1000) },
			amount:  0,
			wantErr: models.ErrInvalidAmount,
		},
		{
			name:    "missing source wallet",
			seed:    func(_ *mockLedgerStore) {},
			amount:  100,
			wantErr: models.ErrInsufficientBalance,
		},
		{
			name:    "insufficient balance",
			seed:    func(store *mockLedgerStore) { store.seed(from, 50) },
			amount:  100,
			wantErr: models.ErrInsufficientBalance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMockLedgerStore()
			tt.seed(store)

			err := Transfer(context.Background(), store, from, to, tt.amount,
				models.TransactionTypeStake, uuid.New(), "")
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, store.transactions)
		})
	}
}

func TestDeposit(t *testing.T) {
	store := newMockLedgerStore()
	to := uuid.New()

	require.NoError(t, Deposit(context.Background(), store, to, 500, uuid.New(), "top up"))
	require.NoError(t, Deposit(context.Background(), store, to, 250, uuid.New(), ""))

	assert.Equal(t, uint64(750), store.wallets[to].Balance)
	require.Len(t, store.transactions, 2)
	assert.Equal(t, models.TransactionTypeDeposit, store.transactions[0].Type)
	assert.Equal(t, models.TransactionCredit, store.transactions[0].Direction)
}

func TestDeposit_ZeroAmount(t *testing.T) {
	store := newMockLedgerStore()
	err := Deposit(context.Background(), store, uuid.New(), 0, uuid.New(), "")
	assert.ErrorIs(t, err, models.ErrInvalidAmount)
}
