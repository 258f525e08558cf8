package memory

import (
	"context"

	"github.com/api-sage/retail-bank-ledger/internal/domain"
)

type AccountRepository struct {
	accounts map[string]*domain.Account
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{accounts: make(map[string]*domain.Account)}
}

func (r *AccountRepository) GetOrCreate(_ context.Context, accountID string) (*domain.Account, error) {
	account, ok := r.accounts[accountID]
	if !ok {
		account = domain.NewAccount(accountID)
		r.accounts[accountID] = account
	}
	return account, nil
}

func (r *AccountRepository) Get(_ context.Context, accountID string) (*domain.Account, error) {
	account, ok := r.accounts[accountID]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return account, nil
}
