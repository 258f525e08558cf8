package repo_interfaces

import (
	"context"

	"github.com/api-sage/retail-bank-ledger/internal/domain"
)

type AccountRepository interface {
	// GetOrCreate returns the ledger for accountID, creating an empty one
	// on first reference.
	GetOrCreate(ctx context.Context, accountID string) (*domain.Account, error)
	// Get returns the ledger for accountID or domain.ErrAccountNotFound.
	Get(ctx context.Context, accountID string) (*domain.Account, error)
}
