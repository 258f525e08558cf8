package repo_interfaces

import (
	"context"

	"github.com/api-sage/retail-bank-ledger/internal/domain"
)

type RuleRepository interface {
	// Upsert replaces any rule sharing the new rule's effective date, then
	// keeps the registry sorted ascending by effective date.
	Upsert(ctx context.Context, rule domain.InterestRule) error
	// All returns every rule in effective-date ascending order.
	All(ctx context.Context) ([]domain.InterestRule, error)
}
